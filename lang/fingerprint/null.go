package fingerprint

import (
	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/machine"
	"github.com/jollans/gofunge/lang/space"
)

func init() {
	machine.RegisterFingerprint(machine.FingerprintID("NULL"), machine.FingerprintLoader{Load: loadNull})
}

// loadNull makes every letter A-Z act like 'r'. Loading it ahead of a
// fingerprint an environment wants to keep opaque makes that fingerprint's
// letters reflect instead of doing anything, without having to refuse the
// load outright.
func loadNull(layer *machine.Layer) {
	for c := cell.Value('A'); c <= cell.Value('Z'); c++ {
		machine.Bind(layer, c, nullReflect)
	}
}

func nullReflect(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	ip.Reflect()
	return machine.Continue
}
