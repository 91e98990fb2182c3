package fingerprint

import (
	"time"

	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/machine"
	"github.com/jollans/gofunge/lang/space"
)

func init() {
	machine.RegisterFingerprint(machine.FingerprintID("HRTI"), machine.FingerprintLoader{Load: loadHrti})
}

const hrtiMarkKey = "HRTI.mark"

// loadHrti binds high-resolution timing to G/M/T/E/S, for measuring
// elapsed time more finely than 'y' sysinfo's whole-second clock.
func loadHrti(layer *machine.Layer) {
	machine.Bind(layer, cell.Value('G'), hrtiGranularity)
	machine.Bind(layer, cell.Value('M'), hrtiMark)
	machine.Bind(layer, cell.Value('T'), hrtiTimer)
	machine.Bind(layer, cell.Value('E'), hrtiErase)
	machine.Bind(layer, cell.Value('S'), hrtiSecond)
}

// hrtiGranularity ('G') pushes the smallest tick this implementation can
// reliably resolve, in microseconds.
func hrtiGranularity(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	ip.Push(1)
	return machine.Continue
}

// hrtiMark ('M') records the current time as this IP's reference point
// for a later 'T'.
func hrtiMark(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	ip.Scratch[hrtiMarkKey] = time.Now().UnixMicro()
	return machine.Continue
}

// hrtiTimer ('T') pushes microseconds elapsed since this IP's last mark,
// reflecting instead if there is none.
func hrtiTimer(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	mark, ok := ip.Scratch[hrtiMarkKey].(int64)
	if !ok {
		ip.Reflect()
		return machine.Continue
	}
	ip.Push(cell.Value(time.Now().UnixMicro() - mark))
	return machine.Continue
}

// hrtiErase ('E') forgets this IP's mark, so a following 'T' reflects.
func hrtiErase(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	delete(ip.Scratch, hrtiMarkKey)
	return machine.Continue
}

// hrtiSecond ('S') pushes microseconds elapsed since the last whole
// second.
func hrtiSecond(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	ip.Push(cell.Value(time.Now().Nanosecond() / 1000))
	return machine.Continue
}
