// Package fingerprint implements the optional Funge-98 fingerprint
// extensions this interpreter carries bodies for. Each file registers
// itself with lang/machine by import side effect, the same pattern
// database/sql drivers use: importing this package for its init()
// functions is enough to make every fingerprint here loadable by '('.
package fingerprint

import (
	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/machine"
	"github.com/jollans/gofunge/lang/space"
)

func init() {
	machine.RegisterFingerprint(machine.FingerprintID("BOOL"), machine.FingerprintLoader{Load: loadBool})
}

// loadBool binds bitwise logic to A/O/N/X.
func loadBool(layer *machine.Layer) {
	machine.Bind(layer, cell.Value('A'), boolAnd)
	machine.Bind(layer, cell.Value('O'), boolOr)
	machine.Bind(layer, cell.Value('N'), boolNot)
	machine.Bind(layer, cell.Value('X'), boolXor)
}

func boolAnd(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	b, a := ip.Pop(), ip.Pop()
	ip.Push(a & b)
	return machine.Continue
}

func boolOr(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	b, a := ip.Pop(), ip.Pop()
	ip.Push(a | b)
	return machine.Continue
}

func boolNot(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	ip.Push(^ip.Pop())
	return machine.Continue
}

func boolXor(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	b, a := ip.Pop(), ip.Pop()
	ip.Push(a ^ b)
	return machine.Continue
}
