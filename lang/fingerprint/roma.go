package fingerprint

import (
	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/machine"
	"github.com/jollans/gofunge/lang/space"
)

func init() {
	machine.RegisterFingerprint(machine.FingerprintID("ROMA"), machine.FingerprintLoader{Load: loadRoma})
}

// loadRoma binds Roman numeral digit pushes to I/V/X/L/C/D/M. These just
// push the corresponding value; a program still has to do the addition
// and subtraction to total up a numeral itself.
func loadRoma(layer *machine.Layer) {
	machine.Bind(layer, cell.Value('I'), romaConst(1))
	machine.Bind(layer, cell.Value('V'), romaConst(5))
	machine.Bind(layer, cell.Value('X'), romaConst(10))
	machine.Bind(layer, cell.Value('L'), romaConst(50))
	machine.Bind(layer, cell.Value('C'), romaConst(100))
	machine.Bind(layer, cell.Value('D'), romaConst(500))
	machine.Bind(layer, cell.Value('M'), romaConst(1000))
}

func romaConst(v cell.Value) machine.Instruction {
	return func(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
		ip.Push(v)
		return machine.Continue
	}
}
