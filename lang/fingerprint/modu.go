package fingerprint

import (
	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/machine"
	"github.com/jollans/gofunge/lang/space"
)

func init() {
	machine.RegisterFingerprint(machine.FingerprintID("MODU"), machine.FingerprintLoader{Load: loadModu})
}

// loadModu binds the three disputed modulo conventions to M/U/R: M is a
// floor-division (sign-of-divisor) remainder, U is the Euclidean
// (always-nonnegative) remainder, and R is the plain truncating remainder
// '%' already gives.
func loadModu(layer *machine.Layer) {
	machine.Bind(layer, cell.Value('M'), moduSigned)
	machine.Bind(layer, cell.Value('U'), moduUnsigned)
	machine.Bind(layer, cell.Value('R'), moduCRem)
}

func moduSigned(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	b, a := ip.Pop(), ip.Pop()
	if b == 0 {
		ip.Push(0)
		return machine.Continue
	}
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	ip.Push(r)
	return machine.Continue
}

func moduUnsigned(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	b, a := ip.Pop(), ip.Pop()
	if b == 0 {
		ip.Push(0)
		return machine.Continue
	}
	r := a % b
	if r < 0 {
		if b > 0 {
			r += b
		} else {
			r -= b
		}
	}
	ip.Push(r)
	return machine.Continue
}

func moduCRem(ip *machine.IP, _ *space.Space, _ envrt.Environment) machine.Result {
	b, a := ip.Pop(), ip.Pop()
	if b == 0 {
		ip.Push(0)
		return machine.Continue
	}
	ip.Push(a % b)
	return machine.Continue
}
