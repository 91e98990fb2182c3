package index

import (
	"fmt"

	"github.com/jollans/gofunge/lang/cell"
)

// Index1 is a Unefunge (1-D) index: a bare scalar.
type Index1 struct {
	X cell.Value
}

var _ Vector = Index1{}

func (v Index1) String() string           { return fmt.Sprintf("(%d)", v.X) }
func (v Index1) Rank() int                { return 1 }
func (v Index1) Components() []cell.Value { return []cell.Value{v.X} }

func (v Index1) Add(o Vector) Vector    { return Index1{v.X + o.(Index1).X} }
func (v Index1) Sub(o Vector) Vector    { return Index1{v.X - o.(Index1).X} }
func (v Index1) MulComp(o Vector) Vector { return Index1{v.X * o.(Index1).X} }
func (v Index1) Scale(s cell.Value) Vector { return Index1{v.X * s} }
func (v Index1) Negate() Vector         { return Index1{-v.X} }
func (v Index1) IsZero() bool           { return v.X == 0 }
func (v Index1) Equal(o Vector) bool    { return v.X == o.(Index1).X }

func (v Index1) DivModEuclid(o Vector) (Vector, Vector) {
	d := o.(Index1).X
	return Index1{cell.DivEuclid(v.X, d)}, Index1{cell.ModEuclid(v.X, d)}
}

func (v Index1) JointMin(o Vector) Vector {
	w := o.(Index1)
	if v.X < w.X {
		return v
	}
	return w
}

func (v Index1) JointMax(o Vector) Vector {
	w := o.(Index1)
	if v.X > w.X {
		return v
	}
	return w
}

// distOfRegion1 returns the smallest integer k such that self + k*delta lies
// in [start, start+size), or ok=false if no point of the line (for nonzero
// delta) falls in that half-open interval, or delta is zero. k is zero or
// negative when the interval lies at or behind self.
func distOfRegion1(self, delta, start, size cell.Value) (cell.Value, bool) {
	switch {
	case delta > 0:
		dist := cell.DivEuclid(start-self, delta)
		rem := cell.ModEuclid(start-self, delta)
		if rem == 0 {
			return dist, true
		}
		if self+(dist+1)*delta < start+size {
			return dist + 1, true
		}
		return 0, false
	case delta < 0:
		dist := cell.DivEuclid(start+size-1-self, delta)
		if self+dist*delta >= start {
			return dist, true
		}
		return 0, false
	default:
		return 0, false
	}
}
