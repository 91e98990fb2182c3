package index

import (
	"fmt"

	"github.com/jollans/gofunge/lang/cell"
)

// Index2 is a Befunge (2-D) index: an (x, y) pair.
type Index2 struct {
	X, Y cell.Value
}

var _ Vector = Index2{}

// Vec2 is a convenience constructor.
func Vec2(x, y cell.Value) Index2 { return Index2{X: x, Y: y} }

func (v Index2) String() string { return fmt.Sprintf("(%d, %d)", v.X, v.Y) }
func (v Index2) Rank() int      { return 2 }

// Components returns [X, Y]: X is pushed first (ends up below Y), matching
// the wire format pop_vector/push_vector use for 2-D vectors.
func (v Index2) Components() []cell.Value { return []cell.Value{v.X, v.Y} }

func (v Index2) Add(o Vector) Vector {
	w := o.(Index2)
	return Index2{v.X + w.X, v.Y + w.Y}
}

func (v Index2) Sub(o Vector) Vector {
	w := o.(Index2)
	return Index2{v.X - w.X, v.Y - w.Y}
}

func (v Index2) MulComp(o Vector) Vector {
	w := o.(Index2)
	return Index2{v.X * w.X, v.Y * w.Y}
}

func (v Index2) Scale(s cell.Value) Vector { return Index2{v.X * s, v.Y * s} }
func (v Index2) Negate() Vector            { return Index2{-v.X, -v.Y} }
func (v Index2) IsZero() bool              { return v.X == 0 && v.Y == 0 }

func (v Index2) Equal(o Vector) bool {
	w := o.(Index2)
	return v.X == w.X && v.Y == w.Y
}

func (v Index2) DivModEuclid(o Vector) (Vector, Vector) {
	w := o.(Index2)
	return Index2{cell.DivEuclid(v.X, w.X), cell.DivEuclid(v.Y, w.Y)},
		Index2{cell.ModEuclid(v.X, w.X), cell.ModEuclid(v.Y, w.Y)}
}

func (v Index2) JointMin(o Vector) Vector {
	w := o.(Index2)
	return Index2{min64(v.X, w.X), min64(v.Y, w.Y)}
}

func (v Index2) JointMax(o Vector) Vector {
	w := o.(Index2)
	return Index2{max64(v.X, w.X), max64(v.Y, w.Y)}
}

func min64(a, b cell.Value) cell.Value {
	if a < b {
		return a
	}
	return b
}

func max64(a, b cell.Value) cell.Value {
	if a > b {
		return a
	}
	return b
}

// DistOfRegion implements the geometric test described in §4.2: given a
// ray self + k*delta (k a real number, approximated here over integers),
// return the smallest integer k at which the line enters the half-open
// rectangle [start, start+size), or ok=false if it never does. k is zero or
// negative when the rectangle lies at or behind self.
//
// The rectangle test uses the sign of cross products between delta and the
// four corner-offset vectors: the ray crosses the rectangle only if the
// top-left/bottom-right pair and the top-right/bottom-left pair of corners
// fall on opposite sides of the line.
func DistOfRegion(self, delta, start, size Index2) (cell.Value, bool) {
	relTL := start.Sub(self).(Index2)
	relBR := start.Add(size).Sub(self).(Index2)
	relTR := Index2{relBR.X, relTL.Y}
	relBL := Index2{relTL.X, relBR.Y}

	crossTL := relTL.X*delta.Y - delta.X*relTL.Y
	crossBR := relBR.X*delta.Y - delta.X*relBR.Y
	crossTR := relTR.X*delta.Y - delta.X*relTR.Y
	crossBL := relBL.X*delta.Y - delta.X*relBL.Y

	if signum(crossTL) == signum(crossBR) && signum(crossTR) == signum(crossBL) {
		return 0, false
	}

	if delta.X == 0 {
		return distOfRegion1(self.Y, delta.Y, start.Y, size.Y)
	}

	dist, ok := distOfRegion1(self.X, delta.X, start.X, size.X)
	if !ok {
		return 0, false
	}
	firstPos := self.Add(delta.Scale(dist)).(Index2)
	for firstPos.Y < start.Y || firstPos.Y >= start.Y+size.Y {
		dist++
		firstPos = self.Add(delta.Scale(dist)).(Index2)
		if firstPos.X >= start.X+size.X {
			return 0, false
		}
	}
	return dist, true
}

func signum(v cell.Value) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
