// Package index implements the 1-D (Unefunge) and 2-D (Befunge) index
// vectors used to address Funge-space and to drive instruction-pointer
// motion. Both ranks satisfy the same Vector capability set so that the
// rest of the core (space, machine) can stay rank-polymorphic, in the
// same spirit as the teacher's rank-tagged Value dispatch: a small plain
// interface with type assertions inside each concrete implementation,
// rather than a generic type parameter threaded through every package.
package index

import (
	"fmt"

	"github.com/jollans/gofunge/lang/cell"
)

// Vector is the capability set every index rank must provide: vector
// arithmetic, Euclidean div/rem (for page math only — ordinary Funge
// arithmetic on cells uses truncated division, see package cell), and
// joint min/max for bounding-box tracking.
type Vector interface {
	fmt.Stringer

	// Rank returns 1 for Unefunge, 2 for Befunge.
	Rank() int

	// Components returns the scalar components of the vector in the order
	// they are pushed to an IP's stack (x before y for rank 2), so that the
	// last element is the one that ends up on top.
	Components() []cell.Value

	Add(Vector) Vector
	Sub(Vector) Vector
	MulComp(Vector) Vector
	Scale(cell.Value) Vector
	Negate() Vector

	// DivModEuclid returns componentwise Euclidean quotient and remainder
	// against another vector (used to decompose an index into a page index
	// and an in-page offset).
	DivModEuclid(Vector) (q, r Vector)

	JointMin(Vector) Vector
	JointMax(Vector) Vector

	IsZero() bool
	Equal(Vector) bool
}

// FromComponents assembles a Vector of the given rank from scalar
// components in push order (the inverse of Vector.Components).
func FromComponents(rank int, comps []cell.Value) Vector {
	switch rank {
	case 1:
		return Index1{X: comps[0]}
	case 2:
		return Index2{X: comps[0], Y: comps[1]}
	default:
		panic(fmt.Sprintf("index: unsupported rank %d", rank))
	}
}

// Origin returns the zero vector of the given rank.
func Origin(rank int) Vector {
	switch rank {
	case 1:
		return Index1{}
	case 2:
		return Index2{}
	default:
		panic(fmt.Sprintf("index: unsupported rank %d", rank))
	}
}

// ToLinear maps an already page-reduced index (0 <= component < pageSize
// component) to a linear offset within a page of the given size.
func ToLinear(idxInPage, pageSize Vector) int {
	switch v := idxInPage.(type) {
	case Index1:
		return int(v.X)
	case Index2:
		ps := pageSize.(Index2)
		return int(v.X) + int(v.Y)*int(ps.X)
	default:
		panic(fmt.Sprintf("index: unsupported vector type %T", idxInPage))
	}
}

// FromLinear is the inverse of ToLinear: given a linear offset and the page
// size, returns the in-page vector.
func FromLinear(lin int, pageSize Vector) Vector {
	switch ps := pageSize.(type) {
	case Index1:
		return Index1{X: cell.Value(lin)}
	case Index2:
		width := int(ps.X)
		return Index2{X: cell.Value(lin % width), Y: cell.Value(lin / width)}
	default:
		panic(fmt.Sprintf("index: unsupported vector type %T", pageSize))
	}
}

// DistOfRegionV returns the smallest integer k such that self + k*delta
// lands inside the half-open rectangle/interval [start, start+size), or
// ok=false if the line never enters it; k is zero or negative when the
// region lies at or behind self. It dispatches to the rank-specific geometric
// test (distOfRegion1 for Unefunge, DistOfRegion for Befunge).
func DistOfRegionV(self, delta, start, size Vector) (cell.Value, bool) {
	switch s := self.(type) {
	case Index1:
		return distOfRegion1(s.X, delta.(Index1).X, start.(Index1).X, size.(Index1).X)
	case Index2:
		return DistOfRegion(s, delta.(Index2), start.(Index2), size.(Index2))
	default:
		panic(fmt.Sprintf("index: unsupported vector type %T", self))
	}
}

// LinSize returns the number of cells in a page of the given size.
func LinSize(pageSize Vector) int {
	switch ps := pageSize.(type) {
	case Index1:
		return int(ps.X)
	case Index2:
		return int(ps.X) * int(ps.Y)
	default:
		panic(fmt.Sprintf("index: unsupported vector type %T", pageSize))
	}
}
