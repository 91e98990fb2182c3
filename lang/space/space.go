// Package space implements Funge-space: the sparse, unbounded, mutable
// integer grid that is both a Funge program's source and its memory.
//
// The representation follows §4.2 of the design: a hash map from page index
// to a fixed-size array (a page), decomposed from any index by Euclidean
// division. This implementation keys that map with a
// github.com/dolthub/swiss.Map, the same swiss-table the teacher uses for
// its own runtime Map value (lang/machine/map.go) — an interface key
// (index.Vector) works there exactly as it does here, since dolthub/swiss
// only requires a comparable key type.
package space

import (
	"sort"

	"github.com/dolthub/swiss"

	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/index"
)

// page is a fixed-size array of cells, allocated lazily on first write.
type page struct {
	cells []cell.Value
}

func newPage(size int) *page {
	p := &page{cells: make([]cell.Value, size)}
	for i := range p.cells {
		p.cells[i] = cell.Blank
	}
	return p
}

// Space is a paged Funge-space for a single rank (1 or 2).
type Space struct {
	rank     int
	pageSize index.Vector
	pages    *swiss.Map[index.Vector, *page]
}

// Option configures a new Space.
type Option func(*Space)

// WithPageSize overrides the default page size (1000 for rank 1, 80x25 for
// rank 2).
func WithPageSize(size index.Vector) Option {
	return func(s *Space) { s.pageSize = size }
}

// New creates an empty Funge-space of the given rank (1 or 2).
func New(rank int, opts ...Option) *Space {
	s := &Space{rank: rank}
	switch rank {
	case 1:
		s.pageSize = index.Index1{X: 1000}
	case 2:
		s.pageSize = index.Vec2(80, 25)
	default:
		panic("space: unsupported rank")
	}
	for _, opt := range opts {
		opt(s)
	}
	s.pages = swiss.NewMap[index.Vector, *page](uint32(16))
	return s
}

// Rank returns the rank (1 or 2) this space was created with.
func (s *Space) Rank() int { return s.rank }

// PageSize returns the configured page size.
func (s *Space) PageSize() index.Vector { return s.pageSize }

func (s *Space) pageFor(pos index.Vector) (pageIdx, offset index.Vector) {
	return pos.DivModEuclid(s.pageSize)
}

// Read returns the cell at pos. Any index is readable; an unset cell reads
// as the blank (space) value.
func (s *Space) Read(pos index.Vector) cell.Value {
	pageIdx, offset := s.pageFor(pos)
	pg, ok := s.pages.Get(pageIdx)
	if !ok {
		return cell.Blank
	}
	return pg.cells[index.ToLinear(offset, s.pageSize)]
}

// Write sets the cell at pos. Writing the blank value to a never-allocated
// page does not force allocation; it already reads back as blank.
func (s *Space) Write(pos index.Vector, v cell.Value) {
	pageIdx, offset := s.pageFor(pos)
	lin := index.ToLinear(offset, s.pageSize)
	if v == cell.Blank {
		if pg, ok := s.pages.Get(pageIdx); ok {
			pg.cells[lin] = cell.Blank
		}
		return
	}
	pg, ok := s.pages.Get(pageIdx)
	if !ok {
		pg = newPage(index.LinSize(s.pageSize))
		s.pages.Put(pageIdx, pg)
	}
	pg.cells[lin] = v
}

// BoundingBox returns the smallest and largest index such that no non-blank
// cell lies outside, or ok=false if Funge-space is entirely blank. It scans
// every allocated page, matching the teacher lineage's own min_idx/max_idx
// (computed fresh per query rather than cached, since a later blank write
// need not shrink a cached box, but a query must still report the tightest
// box over current content).
func (s *Space) BoundingBox() (lo, hi index.Vector, ok bool) {
	var have bool
	s.pages.Iter(func(pageIdx index.Vector, pg *page) bool {
		origin := pageIdx.MulComp(s.pageSize)
		for lin, v := range pg.cells {
			if v == cell.Blank {
				continue
			}
			abs := origin.Add(index.FromLinear(lin, s.pageSize))
			if !have {
				lo, hi = abs, abs
				have = true
				continue
			}
			lo = lo.JointMin(abs)
			hi = hi.JointMax(abs)
		}
		return false
	})
	return lo, hi, have
}

// Move implements the movement primitive of §3/§4.2: given a start and
// delta, return the next position along the ray start + k*delta (k >= 1)
// whose cell is non-blank, together with its value. If no non-blank cell
// exists on the entire ray, it returns the starting position and its value.
func (s *Space) Move(start, delta index.Vector) (index.Vector, cell.Value) {
	idx := start.Add(delta)
	pageIdx, offset := s.pageFor(idx)

	// Straight scan while we're inside allocated pages.
	for {
		pg, ok := s.pages.Get(pageIdx)
		if !ok {
			break
		}
		if v := pg.cells[index.ToLinear(offset, s.pageSize)]; v != cell.Blank {
			return idx, v
		}
		idx = idx.Add(delta)
		pageIdx, offset = s.pageFor(idx)
	}

	// We've hit unallocated space. Rather than scan empty pages forever,
	// enumerate populated pages and jump straight to whichever one the ray
	// reaches first.
	pageOrigin := pageIdx.MulComp(s.pageSize)
	curDist, curOK := index.DistOfRegionV(idx, delta, pageOrigin, s.pageSize)
	if !curOK {
		return start, s.Read(start)
	}

	type candidate struct {
		pageIdx index.Vector
		dist    cell.Value
	}
	var candidates []candidate
	s.pages.Iter(func(k index.Vector, _ *page) bool {
		origin := k.MulComp(s.pageSize)
		d, ok := index.DistOfRegionV(start, delta, origin, s.pageSize)
		if !ok {
			return false
		}
		if d > curDist || d <= 0 {
			candidates = append(candidates, candidate{k, d})
		}
		return false
	})
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		aNeg, bNeg := a.dist <= 0, b.dist <= 0
		if aNeg != bNeg {
			return bNeg // positive distances sort before non-positive ones
		}
		return a.dist < b.dist
	})

	for _, c := range candidates {
		newIdx := start.Add(delta.Scale(c.dist))
		curPageIdx, offsetInPage := s.pageFor(newIdx)
		for curPageIdx.Equal(c.pageIdx) {
			pg, ok := s.pages.Get(curPageIdx)
			if !ok {
				break
			}
			if v := pg.cells[index.ToLinear(offsetInPage, s.pageSize)]; v != cell.Blank {
				return newIdx, v
			}
			newIdx = newIdx.Add(delta)
			curPageIdx, offsetInPage = s.pageFor(newIdx)
		}
	}

	// Nothing found on the entire ray.
	return start, s.Read(start)
}
