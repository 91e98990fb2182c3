package machine

import (
	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/index"
)

// IP is one instruction pointer: a cursor over Funge-space with its own
// stack-of-stacks, storage offset, and instruction layers. A running
// program may have several, spawned by 't' and scheduled round-robin by a
// Machine.
type IP struct {
	ID    cell.Value
	Rank  int
	Pos   index.Vector
	Delta index.Vector

	// Offset is the storage offset applied by 'p' and 'g'.
	Offset index.Vector

	// Stacks is the stack-of-stacks; Stacks[len(Stacks)-1] is the TOSS, the
	// one every push/pop/arithmetic instruction acts on.
	Stacks []*Stack

	Instructions *Layers

	// Scratch is per-IP storage a fingerprint can stash state in (keyed by
	// its own convention, typically "<FPR>.<name>"), carried across a 't'
	// split the same way the rest of the IP is.
	Scratch map[string]any

	// Dead marks an IP that hit '@' or diverged irrecoverably; the
	// scheduler removes it at the next opportunity.
	Dead bool

	// Split is set by 't' and cleared by the scheduler once it has spawned
	// the child IP; the IP itself has no way to allocate the child's ID.
	Split bool
}

// NewIP returns a fresh IP at the origin of the given rank, moving in the
// rank's default direction (east for Befunge, increasing for Unefunge).
func NewIP(rank int) *IP {
	origin := index.Origin(rank)
	delta := defaultDelta(rank)
	return &IP{
		Rank:         rank,
		Pos:          origin,
		Delta:        delta,
		Offset:       origin,
		Stacks:       []*Stack{{}},
		Instructions: NewLayers(),
		Scratch:      map[string]any{},
	}
}

func defaultDelta(rank int) index.Vector {
	switch rank {
	case 1:
		return index.Index1{X: 1}
	default:
		return index.Vec2(1, 0)
	}
}

// Clone returns an independent copy of ip for 't': a new IP with its own
// stacks, layers, and scratch space, sharing nothing mutable with the
// parent.
func (ip *IP) Clone(newID cell.Value) *IP {
	stacks := make([]*Stack, len(ip.Stacks))
	for i, s := range ip.Stacks {
		cp := *s
		cp.items = append([]cell.Value(nil), s.items...)
		stacks[i] = &cp
	}
	scratch := make(map[string]any, len(ip.Scratch))
	for k, v := range ip.Scratch {
		scratch[k] = v
	}
	return &IP{
		ID:           newID,
		Rank:         ip.Rank,
		Pos:          ip.Pos,
		Delta:        ip.Delta,
		Offset:       ip.Offset,
		Stacks:       stacks,
		Instructions: ip.Instructions.Clone(),
		Scratch:      scratch,
	}
}

// TOSS returns the active, top-of-stack-stack stack.
func (ip *IP) TOSS() *Stack { return ip.Stacks[len(ip.Stacks)-1] }

func (ip *IP) Pop() cell.Value   { return ip.TOSS().Pop() }
func (ip *IP) Push(v cell.Value) { ip.TOSS().Push(v) }

func (ip *IP) PopVector() index.Vector   { return ip.TOSS().PopVector(ip.Rank) }
func (ip *IP) PushVector(v index.Vector) { ip.TOSS().PushVector(v) }
func (ip *IP) Pop0gnirts() string        { return ip.TOSS().Pop0gnirts() }

// Reflect reverses the IP's delta, the universal "that didn't work"
// response: bad instruction, failed I/O, division setup errors, and so on.
func (ip *IP) Reflect() { ip.Delta = ip.Delta.Negate() }
