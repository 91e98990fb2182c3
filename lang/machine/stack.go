package machine

import (
	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/index"
)

// Stack is one component stack of an IP's stack-of-stacks. Popping an
// empty stack yields zero rather than erroring or panicking.
type Stack struct {
	items []cell.Value
}

func (s *Stack) Push(v cell.Value) { s.items = append(s.items, v) }

func (s *Stack) Pop() cell.Value {
	if len(s.items) == 0 {
		return 0
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v
}

func (s *Stack) Len() int { return len(s.items) }

// At returns the item at depth i from the bottom (0 is the oldest item),
// used by the 'y' sysinfo pick-from-stack fallback.
func (s *Stack) At(i int) cell.Value { return s.items[i] }

func (s *Stack) Clear() { s.items = s.items[:0] }

// PopVector pops a rank-sized vector off the stack, y before x for rank 2
// (x sits below y), matching the wire order index.Vector.Components uses.
func (s *Stack) PopVector(rank int) index.Vector {
	comps := make([]cell.Value, rank)
	for i := rank - 1; i >= 0; i-- {
		comps[i] = s.Pop()
	}
	return index.FromComponents(rank, comps)
}

// PushVector pushes a vector's components in order (x before y), so the
// last component ends up on top.
func (s *Stack) PushVector(v index.Vector) {
	for _, c := range v.Components() {
		s.Push(c)
	}
}

// Pop0gnirts pops a NUL-terminated string (Funge's reversed-on-stack
// string convention): characters come off the stack until a zero cell,
// building the string in the order it was written.
func (s *Stack) Pop0gnirts() string {
	var runes []rune
	for {
		c := s.Pop()
		if c == 0 {
			break
		}
		runes = append(runes, c.Rune())
	}
	return string(runes)
}

// PushGnirts pushes a string the way '0"..."' reads one back: a trailing
// zero, then the characters in reverse so popping them in order yields
// the string front-to-back.
func PushGnirts(s *Stack, str string) {
	s.Push(0)
	runes := []rune(str)
	for i := len(runes) - 1; i >= 0; i-- {
		s.Push(cell.FromRune(runes[i]))
	}
}
