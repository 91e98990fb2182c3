package machine

import (
	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/index"
	"github.com/jollans/gofunge/lang/space"
)

// nextNonComment finds the next cell along delta from ip.Pos, the way 'k'
// looks ahead for the instruction it will repeat: runs of blanks are
// skipped by Move itself, and a ';' is treated as opening a comment that
// extends to its matching close.
func nextNonComment(ip *IP, sp *space.Space) (index.Vector, cell.Value) {
	pos, v := sp.Move(ip.Pos, ip.Delta)
	for v.Rune() == ';' {
		for {
			pos, v = sp.Move(pos, ip.Delta)
			if v.Rune() == ';' {
				break
			}
		}
		pos, v = sp.Move(pos, ip.Delta)
	}
	return pos, v
}

// iterate implements 'k': look ahead (skipping comments) to the next
// instruction and run it n times in place. 0k skips it entirely; a
// negative n is likewise treated as skip, since there is nothing sensible
// to repeat a negative number of times.
func iterate(ip *IP, sp *space.Space, env envrt.Environment) Result {
	n := ip.Pop()
	if n <= 0 {
		pos, _ := sp.Move(ip.Pos, ip.Delta)
		ip.Pos = pos
		return Continue
	}
	targetPos, v := nextNonComment(ip, sp)
	ip.Pos = targetPos
	result := Result(Continue)
	for i := cell.Value(0); i < n; i++ {
		result = Exec(v, ip, sp, env)
		if result != Continue && result != Skip {
			return result
		}
	}
	return Continue
}

// beginBlock implements '{': push a fresh TOSS, carrying n items over from
// the stack beneath it (or padding that stack with zeros if n is
// negative), and save the current storage offset on what becomes the SOSS.
func beginBlock(ip *IP) Result {
	n := ip.Pop()
	old := ip.TOSS()
	newOffset := ip.Pos.Add(ip.Delta)

	var transfer []cell.Value
	switch {
	case n > 0:
		transfer = make([]cell.Value, n)
		for i := cell.Value(0); i < n; i++ {
			transfer[n-1-i] = old.Pop()
		}
	case n < 0:
		for i := cell.Value(0); i < -n; i++ {
			old.Push(0)
		}
	}

	old.PushVector(ip.Offset)

	newToss := &Stack{}
	for _, v := range transfer {
		newToss.Push(v)
	}
	ip.Stacks = append(ip.Stacks, newToss)
	ip.Offset = newOffset
	return Continue
}

// endBlock implements '}': drop the current TOSS, restore the storage
// offset saved by the matching '{', and transfer n items down into the
// stack that becomes the new TOSS (or discard |n| of its items if n is
// negative). With no SOSS to unwind into, it reflects instead.
func endBlock(ip *IP) Result {
	if len(ip.Stacks) < 2 {
		ip.Reflect()
		return Continue
	}
	n := ip.Pop()
	old := ip.Stacks[len(ip.Stacks)-1]
	ip.Stacks = ip.Stacks[:len(ip.Stacks)-1]
	soss := ip.Stacks[len(ip.Stacks)-1]

	ip.Offset = soss.PopVector(ip.Rank)

	switch {
	case n > 0:
		transfer := make([]cell.Value, n)
		for i := cell.Value(0); i < n; i++ {
			transfer[n-1-i] = old.Pop()
		}
		for _, v := range transfer {
			soss.Push(v)
		}
	case n < 0:
		for i := cell.Value(0); i < -n; i++ {
			soss.Pop()
		}
	}
	return Continue
}

// stackUnderStack implements 'u': move n items between the top two
// stacks, SOSS to TOSS for positive n and TOSS to SOSS for negative n.
// With only one stack there is nothing underneath, so it reflects.
func stackUnderStack(ip *IP) Result {
	if len(ip.Stacks) < 2 {
		ip.Reflect()
		return Continue
	}
	n := ip.Pop()
	toss := ip.Stacks[len(ip.Stacks)-1]
	soss := ip.Stacks[len(ip.Stacks)-2]

	switch {
	case n > 0:
		for i := cell.Value(0); i < n; i++ {
			toss.Push(soss.Pop())
		}
	case n < 0:
		for i := cell.Value(0); i < -n; i++ {
			soss.Push(toss.Pop())
		}
	}
	return Continue
}
