package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/index"
	"github.com/jollans/gofunge/lang/space"
)

func TestBeginBlockTransfersItemsAndSavesOffset(t *testing.T) {
	ip := NewIP(2)
	ip.Pos = index.Vec2(5, 5)
	ip.Delta = index.Vec2(1, 0)
	oldOffset := ip.Offset

	ip.Push(10)
	ip.Push(20)
	ip.Push(30)
	ip.Push(2) // n

	result := beginBlock(ip)
	assert.Equal(t, Continue, result)
	assert.Len(t, ip.Stacks, 2)

	toss := ip.TOSS()
	assert.Equal(t, cell.Value(30), toss.Pop())
	assert.Equal(t, cell.Value(20), toss.Pop())
	assert.Equal(t, 0, toss.Len())

	soss := ip.Stacks[0]
	assert.Equal(t, oldOffset, soss.PopVector(2))
	assert.Equal(t, cell.Value(10), soss.Pop())

	assert.Equal(t, index.Vec2(6, 5), ip.Offset)
}

func TestBeginBlockNegativeNPadsWithZeros(t *testing.T) {
	ip := NewIP(2)
	ip.Push(7)
	ip.Push(-2)

	result := beginBlock(ip)
	assert.Equal(t, Continue, result)
	assert.Equal(t, 0, ip.TOSS().Len())

	soss := ip.Stacks[0]
	soss.PopVector(2) // discard saved offset
	assert.Equal(t, cell.Value(0), soss.Pop())
	assert.Equal(t, cell.Value(0), soss.Pop())
	assert.Equal(t, cell.Value(7), soss.Pop())
}

func TestBeginEndBlockRoundTrip(t *testing.T) {
	ip := NewIP(2)
	ip.Pos = index.Vec2(5, 5)
	ip.Delta = index.Vec2(1, 0)

	ip.Push(10)
	ip.Push(20)
	ip.Push(30)
	ip.Push(2)
	beginBlock(ip)

	ip.Push(99)
	ip.Push(3)
	result := endBlock(ip)
	assert.Equal(t, Continue, result)
	assert.Len(t, ip.Stacks, 1)
	assert.Equal(t, index.Vec2(0, 0), ip.Offset)

	toss := ip.TOSS()
	assert.Equal(t, cell.Value(99), toss.Pop())
	assert.Equal(t, cell.Value(30), toss.Pop())
	assert.Equal(t, cell.Value(20), toss.Pop())
	assert.Equal(t, cell.Value(10), toss.Pop())
	assert.Equal(t, 0, toss.Len())
}

func TestEndBlockReflectsWithNoSoss(t *testing.T) {
	ip := NewIP(2)
	before := ip.Delta
	ip.Push(0)
	result := endBlock(ip)
	assert.Equal(t, Continue, result)
	assert.Equal(t, before.Negate(), ip.Delta)
}

func TestStackUnderStackPositiveMovesSossToToss(t *testing.T) {
	ip := NewIP(2)
	ip.Stacks = []*Stack{{}, {}}
	soss := ip.Stacks[0]
	toss := ip.Stacks[1]
	soss.Push(1)
	soss.Push(2)
	toss.Push(3)
	toss.Push(2) // n

	result := stackUnderStack(ip)
	assert.Equal(t, Continue, result)
	assert.Equal(t, cell.Value(1), toss.Pop())
	assert.Equal(t, cell.Value(2), toss.Pop())
	assert.Equal(t, cell.Value(3), toss.Pop())
	assert.Equal(t, 0, soss.Len())
}

func TestStackUnderStackNegativeMovesTossToSoss(t *testing.T) {
	ip := NewIP(2)
	ip.Stacks = []*Stack{{}, {}}
	soss := ip.Stacks[0]
	toss := ip.Stacks[1]
	toss.Push(1)
	toss.Push(2)
	toss.Push(3)
	toss.Push(-2) // n

	result := stackUnderStack(ip)
	assert.Equal(t, Continue, result)
	assert.Equal(t, cell.Value(1), toss.Pop())
	assert.Equal(t, 0, toss.Len())
	assert.Equal(t, cell.Value(2), soss.Pop())
	assert.Equal(t, cell.Value(3), soss.Pop())
	assert.Equal(t, 0, soss.Len())
}

func TestStackUnderStackReflectsWithOneStack(t *testing.T) {
	ip := NewIP(2)
	before := ip.Delta
	ip.Push(1)
	result := stackUnderStack(ip)
	assert.Equal(t, Continue, result)
	assert.Equal(t, before.Negate(), ip.Delta)
}

func TestIterateRepeatsInstructionNTimes(t *testing.T) {
	sp := space.New(2)
	sp.Write(index.Vec2(1, 0), cell.FromRune('1'))
	ip := NewIP(2)
	ip.Pos = index.Vec2(0, 0)
	ip.Delta = index.Vec2(1, 0)
	ip.Push(3)
	env := newTestEnv("")

	result := iterate(ip, sp, env)
	assert.Equal(t, Continue, result)
	assert.Equal(t, 3, ip.TOSS().Len())
	assert.Equal(t, cell.Value(1), ip.Pop())
	assert.Equal(t, index.Vec2(1, 0), ip.Pos)
}

func TestIterateZeroSkipsWithoutExecuting(t *testing.T) {
	sp := space.New(2)
	sp.Write(index.Vec2(1, 0), cell.FromRune('1'))
	ip := NewIP(2)
	ip.Push(0)
	env := newTestEnv("")

	result := iterate(ip, sp, env)
	assert.Equal(t, Continue, result)
	assert.Equal(t, 0, ip.TOSS().Len())
	assert.Equal(t, index.Vec2(1, 0), ip.Pos)
}

func TestIterateSkipsNestedComments(t *testing.T) {
	sp := space.New(2)
	// k ; skip me ; 1
	sp.Write(index.Vec2(1, 0), cell.FromRune(';'))
	sp.Write(index.Vec2(2, 0), cell.FromRune('z'))
	sp.Write(index.Vec2(3, 0), cell.FromRune(';'))
	sp.Write(index.Vec2(4, 0), cell.FromRune('1'))
	ip := NewIP(2)
	ip.Delta = index.Vec2(1, 0)
	ip.Push(2)

	env := newTestEnv("")
	result := iterate(ip, sp, env)
	assert.Equal(t, Continue, result)
	assert.Equal(t, 2, ip.TOSS().Len())
	assert.Equal(t, cell.Value(1), ip.Pop())
}
