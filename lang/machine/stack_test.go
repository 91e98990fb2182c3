package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/index"
)

func TestStackPopEmptyYieldsZero(t *testing.T) {
	s := &Stack{}
	assert.Equal(t, cell.Value(0), s.Pop())
}

func TestStackPushPopOrder(t *testing.T) {
	s := &Stack{}
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, cell.Value(3), s.Pop())
	assert.Equal(t, cell.Value(2), s.Pop())
	assert.Equal(t, cell.Value(1), s.Pop())
}

func TestStackPushPopVectorRank2(t *testing.T) {
	s := &Stack{}
	s.PushVector(index.Vec2(7, -3))
	v := s.PopVector(2)
	assert.Equal(t, index.Vec2(7, -3), v)
}

func TestStackGnirtsRoundTrip(t *testing.T) {
	s := &Stack{}
	PushGnirts(s, "hi")
	assert.Equal(t, "hi", s.Pop0gnirts())
}

func TestStackClearAndLen(t *testing.T) {
	s := &Stack{}
	s.Push(1)
	s.Push(2)
	assert.Equal(t, 2, s.Len())
	s.Clear()
	assert.Equal(t, 0, s.Len())
}
