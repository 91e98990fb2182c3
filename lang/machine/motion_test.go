package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jollans/gofunge/lang/index"
)

func TestApplyDelta1(t *testing.T) {
	ip := NewIP(1)

	assert.True(t, applyDelta('<', ip))
	assert.Equal(t, index.Index1{X: -1}, ip.Delta)

	assert.True(t, applyDelta('>', ip))
	assert.Equal(t, index.Index1{X: 1}, ip.Delta)

	ip.Push(0)
	assert.True(t, applyDelta('_', ip))
	assert.Equal(t, index.Index1{X: 1}, ip.Delta)

	ip.Push(5)
	assert.True(t, applyDelta('_', ip))
	assert.Equal(t, index.Index1{X: -1}, ip.Delta)

	assert.False(t, applyDelta('^', ip))
}

func TestApplyDelta2Rotate(t *testing.T) {
	ip := NewIP(2)
	ip.Delta = index.Vec2(1, 0)

	assert.True(t, applyDelta(']', ip))
	assert.Equal(t, index.Vec2(0, 1), ip.Delta)

	assert.True(t, applyDelta('[', ip))
	assert.Equal(t, index.Vec2(1, 0), ip.Delta)
}

func TestApplyDelta2CardinalAndIf(t *testing.T) {
	ip := NewIP(2)
	assert.True(t, applyDelta('^', ip))
	assert.Equal(t, index.Vec2(0, -1), ip.Delta)
	assert.True(t, applyDelta('v', ip))
	assert.Equal(t, index.Vec2(0, 1), ip.Delta)

	ip.Push(0)
	assert.True(t, applyDelta('_', ip))
	assert.Equal(t, index.Vec2(1, 0), ip.Delta)
	ip.Push(1)
	assert.True(t, applyDelta('_', ip))
	assert.Equal(t, index.Vec2(-1, 0), ip.Delta)

	ip.Push(0)
	assert.True(t, applyDelta('|', ip))
	assert.Equal(t, index.Vec2(0, 1), ip.Delta)
	ip.Push(1)
	assert.True(t, applyDelta('|', ip))
	assert.Equal(t, index.Vec2(0, -1), ip.Delta)
}

func TestApplyDelta1RandomIsCardinal(t *testing.T) {
	ip := NewIP(1)
	for i := 0; i < 20; i++ {
		assert.True(t, applyDelta('?', ip))
		assert.Contains(t, []index.Vector{index.Index1{X: 1}, index.Index1{X: -1}}, ip.Delta)
	}
}

func TestApplyDelta2RandomIsCardinal(t *testing.T) {
	ip := NewIP(2)
	cardinals := []index.Vector{
		index.Vec2(1, 0), index.Vec2(-1, 0), index.Vec2(0, -1), index.Vec2(0, 1),
	}
	for i := 0; i < 40; i++ {
		assert.True(t, applyDelta('?', ip))
		assert.Contains(t, cardinals, ip.Delta)
	}
}

func TestApplyDelta2CompareTurn(t *testing.T) {
	ip := NewIP(2)
	ip.Delta = index.Vec2(1, 0)
	ip.Push(5)
	ip.Push(3)
	assert.True(t, applyDelta('w', ip))
	assert.Equal(t, index.Vec2(0, 1), ip.Delta)

	ip.Delta = index.Vec2(1, 0)
	ip.Push(3)
	ip.Push(5)
	assert.True(t, applyDelta('w', ip))
	assert.Equal(t, index.Vec2(0, -1), ip.Delta)
}
