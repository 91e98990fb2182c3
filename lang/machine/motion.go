package machine

import (
	"math/rand"

	"github.com/jollans/gofunge/lang/index"
)

// applyDelta handles the rank-specific directional instructions. It
// reports whether c was one of them, so the caller can fall through to
// layered/fingerprint instructions and finally to reflect-and-warn.
func applyDelta(c rune, ip *IP) bool {
	switch ip.Rank {
	case 1:
		return applyDelta1(c, ip)
	default:
		return applyDelta2(c, ip)
	}
}

func applyDelta1(c rune, ip *IP) bool {
	switch c {
	case '>':
		ip.Delta = index.Index1{X: 1}
	case '<':
		ip.Delta = index.Index1{X: -1}
	case '?':
		if rand.Intn(2) == 0 {
			ip.Delta = index.Index1{X: 1}
		} else {
			ip.Delta = index.Index1{X: -1}
		}
	case '_':
		if ip.Pop() == 0 {
			ip.Delta = index.Index1{X: 1}
		} else {
			ip.Delta = index.Index1{X: -1}
		}
	default:
		return false
	}
	return true
}

func applyDelta2(c rune, ip *IP) bool {
	switch c {
	case '>':
		ip.Delta = index.Vec2(1, 0)
	case '<':
		ip.Delta = index.Vec2(-1, 0)
	case '^':
		ip.Delta = index.Vec2(0, -1)
	case 'v':
		ip.Delta = index.Vec2(0, 1)
	case '?':
		switch rand.Intn(4) {
		case 0:
			ip.Delta = index.Vec2(1, 0)
		case 1:
			ip.Delta = index.Vec2(-1, 0)
		case 2:
			ip.Delta = index.Vec2(0, -1)
		default:
			ip.Delta = index.Vec2(0, 1)
		}
	case ']':
		d := ip.Delta.(index.Index2)
		ip.Delta = index.Vec2(-d.Y, d.X)
	case '[':
		d := ip.Delta.(index.Index2)
		ip.Delta = index.Vec2(d.Y, -d.X)
	case '_':
		if ip.Pop() == 0 {
			ip.Delta = index.Vec2(1, 0)
		} else {
			ip.Delta = index.Vec2(-1, 0)
		}
	case '|':
		if ip.Pop() == 0 {
			ip.Delta = index.Vec2(0, 1)
		} else {
			ip.Delta = index.Vec2(0, -1)
		}
	case 'w':
		b, a := ip.Pop(), ip.Pop()
		d := ip.Delta.(index.Index2)
		if a > b {
			ip.Delta = index.Vec2(-d.Y, d.X)
		} else if a < b {
			ip.Delta = index.Vec2(d.Y, -d.X)
		}
	default:
		return false
	}
	return true
}
