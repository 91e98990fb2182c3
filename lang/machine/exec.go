package machine

import (
	"fmt"

	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/space"
)

// Exec runs one instruction: the cell just fetched at ip.Pos, dispatched
// by the IP's current mode.
func Exec(raw cell.Value, ip *IP, sp *space.Space, env envrt.Environment) Result {
	if ip.Instructions.Mode == ModeString {
		return execString(raw, ip)
	}
	return execNormal(raw, ip, sp, env)
}

func execString(raw cell.Value, ip *IP) Result {
	switch raw.Rune() {
	case '"':
		ip.Instructions.Mode = ModeNormal
		return Continue
	case ' ':
		// The SGML-style space-eater: this cell is pushed, and the caller's
		// Continue move (Space.Move) skips every following blank, so a run
		// of spaces collapses to a single pushed ' '.
		ip.Push(raw)
		return Continue
	default:
		ip.Push(raw)
		ip.Pos = ip.Pos.Add(ip.Delta)
		return StayPut
	}
}

func execNormal(raw cell.Value, ip *IP, sp *space.Space, env envrt.Environment) Result {
	c := raw.Rune()
	switch {
	case c == '@':
		return Exit
	case c == ' ':
		return Continue
	case c == '#':
		ip.Pos = ip.Pos.Add(ip.Delta)
		return Continue
	case c == ';':
		for {
			pos, v := sp.Move(ip.Pos, ip.Delta)
			ip.Pos = pos
			if v.Rune() == ';' {
				break
			}
		}
		return Skip
	case c == '$':
		ip.Pop()
		return Continue
	case c == 'n':
		ip.TOSS().Clear()
		return Continue
	case c == '\\':
		a, b := ip.Pop(), ip.Pop()
		ip.Push(a)
		ip.Push(b)
		return Continue
	case c == ':':
		v := ip.Pop()
		ip.Push(v)
		ip.Push(v)
		return Continue
	case c >= '0' && c <= '9':
		ip.Push(cell.Value(c - '0'))
		return Continue
	case c >= 'a' && c <= 'f':
		ip.Push(cell.Value(0xa + c - 'a'))
		return Continue
	case c == '"':
		ip.Instructions.Mode = ModeString
		ip.Pos = ip.Pos.Add(ip.Delta)
		return StayPut
	case c == '\'':
		ip.Pos = ip.Pos.Add(ip.Delta)
		ip.Push(sp.Read(ip.Pos))
		return Continue
	case c == 's':
		ip.Pos = ip.Pos.Add(ip.Delta)
		sp.Write(ip.Pos, ip.Pop())
		return Continue
	case c == '.':
		fmt.Fprintf(env.Output(), "%d ", ip.Pop())
		return Continue
	case c == ',':
		return outputChar(ip, env)
	case c == '~':
		return inputChar(ip, env)
	case c == '&':
		return inputNumber(ip, env)
	case c == '+':
		b, a := ip.Pop(), ip.Pop()
		ip.Push(a + b)
		return Continue
	case c == '-':
		b, a := ip.Pop(), ip.Pop()
		ip.Push(a - b)
		return Continue
	case c == '*':
		b, a := ip.Pop(), ip.Pop()
		ip.Push(a * b)
		return Continue
	case c == '/':
		b, a := ip.Pop(), ip.Pop()
		ip.Push(cell.DivTrunc(a, b))
		return Continue
	case c == '%':
		b, a := ip.Pop(), ip.Pop()
		ip.Push(cell.ModTrunc(a, b))
		return Continue
	case c == '`':
		b, a := ip.Pop(), ip.Pop()
		ip.Push(cell.Bool(a > b))
		return Continue
	case c == '!':
		ip.Push(cell.Bool(ip.Pop() == 0))
		return Continue
	case c == 'j':
		ip.Pos = ip.Pos.Add(ip.Delta.Scale(ip.Pop()))
		return Continue
	case c == 'x':
		ip.Delta = ip.PopVector()
		return Continue
	case c == 'p':
		loc := ip.PopVector().Add(ip.Offset)
		sp.Write(loc, ip.Pop())
		return Continue
	case c == 'g':
		loc := ip.PopVector().Add(ip.Offset)
		ip.Push(sp.Read(loc))
		return Continue
	case c == 'r':
		ip.Reflect()
		return Continue
	case c == 'z':
		return Continue
	case c == 'k':
		return iterate(ip, sp, env)
	case c == '{':
		return beginBlock(ip)
	case c == '}':
		return endBlock(ip)
	case c == 'u':
		return stackUnderStack(ip)
	case c == 'y':
		return sysinfo(ip, sp, env)
	case c == 'i':
		return inputFile(ip, sp, env)
	case c == 'o':
		return outputFile(ip, sp, env)
	case c == '=':
		return execute(ip, env)
	case c == 't':
		ip.Split = true
		return Continue
	case c == '(':
		if !loadFingerprint(ip, env) {
			ip.Reflect()
		}
		return Continue
	case c == ')':
		if !unloadFingerprint(ip) {
			ip.Reflect()
		}
		return Continue
	default:
		if applyDelta(c, ip) {
			return Continue
		}
		if fn, ok := ip.Instructions.Get(raw); ok {
			return fn(ip, sp, env)
		}
		ip.Reflect()
		env.Warn(fmt.Sprintf("unknown instruction: %q", c))
		return Continue
	}
}
