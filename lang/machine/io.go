package machine

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/index"
	"github.com/jollans/gofunge/lang/space"
)

// outputChar implements ',': write one cell as a character (text mode) or
// a raw byte (binary mode).
func outputChar(ip *IP, env envrt.Environment) Result {
	v := ip.Pop()
	var err error
	if env.IOMode() == envrt.IOModeBinary {
		_, err = env.Output().Write([]byte{v.Byte()})
	} else {
		_, err = env.Output().Write([]byte(string(v.Rune())))
	}
	if err != nil {
		ip.Reflect()
	}
	return Continue
}

// inputChar implements '~': read one byte (binary mode) or one decoded
// rune (text mode), reflecting on EOF or a read error.
func inputChar(ip *IP, env envrt.Environment) Result {
	if env.IOMode() == envrt.IOModeBinary {
		b, ok := readByte(env)
		if !ok {
			ip.Reflect()
			return Continue
		}
		ip.Push(cell.Value(b))
		return Continue
	}

	var buf []byte
	for {
		b, ok := readByte(env)
		if !ok {
			ip.Reflect()
			return Continue
		}
		buf = append(buf, b)
		if utf8.FullRune(buf) {
			r, _ := utf8.DecodeRune(buf)
			ip.Push(cell.FromRune(r))
			return Continue
		}
		if len(buf) >= utf8.UTFMax {
			ip.Reflect()
			return Continue
		}
	}
}

// inputNumber implements '&': skip leading whitespace, then parse a
// decimal integer (with an optional leading '-') off the input stream.
func inputNumber(ip *IP, env envrt.Environment) Result {
	first, ok := skipWhitespaceByte(env)
	if !ok {
		ip.Reflect()
		return Continue
	}

	var buf []byte
	if first == '-' {
		buf = append(buf, first)
		b, ok := readByte(env)
		if !ok {
			ip.Reflect()
			return Continue
		}
		first = b
	}
	for first >= '0' && first <= '9' {
		buf = append(buf, first)
		b, ok := readByte(env)
		if !ok {
			break
		}
		first = b
	}

	n, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		ip.Reflect()
		return Continue
	}
	ip.Push(cell.Value(n))
	return Continue
}

func readByte(env envrt.Environment) (byte, bool) {
	var b [1]byte
	if _, err := env.Input().Read(b[:]); err != nil {
		return 0, false
	}
	return b[0], true
}

func skipWhitespaceByte(env envrt.Environment) (byte, bool) {
	for {
		b, ok := readByte(env)
		if !ok {
			return 0, false
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		return b, true
	}
}

// inputFile implements 'i': pop a position, flags, and filename, load the
// named file into Funge-space at that position, then push the loaded
// size and the position back (so a following 'g' can walk the block).
func inputFile(ip *IP, sp *space.Space, env envrt.Environment) Result {
	if !env.HaveFileInput() {
		ip.Reflect()
		return Continue
	}
	dest := ip.PopVector()
	flags := ip.Pop()
	name := ip.Pop0gnirts()

	data, err := env.ReadFile(name)
	if err != nil {
		ip.Reflect()
		return Continue
	}

	size := LoadBlock(sp, dest, data, flags&1 != 0)
	ip.PushVector(size)
	ip.PushVector(dest)
	return Continue
}

// LoadBlock writes data into sp starting at dest and reports the extent
// written. In linear mode data is laid out as a single contiguous run (the
// only mode a rank-1 space supports); otherwise '\n', '\r' and "\r\n" each
// end a row, the way a rank-2 program's source text is laid out. Each byte
// becomes one cell; multi-byte UTF-8 sequences are not decoded.
func LoadBlock(sp *space.Space, dest index.Vector, data []byte, linear bool) index.Vector {
	switch d := dest.(type) {
	case index.Index1:
		for i, b := range data {
			sp.Write(index.Index1{X: d.X + cell.Value(i)}, cell.Value(b))
		}
		return index.Index1{X: cell.Value(len(data))}
	case index.Index2:
		if linear {
			for i, b := range data {
				sp.Write(index.Vec2(d.X+cell.Value(i), d.Y), cell.Value(b))
			}
			return index.Vec2(cell.Value(len(data)), 1)
		}
		lines := splitLines(data)
		width := cell.Value(0)
		for y, line := range lines {
			if cell.Value(len(line)) > width {
				width = cell.Value(len(line))
			}
			for x, b := range line {
				sp.Write(index.Vec2(d.X+cell.Value(x), d.Y+cell.Value(y)), cell.Value(b))
			}
		}
		return index.Vec2(width, cell.Value(len(lines)))
	default:
		panic("machine: unsupported vector rank")
	}
}

func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			lines = append(lines, data[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, data[start:i])
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}

// outputFile implements 'o': pop a start position, size, flags, and
// filename, and write that rectangle of Funge-space out as a file.
func outputFile(ip *IP, sp *space.Space, env envrt.Environment) Result {
	if !env.HaveFileOutput() {
		ip.Reflect()
		return Continue
	}
	start := ip.PopVector()
	size := ip.PopVector()
	flags := ip.Pop()
	name := ip.Pop0gnirts()

	data := dumpBlock(sp, start, size, flags&1 != 0, flags&2 != 0)
	if err := env.WriteFile(name, data); err != nil {
		ip.Reflect()
	}
	return Continue
}

func dumpBlock(sp *space.Space, start, size index.Vector, linear, stripTrailing bool) []byte {
	switch s := start.(type) {
	case index.Index1:
		sz := size.(index.Index1)
		buf := make([]byte, 0, sz.X)
		for x := cell.Value(0); x < sz.X; x++ {
			buf = append(buf, sp.Read(index.Index1{X: s.X + x}).Byte())
		}
		return buf
	case index.Index2:
		sz := size.(index.Index2)
		var buf bytes.Buffer
		if linear {
			for y := cell.Value(0); y < sz.Y; y++ {
				for x := cell.Value(0); x < sz.X; x++ {
					buf.WriteByte(sp.Read(index.Vec2(s.X+x, s.Y+y)).Byte())
				}
			}
			return buf.Bytes()
		}
		for y := cell.Value(0); y < sz.Y; y++ {
			row := make([]byte, sz.X)
			for x := cell.Value(0); x < sz.X; x++ {
				row[x] = sp.Read(index.Vec2(s.X+x, s.Y+y)).Byte()
			}
			if stripTrailing {
				row = bytes.TrimRight(row, " \x00")
			}
			buf.Write(row)
			buf.WriteByte('\n')
		}
		return buf.Bytes()
	default:
		panic("machine: unsupported vector rank")
	}
}

// execute implements '=': run a shell command through the environment and
// push its exit code. Disabled environments (sandboxed or otherwise)
// reflect instead.
func execute(ip *IP, env envrt.Environment) Result {
	if env.HaveExecute() == envrt.ExecDisabled {
		ip.Reflect()
		return Continue
	}
	cmd := ip.Pop0gnirts()
	code, err := env.Execute(cmd)
	if err != nil {
		ip.Reflect()
		return Continue
	}
	ip.Push(cell.Value(code))
	return Continue
}
