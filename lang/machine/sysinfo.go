package machine

import (
	"runtime"
	"time"

	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/index"
	"github.com/jollans/gofunge/lang/space"
)

// sysinfo implements 'y'. With n <= 0 it pushes the whole info block in
// reverse (so popping it back reads front to back); with n within the
// block it pushes just that one field; with n beyond the block it reaches
// past sysinfo's own cells and picks an item out of the stack that was
// already there.
func sysinfo(ip *IP, sp *space.Space, env envrt.Environment) Result {
	n := ip.Pop()
	cells := buildSysInfoCells(ip, sp, env)

	if int(n) > len(cells) {
		depth := int(n) - len(cells)
		toss := ip.TOSS()
		idx := toss.Len() - depth
		if idx < 0 {
			ip.Push(0)
			return Continue
		}
		ip.Push(toss.At(idx))
		return Continue
	}
	if n > 0 {
		ip.Push(cells[n-1])
		return Continue
	}
	for i := len(cells) - 1; i >= 0; i-- {
		ip.Push(cells[i])
	}
	return Continue
}

func buildSysInfoCells(ip *IP, sp *space.Space, env envrt.Environment) []cell.Value {
	var cells []cell.Value

	flags := cell.Value(1) // bit 0: 't' (concurrent Funge-98) supported
	if env.HaveFileInput() {
		flags |= 1 << 1
	}
	if env.HaveFileOutput() {
		flags |= 1 << 2
	}
	if env.HaveExecute() != envrt.ExecDisabled {
		flags |= 1 << 3
	}
	if !env.IsIOBuffered() {
		flags |= 1 << 4
	}
	cells = append(cells, flags)
	cells = append(cells, 8) // cell size, bytes
	cells = append(cells, cell.Value(env.Handprint()))
	cells = append(cells, 1) // implementation version

	var paradigm cell.Value
	switch env.HaveExecute() {
	case envrt.ExecSystem:
		paradigm = 1
	case envrt.ExecSpecificShell:
		paradigm = 2
	case envrt.ExecSameShell:
		paradigm = 3
	}
	cells = append(cells, paradigm)

	pathSep := byte('/')
	if runtime.GOOS == "windows" {
		pathSep = '\\'
	}
	cells = append(cells, cell.Value(pathSep))

	cells = append(cells, cell.Value(ip.Rank))
	cells = append(cells, ip.ID)
	cells = append(cells, 0) // team number

	cells = append(cells, ip.Pos.Components()...)
	cells = append(cells, ip.Delta.Components()...)
	cells = append(cells, ip.Offset.Components()...)

	lo, hi, ok := sp.BoundingBox()
	if !ok {
		lo, hi = index.Origin(ip.Rank), index.Origin(ip.Rank)
	}
	cells = append(cells, lo.Components()...)
	cells = append(cells, hi.Sub(lo).Components()...)

	now := time.Unix(env.Timestamp(), 0).UTC()
	dateVal := cell.Value((now.Year()-1900)*256*256 + int(now.Month())*256 + now.Day())
	timeVal := cell.Value(now.Hour()*256*256 + now.Minute()*256 + now.Second())
	cells = append(cells, dateVal, timeVal)

	cells = append(cells, cell.Value(len(ip.Stacks)))
	for i := len(ip.Stacks) - 1; i >= 0; i-- {
		cells = append(cells, cell.Value(ip.Stacks[i].Len()))
	}

	cells = append(cells, encodeStrings(env.Argv())...)
	cells = append(cells, encodeStrings(env.EnvVars())...)

	return cells
}

// encodeStrings lays out strings the way sysinfo's argv/env blocks do:
// each string as its runes followed by a terminating zero, with one more
// trailing zero marking the end of the whole list.
func encodeStrings(strs []string) []cell.Value {
	var out []cell.Value
	for _, s := range strs {
		for _, r := range s {
			out = append(out, cell.FromRune(r))
		}
		out = append(out, 0)
	}
	out = append(out, 0)
	return out
}
