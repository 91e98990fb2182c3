package machine

import (
	"context"

	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/space"
)

// Status reports how a Machine run ended.
type Status int

const (
	StatusDone Status = iota
	StatusPaused
	StatusPanicked
)

// Machine runs one or more IPs over a shared Funge-space and environment.
// It generalizes the teacher lineage's single-IP Interpreter.run loop
// (which only ever advanced the last entry of its own ips slice) to
// actually schedule every live IP, round-robin, one instruction each per
// pass — the concurrent-Funge-98 behavior that 't' requires.
type Machine struct {
	Space *space.Space
	Env   envrt.Environment

	ips    []*IP
	nextID cell.Value

	// MaxSteps caps the total instructions executed across every IP; zero
	// means unlimited. Reaching it pauses the run rather than aborting it.
	MaxSteps int
	steps    int
}

// NewMachine creates a Machine with a single IP at the origin.
func NewMachine(sp *space.Space, env envrt.Environment, rank int) *Machine {
	ip := NewIP(rank)
	return &Machine{Space: sp, Env: env, ips: []*IP{ip}, nextID: 1}
}

// IPs returns the currently live instruction pointers.
func (m *Machine) IPs() []*IP { return m.ips }

// Run drives every live IP forward, one instruction per pass, until none
// remain, the step budget (if any) is exhausted, or one of them panics. It
// is RunContext(context.Background()).
func (m *Machine) Run() Status {
	return m.RunContext(context.Background())
}

// RunContext is Run with cooperative cancellation: ctx is checked once per
// pass over the live IPs, the same granularity at which the teacher
// lineage's bytecode Thread.run checks its own cancellation signal.
func (m *Machine) RunContext(ctx context.Context) Status {
	for {
		if len(m.ips) == 0 {
			return StatusDone
		}
		if err := ctx.Err(); err != nil {
			return StatusPaused
		}
		for i := 0; i < len(m.ips); i++ {
			ip := m.ips[i]
			if ip.Dead {
				continue
			}
			if m.MaxSteps > 0 && m.steps >= m.MaxSteps {
				return StatusPaused
			}
			m.steps++

			raw := m.Space.Read(ip.Pos)
			result := Exec(raw, ip, m.Space, m.Env)
			from := ip.Pos

			switch result {
			case Continue, Skip:
				pos, _ := m.Space.Move(ip.Pos, ip.Delta)
				ip.Pos = pos
			case StayPut:
			case Exit:
				ip.Dead = true
			case Panic:
				return StatusPanicked
			}

			if ip.Split {
				ip.Split = false
				child := ip.Clone(m.nextID)
				m.nextID++
				child.Delta = child.Delta.Negate()
				child.Pos, _ = m.Space.Move(from, child.Delta)
				m.ips = append(m.ips, nil)
				copy(m.ips[i+2:], m.ips[i+1:])
				m.ips[i+1] = child
			}
		}
		m.ips = compactIPs(m.ips)
	}
}

func compactIPs(ips []*IP) []*IP {
	out := ips[:0]
	for _, ip := range ips {
		if !ip.Dead {
			out = append(out, ip)
		}
	}
	return out
}
