package fingerprint_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jollans/gofunge/lang/cell"
	"github.com/jollans/gofunge/lang/envrt"
	_ "github.com/jollans/gofunge/lang/fingerprint"
	"github.com/jollans/gofunge/lang/index"
	"github.com/jollans/gofunge/lang/machine"
	"github.com/jollans/gofunge/lang/space"
)

// loadByID pushes a fingerprint's four-character name in writing order
// plus a count, then runs '(' to bind it, matching the protocol popFingerprintID
// expects.
func loadByID(t *testing.T, ip *machine.IP, sp *space.Space, env envrt.Environment, name string) {
	t.Helper()
	for _, r := range name {
		ip.Push(cell.FromRune(r))
	}
	ip.Push(cell.Value(len(name)))
	result := machine.Exec(cell.FromRune('('), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
}

func newFixture(t *testing.T) (*machine.IP, *space.Space, envrt.Environment) {
	t.Helper()
	ip := machine.NewIP(2)
	ip.Delta = index.Vec2(1, 0)
	return ip, space.New(2), newTestEnv()
}

// testEnv is a minimal envrt.Environment for exercising fingerprint
// instruction bodies without touching the real filesystem or shell.
type testEnv struct {
	out *strings.Builder
	in  io.Reader
}

func newTestEnv() *testEnv {
	return &testEnv{out: &strings.Builder{}, in: strings.NewReader("")}
}

var _ envrt.Environment = (*testEnv)(nil)

func (e *testEnv) IOMode() envrt.IOMode            { return envrt.IOModeText }
func (e *testEnv) IsIOBuffered() bool              { return true }
func (e *testEnv) Output() io.Writer               { return e.out }
func (e *testEnv) Input() io.Reader                { return e.in }
func (e *testEnv) Warn(string)                     {}
func (e *testEnv) HaveFileInput() bool             { return false }
func (e *testEnv) HaveFileOutput() bool            { return false }
func (e *testEnv) HaveExecute() envrt.ExecMode      { return envrt.ExecDisabled }
func (e *testEnv) ReadFile(string) ([]byte, error)  { return nil, os.ErrPermission }
func (e *testEnv) WriteFile(string, []byte) error   { return os.ErrPermission }
func (e *testEnv) Execute(string) (int, error)      { return -1, os.ErrPermission }
func (e *testEnv) EnvVars() []string                { return nil }
func (e *testEnv) Argv() []string                   { return nil }
func (e *testEnv) Timestamp() int64                 { return 0 }
func (e *testEnv) Handprint() int32                 { return 0 }
func (e *testEnv) FingerprintEnabled(id int32) bool { return true }

func TestRomaPushesConstants(t *testing.T) {
	ip, sp, env := newFixture(t)
	loadByID(t, ip, sp, env, "ROMA")

	cases := []struct {
		r    rune
		want cell.Value
	}{
		{'I', 1}, {'V', 5}, {'X', 10}, {'L', 50},
		{'C', 100}, {'D', 500}, {'M', 1000},
	}
	for _, c := range cases {
		result := machine.Exec(cell.FromRune(c.r), ip, sp, env)
		assert.Equal(t, machine.Continue, result)
		assert.Equal(t, c.want, ip.Pop())
	}
}

func TestNullReflectsAllLetters(t *testing.T) {
	ip, sp, env := newFixture(t)
	loadByID(t, ip, sp, env, "NULL")

	before := ip.Delta
	result := machine.Exec(cell.FromRune('Q'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	assert.Equal(t, before.Negate(), ip.Delta)
}

func TestModuSignedFollowsDivisorSign(t *testing.T) {
	ip, sp, env := newFixture(t)
	loadByID(t, ip, sp, env, "MODU")

	ip.Push(-7)
	ip.Push(3)
	result := machine.Exec(cell.FromRune('M'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	assert.Equal(t, cell.Value(2), ip.Pop())
}

func TestModuUnsignedIsAlwaysNonNegative(t *testing.T) {
	ip, sp, env := newFixture(t)
	loadByID(t, ip, sp, env, "MODU")

	ip.Push(-7)
	ip.Push(3)
	result := machine.Exec(cell.FromRune('U'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	assert.Equal(t, cell.Value(2), ip.Pop())

	ip.Push(-7)
	ip.Push(-3)
	result = machine.Exec(cell.FromRune('U'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	assert.Equal(t, cell.Value(2), ip.Pop())
}

func TestModuCRemTruncatesTowardZero(t *testing.T) {
	ip, sp, env := newFixture(t)
	loadByID(t, ip, sp, env, "MODU")

	ip.Push(-7)
	ip.Push(3)
	result := machine.Exec(cell.FromRune('R'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	assert.Equal(t, cell.Value(-1), ip.Pop())
}

func TestModuDivisionByZeroPushesZero(t *testing.T) {
	ip, sp, env := newFixture(t)
	loadByID(t, ip, sp, env, "MODU")

	ip.Push(5)
	ip.Push(0)
	result := machine.Exec(cell.FromRune('M'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	assert.Equal(t, cell.Value(0), ip.Pop())
}

func TestHrtiMarkAndTimer(t *testing.T) {
	ip, sp, env := newFixture(t)
	loadByID(t, ip, sp, env, "HRTI")

	result := machine.Exec(cell.FromRune('M'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)

	result = machine.Exec(cell.FromRune('T'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	assert.GreaterOrEqual(t, ip.Pop(), cell.Value(0))

	result = machine.Exec(cell.FromRune('E'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)

	before := ip.Delta
	result = machine.Exec(cell.FromRune('T'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	assert.Equal(t, before.Negate(), ip.Delta)
}

func TestHrtiGranularityAndSecond(t *testing.T) {
	ip, sp, env := newFixture(t)
	loadByID(t, ip, sp, env, "HRTI")

	result := machine.Exec(cell.FromRune('G'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	assert.Equal(t, cell.Value(1), ip.Pop())

	result = machine.Exec(cell.FromRune('S'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	s := ip.Pop()
	assert.GreaterOrEqual(t, s, cell.Value(0))
	assert.Less(t, s, cell.Value(1000000))
}

func TestBoolOperations(t *testing.T) {
	ip, sp, env := newFixture(t)
	loadByID(t, ip, sp, env, "BOOL")

	ip.Push(6)
	ip.Push(3)
	result := machine.Exec(cell.FromRune('O'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	assert.Equal(t, cell.Value(7), ip.Pop())

	ip.Push(6)
	ip.Push(3)
	result = machine.Exec(cell.FromRune('X'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	assert.Equal(t, cell.Value(5), ip.Pop())

	ip.Push(0)
	result = machine.Exec(cell.FromRune('N'), ip, sp, env)
	assert.Equal(t, machine.Continue, result)
	assert.Equal(t, cell.Value(-1), ip.Pop())
}
