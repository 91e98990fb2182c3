package machine

import (
	"io"
	"os"
	"strings"

	"github.com/jollans/gofunge/lang/envrt"
)

// testEnv is a minimal envrt.Environment for exercising instruction bodies
// without touching the real filesystem or shell.
type testEnv struct {
	out *strings.Builder
	in  io.Reader
}

func newTestEnv(input string) *testEnv {
	return &testEnv{out: &strings.Builder{}, in: strings.NewReader(input)}
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
