package envrt

import (
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/jollans/gofunge/internal/config"
)

// StdEnv is the default Environment: real stdio, real files, a real shell.
// It is grounded on the teacher lineage's CmdLineEnv, including its
// sandbox toggle that strips file/exec access and restricts the
// fingerprint set down to ones with no external effect.
type StdEnv struct {
	ioMode   IOMode
	warnings bool
	sandbox  bool

	stdout io.Writer
	stdin  io.Reader

	argv []string

	safeOnly map[int32]bool
}

var _ Environment = (*StdEnv)(nil)

// NewStdEnv builds a StdEnv from resolved configuration and argv.
func NewStdEnv(cfg *config.Config, argv []string, stdin io.Reader, stdout io.Writer) *StdEnv {
	mode := IOModeText
	if cfg.IOMode == "binary" {
		mode = IOModeBinary
	}
	return &StdEnv{
		ioMode:   mode,
		warnings: cfg.Warnings,
		sandbox:  cfg.Sandbox,
		stdout:   stdout,
		stdin:    stdin,
		argv:     argv,
		safeOnly: safeFingerprints(),
	}
}

func (e *StdEnv) IOMode() IOMode       { return e.ioMode }
func (e *StdEnv) IsIOBuffered() bool   { return true }
func (e *StdEnv) Output() io.Writer    { return e.stdout }
func (e *StdEnv) Input() io.Reader     { return e.stdin }
func (e *StdEnv) Argv() []string       { return e.argv }
func (e *StdEnv) Timestamp() int64     { return time.Now().Unix() }
func (e *StdEnv) Handprint() int32     { return handprint("GOFG") }
func (e *StdEnv) HaveFileInput() bool  { return !e.sandbox }
func (e *StdEnv) HaveFileOutput() bool { return !e.sandbox }

func (e *StdEnv) HaveExecute() ExecMode {
	if e.sandbox {
		return ExecDisabled
	}
	return ExecSystem
}

func (e *StdEnv) Warn(msg string) {
	if e.warnings {
		os.Stderr.WriteString(msg + "\n")
	}
}

func (e *StdEnv) ReadFile(name string) ([]byte, error) {
	if e.sandbox {
		return nil, os.ErrPermission
	}
	return os.ReadFile(name)
}

func (e *StdEnv) WriteFile(name string, content []byte) error {
	if e.sandbox {
		return os.ErrPermission
	}
	return os.WriteFile(name, content, 0o644)
}

// Execute runs command through the platform shell, mirroring CmdLineEnv's
// "sh -c" / "CMD /C" split.
func (e *StdEnv) Execute(command string) (int, error) {
	if e.sandbox {
		return -1, os.ErrPermission
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("CMD", "/C", command)
	default:
		cmd = exec.Command("sh", "-c", command)
	}
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

func (e *StdEnv) EnvVars() []string {
	if e.sandbox {
		return nil
	}
	return os.Environ()
}

func (e *StdEnv) FingerprintEnabled(id int32) bool {
	if !e.sandbox {
		return true
	}
	return e.safeOnly[id]
}

// handprint encodes a 4-character ASCII tag into the big-endian 32-bit
// integer sysinfo reports, the same packing used for fingerprint IDs.
func handprint(tag string) int32 {
	var v int32
	for i := 0; i < 4; i++ {
		v = (v << 8) | int32(tag[i])
	}
	return v
}

// safeFingerprints lists the fingerprints with no external effect, the set
// a sandboxed environment restricts itself to. It mirrors the teacher
// lineage's own safe_fingerprints/all_fingerprints split, trimmed to the
// fingerprints this implementation actually carries bodies for.
func safeFingerprints() map[int32]bool {
	safe := map[int32]bool{}
	for _, name := range []string{"BOOL", "HRTI", "NULL", "ROMA", "MODU"} {
		safe[handprint(name)] = true
	}
	return safe
}
