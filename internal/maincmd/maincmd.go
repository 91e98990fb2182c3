// Package maincmd implements gofunge's command-line dispatch, grounded on
// the teacher lineage's reflection-based Cmd registry
// (github.com/mna/mainer) over a small set of named commands.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "gofunge"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<path>]
       %[1]s -h|--help
       %[1]s -v|--version

A Funge-98 interpreter.

The <command> can be one of:
       run                       Load the Funge program at <path> and run
                                 it to completion.
       dump                      Load the Funge program at <path> and
                                 print its bounding box and raw contents,
                                 without running it.
       version                  Print version and exit.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --rank=N                  Funge-space rank: 1 (Unefunge) or 2
                                 (Befunge). Default 2.
       --sandbox                 Disable file I/O, subprocess execution,
                                 and any fingerprint with external effects.
       --binary                  Treat cell I/O as raw bytes instead of
                                 UTF-8 text.
       --max-steps=N             Abort (pause) after N total instructions
                                 across all IPs. Default 0 (unlimited).

More information on the gofunge repository:
       https://github.com/jollans/gofunge
`, binName)
)

// Cmd is mainer's entry point: its exported fields are populated from
// flags, and its methods matching the command signature become the
// dispatch table built by buildCmds.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help        bool `flag:"h,help"`
	ShowVersion bool `flag:"v,version"`

	Rank     int  `flag:"rank"`
	Sandbox  bool `flag:"sandbox"`
	Binary   bool `flag:"binary"`
	MaxSteps int  `flag:"max-steps"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

func (c *Cmd) Validate() error {
	if c.Rank == 0 {
		c.Rank = 2
	}
	if c.Rank != 1 && c.Rank != 2 {
		return fmt.Errorf("invalid --rank %d: must be 1 or 2", c.Rank)
	}

	if c.Help || c.ShowVersion {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	if (cmdName == "run" || cmdName == "dump") && len(c.args[1:]) != 1 {
		return fmt.Errorf("%s: exactly one path must be provided", cmdName)
	}

	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: strings.ToUpper(binName) + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.ShowVersion:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds mirrors the teacher's reflection-based lookup: any exported
// method taking (ctx, stdio, []string) and returning error becomes
// callable by its lowercased name.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
