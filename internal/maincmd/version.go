package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
)

// Version prints the build version, the same information the top-level
// -v/--version flag prints, as a proper subcommand for scripts that always
// pass a command name.
func (c *Cmd) Version(ctx context.Context, stdio mainer.Stdio, args []string) error {
	fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
	return nil
}
