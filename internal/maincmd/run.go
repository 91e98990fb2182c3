package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/jollans/gofunge/internal/config"
	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/machine"
	"github.com/jollans/gofunge/lang/source"
	"github.com/jollans/gofunge/lang/space"
)

// Run loads the program at args[0] and executes it to completion.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	cfg, env, err := c.buildEnv(stdio, args)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	sp := space.New(c.Rank)
	if err := source.Load(sp, env, args[0], env.IOMode(), c.Rank); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	m := machine.NewMachine(sp, env, c.Rank)
	m.MaxSteps = cfg.MaxSteps

	switch status := m.RunContext(ctx); status {
	case machine.StatusPanicked:
		err := fmt.Errorf("program panicked")
		fmt.Fprintln(stdio.Stderr, err)
		return err
	case machine.StatusPaused:
		err := fmt.Errorf("step budget exhausted or run cancelled")
		fmt.Fprintln(stdio.Stderr, err)
		return err
	default:
		return nil
	}
}

// buildEnv resolves Config (env-var defaults overlaid by CLI flags) and
// builds the StdEnv Run/Dump share. argv becomes the program's own sysinfo
// argv (field 19): the path it was run with.
func (c *Cmd) buildEnv(stdio mainer.Stdio, argv []string) (*config.Config, *envrt.StdEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if c.Sandbox {
		cfg.Sandbox = true
	}
	if c.Binary {
		cfg.IOMode = "binary"
	}
	if c.MaxSteps != 0 {
		cfg.MaxSteps = c.MaxSteps
	}

	env := envrt.NewStdEnv(cfg, argv, stdio.Stdin, stdio.Stdout)
	return cfg, env, nil
}
