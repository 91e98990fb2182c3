package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/jollans/gofunge/lang/index"
	"github.com/jollans/gofunge/lang/source"
	"github.com/jollans/gofunge/lang/space"
)

// Dump loads the program at args[0] and prints its bounding box and raw
// grid contents, without running it.
func (c *Cmd) Dump(ctx context.Context, stdio mainer.Stdio, args []string) error {
	_, env, err := c.buildEnv(stdio, args)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	sp := space.New(c.Rank)
	if err := source.Load(sp, env, args[0], env.IOMode(), c.Rank); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	lo, hi, ok := sp.BoundingBox()
	if !ok {
		fmt.Fprintln(stdio.Stdout, "(empty)")
		return nil
	}
	fmt.Fprintf(stdio.Stdout, "bounding box: %v .. %v\n", lo, hi)

	switch c.Rank {
	case 1:
		dumpRank1(stdio, sp, lo.(index.Index1), hi.(index.Index1))
	default:
		dumpRank2(stdio, sp, lo.(index.Index2), hi.(index.Index2))
	}
	return nil
}

func dumpRank1(stdio mainer.Stdio, sp *space.Space, lo, hi index.Index1) {
	for x := lo.X; x <= hi.X; x++ {
		fmt.Fprintf(stdio.Stdout, "%c", sp.Read(index.Index1{X: x}).Rune())
	}
	fmt.Fprintln(stdio.Stdout)
}

func dumpRank2(stdio mainer.Stdio, sp *space.Space, lo, hi index.Index2) {
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			fmt.Fprintf(stdio.Stdout, "%c", sp.Read(index.Vec2(x, y)).Rune())
		}
		fmt.Fprintln(stdio.Stdout)
	}
}
