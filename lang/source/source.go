// Package source loads a Funge program's initial text into Funge-space,
// the one-time counterpart to the 'i' instruction's runtime file load
// (lang/machine.LoadBlock, which this package calls directly rather than
// duplicate).
package source

import (
	"os"

	"github.com/jollans/gofunge/lang/envrt"
	"github.com/jollans/gofunge/lang/index"
	"github.com/jollans/gofunge/lang/machine"
	"github.com/jollans/gofunge/lang/space"
)

// Load reads path and writes its contents into sp starting at the origin
// of the given rank. Text mode splits on '\n', '\r' or "\r\n" into
// Funge-space rows for rank 2; binary mode, and rank 1 regardless of mode,
// loads the file as a single linear run. In every mode each byte of the
// file becomes one cell: text mode does not decode UTF-8.
func Load(sp *space.Space, env envrt.Environment, path string, mode envrt.IOMode, rank int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dest := index.Origin(rank)
	machine.LoadBlock(sp, dest, data, rank == 1 || mode == envrt.IOModeBinary)
	return nil
}
