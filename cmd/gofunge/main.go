package main

import (
	"os"

	"github.com/mna/mainer"

	"github.com/jollans/gofunge/internal/maincmd"

	// Blank-imported so its init() functions register BOOL, ROMA, NULL,
	// MODU, and HRTI before any program gets a chance to load them.
	_ "github.com/jollans/gofunge/lang/fingerprint"
)

var (
	// placeholder values, replaced on build
	version   = "{v}"
	buildDate = "{d}"
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
