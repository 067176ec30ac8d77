package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/colonyops/todo/internal/commands"
	"github.com/colonyops/todo/internal/core/styles"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	root := commands.NewRootCmd(build())

	exitCode := 0
	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, styles.Error(err.Error()))
		exitCode = 1
	}

	os.Exit(exitCode)
}
