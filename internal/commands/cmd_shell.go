package commands

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/todo/internal/app"
	"github.com/colonyops/todo/internal/core/logging"
	"github.com/colonyops/todo/internal/shell"
)

type ShellCmd struct {
	flags *Flags
	app   *app.App
}

// NewShellCmd creates a new shell command
func NewShellCmd(flags *Flags, app *app.App) *ShellCmd {
	return &ShellCmd{
		flags: flags,
		app:   app,
	}
}

// Register adds the shell command to the application
func (cmd *ShellCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "shell",
		Usage:     "Open the interactive menu",
		UsageText: "todo shell",
		Description: `Opens the numbered menu for adding, listing, updating, and deleting todos.

This is also what runs when todo is invoked without a command.`,
		Action: cmd.run,
	})

	return app
}

// Run executes the shell. Exported for use as default command.
func (cmd *ShellCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *ShellCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "shell")

	root := c.Root()

	var in io.Reader = os.Stdin
	if root.Reader != nil {
		in = root.Reader
	}

	out := root.Writer
	opts := shell.Options{
		ClearScreen: cmd.app.Config.ClearScreen() && isTerminal(out),
	}

	log.Debug().Ctx(ctx).Bool("clear_screen", opts.ClearScreen).Msg("starting shell")
	return shell.New(cmd.app, in, out, opts).Run(ctx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
