package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/app"
	"github.com/colonyops/todo/internal/core/logging"
	"github.com/colonyops/todo/internal/core/todo"
	"github.com/colonyops/todo/pkg/iojson"
)

type ImportCmd struct {
	flags  *Flags
	app    *app.App
	reader *iojson.FileReader[[]todo.NewTodo]
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags, app *app.App) *ImportCmd {
	return &ImportCmd{
		flags:  flags,
		app:    app,
		reader: &iojson.FileReader[[]todo.NewTodo]{},
	}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Add todos from a JSON array",
		UsageText: "todo import [-i <file>]",
		Description: `Reads a JSON array of {"title", "description", "status"} objects from a
file or piped stdin and adds each one in order.

Entries with an empty title or description are skipped and reported.

Examples:
  todo import -i backlog.json
  cat backlog.json | todo import`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "import")

	if cmd.reader.Stdin == nil {
		cmd.reader.Stdin = c.Root().Reader
	}

	entries, err := cmd.reader.Read()
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}

	var added, skipped int
	for i, entry := range entries {
		_, err := cmd.app.Todos.Create(ctx, entry)
		if todo.IsValidation(err) {
			skipped++
			_, _ = fmt.Fprintf(c.Root().ErrWriter, "entry %d skipped: %v\n", i, err)
			continue
		}
		if err != nil {
			return mutationError(c.Root().ErrWriter, "import", err)
		}
		added++
	}

	log.Info().Ctx(ctx).Int("added", added).Int("skipped", skipped).Msg("import finished")
	_, _ = fmt.Fprintf(c.Root().Writer, "imported %d, skipped %d\n", added, skipped)
	return nil
}
