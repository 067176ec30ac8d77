package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/app"
)

// TodoIDCompleter returns a ShellCompleteFunc that suggests todo ids as
// positional completions, one "id:title" pair per line.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func TodoIDCompleter(a *app.App) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		if a.Todos == nil {
			return
		}

		w := cmd.Root().Writer
		for _, t := range a.Todos.List() {
			_, _ = fmt.Fprintf(w, "%s:%s\n", t.ID, t.Title)
		}
	}
}
