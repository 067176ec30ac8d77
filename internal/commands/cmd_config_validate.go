package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "todo config validate [options]",
				Description: "Validates the configuration file, the storage file location, and display settings.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationOutput struct {
	Valid  bool              `json:"valid"`
	Errors []validationEntry `json:"errors,omitempty"`
}

type validationEntry struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	result := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)

	out := validationOutput{Valid: result == nil}
	if result != nil {
		var fieldErrs criterio.FieldErrors
		if errors.As(result, &fieldErrs) {
			for _, fe := range fieldErrs {
				out.Errors = append(out.Errors, validationEntry{Field: fe.Field, Message: fe.Err.Error()})
			}
		} else {
			out.Errors = append(out.Errors, validationEntry{Message: result.Error()})
		}
	}

	w := c.Root().Writer
	if cmd.format == "json" {
		if err := iojson.WriteLine(w, out); err != nil {
			return err
		}
	} else {
		for _, e := range out.Errors {
			if e.Field != "" {
				_, _ = fmt.Fprintln(w, styles.Error(fmt.Sprintf("%s %s: %s", styles.IconCross, e.Field, e.Message)))
			} else {
				_, _ = fmt.Fprintln(w, styles.Error(fmt.Sprintf("%s %s", styles.IconCross, e.Message)))
			}
		}
		if out.Valid {
			_, _ = fmt.Fprintln(w, styles.Success(styles.IconCheck+" config ok"))
		}
	}

	if !out.Valid {
		return fmt.Errorf("config has %d error(s)", len(out.Errors))
	}
	return nil
}
