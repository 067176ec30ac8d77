// Package shell implements the numbered-menu interactive session.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/todo/internal/app"
	"github.com/colonyops/todo/internal/core/logging"
	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/todo"
)

// ErrInputClosed is returned when the input stream ends before the user
// chooses Exit.
var ErrInputClosed = errors.New("input closed")

// clearSequence erases the screen and homes the cursor.
const clearSequence = "\x1b[2J\x1b[H"

type menuItem struct {
	label  string
	action func(*Shell, context.Context) error
}

// menuItems is indexed by choice - 1. Exit is handled by Run.
var menuItems = []menuItem{
	{"Add Todo", (*Shell).add},
	{"List Todos", (*Shell).list},
	{"Update Todo", (*Shell).update},
	{"Delete Todo", (*Shell).remove},
	{"Exit", nil},
}

// Options configures a Shell.
type Options struct {
	// ClearScreen clears the terminal before the menu and before each action.
	ClearScreen bool
}

// Shell reads menu choices and field values line by line and dispatches
// them to the todo store.
type Shell struct {
	app  *app.App
	in   *bufio.Reader
	out  io.Writer
	opts Options
	log  zerolog.Logger
}

// New creates a Shell reading from in and writing to out.
func New(a *app.App, in io.Reader, out io.Writer, opts Options) *Shell {
	return &Shell{
		app:  a,
		in:   bufio.NewReader(in),
		out:  out,
		opts: opts,
		log:  logging.Component(a.Log, "shell"),
	}
}

// Run shows the menu until the user exits. It returns nil on Exit and an
// error wrapping ErrInputClosed if input ends first.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.clear()
		s.print(menuText())

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return err
		}

		n := parseChoice(choice)
		switch {
		case n == len(menuItems):
			s.clear()
			s.println(styles.Success("Exiting... Goodbye!"))
			return nil
		case n >= 1:
			s.clear()
			s.log.Debug().Ctx(ctx).Str("action", menuItems[n-1].label).Msg("menu action")
			if err := menuItems[n-1].action(s, ctx); err != nil {
				return err
			}
		default:
			s.println(styles.Error("Invalid choice! Try again."))
		}

		if err := s.pause(); err != nil {
			return err
		}
	}
}

func (s *Shell) add(ctx context.Context) error {
	title, err := s.prompt("Enter title: ")
	if err != nil {
		return err
	}
	if title == "" {
		s.println(styles.Error("Title cannot be empty!"))
		return nil
	}

	description, err := s.prompt("Enter description: ")
	if err != nil {
		return err
	}
	if description == "" {
		s.println(styles.Error("Description cannot be empty!"))
		return nil
	}

	status, err := s.prompt(fmt.Sprintf("Enter status (default: %s): ", s.app.Config.Defaults.Status))
	if err != nil {
		return err
	}

	_, err = s.app.Todos.Create(ctx, todo.NewTodo{Title: title, Description: description, Status: status})
	var ve *todo.ValidationError
	switch {
	case err == nil:
		s.println(styles.Success("Todo added successfully!"))
	case errors.As(err, &ve):
		s.println(styles.Error(validationMessage(ve)))
	default:
		s.println(styles.Error("Failed to save todo!"))
	}
	return nil
}

func (s *Shell) list(ctx context.Context) error {
	todos := s.app.Todos.List()
	if len(todos) == 0 {
		s.println(styles.Warning("No todo items available."))
		return nil
	}

	s.println(styles.Success("Todo List:"))
	for _, t := range todos {
		WriteTodo(s.out, t, s.app.FormatTime)
	}
	return nil
}

func (s *Shell) update(ctx context.Context) error {
	id, err := s.prompt("Enter the ID of the todo to update: ")
	if err != nil {
		return err
	}

	current, err := s.app.Todos.Get(id)
	if err != nil {
		s.println(styles.Error("Todo not found!"))
		return nil
	}

	var changes todo.Changes
	fields := []struct {
		name    string
		current string
		dst     *string
	}{
		{"title", current.Title, &changes.Title},
		{"description", current.Description, &changes.Description},
		{"status", current.Status, &changes.Status},
	}
	for _, f := range fields {
		v, err := s.prompt(fmt.Sprintf("Enter new %s (leave empty to keep '%s'): ", f.name, f.current))
		if err != nil {
			return err
		}
		*f.dst = v
	}

	_, err = s.app.Todos.Update(ctx, id, changes)
	switch {
	case err == nil:
		s.println(styles.Success("Todo updated successfully!"))
	case errors.Is(err, todo.ErrNotFound):
		s.println(styles.Error("Todo not found!"))
	default:
		s.println(styles.Error("Failed to update todo!"))
	}
	return nil
}

func (s *Shell) remove(ctx context.Context) error {
	id, err := s.prompt("Enter the ID of the todo to delete: ")
	if err != nil {
		return err
	}

	_, err = s.app.Todos.Delete(ctx, id)
	switch {
	case err == nil:
		s.println(styles.Success("Todo deleted successfully!"))
	case errors.Is(err, todo.ErrNotFound):
		s.println(styles.Error("Todo not found!"))
	default:
		s.println(styles.Error("Failed to delete todo!"))
	}
	return nil
}

func (s *Shell) pause() error {
	_, err := s.prompt("Press Enter to continue...")
	return err
}

// prompt prints label and returns the next input line with surrounding
// whitespace removed. A final line without a newline is still returned.
func (s *Shell) prompt(label string) (string, error) {
	s.print(styles.PromptStyle.Render(label))

	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) clear() {
	if s.opts.ClearScreen {
		s.print(clearSequence)
	}
}

func (s *Shell) print(str string) {
	_, _ = io.WriteString(s.out, str)
}

func (s *Shell) println(str string) {
	_, _ = fmt.Fprintln(s.out, str)
}

func parseChoice(choice string) int {
	if len(choice) != 1 || choice[0] < '1' || choice[0] > '9' {
		return 0
	}
	n := int(choice[0] - '0')
	if n > len(menuItems) {
		return 0
	}
	return n
}

func validationMessage(ve *todo.ValidationError) string {
	switch ve.Field {
	case "title":
		return "Title cannot be empty!"
	case "description":
		return "Description cannot be empty!"
	default:
		return ve.Error()
	}
}
