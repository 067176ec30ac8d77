package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/todo"
)

// mutationError turns a store error into the command error. A persistence
// failure is reported on w first since the change is kept in memory only.
func mutationError(w io.Writer, op string, err error) error {
	var pe *todo.PersistenceError
	if errors.As(err, &pe) {
		_, _ = fmt.Fprintln(w, styles.Error(fmt.Sprintf("%s Failed to %s todo: change was not saved", styles.IconCross, op)))
	}
	return fmt.Errorf("%s todo: %w", op, err)
}
