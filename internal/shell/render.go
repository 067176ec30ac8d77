package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/todo"
)

const (
	labelWidth = 12
	divider    = "-------------------------"
)

// WriteTodo prints t as aligned "Label : value" lines followed by a divider.
// formatTime renders the stored timestamps.
func WriteTodo(w io.Writer, t todo.Todo, formatTime func(string) string) {
	rows := []struct{ label, value string }{
		{"ID", t.ID},
		{"Title", t.Title},
		{"Description", t.Description},
		{"Status", t.Status},
		{"Created At", formatTime(t.CreatedAt)},
		{"Updated At", formatTime(t.UpdatedAt)},
	}

	for _, r := range rows {
		label := styles.LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, r.label))
		_, _ = fmt.Fprintf(w, "%s: %s\n", label, r.value)
	}
	_, _ = fmt.Fprintln(w, styles.DividerStyle.Render(divider))
}

func menuText() string {
	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render("====== Todo App Menu ======"))
	b.WriteString("\n")
	for i, item := range menuItems {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.label)
	}
	b.WriteString(styles.HeaderStyle.Render("==========================="))
	b.WriteString("\n\n")
	return b.String()
}
