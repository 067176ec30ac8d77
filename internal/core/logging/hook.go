package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the command name from the event context onto log events.
// Events must be attached to a context with Event.Ctx for the hook to see it.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if name := GetCommand(ctx); name != "" {
		e.Str("command", name)
	}
}
