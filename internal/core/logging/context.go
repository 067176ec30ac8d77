package logging

import "context"

type contextKey string

const commandKey contextKey = "command"

// WithCommand records the name of the running command on ctx.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// GetCommand returns the command recorded by WithCommand, or "" if none.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}
