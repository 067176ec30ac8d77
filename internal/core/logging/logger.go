// Package logging holds the zerolog helpers shared across todo packages.
package logging

import "github.com/rs/zerolog"

// Component returns l tagged with a component identifier.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
