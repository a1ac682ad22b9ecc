// Package telemetry configures the structured logger this core writes
// through, following the pack's answer for structured logging:
// github.com/rs/zerolog, configured once at process start (see
// badu-term/log/main.go) and threaded as a zerolog.Logger value rather
// than used as a global.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimestampFieldName = "t"
	zerolog.LevelFieldName = "l"
	zerolog.MessageFieldName = "m"
}

// New builds a zerolog.Logger writing human-readable console output to
// w. Callers that want machine-readable JSON should build a
// zerolog.New(w) directly instead; console output is this daemon's
// default because it normally runs attached to a terminal or a
// supervisor's captured stdout.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
}

// Default returns a console logger writing to stderr at info level.
func Default() zerolog.Logger {
	return New(os.Stderr).Level(zerolog.InfoLevel)
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// Device returns a logger sub-scoped to one source device path, used
// by readers and injectors so every line they emit is already tagged.
func Device(logger zerolog.Logger, devicePath string) zerolog.Logger {
	return logger.With().Str("device", devicePath).Logger()
}

// EventFields adds the (type, code) an error or drop pertains to,
// matching the structured fields named in SPEC_FULL.md's logging
// section.
func EventFields(event *zerolog.Event, evType, code uint16) *zerolog.Event {
	return event.Uint16("type", evType).Uint16("code", code)
}
