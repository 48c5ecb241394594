// SPDX-License-Identifier: MIT

// Package logging builds the zerolog logger used by the lvlalg command.
// Library packages never log on their own; the command hands this logger to
// the eigen pipeline and the batch runner.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnknownFormat is returned for a format other than console or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// New returns a logger writing to w at the given level ("debug", "info",
// "warn", "error", "disabled"). Console output is human-readable; json emits
// one object per line.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: level %q: %w", level, err)
	}
	// ParseLevel maps "" to NoLevel, which would let everything through.
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatConsole, "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("logging: %q: %w", format, ErrUnknownFormat)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Component returns l tagged with a component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
