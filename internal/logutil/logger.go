// Package logutil builds the zerolog logger used by the itinerary CLI.
package logutil

import (
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

// New returns a logger writing to w at the given level.
//
// The level can be one of: trace, debug, info, warn, error, fatal, panic,
// disabled; empty means info. Format "json" writes one JSON object per
// event; anything else writes human-readable console lines.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	if level == "" {
		level = zerolog.LevelInfoValue
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level %q: %w", level, err)
	}

	out := w
	if format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    true,
		}
	}

	return zerolog.New(out).
		With().
		Timestamp().
		Logger().
		Level(lvl), nil
}

// Printf adapts a logger to printf-style callbacks such as
// automaxprocs' maxprocs.Logger.
func Printf(l zerolog.Logger) func(string, ...any) {
	return func(format string, args ...any) {
		l.Debug().Msgf(format, args...)
	}
}
