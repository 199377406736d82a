package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	BackendSlog    = "slog"
	BackendZerolog = "zerolog"

	FormatText = "text"
	FormatJSON = "json"
)

// Options selects and tunes a Logger backend.
type Options struct {
	Backend string
	Level   string
	// Format applies to the slog backend; zerolog always writes to a console writer.
	Format string
	Out    io.Writer
}

// New builds a Logger from opts. Empty fields fall back to slog, info and text
// on stderr.
func New(opts Options) (Logger, error) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	switch strings.ToLower(opts.Backend) {
	case "", BackendSlog:
		var level slog.Level
		if err := level.UnmarshalText([]byte(defaultLevel(opts.Level))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		ho := &slog.HandlerOptions{Level: level}

		var h slog.Handler
		switch strings.ToLower(opts.Format) {
		case "", FormatText:
			h = slog.NewTextHandler(out, ho)
		case FormatJSON:
			h = slog.NewJSONHandler(out, ho)
		default:
			return nil, fmt.Errorf("invalid log format %q", opts.Format)
		}
		return NewSlogLogger(slog.New(h)), nil

	case BackendZerolog:
		level, err := zerolog.ParseLevel(strings.ToLower(defaultLevel(opts.Level)))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		zl := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: out != os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		return NewZerologLogger(zl), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func defaultLevel(l string) string {
	if l == "" {
		return "info"
	}
	return l
}
