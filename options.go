package csvrepl

import (
	"io"
	"log/slog"
	"os"
)

// options holds the settings of a Store
type options struct {
	output io.Writer
	logger *slog.Logger
}

// Option configures a Store
type Option func(*options)

// WithOutput sets where load confirmations, result tables and query
// diagnostics are written. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithLogger sets the structured logger. The default writes WARN and above
// to os.Stderr, so an ordinary session logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		output: os.Stdout,
		logger: NewLogger(os.Stderr, slog.LevelWarn),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewLogger returns a text logger writing records at level or above to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
