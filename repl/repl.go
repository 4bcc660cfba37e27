// Package repl is the interactive front end of csvrepl: it loads the files
// given on the command line, attaches keyword and column completion to a
// readline prompt and prints the result of every line typed.
package repl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/chzyer/readline"

	"github.com/nao1215/csvrepl"
)

const (
	// DefaultPrompt is shown before every input line
	DefaultPrompt = "> "
	// DefaultHistoryLimit is the number of input lines kept in history
	DefaultHistoryLimit = 1000
)

// Config holds REPL settings.
type Config struct {
	// Prompt is shown before every input line.
	Prompt string
	// HistoryLimit caps the in-memory input history.
	HistoryLimit int
	// Keywords are the completion words offered besides column names.
	Keywords []string
	// Output receives load confirmations, result tables and notices.
	Output io.Writer
	// Logger receives diagnostics that are not meant for the operator.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by the csvrepl command.
func DefaultConfig() Config {
	return Config{
		Prompt:       DefaultPrompt,
		HistoryLimit: DefaultHistoryLimit,
		Keywords:     csvrepl.Keywords(),
		Output:       os.Stdout,
		Logger:       csvrepl.NewLogger(os.Stderr, slog.LevelWarn),
	}
}

// Session is a store with every file loaded and the completion vocabulary built from them.
type Session struct {
	store      *csvrepl.Store
	vocabulary *csvrepl.Vocabulary
	output     io.Writer
	logger     *slog.Logger
}

// NewSession loads paths into a fresh store. The first load failure closes
// the store and is returned; no session is ever built over a partial load.
func NewSession(ctx context.Context, paths []string, cfg Config) (*Session, error) {
	cfg = withDefaults(cfg)

	store, err := csvrepl.Open(ctx, csvrepl.WithOutput(cfg.Output), csvrepl.WithLogger(cfg.Logger))
	if err != nil {
		return nil, err
	}

	columns, err := store.LoadFiles(ctx, paths)
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}

	return &Session{
		store:      store,
		vocabulary: csvrepl.BuildVocabulary(cfg.Keywords, columns...),
		output:     cfg.Output,
		logger:     cfg.Logger,
	}, nil
}

// Vocabulary returns the completion vocabulary.
func (s *Session) Vocabulary() *csvrepl.Vocabulary {
	return s.vocabulary
}

// Serve runs the read-execute-print loop on reader until end of input.
func (s *Session) Serve(ctx context.Context, reader LineReader) error {
	return NewController(reader, s.store, s.output, s.logger).Run(ctx)
}

// Close releases the store.
func (s *Session) Close() error {
	return s.store.Close()
}

// Run loads paths and serves a readline prompt on the terminal until end of input.
func Run(ctx context.Context, paths []string, cfg Config) (err error) {
	cfg = withDefaults(cfg)

	session, err := NewSession(ctx, paths, cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, session.Close())
	}()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 cfg.Prompt,
		HistoryLimit:           cfg.HistoryLimit,
		DisableAutoSaveHistory: true,
		AutoComplete:           NewCompleter(session.Vocabulary()),
		InterruptPrompt:        "^C",
	})
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, rl.Close())
	}()

	return session.Serve(ctx, rl)
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Prompt == "" {
		cfg.Prompt = def.Prompt
	}
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = def.HistoryLimit
	}
	if cfg.Keywords == nil {
		cfg.Keywords = def.Keywords
	}
	if cfg.Output == nil {
		cfg.Output = def.Output
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	return cfg
}
