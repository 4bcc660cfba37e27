package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
)

// ErrReadLine is returned when the line reader fails for a reason other than
// an interrupt or end of input.
var ErrReadLine = errors.New("repl: read line failed")

// interruptNotice is printed when the operator interrupts the current line.
const interruptNotice = "Interrupted"

// LineReader reads operator input one line at a time.
//
// Readline returns readline.ErrInterrupt when the operator interrupts the
// line being typed and io.EOF at end of input. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SaveHistory(line string) error
}

// Executor runs one query line and reports the outcome to the operator itself.
type Executor interface {
	ExecuteAndPrint(ctx context.Context, query string)
}

// Controller drives the read-execute-print cycle.
type Controller struct {
	reader   LineReader
	executor Executor
	output   io.Writer
	logger   *slog.Logger
}

// NewController creates a controller reading from reader and executing on executor.
// Notices are written to output.
func NewController(reader LineReader, executor Executor, output io.Writer, logger *slog.Logger) *Controller {
	return &Controller{
		reader:   reader,
		executor: executor,
		output:   output,
		logger:   logger,
	}
}

// Run loops until end of input, which returns nil. Blank lines are skipped,
// an interrupt discards the current line and any other read error ends the
// loop with an error wrapping ErrReadLine.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := c.reader.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			fmt.Fprintln(c.output, interruptNotice)
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("%w: %w", ErrReadLine, err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := c.reader.SaveHistory(line); err != nil {
			c.logger.Warn("failed to save history", "error", err)
		}
		c.executor.ExecuteAndPrint(ctx, line)
	}
}
