// Package cli implements the kanjipath command-line interface.
//
// Kanjipath reads a character list and an EDICT2 dictionary, builds the
// component prerequisite graph, and emits study orders in which every
// character appears only after all of its parts. The CLI is built with
// cobra; logging uses charmbracelet/log and is carried through
// context.Context.
//
// # Commands
//
//   - order: compute and print a study order
//   - parse: export the character graph as JSON
//   - render: draw the graph as DOT, SVG, or PNG
//   - browse: interactive ordered browser (TUI)
//   - serve: HTTP API
//   - cache: manage the local data cache
//
// All commands support --verbose (-v) for debug-level logging and --config
// for a TOML configuration file.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamp formatting, writing to w and
// filtering at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// the elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress captures the current time; call done when the operation
// completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, rounded to the millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger attached by withLogger, or the
// package default when none is set.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
