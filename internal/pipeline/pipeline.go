package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/crimson-sun/teleports/internal/connector"
	"github.com/crimson-sun/teleports/internal/engine/aggregator"
	"github.com/crimson-sun/teleports/internal/engine/scanner"
	"github.com/crimson-sun/teleports/internal/model"
	"github.com/crimson-sun/teleports/internal/output"
)

// Opener opens a log file for sequential reading.
type Opener func(path string) (io.ReadCloser, error)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithOpener replaces connector.Open as the log source.
func WithOpener(open Opener) Option {
	return func(p *Pipeline) { p.open = open }
}

// WithDebounce sets how long watch mode waits after a change before
// re-analyzing the log. Default: 500ms.
func WithDebounce(d time.Duration) Option {
	return func(p *Pipeline) { p.debounce = d }
}

// Pipeline connects a log source, the scanner, an aggregation and an output.
type Pipeline struct {
	scanner     *scanner.Scanner
	bucketWidth int64
	output      output.Output
	open        Opener
	debounce    time.Duration
}

// New creates a Pipeline from the given components.
func New(sc *scanner.Scanner, bucketWidth int64, out output.Output, opts ...Option) *Pipeline {
	p := &Pipeline{
		scanner:     sc,
		bucketWidth: bucketWidth,
		output:      out,
		open:        connector.Open,
		debounce:    500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Aggregate scans the log at path once and returns the completed
// aggregation. Nothing is returned if the scan fails part way.
func (p *Pipeline) Aggregate(ctx context.Context, path string) (*aggregator.State, error) {
	rc, err := p.open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	state := aggregator.New(p.bucketWidth)
	n := 0
	for ev, err := range p.scanner.Events(rc) {
		if err != nil {
			var mle *scanner.MalformedLineError
			if errors.As(err, &mle) {
				return nil, err
			}
			return nil, &model.IOError{Op: "read", Path: path, Err: err}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		state.Record(ev)
		n++
	}

	slog.Debug("log scanned", "path", path, "events", n,
		"waiting", state.Total(model.Waiting), "collisions", state.Total(model.Collision))
	return state, nil
}

// Query runs the pipeline in one-shot mode: scan the log, then hand the
// aggregation to the output.
func (p *Pipeline) Query(ctx context.Context, path string) (*aggregator.State, error) {
	state, err := p.Aggregate(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("pipeline query: %w", err)
	}
	if err := p.output.Write(ctx, state); err != nil {
		return state, fmt.Errorf("pipeline output: %w", err)
	}
	return state, nil
}

// Stream runs the pipeline in watch mode: the log is analyzed once, then
// again every time it is written. Blocks until the context is cancelled or
// a non-recoverable error occurs.
func (p *Pipeline) Stream(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("pipeline stream: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so that the log may be created or replaced.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("pipeline stream: watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	if err := p.rerun(ctx, path); err != nil {
		return err
	}

	deb := newDebouncer(p.debounce)
	defer deb.reset()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				slog.Debug("log changed", "path", path, "op", ev.Op.String())
				deb.trigger()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("pipeline stream: %w", err)

		case <-deb.fireCh():
			deb.reset()
			if err := p.rerun(ctx, path); err != nil {
				return err
			}
		}
	}
}

// rerun performs one watch-mode analysis. Conditions that a still running
// simulation can produce are logged and the watch carries on: the log not
// existing yet, no teleports of some kind yet, and a teleport warning cut
// off at the end of the file. Everything else ends the watch.
func (p *Pipeline) rerun(ctx context.Context, path string) error {
	_, err := p.Query(ctx, path)
	var mle *scanner.MalformedLineError
	switch {
	case err == nil:
		slog.Info("report updated", "path", path)
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, output.ErrEmptyAggregation):
		slog.Info("no teleports to export yet", "path", path, "reason", err)
		return nil
	case logMissing(err, path):
		slog.Info("waiting for log", "path", path)
		return nil
	case errors.As(err, &mle) && mle.Unterminated:
		slog.Info("last line still being written, keeping previous report", "path", path, "line", mle.Line)
		return nil
	default:
		return err
	}
}

// logMissing reports whether err is the failure to open the log at path
// because it does not exist. A missing plot directory does not count.
func logMissing(err error, path string) bool {
	var ioErr *model.IOError
	return errors.As(err, &ioErr) &&
		ioErr.Op == "open" &&
		ioErr.Path == path &&
		errors.Is(ioErr.Err, fs.ErrNotExist)
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
