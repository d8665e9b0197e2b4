package plot

import (
	"bufio"
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/crimson-sun/teleports/internal/engine/aggregator"
	"github.com/crimson-sun/teleports/internal/model"
	"github.com/crimson-sun/teleports/internal/output"
)

const (
	defaultBufSize = 64 * 1024 // 64KB
	ctxCheckEvery  = 1 << 14
)

// Suffix is appended to the log path to name the default plot file.
const Suffix = ".plot"

// Option configures a plot Output.
type Option func(*Output)

// WithAllowPartial exports a series even when one kind has no events.
func WithAllowPartial(allow bool) Option {
	return func(o *Output) { o.allowPartial = allow }
}

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// Output writes the gap-filled time series as a gnuplot data file.
// The file is replaced atomically; a failed write leaves any previous
// file untouched.
type Output struct {
	path         string
	allowPartial bool
	bufSize      int
}

// New creates a plot Output for the given path.
func New(path string, opts ...Option) *Output {
	o := &Output{
		path:    path,
		bufSize: defaultBufSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// PathFor returns the default plot path for a log file.
func PathFor(logPath string) string {
	return logPath + Suffix
}

// Path returns the destination file.
func (o *Output) Path() string {
	return o.path
}

// Header returns the gnuplot comment line describing the columns.
func Header(path string) string {
	return fmt.Sprintf("# plot '%s' using 1:2 with lines title 'waiting', '%s' using 1:3 with lines title 'collisions'", path, path)
}

// Write computes the bucket span and writes one row per bucket. Rows are
// streamed to the file; ctx is checked between chunks of rows.
func (o *Output) Write(ctx context.Context, state *aggregator.State) error {
	lo, hi, err := output.Span(state, o.allowPartial)
	if err != nil {
		return fmt.Errorf("plot output: %w", err)
	}
	if err := o.writeFile(ctx, output.Series(state, lo, hi)); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("plot output: %w", err)
		}
		return &model.IOError{Op: "write", Path: o.path, Err: err}
	}
	return nil
}

// Close is a no-op; every Write opens and closes its own file.
func (o *Output) Close() error {
	return nil
}

// writeFile writes rows to a temporary file next to the destination and
// renames it into place.
func (o *Output) writeFile(ctx context.Context, rows iter.Seq[model.TimeSeriesRow]) (err error) {
	f, err := os.CreateTemp(filepath.Dir(o.path), "."+filepath.Base(o.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriterSize(f, o.bufSize)
	if _, err = fmt.Fprintln(w, Header(o.path)); err != nil {
		return err
	}
	n := 0
	for r := range rows {
		if n++; n%ctxCheckEvery == 0 {
			if err = ctx.Err(); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintf(w, "%d %d %d\n", r.Bucket, r.Waiting, r.Collision); err != nil {
			return err
		}
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, o.path)
}
