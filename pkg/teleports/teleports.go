package teleports

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/crimson-sun/teleports/internal/connector"
	"github.com/crimson-sun/teleports/internal/engine/aggregator"
	"github.com/crimson-sun/teleports/internal/engine/scanner"

	// Register compressed log decoders.
	_ "github.com/crimson-sun/teleports/internal/connector/gz"
	_ "github.com/crimson-sun/teleports/internal/connector/zst"
)

// Analyzer scans simulation logs for teleport warnings.
// An Analyzer holds no per-log state and is safe for concurrent use.
type Analyzer struct {
	scanner      *scanner.Scanner
	bucketWidth  int64
	allowPartial bool
}

// New creates an Analyzer. By default events are counted per road segment
// in one-hour buckets.
func New(opts ...Option) (*Analyzer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("teleports: %w", err)
	}
	return &Analyzer{
		scanner:      scanner.New(o.locator()),
		bucketWidth:  o.bucketWidth,
		allowPartial: o.allowPartial,
	}, nil
}

// Analyze reads r to the end and returns its report. A malformed teleport
// warning aborts the scan and no report is returned.
func (a *Analyzer) Analyze(r io.Reader) (*Report, error) {
	return a.AnalyzeContext(context.Background(), r)
}

// AnalyzeContext is Analyze with cancellation between events.
func (a *Analyzer) AnalyzeContext(ctx context.Context, r io.Reader) (*Report, error) {
	state := aggregator.New(a.bucketWidth)
	for ev, err := range a.scanner.Events(r) {
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		state.Record(ev)
	}
	return newReport(state, a.allowPartial), nil
}

// AnalyzeFile opens the log at path, decompressing ".gz" and ".zst"
// files, and analyzes it.
func (a *Analyzer) AnalyzeFile(path string) (*Report, error) {
	rc, err := connector.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	report, err := a.Analyze(rc)
	var mle *MalformedLineError
	switch {
	case err == nil:
		return report, nil
	case errors.As(err, &mle):
		return nil, fmt.Errorf("teleports: %s: %w", path, err)
	default:
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
}
