package teleports

import (
	"errors"
	"fmt"

	"github.com/crimson-sun/teleports/internal/engine/aggregator"
	"github.com/crimson-sun/teleports/internal/engine/scanner"
)

type options struct {
	lanes        bool
	suffixWidth  int
	bucketWidth  int64
	allowPartial bool
}

// Option configures an Analyzer.
type Option func(*options)

// WithLaneGranularity counts events per lane instead of per road segment.
func WithLaneGranularity() Option {
	return func(o *options) {
		o.lanes = true
	}
}

// WithSuffixWidth sets how many trailing characters of a lane id encode the
// lane index. Default: 2 ("_0", "_1", ...).
func WithSuffixWidth(n int) Option {
	return func(o *options) {
		o.suffixWidth = n
	}
}

// WithBucketWidth sets the time bucket size in simulation seconds.
// Default: 3600.
func WithBucketWidth(seconds int64) Option {
	return func(o *options) {
		o.bucketWidth = seconds
	}
}

// WithAllowPartial lets Report.Series succeed when only one kind of
// teleport occurred.
func WithAllowPartial() Option {
	return func(o *options) {
		o.allowPartial = true
	}
}

func defaultOptions() options {
	return options{
		suffixWidth: scanner.DefaultSuffixWidth,
		bucketWidth: aggregator.DefaultBucketWidth,
	}
}

func (o options) validate() error {
	var errs []error
	if o.bucketWidth <= 0 {
		errs = append(errs, fmt.Errorf("bucket width must be > 0, got %d", o.bucketWidth))
	}
	if o.suffixWidth < 0 {
		errs = append(errs, fmt.Errorf("suffix width must be >= 0, got %d", o.suffixWidth))
	}
	return errors.Join(errs...)
}

func (o options) locator() scanner.Locator {
	if o.lanes {
		return scanner.LaneLocator()
	}
	return scanner.SegmentLocator(o.suffixWidth)
}
