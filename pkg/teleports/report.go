package teleports

import (
	"iter"

	"github.com/crimson-sun/teleports/internal/engine/aggregator"
	"github.com/crimson-sun/teleports/internal/engine/scanner"
	"github.com/crimson-sun/teleports/internal/model"
	"github.com/crimson-sun/teleports/internal/output"
)

// Entry is the teleport count of one location.
type Entry struct {
	Count    int    `json:"count"`
	Location string `json:"location"`
}

// Summary lists the locations of one kind of teleport, ascending by count
// then location, with their total.
type Summary struct {
	Kind    string  `json:"kind"` // "waiting" or "collision"
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

// Row is one time bucket of the exported series.
type Row struct {
	Bucket    int64 `json:"bucket"`
	Waiting   int   `json:"waiting"`
	Collision int   `json:"collision"`
}

// Report is the result of analyzing one log.
type Report struct {
	BucketWidth int64   `json:"bucket_width"`
	Waiting     Summary `json:"waiting"`
	Collisions  Summary `json:"collisions"`

	state        *aggregator.State
	allowPartial bool
}

// Errors returned by the analyzer. Use errors.As / errors.Is to tell them
// apart.
type (
	// MalformedLineError reports a teleport warning missing its lane or time.
	MalformedLineError = scanner.MalformedLineError
	// IOError reports an unreadable log or unwritable report file.
	IOError = model.IOError
)

// ErrEmptyAggregation is returned by Series when there are no events to
// span a time series over.
var ErrEmptyAggregation = output.ErrEmptyAggregation

func newReport(s *aggregator.State, allowPartial bool) *Report {
	return &Report{
		BucketWidth:  s.BucketWidth(),
		Waiting:      summaryFrom(output.Summarize(s, model.Waiting)),
		Collisions:   summaryFrom(output.Summarize(s, model.Collision)),
		state:        s,
		allowPartial: allowPartial,
	}
}

// Series returns one row per bucket between the first and the last bucket
// holding a teleport, including empty buckets in between. Rows are
// generated lazily; a sparse log can span a very large number of buckets.
func (r *Report) Series() (iter.Seq[Row], error) {
	lo, hi, err := output.Span(r.state, r.allowPartial)
	if err != nil {
		return nil, err
	}
	return func(yield func(Row) bool) {
		for row := range output.Series(r.state, lo, hi) {
			if !yield(Row{Bucket: row.Bucket, Waiting: row.Waiting, Collision: row.Collision}) {
				return
			}
		}
	}, nil
}

func summaryFrom(s output.Summary) Summary {
	entries := make([]Entry, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = Entry{Count: e.Count, Location: e.Location}
	}
	return Summary{Kind: s.Kind.String(), Entries: entries, Total: s.Total}
}
