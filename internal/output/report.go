package output

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/crimson-sun/teleports/internal/engine/aggregator"
	"github.com/crimson-sun/teleports/internal/model"
)

// ErrEmptyAggregation is returned when there are no events to span a time
// series over.
var ErrEmptyAggregation = errors.New("no teleport events to export")

// Summary is the per-location report for one kind.
type Summary struct {
	Kind    model.Kind
	Entries []model.LocationCount // ascending by count, then location
	Total   int
}

// Summarize builds the sorted per-location summary for kind k.
func Summarize(s *aggregator.State, k model.Kind) Summary {
	counts := s.LocationCounts(k)
	entries := make([]model.LocationCount, 0, len(counts))
	total := 0
	for loc, n := range counts {
		entries = append(entries, model.LocationCount{Count: n, Location: loc})
		total += n
	}
	SortEntries(entries)
	return Summary{Kind: k, Entries: entries, Total: total}
}

// SortEntries orders entries by count, breaking ties by location.
func SortEntries(entries []model.LocationCount) {
	slices.SortFunc(entries, func(a, b model.LocationCount) int {
		if c := cmp.Compare(a.Count, b.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Location, b.Location)
	})
}

// Span returns the lowest and highest bucket index holding events of any
// kind. Unless allowPartial is set, every kind must have at least one event.
func Span(s *aggregator.State, allowPartial bool) (lo, hi int64, err error) {
	var empty []string
	found := false
	for _, k := range model.Kinds {
		buckets := s.BucketCounts(k)
		if len(buckets) == 0 {
			empty = append(empty, k.String())
			continue
		}
		for b := range buckets {
			if !found || b < lo {
				lo = b
			}
			if !found || b > hi {
				hi = b
			}
			found = true
		}
	}

	switch {
	case !found:
		return 0, 0, fmt.Errorf("%w: log contains no teleports", ErrEmptyAggregation)
	case len(empty) > 0 && !allowPartial:
		return 0, 0, fmt.Errorf("%w: no %s events", ErrEmptyAggregation, strings.Join(empty, " or "))
	}
	return lo, hi, nil
}

// Series yields one row per bucket in [lo, hi], with zero counts for
// buckets that have no events. Rows are produced on demand, so a sparse
// span never has to fit in memory.
func Series(s *aggregator.State, lo, hi int64) iter.Seq[model.TimeSeriesRow] {
	return func(yield func(model.TimeSeriesRow) bool) {
		if hi < lo {
			return
		}
		for b := lo; ; b++ {
			row := model.TimeSeriesRow{
				Bucket:    b,
				Waiting:   s.BucketCount(model.Waiting, b),
				Collision: s.BucketCount(model.Collision, b),
			}
			if !yield(row) || b == hi {
				return
			}
		}
	}
}
