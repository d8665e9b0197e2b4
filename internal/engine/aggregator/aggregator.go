package aggregator

import (
	"maps"

	"github.com/crimson-sun/teleports/internal/model"
)

// DefaultBucketWidth is one simulated hour.
const DefaultBucketWidth = 3600

// State accumulates teleport counts per location and per time bucket for
// each kind. A State belongs to a single run and is not safe for concurrent
// mutation.
type State struct {
	width     int64
	locations map[model.Kind]map[string]int
	buckets   map[model.Kind]map[int64]int
}

// New creates an empty State. bucketWidth must be positive.
func New(bucketWidth int64) *State {
	if bucketWidth <= 0 {
		panic("aggregator: bucket width must be positive")
	}
	s := &State{
		width:     bucketWidth,
		locations: make(map[model.Kind]map[string]int, len(model.Kinds)),
		buckets:   make(map[model.Kind]map[int64]int, len(model.Kinds)),
	}
	for _, k := range model.Kinds {
		s.locations[k] = make(map[string]int)
		s.buckets[k] = make(map[int64]int)
	}
	return s
}

// Record counts one event under its location and its time bucket.
func (s *State) Record(e model.LogEvent) {
	if s.locations[e.Kind] == nil {
		s.locations[e.Kind] = make(map[string]int)
		s.buckets[e.Kind] = make(map[int64]int)
	}
	s.locations[e.Kind][e.Location]++
	s.buckets[e.Kind][s.Bucket(e.Time)]++
}

// Bucket returns the bucket index for a simulation time.
func (s *State) Bucket(t int64) int64 {
	return t / s.width
}

// BucketWidth returns the bucket size in simulation seconds.
func (s *State) BucketWidth() int64 {
	return s.width
}

// LocationCounts returns a copy of the per-location counts for k.
func (s *State) LocationCounts(k model.Kind) map[string]int {
	return maps.Clone(s.locations[k])
}

// BucketCounts returns a copy of the per-bucket counts for k.
func (s *State) BucketCounts(k model.Kind) map[int64]int {
	return maps.Clone(s.buckets[k])
}

// BucketCount returns the count for k in bucket b, 0 if absent.
func (s *State) BucketCount(k model.Kind, b int64) int {
	return s.buckets[k][b]
}

// Total returns the number of events of kind k.
func (s *State) Total(k model.Kind) int {
	n := 0
	for _, c := range s.locations[k] {
		n += c
	}
	return n
}

// Len returns the number of distinct buckets holding events of kind k.
func (s *State) Len(k model.Kind) int {
	return len(s.buckets[k])
}
