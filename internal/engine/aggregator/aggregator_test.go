package aggregator

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/crimson-sun/teleports/internal/model"
)

func TestRecordExample(t *testing.T) {
	s := New(DefaultBucketWidth)
	s.Record(model.LogEvent{Location: "A", Time: 10, Kind: model.Waiting})
	s.Record(model.LogEvent{Location: "A", Time: 20, Kind: model.Waiting})
	s.Record(model.LogEvent{Location: "B", Time: 3700, Kind: model.Collision})

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"waiting locations", s.LocationCounts(model.Waiting), map[string]int{"A": 2}},
		{"collision locations", s.LocationCounts(model.Collision), map[string]int{"B": 1}},
		{"waiting buckets", s.BucketCounts(model.Waiting), map[int64]int{0: 2}},
		{"collision buckets", s.BucketCounts(model.Collision), map[int64]int{1: 1}},
	}
	for _, c := range checks {
		if diff := cmp.Diff(c.want, c.got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", c.name, diff)
		}
	}

	if got := s.Total(model.Waiting); got != 2 {
		t.Errorf("Total(Waiting) = %d, want 2", got)
	}
	if got := s.BucketCount(model.Collision, 0); got != 0 {
		t.Errorf("BucketCount(Collision, 0) = %d, want 0", got)
	}
}

func TestBucket(t *testing.T) {
	tests := []struct {
		width int64
		time  int64
		want  int64
	}{
		{3600, 0, 0},
		{3600, 3599, 0},
		{3600, 3600, 1},
		{60, 125, 2},
		{1, 17, 17},
	}
	for _, tt := range tests {
		if got := New(tt.width).Bucket(tt.time); got != tt.want {
			t.Errorf("New(%d).Bucket(%d) = %d, want %d", tt.width, tt.time, got, tt.want)
		}
	}
}

func TestCountConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	locations := []string{"a", "b", "c", "d"}
	s := New(600)

	for i := 0; i < 1000; i++ {
		s.Record(model.LogEvent{
			Location: locations[rng.Intn(len(locations))],
			Time:     rng.Int63n(86400),
			Kind:     model.Kinds[rng.Intn(len(model.Kinds))],
		})
	}

	grand := 0
	for _, k := range model.Kinds {
		var byBucket int
		for _, c := range s.BucketCounts(k) {
			byBucket += c
		}
		if byLocation := s.Total(k); byLocation != byBucket {
			t.Errorf("%v: location sum %d != bucket sum %d", k, byLocation, byBucket)
		}
		grand += byBucket
	}
	if grand != 1000 {
		t.Errorf("recorded %d events, want 1000", grand)
	}
}

func TestCountsAreCopies(t *testing.T) {
	s := New(DefaultBucketWidth)
	s.Record(model.LogEvent{Location: "A", Time: 1, Kind: model.Waiting})

	m := s.LocationCounts(model.Waiting)
	m["A"] = 100
	if got := s.Total(model.Waiting); got != 1 {
		t.Errorf("Total after mutating copy = %d, want 1", got)
	}
}

func TestNewRejectsZeroWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero bucket width")
		}
	}()
	New(0)
}
