package stdout

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/crimson-sun/teleports/internal/engine/aggregator"
	"github.com/crimson-sun/teleports/internal/model"
)

func TestOutputSummaries(t *testing.T) {
	s := aggregator.New(aggregator.DefaultBucketWidth)
	s.Record(model.LogEvent{Location: "A", Time: 10, Kind: model.Waiting})
	s.Record(model.LogEvent{Location: "A", Time: 20, Kind: model.Waiting})
	s.Record(model.LogEvent{Location: "C", Time: 30, Kind: model.Waiting})
	s.Record(model.LogEvent{Location: "B", Time: 3700, Kind: model.Collision})

	var buf bytes.Buffer
	if err := New(&buf).Write(context.Background(), s); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	want := strings.Join([]string{
		"waiting:",
		"       1 C",
		"       2 A",
		"waiting total: 3",
		"collisions:",
		"       1 B",
		"collisions total: 1",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestOutputEmptyState(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).Write(context.Background(), aggregator.New(60)); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	want := "waiting:\nwaiting total: 0\ncollisions:\ncollisions total: 0\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOutputTotalSeparators(t *testing.T) {
	s := aggregator.New(60)
	for i := 0; i < 1234; i++ {
		s.Record(model.LogEvent{Location: "busy", Time: int64(i), Kind: model.Waiting})
	}
	var buf bytes.Buffer
	New(&buf).Write(context.Background(), s)
	if !strings.Contains(buf.String(), "waiting total: 1,234\n") {
		t.Errorf("expected thousands separator in total, got:\n%s", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestOutputWriteError(t *testing.T) {
	if err := New(failWriter{}).Write(context.Background(), aggregator.New(60)); err == nil {
		t.Fatal("expected error from failing writer")
	}
}
