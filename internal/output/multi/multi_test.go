package multi

import (
	"context"
	"errors"
	"testing"

	"github.com/crimson-sun/teleports/internal/engine/aggregator"
	"github.com/crimson-sun/teleports/internal/model"
	"github.com/crimson-sun/teleports/internal/output"
)

// mockOutput records calls for test assertions.
type mockOutput struct {
	states []*aggregator.State
	closed bool
	err    error // if set, Write and Close return this error
}

func (m *mockOutput) Write(_ context.Context, state *aggregator.State) error {
	m.states = append(m.states, state)
	return m.err
}

func (m *mockOutput) Close() error {
	m.closed = true
	return m.err
}

func testState() *aggregator.State {
	s := aggregator.New(aggregator.DefaultBucketWidth)
	s.Record(model.LogEvent{Location: "A", Time: 5, Kind: model.Waiting})
	return s
}

func TestFanOutDeliversToAll(t *testing.T) {
	a := &mockOutput{}
	b := &mockOutput{}
	c := &mockOutput{}
	m := New(a, b, c)

	st := testState()
	if err := m.Write(context.Background(), st); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, out := range []*mockOutput{a, b, c} {
		if len(out.states) != 1 {
			t.Fatalf("output %d: got %d writes, want 1", i, len(out.states))
		}
		if out.states[0] != st {
			t.Errorf("output %d: received a different state", i)
		}
	}
}

func TestErrorDoesNotPreventDelivery(t *testing.T) {
	failing := &mockOutput{err: output.ErrEmptyAggregation}
	healthy := &mockOutput{}
	m := New(failing, healthy)

	err := m.Write(context.Background(), testState())
	if !errors.Is(err, output.ErrEmptyAggregation) {
		t.Fatalf("expected joined ErrEmptyAggregation, got %v", err)
	}

	if len(healthy.states) != 1 {
		t.Fatalf("healthy output got %d writes, want 1", len(healthy.states))
	}
	if len(failing.states) != 1 {
		t.Fatalf("failing output got %d writes, want 1", len(failing.states))
	}
}

func TestCloseCallsAllOutputs(t *testing.T) {
	a := &mockOutput{}
	b := &mockOutput{}
	m := New(a, b)

	if err := m.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.closed || !b.closed {
		t.Errorf("Close not called on all outputs: a=%v b=%v", a.closed, b.closed)
	}
}

func TestCloseCollectsErrors(t *testing.T) {
	a := &mockOutput{err: errors.New("err-a")}
	b := &mockOutput{err: errors.New("err-b")}
	m := New(a, b)

	if err := m.Close(); err == nil {
		t.Fatal("expected error, got nil")
	}
	if !a.closed || !b.closed {
		t.Error("Close should be called on all outputs even when errors occur")
	}
}
