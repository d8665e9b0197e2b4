package multi

import (
	"context"
	"errors"

	"github.com/crimson-sun/teleports/internal/engine/aggregator"
	"github.com/crimson-sun/teleports/internal/output"
)

// Multi fans out a finished aggregation to multiple output.Output
// implementations, in order. If one output fails, the remaining outputs
// still receive the state.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi that fans out to the given outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

// Write delivers the state to every wrapped output. Errors are collected
// but do not prevent delivery to subsequent outputs.
func (m *Multi) Write(ctx context.Context, state *aggregator.State) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Write(ctx, state); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on every wrapped output, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
