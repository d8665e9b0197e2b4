package output

import (
	"context"

	"github.com/crimson-sun/teleports/internal/engine/aggregator"
)

// Output defines the interface for report destinations. Write receives the
// completed aggregation of one run and must not modify it.
type Output interface {
	Write(ctx context.Context, state *aggregator.State) error
	Close() error
}
