package stdout

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/crimson-sun/teleports/internal/engine/aggregator"
	"github.com/crimson-sun/teleports/internal/model"
	"github.com/crimson-sun/teleports/internal/output"
)

// Output prints the sorted per-location summaries, waiting first, each
// followed by its total.
type Output struct {
	w io.Writer
}

// New creates a summary Output writing to w, or to os.Stdout when w is nil.
func New(w io.Writer) *Output {
	if w == nil {
		w = os.Stdout
	}
	return &Output{w: w}
}

// Label returns the report label for a kind.
func Label(k model.Kind) string {
	if k == model.Collision {
		return "collisions"
	}
	return k.String()
}

func (o *Output) Write(_ context.Context, state *aggregator.State) error {
	bw := bufio.NewWriter(o.w)
	for _, k := range model.Kinds {
		sum := output.Summarize(state, k)
		label := Label(k)
		fmt.Fprintf(bw, "%s:\n", label)
		for _, e := range sum.Entries {
			fmt.Fprintf(bw, "%8d %s\n", e.Count, e.Location)
		}
		fmt.Fprintf(bw, "%s total: %s\n", label, humanize.Comma(int64(sum.Total)))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
