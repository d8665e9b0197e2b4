package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/maruel/subcommands"

	"github.com/crimson-sun/teleports/internal/config"
	"github.com/crimson-sun/teleports/internal/engine/scanner"
	"github.com/crimson-sun/teleports/internal/model"
	"github.com/crimson-sun/teleports/internal/output"
	"github.com/crimson-sun/teleports/internal/output/multi"
	"github.com/crimson-sun/teleports/internal/output/plot"
	"github.com/crimson-sun/teleports/internal/output/stdout"
	"github.com/crimson-sun/teleports/internal/pipeline"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks command line mistakes.
var errUsage = errors.New("usage")

// baseCommandRun holds the flags shared by analyze and watch.
type baseCommandRun struct {
	subcommands.CommandRunBase

	cfg config.Config
}

func (r *baseCommandRun) registerFlags(cfg config.Config) {
	r.cfg = cfg
	r.Flags.BoolFunc("lanes", "Count per lane instead of per road segment", func(s string) error {
		r.cfg.Scan.Granularity = config.GranularityLane
		if s == "false" {
			r.cfg.Scan.Granularity = config.GranularitySegment
		}
		return nil
	})
	r.Flags.Int64Var(&r.cfg.Scan.BucketWidth, "bucket", cfg.Scan.BucketWidth, "Time bucket width in simulation seconds")
	r.Flags.IntVar(&r.cfg.Scan.SuffixWidth, "suffix", cfg.Scan.SuffixWidth, "Width of the lane index suffix stripped per segment")
	r.Flags.StringVar(&r.cfg.Output.PlotPath, "plot", cfg.Output.PlotPath, "Plot file path (default <log>.plot)")
	r.Flags.BoolVar(&r.cfg.Output.AllowPartial, "allow-partial", cfg.Output.AllowPartial, "Export even if only one kind of teleport occurred")
}

// logPath validates the parsed flags and returns the single positional
// argument.
func (r *baseCommandRun) logPath(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: expected exactly one log file, got %d arguments", errUsage, len(args))
	}
	if err := r.cfg.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", errUsage, err)
	}
	return args[0], nil
}

func (r *baseCommandRun) newPipeline(logPath string, opts ...pipeline.Option) *pipeline.Pipeline {
	loc := scanner.LaneLocator()
	if r.cfg.AggregateBySegment() {
		loc = scanner.SegmentLocator(r.cfg.Scan.SuffixWidth)
	}

	plotPath := r.cfg.Output.PlotPath
	if plotPath == "" {
		plotPath = plot.PathFor(logPath)
	}
	out := multi.New(
		stdout.New(os.Stdout),
		plot.New(plotPath, plot.WithAllowPartial(r.cfg.Output.AllowPartial)),
	)
	return pipeline.New(scanner.New(loc), r.cfg.Scan.BucketWidth, out, opts...)
}

// done reports err on stderr and maps it to an exit code.
func (r *baseCommandRun) done(a subcommands.Application, err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return exitOK
	}
	fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), describe(err))
	if errors.Is(err, errUsage) {
		return exitUsage
	}
	return exitError
}

// describe prefixes err with its category so operators can tell a bad log
// from an empty one or from a file system problem.
func describe(err error) string {
	var mle *scanner.MalformedLineError
	var ioErr *model.IOError
	switch {
	case errors.As(err, &mle):
		return fmt.Sprintf("malformed log: line %d: %s", mle.Line, mle.Text)
	case errors.Is(err, output.ErrEmptyAggregation):
		return fmt.Sprintf("nothing to export: %v", err)
	case errors.As(err, &ioErr):
		return fmt.Sprintf("i/o error: %v", ioErr)
	default:
		return err.Error()
	}
}
