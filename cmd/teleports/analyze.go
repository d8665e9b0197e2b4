package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/maruel/subcommands"

	"github.com/crimson-sun/teleports/internal/config"
)

func cmdAnalyze(cfg config.Config) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "analyze [flags] <log>",
		ShortDesc: "summarize teleports in a simulation log",
		LongDesc: `Scan a simulation log for teleport warnings, print per-location
counts for waiting and collision teleports, and write the per-bucket time
series to <log>.plot for gnuplot.`,
		CommandRun: func() subcommands.CommandRun {
			r := &analyzeRun{}
			r.registerFlags(cfg)
			return r
		},
	}
}

type analyzeRun struct {
	baseCommandRun
}

func (r *analyzeRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	path, err := r.logPath(args)
	if err != nil {
		return r.done(a, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := r.newPipeline(path)
	defer p.Close()

	slog.Debug("analyzing", "path", path)
	_, err = p.Query(ctx, path)
	return r.done(a, err)
}
