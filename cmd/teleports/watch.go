package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/maruel/subcommands"

	"github.com/crimson-sun/teleports/internal/config"
	"github.com/crimson-sun/teleports/internal/pipeline"
)

func cmdWatch(cfg config.Config) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "watch [flags] <log>",
		ShortDesc: "re-analyze a log every time the simulation writes to it",
		LongDesc: `Run analyze once, then again whenever the log changes, until
interrupted. A log that does not exist yet, a log without teleports and a
teleport warning cut off at the end of the file are reported but do not stop
the watch. A malformed line anywhere else, or an I/O failure, ends it.`,
		CommandRun: func() subcommands.CommandRun {
			r := &watchRun{}
			r.registerFlags(cfg)
			r.Flags.DurationVar(&r.cfg.Watch.Debounce, "debounce", cfg.Watch.Debounce, "Delay between a change and the rerun")
			return r
		},
	}
}

type watchRun struct {
	baseCommandRun
}

func (r *watchRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	path, err := r.logPath(args)
	if err != nil {
		return r.done(a, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := r.newPipeline(path, pipeline.WithDebounce(r.cfg.Watch.Debounce))
	defer p.Close()

	fmt.Fprintf(os.Stderr, "teleports: watching %s\n", path)
	slog.Info("watch started", "path", path, "debounce", r.cfg.Watch.Debounce)
	return r.done(a, p.Stream(ctx, path))
}
