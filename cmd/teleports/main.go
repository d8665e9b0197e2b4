// Command teleports extracts teleport statistics from traffic simulation
// logs: sorted per-location summaries on stdout and a gnuplot time series
// next to the log.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/maruel/subcommands"

	"github.com/crimson-sun/teleports/internal/config"
	"github.com/crimson-sun/teleports/internal/logging"

	// Register compressed log decoders.
	_ "github.com/crimson-sun/teleports/internal/connector/gz"
	_ "github.com/crimson-sun/teleports/internal/connector/zst"
)

func application(cfg config.Config) *subcommands.DefaultApplication {
	return &subcommands.DefaultApplication{
		Name:  "teleports",
		Title: "Teleport and collision statistics for simulation logs.",
		Commands: []*subcommands.Command{
			cmdAnalyze(cfg),
			cmdWatch(cfg),
			subcommands.CmdHelp,
		},
		EnvVars: map[string]subcommands.EnvVarDefinition{
			"TELEPORTS_GRANULARITY":   {ShortDesc: "segment or lane", Default: config.GranularitySegment},
			"TELEPORTS_BUCKET_WIDTH":  {ShortDesc: "time bucket width in simulation seconds", Default: "3600"},
			"TELEPORTS_SUFFIX_WIDTH":  {ShortDesc: "lane index suffix width stripped per segment", Default: "2"},
			"TELEPORTS_PLOT_PATH":     {ShortDesc: "plot file path, defaults to <log>.plot"},
			"TELEPORTS_ALLOW_PARTIAL": {ShortDesc: "export when only one kind of teleport occurred", Default: "false"},
			"TELEPORTS_DEBOUNCE":      {ShortDesc: "watch mode rerun delay", Default: "500ms"},
			"TELEPORTS_LOG_LEVEL":     {ShortDesc: "debug, info, warn or error", Default: "info"},
			"TELEPORTS_LOG_JSON":      {ShortDesc: "emit diagnostics as JSON", Default: "false"},
		},
	}
}

func main() {
	cfg := config.Load()
	logging.Init(cfg.Logging)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "teleports: invalid configuration:\n%v\n", err)
		os.Exit(2)
	}

	slog.Debug("configuration loaded", "granularity", cfg.Scan.Granularity, "bucket_width", cfg.Scan.BucketWidth)
	os.Exit(subcommands.Run(application(cfg), os.Args[1:]))
}
