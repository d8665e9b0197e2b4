// Package logging sets up the diagnostics of the teleports tool.
//
// Summaries are the tool's product and go to stdout; everything logged here
// goes to stderr, so `teleports analyze sim.log > report.txt` captures only
// the report. Watch mode relies on these diagnostics to say why a rerun was
// skipped (log not created yet, no teleports yet, last line still being
// written), which is why the default level is info.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/crimson-sun/teleports/internal/config"
)

// Init installs the default slog logger described by cfg, writing to stderr.
func Init(cfg config.LoggingConfig) {
	slog.SetDefault(New(os.Stderr, cfg.JSON, ParseLevel(cfg.Level)))
}

// New returns a logger writing to w. JSON output suits log collectors
// watching a long simulation run; text is for terminals.
func New(w io.Writer, json bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps TELEPORTS_LOG_LEVEL values to slog levels. Unknown values
// fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
