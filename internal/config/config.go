package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Granularity values for ScanConfig.Granularity.
const (
	GranularitySegment = "segment"
	GranularityLane    = "lane"
)

// Config holds all teleports configuration.
type Config struct {
	Scan    ScanConfig
	Output  OutputConfig
	Watch   WatchConfig
	Logging LoggingConfig
}

// ScanConfig controls how log lines become events and buckets.
type ScanConfig struct {
	Granularity string // "segment" or "lane"
	SuffixWidth int    // lane index suffix stripped at segment granularity
	BucketWidth int64  // simulation seconds per bucket
}

// OutputConfig holds report settings.
type OutputConfig struct {
	PlotPath     string // "" means <log>.plot
	AllowPartial bool   // export even if one kind has no events
}

// WatchConfig holds watch mode settings.
type WatchConfig struct {
	Debounce time.Duration
}

// LoggingConfig holds diagnostic logging settings.
type LoggingConfig struct {
	Level string
	JSON  bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Scan: ScanConfig{
			Granularity: getenv("TELEPORTS_GRANULARITY", GranularitySegment),
			SuffixWidth: getenvInt("TELEPORTS_SUFFIX_WIDTH", 2),
			BucketWidth: int64(getenvInt("TELEPORTS_BUCKET_WIDTH", 3600)),
		},
		Output: OutputConfig{
			PlotPath:     os.Getenv("TELEPORTS_PLOT_PATH"),
			AllowPartial: getenvBool("TELEPORTS_ALLOW_PARTIAL", false),
		},
		Watch: WatchConfig{
			Debounce: getenvDuration("TELEPORTS_DEBOUNCE", 500*time.Millisecond),
		},
		Logging: LoggingConfig{
			Level: getenv("TELEPORTS_LOG_LEVEL", "info"),
			JSON:  getenvBool("TELEPORTS_LOG_JSON", false),
		},
	}
}

// Validate checks the configuration and returns every problem found,
// joined into a single error.
func (c Config) Validate() error {
	var errs []error

	switch c.Scan.Granularity {
	case GranularitySegment, GranularityLane:
	default:
		errs = append(errs, fmt.Errorf("granularity must be %q or %q, got %q", GranularitySegment, GranularityLane, c.Scan.Granularity))
	}
	if c.Scan.SuffixWidth < 0 {
		errs = append(errs, fmt.Errorf("suffix width must be >= 0, got %d", c.Scan.SuffixWidth))
	}
	if c.Scan.BucketWidth <= 0 {
		errs = append(errs, fmt.Errorf("bucket width must be > 0, got %d", c.Scan.BucketWidth))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch debounce must be >= 0, got %v", c.Watch.Debounce))
	}

	return errors.Join(errs...)
}

// AggregateBySegment reports whether events are grouped per road segment.
func (c Config) AggregateBySegment() bool {
	return c.Scan.Granularity != GranularityLane
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
