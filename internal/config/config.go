// Package config resolves host settings from defaults, an optional HCL file,
// LIFE_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Hunterosmun/conways-game/pkg/grid"
	"github.com/Hunterosmun/conways-game/pkg/scheduler"
)

// EnvPrefix marks environment variables read by EnvMap.
const EnvPrefix = "LIFE_"

// Config holds every setting a host needs.
type Config struct {
	Rows         int
	Cols         int
	Topology     grid.Topology
	StopOnResize bool
	LivePercent  int
	Seed         int64

	Scale int
	TPS   int

	LogLevel  string
	LogFormat string

	// File is the HCL file named by -config, if any.
	File string
}

// DefaultConfig returns the standard configuration: a 30x20 bounded board.
func DefaultConfig() Config {
	return Config{
		Rows:         scheduler.DefaultRows,
		Cols:         scheduler.DefaultCols,
		Topology:     grid.Bounded,
		StopOnResize: true,
		LivePercent:  scheduler.DefaultLivePercent,
		Seed:         42,
		Scale:        20,
		TPS:          60,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Bind attaches the configuration to the provided FlagSet. Current field
// values become the flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "path to an HCL config file")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.TextVar(&c.Topology, "topology", c.Topology, "edge policy: bounded or toroidal")
	fs.BoolVar(&c.StopOnResize, "stop-on-resize", c.StopOnResize, "stop the run loop when the grid is resized")
	fs.IntVar(&c.LivePercent, "live-percent", c.LivePercent, "live cell probability for randomize (0-100)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks (generations) per second while running")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// WithMap overlays flag-style key/value pairs. Unparseable or out-of-range
// values are ignored.
func (c Config) WithMap(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["topology"]; ok {
		if parsed, err := grid.ParseTopology(v); err == nil {
			c.Topology = parsed
		}
	}
	if v, ok := cfg["stop_on_resize"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.StopOnResize = parsed
		}
	}
	if v, ok := cfg["live_percent"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.LivePercent = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["log_level"]; ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := cfg["log_format"]; ok && v != "" {
		c.LogFormat = v
	}
	return c
}

// EnvMap extracts LIFE_* variables from an os.Environ style list, keyed by
// the lower-cased remainder (LIFE_LIVE_PERCENT -> live_percent).
func EnvMap(environ []string) map[string]string {
	out := map[string]string{}
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		out[strings.ToLower(strings.TrimPrefix(key, EnvPrefix))] = value
	}
	return out
}

// Validate reports the first setting a host cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("config: %w: rows=%d cols=%d", grid.ErrInvalidDimensions, c.Rows, c.Cols)
	case c.LivePercent < 0 || c.LivePercent > 100:
		return fmt.Errorf("config: live_percent: %w: got %d", grid.ErrInvalidProbability, c.LivePercent)
	case c.Scale < 1:
		return fmt.Errorf("config: scale must be positive, got %d", c.Scale)
	case c.TPS < 1:
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// SchedulerOptions maps the board settings onto scheduler options.
func (c Config) SchedulerOptions(logger *slog.Logger) scheduler.Options {
	opts := scheduler.DefaultOptions()
	opts.Rows = c.Rows
	opts.Cols = c.Cols
	opts.Topology = c.Topology
	opts.StopOnResize = c.StopOnResize
	opts.LivePercent = c.LivePercent
	opts.Seed = c.Seed
	opts.Logger = logger
	return opts
}

// Load resolves the configuration for a command named name. Explicit flags
// win over LIFE_* variables, which win over the -config file, which wins over
// defaults. flag.ErrHelp is returned unchanged when -h is given. extra binds
// command-specific flags; it is called once per parse pass.
func Load(name string, args, environ []string, output io.Writer, extra ...func(*flag.FlagSet)) (Config, error) {
	probe := DefaultConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	probe.Bind(fs)
	for _, bind := range extra {
		bind(fs)
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if probe.File != "" {
		var err error
		cfg, err = LoadFile(probe.File, cfg)
		if err != nil {
			return Config{}, err
		}
	}
	cfg = cfg.WithMap(EnvMap(environ))

	final := flag.NewFlagSet(name, flag.ContinueOnError)
	final.SetOutput(io.Discard)
	cfg.Bind(final)
	for _, bind := range extra {
		bind(final)
	}
	if err := final.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsHelp reports whether err came from -h/-help.
func IsHelp(err error) bool { return errors.Is(err, flag.ErrHelp) }
