package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"biomegrow/internal/core"
	"biomegrow/internal/gen"
	"biomegrow/internal/seedmap"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "BIOMEGROW"

// Config represents the command-line parameters for the application.
type Config struct {
	SeedMap  string            `mapstructure:"seed-map"`
	Provider string            `mapstructure:"provider"`
	Set      map[string]string `mapstructure:"set"`

	Generations int    `mapstructure:"generations"`
	Smooths     int    `mapstructure:"smooths"`
	Seed        uint64 `mapstructure:"seed"`
	Workers     int    `mapstructure:"workers"`

	Scale    int           `mapstructure:"scale"`
	TPS      int           `mapstructure:"tps"`
	Delay    time.Duration `mapstructure:"delay"`
	LogLevel string        `mapstructure:"log-level"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	g := gen.DefaultConfig()
	return &Config{
		Provider:    "default",
		Generations: g.Generations,
		Smooths:     g.Smooths,
		Seed:        g.Seed,
		Workers:     g.Workers,
		Scale:       3,
		TPS:         60,
		Delay:       500 * time.Millisecond,
		LogLevel:    "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.SeedMap, "seed-map", c.SeedMap, "seed map JSON file or go-getter URL (overrides --provider)")
	fs.StringVar(&c.Provider, "provider", c.Provider, fmt.Sprintf("builtin seed provider %v", seedmap.ProviderNames()))
	fs.StringToStringVar(&c.Set, "set", c.Set, "key=value overrides for the generator and seed provider")
	fs.IntVar(&c.Generations, "generations", c.Generations, "expand+fill passes")
	fs.IntVar(&c.Smooths, "smooths", c.Smooths, "smoothing passes")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "base seed (0 derives one from the clock)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per stage")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between displayed steps")
	c.BindOutput(fs)
}

// BindOutput attaches only the flags shared by commands that do not run the
// generator.
func (c *Config) BindOutput(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Load layers an optional config file and BIOMEGROW_* environment variables
// under the flags in fs and decodes the result into c. Flags set explicitly
// on the command line win.
func (c *Config) Load(fs *pflag.FlagSet, file string) error {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return c.Validate()
}

// Validate rejects values no command can run with.
func (c *Config) Validate() error {
	switch {
	case c.Generations < 0 || c.Generations > gen.MaxGenerations:
		return fmt.Errorf("generations must be in [0, %d], got %d", gen.MaxGenerations, c.Generations)
	case c.Smooths < 0:
		return fmt.Errorf("smooths must be >= 0, got %d", c.Smooths)
	case c.Workers < 0:
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	case c.Scale < 1:
		return fmt.Errorf("scale must be >= 1, got %d", c.Scale)
	case c.TPS < 1:
		return fmt.Errorf("tps must be >= 1, got %d", c.TPS)
	case c.Delay < 0:
		return fmt.Errorf("delay must be >= 0, got %s", c.Delay)
	}
	return nil
}

// Gen builds the generator configuration. --set entries override the
// dedicated flags, and a zero seed is replaced by one derived from now.
func (c *Config) Gen(now time.Time) gen.Config {
	g := gen.Config{
		Generations: c.Generations,
		Smooths:     c.Smooths,
		Seed:        c.Seed,
		Workers:     c.Workers,
	}.Apply(c.Set)
	if g.Seed == 0 {
		g.Seed = core.SeedFromTime(now)
	}
	return g
}

// LoadSeedMap returns the seed map named by SeedMap, or the Provider's map
// when no file is given.
func (c *Config) LoadSeedMap(ctx context.Context) (*seedmap.Map, error) {
	if c.SeedMap != "" {
		return seedmap.Load(ctx, c.SeedMap)
	}
	return seedmap.Resolve(c.Provider, c.Set)
}

// ViewSize is the pixel size of the final grid grown from a w x h seed.
func ViewSize(w, h, generations, scale int) (int, int) {
	fw, fh := gen.FinalSize(w, h, generations)
	return fw * scale, fh * scale
}
