package gen

import (
	"runtime"
	"strconv"
)

// MaxGenerations bounds expand+fill passes. Each pass roughly quadruples the
// cell count, so ten passes over a 3x3 seed already give 1025x1025 cells.
const MaxGenerations = 10

// Config controls how many passes a sequence runs and how they are executed.
type Config struct {
	// Generations is the number of expand+fill passes.
	Generations int
	// Smooths is the number of smoothing passes run after the generations.
	Smooths int
	// Seed is the base seed every step stream is derived from.
	Seed uint64
	// Workers bounds the goroutines used per stage. Zero means GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Generations: 5,
		Smooths:     2,
		Seed:        1337,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	return c.Apply(cfg)
}

// Apply overrides fields of c from a string map. Malformed or out of range
// values are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= MaxGenerations {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["smooths"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Smooths = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}
