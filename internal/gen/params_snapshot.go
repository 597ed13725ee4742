package gen

import (
	"strconv"

	"biomegrow/internal/core"
)

// Parameters describes the configuration for display.
func (c *Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Passes",
			Params: []core.Parameter{
				intParam("generations", "Generations", c.Generations),
				intParam("smooths", "Smooths", c.Smooths),
			},
		},
		{
			Name: "Execution",
			Params: []core.Parameter{
				{Key: "seed", Label: "Seed", Value: strconv.FormatUint(c.Seed, 10)},
				intParam("workers", "Workers", c.workers()),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust. Changes apply to the
// next sequence.
func (c *Config) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "generations", Label: "Generations", Step: 1, Min: 0, Max: MaxGenerations, HasMin: true, HasMax: true},
		{Key: "smooths", Label: "Smooths", Step: 1, Min: 0, Max: 32, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an adjustable parameter, clamped to its control
// bounds. It reports whether key is known.
func (c *Config) SetIntParameter(key string, value int) bool {
	for _, ctrl := range c.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "generations":
			c.Generations = value
		case "smooths":
			c.Smooths = value
		}
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: strconv.Itoa(value)}
}
