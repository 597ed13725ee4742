package seedmap

import (
	"fmt"
	"sort"
	"strconv"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Factory builds a seed map from an optional configuration map.
type Factory func(cfg map[string]string) (*Map, error)

var providers = map[string]Factory{}

// Register adds a seed map provider under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	providers[name] = f
}

// Providers exposes the registry of seed map providers.
func Providers() map[string]Factory {
	return providers
}

// ProviderNames returns the registered provider names in sorted order.
func ProviderNames() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve builds the named provider's map.
func Resolve(name string, cfg map[string]string) (*Map, error) {
	f, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown seed provider %q (have %v)", name, ProviderNames())
	}
	m, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("seed provider %q: %w", name, err)
	}
	return m, nil
}

func init() {
	Register("default", func(map[string]string) (*Map, error) { return Default(), nil })
	Register("noise", noiseFactory)
}

// DefaultBiomes is the palette used by the builtin and noise providers.
var DefaultBiomes = []Biome{
	{Label: "ocean", Color: "#1f4e8c"},
	{Label: "grassland", Color: "#6aa84f"},
	{Label: "forest", Color: "#274e13"},
	{Label: "desert", Color: "#e6c76e"},
	{Label: "mountain", Color: "#8c8c8c"},
}

// Default returns the builtin 3x3 seed map.
func Default() *Map {
	return &Map{
		Name:   "default",
		Biomes: append([]Biome(nil), DefaultBiomes...),
		Rows: [][]int32{
			{0, 1, 3},
			{1, 2, 1},
			{4, 1, 0},
		},
	}
}

// FromNoise samples OpenSimplex noise on a w x h lattice and buckets each
// sample into one of the given biomes. The same seed yields the same map.
func FromNoise(w, h int, biomes []Biome, seed int64, scale float64) (*Map, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("noise seed %dx%d: invalid dimensions", w, h)
	}
	if len(biomes) == 0 {
		return nil, fmt.Errorf("noise seed: no biomes")
	}
	if scale <= 0 {
		scale = 1
	}
	n := opensimplex.NewNormalized(seed)
	rows := make([][]int32, h)
	for y := range rows {
		rows[y] = make([]int32, w)
		for x := range rows[y] {
			v := n.Eval2(float64(x)/scale, float64(y)/scale)
			idx := int32(v * float64(len(biomes)))
			if idx >= int32(len(biomes)) {
				idx = int32(len(biomes) - 1)
			}
			if idx < 0 {
				idx = 0
			}
			rows[y][x] = idx
		}
	}
	m := &Map{
		Name:   fmt.Sprintf("noise-%d", seed),
		Biomes: append([]Biome(nil), biomes...),
		Rows:   rows,
	}
	return m, nil
}

// noiseFactory reads size, noise-seed and scale from cfg.
func noiseFactory(cfg map[string]string) (*Map, error) {
	size := DefaultGridSize
	seed := int64(1)
	scale := 1.5
	if v, ok := cfg["size"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("size: %w", err)
		}
		size = n
	}
	if v, ok := cfg["noise-seed"]; ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("noise-seed: %w", err)
		}
		seed = n
	}
	if v, ok := cfg["scale"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("scale: %w", err)
		}
		scale = f
	}
	return FromNoise(size, size, DefaultBiomes, seed, scale)
}
