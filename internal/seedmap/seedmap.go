// Package seedmap provides the small authored grids that generation starts
// from, together with the biome palette used to display them.
package seedmap

import (
	"encoding/json"
	"fmt"
	"io"

	"biomegrow/internal/core"
	"biomegrow/internal/render"

	"github.com/zyedidia/generic/mapset"
)

// DefaultGridSize is the edge length of a freshly authored seed map.
const DefaultGridSize = 3

// Biome describes one palette entry of a seed map.
type Biome struct {
	Label string `json:"label"`
	// Color is "#rrggbb"; empty picks a generated color.
	Color string `json:"color,omitempty"`
}

// Map is an authored seed grid. Rows[y][x] is the biome index at (x, y).
type Map struct {
	Name   string    `json:"name"`
	Biomes []Biome   `json:"biomes"`
	Rows   [][]int32 `json:"rows"`
}

// Decode reads a JSON seed map and validates it.
func Decode(r io.Reader) (*Map, error) {
	var m Map
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse seed map JSON: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Encode writes m as indented JSON.
func (m *Map) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to write seed map JSON: %w", err)
	}
	return nil
}

// Validate checks that the rows form a rectangle and only reference declared
// biomes.
func (m *Map) Validate() error {
	if _, err := core.FromRows(m.Rows); err != nil {
		return fmt.Errorf("seed map %q: %w", m.Name, err)
	}
	if len(m.Biomes) == 0 {
		return fmt.Errorf("seed map %q: %w: no biomes declared", m.Name, core.ErrIndexOutOfPalette)
	}
	for y, row := range m.Rows {
		for x, v := range row {
			if v < 0 || int(v) >= len(m.Biomes) {
				return fmt.Errorf("seed map %q: %w: cell (%d,%d) = %d with %d biomes", m.Name, core.ErrIndexOutOfPalette, x, y, v, len(m.Biomes))
			}
		}
	}
	for i, b := range m.Biomes {
		if b.Color == "" {
			continue
		}
		if _, err := render.ParseHex(b.Color); err != nil {
			return fmt.Errorf("seed map %q biome %d (%s): %w", m.Name, i, b.Label, err)
		}
	}
	return nil
}

// Grid flattens the rows into a core.Grid.
func (m *Map) Grid() (*core.Grid, error) {
	return core.FromRows(m.Rows)
}

// Palette returns one color per biome. Biomes without an authored color get
// the matching entry of an evenly spaced generated palette.
func (m *Map) Palette() (render.Palette, error) {
	generated := render.Generate(len(m.Biomes))
	pal := make(render.Palette, len(m.Biomes))
	for i, b := range m.Biomes {
		if b.Color == "" {
			pal[i] = generated[i]
			continue
		}
		c, err := render.ParseHex(b.Color)
		if err != nil {
			return nil, fmt.Errorf("biome %d (%s): %w", i, b.Label, err)
		}
		pal[i] = c
	}
	return pal, nil
}

// Unused returns the indices of declared biomes that no cell references.
// Generation never introduces new values, so these never appear in output.
func (m *Map) Unused() []int {
	used := mapset.New[int32]()
	for _, row := range m.Rows {
		for _, v := range row {
			used.Put(v)
		}
	}
	var unused []int
	for i := range m.Biomes {
		if !used.Has(int32(i)) {
			unused = append(unused, i)
		}
	}
	return unused
}
