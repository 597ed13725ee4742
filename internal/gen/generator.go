package gen

import (
	"log/slog"

	"biomegrow/internal/core"
)

// Generator grows biome grids. It holds no state between calls besides its
// configuration, so one value can serve any number of sequences.
type Generator struct {
	cfg Config
	log *slog.Logger
}

// New returns a Generator for cfg. A nil logger discards output.
func New(cfg Config, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{cfg: cfg, log: log}
}

// Config returns the generator configuration.
func (g *Generator) Config() Config { return g.cfg }

// Expand doubles the resolution of in. Cells at even/even coordinates copy
// in[X/2, Y/2]; all others are core.Sentinel. The output is (2W-1)x(2H-1).
func (g *Generator) Expand(in *core.Grid) (*core.Grid, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	out, err := core.NewGrid(2*in.W-1, 2*in.H-1)
	if err != nil {
		return nil, err
	}
	dst := out.Cells()
	err = forEachRow(out.H, g.cfg.workers(), func(y int) error {
		row := dst[y*out.W : (y+1)*out.W]
		if y%2 != 0 {
			for x := range row {
				row[x] = core.Sentinel
			}
			return nil
		}
		for x := range row {
			if x%2 != 0 {
				row[x] = core.Sentinel
				continue
			}
			row[x] = in.At(x/2, y/2)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
