package gen

import (
	"fmt"

	"biomegrow/internal/core"
)

// Fill resolves every core.Sentinel cell of an expanded grid by copying a
// neighbor chosen at random according to the cell's coordinate parity:
//
//	odd X, even Y  -> (X-1,Y) or (X+1,Y)
//	even X, odd Y  -> (X,Y-1) or (X,Y+1)
//	odd X, odd Y   -> one of the four diagonal neighbors
//
// Non-sentinel cells are copied unchanged. Draws for row Y come from
// s.Row(Y) in increasing X order.
func (g *Generator) Fill(expanded *core.Grid, s core.Stream) (*core.Grid, error) {
	if err := expanded.Validate(); err != nil {
		return nil, err
	}
	if err := checkBorder(expanded); err != nil {
		return nil, err
	}
	out := expanded.Clone()
	dst := out.Cells()
	err := forEachRow(expanded.H, g.cfg.workers(), func(y int) error {
		rng := s.Row(y)
		for x := 0; x < expanded.W; x++ {
			idx := y*expanded.W + x
			if dst[idx] != core.Sentinel {
				continue
			}
			var nx, ny int
			switch {
			case x%2 == 1 && y%2 == 0:
				nx, ny = x-1+2*rng.IntN(2), y
			case x%2 == 0 && y%2 == 1:
				nx, ny = x, y-1+2*rng.IntN(2)
			case x%2 == 1 && y%2 == 1:
				d := rng.IntN(4)
				nx, ny = x-1+2*(d&1), y-1+(d&2)
			default:
				continue
			}
			v, err := expanded.Get(nx, ny)
			if err != nil {
				return fmt.Errorf("fill (%d,%d): %w", x, y, err)
			}
			dst[idx] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// checkBorder rejects sentinels whose parity neighbors fall outside the grid:
// odd X in the last column or odd Y in the last row. Expand never produces
// them, since its output always has odd dimensions.
func checkBorder(gr *core.Grid) error {
	cells := gr.Cells()
	if lastX := gr.W - 1; lastX%2 == 1 {
		for y := 0; y < gr.H; y++ {
			if cells[y*gr.W+lastX] == core.Sentinel {
				return fmt.Errorf("%w: unresolved cell (%d,%d) has no right neighbor", core.ErrOutOfBounds, lastX, y)
			}
		}
	}
	if lastY := gr.H - 1; lastY%2 == 1 {
		row := cells[lastY*gr.W : (lastY+1)*gr.W]
		for x, v := range row {
			if v == core.Sentinel {
				return fmt.Errorf("%w: unresolved cell (%d,%d) has no lower neighbor", core.ErrOutOfBounds, x, lastY)
			}
		}
	}
	return nil
}
