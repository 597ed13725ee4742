package gen

import "biomegrow/internal/core"

// Smooth removes single-cell notches. For each interior cell with horizontal
// neighbors L, R and vertical neighbors U, D:
//
//	L==R and U==D  -> L or U, chosen at random
//	L==R           -> L
//	U==D           -> U
//	otherwise      -> unchanged
//
// Border cells are copied unchanged.
func (g *Generator) Smooth(in *core.Grid, s core.Stream) (*core.Grid, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	out := in.Clone()
	if in.W < 3 || in.H < 3 {
		return out, nil
	}
	dst := out.Cells()
	err := forEachRow(in.H-2, g.cfg.workers(), func(row int) error {
		y := row + 1
		rng := s.Row(y)
		for x := 1; x < in.W-1; x++ {
			l, r := in.At(x-1, y), in.At(x+1, y)
			u, d := in.At(x, y-1), in.At(x, y+1)
			idx := y*in.W + x
			switch {
			case l == r && u == d:
				if rng.IntN(2) == 0 {
					dst[idx] = l
				} else {
					dst[idx] = u
				}
			case l == r:
				dst[idx] = l
			case u == d:
				dst[idx] = u
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
