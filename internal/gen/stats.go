package gen

import (
	"fmt"

	"biomegrow/internal/core"

	"github.com/zyedidia/generic/mapset"
)

// Histogram counts cells per biome index. Sentinel cells are counted under
// core.Sentinel.
func Histogram(g *core.Grid) map[int32]int {
	counts := make(map[int32]int)
	for _, v := range g.Cells() {
		counts[v]++
	}
	return counts
}

// Biomes returns the set of distinct values present in g.
func Biomes(g *core.Grid) mapset.Set[int32] {
	set := mapset.New[int32]()
	for _, v := range g.Cells() {
		set.Put(v)
	}
	return set
}

// Changed marks the cells whose value differs between two grids of the same
// size.
func Changed(prev, next *core.Grid) ([]bool, error) {
	if prev.W != next.W || prev.H != next.H {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", core.ErrInvalidDimensions, prev.W, prev.H, next.W, next.H)
	}
	a, b := prev.Cells(), next.Cells()
	mask := make([]bool, len(a))
	for i := range a {
		mask[i] = a[i] != b[i]
	}
	return mask, nil
}

// CountTrue returns the number of set entries in mask.
func CountTrue(mask []bool) int {
	total := 0
	for _, v := range mask {
		if v {
			total++
		}
	}
	return total
}
