package gen

import (
	"testing"

	"biomegrow/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramAndBiomes(t *testing.T) {
	g := mustRows(t, [][]int32{{0, 1, 1}, {2, core.Sentinel, 1}})
	assert.Equal(t, map[int32]int{0: 1, 1: 3, 2: 1, core.Sentinel: 1}, Histogram(g))

	set := Biomes(g)
	assert.Equal(t, 4, set.Size())
	assert.True(t, set.Has(2))
	assert.False(t, set.Has(3))
}

func TestChanged(t *testing.T) {
	a := mustRows(t, [][]int32{{0, 1}, {2, 3}})
	b := mustRows(t, [][]int32{{0, 9}, {2, 8}})
	mask, err := Changed(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, mask)
	assert.Equal(t, 2, CountTrue(mask))

	_, err = Changed(a, mustRows(t, [][]int32{{0}}))
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
}
