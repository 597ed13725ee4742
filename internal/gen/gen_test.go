package gen

import (
	"math/rand/v2"
	"testing"

	"biomegrow/internal/core"

	"github.com/stretchr/testify/require"
)

func testGenerator(workers int) *Generator {
	cfg := DefaultConfig()
	cfg.Workers = workers
	return New(cfg, nil)
}

func mustRows(t *testing.T, rows [][]int32) *core.Grid {
	t.Helper()
	g, err := core.FromRows(rows)
	require.NoError(t, err)
	return g
}

func randomGrid(t *testing.T, seed uint64, w, h, biomes int) *core.Grid {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, 0))
	g, err := core.NewGrid(w, h)
	require.NoError(t, err)
	for i := range g.Cells() {
		g.Cells()[i] = int32(r.IntN(biomes))
	}
	return g
}
