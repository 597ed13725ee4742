package gen

import (
	"testing"

	"biomegrow/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothRules(t *testing.T) {
	g := testGenerator(1)
	cases := []struct {
		name string
		rows [][]int32
		want []int32
	}{
		{"both pairs agree", [][]int32{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, []int32{0}},
		{"tie picks horizontal or vertical", [][]int32{{0, 0, 0}, {1, 2, 1}, {0, 0, 0}}, []int32{0, 1}},
		{"horizontal only", [][]int32{{0, 0, 5}, {1, 2, 1}, {3, 4, 6}}, []int32{1}},
		{"vertical only", [][]int32{{0, 7, 0}, {1, 2, 3}, {0, 7, 0}}, []int32{7}},
		{"no majority", [][]int32{{0, 7, 0}, {1, 2, 3}, {0, 8, 0}}, []int32{2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := mustRows(t, tc.rows)
			for seed := uint64(0); seed < 16; seed++ {
				out, err := g.Smooth(in, core.NewStream(seed))
				require.NoError(t, err)
				assert.Contains(t, tc.want, out.At(1, 1))
			}
		})
	}
}

func TestSmoothTieBreakUsesBothSides(t *testing.T) {
	g := testGenerator(1)
	in := mustRows(t, [][]int32{{0, 0, 0}, {1, 2, 1}, {0, 0, 0}})
	seen := map[int32]bool{}
	for seed := uint64(0); seed < 64; seed++ {
		out, err := g.Smooth(in, core.NewStream(seed))
		require.NoError(t, err)
		seen[out.At(1, 1)] = true
	}
	assert.Equal(t, map[int32]bool{0: true, 1: true}, seen)
}

func TestSmoothNeverTouchesBorder(t *testing.T) {
	g := testGenerator(4)
	in := randomGrid(t, 77, 12, 9, 3)
	out, err := g.Smooth(in, core.NewStream(3))
	require.NoError(t, err)
	for y := 0; y < in.H; y++ {
		for x := 0; x < in.W; x++ {
			if x != 0 && y != 0 && x != in.W-1 && y != in.H-1 {
				continue
			}
			if in.At(x, y) != out.At(x, y) {
				t.Fatalf("border cell (%d,%d) changed %d -> %d", x, y, in.At(x, y), out.At(x, y))
			}
		}
	}
}

func TestSmoothIdempotentWithoutNotches(t *testing.T) {
	g := testGenerator(2)

	uniform, err := core.NewGrid(7, 5)
	require.NoError(t, err)
	uniform.Fill(4)

	bands := mustRows(t, [][]int32{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{2, 2, 2, 2, 2},
		{2, 2, 2, 2, 2},
	})

	for _, in := range []*core.Grid{uniform, bands} {
		for seed := uint64(0); seed < 8; seed++ {
			out, err := g.Smooth(in, core.NewStream(seed))
			require.NoError(t, err)
			assert.True(t, in.Equal(out), "seed %d changed a notch-free grid", seed)
		}
	}
}

func TestSmoothSmallGridsPassThrough(t *testing.T) {
	g := testGenerator(1)
	in := mustRows(t, [][]int32{{0, 1}, {2, 3}})
	out, err := g.Smooth(in, core.NewStream(1))
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestSmoothDeterministicAcrossWorkers(t *testing.T) {
	in := randomGrid(t, 31, 40, 25, 2)
	a, err := testGenerator(1).Smooth(in, core.NewStream(8))
	require.NoError(t, err)
	b, err := testGenerator(6).Smooth(in, core.NewStream(8))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}
