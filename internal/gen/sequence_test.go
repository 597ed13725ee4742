package gen

import (
	"context"
	"errors"
	"testing"

	"biomegrow/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVisitsEveryStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generations = 3
	cfg.Smooths = 2
	cfg.Seed = 5
	g := New(cfg, nil)

	seed := mustRows(t, [][]int32{{0, 1, 2}, {2, 1, 0}})
	var kinds []StepKind
	var sizes [][2]int
	final, err := g.Run(context.Background(), seed, func(s Step) error {
		kinds = append(kinds, s.Kind)
		sizes = append(sizes, [2]int{s.Grid.W, s.Grid.H})
		assert.Equal(t, len(kinds)-1, s.Number)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []StepKind{StepSeed, StepGenerate, StepGenerate, StepGenerate, StepSmooth, StepSmooth}, kinds)
	assert.Equal(t, [][2]int{{3, 2}, {5, 3}, {9, 5}, {17, 9}, {17, 9}, {17, 9}}, sizes)
	assert.True(t, final.Resolved())

	w, h := FinalSize(3, 2, 3)
	assert.Equal(t, [2]int{w, h}, [2]int{final.W, final.H})

	for _, v := range final.Cells() {
		assert.True(t, v >= 0 && v <= 2, "value %d outside seed biomes", v)
	}
}

func TestRunReproducibleWithFixedSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generations = 4
	cfg.Smooths = 3
	cfg.Seed = 424242

	seed := randomGrid(t, 1, 4, 4, 5)

	cfg.Workers = 1
	a, err := New(cfg, nil).Run(context.Background(), seed, nil)
	require.NoError(t, err)
	cfg.Workers = 8
	b, err := New(cfg, nil).Run(context.Background(), seed, nil)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	cfg.Seed++
	c, err := New(cfg, nil).Run(context.Background(), seed, nil)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestStepsUseDistinctSeeds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generations = 2
	cfg.Smooths = 2
	seq, err := New(cfg, nil).Sequence(mustRows(t, [][]int32{{0, 1}, {1, 0}}))
	require.NoError(t, err)

	seeds := map[uint64]bool{}
	assert.Equal(t, 5, seq.Remaining())
	for {
		step, ok, err := seq.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		if step.Kind == StepSeed {
			continue
		}
		assert.False(t, seeds[step.Seed], "seed %d reused", step.Seed)
		seeds[step.Seed] = true
	}
	assert.Len(t, seeds, 4)
	assert.True(t, seq.Done())
	assert.Equal(t, 0, seq.Remaining())
}

func TestRunStopsOnVisitError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generations = 3
	boom := errors.New("display failed")
	calls := 0
	_, err := New(cfg, nil).Run(context.Background(), mustRows(t, [][]int32{{1}}), func(Step) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestRunHonorsCancellationBetweenSteps(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := DefaultConfig()
	cfg.Generations = 3
	steps := 0
	_, err := New(cfg, nil).Run(ctx, mustRows(t, [][]int32{{0, 1}}), func(Step) error {
		steps++
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, steps)
}

func TestRunRejectsInvalidSeed(t *testing.T) {
	_, err := New(DefaultConfig(), nil).Run(context.Background(), &core.Grid{}, nil)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestZeroPassesYieldsSeedOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generations = 0
	cfg.Smooths = 0
	seed := mustRows(t, [][]int32{{2, 3}})
	final, err := New(cfg, nil).Run(context.Background(), seed, nil)
	require.NoError(t, err)
	assert.True(t, seed.Equal(final))
}
