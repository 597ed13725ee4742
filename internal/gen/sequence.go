package gen

import (
	"context"
	"fmt"

	"biomegrow/internal/core"
)

// StepKind names the operation a Step performed.
type StepKind string

const (
	// StepSeed is the initial grid before any pass.
	StepSeed StepKind = "seed"
	// StepGenerate is one expand+fill pass.
	StepGenerate StepKind = "generate"
	// StepSmooth is one smoothing pass.
	StepSmooth StepKind = "smooth"
)

// Step is the grid produced by one pass of a sequence.
type Step struct {
	Kind StepKind
	// Index counts passes of the same kind, starting at 1. Zero for StepSeed.
	Index int
	// Number counts all steps including the seed step.
	Number int
	// Seed is the stream seed used by the pass.
	Seed uint64
	Grid *core.Grid
}

// Sequencer walks through a seed step, Generations expand+fill passes and
// Smooths smoothing passes, one step per Next call.
type Sequencer struct {
	gen       *Generator
	base      core.Stream
	cur       *core.Grid
	number    int
	generated int
	smoothed  int
}

// Sequence prepares a sequence starting from initial. The initial grid is not
// modified.
func (g *Generator) Sequence(initial *core.Grid) (*Sequencer, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	return &Sequencer{gen: g, base: core.NewStream(g.cfg.Seed), cur: initial.Clone()}, nil
}

// Grid returns the current grid.
func (s *Sequencer) Grid() *core.Grid { return s.cur }

// Done reports whether every step has been produced.
func (s *Sequencer) Done() bool {
	return s.number > 0 && s.generated >= s.gen.cfg.Generations && s.smoothed >= s.gen.cfg.Smooths
}

// Remaining returns how many steps Next will still produce.
func (s *Sequencer) Remaining() int {
	n := s.gen.cfg.Generations - s.generated + s.gen.cfg.Smooths - s.smoothed
	if s.number == 0 {
		n++
	}
	return n
}

// Next computes the next step. ok is false once the sequence is exhausted.
// On error the sequencer keeps its previous grid.
func (s *Sequencer) Next() (step Step, ok bool, err error) {
	cfg := s.gen.cfg
	switch {
	case s.number == 0:
		step = Step{Kind: StepSeed, Grid: s.cur}
	case s.generated < cfg.Generations:
		stream := s.base.Derive(uint64(s.number))
		expanded, err := s.gen.Expand(s.cur)
		if err != nil {
			return Step{}, false, fmt.Errorf("generate %d: %w", s.generated+1, err)
		}
		filled, err := s.gen.Fill(expanded, stream)
		if err != nil {
			return Step{}, false, fmt.Errorf("generate %d: %w", s.generated+1, err)
		}
		s.generated++
		step = Step{Kind: StepGenerate, Index: s.generated, Seed: stream.Seed(), Grid: filled}
	case s.smoothed < cfg.Smooths:
		stream := s.base.Derive(uint64(s.number))
		smoothed, err := s.gen.Smooth(s.cur, stream)
		if err != nil {
			return Step{}, false, fmt.Errorf("smooth %d: %w", s.smoothed+1, err)
		}
		s.smoothed++
		step = Step{Kind: StepSmooth, Index: s.smoothed, Seed: stream.Seed(), Grid: smoothed}
	default:
		return Step{}, false, nil
	}
	step.Number = s.number
	s.number++
	s.cur = step.Grid
	s.gen.log.Debug("step",
		"kind", step.Kind,
		"index", step.Index,
		"seed", step.Seed,
		"w", step.Grid.W,
		"h", step.Grid.H,
	)
	return step, true, nil
}

// Run drives a full sequence from initial, calling visit after every step
// (including the seed step). visit may be nil. Cancellation is checked between
// steps; the first error aborts the sequence.
func (g *Generator) Run(ctx context.Context, initial *core.Grid, visit func(Step) error) (*core.Grid, error) {
	seq, err := g.Sequence(initial)
	if err != nil {
		return nil, err
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		step, ok, err := seq.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return seq.Grid(), nil
		}
		if visit != nil {
			if err := visit(step); err != nil {
				return nil, err
			}
		}
	}
}

// FinalSize returns the grid dimensions after cfg.Generations passes over a
// w x h seed.
func FinalSize(w, h, generations int) (int, int) {
	for i := 0; i < generations; i++ {
		w, h = 2*w-1, 2*h-1
	}
	return w, h
}
