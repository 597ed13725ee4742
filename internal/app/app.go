//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"biomegrow/internal/core"
	"biomegrow/internal/gen"
	"biomegrow/internal/render"
	"biomegrow/internal/seedmap"
	"biomegrow/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel right of the map.
const HUDWidth = 220

// Game plays a generation sequence step by step in an ebiten window.
type Game struct {
	log     *slog.Logger
	seed    *core.Grid
	palette render.Palette
	genCfg  gen.Config

	seq     *gen.Sequencer
	last    gen.Step
	changed []bool

	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	scale        int
	viewW, viewH int
	paused       bool
	tickOnce     bool
}

// New constructs a Game that grows m according to cfg. The view has the
// pixel size of the final grid; earlier steps are stretched to fill it.
func New(cfg *Config, m *seedmap.Map, log *slog.Logger) (*Game, error) {
	seed, err := m.Grid()
	if err != nil {
		return nil, err
	}
	pal, err := m.Palette()
	if err != nil {
		return nil, err
	}
	g := &Game{
		log:     log,
		seed:    seed,
		palette: pal,
		genCfg:  cfg.Gen(time.Now()),
		painter: render.NewGridPainter(),
		overlay: ui.NewOverlay(),
		timer:   core.NewFixedStep(cfg.Delay),
		scale:   cfg.Scale,
	}
	g.hud = ui.NewHUD(g, m.Name, HUDWidth)
	if err := g.Reset(g.genCfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset restarts the sequence from the seed map with the provided seed. The
// view and window are resized when the generation count changed.
func (g *Game) Reset(seed uint64) error {
	g.genCfg.Seed = seed
	seq, err := gen.New(g.genCfg, g.log).Sequence(g.seed)
	if err != nil {
		return err
	}
	w, h := g.viewSize()
	if w != g.viewW || h != g.viewH {
		g.viewW, g.viewH = w, h
		ebiten.SetWindowSize(g.viewW+g.hud.Width(), g.viewH)
	}
	g.seq = seq
	g.last = gen.Step{}
	g.changed = nil
	g.tickOnce = false
	g.timer.Reset()
	g.log.Info("sequence started", "seed", seed, "generations", g.genCfg.Generations, "smooths", g.genCfg.Smooths)
	return nil
}

func (g *Game) viewSize() (int, int) {
	return ViewSize(g.seed.W, g.seed.H, g.genCfg.Generations, g.scale)
}

// Update handles per-frame logic and advances the sequence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.genCfg.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(core.SeedFromTime(time.Now())); err != nil {
			return err
		}
	}

	g.overlay.Update()
	g.hud.Update(g.viewW)

	due := g.timer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.tickOnce = false
		return g.advance()
	}
	return nil
}

func (g *Game) advance() error {
	prev := g.seq.Grid()
	step, ok, err := g.seq.Next()
	if err != nil {
		return fmt.Errorf("sequence halted: %w", err)
	}
	if !ok {
		return nil
	}
	g.last = step
	g.changed = nil
	if step.Kind == gen.StepSmooth {
		if mask, err := gen.Changed(prev, step.Grid); err == nil {
			g.changed = mask
		}
	}
	return nil
}

// Draw renders the current grid, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	cur := g.seq.Grid()
	if err := g.painter.Blit(screen, cur, g.palette, g.viewW, g.viewH); err != nil {
		g.log.Error("draw", "err", err)
		return
	}
	g.overlay.Draw(screen, g.changed, cur.W, cur.H, g.viewW, g.viewH)
	g.hud.Draw(screen, g.viewW, g.viewH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW + g.hud.Width(), g.viewH
}

// Parameters reports the pass configuration and the state of the last step.
func (g *Game) Parameters() core.ParameterSnapshot {
	snap := g.genCfg.Parameters()
	cur := g.seq.Grid()
	state := "running"
	switch {
	case g.seq.Done():
		state = "done"
	case g.paused:
		state = "paused"
	}
	kind := "-"
	if g.last.Grid != nil {
		kind = string(g.last.Kind)
		if g.last.Index > 0 {
			kind += " " + strconv.Itoa(g.last.Index)
		}
	}
	step := []core.Parameter{
		{Key: "state", Label: "State", Value: state},
		{Key: "step", Label: "Step", Value: kind},
		{Key: "size", Label: "Size", Value: fmt.Sprintf("%dx%d", cur.W, cur.H)},
		{Key: "remaining", Label: "Remaining", Value: strconv.Itoa(g.seq.Remaining())},
	}
	if g.overlay.ShowChanged() && g.changed != nil {
		step = append(step, core.Parameter{Key: "changed", Label: "Changed", Value: strconv.Itoa(gen.CountTrue(g.changed))})
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{Name: "Sequence", Params: step})
	return snap
}

// ParameterControls exposes the pass counts to the HUD.
func (g *Game) ParameterControls() []core.ParameterControl {
	return g.genCfg.ParameterControls()
}

// SetIntParameter changes a pass count; it takes effect on the next reset.
func (g *Game) SetIntParameter(key string, value int) bool {
	return g.genCfg.SetIntParameter(key, value)
}
