package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"biomegrow/internal/app"
	"biomegrow/internal/core"
	"biomegrow/internal/gen"
	"biomegrow/internal/render"
	"biomegrow/internal/seedmap"

	"github.com/spf13/cobra"
)

func newGenerateCmd(root *rootOptions) *cobra.Command {
	cfg := app.NewConfig()
	var out, frames, changed string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run a full sequence and write the final map as PNG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := root.setup(cfg, cmd.Flags())
			if err != nil {
				return err
			}
			if err := runGenerate(cmd.Context(), cfg, outputs{png: out, gif: frames, changed: changed}, log); err != nil {
				log.Error("generate failed", "err", err)
				return err
			}
			return nil
		},
	}
	cfg.Bind(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "biomes.png", "PNG output path")
	cmd.Flags().StringVar(&frames, "frames", "", "optional animated GIF of every step")
	cmd.Flags().StringVar(&changed, "changed", "", "optional PNG marking the cells the last smoothing pass changed")
	return cmd
}

// outputs names the files generate writes; empty paths are skipped.
type outputs struct {
	png, gif, changed string
}

func runGenerate(ctx context.Context, cfg *app.Config, out outputs, log *slog.Logger) error {
	m, err := cfg.LoadSeedMap(ctx)
	if err != nil {
		return err
	}
	warnUnused(m, log)
	seed, err := m.Grid()
	if err != nil {
		return err
	}
	pal, err := m.Palette()
	if err != nil {
		return err
	}
	gc := cfg.Gen(time.Now())
	if cfg.Seed == 0 {
		log.Info("derived seed from clock", "seed", gc.Seed)
	}
	fw, fh := gen.FinalSize(seed.W, seed.H, gc.Generations)
	outW, outH := fw*cfg.Scale, fh*cfg.Scale

	var steps []image.Image
	var prev *core.Grid
	var lastChanged []bool
	visit := func(step gen.Step) error {
		if step.Kind == gen.StepSmooth && prev != nil {
			mask, err := gen.Changed(prev, step.Grid)
			if err != nil {
				return fmt.Errorf("%s %d: %w", step.Kind, step.Index, err)
			}
			lastChanged = mask
		}
		prev = step.Grid
		if out.gif == "" {
			return nil
		}
		img, err := render.Render(step.Grid, pal)
		if err != nil {
			return fmt.Errorf("%s %d: %w", step.Kind, step.Index, err)
		}
		steps = append(steps, render.Upscale(img, outW, outH))
		return nil
	}

	start := time.Now()
	final, err := gen.New(gc, log).Run(ctx, seed, visit)
	if err != nil {
		return err
	}
	log.Info("generated",
		"map", m.Name,
		"seed", gc.Seed,
		"w", final.W,
		"h", final.H,
		"biomes", gen.Biomes(final).Size(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	img, err := render.Render(final, pal)
	if err != nil {
		return err
	}
	if err := writeFile(out.png, func(f *os.File) error {
		return render.WritePNG(f, render.Upscale(img, outW, outH))
	}); err != nil {
		return err
	}
	log.Info("wrote", "path", out.png, "w", outW, "h", outH)

	if out.gif != "" {
		if err := writeFile(out.gif, func(f *os.File) error {
			return render.WriteGIF(f, steps, pal, cfg.Delay)
		}); err != nil {
			return err
		}
		log.Info("wrote", "path", out.gif, "frames", len(steps))
	}

	if out.changed != "" {
		if lastChanged == nil {
			log.Warn("no smoothing pass ran, changed mask not written", "path", out.changed)
			return nil
		}
		mask, err := render.RenderMask(lastChanged, final.W, final.H, render.ChangedColor)
		if err != nil {
			return err
		}
		if err := writeFile(out.changed, func(f *os.File) error {
			return render.WritePNG(f, render.Upscale(mask, outW, outH))
		}); err != nil {
			return err
		}
		log.Info("wrote", "path", out.changed, "changed", gen.CountTrue(lastChanged))
	}
	return nil
}

// warnUnused reports declared biomes that can never appear in the output.
func warnUnused(m *seedmap.Map, log *slog.Logger) {
	for _, i := range m.Unused() {
		log.Warn("biome never used by seed map", "map", m.Name, "index", i, "label", m.Biomes[i].Label)
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
