package main

import (
	"fmt"
	"image"
	"os"

	"biomegrow/internal/app"
	"biomegrow/internal/core"
	"biomegrow/internal/noise"
	"biomegrow/internal/render"
	"biomegrow/internal/seedmap"

	"github.com/spf13/cobra"
)

type noiseOptions struct {
	mode     string
	size     int
	scale    float32
	offsetX  float32
	offsetY  float32
	waves    []string
	center   float32
	distance float32
	levels   int
	out      string
	seedOut  string
}

func newNoiseCmd(root *rootOptions) *cobra.Command {
	cfg := app.NewConfig()
	opts := &noiseOptions{}
	cmd := &cobra.Command{
		Use:   "noise",
		Short: "Write a wave-summed Perlin map or a uniform gradient map as PNG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := root.setup(cfg, cmd.Flags())
			if err != nil {
				return err
			}
			img, levels, err := opts.render()
			if err != nil {
				log.Error("noise failed", "err", err)
				return err
			}
			if err := writeFile(opts.out, func(f *os.File) error {
				return render.WritePNG(f, render.Upscale(img, opts.size*cfg.Scale, opts.size*cfg.Scale))
			}); err != nil {
				log.Error("noise failed", "err", err)
				return err
			}
			log.Info("wrote", "path", opts.out, "mode", opts.mode, "size", opts.size)
			if opts.seedOut == "" {
				return nil
			}
			if levels == nil {
				err := fmt.Errorf("--seed-out requires --levels > 0")
				log.Error("noise failed", "err", err)
				return err
			}
			m := levelSeedMap(opts, levels)
			if err := writeFile(opts.seedOut, func(f *os.File) error { return m.Encode(f) }); err != nil {
				log.Error("noise failed", "err", err)
				return err
			}
			log.Info("wrote", "path", opts.seedOut, "biomes", len(m.Biomes))
			return nil
		},
	}
	cfg.BindOutput(cmd.Flags())
	fs := cmd.Flags()
	fs.StringVar(&opts.mode, "mode", "perlin", "perlin or uniform")
	fs.IntVar(&opts.size, "size", 64, "edge length of the map in cells")
	fs.Float32Var(&opts.scale, "noise-scale", 16, "sample distance divisor")
	fs.Float32Var(&opts.offsetX, "offset-x", 0, "x sample offset")
	fs.Float32Var(&opts.offsetY, "offset-y", 0, "y sample offset")
	fs.StringArrayVar(&opts.waves, "wave", []string{"0:1:1"}, "seed:frequency:amplitude, repeatable")
	fs.Float32Var(&opts.center, "center", 32, "uniform mode: row with value 0")
	fs.Float32Var(&opts.distance, "distance", 32, "uniform mode: distance that maps to 1")
	fs.IntVar(&opts.levels, "levels", 0, "quantize into this many generated colors (0 writes grayscale)")
	fs.StringVarP(&opts.out, "out", "o", "noise.png", "PNG output path")
	fs.StringVar(&opts.seedOut, "seed-out", "", "also write the quantized map as a seed map JSON (needs --levels)")
	return cmd
}

// render returns the map image and, when quantizing, the level grid.
func (o *noiseOptions) render() (image.Image, *core.Grid, error) {
	var values []float32
	var err error
	switch o.mode {
	case "perlin":
		waves := make([]noise.Wave, 0, len(o.waves))
		for _, s := range o.waves {
			w, err := noise.ParseWave(s)
			if err != nil {
				return nil, nil, err
			}
			waves = append(waves, w)
		}
		values, err = noise.PerlinMap(o.scale, o.size, o.offsetX, o.offsetY, waves)
	case "uniform":
		values, err = noise.UniformMap(o.size, o.center, o.distance, o.offsetY)
	default:
		return nil, nil, fmt.Errorf("unknown noise mode %q", o.mode)
	}
	if err != nil {
		return nil, nil, err
	}
	if o.levels > 0 {
		g, err := core.NewGrid(o.size, o.size)
		if err != nil {
			return nil, nil, err
		}
		copy(g.Cells(), noise.Quantize(values, o.levels))
		img, err := render.Render(g, render.Generate(o.levels))
		if err != nil {
			return nil, nil, err
		}
		return img, g, nil
	}
	img := image.NewGray(image.Rect(0, 0, o.size, o.size))
	for i, v := range values {
		img.Pix[i] = grayLevel(v)
	}
	return img, nil, nil
}

// levelSeedMap wraps a quantized grid as a seed map colored like the PNG.
func levelSeedMap(o *noiseOptions, levels *core.Grid) *seedmap.Map {
	pal := render.Generate(o.levels)
	m := &seedmap.Map{
		Name: fmt.Sprintf("noise-%s-%d", o.mode, o.size),
		Rows: levels.Rows(),
	}
	for i, c := range pal {
		m.Biomes = append(m.Biomes, seedmap.Biome{Label: fmt.Sprintf("level %d", i), Color: render.Hex(c)})
	}
	return m
}

func grayLevel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
