package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"time"

	"biomegrow/internal/core"

	"github.com/anthonynsimon/bild/transform"
)

// Render maps every cell of g through pal into an image of the same size.
// Grids still holding core.Sentinel cells fail with core.ErrIndexOutOfPalette.
func Render(g *core.Grid, pal Palette) (*image.RGBA, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	if err := fillPaletteRGBA(img.Pix, g.Cells(), pal); err != nil {
		return nil, err
	}
	return img, nil
}

// ChangedColor marks changed cells in exported masks.
var ChangedColor = color.RGBA{R: 220, G: 40, B: 40, A: 0xff}

// RenderMask paints the set entries of a w x h mask with on.
func RenderMask(mask []bool, w, h int, on color.RGBA) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || len(mask) != w*h {
		return nil, fmt.Errorf("%w: mask of %d cells for %dx%d", core.ErrInvalidDimensions, len(mask), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillMaskRGBA(img.Pix, mask, on)
	return img, nil
}

// Upscale enlarges img to w x h without blending neighboring cells.
func Upscale(img image.Image, w, h int) *image.RGBA {
	return transform.Resize(img, w, h, transform.NearestNeighbor)
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// WriteGIF encodes frames as an animated GIF using pal as the color table.
// Smaller frames are scaled up to the largest one so every step fills the
// canvas.
func WriteGIF(w io.Writer, frames []image.Image, pal Palette, delay time.Duration) error {
	if len(frames) == 0 {
		return fmt.Errorf("failed to encode gif: no frames")
	}
	if len(pal) == 0 || len(pal) > 256 {
		return fmt.Errorf("failed to encode gif: palette has %d colors, want 1..256", len(pal))
	}
	var size image.Point
	for _, f := range frames {
		b := f.Bounds().Size()
		if b.X > size.X {
			size.X = b.X
		}
		if b.Y > size.Y {
			size.Y = b.Y
		}
	}
	colors := make(color.Palette, len(pal))
	for i, c := range pal {
		colors[i] = c
	}
	hundredths := int(delay / (10 * time.Millisecond))
	anim := &gif.GIF{Config: image.Config{ColorModel: colors, Width: size.X, Height: size.Y}}
	for _, f := range frames {
		if f.Bounds().Size() != size {
			f = Upscale(f, size.X, size.Y)
		}
		frame := image.NewPaletted(image.Rect(0, 0, size.X, size.Y), colors)
		draw.Draw(frame, frame.Bounds(), f, f.Bounds().Min, draw.Src)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, hundredths)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}
