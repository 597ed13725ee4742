package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"
	"time"

	"biomegrow/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = Palette{
	{R: 10, G: 20, B: 30, A: 255},
	{R: 200, G: 100, B: 50, A: 255},
}

func TestRenderMapsPalette(t *testing.T) {
	g, err := core.FromRows([][]int32{{0, 1}, {1, 0}})
	require.NoError(t, err)

	img, err := Render(g, testPalette)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, testPalette[0], img.RGBAAt(0, 0))
	assert.Equal(t, testPalette[1], img.RGBAAt(1, 0))
	assert.Equal(t, testPalette[1], img.RGBAAt(0, 1))
}

func TestRenderRejectsOutOfPalette(t *testing.T) {
	for _, v := range []int32{core.Sentinel, 2, 99} {
		g, err := core.FromRows([][]int32{{0, v}})
		require.NoError(t, err)
		img, err := Render(g, testPalette)
		assert.Nil(t, img)
		if !errors.Is(err, core.ErrIndexOutOfPalette) {
			t.Fatalf("value %d: err = %v, want ErrIndexOutOfPalette", v, err)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1a2b3c")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}, c)
	assert.Equal(t, "#1a2b3c", Hex(c))

	c, err = ParseHex("ff000080")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0x80}, c)
	assert.Equal(t, "#ff000080", Hex(c))

	for _, bad := range []string{"", "#123", "#zzzzzz", "#1234567"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestGenerateDistinctOpaqueColors(t *testing.T) {
	pal := Generate(6)
	require.Len(t, pal, 6)
	seen := map[color.RGBA]bool{}
	for _, c := range pal {
		assert.Equal(t, uint8(0xff), c.A)
		seen[c] = true
	}
	assert.Len(t, seen, 6)
}

func TestGenerateStartsAtRedHue(t *testing.T) {
	c := Generate(3)[0]
	assert.Greater(t, c.R, c.G)
	assert.Greater(t, c.R, c.B)
}

func TestUpscaleNearestNeighbor(t *testing.T) {
	g, err := core.FromRows([][]int32{{0, 1}})
	require.NoError(t, err)
	img, err := Render(g, testPalette)
	require.NoError(t, err)

	big := Upscale(img, 4, 2)
	assert.Equal(t, image.Rect(0, 0, 4, 2), big.Bounds())
	assert.Equal(t, testPalette[0], big.RGBAAt(1, 1))
	assert.Equal(t, testPalette[1], big.RGBAAt(2, 0))
}

func TestWritePNGRoundTrip(t *testing.T) {
	g, err := core.FromRows([][]int32{{1, 0, 1}})
	require.NoError(t, err)
	img, err := Render(g, testPalette)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 1), decoded.Bounds())
}

func TestWriteGIFScalesFrames(t *testing.T) {
	small, err := core.FromRows([][]int32{{0, 1}, {1, 0}})
	require.NoError(t, err)
	large, err := core.FromRows([][]int32{{0, 0, 1}, {0, 1, 1}, {1, 1, 0}})
	require.NoError(t, err)

	var frames []image.Image
	for _, g := range []*core.Grid{small, large} {
		img, err := Render(g, testPalette)
		require.NoError(t, err)
		frames = append(frames, img)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteGIF(&buf, frames, testPalette, 250*time.Millisecond))
	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 2)
	assert.Equal(t, []int{25, 25}, anim.Delay)
	assert.Equal(t, 3, anim.Config.Width)

	assert.Error(t, WriteGIF(&buf, nil, testPalette, 0))
}

func TestRenderMask(t *testing.T) {
	on := color.RGBA{R: 255, A: 255}
	img, err := RenderMask([]bool{true, false}, 2, 1, on)
	require.NoError(t, err)
	assert.Equal(t, on, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 0))

	_, err = RenderMask([]bool{true}, 2, 1, on)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
}
