package seedmap

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"biomegrow/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "name": "island",
  "biomes": [
    {"label": "water", "color": "#0000ff"},
    {"label": "land"}
  ],
  "rows": [[0, 1], [1, 0]]
}`

func TestDecode(t *testing.T) {
	m, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "island", m.Name)
	assert.Len(t, m.Biomes, 2)

	g, err := m.Grid()
	require.NoError(t, err)
	assert.Equal(t, 2, g.W)
	assert.Equal(t, 2, g.H)
	assert.Equal(t, []int32{0, 1, 1, 0}, g.Cells())
}

func TestDecodeRejectsRagged(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"name":"r","biomes":[{"label":"a"}],"rows":[[0,0],[0]]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrRaggedInput))
}

func TestDecodeRejectsEmpty(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"name":"e","biomes":[{"label":"a"}],"rows":[]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidDimensions))
}

func TestDecodeRejectsOutOfPalette(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"name":"p","biomes":[{"label":"a"}],"rows":[[0,1]]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrIndexOutOfPalette))
}

func TestDecodeRejectsBadColor(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"name":"c","biomes":[{"label":"a","color":"nope"}],"rows":[[0]]}`))
	require.Error(t, err)
}

func TestDecodeRejectsUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"name":"u","biomes":[{"label":"a"}],"rows":[[0]],"extra":1}`))
	require.Error(t, err)
}

func TestPaletteFallsBackToGenerated(t *testing.T) {
	m, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	pal, err := m.Palette()
	require.NoError(t, err)
	require.Len(t, pal, 2)
	assert.Equal(t, uint8(0xff), pal[0].B)
	assert.Equal(t, uint8(0), pal[0].R)
	assert.Equal(t, uint8(0xff), pal[1].A)
}

func TestUnused(t *testing.T) {
	m := &Map{
		Name:   "u",
		Biomes: []Biome{{Label: "a"}, {Label: "b"}, {Label: "c"}},
		Rows:   [][]int32{{0, 2}},
	}
	assert.Equal(t, []int{1}, m.Unused())
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))
	m, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), m)
}

func TestLoadLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	m, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "island", m.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	m := Default()
	require.NoError(t, m.Validate())
	g, err := m.Grid()
	require.NoError(t, err)
	assert.Equal(t, DefaultGridSize, g.W)
	assert.Equal(t, DefaultGridSize, g.H)
}

func TestFromNoiseDeterministic(t *testing.T) {
	a, err := FromNoise(6, 4, DefaultBiomes, 42, 2)
	require.NoError(t, err)
	b, err := FromNoise(6, 4, DefaultBiomes, 42, 2)
	require.NoError(t, err)
	assert.Equal(t, a.Rows, b.Rows)
	require.NoError(t, a.Validate())
	assert.Len(t, a.Rows, 4)
	assert.Len(t, a.Rows[0], 6)
}

func TestFromNoiseInvalid(t *testing.T) {
	_, err := FromNoise(0, 3, DefaultBiomes, 1, 1)
	require.Error(t, err)
	_, err = FromNoise(3, 3, nil, 1, 1)
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	assert.Contains(t, ProviderNames(), "default")
	assert.Contains(t, ProviderNames(), "noise")

	m, err := Resolve("noise", map[string]string{"size": "5", "noise-seed": "7"})
	require.NoError(t, err)
	assert.Len(t, m.Rows, 5)

	_, err = Resolve("noise", map[string]string{"size": "x"})
	require.Error(t, err)

	_, err = Resolve("nope", nil)
	require.Error(t, err)
}
