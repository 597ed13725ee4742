// Package noise samples float height maps that can be thresholded into seed
// grids or inspected on their own.
package noise

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
)

var (
	// ErrNoWaves is returned when PerlinMap is given no waves.
	ErrNoWaves = errors.New("noise: no waves")
	// ErrZeroAmplitude is returned when the wave amplitudes sum to zero.
	ErrZeroAmplitude = errors.New("noise: amplitudes sum to zero")
	// ErrInvalidSize is returned for non-positive sizes or scales.
	ErrInvalidSize = errors.New("noise: invalid size")
)

// Wave is one octave of the summed map. Seed offsets the sample position so
// waves with equal frequency still decorrelate.
type Wave struct {
	Seed      float32
	Frequency float32
	Amplitude float32
}

const (
	perlinAlpha  = 2
	perlinBeta   = 2
	perlinOctave = 1
	perlinSeed   = 0
)

// PerlinMap returns a size*size row-major map in [0,1]. Each cell is the
// amplitude-weighted mean of the waves sampled at ((x+offsetX)/scale,
// (y+offsetY)/scale).
func PerlinMap(scale float32, size int, offsetX, offsetY float32, waves []Wave) ([]float32, error) {
	if size <= 0 || scale <= 0 {
		return nil, fmt.Errorf("%w: size %d scale %g", ErrInvalidSize, size, scale)
	}
	if len(waves) == 0 {
		return nil, ErrNoWaves
	}
	var norm float32
	for _, w := range waves {
		norm += w.Amplitude
	}
	if norm == 0 {
		return nil, ErrZeroAmplitude
	}

	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, perlinSeed)
	out := make([]float32, size*size)
	for i := range out {
		x := float32(i % size)
		y := float32(i / size)
		sx := (x + offsetX) / scale
		sy := (y + offsetY) / scale

		var sum float32
		for _, w := range waves {
			v := p.Noise2D(float64(sx*w.Frequency+w.Seed), float64(sy*w.Frequency+w.Seed))
			sum += w.Amplitude * unit(float32(v))
		}
		out[i] = sum / norm
	}
	return out, nil
}

// unit maps a raw perlin sample in [-1,1] to [0,1].
func unit(v float32) float32 {
	return math32.Max(0, math32.Min(1, (v+1)/2))
}

// UniformMap returns a size*size map whose rows hold the distance of
// (y+offsetY) from centerY, divided by maxDistanceY.
func UniformMap(size int, centerY, maxDistanceY, offsetY float32) ([]float32, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidSize, size)
	}
	if maxDistanceY == 0 {
		return nil, fmt.Errorf("%w: zero max distance", ErrInvalidSize)
	}
	out := make([]float32, size*size)
	for y := 0; y < size; y++ {
		v := math32.Abs(float32(y)+offsetY-centerY) / maxDistanceY
		row := out[y*size : (y+1)*size]
		for x := range row {
			row[x] = v
		}
	}
	return out, nil
}

// Quantize buckets values in [0,1] into n levels, clamping out-of-range
// values to the first or last level.
func Quantize(values []float32, n int) []int32 {
	out := make([]int32, len(values))
	if n <= 0 {
		return out
	}
	for i, v := range values {
		idx := int32(math32.Floor(v * float32(n)))
		if idx < 0 {
			idx = 0
		}
		if idx >= int32(n) {
			idx = int32(n - 1)
		}
		out[i] = idx
	}
	return out
}

// ParseWave parses "seed:frequency:amplitude".
func ParseWave(s string) (Wave, error) {
	var w Wave
	if _, err := fmt.Sscanf(s, "%g:%g:%g", &w.Seed, &w.Frequency, &w.Amplitude); err != nil {
		return Wave{}, fmt.Errorf("wave %q: want seed:frequency:amplitude: %w", s, err)
	}
	return w, nil
}
