package noise

import (
	"errors"
	"testing"
)

func TestPerlinMapRange(t *testing.T) {
	waves := []Wave{{Seed: 0.3, Frequency: 1, Amplitude: 1}, {Seed: 7.1, Frequency: 2, Amplitude: 0.5}}
	m, err := PerlinMap(4, 16, 0, 0, waves)
	if err != nil {
		t.Fatalf("PerlinMap: %v", err)
	}
	if len(m) != 16*16 {
		t.Fatalf("len = %d, want %d", len(m), 16*16)
	}
	for i, v := range m {
		if v < 0 || v > 1 {
			t.Fatalf("cell %d = %g out of [0,1]", i, v)
		}
	}
}

func TestPerlinMapDeterministic(t *testing.T) {
	waves := []Wave{{Seed: 1, Frequency: 1, Amplitude: 1}}
	a, err := PerlinMap(3, 8, 2, 5, waves)
	if err != nil {
		t.Fatal(err)
	}
	b, err := PerlinMap(3, 8, 2, 5, waves)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs: %g vs %g", i, a[i], b[i])
		}
	}
}

func TestPerlinMapErrors(t *testing.T) {
	if _, err := PerlinMap(1, 4, 0, 0, nil); !errors.Is(err, ErrNoWaves) {
		t.Fatalf("nil waves: got %v", err)
	}
	if _, err := PerlinMap(1, 4, 0, 0, []Wave{{Frequency: 1}}); !errors.Is(err, ErrZeroAmplitude) {
		t.Fatalf("zero amplitude: got %v", err)
	}
	if _, err := PerlinMap(1, 0, 0, 0, []Wave{{Amplitude: 1}}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("zero size: got %v", err)
	}
	if _, err := PerlinMap(0, 4, 0, 0, []Wave{{Amplitude: 1}}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("zero scale: got %v", err)
	}
}

func TestUniformMap(t *testing.T) {
	m, err := UniformMap(5, 2, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{1, 0.5, 0, 0.5, 1}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := m[y*5+x]; got != want[y] {
				t.Fatalf("(%d,%d) = %g, want %g", x, y, got, want[y])
			}
		}
	}
	if _, err := UniformMap(5, 0, 0, 0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("zero distance: got %v", err)
	}
}

func TestQuantize(t *testing.T) {
	got := Quantize([]float32{-0.5, 0, 0.24, 0.25, 0.99, 1, 2}, 4)
	want := []int32{0, 0, 0, 1, 3, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Quantize[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseWave(t *testing.T) {
	w, err := ParseWave("1.5:2:0.25")
	if err != nil {
		t.Fatal(err)
	}
	if w != (Wave{Seed: 1.5, Frequency: 2, Amplitude: 0.25}) {
		t.Fatalf("got %+v", w)
	}
	if _, err := ParseWave("nope"); err == nil {
		t.Fatal("expected error")
	}
}
