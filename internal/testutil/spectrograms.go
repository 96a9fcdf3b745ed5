package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-spoof/spectro"
)

// Uniform builds a spectrogram with every R, G, B and A byte set to value.
func Uniform(t *testing.T, height, width int, value uint8) *spectro.Spectrogram {
	t.Helper()

	spec, err := spectro.New(height, width)
	if err != nil {
		t.Fatal(err)
	}

	data := spec.Data()
	for i := range data {
		data[i] = value
	}

	return spec
}

// Gradient builds a grayscale spectrogram whose pixel value is a
// deterministic function of its position, with opaque alpha. Useful when a
// test needs every column to be distinguishable.
func Gradient(t *testing.T, height, width int) *spectro.Spectrogram {
	t.Helper()

	spec, err := spectro.New(height, width)
	if err != nil {
		t.Fatal(err)
	}

	for r := range height {
		for c := range width {
			v := uint8((r*31 + c*7) % 251)
			spec.Set(r, c, [spectro.Channels]uint8{v, v, v, 255})
		}
	}

	return spec
}

// BlankColumn overwrites column col with the silence sentinel.
func BlankColumn(spec *spectro.Spectrogram, col int) {
	for r := range spec.Height() {
		spec.Set(r, col, [spectro.Channels]uint8{
			spectro.Empty, spectro.Empty, spectro.Empty, spectro.Empty,
		})
	}
}

// SeededRNG returns a reproducible PCG-backed generator.
func SeededRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}
