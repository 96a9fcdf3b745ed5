package specgen

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/window"
)

const (
	defaultFFTSize      = 512
	defaultOverlap      = 0.5
	defaultDynamicRange = 80.0
	minFFTSize          = 16
)

type config struct {
	fftSize      int
	overlap      float64
	windowType   window.Type
	dynamicRange float64
}

func defaultConfig() config {
	return config{
		fftSize:      defaultFFTSize,
		overlap:      defaultOverlap,
		windowType:   window.TypeHann,
		dynamicRange: defaultDynamicRange,
	}
}

// Option configures spectrogram rendering.
type Option func(*config) error

// WithFFTSize sets the STFT frame length in samples; must be a power of
// two >= 16 (default 512). The rendered image is fftSize/2 rows tall.
func WithFFTSize(n int) Option {
	return func(cfg *config) error {
		if n < minFFTSize || n&(n-1) != 0 {
			return fmt.Errorf("specgen: FFT size must be a power of two >= %d: %d", minFFTSize, n)
		}

		cfg.fftSize = n

		return nil
	}
}

// WithOverlap sets the fractional overlap between adjacent frames, in
// [0, 1) (default 0.5).
func WithOverlap(f float64) Option {
	return func(cfg *config) error {
		if f < 0 || f >= 1 || math.IsNaN(f) {
			return fmt.Errorf("specgen: overlap must be in [0, 1): %f", f)
		}

		cfg.overlap = f

		return nil
	}
}

// WithWindowType sets the analysis window (default [window.TypeHann]).
func WithWindowType(t window.Type) Option {
	return func(cfg *config) error {
		cfg.windowType = t
		return nil
	}
}

// WithDynamicRange sets the rendered dynamic range in dB below the peak
// magnitude; bins quieter than that render as pure silence (default 80).
func WithDynamicRange(db float64) Option {
	return func(cfg *config) error {
		if db <= 0 || math.IsNaN(db) || math.IsInf(db, 0) {
			return fmt.Errorf("specgen: dynamic range must be > 0 and finite: %f", db)
		}

		cfg.dynamicRange = db

		return nil
	}
}
