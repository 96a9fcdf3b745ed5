package augment

import (
	"fmt"
	"math/rand/v2"
)

const (
	defaultVolumeRange    = 50
	defaultNoiseChance    = 10
	defaultFreqAmpRange   = 80
	defaultTimeAmpRange   = 80
	defaultMaxBandDivisor = 5
	maxChannelValue       = 255
)

type config struct {
	volumeRange    int
	noiseChance    int
	freqAmpRange   int
	timeAmpRange   int
	maxBandDivisor int
	rng            *rand.Rand
}

func defaultConfig() config {
	return config{
		volumeRange:    defaultVolumeRange,
		noiseChance:    defaultNoiseChance,
		freqAmpRange:   defaultFreqAmpRange,
		timeAmpRange:   defaultTimeAmpRange,
		maxBandDivisor: defaultMaxBandDivisor,
	}
}

// Option configures an [Augmenter].
type Option func(*config) error

// WithVolumeRange sets the largest volume delta magnitude; deltas are drawn
// from [-n, n) (default 50).
func WithVolumeRange(n int) Option {
	return func(cfg *config) error {
		if n < 1 || n > maxChannelValue {
			return fmt.Errorf("augment: volume range must be in [1, %d]: %d", maxChannelValue, n)
		}

		cfg.volumeRange = n

		return nil
	}
}

// WithNoiseChance sets the divisor of the per-pixel noise selection test;
// roughly 1/n of the pixels are replaced (default 10).
func WithNoiseChance(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("augment: noise chance must be >= 1: %d", n)
		}

		cfg.noiseChance = n

		return nil
	}
}

// WithFreqAmpRange sets the largest frequency-band amplitude magnitude;
// band amplitudes are drawn from [-n, n) (default 80).
func WithFreqAmpRange(n int) Option {
	return func(cfg *config) error {
		if n < 1 || n > maxChannelValue {
			return fmt.Errorf("augment: frequency amplitude range must be in [1, %d]: %d", maxChannelValue, n)
		}

		cfg.freqAmpRange = n

		return nil
	}
}

// WithTimeAmpRange sets the largest time-band amplitude magnitude; band
// amplitudes are drawn from [-n, n) (default 80).
func WithTimeAmpRange(n int) Option {
	return func(cfg *config) error {
		if n < 1 || n > maxChannelValue {
			return fmt.Errorf("augment: time amplitude range must be in [1, %d]: %d", maxChannelValue, n)
		}

		cfg.timeAmpRange = n

		return nil
	}
}

// WithMaxBandDivisor sets the divisor limiting how much of an axis a band
// may cover; at most length/n contiguous rows or columns are modified
// (default 5).
func WithMaxBandDivisor(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("augment: band divisor must be >= 1: %d", n)
		}

		cfg.maxBandDivisor = n

		return nil
	}
}

// WithRNG sets a deterministic random number generator for reproducible
// variant sets.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		cfg.rng = rng
		return nil
	}
}
