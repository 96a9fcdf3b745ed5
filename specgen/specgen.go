// Package specgen renders grayscale spectrogram images from audio
// recordings, producing the inputs the augmentation pipeline consumes.
//
// The rendering convention matches the augmentation side: silence is white
// (255, the border-fill sentinel), peak energy is black, low frequencies
// sit at the bottom row, and every pixel is opaque grayscale.
package specgen

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-spoof/spectro"
)

var ErrInvalidWAV = errors.New("specgen: not a valid WAV file")

// magFloor keeps the log of an all-zero bin finite.
const magFloor = 1e-12

// FromSamples renders mono samples in [-1, 1] into a spectrogram via a
// windowed STFT. The result has fftSize/2 frequency rows and one time
// column per frame.
func FromSamples(samples []float64, opts ...Option) (*spectro.Spectrogram, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	if len(samples) < cfg.fftSize {
		return nil, fmt.Errorf("specgen: need at least one frame of %d samples: %d", cfg.fftSize, len(samples))
	}

	hop := int(math.Round(float64(cfg.fftSize) * (1 - cfg.overlap)))
	if hop < 1 {
		hop = 1
	}

	win := window.Generate(cfg.windowType, cfg.fftSize, window.WithPeriodic())

	plan, err := algofft.NewPlan64(cfg.fftSize)
	if err != nil {
		return nil, fmt.Errorf("specgen: fft plan: %w", err)
	}

	bins := cfg.fftSize / 2
	frames := 1 + (len(samples)-cfg.fftSize)/hop

	windowed := make([]float64, cfg.fftSize)
	input := make([]complex128, cfg.fftSize)
	output := make([]complex128, cfg.fftSize)

	levels := make([][]float64, frames)
	peak := math.Inf(-1)

	for f := range frames {
		frame := samples[f*hop : f*hop+cfg.fftSize]
		vecmath.MulBlock(windowed, frame, win)

		for i, v := range windowed {
			input[i] = complex(v, 0)
		}

		if err := plan.Forward(output, input); err != nil {
			return nil, fmt.Errorf("specgen: fft: %w", err)
		}

		mag := spectrum.Magnitude(output[:bins])

		level := make([]float64, bins)
		for i, m := range mag {
			level[i] = 20 * math.Log10(m+magFloor)
			if level[i] > peak {
				peak = level[i]
			}
		}

		levels[f] = level
	}

	spec, err := spectro.New(bins, frames)
	if err != nil {
		return nil, err
	}

	floor := peak - cfg.dynamicRange

	for f := range levels {
		for b, db := range levels[f] {
			norm := (db - floor) / cfg.dynamicRange
			norm = math.Min(1, math.Max(0, norm))

			gray := uint8(math.Round(255 * (1 - norm)))
			spec.Set(bins-1-b, f, [spectro.Channels]uint8{gray, gray, gray, 255})
		}
	}

	return spec, nil
}

// FromWAV decodes the WAV file at path, mixes it down to mono and renders
// it via [FromSamples].
func FromWAV(path string, opts ...Option) (*spectro.Spectrogram, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("specgen: open %s: %w", path, err)
	}
	defer file.Close()

	dec := wav.NewDecoder(file)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWAV, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("specgen: read %s: %w", path, err)
	}

	return FromSamples(monoSamples(buf), opts...)
}

// monoSamples normalizes PCM data to [-1, 1] and averages interleaved
// channels down to one.
func monoSamples(buf *audio.IntBuffer) []float64 {
	channels := 1
	if buf.Format != nil && buf.Format.NumChannels > 1 {
		channels = buf.Format.NumChannels
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}

	scale := float64(int64(1) << (bitDepth - 1))

	frames := len(buf.Data) / channels
	out := make([]float64, frames)

	for i := range out {
		sum := 0.0
		for ch := range channels {
			sum += float64(buf.Data[i*channels+ch])
		}

		out[i] = sum / (float64(channels) * scale)
	}

	return out
}
