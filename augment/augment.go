package augment

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-spoof/spectro"
)

var (
	ErrNilSource      = errors.New("augment: nil source spectrogram")
	ErrNoBackgrounds  = errors.New("augment: no background spectrograms to choose from")
	ErrNilDecoder     = errors.New("augment: nil decoder")
	ErrInvalidVariant = errors.New("augment: variant index out of range")
)

// Decoder loads a spectrogram image from a path. It decouples background
// blending from any particular image codec; *imageio.PNGCodec satisfies it.
type Decoder interface {
	Decode(path string) (*spectro.Spectrogram, error)
}

// Augmenter owns one immutable source spectrogram and a set of mutable
// variant copies. Every transform method mutates all variants in place, so
// methods can be chained in any order; the source itself is never touched
// after construction.
type Augmenter struct {
	source   *spectro.Spectrogram
	variants []*spectro.Spectrogram

	volumeRange    int
	noiseChance    int
	freqAmpRange   int
	timeAmpRange   int
	maxBandDivisor int
	rng            *rand.Rand
}

// New creates an Augmenter holding count deep copies of source. The default
// configuration matches the classic spoofing parameters: volume +/-50,
// band amplitude +/-80, bands covering at most a fifth of an axis, and a
// roughly one-in-ten noise pixel chance.
func New(source *spectro.Spectrogram, count int, opts ...Option) (*Augmenter, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	if count <= 0 {
		return nil, fmt.Errorf("augment: variant count must be > 0: %d", count)
	}

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

	aug := &Augmenter{
		source:         source.Clone(),
		variants:       make([]*spectro.Spectrogram, count),
		volumeRange:    cfg.volumeRange,
		noiseChance:    cfg.noiseChance,
		freqAmpRange:   cfg.freqAmpRange,
		timeAmpRange:   cfg.timeAmpRange,
		maxBandDivisor: cfg.maxBandDivisor,
		rng:            cfg.rng,
	}

	for i := range aug.variants {
		aug.variants[i] = aug.source.Clone()
	}

	if aug.rng == nil {
		aug.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return aug, nil
}

// Count returns the number of variants.
func (a *Augmenter) Count() int { return len(a.variants) }

// Variant returns variant i. The returned spectrogram is the live variant;
// subsequent transform calls keep mutating it.
func (a *Augmenter) Variant(i int) (*spectro.Spectrogram, error) {
	if i < 0 || i >= len(a.variants) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidVariant, i, len(a.variants))
	}

	return a.variants[i], nil
}

// Variants returns the live variant set in order.
func (a *Augmenter) Variants() []*spectro.Spectrogram {
	out := make([]*spectro.Spectrogram, len(a.variants))
	copy(out, a.variants)

	return out
}

// AdjustVolume shifts the overall amplitude of each variant by an
// independently drawn delta in [-volumeRange, volumeRange), applied to the
// R, G and B channels of every pixel with per-channel clipping. Alpha is
// untouched.
func (a *Augmenter) AdjustVolume() {
	for _, v := range a.variants {
		adjustVolume(v, a.intRange(-a.volumeRange, a.volumeRange))
	}
}

func adjustVolume(s *spectro.Spectrogram, delta int) {
	data := s.Data()
	for i := 0; i < len(data); i += spectro.Channels {
		data[i], data[i+1], data[i+2] = ChangeAmp(data[i], data[i+1], data[i+2], delta)
	}
}

// AmpFreq shifts the amplitude of a random contiguous run of frequency rows
// in each variant. The run covers at most height/divisor rows and may be
// empty, in which case the variant is left untouched.
func (a *Augmenter) AmpFreq() {
	a.ampBand(axisFrequency, a.freqAmpRange)
}

// AmpTime shifts the amplitude of a random contiguous run of time columns
// in each variant. The run covers at most width/divisor columns and may be
// empty, in which case the variant is left untouched.
func (a *Augmenter) AmpTime() {
	a.ampBand(axisTime, a.timeAmpRange)
}

type bandAxis int

const (
	axisFrequency bandAxis = iota
	axisTime
)

func (a *Augmenter) ampBand(axis bandAxis, ampRange int) {
	for _, v := range a.variants {
		length := v.Height()
		if axis == axisTime {
			length = v.Width()
		}

		maxBands := length / a.maxBandDivisor
		if maxBands <= 0 {
			// Axis too short to carve a band out of; skip the draws entirely.
			continue
		}

		// Fixed draw order: band count, amplitude, location.
		bands := a.rng.IntN(maxBands)
		amplitude := a.intRange(-ampRange, ampRange)
		loc := a.rng.IntN(length - bands)

		if bands == 0 {
			continue
		}

		applyBand(v, axis, loc, bands, amplitude)
	}
}

func applyBand(s *spectro.Spectrogram, axis bandAxis, loc, bands, amplitude int) {
	if axis == axisFrequency {
		for r := loc; r < loc+bands; r++ {
			row := s.Row(r)
			for i := 0; i < len(row); i += spectro.Channels {
				row[i], row[i+1], row[i+2] = ChangeAmp(row[i], row[i+1], row[i+2], amplitude)
			}
		}

		return
	}

	for c := loc; c < loc+bands; c++ {
		for r := range s.Height() {
			px := s.At(r, c)
			px[0], px[1], px[2] = ChangeAmp(px[0], px[1], px[2], amplitude)
			s.Set(r, c, px)
		}
	}
}

// RandomNoise replaces a random subset of pixels in each variant with
// random opaque grayscale values. Selection draws an integer from
// [1, H*W*4) per pixel and replaces the pixel when the draw is divisible by
// the noise chance, so the per-pixel probability is approximately but not
// exactly 1/chance; the slight modulus bias is intentional and kept.
func (a *Augmenter) RandomNoise() {
	for _, v := range a.variants {
		height := v.Height()
		width := v.Width()
		span := height*width*spectro.Channels - 1

		for r := range height {
			for c := range width {
				draw := 1 + a.rng.IntN(span)
				if draw%a.noiseChance != 0 {
					continue
				}

				val := uint8(a.rng.IntN(maxChannelValue))
				v.Set(r, c, [spectro.Channels]uint8{val, val, val, 255})
			}
		}
	}
}

// TimeShift rolls each variant along the time axis by a random number of
// columns (a multiple of 4 in [0, width)), wrapping the rightmost columns
// around to the left edge. Empty borders are filled first so the wrap never
// rotates a block of silence into the middle of real content.
func (a *Augmenter) TimeShift() {
	for _, v := range a.variants {
		width := v.Width()
		shift := 4 * a.rng.IntN((width+3)/4)

		FillEmptyBorders(v)
		rollColumns(v, shift)
	}
}

// rollColumns moves column c to (c+shift) mod width for every row.
func rollColumns(s *spectro.Spectrogram, shift int) {
	width := s.Width()

	shift %= width
	if shift == 0 {
		return
	}

	rowLen := width * spectro.Channels
	off := shift * spectro.Channels
	scratch := make([]uint8, rowLen)

	for r := range s.Height() {
		row := s.Row(r)
		copy(scratch[off:], row[:rowLen-off])
		copy(scratch[:off], row[rowLen-off:])
		copy(row, scratch)
	}
}

// BackgroundNoise blends each variant 50/50 with a background spectrogram
// picked uniformly from paths and decoded via dec. The first decode or
// shape failure aborts the pass and is returned; variants already blended
// keep their new content.
func (a *Augmenter) BackgroundNoise(paths []string, dec Decoder) error {
	if len(paths) == 0 {
		return ErrNoBackgrounds
	}

	if dec == nil {
		return ErrNilDecoder
	}

	for i, v := range a.variants {
		path := paths[a.rng.IntN(len(paths))]

		background, err := dec.Decode(path)
		if err != nil {
			return fmt.Errorf("augment: background %s: %w", path, err)
		}

		combined, err := spectro.Combine(v, background)
		if err != nil {
			return fmt.Errorf("augment: background %s: %w", path, err)
		}

		a.variants[i] = combined
	}

	return nil
}

// intRange returns a uniform draw from [lo, hi).
func (a *Augmenter) intRange(lo, hi int) int {
	return lo + a.rng.IntN(hi-lo)
}

// ChangeAmp returns the RGB triplet shifted by amplitude with each channel
// clamped to [0, 255]. Alpha is not part of the triplet and is never
// affected by amplitude adjustments.
func ChangeAmp(r, g, b uint8, amplitude int) (uint8, uint8, uint8) {
	return clampChannel(int(r) + amplitude),
		clampChannel(int(g) + amplitude),
		clampChannel(int(b) + amplitude)
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}

	if v > maxChannelValue {
		return maxChannelValue
	}

	return uint8(v)
}
