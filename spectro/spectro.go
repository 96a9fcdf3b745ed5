package spectro

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// Channels is the number of interleaved channels per pixel (R, G, B, A).
const Channels = 4

// Empty is the sentinel channel value for silence. A column whose bytes all
// equal Empty carries no signal.
const Empty uint8 = 255

var (
	ErrShapeMismatch = errors.New("spectro: shape mismatch")
	ErrEmpty         = errors.New("spectro: empty spectrogram")
)

// Spectrogram is an H x W grid of RGBA pixels stored row-major in a flat
// buffer. Rows are frequency bands, columns are time bands. Grayscale
// content is represented as R=G=B with an opaque alpha channel.
type Spectrogram struct {
	height int
	width  int
	data   []uint8
}

// New returns a spectrogram of the given dimensions with every channel set
// to [Empty] (opaque white, the silence sentinel).
func New(height, width int) (*Spectrogram, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("spectro: dimensions must be positive: %dx%d", height, width)
	}

	data := make([]uint8, height*width*Channels)
	for i := range data {
		data[i] = Empty
	}

	return &Spectrogram{height: height, width: width, data: data}, nil
}

// FromImage converts an image into a spectrogram, drawing through an RGBA
// intermediate so any source color model is accepted.
func FromImage(img image.Image) (*Spectrogram, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrEmpty
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	spec := &Spectrogram{
		height: bounds.Dy(),
		width:  bounds.Dx(),
		data:   make([]uint8, bounds.Dy()*bounds.Dx()*Channels),
	}

	// image.RGBA rows may carry padding via Stride; copy row by row.
	rowLen := spec.width * Channels
	for r := range spec.height {
		src := rgba.Pix[r*rgba.Stride : r*rgba.Stride+rowLen]
		copy(spec.data[r*rowLen:(r+1)*rowLen], src)
	}

	return spec, nil
}

// Height returns the number of frequency rows.
func (s *Spectrogram) Height() int { return s.height }

// Width returns the number of time columns.
func (s *Spectrogram) Width() int { return s.width }

// Data returns the live underlying buffer, row-major with [Channels]
// interleaved bytes per pixel. Mutations write through to the spectrogram.
func (s *Spectrogram) Data() []uint8 { return s.data }

// Row returns the live byte slice backing row r.
func (s *Spectrogram) Row(r int) []uint8 {
	rowLen := s.width * Channels
	return s.data[r*rowLen : (r+1)*rowLen]
}

// At returns the pixel at (row, col) as an RGBA quadruple.
func (s *Spectrogram) At(row, col int) [Channels]uint8 {
	i := (row*s.width + col) * Channels
	return [Channels]uint8{s.data[i], s.data[i+1], s.data[i+2], s.data[i+3]}
}

// Set writes the pixel at (row, col).
func (s *Spectrogram) Set(row, col int, px [Channels]uint8) {
	i := (row*s.width + col) * Channels
	copy(s.data[i:i+Channels], px[:])
}

// Clone returns a deep copy sharing no memory with the receiver.
func (s *Spectrogram) Clone() *Spectrogram {
	data := make([]uint8, len(s.data))
	copy(data, s.data)

	return &Spectrogram{height: s.height, width: s.width, data: data}
}

// SameShape reports whether both spectrograms have identical dimensions.
func (s *Spectrogram) SameShape(other *Spectrogram) bool {
	return s.height == other.height && s.width == other.width
}

// Image returns a fresh image.RGBA copy of the pixel data.
func (s *Spectrogram) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))

	rowLen := s.width * Channels
	for r := range s.height {
		copy(img.Pix[r*img.Stride:r*img.Stride+rowLen], s.data[r*rowLen:(r+1)*rowLen])
	}

	return img
}

// Combine returns the elementwise 50/50 blend of two equally shaped
// spectrograms. Each byte is computed as a/2 + b/2 with uint8 floor
// halving, so Combine(a, b) == Combine(b, a) exactly and an all-0 blend
// with an all-255 blend yields 127 everywhere.
func Combine(a, b *Spectrogram) (*Spectrogram, error) {
	if !a.SameShape(b) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrShapeMismatch, a.height, a.width, b.height, b.width)
	}

	out := &Spectrogram{
		height: a.height,
		width:  a.width,
		data:   make([]uint8, len(a.data)),
	}
	for i := range out.data {
		out.data[i] = a.data[i]/2 + b.data[i]/2
	}

	return out, nil
}
