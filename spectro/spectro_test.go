package spectro

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		height int
		width  int
	}{
		{"zero height", 0, 8},
		{"zero width", 8, 0},
		{"negative height", -1, 8},
		{"negative width", 8, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.height, tt.width)
			if err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewFillsSilence(t *testing.T) {
	spec, err := New(3, 5)
	if err != nil {
		t.Fatal(err)
	}

	if spec.Height() != 3 || spec.Width() != 5 {
		t.Fatalf("shape = %dx%d, want 3x5", spec.Height(), spec.Width())
	}

	for i, v := range spec.Data() {
		if v != Empty {
			t.Fatalf("byte %d = %d, want %d", i, v, Empty)
		}
	}
}

func TestSetAt(t *testing.T) {
	spec, err := New(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	px := [Channels]uint8{10, 20, 30, 255}
	spec.Set(2, 3, px)

	if got := spec.At(2, 3); got != px {
		t.Errorf("At(2, 3) = %v, want %v", got, px)
	}

	if got := spec.At(3, 2); got != ([Channels]uint8{255, 255, 255, 255}) {
		t.Errorf("At(3, 2) = %v, want untouched silence", got)
	}
}

func TestRowIsLive(t *testing.T) {
	spec, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}

	row := spec.Row(1)
	if len(row) != 2*Channels {
		t.Fatalf("row length = %d, want %d", len(row), 2*Channels)
	}

	row[0] = 7
	if spec.At(1, 0)[0] != 7 {
		t.Error("Row() write did not reach the spectrogram")
	}
}

func TestCloneIndependence(t *testing.T) {
	spec, err := New(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	spec.Set(0, 0, [Channels]uint8{1, 2, 3, 4})

	dup := spec.Clone()
	if !bytes.Equal(dup.Data(), spec.Data()) {
		t.Fatal("clone differs from original")
	}

	dup.Set(0, 0, [Channels]uint8{9, 9, 9, 9})
	if spec.At(0, 0) != ([Channels]uint8{1, 2, 3, 4}) {
		t.Error("mutating the clone changed the original")
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := range 2 {
		for x := range 3 {
			v := uint8(40*y + 10*x)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	spec, err := FromImage(img)
	if err != nil {
		t.Fatal(err)
	}

	if spec.Height() != 2 || spec.Width() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", spec.Height(), spec.Width())
	}

	back := spec.Image()
	if !bytes.Equal(back.Pix, img.Pix) {
		t.Error("image round trip altered pixel data")
	}
}

func TestFromImageEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := FromImage(img); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 7, 8, 9))
	img.SetRGBA(5, 7, color.RGBA{R: 42, G: 42, B: 42, A: 255})

	spec, err := FromImage(img)
	if err != nil {
		t.Fatal(err)
	}

	if spec.Height() != 2 || spec.Width() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", spec.Height(), spec.Width())
	}

	if got := spec.At(0, 0); got != ([Channels]uint8{42, 42, 42, 255}) {
		t.Errorf("At(0, 0) = %v, want origin pixel of the offset image", got)
	}
}
