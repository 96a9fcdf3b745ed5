package augment

import "github.com/cwbudde/algo-spoof/spectro"

// FillEmptyBorders fills silent border columns in place. If the rightmost
// column is entirely the silence sentinel, the nearest non-empty column to
// its left is copied into every empty column up to the edge; the left edge
// is handled symmetrically. A spectrogram with no non-empty column at all
// is left unchanged. The operation is idempotent.
func FillEmptyBorders(s *spectro.Spectrogram) {
	width := s.Width()

	if columnEmpty(s, width-1) {
		src := width - 1
		for src >= 0 && columnEmpty(s, src) {
			src--
		}

		if src >= 0 {
			for c := src + 1; c < width; c++ {
				copyColumn(s, c, src)
			}
		}
	}

	if columnEmpty(s, 0) {
		src := 0
		for src < width && columnEmpty(s, src) {
			src++
		}

		if src < width {
			for c := range src {
				copyColumn(s, c, src)
			}
		}
	}
}

// columnEmpty reports whether every byte of column col equals the silence
// sentinel, alpha included.
func columnEmpty(s *spectro.Spectrogram, col int) bool {
	for r := range s.Height() {
		for _, v := range s.At(r, col) {
			if v != spectro.Empty {
				return false
			}
		}
	}

	return true
}

func copyColumn(s *spectro.Spectrogram, dst, src int) {
	for r := range s.Height() {
		s.Set(r, dst, s.At(r, src))
	}
}
