// Package imageio is the thin file boundary around the in-memory
// spectrogram pipeline: PNG decode/encode, background directory listing,
// and the output naming convention for saved variant sets. No transform
// logic lives here.
package imageio

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-spoof/spectro"
)

var (
	ErrDirectoryNotFound = errors.New("imageio: directory not found")
	ErrEmptyDirectory    = errors.New("imageio: no spectrogram images in directory")
	ErrNoVariants        = errors.New("imageio: no variants to save")
)

// PNGCodec reads and writes spectrograms as 4-channel PNG files. The zero
// value is ready to use and satisfies augment.Decoder.
type PNGCodec struct{}

// Decode loads the PNG at path into a spectrogram.
func (PNGCodec) Decode(path string) (*spectro.Spectrogram, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}

	spec, err := spectro.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}

	return spec, nil
}

// Encode writes the spectrogram as a PNG at path.
func (PNGCodec) Encode(spec *spectro.Spectrogram, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}

	if err := png.Encode(file, spec.Image()); err != nil {
		file.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}

	return nil
}

// ListImages returns the paths of the PNG files directly inside dir, in
// name order. A missing or unreadable directory yields
// [ErrDirectoryNotFound]; a directory without PNGs yields
// [ErrEmptyDirectory], guarding the zero-entry random pick downstream.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	var paths []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}

		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDirectory, dir)
	}

	return paths, nil
}

// SaveVariants writes each variant as a PNG derived from the source file
// name. With more than one variant the files are named stem_0.png,
// stem_1.png and so on; a single variant reuses the source file name.
// When destDir is empty the source directory is used. With replace set the
// source file and any pre-existing file at a destination are deleted
// first. The paths written so far are returned alongside any error.
func SaveVariants(variants []*spectro.Spectrogram, srcPath, destDir string, replace bool) ([]string, error) {
	if len(variants) == 0 {
		return nil, ErrNoVariants
	}

	base := filepath.Base(srcPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if destDir == "" {
		destDir = filepath.Dir(srcPath)
	}

	if replace {
		if err := os.Remove(srcPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("imageio: replace %s: %w", srcPath, err)
		}
	}

	var codec PNGCodec

	written := make([]string, 0, len(variants))

	for i, v := range variants {
		name := base
		if len(variants) != 1 {
			name = fmt.Sprintf("%s_%d.png", stem, i)
		}

		dest := filepath.Join(destDir, name)

		if replace {
			if err := os.Remove(dest); err != nil && !errors.Is(err, os.ErrNotExist) {
				return written, fmt.Errorf("imageio: replace %s: %w", dest, err)
			}
		}

		if err := codec.Encode(v, dest); err != nil {
			return written, err
		}

		written = append(written, dest)
	}

	return written, nil
}
