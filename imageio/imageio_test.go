package imageio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-spoof/internal/testutil"
	"github.com/cwbudde/algo-spoof/spectro"
)

func TestCodecRoundTrip(t *testing.T) {
	spec := testutil.Gradient(t, 6, 9)
	path := filepath.Join(t.TempDir(), "spec.png")

	var codec PNGCodec

	if err := codec.Encode(spec, path); err != nil {
		t.Fatal(err)
	}

	got, err := codec.Decode(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.Height() != 6 || got.Width() != 9 {
		t.Fatalf("shape = %dx%d, want 6x9", got.Height(), got.Width())
	}

	if !bytes.Equal(got.Data(), spec.Data()) {
		t.Error("decoded pixel data differs from encoded data")
	}
}

func TestDecodeMissingFile(t *testing.T) {
	var codec PNGCodec

	if _, err := codec.Decode(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDecodeCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	var codec PNGCodec

	if _, err := codec.Decode(path); err == nil {
		t.Error("expected error for corrupt file")
	}
}

func TestEncodeUnwritableDestination(t *testing.T) {
	spec := testutil.Gradient(t, 2, 2)

	var codec PNGCodec

	if err := codec.Encode(spec, filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("expected error for unwritable destination")
	}
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.PNG", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := ListImages(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{filepath.Join(dir, "a.PNG"), filepath.Join(dir, "b.png")}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}

	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestListImagesMissingDir(t *testing.T) {
	_, err := ListImages(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Errorf("err = %v, want ErrDirectoryNotFound", err)
	}
}

func TestListImagesEmptyDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ListImages(dir)
	if !errors.Is(err, ErrEmptyDirectory) {
		t.Errorf("err = %v, want ErrEmptyDirectory", err)
	}
}

func TestSaveVariantsNumbering(t *testing.T) {
	variants := []*spectro.Spectrogram{
		testutil.Gradient(t, 4, 4),
		testutil.Gradient(t, 4, 4),
		testutil.Gradient(t, 4, 4),
	}
	dest := t.TempDir()

	written, err := SaveVariants(variants, filepath.Join("src", "bird.png"), dest, false)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(dest, "bird_0.png"),
		filepath.Join(dest, "bird_1.png"),
		filepath.Join(dest, "bird_2.png"),
	}

	if len(written) != len(want) {
		t.Fatalf("written = %v, want %v", written, want)
	}

	for i := range want {
		if written[i] != want[i] {
			t.Errorf("written[%d] = %s, want %s", i, written[i], want[i])
		}

		if _, err := os.Stat(want[i]); err != nil {
			t.Errorf("expected file %s: %v", want[i], err)
		}
	}
}

func TestSaveVariantsSingleReusesName(t *testing.T) {
	dest := t.TempDir()

	written, err := SaveVariants(
		[]*spectro.Spectrogram{testutil.Gradient(t, 4, 4)},
		filepath.Join("elsewhere", "bird.png"), dest, false)
	if err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(dest, "bird.png")
	if len(written) != 1 || written[0] != want {
		t.Errorf("written = %v, want [%s]", written, want)
	}
}

func TestSaveVariantsReplaceDeletesSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bird.png")

	var codec PNGCodec
	if err := codec.Encode(testutil.Gradient(t, 4, 4), src); err != nil {
		t.Fatal(err)
	}

	_, err := SaveVariants(
		[]*spectro.Spectrogram{testutil.Uniform(t, 4, 4, 9), testutil.Uniform(t, 4, 4, 9)},
		src, dir, true)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(src); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("source still exists after replace: %v", err)
	}

	for _, name := range []string{"bird_0.png", "bird_1.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestSaveVariantsDefaultsToSourceDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bird.png")

	written, err := SaveVariants(
		[]*spectro.Spectrogram{testutil.Gradient(t, 4, 4)}, src, "", false)
	if err != nil {
		t.Fatal(err)
	}

	if len(written) != 1 || written[0] != src {
		t.Errorf("written = %v, want [%s]", written, src)
	}
}

func TestSaveVariantsEmptySet(t *testing.T) {
	if _, err := SaveVariants(nil, "bird.png", "", false); !errors.Is(err, ErrNoVariants) {
		t.Errorf("err = %v, want ErrNoVariants", err)
	}
}
