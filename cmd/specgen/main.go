// Command specgen renders grayscale spectrogram PNGs from WAV recordings,
// producing the inputs the spoof command augments.
//
// Usage:
//
//	specgen [flags] recording.wav [more.wav ...]
//
// Examples:
//
//	specgen -out spectrograms/ call.wav
//	specgen -fft 1024 -overlap 0.75 -window blackman call.wav
//	specgen -list
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cwbudde/algo-dsp/dsp/window"

	"github.com/cwbudde/algo-spoof/imageio"
	"github.com/cwbudde/algo-spoof/specgen"
)

var windows = map[string]window.Type{
	"rectangular": window.TypeRectangular,
	"hann":        window.TypeHann,
	"hamming":     window.TypeHamming,
	"blackman":    window.TypeBlackman,
	"flat-top":    window.TypeFlatTop,
}

func main() {
	fftSize := flag.Int("fft", 512, "FFT frame length in samples (power of two)")
	overlap := flag.Float64("overlap", 0.5, "fractional frame overlap in [0, 1)")
	winName := flag.String("window", "hann", "analysis window type")
	dynRange := flag.Float64("range", 80, "rendered dynamic range in dB below peak")
	out := flag.String("out", "", "output directory (default: source directory)")
	list := flag.Bool("list", false, "list available window names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: specgen [flags] recording.wav [more.wav ...]\n\n")
		fmt.Fprintf(os.Stderr, "Renders grayscale spectrogram PNGs from WAV recordings.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  specgen -out spectrograms/ call.wav\n")
		fmt.Fprintf(os.Stderr, "  specgen -fft 1024 -window blackman call.wav\n")
	}
	flag.Parse()

	if *list {
		names := make([]string, 0, len(windows))
		for name := range windows {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			fmt.Println(name)
		}

		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	winType, ok := windows[strings.ToLower(strings.TrimSpace(*winName))]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown window %q (use -list to see available)\n", *winName)
		os.Exit(1)
	}

	failed := false

	for _, path := range flag.Args() {
		if err := renderFile(path, *out, *fftSize, *overlap, *dynRange, winType); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)

			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func renderFile(path, outDir string, fftSize int, overlap, dynRange float64, winType window.Type) error {
	spec, err := specgen.FromWAV(path,
		specgen.WithFFTSize(fftSize),
		specgen.WithOverlap(overlap),
		specgen.WithDynamicRange(dynRange),
		specgen.WithWindowType(winType),
	)
	if err != nil {
		return err
	}

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if outDir == "" {
		outDir = filepath.Dir(path)
	}

	dest := filepath.Join(outDir, stem+".png")

	var codec imageio.PNGCodec
	if err := codec.Encode(spec, dest); err != nil {
		return err
	}

	fmt.Printf("%s: %dx%d -> %s\n", path, spec.Height(), spec.Width(), dest)

	return nil
}
