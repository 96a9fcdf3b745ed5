// Command spoof creates randomized variant copies of spectrogram PNGs to
// augment training data.
//
// Usage:
//
//	spoof [flags] spectrogram.png [more.png ...]
//
// Examples:
//
//	spoof -n 20 -dest out/ bird.png
//	spoof -n 8 -ops timeshift,volume,background -background noise/ bird.png
//	spoof -n 1 -replace -seed 42 bird.png
//	spoof -list
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/cwbudde/algo-spoof/augment"
	"github.com/cwbudde/algo-spoof/imageio"
)

type opEntry struct {
	name string
	desc string
}

var registry = []opEntry{
	{"volume", "shift the overall amplitude of each variant by a random delta"},
	{"ampfreq", "shift the amplitude of a random run of frequency bands"},
	{"amptime", "shift the amplitude of a random run of time bands"},
	{"noise", "replace a random subset of pixels with grayscale noise"},
	{"timeshift", "roll each variant along the time axis, filling silent borders"},
	{"background", "blend each variant with a random background spectrogram"},
}

func main() {
	count := flag.Int("n", 20, "number of variants to create per input")
	dest := flag.String("dest", "", "destination directory (default: source directory)")
	backgroundDir := flag.String("background", "", "directory of background spectrogram PNGs")
	ops := flag.String("ops", "timeshift,volume,noise", "comma-separated transform sequence")
	seed := flag.Uint64("seed", 0, "RNG seed for reproducible output (0 = random)")
	replace := flag.Bool("replace", false, "delete the source image and overwrite existing output")
	list := flag.Bool("list", false, "list available transforms")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spoof [flags] spectrogram.png [more.png ...]\n\n")
		fmt.Fprintf(os.Stderr, "Creates randomized variant copies of spectrogram PNGs.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  spoof -n 20 -dest out/ bird.png\n")
		fmt.Fprintf(os.Stderr, "  spoof -ops timeshift,volume,background -background noise/ bird.png\n")
		fmt.Fprintf(os.Stderr, "  spoof -list\n")
	}
	flag.Parse()

	if *list {
		for _, e := range registry {
			fmt.Printf("%-12s %s\n", e.name, e.desc)
		}

		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	sequence, err := resolveOps(*ops)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var backgrounds []string

	if contains(sequence, "background") {
		if *backgroundDir == "" {
			fmt.Fprintf(os.Stderr, "error: the background transform requires -background\n")
			os.Exit(1)
		}

		backgrounds, err = imageio.ListImages(*backgroundDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	failed := false

	for _, path := range flag.Args() {
		if err := spoofFile(path, *count, *dest, sequence, backgrounds, *seed, *replace); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)

			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func resolveOps(spec string) ([]string, error) {
	known := make(map[string]bool, len(registry))
	for _, e := range registry {
		known[e.name] = true
	}

	var sequence []string

	for _, name := range strings.Split(spec, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		if !known[name] {
			return nil, fmt.Errorf("unknown transform %q (use -list to see available)", name)
		}

		sequence = append(sequence, name)
	}

	if len(sequence) == 0 {
		return nil, fmt.Errorf("no transforms selected")
	}

	return sequence, nil
}

func contains(sequence []string, name string) bool {
	for _, s := range sequence {
		if s == name {
			return true
		}
	}

	return false
}

func spoofFile(path string, count int, dest string, sequence, backgrounds []string, seed uint64, replace bool) error {
	var codec imageio.PNGCodec

	source, err := codec.Decode(path)
	if err != nil {
		return err
	}

	var opts []augment.Option
	if seed != 0 {
		opts = append(opts, augment.WithRNG(rand.New(rand.NewPCG(seed, 0))))
	}

	aug, err := augment.New(source, count, opts...)
	if err != nil {
		return err
	}

	for _, op := range sequence {
		switch op {
		case "volume":
			aug.AdjustVolume()
		case "ampfreq":
			aug.AmpFreq()
		case "amptime":
			aug.AmpTime()
		case "noise":
			aug.RandomNoise()
		case "timeshift":
			aug.TimeShift()
		case "background":
			if err := aug.BackgroundNoise(backgrounds, codec); err != nil {
				return err
			}
		}
	}

	written, err := imageio.SaveVariants(aug.Variants(), path, dest, replace)
	if err != nil {
		return err
	}

	fmt.Printf("%s: wrote %d variants\n", path, len(written))

	return nil
}
