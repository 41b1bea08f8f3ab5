// Package cli parses and validates command line arguments.
package cli

import (
	"flag"
	"fmt"
	"os"
)

// Config holds the parsed CLI arguments. Exactly one of ColorSpec,
// ImagePath and ServeAddr is set.
type Config struct {
	ColorSpec string
	ImagePath string
	ServeAddr string
	Lighten   float64
	Darken    float64
	RGBOnly   bool
	Swatch    bool
}

// Parse parses CLI arguments and returns a validated Config.
func Parse() (Config, error) {
	colorSpec := flag.String("c", "", "Color to decode (e.g. #f00, ff0000, rgba(255,0,0,0.5))")
	imagePath := flag.String("image", "", "Path to an image to classify (supports PNG, JPEG, WEBP)")
	serveAddr := flag.String("serve", "", "Run the HTTP API on this address (e.g. :8080)")
	lighten := flag.Float64("lighten", 0, "Lighten ratio to apply before printing (0-1)")
	darken := flag.Float64("darken", 0, "Darken ratio to apply before printing (0-1)")
	rgbOnly := flag.Bool("rgb-only", false, "Adjust the color channels only, preserving alpha")
	swatch := flag.Bool("swatch", false, "Print a terminal swatch next to the decoded values")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tint [options]\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n  tint -c '#ff8800' -darken 0.3 -swatch\n  tint -image photo.png\n  tint -serve :8080\n")
	}

	flag.Parse()

	modes := 0
	for _, set := range []bool{*colorSpec != "", *imagePath != "", *serveAddr != ""} {
		if set {
			modes++
		}
	}
	if modes == 0 {
		return Config{}, fmt.Errorf("one of --c, --image or --serve is required")
	}
	if modes > 1 {
		return Config{}, fmt.Errorf("--c, --image and --serve are mutually exclusive")
	}
	if *lighten < 0 || *lighten > 1 {
		return Config{}, fmt.Errorf("--lighten must be between 0 and 1, got %g", *lighten)
	}
	if *darken < 0 || *darken > 1 {
		return Config{}, fmt.Errorf("--darken must be between 0 and 1, got %g", *darken)
	}

	return Config{
		ColorSpec: *colorSpec,
		ImagePath: *imagePath,
		ServeAddr: *serveAddr,
		Lighten:   *lighten,
		Darken:    *darken,
		RGBOnly:   *rgbOnly,
		Swatch:    *swatch,
	}, nil
}
