package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/maax3v3/tint"
	"github.com/maax3v3/tint/internal/cli"
	"github.com/maax3v3/tint/internal/imaging"
	"github.com/maax3v3/tint/internal/server"
)

func main() {
	cfg, err := cli.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case cfg.ServeAddr != "":
		err = runServe(cfg)
	case cfg.ImagePath != "":
		err = runImage(cfg)
	default:
		runColor(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(cfg cli.Config) error {
	fmt.Printf("Listening on %s\n", cfg.ServeAddr)
	return server.ListenAndServe(cfg.ServeAddr)
}

func runImage(cfg cli.Config) error {
	fmt.Printf("Loading image: %s\n", cfg.ImagePath)
	img, err := imaging.Load(cfg.ImagePath)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}
	fmt.Printf("Image loaded: %dx%d\n", img.Bounds().Dx(), img.Bounds().Dy())

	fmt.Println("Mean color:")
	printColor(adjusted(imaging.MeanColor(img), cfg), cfg.Swatch)
	return nil
}

func runColor(cfg cli.Config) {
	rep := tint.Parse(cfg.ColorSpec)
	if _, invalid := rep.(tint.Invalid); invalid {
		fmt.Printf("%q is not a recognized color, using the transparent-black fallback\n", cfg.ColorSpec)
	}
	printColor(adjusted(rep.Decode(), cfg), cfg.Swatch)
}

func adjusted(c tint.Color, cfg cli.Config) tint.Color {
	if cfg.RGBOnly {
		return c.LightenRGB(cfg.Lighten).DarkenRGB(cfg.Darken)
	}
	return c.Lighten(cfg.Lighten).Darken(cfg.Darken)
}

func printColor(c tint.Color, swatch bool) {
	fmt.Printf("  rgba: %s\n", c.RGBAString())
	fmt.Printf("  hex:  %s (%s with alpha)\n", c.Hex(), c.HexAlpha())
	fmt.Printf("  luma: %.1f\n", c.Luma())
	class := "light"
	if c.IsDark() {
		class = "dark"
	}
	fmt.Printf("  classification: %s\n", class)
	if swatch {
		block := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("        ")
		fmt.Printf("  swatch: %s\n", block)
	}
}
