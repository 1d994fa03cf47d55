package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/glow.svg
var glowSVGData []byte

//go:embed assets/rim.svg
var rimSVGData []byte

const spriteSize = 128

// Sprites are the white, alpha-shaped images tinted at draw time
type Sprites struct {
	Glow *ebiten.Image // soft radial falloff: corona, flares
	Rim  *ebiten.Image // bright ring near the edge: atmospheres
}

// loadSprites rasterizes the embedded SVG assets
func loadSprites() (*Sprites, error) {
	glow, err := svgToImage(glowSVGData, spriteSize, spriteSize)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize glow sprite: %w", err)
	}
	rim, err := svgToImage(rimSVGData, spriteSize, spriteSize)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize rim sprite: %w", err)
	}

	// Optionally save PNGs for debugging
	if os.Getenv("DEBUG_SPRITES") == "1" {
		saveDebugPNG(glow, "debug_glow.png")
		saveDebugPNG(rim, "debug_rim.png")
	}

	return &Sprites{
		Glow: ebiten.NewImageFromImage(glow),
		Rim:  ebiten.NewImageFromImage(rim),
	}, nil
}

// svgToImage converts SVG data to an RGBA image of the given size
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// saveDebugPNG saves a PNG image for debugging purposes
func saveDebugPNG(img image.Image, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("Failed to create debug PNG: %v", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Printf("Failed to encode debug PNG: %v", err)
	}
}
