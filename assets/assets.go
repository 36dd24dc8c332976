package assets

import (
	"embed"
	"fmt"
	"image"
	"io/fs"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
)

// LevelsDir is the directory of the built-in layouts inside Levels().
const LevelsDir = "levels"

var (
	//go:embed levels/*.csv
	assetFS embed.FS
)

// Levels returns the embedded level files.
func Levels() fs.FS {
	return assetFS
}

// FitSprite scales img to fit inside w by h, keeping its aspect ratio.
func FitSprite(img image.Image, w, h int) image.Image {
	return imaging.Fit(img, w, h, imaging.Lanczos)
}

// LoadSprite reads an image from disk and fits it to the player collider.
func LoadSprite(path string, w, h int) (*ebiten.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(FitSprite(img, w, h)), nil
}
