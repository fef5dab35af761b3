// Package assets embeds the images used by the graphical frontends.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

//go:embed sprites/bird.png
var birdPNG []byte

// BirdPNG returns the raw avatar sprite.
func BirdPNG() []byte {
	return birdPNG
}

// Bird decodes the avatar sprite.
func Bird() (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(birdPNG))
	if err != nil {
		return nil, fmt.Errorf("failed to decode bird sprite: %w", err)
	}
	return img, nil
}
