// Package colour provides RGB colour values, hex conversion and distance helpers.
package colour

import (
	"fmt"
	"image/color"
)

// RGB represents a color in RGB format.
// Channels are uint8, so every RGB value is within [0, 255] by construction.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// NewRGB creates an RGB from loosely typed channel values.
// Returns an error wrapping ErrRange if any channel is outside [0, 255].
func NewRGB(r, g, b int) (RGB, error) {
	for _, ch := range []struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.value < 0 || ch.value > 255 {
			return RGB{}, fmt.Errorf("%w: %s channel %d outside [0, 255]", ErrRange, ch.name, ch.value)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color so an RGB can be drawn directly onto an image.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}.RGBA()
}

// Channels returns the three channels as ints, red first.
func (rgb RGB) Channels() [3]int {
	return [3]int{int(rgb.R), int(rgb.G), int(rgb.B)}
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}
