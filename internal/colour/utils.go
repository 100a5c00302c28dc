package colour

import (
	"image/color"
	"math"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	// Convert from 16-bit to 8-bit.
	rf := float64(r>>8) / 255.0
	rg := float64(g>>8) / 255.0
	rb := float64(b>>8) / 255.0

	return 0.2126*gammaCorrect(rf) + 0.7152*gammaCorrect(rg) + 0.0722*gammaCorrect(rb)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastText returns black or white, whichever reads better on top of c.
func ContrastText(c RGB) RGB {
	if Luminance(c) > 0.5 {
		return RGB{R: 0, G: 0, B: 0}
	}
	return RGB{R: 255, G: 255, B: 255}
}
