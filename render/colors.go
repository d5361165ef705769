package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Scene colors
var (
	RgbBackground = RGB{R: 26, G: 27, B: 38}    // Tokyo Night background
	RgbSun        = RGB{R: 255, G: 165, B: 0}   // Orange
	RgbAxisX      = RGB{R: 255, G: 80, B: 80}   // Red
	RgbAxisY      = RGB{R: 0, G: 200, B: 0}     // Green
	RgbAxisZ      = RGB{R: 100, G: 150, B: 255} // Blue
	RgbMeridian   = RGB{R: 140, G: 140, B: 140} // Gray
	RgbFrame      = RGB{R: 90, G: 90, B: 110}   // Axis box edges
	RgbText       = RGB{R: 255, G: 255, B: 255} // White
	RgbTextDim    = RGB{R: 180, G: 180, B: 180} // Brighter gray
	RgbPaused     = RGB{R: 255, G: 255, B: 0}   // Yellow
	RgbStatusBg   = RGB{R: 40, G: 42, B: 58}
)

// Alpha values for faint scene elements
const (
	AlphaMeridian = 0.25
	AlphaOrbit    = 0.35
	AlphaFrame    = 0.5
)

// Palette spreads n hues evenly on the HCL wheel so neighbouring bodies stay distinguishable
func Palette(n int) []colorful.Color {
	if n <= 0 {
		return nil
	}
	palette := make([]colorful.Color, n)
	step := 360.0 / float64(n)
	for i := range palette {
		h := math.Mod(20.0+float64(i)*step, 360)
		palette[i] = colorful.Hcl(h, 0.6, 0.75).Clamped()
	}
	return palette
}

// ToRGB converts a colorful color into the terminal color space
func ToRGB(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// BodyColors returns the terminal palette for n bodies
func BodyColors(n int) []RGB {
	palette := Palette(n)
	out := make([]RGB, len(palette))
	for i, c := range palette {
		out[i] = ToRGB(c)
	}
	return out
}
