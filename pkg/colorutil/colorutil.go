// Package colorutil provides shared color-space helpers for cube face
// analysis.
package colorutil

import "math"

// BGRToHSV converts a BGR color (0-255 channels, OpenCV channel order)
// to HSV in the OpenCV convention: H 0-180, S 0-255, V 0-255.
func BGRToHSV(b, g, r float64) (h, s, v float64) {
	return RGBToHSV(r, g, b)
}

// RGBToHSV converts RGB (0-255) to HSV (OpenCV convention: H 0-180,
// S 0-255, V 0-255).
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	r /= 255.0
	g /= 255.0
	b /= 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	v = maxC * 255.0
	if maxC > 0 {
		s = (delta / maxC) * 255.0
	}

	switch {
	case delta == 0:
		h = 0
	case maxC == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case maxC == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	// OpenCV stores hue in a 0-180 half-range so it fits a byte.
	return h / 2, s, v
}
