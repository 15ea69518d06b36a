// Package colors contains functions to quickly and easily generate colors by name (i.e. "White()", "Blue()",
// "Green()", etc), for drawing arcball overlays.
package colors

import "image/color"

// New returns a color out of red, green, blue, and alpha channels ranging from 0 to 1. Out-of-range values are
// clamped.
func New(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{channel(r), channel(g), channel(b), channel(a)}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Transparent generates a color of the provided name.
func Transparent() color.NRGBA {
	return New(0, 0, 0, 0)
}

// White generates a color of the provided name.
func White() color.NRGBA {
	return New(1, 1, 1, 1)
}

// Black generates a color of the provided name.
func Black() color.NRGBA {
	return New(0, 0, 0, 1)
}

// Gray generates a color of the provided name.
func Gray() color.NRGBA {
	return New(0.5, 0.5, 0.5, 1)
}

// LightGray generates a color of the provided name.
func LightGray() color.NRGBA {
	return New(0.8, 0.8, 0.8, 1)
}

// DarkGray generates a color of the provided name.
func DarkGray() color.NRGBA {
	return New(0.2, 0.2, 0.2, 1)
}

// DarkestGray generates a color of the provided name.
func DarkestGray() color.NRGBA {
	return New(0.05, 0.05, 0.08, 1)
}

// Red generates a color of the provided name.
func Red() color.NRGBA {
	return New(1, 0.25, 0.25, 1)
}

// Yellow generates a color of the provided name.
func Yellow() color.NRGBA {
	return New(1, 0.8, 0, 1)
}

// Green generates a color of the provided name.
func Green() color.NRGBA {
	return New(0.25, 1, 0.25, 1)
}

// SkyBlue generates a color of the provided name.
func SkyBlue() color.NRGBA {
	return New(0.3, 0.6, 1, 1)
}

// Blue generates a color of the provided name.
func Blue() color.NRGBA {
	return New(0.25, 0.5, 1, 1)
}
