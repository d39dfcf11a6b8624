// Package geom holds the small value types the rest of rasterdom builds on:
// colors, lengths, angles, an affine matrix, and generic box/point/size
// pairs. Nothing here depends on style, layout, or paint.
package geom

// Color is a straight (non-premultiplied) 8-bit RGBA color, the form style
// values and gradient stops are stored in. Paint code premultiplies on the
// fly where the compositor's math needs it (spec.md's "Premultiplied RGBA"
// glossary entry).
type Color struct {
	R, G, B, A uint8
}

// Transparent is the zero value and the initial value of most color
// properties' background.
var Transparent = Color{}

// Opaque reports whether the color is fully opaque.
func (c Color) Opaque() bool { return c.A == 255 }

// Invisible reports whether the color contributes nothing to a composite.
func (c Color) Invisible() bool { return c.A == 0 }

// Premultiply returns the color with each channel scaled by alpha/255.
func (c Color) Premultiply() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 255
	g = uint32(c.G) * a / 255
	b = uint32(c.B) * a / 255
	return
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Lerp linearly interpolates between c and other at t in [0,1], both channel
// and alpha, in straight (non-premultiplied) space — the interpolation mode
// spec.md §4.3 uses for gradient stops.
func Lerp(c, other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	lerp8 := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return Color{
		R: lerp8(c.R, other.R),
		G: lerp8(c.G, other.G),
		B: lerp8(c.B, other.B),
		A: lerp8(c.A, other.A),
	}
}
