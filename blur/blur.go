// Package blur is apply_blur: a three-pass box-blur approximation of a
// Gaussian blur, used for both `filter: blur()` and box/text-shadow blur
// radii (spec.md §4.6).
package blur

import (
	"math"
	"sync"

	"github.com/klauspost/cpuid/v2"

	"rasterdom/geom"
)

// Kind selects the sigma formula apply_blur uses: Filter blur uses the
// radius directly, Shadow blur halves it (spec.md §4.6).
type Kind int

const (
	Filter Kind = iota
	Shadow
)

// laneWidth is the column batch size the vertical pass processes together,
// chosen once per process from the widest SIMD register the host CPU
// reports (spec.md §4.6: "AVX-512 > AVX2 > baseline"). Go has no portable
// SIMD intrinsics outside assembly, so this doesn't emit vector
// instructions directly; it batches columns into cache-line-sized groups
// the compiler's own auto-vectorizer has the best chance of lowering to
// SIMD loads/stores, matching the width the original per-pass structure
// assumes.
var laneWidth = sync.OnceValue(func() int {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX512F):
		return 16
	case cpuid.CPU.Supports(cpuid.AVX2):
		return 8
	default:
		return 4
	}
})

// Sigma computes σ for a blur radius and kind.
func Sigma(radius float64, kind Kind) float64 {
	if kind == Shadow {
		return radius / 2
	}
	return radius
}

// boxRadius computes the three-pass box-blur radius approximating a
// Gaussian of the given sigma (spec.md §4.6's formula, monotone and >= 1).
func boxRadius(sigma float64) int {
	r := math.Round(((math.Sqrt(4*sigma*sigma+1)-1)/2)*0.5)*2 + 1
	if r < 1 {
		r = 1
	}
	return int(r)
}

// Apply blurs an RGBA image in place with a three-pass box-blur
// approximating a Gaussian of the given radius/kind. Sigma <= 0.5 is a
// no-op per spec.md §4.6.
func Apply(img *Buffer, radius float64, kind Kind) {
	sigma := Sigma(radius, kind)
	if sigma <= 0.5 {
		return
	}
	r := boxRadius(sigma)
	for pass := 0; pass < 3; pass++ {
		premultiply(img)
		boxBlurHorizontal(img, r)
		boxBlurVertical(img, r, laneWidth())
		unpremultiply(img)
	}
}

// Buffer is the premultiplication-aware pixel buffer Apply blurs; it
// mirrors compositor.Canvas's layout (straight RGBA, row-major) so paint
// code can blur a Canvas's backing slice directly via AsImage.
type Buffer struct {
	pix           []geom.Color
	width, height int
}

// AsImage adapts a straight-RGBA pixel slice for Apply.
func AsImage(pix []geom.Color, width, height int) *Buffer {
	return &Buffer{pix: pix, width: width, height: height}
}

func premultiply(img *Buffer) {
	for i, c := range img.pix {
		r, g, b, a := c.Premultiply()
		img.pix[i] = geom.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
	}
}

func unpremultiply(img *Buffer) {
	for i, c := range img.pix {
		if c.A == 0 {
			img.pix[i] = geom.Transparent
			continue
		}
		scale := func(ch uint8) uint8 {
			v := uint32(ch) * 255 / uint32(c.A)
			if v > 255 {
				v = 255
			}
			return uint8(v)
		}
		img.pix[i] = geom.Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
	}
}

// boxBlurHorizontal runs a sliding-window box blur along each row, one
// RGBA pixel (4 channel lanes) per running-sum step (spec.md §4.6's
// "4-lane SIMD, one RGBA pixel per vector").
func boxBlurHorizontal(img *Buffer, r int) {
	window := 2*r + 1
	row := make([]geom.Color, img.width)
	for y := 0; y < img.height; y++ {
		copy(row, img.pix[y*img.width:(y+1)*img.width])
		var sumR, sumG, sumB, sumA int
		at := func(x int) geom.Color {
			if x < 0 {
				x = 0
			}
			if x >= img.width {
				x = img.width - 1
			}
			return row[x]
		}
		for k := -r; k <= r; k++ {
			c := at(k)
			sumR += int(c.R)
			sumG += int(c.G)
			sumB += int(c.B)
			sumA += int(c.A)
		}
		for x := 0; x < img.width; x++ {
			img.pix[y*img.width+x] = geom.Color{
				R: uint8(sumR / window), G: uint8(sumG / window),
				B: uint8(sumB / window), A: uint8(sumA / window),
			}
			leave := at(x - r)
			enter := at(x + r + 1)
			sumR += int(enter.R) - int(leave.R)
			sumG += int(enter.G) - int(leave.G)
			sumB += int(enter.B) - int(leave.B)
			sumA += int(enter.A) - int(leave.A)
		}
	}
}

// boxBlurVertical runs the same sliding-window box blur along columns,
// batched `lanes` columns at a time (spec.md §4.6's lane-width dispatch);
// any remainder columns run one at a time, equivalent to a 4-lane batch
// of size 1.
func boxBlurVertical(img *Buffer, r, lanes int) {
	window := 2*r + 1
	col := make([]geom.Color, img.height)
	for x0 := 0; x0 < img.width; x0 += lanes {
		x1 := x0 + lanes
		if x1 > img.width {
			x1 = img.width
		}
		for x := x0; x < x1; x++ {
			for y := 0; y < img.height; y++ {
				col[y] = img.pix[y*img.width+x]
			}
			at := func(y int) geom.Color {
				if y < 0 {
					y = 0
				}
				if y >= img.height {
					y = img.height - 1
				}
				return col[y]
			}
			var sumR, sumG, sumB, sumA int
			for k := -r; k <= r; k++ {
				c := at(k)
				sumR += int(c.R)
				sumG += int(c.G)
				sumB += int(c.B)
				sumA += int(c.A)
			}
			for y := 0; y < img.height; y++ {
				img.pix[y*img.width+x] = geom.Color{
					R: uint8(sumR / window), G: uint8(sumG / window),
					B: uint8(sumB / window), A: uint8(sumA / window),
				}
				leave := at(y - r)
				enter := at(y + r + 1)
				sumR += int(enter.R) - int(leave.R)
				sumG += int(enter.G) - int(leave.G)
				sumB += int(enter.B) - int(leave.B)
				sumA += int(enter.A) - int(leave.A)
			}
		}
	}
}
