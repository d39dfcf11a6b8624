package compositor

import (
	"math"

	"rasterdom/geom"
	"rasterdom/style"
)

// blendFloatComposite implements spec.md §4.5's normalized-float path,
// shared by the separable Overlay/ColorDodge/ColorBurn/HardLight/SoftLight
// modes and the non-separable Hue/Saturation/Color/Luminosity modes: a
// per-channel (or whole-color, for the non-separable group) blend
// function produces an opaque RGB, then
//
//	result = (1-top_a)*bottom + (1-bottom_a)*top*top_a + top_a*bottom_a*blended
//
// normalized by the result alpha.
func blendFloatComposite(bottom, top geom.Color, mode style.BlendMode) geom.Color {
	ta, ba := float64(top.A)/255, float64(bottom.A)/255
	br, bg, bb := float64(bottom.R)/255, float64(bottom.G)/255, float64(bottom.B)/255
	tr, tg, tb := float64(top.R)/255, float64(top.G)/255, float64(top.B)/255

	var blR, blG, blB float64
	switch mode {
	case style.BlendModeHue, style.BlendModeSaturation, style.BlendModeColor, style.BlendModeLuminosity:
		blR, blG, blB = blendNonSeparable(mode, br, bg, bb, tr, tg, tb)
	default:
		sep := separableFn(mode)
		blR, blG, blB = sep(br, tr), sep(bg, tg), sep(bb, tb)
	}

	resultA := ta + ba - ta*ba
	mix := func(b, t, bl float64) uint8 {
		v := (1-ta)*b + (1-ba)*t*ta + ta*ba*bl
		if resultA > 0 {
			v /= resultA
		}
		return floatToByte(v)
	}
	if resultA <= 0 {
		return geom.Transparent
	}
	return geom.Color{
		R: mix(br, tr, blR),
		G: mix(bg, tg, blG),
		B: mix(bb, tb, blB),
		A: floatToByte(resultA),
	}
}

func floatToByte(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}

// separableFn returns the per-channel [0,1] blend function for the
// separable float-path modes.
func separableFn(mode style.BlendMode) func(cb, cs float64) float64 {
	switch mode {
	case style.BlendModeOverlay:
		return func(cb, cs float64) float64 { return hardLight(cs, cb) }
	case style.BlendModeHardLight:
		return func(cb, cs float64) float64 { return hardLight(cb, cs) }
	case style.BlendModeColorDodge:
		return colorDodge
	case style.BlendModeColorBurn:
		return colorBurn
	case style.BlendModeSoftLight:
		return softLight
	default:
		return func(cb, cs float64) float64 { return cs }
	}
}

func hardLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return 2 * cb * cs
	}
	return 1 - 2*(1-cb)*(1-cs)
}

func colorDodge(cb, cs float64) float64 {
	if cb == 0 {
		return 0
	}
	if cs == 1 {
		return 1
	}
	return math.Min(1, cb/(1-cs))
}

func colorBurn(cb, cs float64) float64 {
	if cb == 1 {
		return 1
	}
	if cs == 0 {
		return 0
	}
	return 1 - math.Min(1, (1-cb)/cs)
}

func softLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}

// blendNonSeparable implements the SVG 1.2 Hue/Saturation/Color/Luminosity
// helpers spec.md §4.5 names explicitly: lum, sat, set_lum, set_sat,
// clip_color.
func blendNonSeparable(mode style.BlendMode, br, bg, bb, tr, tg, tb float64) (float64, float64, float64) {
	switch mode {
	case style.BlendModeHue:
		r, g, b := setSat(tr, tg, tb, sat(br, bg, bb))
		return setLum(r, g, b, lum(br, bg, bb))
	case style.BlendModeSaturation:
		r, g, b := setSat(br, bg, bb, sat(tr, tg, tb))
		return setLum(r, g, b, lum(br, bg, bb))
	case style.BlendModeColor:
		return setLum(tr, tg, tb, lum(br, bg, bb))
	case style.BlendModeLuminosity:
		return setLum(br, bg, bb, lum(tr, tg, tb))
	}
	return br, bg, bb
}

func lum(r, g, b float64) float64 { return 0.3*r + 0.59*g + 0.11*b }

func clipColor(r, g, b float64) (float64, float64, float64) {
	l := lum(r, g, b)
	n := math.Min(r, math.Min(g, b))
	x := math.Max(r, math.Max(g, b))
	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

func sat(r, g, b float64) float64 {
	return math.Max(r, math.Max(g, b)) - math.Min(r, math.Min(g, b))
}

func setSat(r, g, b, s float64) (float64, float64, float64) {
	ch := []*float64{&r, &g, &b}
	// Sort pointers to channels by value ascending: min, mid, max.
	if *ch[0] > *ch[1] {
		ch[0], ch[1] = ch[1], ch[0]
	}
	if *ch[1] > *ch[2] {
		ch[1], ch[2] = ch[2], ch[1]
	}
	if *ch[0] > *ch[1] {
		ch[0], ch[1] = ch[1], ch[0]
	}
	min, mid, max := ch[0], ch[1], ch[2]
	if *max > *min {
		*mid = (*mid - *min) * s / (*max - *min)
		*max = s
	} else {
		*mid, *max = 0, 0
	}
	*min = 0
	return r, g, b
}
