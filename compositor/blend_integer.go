package compositor

import (
	"rasterdom/geom"
	"rasterdom/style"
)

// blendIntegerFastPath implements the Multiply/Screen/Darken/Lighten/
// Difference/Exclusion per-channel fixed-point paths spec.md §4.5 calls
// out as integer fast paths, then composites the blended RGB over bottom
// with compositeOver.
func blendIntegerFastPath(bottom, top geom.Color, mode style.BlendMode) geom.Color {
	blend := func(b, t uint8) uint8 {
		bi, ti := uint32(b), uint32(t)
		switch mode {
		case style.BlendModeMultiply:
			return uint8(bi * ti / 255)
		case style.BlendModeScreen:
			return uint8(255 - (255-bi)*(255-ti)/255)
		case style.BlendModeDarken:
			if bi < ti {
				return uint8(bi)
			}
			return uint8(ti)
		case style.BlendModeLighten:
			if bi > ti {
				return uint8(bi)
			}
			return uint8(ti)
		case style.BlendModeDifference:
			if bi > ti {
				return uint8(bi - ti)
			}
			return uint8(ti - bi)
		case style.BlendModeExclusion:
			return uint8(bi + ti - 2*bi*ti/255)
		}
		return uint8(ti)
	}
	blended := geom.Color{R: blend(bottom.R, top.R), G: blend(bottom.G, top.G), B: blend(bottom.B, top.B), A: 255}
	return compositeOver(bottom, top, blended)
}

// compositeOver applies spec.md §4.5's shared compositing formula once a
// mode has produced its fully-opaque blended RGB:
// result = (1-top_a)*bottom + (1-bottom_a)*top*top_a + top_a*bottom_a*blended,
// normalized by the result alpha.
func compositeOver(bottom, top, blended geom.Color) geom.Color {
	ta, ba := float64(top.A)/255, float64(bottom.A)/255
	resultA := ta + ba - ta*ba
	if resultA <= 0 {
		return geom.Transparent
	}
	mix := func(b, t, bl uint8) uint8 {
		v := (1-ta)*float64(b) + (1-ba)*float64(t)*ta + ta*ba*float64(bl)
		v /= resultA
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(v + 0.5)
	}
	return geom.Color{
		R: mix(bottom.R, top.R, blended.R),
		G: mix(bottom.G, top.G, blended.G),
		B: mix(bottom.B, top.B, blended.B),
		A: uint8(resultA*255 + 0.5),
	}
}
