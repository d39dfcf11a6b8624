// Package compositor is the pixel-blend stage: blend(bottom, top, mode),
// overlay-image-with-mask sampling, and fill-color-with-radius box fills
// (spec.md §4.5).
package compositor

import (
	"rasterdom/geom"
	"rasterdom/style"
)

// Blend composites top over bottom under the given blend mode, implementing
// spec.md §4.5's blend(bottom, top, mode) -> new_bottom contract.
func Blend(bottom, top geom.Color, mode style.BlendMode) geom.Color {
	if top.A == 0 {
		return bottom
	}
	if bottom.A == 0 {
		return top
	}
	switch mode {
	case style.BlendModeNormal:
		return blendNormal(bottom, top)
	case style.BlendModeMultiply, style.BlendModeScreen, style.BlendModeDarken,
		style.BlendModeLighten, style.BlendModeDifference, style.BlendModeExclusion:
		return blendIntegerFastPath(bottom, top, mode)
	case style.BlendModePlusLighter:
		return blendPlusLighter(bottom, top)
	case style.BlendModePlusDarker:
		return blendPlusDarker(bottom, top)
	default:
		// Overlay, ColorDodge, ColorBurn, HardLight, SoftLight, Hue,
		// Saturation, Color, Luminosity: normalized-float composite
		// (spec.md §4.5).
		return blendFloatComposite(bottom, top, mode)
	}
}

// blendNormal is the fixed-point premultiplied-over case spec.md §4.5
// singles out for its integer fast path.
func blendNormal(bottom, top geom.Color) geom.Color {
	if top.A == 255 && bottom.A == 255 {
		return top
	}
	ta, ba := uint32(top.A), uint32(bottom.A)
	resultA := ta + ba - (ba*ta)/255
	if resultA == 0 {
		return geom.Transparent
	}
	blendCh := func(b, t uint8) uint8 {
		tPremul := uint32(t) * ta / 255
		bPremul := uint32(b) * ba / 255
		out := tPremul + bPremul*(255-ta)/255
		return clampByte(out * 255 / resultA)
	}
	return geom.Color{
		R: blendCh(bottom.R, top.R),
		G: blendCh(bottom.G, top.G),
		B: blendCh(bottom.B, top.B),
		A: clampByte(resultA),
	}
}

// blendPlusLighter/blendPlusDarker are the compositor-only fixed-point
// fast paths spec.md §4.5 groups with Multiply/Screen/Darken/Lighten/
// Difference/Exclusion.
func blendPlusLighter(bottom, top geom.Color) geom.Color {
	add := func(b, t uint8) uint8 {
		v := uint32(b) + uint32(t)
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return geom.Color{R: add(bottom.R, top.R), G: add(bottom.G, top.G), B: add(bottom.B, top.B), A: add(bottom.A, top.A)}
}

func blendPlusDarker(bottom, top geom.Color) geom.Color {
	sub := func(b, t uint8) uint8 {
		v := int(b) + int(t) - 255
		if v < 0 {
			v = 0
		}
		return uint8(v)
	}
	return geom.Color{R: sub(bottom.R, top.R), G: sub(bottom.G, top.G), B: sub(bottom.B, top.B), A: clampByte(uint32(bottom.A) + uint32(top.A) - (uint32(bottom.A)*uint32(top.A))/255)}
}

func clampByte(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
