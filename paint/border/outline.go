package border

import (
	"image"

	"rasterdom/compositor"
	"rasterdom/geom"
	"rasterdom/mask"
	"rasterdom/style"
)

// DrawOutline paints an outline ring outside borderBox, offset by
// outlineOffset+outlineWidth and never clipped by the node's overflow
// (spec.md §4.8): like Draw's ring, but both the outer and inner paths
// are pushed outward from the border box instead of inset from it.
func DrawOutline(canvas *compositor.Canvas, borderBox geom.Rect, width float32, offset float32, col geom.Color, radii CornerRadii, transform geom.Affine) {
	if width <= 0 || col.Invisible() {
		return
	}
	outset := offset + width
	outer := expand(borderBox, outset)
	inner := expand(borderBox, offset)
	grow := func(s geom.Size, by float32) geom.Size {
		return geom.Size{Width: s.Width + by, Height: s.Height + by}
	}
	outerRadii := CornerRadii{TL: grow(radii.TL, outset), TR: grow(radii.TR, outset), BR: grow(radii.BR, outset), BL: grow(radii.BL, outset)}
	innerRadii := CornerRadii{TL: grow(radii.TL, offset), TR: grow(radii.TR, offset), BR: grow(radii.BR, offset), BL: grow(radii.BL, offset)}

	bounds := image.Rect(0, 0, canvas.Width, canvas.Height)
	ring := evenOddRing(outer, outerRadii, inner, innerRadii, bounds, transform)
	defer mask.Release(ring)
	fillMaskColor(canvas, ring, col, style.BlendModeNormal)
}

func expand(r geom.Rect, by float32) geom.Rect {
	return geom.Rect{X: r.X - by, Y: r.Y - by, Width: r.Width + 2*by, Height: r.Height + 2*by}
}
