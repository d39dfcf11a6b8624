// Package border is BorderPaint and OutlinePaint: draws the border ring as
// an even-odd outer/inner rounded-rect mask, and the outline box drawn
// outside the border box (spec.md §4.8).
package border

import (
	"rasterdom/common"
	"rasterdom/geom"
	"rasterdom/style"
)

// CornerRadii is the four resolved (rx, ry) corner radii, already clamped
// against the border box per spec.md §4.8 ("resolve radius per corner
// against min(w,h), clamped to reference/2").
type CornerRadii struct {
	TL, TR, BR, BL geom.Size
}

// Properties is the resolved per-node border description, spec.md §4.8's
// BorderProperties.
type Properties struct {
	Width          geom.EdgeSizes
	Color          EdgeColors
	Style          EdgeStyles
	Radius         CornerRadii
	ImageRendering common.ImageRendering
}

// EdgeColors/EdgeStyles are the per-edge resolved border color/style,
// mirroring geom.EdgeSizes' top/right/bottom/left shape.
type EdgeColors struct{ Top, Right, Bottom, Left geom.Color }
type EdgeStyles struct {
	Top, Right, Bottom, Left style.BorderStyleKind
}

// IsVisible reports whether any edge has a non-zero width — spec.md
// §4.8's "draws are skipped if all four widths are zero".
func (p Properties) IsVisible() bool {
	return p.Width.Top > 0 || p.Width.Right > 0 || p.Width.Bottom > 0 || p.Width.Left > 0
}

// ResolveRadii clamps a node's four raw border-radius corner pairs
// against the border box per spec.md §4.8: each axis is clamped to at
// most half the box's corresponding dimension, which alone keeps adjacent
// corners from overlapping; no further scaling is applied.
func ResolveRadii(box geom.Rect, tl, tr, br, bl geom.Size) CornerRadii {
	half := func(s geom.Size) geom.Size {
		maxW, maxH := box.Width/2, box.Height/2
		if s.Width > maxW {
			s.Width = maxW
		}
		if s.Height > maxH {
			s.Height = maxH
		}
		return s
	}
	return CornerRadii{TL: half(tl), TR: half(tr), BR: half(br), BL: half(bl)}
}
