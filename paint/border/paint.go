package border

import (
	"image"

	"rasterdom/compositor"
	"rasterdom/geom"
	"rasterdom/mask"
	"rasterdom/style"
)

// Draw paints the border ring for borderBox per spec.md §4.8: the outer
// rounded-rect path plus the inset inner rounded rect (radii shrunk by the
// averaged border width, placed at (avg, avg)), rendered as an even-odd
// mask. Edges with distinct colors are mitered at 45 degrees from each
// corner, the same corner-miter convention most border renderers use;
// edges sharing one color skip the extra masking and draw as a single
// fill. No-op if every edge width is zero.
func Draw(canvas *compositor.Canvas, borderBox geom.Rect, props Properties, transform geom.Affine) {
	if !props.IsVisible() {
		return
	}
	avg := (props.Width.Top + props.Width.Right + props.Width.Bottom + props.Width.Left) / 4
	inner := borderBox.Inset(geom.EdgeSizes{Top: avg, Right: avg, Bottom: avg, Left: avg})
	shrink := func(s geom.Size) geom.Size {
		w, h := s.Width-avg, s.Height-avg
		if w < 0 {
			w = 0
		}
		if h < 0 {
			h = 0
		}
		return geom.Size{Width: w, Height: h}
	}
	innerRadii := CornerRadii{TL: shrink(props.Radius.TL), TR: shrink(props.Radius.TR), BR: shrink(props.Radius.BR), BL: shrink(props.Radius.BL)}

	bounds := image.Rect(0, 0, canvas.Width, canvas.Height)
	ring := evenOddRing(borderBox, props.Radius, inner, innerRadii, bounds, transform)
	defer mask.Release(ring)

	if uniform(props.Color) {
		fillMaskColor(canvas, ring, props.Color.Top, style.BlendModeNormal)
		return
	}
	for _, edge := range edgeQuads(borderBox, props.Width, props.Color) {
		region := mask.Render(mask.Polygon(edge.quad), bounds, &transform, style.FillRuleNonzero)
		intersectAndFill(canvas, ring, region, edge.color)
		mask.Release(region)
	}
}

func uniform(c EdgeColors) bool {
	return c.Top == c.Right && c.Right == c.Bottom && c.Bottom == c.Left
}

// evenOddRing rasterizes outer-minus-inner as a single even-odd mask: both
// rounded rects are built the same way, and under the even-odd rule their
// shared interior is crossed twice and drops out, leaving only the ring.
func evenOddRing(outerBox geom.Rect, outerRadii CornerRadii, innerBox geom.Rect, innerRadii CornerRadii, bounds image.Rectangle, transform geom.Affine) mask.Buffer {
	outer := mask.RoundedRect(outerBox, outerRadii.TL, outerRadii.TR, outerRadii.BR, outerRadii.BL)
	inner := mask.RoundedRect(innerBox, innerRadii.TL, innerRadii.TR, innerRadii.BR, innerRadii.BL)
	path := append(append(mask.Path{}, outer...), inner...)
	return mask.Render(path, bounds, &transform, style.FillRuleEvenodd)
}

func fillMaskColor(canvas *compositor.Canvas, buf mask.Buffer, col geom.Color, mode style.BlendMode) {
	b := buf.Placement
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			ma := buf.Alpha.AlphaAt(x, y).A
			if ma == 0 {
				continue
			}
			c := col
			c.A = uint8(uint32(c.A) * uint32(ma) / 255)
			canvas.Pix[y*canvas.Width+x] = compositor.Blend(canvas.Pix[y*canvas.Width+x], c, mode)
		}
	}
}

func intersectAndFill(canvas *compositor.Canvas, ring, region mask.Buffer, col geom.Color) {
	b := ring.Placement
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			ra := ring.Alpha.AlphaAt(x, y).A
			qa := region.Alpha.AlphaAt(x, y).A
			if ra == 0 || qa == 0 {
				continue
			}
			c := col
			c.A = uint8(uint32(ra) * uint32(qa) / 255)
			canvas.Pix[y*canvas.Width+x] = compositor.Blend(canvas.Pix[y*canvas.Width+x], c, style.BlendModeNormal)
		}
	}
}

type edgeQuad struct {
	quad  []geom.Point
	color geom.Color
}

// edgeQuads returns the four 45-degree-mitered edge regions a
// distinct-colored border splits into, one polygon per edge, corner to
// corner.
func edgeQuads(box geom.Rect, w geom.EdgeSizes, c EdgeColors) []edgeQuad {
	x0, y0 := box.X, box.Y
	x1, y1 := box.Right(), box.Bottom()
	pt := func(x, y float32) geom.Point { return geom.Point{X: x, Y: y} }
	return []edgeQuad{
		{color: c.Top, quad: []geom.Point{pt(x0, y0), pt(x1, y0), pt(x1-w.Right, y0+w.Top), pt(x0+w.Left, y0+w.Top)}},
		{color: c.Right, quad: []geom.Point{pt(x1, y0), pt(x1, y1), pt(x1-w.Right, y1-w.Bottom), pt(x1-w.Right, y0+w.Top)}},
		{color: c.Bottom, quad: []geom.Point{pt(x1, y1), pt(x0, y1), pt(x0+w.Left, y1-w.Bottom), pt(x1-w.Right, y1-w.Bottom)}},
		{color: c.Left, quad: []geom.Point{pt(x0, y1), pt(x0, y0), pt(x0+w.Left, y0+w.Top), pt(x0+w.Left, y1-w.Bottom)}},
	}
}
