// Package mask is the MaskEngine: it turns path commands into an
// anti-aliased 8-bit alpha coverage buffer (spec.md §4.4), using
// github.com/srwiley/rasterx's scanline filler the same way
// utils/images/svg.go uses it to rasterize whole SVG documents.
package mask

import (
	"math"

	"rasterdom/geom"
)

// CommandKind distinguishes the four path-command verbs spec.md §4.4's
// append_mask_commands sequence is built from.
type CommandKind int

const (
	MoveTo CommandKind = iota
	LineTo
	CurveTo
	ClosePath
)

// Command is one path-construction step. CurveTo uses CP1/CP2/End as the
// cubic Bézier's two control points and endpoint; the other kinds only use
// End (ClosePath ignores even that).
type Command struct {
	Kind     CommandKind
	End      geom.Point
	CP1, CP2 geom.Point
}

// Path is an ordered list of path commands, in local (untransformed)
// coordinates.
type Path []Command

// kappa is the standard cubic-Bézier approximation constant for a quarter
// circle arc, spec.md §4.4: κ = 4(√2−1)/3.
const kappa = 4 * (math.Sqrt2 - 1) / 3

// RoundedRect synthesizes the path of a rectangle with up to four distinct
// corner radii, per spec.md §4.4's append_mask_commands: corners are
// cubic-Bézier arcs with the κ constant, walked clockwise starting at the
// top-left corner; a corner whose radius is zero degenerates to a plain
// edge instead of an arc, and a zero width/height collapses the whole
// rectangle to an empty path.
func RoundedRect(rect geom.Rect, tl, tr, br, bl geom.Size) Path {
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil
	}
	// Clamp radii so adjacent corners never overlap.
	tl, tr, br, bl = clampCornerRadii(rect, tl, tr, br, bl)

	x0, y0 := float64(rect.X), float64(rect.Y)
	x1, y1 := float64(rect.Right()), float64(rect.Bottom())

	pt := func(x, y float64) geom.Point { return geom.Point{X: float32(x), Y: float32(y)} }

	var p Path
	// Start at the end of the top-left arc (or the top-left corner itself
	// if that corner has no radius).
	p = append(p, Command{Kind: MoveTo, End: pt(x0+float64(tl.Width), y0)})

	// Top edge + top-right corner.
	p = append(p, Command{Kind: LineTo, End: pt(x1-float64(tr.Width), y0)})
	p = appendCornerArc(p, pt(x1-float64(tr.Width), y0), pt(x1, y0+float64(tr.Height)), float64(tr.Width), float64(tr.Height), cornerTopRight)

	// Right edge + bottom-right corner.
	p = append(p, Command{Kind: LineTo, End: pt(x1, y1-float64(br.Height))})
	p = appendCornerArc(p, pt(x1, y1-float64(br.Height)), pt(x1-float64(br.Width), y1), float64(br.Width), float64(br.Height), cornerBottomRight)

	// Bottom edge + bottom-left corner.
	p = append(p, Command{Kind: LineTo, End: pt(x0+float64(bl.Width), y1)})
	p = appendCornerArc(p, pt(x0+float64(bl.Width), y1), pt(x0, y1-float64(bl.Height)), float64(bl.Width), float64(bl.Height), cornerBottomLeft)

	// Left edge + top-left corner.
	p = append(p, Command{Kind: LineTo, End: pt(x0, y0+float64(tl.Height))})
	p = appendCornerArc(p, pt(x0, y0+float64(tl.Height)), pt(x0+float64(tl.Width), y0), float64(tl.Width), float64(tl.Height), cornerTopLeft)

	p = append(p, Command{Kind: ClosePath})
	return p
}

type cornerPos int

const (
	cornerTopLeft cornerPos = iota
	cornerTopRight
	cornerBottomRight
	cornerBottomLeft
)

// appendCornerArc emits a cubic-Bézier quarter-circle arc from `from` to
// `to` for the given corner, or nothing (a plain line, already emitted by
// the caller's LineTo) when either radius is zero.
func appendCornerArc(p Path, from, to geom.Point, rx, ry float64, corner cornerPos) Path {
	if rx <= 0 || ry <= 0 {
		return p
	}
	ox, oy := rx*kappa, ry*kappa
	var cp1, cp2 geom.Point
	switch corner {
	case cornerTopRight:
		cp1 = geom.Point{X: from.X + float32(ox), Y: from.Y}
		cp2 = geom.Point{X: to.X, Y: to.Y - float32(oy)}
	case cornerBottomRight:
		cp1 = geom.Point{X: from.X, Y: from.Y + float32(oy)}
		cp2 = geom.Point{X: to.X + float32(ox), Y: to.Y}
	case cornerBottomLeft:
		cp1 = geom.Point{X: from.X - float32(ox), Y: from.Y}
		cp2 = geom.Point{X: to.X, Y: to.Y + float32(oy)}
	case cornerTopLeft:
		cp1 = geom.Point{X: from.X, Y: from.Y - float32(oy)}
		cp2 = geom.Point{X: to.X - float32(ox), Y: to.Y}
	}
	return append(p, Command{Kind: CurveTo, CP1: cp1, CP2: cp2, End: to})
}

// clampCornerRadii scales all four radii down proportionally (CSS
// border-radius overlap-resolution algorithm) so that no two adjacent
// corners overlap along a shared edge.
func clampCornerRadii(rect geom.Rect, tl, tr, br, bl geom.Size) (geom.Size, geom.Size, geom.Size, geom.Size) {
	scale := float32(1)
	clampAxis := func(a, b, limit float32) {
		if a+b > limit && a+b > 0 {
			if s := limit / (a + b); s < scale {
				scale = s
			}
		}
	}
	clampAxis(tl.Width, tr.Width, rect.Width)
	clampAxis(bl.Width, br.Width, rect.Width)
	clampAxis(tl.Height, bl.Height, rect.Height)
	clampAxis(tr.Height, br.Height, rect.Height)
	if scale >= 1 {
		return tl, tr, br, bl
	}
	shrink := func(s geom.Size) geom.Size { return geom.Size{Width: s.Width * scale, Height: s.Height * scale} }
	return shrink(tl), shrink(tr), shrink(br), shrink(bl)
}

// Polygon synthesizes a straight-edged closed path from a point list.
func Polygon(points []geom.Point) Path {
	if len(points) < 3 {
		return nil
	}
	p := make(Path, 0, len(points)+1)
	p = append(p, Command{Kind: MoveTo, End: points[0]})
	for _, pt := range points[1:] {
		p = append(p, Command{Kind: LineTo, End: pt})
	}
	p = append(p, Command{Kind: ClosePath})
	return p
}

// Ellipse synthesizes a closed elliptical path from four quarter-circle
// Bézier arcs, the same κ construction RoundedRect uses for a corner.
func Ellipse(center geom.Point, rx, ry float32) Path {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	ox, oy := float64(rx)*kappa, float64(ry)*kappa
	cx, cy := center.X, center.Y
	top := geom.Point{X: cx, Y: cy - ry}
	right := geom.Point{X: cx + rx, Y: cy}
	bottom := geom.Point{X: cx, Y: cy + ry}
	left := geom.Point{X: cx - rx, Y: cy}
	return Path{
		{Kind: MoveTo, End: top},
		{Kind: CurveTo, CP1: geom.Point{X: top.X + float32(ox), Y: top.Y}, CP2: geom.Point{X: right.X, Y: right.Y - float32(oy)}, End: right},
		{Kind: CurveTo, CP1: geom.Point{X: right.X, Y: right.Y + float32(oy)}, CP2: geom.Point{X: bottom.X + float32(ox), Y: bottom.Y}, End: bottom},
		{Kind: CurveTo, CP1: geom.Point{X: bottom.X - float32(ox), Y: bottom.Y}, CP2: geom.Point{X: left.X, Y: left.Y + float32(oy)}, End: left},
		{Kind: CurveTo, CP1: geom.Point{X: left.X, Y: left.Y - float32(oy)}, CP2: geom.Point{X: top.X - float32(ox), Y: top.Y}, End: top},
		{Kind: ClosePath},
	}
}
