package text

import (
	"image"
	"math"
	"sort"

	"rasterdom/compositor"
	"rasterdom/geom"
	"rasterdom/mask"
	"rasterdom/style"
)

// Heuristic decoration offsets relative to the baseline, since the abstract
// GlyphSource exposes no font-metrics table (ascent/descent/x-height)
// beyond glyph outlines/bitmaps themselves.
const (
	underlineOffsetEm  = 0.15
	overlineOffsetEm   = -0.9
	strikeOffsetEm     = -0.3
	skipInkAlphaThresh = 16
)

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type skipRange struct{ x0, x1 float64 }

// collectSkipRanges implements spec.md §4.10's underline skip-ink: for each
// glyph intersecting [stripY0, stripY1] (both in the line's own local
// coordinates, matching Line.X0/X1/Baseline), finds the run of columns with
// any alpha above the 16/255 threshold, pads it by clamp(size*0.6,1,3), and
// returns the merged, sorted list of ranges the underline must not draw
// through. Runs entirely in local space, independent of the node's
// transform, the same simplification paint/background's tiled fills make.
func collectSkipRanges(src GlyphSource, glyphs []PositionedGlyph, sizePx, stripY0, stripY1 float64) []skipRange {
	pad := clampF(sizePx*0.6, 1, 3)
	var ranges []skipRange
	for _, g := range glyphs {
		path, ok := src.Outline(g.GID, sizePx)
		if !ok || len(path) == 0 {
			continue
		}
		minX, minY, maxX, maxY, hasBounds := pathBounds(path)
		if !hasBounds {
			continue
		}
		gx := float64(g.Pen.X)
		gy := float64(g.Pen.Y)
		lo, hi := math.Max(minY+gy, stripY0), math.Min(maxY+gy, stripY1)
		if lo >= hi {
			continue
		}
		bounds := image.Rect(int(math.Floor(gx+minX)), int(math.Floor(stripY0)), int(math.Ceil(gx+maxX))+1, int(math.Ceil(stripY1))+1)
		if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
			continue
		}
		transform := geom.Translate(gx, gy)
		buf := mask.Render(path, bounds, &transform, style.FillRuleNonzero)
		x0, x1, any := columnsAboveThreshold(buf)
		mask.Release(buf)
		if !any {
			continue
		}
		ranges = append(ranges, skipRange{x0: float64(x0) - pad, x1: float64(x1) + pad})
	}
	return mergeSkipRanges(ranges)
}

func pathBounds(p mask.Path) (minX, minY, maxX, maxY float64, ok bool) {
	first := true
	consider := func(pt geom.Point) {
		x, y := float64(pt.X), float64(pt.Y)
		if first {
			minX, maxX, minY, maxY = x, x, y, y
			first = false
			return
		}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	for _, cmd := range p {
		switch cmd.Kind {
		case mask.MoveTo, mask.LineTo:
			consider(cmd.End)
		case mask.CurveTo:
			consider(cmd.CP1)
			consider(cmd.CP2)
			consider(cmd.End)
		}
	}
	return minX, minY, maxX, maxY, !first
}

func columnsAboveThreshold(buf mask.Buffer) (x0, x1 int, any bool) {
	b := buf.Placement
	for x := b.Min.X; x < b.Max.X; x++ {
		hit := false
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if buf.Alpha.AlphaAt(x, y).A > skipInkAlphaThresh {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		if !any {
			x0, x1, any = x, x, true
		} else {
			x1 = x
		}
	}
	return x0, x1, any
}

func mergeSkipRanges(ranges []skipRange) []skipRange {
	if len(ranges) == 0 {
		return nil
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].x0 < ranges[j].x0 })
	out := ranges[:1]
	for _, r := range ranges[1:] {
		last := &out[len(out)-1]
		if r.x0 <= last.x1 {
			if r.x1 > last.x1 {
				last.x1 = r.x1
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// segmentsBetween returns the draw segments of [x0, x1] left after removing
// every skip range, the "emit the underline as segments between skip
// ranges" half of spec.md §4.10.
func segmentsBetween(x0, x1 float64, skips []skipRange) [][2]float64 {
	var out [][2]float64
	cursor := x0
	for _, s := range skips {
		if s.x1 <= cursor || s.x0 >= x1 {
			continue
		}
		if s.x0 > cursor {
			out = append(out, [2]float64{cursor, math.Min(s.x0, x1)})
		}
		if s.x1 > cursor {
			cursor = s.x1
		}
	}
	if cursor < x1 {
		out = append(out, [2]float64{cursor, x1})
	}
	return out
}

// drawLineSegments fills a thin horizontal stroke through each segment,
// shared by underline/overline/line-through.
func drawLineSegments(canvas *compositor.Canvas, segments [][2]float64, y, thickness float64, color geom.Color, transform geom.Affine) {
	if thickness <= 0 || color.Invisible() {
		return
	}
	bounds := image.Rect(0, 0, canvas.Width, canvas.Height)
	for _, seg := range segments {
		if seg[1]-seg[0] <= 0 {
			continue
		}
		rect := geom.Rect{X: float32(seg[0]), Y: float32(y), Width: float32(seg[1] - seg[0]), Height: float32(thickness)}
		path := mask.RoundedRect(rect, geom.Size{}, geom.Size{}, geom.Size{}, geom.Size{})
		buf := mask.Render(path, bounds, &transform, style.FillRuleNonzero)
		fillMask(canvas, buf, color, nil, style.BlendModeNormal)
		mask.Release(buf)
	}
}

// DrawUnderline paints the underline decoration, optionally skipping ink
// under glyph descenders (spec.md §4.10's skip-ink algorithm).
func DrawUnderline(canvas *compositor.Canvas, line Line, origin geom.Point, src GlyphSource, sizePx, thickness float64, color geom.Color, skipInk bool, transform geom.Affine) {
	y := line.Baseline + sizePx*underlineOffsetEm
	segments := [][2]float64{{line.X0, line.X1}}
	if skipInk {
		skips := collectSkipRanges(src, line.Glyphs, sizePx, y, y+thickness)
		segments = segmentsBetween(line.X0, line.X1, skips)
	}
	drawLineSegments(canvas, translateSegments(segments, origin.X), y+origin.Y, thickness, color, transform)
}

// DrawOverline paints the overline decoration (no skip-ink: overlines sit
// above the glyphs' normal ink, spec.md §4.10 only calls out underline for
// skip-ink treatment).
func DrawOverline(canvas *compositor.Canvas, line Line, origin geom.Point, sizePx, thickness float64, color geom.Color, transform geom.Affine) {
	y := line.Baseline + sizePx*overlineOffsetEm
	segments := [][2]float64{{line.X0 + origin.X, line.X1 + origin.X}}
	drawLineSegments(canvas, segments, y+origin.Y, thickness, color, transform)
}

// DrawLineThrough paints the strikethrough decoration, drawn last in the
// paint order (spec.md §4.10 draw stage e).
func DrawLineThrough(canvas *compositor.Canvas, line Line, origin geom.Point, sizePx, thickness float64, color geom.Color, transform geom.Affine) {
	y := line.Baseline + sizePx*strikeOffsetEm
	segments := [][2]float64{{line.X0 + origin.X, line.X1 + origin.X}}
	drawLineSegments(canvas, segments, y+origin.Y, thickness, color, transform)
}

func translateSegments(segments [][2]float64, by float64) [][2]float64 {
	out := make([][2]float64, len(segments))
	for i, s := range segments {
		out[i] = [2]float64{s[0] + by, s[1] + by}
	}
	return out
}
