package text

import (
	"image"
	"testing"

	"rasterdom/compositor"
	"rasterdom/geom"
	"rasterdom/mask"
	"rasterdom/style"
)

// rectGlyphSource makes every glyph a solid rectangle spanning [yTop,
// yBottom] relative to the pen's own y (which callers place at the line's
// baseline, per PositionedGlyph's "y is 0 at the baseline" convention).
type rectGlyphSource struct {
	w, yTop, yBottom float64
	bitmap           image.Image
}

func (s rectGlyphSource) Outline(gid uint32, sizePx float64) (mask.Path, bool) {
	if s.bitmap != nil {
		return nil, false
	}
	return mask.RoundedRect(geom.Rect{X: 0, Y: float32(s.yTop), Width: float32(s.w), Height: float32(s.yBottom - s.yTop)}, geom.Size{}, geom.Size{}, geom.Size{}, geom.Size{}), true
}

func (s rectGlyphSource) Bitmap(gid uint32, sizePx float64) (image.Image, geom.Point, bool) {
	if s.bitmap == nil {
		return nil, geom.Point{}, false
	}
	return s.bitmap, geom.Point{}, true
}

func px(c *compositor.Canvas, x, y int) geom.Color {
	return c.Pix[y*c.Width+x]
}

const baseline = 20

func simpleLine(glyphs ...PositionedGlyph) Line {
	return Line{Glyphs: glyphs, Baseline: baseline, X0: 0, X1: 40}
}

func TestDrawUnderlinePaintsSolidWithoutSkipInk(t *testing.T) {
	c := compositor.NewCanvas(40, 40)
	src := rectGlyphSource{w: 8, yTop: -10, yBottom: 0}
	line := simpleLine(PositionedGlyph{Pen: geom.Point{X: 0, Y: baseline}})
	DrawUnderline(c, line, geom.Point{}, src, 16, 2, geom.Color{R: 255, A: 255}, false, geom.Identity)

	y := int(line.Baseline + 16*underlineOffsetEm)
	if px(c, 20, y).A == 0 {
		t.Error("underline should paint across the full line extent when skip-ink is off")
	}
}

func TestDrawUnderlineSkipsInkUnderDescender(t *testing.T) {
	c := compositor.NewCanvas(40, 40)
	src := rectGlyphSource{w: 8, yTop: -2, yBottom: 6}
	line := simpleLine(PositionedGlyph{Pen: geom.Point{X: 2, Y: baseline}})
	DrawUnderline(c, line, geom.Point{}, src, 16, 2, geom.Color{R: 255, A: 255}, true, geom.Identity)

	y := int(line.Baseline + 16*underlineOffsetEm)
	if px(c, 6, y).A != 0 {
		t.Error("underline should skip ink directly under the descending glyph")
	}
	if px(c, 35, y).A == 0 {
		t.Error("underline should still paint away from the glyph's ink")
	}
}

func TestCollectSkipRangesFindsDescenderInk(t *testing.T) {
	src := rectGlyphSource{w: 8, yTop: -2, yBottom: 6}
	glyphs := []PositionedGlyph{{Pen: geom.Point{X: 2, Y: baseline}}}
	y := baseline + 16*underlineOffsetEm
	ranges := collectSkipRanges(src, glyphs, 16, y, y+2)
	if len(ranges) == 0 {
		t.Fatal("expected a skip range under the descending glyph rectangle")
	}
	if ranges[0].x0 > 2 || ranges[0].x1 < 10 {
		t.Errorf("skip range %v should cover the glyph's [2,10] span plus padding", ranges[0])
	}
}

func TestMergeSkipRangesCoalescesOverlap(t *testing.T) {
	got := mergeSkipRanges([]skipRange{{0, 5}, {4, 9}, {20, 25}})
	if len(got) != 2 {
		t.Fatalf("expected 2 merged ranges, got %d", len(got))
	}
	if got[0].x0 != 0 || got[0].x1 != 9 {
		t.Errorf("first range should merge to [0,9], got %v", got[0])
	}
}

func TestSegmentsBetweenExcludesSkipRanges(t *testing.T) {
	segs := segmentsBetween(0, 40, []skipRange{{10, 20}})
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments around the skip range, got %d", len(segs))
	}
	if segs[0] != [2]float64{0, 10} || segs[1] != [2]float64{20, 40} {
		t.Errorf("unexpected segments: %v", segs)
	}
}

func TestDrawOverlineAndLineThroughPaintAboveAndThroughBaseline(t *testing.T) {
	c := compositor.NewCanvas(40, 40)
	line := simpleLine()
	DrawOverline(c, line, geom.Point{}, 16, 2, geom.Color{G: 255, A: 255}, geom.Identity)
	DrawLineThrough(c, line, geom.Point{}, 16, 2, geom.Color{B: 255, A: 255}, geom.Identity)

	overY := int(line.Baseline + 16*overlineOffsetEm)
	throughY := int(line.Baseline + 16*strikeOffsetEm)
	if px(c, 20, overY).A == 0 {
		t.Error("overline should paint above the baseline")
	}
	if px(c, 20, throughY).A == 0 {
		t.Error("line-through should paint through the baseline region")
	}
}

func TestPaintGlyphsDrawsOutlineFill(t *testing.T) {
	c := compositor.NewCanvas(40, 40)
	src := rectGlyphSource{w: 8, yTop: -10, yBottom: 0}
	line := simpleLine(PositionedGlyph{Pen: geom.Point{X: 4, Y: baseline}})
	sfs := style.SizedFontStyle{FontSizePx: 16, FillColor: geom.Color{R: 255, A: 255}}
	PaintGlyphs(c, line, geom.Point{}, src, sfs, 0, geom.Identity, nil)

	if px(c, 6, 15).A == 0 {
		t.Error("glyph fill should have painted inside the rectangle outline")
	}
}

func TestPaintGlyphsUsesClipSourceColorInsteadOfFill(t *testing.T) {
	c := compositor.NewCanvas(40, 40)
	clip := compositor.NewCanvas(40, 40)
	for i := range clip.Pix {
		clip.Pix[i] = geom.Color{G: 255, A: 255}
	}
	src := rectGlyphSource{w: 8, yTop: -10, yBottom: 0}
	line := simpleLine(PositionedGlyph{Pen: geom.Point{X: 4, Y: baseline}})
	sfs := style.SizedFontStyle{FontSizePx: 16, FillColor: geom.Color{R: 255, A: 255}}
	PaintGlyphs(c, line, geom.Point{}, src, sfs, 0, geom.Identity, clip)

	got := px(c, 6, 15)
	if got.G == 0 || got.R != 0 {
		t.Errorf("background-clip:text should sample clip's green, not the fill color's red, got %v", got)
	}
}

func TestPaintGlyphsDecoratesUnderlineWhenRequested(t *testing.T) {
	c := compositor.NewCanvas(40, 40)
	src := rectGlyphSource{w: 8, yTop: -10, yBottom: 0}
	line := simpleLine(PositionedGlyph{Pen: geom.Point{X: 20, Y: baseline}})
	sfs := style.SizedFontStyle{
		FontSizePx:            16,
		FillColor:             geom.Color{R: 255, A: 255},
		DecorationColor:       geom.Color{B: 255, A: 255},
		DecorationThicknessPx: 2,
		DecorationLine:        style.TextDecorationLine{Underline: true},
	}
	PaintGlyphs(c, line, geom.Point{}, src, sfs, 0, geom.Identity, nil)

	y := int(line.Baseline + 16*underlineOffsetEm)
	if px(c, 2, y).A == 0 {
		t.Error("underline should have painted away from the glyph")
	}
}

func TestPaintTextShadowPaintsOffsetSilhouette(t *testing.T) {
	c := compositor.NewCanvas(60, 60)
	src := rectGlyphSource{w: 8, yTop: -10, yBottom: 0}
	line := simpleLine(PositionedGlyph{Pen: geom.Point{X: 10, Y: baseline}})
	shadow := style.ResolvedShadow{OffsetXPx: 5, OffsetYPx: 5, BlurPx: 0, Color: geom.Color{A: 255}}
	paintTextShadow(c, line, geom.Point{}, src, 16, shadow, geom.Identity)

	if px(c, 18, 20).A == 0 {
		t.Error("text shadow should have painted a silhouette offset from the glyph")
	}
}

func TestPaintTextShadowSkipsInvisibleColor(t *testing.T) {
	c := compositor.NewCanvas(40, 40)
	src := rectGlyphSource{w: 8, yTop: -10, yBottom: 0}
	line := simpleLine(PositionedGlyph{Pen: geom.Point{X: 4, Y: baseline}})
	shadow := style.ResolvedShadow{Color: geom.Color{}}
	paintTextShadow(c, line, geom.Point{}, src, 16, shadow, geom.Identity)

	for _, p := range c.Pix {
		if p.A != 0 {
			t.Fatal("invisible shadow color should paint nothing")
		}
	}
}
