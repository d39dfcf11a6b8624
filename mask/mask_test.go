package mask

import (
	"image"
	"testing"

	"rasterdom/geom"
	"rasterdom/style"
)

func TestRoundedRectZeroRadiusOmitsArc(t *testing.T) {
	rect := geom.Rect{X: 0, Y: 0, Width: 100, Height: 50}
	p := RoundedRect(rect, geom.Size{}, geom.Size{}, geom.Size{}, geom.Size{})
	for _, c := range p {
		if c.Kind == CurveTo {
			t.Fatalf("expected no curves with all-zero radii, got %+v", p)
		}
	}
}

func TestRoundedRectNonZeroRadiusEmitsArcs(t *testing.T) {
	rect := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	r := geom.Size{Width: 10, Height: 10}
	p := RoundedRect(rect, r, r, r, r)
	curves := 0
	for _, c := range p {
		if c.Kind == CurveTo {
			curves++
		}
	}
	if curves != 4 {
		t.Errorf("expected 4 corner arcs, got %d", curves)
	}
}

func TestRoundedRectZeroSizeIsEmpty(t *testing.T) {
	p := RoundedRect(geom.Rect{}, geom.Size{}, geom.Size{}, geom.Size{}, geom.Size{})
	if p != nil {
		t.Errorf("zero-size rect should produce an empty path, got %+v", p)
	}
}

func TestClampCornerRadiiShrinksOverlap(t *testing.T) {
	rect := geom.Rect{X: 0, Y: 0, Width: 50, Height: 50}
	big := geom.Size{Width: 40, Height: 40}
	tl, tr, br, bl := clampCornerRadii(rect, big, big, big, big)
	if tl.Width+tr.Width > rect.Width+0.01 {
		t.Errorf("adjacent radii should be scaled to fit width: tl=%v tr=%v width=%v", tl.Width, tr.Width, rect.Width)
	}
}

func TestPolygonRequiresThreePoints(t *testing.T) {
	if p := Polygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}); p != nil {
		t.Errorf("two points should produce an empty path, got %+v", p)
	}
}

func TestParseSVGPathBasicCommands(t *testing.T) {
	p := ParseSVGPath("M0 0 L10 0 L10 10 Z")
	if len(p) != 4 {
		t.Fatalf("expected 4 commands, got %d: %+v", len(p), p)
	}
	if p[0].Kind != MoveTo || p[3].Kind != ClosePath {
		t.Errorf("unexpected command sequence: %+v", p)
	}
}

func TestParseSVGPathRelativeCommands(t *testing.T) {
	p := ParseSVGPath("M5 5 l10 0 l0 10 z")
	if p[1].End.X != 15 || p[1].End.Y != 5 {
		t.Errorf("relative lineto should accumulate from current point: %+v", p[1])
	}
}

func TestRenderFillsInteriorPixels(t *testing.T) {
	rect := geom.Rect{X: 5, Y: 5, Width: 10, Height: 10}
	p := RoundedRect(rect, geom.Size{}, geom.Size{}, geom.Size{}, geom.Size{})
	buf := Render(p, image.Rect(0, 0, 20, 20), nil, style.FillRuleNonzero)
	defer Release(buf)
	if a := buf.Alpha.AlphaAt(10, 10).A; a < 200 {
		t.Errorf("center pixel of filled rect should be near-opaque, got %d", a)
	}
	if a := buf.Alpha.AlphaAt(0, 0).A; a > 50 {
		t.Errorf("corner pixel outside the fill should be near-transparent, got %d", a)
	}
}
