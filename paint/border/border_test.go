package border

import (
	"testing"

	"rasterdom/compositor"
	"rasterdom/geom"
)

func px(c *compositor.Canvas, x, y int) geom.Color {
	return c.Pix[y*c.Width+x]
}

func TestResolveRadiiClampsToHalfBox(t *testing.T) {
	box := geom.Rect{X: 0, Y: 0, Width: 20, Height: 10}
	got := ResolveRadii(box, geom.Size{Width: 100, Height: 100}, geom.Size{}, geom.Size{}, geom.Size{})
	if got.TL.Width != 10 || got.TL.Height != 5 {
		t.Errorf("radius should clamp to half the box, got %v", got.TL)
	}
}

func TestIsVisibleRequiresNonZeroWidth(t *testing.T) {
	p := Properties{}
	if p.IsVisible() {
		t.Error("zero-width border should not be visible")
	}
	p.Width.Top = 1
	if !p.IsVisible() {
		t.Error("non-zero edge width should make the border visible")
	}
}

func TestDrawUniformColorFillsRing(t *testing.T) {
	c := compositor.NewCanvas(20, 20)
	box := geom.Rect{X: 0, Y: 0, Width: 20, Height: 20}
	props := Properties{
		Width: geom.EdgeSizes{Top: 4, Right: 4, Bottom: 4, Left: 4},
		Color: EdgeColors{Top: geom.Color{R: 255, A: 255}, Right: geom.Color{R: 255, A: 255}, Bottom: geom.Color{R: 255, A: 255}, Left: geom.Color{R: 255, A: 255}},
	}
	Draw(c, box, props, geom.Identity)
	if px(c, 2, 2).A == 0 {
		t.Error("border edge pixel should be painted")
	}
	if px(c, 10, 10).A != 0 {
		t.Error("interior pixel should be left untouched by the border ring")
	}
}

func TestDrawPerEdgeColorSplitsQuads(t *testing.T) {
	c := compositor.NewCanvas(20, 20)
	box := geom.Rect{X: 0, Y: 0, Width: 20, Height: 20}
	props := Properties{
		Width: geom.EdgeSizes{Top: 4, Right: 4, Bottom: 4, Left: 4},
		Color: EdgeColors{
			Top:    geom.Color{R: 255, A: 255},
			Right:  geom.Color{G: 255, A: 255},
			Bottom: geom.Color{B: 255, A: 255},
			Left:   geom.Color{R: 255, G: 255, A: 255},
		},
	}
	Draw(c, box, props, geom.Identity)
	top := px(c, 10, 1)
	if top.R == 0 {
		t.Errorf("top edge should carry the top color, got %v", top)
	}
	left := px(c, 1, 10)
	if left.R == 0 || left.G == 0 {
		t.Errorf("left edge should carry the left color, got %v", left)
	}
}

func TestDrawSkipsInvisibleBorder(t *testing.T) {
	c := compositor.NewCanvas(10, 10)
	box := geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	Draw(c, box, Properties{}, geom.Identity)
	for _, p := range c.Pix {
		if p.A != 0 {
			t.Fatal("zero-width border should paint nothing")
		}
	}
}

func TestDrawOutlinePaintsOutsideBorderBox(t *testing.T) {
	c := compositor.NewCanvas(20, 20)
	box := geom.Rect{X: 5, Y: 5, Width: 10, Height: 10}
	DrawOutline(c, box, 2, 1, geom.Color{R: 255, A: 255}, CornerRadii{}, geom.Identity)
	if px(c, 3, 10).A == 0 {
		t.Error("outline should paint just outside the border box")
	}
	if px(c, 10, 10).A != 0 {
		t.Error("outline should never paint inside the border box")
	}
}

func TestDrawOutlineSkipsZeroWidth(t *testing.T) {
	c := compositor.NewCanvas(10, 10)
	box := geom.Rect{X: 2, Y: 2, Width: 6, Height: 6}
	DrawOutline(c, box, 0, 0, geom.Color{R: 255, A: 255}, CornerRadii{}, geom.Identity)
	for _, p := range c.Pix {
		if p.A != 0 {
			t.Fatal("zero-width outline should paint nothing")
		}
	}
}
