package compositor

import (
	"testing"

	"rasterdom/geom"
	"rasterdom/style"
)

func TestBlendTransparentTopIsNoop(t *testing.T) {
	bottom := geom.Color{R: 10, G: 20, B: 30, A: 255}
	got := Blend(bottom, geom.Color{}, style.BlendModeNormal)
	if got != bottom {
		t.Errorf("transparent top should be a no-op, got %v want %v", got, bottom)
	}
}

func TestBlendTransparentBottomTakesTop(t *testing.T) {
	top := geom.Color{R: 1, G: 2, B: 3, A: 255}
	got := Blend(geom.Color{}, top, style.BlendModeNormal)
	if got != top {
		t.Errorf("transparent bottom should become top, got %v want %v", got, top)
	}
}

func TestBlendNormalOpaqueReplacesDirectly(t *testing.T) {
	bottom := geom.Color{R: 0, G: 0, B: 0, A: 255}
	top := geom.Color{R: 200, G: 100, B: 50, A: 255}
	if got := Blend(bottom, top, style.BlendModeNormal); got != top {
		t.Errorf("opaque-over-opaque normal blend should replace, got %v want %v", got, top)
	}
}

func TestBlendMultiplyBlack(t *testing.T) {
	bottom := geom.Color{R: 255, G: 255, B: 255, A: 255}
	top := geom.Color{R: 0, G: 0, B: 0, A: 255}
	got := Blend(bottom, top, style.BlendModeMultiply)
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("white multiplied by black should be black, got %v", got)
	}
}

func TestBlendScreenWhite(t *testing.T) {
	bottom := geom.Color{R: 100, G: 100, B: 100, A: 255}
	top := geom.Color{R: 255, G: 255, B: 255, A: 255}
	got := Blend(bottom, top, style.BlendModeScreen)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("screen with white should yield white, got %v", got)
	}
}

func TestBlendPlusLighterSaturates(t *testing.T) {
	bottom := geom.Color{R: 200, A: 255}
	top := geom.Color{R: 200, A: 255}
	got := Blend(bottom, top, style.BlendModePlusLighter)
	if got.R != 255 {
		t.Errorf("plus-lighter should saturate at 255, got %d", got.R)
	}
}

func TestBlendLuminosityPreservesBackdropHue(t *testing.T) {
	// Luminosity takes the backdrop's hue/sat with the source's luminance;
	// a fully desaturated (gray) source over a saturated backdrop should
	// still report some non-gray result on the backdrop's chroma.
	bottom := geom.Color{R: 200, G: 50, B: 50, A: 255}
	top := geom.Color{R: 128, G: 128, B: 128, A: 255}
	got := Blend(bottom, top, style.BlendModeLuminosity)
	if got.R == got.G && got.G == got.B {
		t.Errorf("luminosity blend should retain backdrop chroma, got gray %v", got)
	}
}

func TestFillColorWithRadiusFastPath(t *testing.T) {
	c := NewCanvas(4, 4)
	rect := geom.Rect{X: 0, Y: 0, Width: 4, Height: 4}
	FillColorWithRadius(c, rect, geom.Size{}, geom.Identity, geom.Color{R: 9, A: 255}, style.BlendModeNormal)
	for _, p := range c.Pix {
		if p.R != 9 {
			t.Fatalf("fast-path fill should memset every pixel, got %v", p)
		}
	}
}

func TestFillColorWithRadiusRoundedLeavesCornersUntouched(t *testing.T) {
	c := NewCanvas(20, 20)
	rect := geom.Rect{X: 0, Y: 0, Width: 20, Height: 20}
	FillColorWithRadius(c, rect, geom.Size{Width: 8, Height: 8}, geom.Identity, geom.Color{R: 9, A: 255}, style.BlendModeNormal)
	if c.at(0, 0).A != 0 {
		t.Errorf("rounded corner pixel should stay untouched, got %v", c.at(0, 0))
	}
	if c.at(10, 10).R != 9 {
		t.Errorf("center pixel should be filled, got %v", c.at(10, 10))
	}
}
