package imagefit

import (
	"testing"

	"rasterdom/geom"
	"rasterdom/style"
)

func TestRenderSizeFillMatchesContentBox(t *testing.T) {
	got := RenderSize(style.ObjectFitFill, geom.Size{Width: 200, Height: 50}, geom.Size{Width: 100, Height: 100})
	if got.Width != 200 || got.Height != 50 {
		t.Errorf("fill should resize to the content box exactly, got %v", got)
	}
}

func TestRenderSizeContainUsesMinScale(t *testing.T) {
	got := RenderSize(style.ObjectFitContain, geom.Size{Width: 200, Height: 50}, geom.Size{Width: 100, Height: 100})
	if got.Width != 50 || got.Height != 50 {
		t.Errorf("contain should scale by min(2, 0.5)=0.5, got %v", got)
	}
}

func TestRenderSizeCoverUsesMaxScale(t *testing.T) {
	got := RenderSize(style.ObjectFitCover, geom.Size{Width: 200, Height: 50}, geom.Size{Width: 100, Height: 100})
	if got.Width != 200 || got.Height != 200 {
		t.Errorf("cover should scale by max(2, 0.5)=2, got %v", got)
	}
}

func TestRenderSizeScaleDownPrefersNaturalWhenSmaller(t *testing.T) {
	got := RenderSize(style.ObjectFitScaleDown, geom.Size{Width: 200, Height: 200}, geom.Size{Width: 50, Height: 50})
	if got.Width != 50 || got.Height != 50 {
		t.Errorf("scale-down should keep the smaller natural size, got %v", got)
	}
}

func TestRenderSizeScaleDownFallsBackToContainWhenLarger(t *testing.T) {
	got := RenderSize(style.ObjectFitScaleDown, geom.Size{Width: 50, Height: 50}, geom.Size{Width: 200, Height: 200})
	if got.Width != 50 || got.Height != 50 {
		t.Errorf("scale-down should fall back to contain when natural size overflows, got %v", got)
	}
}

func TestRenderSizeNoneKeepsIntrinsicSize(t *testing.T) {
	got := RenderSize(style.ObjectFitNone, geom.Size{Width: 10, Height: 10}, geom.Size{Width: 300, Height: 400})
	if got.Width != 300 || got.Height != 400 {
		t.Errorf("none should keep the intrinsic size, got %v", got)
	}
}

func TestPlaceAxisCentersLeftoverSpace(t *testing.T) {
	got := placeAxis(25, 100, 50) // available = 50, pos clamps to 25 unchanged
	if got != 25 {
		t.Errorf("expected the unclamped offset 25, got %v", got)
	}
}

func TestPlaceAxisClampsToAvailableSpace(t *testing.T) {
	got := placeAxis(999, 100, 50)
	if got != 50 {
		t.Errorf("offset should clamp to the 50px available space, got %v", got)
	}
}

func TestPlaceAxisCropsWhenImageLargerThanBox(t *testing.T) {
	got := placeAxis(10, 50, 100) // image is 100 wide, box is 50: 50px to crop from
	if got != -10 {
		t.Errorf("expected a -10 crop offset, got %v", got)
	}
}

func TestResolvePlacementCombinesSizeAndOffset(t *testing.T) {
	position := geom.SpacePair[geom.Length]{X: geom.Px(0), Y: geom.Px(0)}
	p := Resolve(style.ObjectFitContain, position, geom.Size{Width: 200, Height: 100}, geom.Size{Width: 100, Height: 100}, geom.Sizing{DPR: 1})
	if p.Size.Width != 100 || p.Size.Height != 100 {
		t.Errorf("contain render size mismatch: %v", p.Size)
	}
	if p.Offset.X != 0 {
		t.Errorf("zero object-position should not offset into the leftover space, got %v", p.Offset)
	}
}
