package background

import (
	"testing"

	"rasterdom/geom"
	"rasterdom/style"
)

func TestTileSizeCoverUsesMaxScale(t *testing.T) {
	layer := style.BackgroundLayer{SizeMode: style.BackgroundSizeKeywordCover}
	area := geom.Size{Width: 200, Height: 100}
	intrinsic := geom.Size{Width: 100, Height: 100}
	got := TileSize(layer, area, intrinsic, geom.Sizing{DPR: 1})
	if got.Width != 200 || got.Height != 200 {
		t.Errorf("cover should scale by max(2,1)=2, got %v", got)
	}
}

func TestTileSizeContainUsesMinScale(t *testing.T) {
	layer := style.BackgroundLayer{SizeMode: style.BackgroundSizeKeywordContain}
	area := geom.Size{Width: 200, Height: 100}
	intrinsic := geom.Size{Width: 100, Height: 100}
	got := TileSize(layer, area, intrinsic, geom.Sizing{DPR: 1})
	if got.Width != 100 || got.Height != 100 {
		t.Errorf("contain should scale by min(2,1)=1, got %v", got)
	}
}

func TestTilePositionsNoRepeatIsSingleOrigin(t *testing.T) {
	pos := TilePositions(style.BackgroundRepeatKeywordNoRepeat, 10, 100, 20)
	if len(pos) != 1 || pos[0] != 10 {
		t.Errorf("no-repeat should produce exactly the origin position, got %v", pos)
	}
}

func TestTilePositionsSpaceCentersSingleTile(t *testing.T) {
	pos := spacePositions(50, 60) // tile bigger than area -> n<=1
	if len(pos) != 1 {
		t.Fatalf("expected a single centered tile, got %v", pos)
	}
}

func TestTilePositionsRoundStretchesToFitWhole(t *testing.T) {
	pos := roundPositions(100, 30)
	// round(100/30)=3 tiles, stretched to 100/3 each.
	if len(pos) != 3 {
		t.Fatalf("expected 3 tiles, got %d: %v", len(pos), pos)
	}
}

func TestClipAreaPaddingBoxInsetsByBorder(t *testing.T) {
	box := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	border := geom.EdgeSizes{Top: 10, Right: 10, Bottom: 10, Left: 10}
	rect, _ := ClipArea(style.BackgroundClipPaddingBox, box, border, geom.EdgeSizes{}, CornerRadii{})
	if rect.X != 10 || rect.Width != 80 {
		t.Errorf("padding-box should inset by the border width, got %v", rect)
	}
}

func TestClipAreaBorderBoxIsUnchanged(t *testing.T) {
	box := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	rect, _ := ClipArea(style.BackgroundClipBorderBox, box, geom.EdgeSizes{Top: 10, Right: 10, Bottom: 10, Left: 10}, geom.EdgeSizes{}, CornerRadii{})
	if rect != box {
		t.Errorf("border-box clip should leave the box untouched, got %v", rect)
	}
}
