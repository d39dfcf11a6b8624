package gradient

import (
	"math"
	"testing"

	"rasterdom/geom"
	"rasterdom/style"
)

func TestLutSizeClampsAndRoundsToPowerOfTwo(t *testing.T) {
	if got := lutSize(1); got != 1024 {
		t.Errorf("lutSize(1) = %d, want 1024 (lower clamp)", got)
	}
	if got := lutSize(2000); got != 8193 {
		t.Errorf("lutSize(2000) = %d, want 8193 (upper clamp)", got)
	}
	if got := lutSize(100); got != 1024 {
		t.Errorf("lutSize(100) = %d, want 1024", got)
	}
}

func TestResolveStopsDefaultsEndsAndSpreadsInterior(t *testing.T) {
	stops := []style.ColorStop{
		{Color: geom.Color{R: 255}},
		{Color: geom.Color{G: 255}},
		{Color: geom.Color{B: 255}},
		{Color: geom.Color{A: 255}},
	}
	out := resolveStops(stops, geom.Sizing{DPR: 1}, 300)
	if out[0].Pos != 0 || out[3].Pos != 300 {
		t.Fatalf("end stops not defaulted: %+v", out)
	}
	if out[1].Pos != 100 || out[2].Pos != 200 {
		t.Errorf("interior stops not evenly spread: %+v", out)
	}
}

func TestResolveStopsHintIsMonotonic(t *testing.T) {
	stops := []style.ColorStop{
		{Color: geom.Color{R: 255}, HasPos: true, Position: geom.Percent(50)},
		{Color: geom.Color{G: 255}, HasPos: true, Position: geom.Percent(10)},
	}
	out := resolveStops(stops, geom.Sizing{DPR: 1}, 100)
	if out[1].Pos < out[0].Pos {
		t.Errorf("second hinted stop must clamp to >= first: %+v", out)
	}
}

func TestBuildLUTSingleStopIsFlat(t *testing.T) {
	g := style.GradientValue{Stops: []style.ColorStop{{Color: geom.Color{R: 10, G: 20, B: 30, A: 255}}}}
	lut := BuildLUT(g, geom.Sizing{DPR: 1}, 100)
	for _, c := range lut.Entries {
		if c != (geom.Color{R: 10, G: 20, B: 30, A: 255}) {
			t.Fatalf("expected flat LUT, got %v", c)
		}
	}
}

func TestBuildLUTEndpointsMatchStops(t *testing.T) {
	red := geom.Color{R: 255, A: 255}
	blue := geom.Color{B: 255, A: 255}
	g := style.GradientValue{Stops: []style.ColorStop{{Color: red}, {Color: blue}}}
	lut := BuildLUT(g, geom.Sizing{DPR: 1}, 100)
	if lut.Entries[0] != red {
		t.Errorf("first entry = %v, want %v", lut.Entries[0], red)
	}
	last := lut.Entries[len(lut.Entries)-1]
	if last != blue {
		t.Errorf("last entry = %v, want %v", last, blue)
	}
}

func TestLinearAxisZeroDegreesPointsUp(t *testing.T) {
	box := geom.Rect{X: 0, Y: 0, Width: 100, Height: 200}
	axis := LinearAxis(box, 0)
	// Moving up (negative y) from center should increase the axis position.
	center := axis.Project(50, 100)
	up := axis.Project(50, 50)
	if !(up > center) {
		t.Errorf("0deg axis should project upward as larger position: up=%v center=%v", up, center)
	}
}

func TestRadialGeometryCircleFarthestCorner(t *testing.T) {
	box := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	rx, ry := RadialGeometry(box, style.GradientShapeCircle, style.GradientSizeKeywordFarthestCorner, true, 0, 0)
	want := math.Hypot(100, 100)
	if math.Abs(rx-want) > 1e-6 || rx != ry {
		t.Errorf("got rx=%v ry=%v, want %v for both", rx, ry, want)
	}
}

func TestConicAxisNormalizesToFullCircle(t *testing.T) {
	axis := ConicAxis(0, 0, 0)
	// Straight up from center: angle should be 0.
	if got := axis.Project(0, -10); math.Abs(got) > 1e-9 {
		t.Errorf("angle straight up should be ~0, got %v", got)
	}
	// Straight right: angle should be pi/2.
	if got := axis.Project(10, 0); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("angle straight right should be ~pi/2, got %v", got)
	}
}

func TestSampleNearestNeighborClampsToRange(t *testing.T) {
	lut := LUT{Entries: []geom.Color{{R: 1}, {R: 2}, {R: 3}}}
	if got := lut.Sample(-10, 100); got != lut.Entries[0] {
		t.Errorf("negative pos should clamp to first entry, got %v", got)
	}
	if got := lut.Sample(1000, 100); got != lut.Entries[len(lut.Entries)-1] {
		t.Errorf("overshoot pos should clamp to last entry, got %v", got)
	}
}
