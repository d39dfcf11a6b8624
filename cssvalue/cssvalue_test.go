package cssvalue

import (
	"testing"

	"rasterdom/geom"
	"rasterdom/style"
)

func TestParseColorHex(t *testing.T) {
	cases := []struct {
		in   string
		want geom.Color
	}{
		{"#fff", geom.Color{R: 255, G: 255, B: 255, A: 255}},
		{"#000000", geom.Color{A: 255}},
		{"#ff000080", geom.Color{R: 255, A: 0x80}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseColorRGBFunc(t *testing.T) {
	got, err := ParseColor("rgb(255, 0, 0)")
	if err != nil {
		t.Fatal(err)
	}
	want := geom.Color{R: 255, A: 255}
	if got != want {
		t.Errorf("ParseColor(rgb) = %+v, want %+v", got, want)
	}
}

func TestParseColorRGBAFunc(t *testing.T) {
	got, err := ParseColor("rgba(0, 128, 0, 0.5)")
	if err != nil {
		t.Fatal(err)
	}
	if got.R != 0 || got.G != 128 || got.B != 0 {
		t.Errorf("ParseColor(rgba) channels = %+v", got)
	}
	if got.A < 126 || got.A > 129 {
		t.Errorf("ParseColor(rgba) alpha = %d, want ~127", got.A)
	}
}

func TestParseColorNamed(t *testing.T) {
	got, err := ParseColor("transparent")
	if err != nil {
		t.Fatal(err)
	}
	if got != (geom.Color{}) {
		t.Errorf("ParseColor(transparent) = %+v, want zero", got)
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in       string
		wantUnit geom.Unit
		wantVal  float64
	}{
		{"10px", geom.UnitPx, 10},
		{"50%", geom.UnitPercent, 50},
		{"1.5em", geom.UnitEm, 1.5},
		{"auto", geom.UnitAuto, 0},
		{"0", geom.UnitPx, 0},
	}
	for _, c := range cases {
		got, err := ParseLength(c.in)
		if err != nil {
			t.Fatalf("ParseLength(%q): %v", c.in, err)
		}
		if got.Unit != c.wantUnit || got.Value != c.wantVal {
			t.Errorf("ParseLength(%q) = %+v, want unit=%v val=%v", c.in, got, c.wantUnit, c.wantVal)
		}
	}
}

func TestParseGradientLinearAngle(t *testing.T) {
	g, err := ParseGradient("linear-gradient(45deg, red, blue)")
	if err != nil {
		t.Fatal(err)
	}
	if g.Kind != style.GradientKindLinear {
		t.Errorf("Kind = %v, want linear", g.Kind)
	}
	if len(g.Stops) != 2 {
		t.Fatalf("Stops = %d, want 2", len(g.Stops))
	}
	if g.Stops[0].Color.R != 255 {
		t.Errorf("first stop should be red, got %+v", g.Stops[0].Color)
	}
}

func TestParseGradientRadialWithSize(t *testing.T) {
	g, err := ParseGradient("radial-gradient(circle closest-side at center, white, black)")
	if err != nil {
		t.Fatal(err)
	}
	if g.Kind != style.GradientKindRadial {
		t.Fatalf("Kind = %v, want radial", g.Kind)
	}
	if g.Shape != style.GradientShapeCircle {
		t.Errorf("Shape = %v, want circle", g.Shape)
	}
	if !g.HasSize || g.SizeKeyword != style.GradientSizeKeywordClosestSide {
		t.Errorf("SizeKeyword = %v hasSize=%v, want closest-side/true", g.SizeKeyword, g.HasSize)
	}
}

func TestParseTransformList(t *testing.T) {
	tl, err := ParseTransform("translate(10px, 20px) rotate(90deg)")
	if err != nil {
		t.Fatal(err)
	}
	if len(tl.Funcs) != 2 {
		t.Fatalf("Funcs = %d, want 2", len(tl.Funcs))
	}
	if tl.Funcs[0].Kind != style.TransformKindTranslate {
		t.Errorf("first func kind = %v", tl.Funcs[0].Kind)
	}
	if tl.Funcs[1].Kind != style.TransformKindRotate {
		t.Errorf("second func kind = %v", tl.Funcs[1].Kind)
	}
}

func TestParseShadowList(t *testing.T) {
	shadows, err := ParseShadowList("2px 2px 4px rgba(0,0,0,0.5), inset 0 0 0 black")
	if err != nil {
		t.Fatal(err)
	}
	if len(shadows) != 2 {
		t.Fatalf("shadows = %d, want 2", len(shadows))
	}
	if !shadows[1].Inset {
		t.Errorf("second shadow should be inset")
	}
}

func TestParseClipPathCircle(t *testing.T) {
	cp, err := ParseClipPath("circle(50% at center)")
	if err != nil {
		t.Fatal(err)
	}
	if cp.Kind != style.ClipShapeKindCircle {
		t.Errorf("Kind = %v, want circle", cp.Kind)
	}
}

func TestParseGridTrackList(t *testing.T) {
	tl, err := ParseGridTrackList("1fr 2fr auto 100px")
	if err != nil {
		t.Fatal(err)
	}
	if len(tl.Tracks) != 4 {
		t.Fatalf("Tracks = %d, want 4", len(tl.Tracks))
	}
	if tl.Tracks[0].Kind != style.GridTrackKindFraction || tl.Tracks[0].Value != 1 {
		t.Errorf("track 0 = %+v", tl.Tracks[0])
	}
}
