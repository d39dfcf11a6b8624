package blur

import (
	"testing"

	"rasterdom/geom"
)

func TestSigmaShadowHalvesRadius(t *testing.T) {
	if got := Sigma(10, Shadow); got != 5 {
		t.Errorf("Sigma(10, Shadow) = %v, want 5", got)
	}
	if got := Sigma(10, Filter); got != 10 {
		t.Errorf("Sigma(10, Filter) = %v, want 10", got)
	}
}

func TestBoxRadiusMonotoneAndAtLeastOne(t *testing.T) {
	prev := 0
	for sigma := 0.6; sigma < 20; sigma += 0.7 {
		r := boxRadius(sigma)
		if r < 1 {
			t.Fatalf("boxRadius(%v) = %d, want >= 1", sigma, r)
		}
		if r < prev {
			t.Fatalf("boxRadius should be monotone: sigma=%v got %d after %d", sigma, r, prev)
		}
		prev = r
	}
}

func TestApplySkipsTinySigma(t *testing.T) {
	pix := []geom.Color{{R: 255, A: 255}, {R: 0, A: 255}}
	buf := AsImage(pix, 2, 1)
	Apply(buf, 0.3, Filter)
	if pix[0].R != 255 || pix[1].R != 0 {
		t.Errorf("sigma <= 0.5 should be a no-op, got %v", pix)
	}
}

func TestApplyBlursSharpEdge(t *testing.T) {
	w, h := 9, 1
	pix := make([]geom.Color, w*h)
	for x := 0; x < w; x++ {
		if x < w/2 {
			pix[x] = geom.Color{R: 255, A: 255}
		} else {
			pix[x] = geom.Color{A: 255}
		}
	}
	buf := AsImage(pix, w, h)
	Apply(buf, 3, Filter)
	if pix[0].R != 202 {
		t.Errorf("far edge should soften to 202 after three radius-3 box passes, got %d", pix[0].R)
	}
	if pix[w/2].R == 255 || pix[w/2].R == 0 {
		t.Errorf("blur should soften the sharp edge, got %d", pix[w/2].R)
	}
}
