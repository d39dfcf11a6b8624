// Package gradient is the GradientSampler: it resolves a style.GradientValue
// against a box geometry into a color LUT, then samples that LUT per pixel
// along the gradient's axis (spec.md §4.3).
package gradient

import (
	"math"

	"rasterdom/geom"
	"rasterdom/style"
)

// LUT is a built color lookup table: N entries sampled by nearest-neighbor
// index along the gradient's axis (spec.md §4.3 step b).
type LUT struct {
	Entries []geom.Color
}

// lutSize returns the LUT entry count: the next power of two >= axisLen*8,
// clamped to [1024, 8193] (spec.md §4.3 step b, followed exactly including
// its non-power-of-two upper clamp).
func lutSize(axisLen float64) int {
	target := axisLen * 8
	n := 1
	for float64(n) < target {
		n *= 2
	}
	if n < 1024 {
		n = 1024
	}
	if n > 8193 {
		n = 8193
	}
	return n
}

// resolvedStop is a ColorStop with its position resolved to [0, axisLen]
// physical units.
type resolvedStop struct {
	Color geom.Color
	Pos   float64
}

// resolveStops implements spec.md §4.3's stop-resolution rules: hinted
// stops are monotonic non-decreasing (`max(hint, lastPlaced)`); the first
// and last un-hinted stops default to 0 and axisLen; interior un-hinted
// stops are spaced evenly between their surrounding hinted neighbors.
func resolveStops(stops []style.ColorStop, sizing geom.Sizing, axisLen float64) []resolvedStop {
	n := len(stops)
	if n == 0 {
		return nil
	}
	out := make([]resolvedStop, n)
	hinted := make([]bool, n)
	for i, s := range stops {
		out[i].Color = s.Color
		if s.HasPos {
			hinted[i] = true
			out[i].Pos = s.Position.ToPx(sizing, axisLen)
		}
	}
	if !hinted[0] {
		out[0].Pos = 0
		hinted[0] = true
	}
	if !hinted[n-1] {
		out[n-1].Pos = axisLen
		hinted[n-1] = true
	}

	// Monotonic clamp over hinted stops, left to right.
	last := out[0].Pos
	for i := 1; i < n; i++ {
		if hinted[i] {
			if out[i].Pos < last {
				out[i].Pos = last
			}
			last = out[i].Pos
		}
	}

	// Fill interior un-hinted runs by even distribution between bounding
	// hinted positions.
	i := 0
	for i < n {
		if hinted[i] {
			i++
			continue
		}
		start := i - 1
		for i < n && !hinted[i] {
			i++
		}
		end := i
		runLen := end - start
		lo, hi := out[start].Pos, out[end].Pos
		for k := start + 1; k < end; k++ {
			t := float64(k-start) / float64(runLen)
			out[k].Pos = lo + (hi-lo)*t
			hinted[k] = true
		}
	}
	return out
}

// BuildLUT resolves the gradient's stops and samples them into a LUT of
// axis-length-scaled resolution (spec.md §4.3 steps a-b). Interpolation
// happens in sRGB premultiplied-free space as a plain linear lerp;
// g.Interpolation is not read, so an oklab gradient is lerped in sRGB too.
func BuildLUT(g style.GradientValue, sizing geom.Sizing, axisLen float64) LUT {
	stops := resolveStops(g.Stops, sizing, axisLen)
	n := lutSize(axisLen)
	entries := make([]geom.Color, n)
	if len(stops) == 0 {
		return LUT{Entries: entries}
	}
	if len(stops) == 1 {
		for i := range entries {
			entries[i] = stops[0].Color
		}
		return LUT{Entries: entries}
	}
	si := 0
	for i := 0; i < n; i++ {
		pos := float64(i) / float64(n-1) * axisLen
		for si < len(stops)-2 && pos > stops[si+1].Pos {
			si++
		}
		a, b := stops[si], stops[si+1]
		var t float64
		if b.Pos > a.Pos {
			t = (pos - a.Pos) / (b.Pos - a.Pos)
		} else {
			t = 0 // hard stop: equal positions, a wins until pos passes it
			if pos >= b.Pos {
				t = 1
			}
		}
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		entries[i] = geom.Lerp(a.Color, b.Color, t)
	}
	return LUT{Entries: entries}
}

// Sample indexes the LUT with nearest-neighbor at a normalized axis
// position in [0, axisLen] (spec.md §4.3 step c).
func (l LUT) Sample(pos, axisLen float64) geom.Color {
	if len(l.Entries) == 0 {
		return geom.Transparent
	}
	if axisLen <= 0 {
		return l.Entries[0]
	}
	t := pos / axisLen
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	idx := int(t*float64(len(l.Entries)-1) + 0.5)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(l.Entries) {
		idx = len(l.Entries) - 1
	}
	return l.Entries[idx]
}

// Axis describes the per-gradient-kind geometry BuildLUT/Sample need:
// length in physical units and a function mapping a pixel coordinate to
// an axis position (spec.md §4.3's linear/radial/conic geometry rules).
type Axis struct {
	Length  float64
	Project func(x, y float64) float64
}

// LinearAxis builds the linear-gradient axis: direction from the angle
// (CSS 0deg = to top, clockwise), length = the border-box diagonal's
// projection onto the axis direction, doubled, centered on the box
// (spec.md §4.3 Linear).
func LinearAxis(box geom.Rect, angleRadians float64) Axis {
	// CSS angle convention: 0 = up, clockwise; convert to a direction
	// vector (dx, dy) in screen space (y grows downward).
	dx := math.Sin(angleRadians)
	dy := -math.Cos(angleRadians)
	halfDiagX := box.Width / 2
	halfDiagY := box.Height / 2
	proj := math.Abs(float64(halfDiagX)*dx) + math.Abs(float64(halfDiagY)*dy)
	length := proj * 2
	cx, cy := float64(box.X)+float64(box.Width)/2, float64(box.Y)+float64(box.Height)/2
	return Axis{
		Length: length,
		Project: func(x, y float64) float64 {
			return (x-cx)*dx + (y-cy)*dy + length/2
		},
	}
}

// RadialGeometry resolves (rx, ry) for a radial-gradient per the
// shape/size table in spec.md §4.3.
func RadialGeometry(box geom.Rect, shape style.GradientShape, size style.GradientSizeKeyword, hasSize bool, cx, cy float64) (rx, ry float64) {
	left, right := cx-float64(box.X), float64(box.Right())-cx
	top, bottom := cy-float64(box.Y), float64(box.Bottom())-cy
	corners := []struct{ dx, dy float64 }{
		{float64(box.X) - cx, float64(box.Y) - cy},
		{float64(box.Right()) - cx, float64(box.Y) - cy},
		{float64(box.X) - cx, float64(box.Bottom()) - cy},
		{float64(box.Right()) - cx, float64(box.Bottom()) - cy},
	}
	dist := func(dx, dy float64) float64 { return math.Hypot(dx, dy) }

	if !hasSize {
		size = style.GradientSizeKeywordFarthestCorner
	}

	switch shape {
	case style.GradientShapeCircle:
		switch size {
		case style.GradientSizeKeywordClosestSide:
			r := math.Min(math.Min(left, right), math.Min(top, bottom))
			return r, r
		case style.GradientSizeKeywordFarthestSide:
			r := math.Max(math.Max(left, right), math.Max(top, bottom))
			return r, r
		case style.GradientSizeKeywordClosestCorner:
			r := dist(corners[0].dx, corners[0].dy)
			for _, c := range corners[1:] {
				if d := dist(c.dx, c.dy); d < r {
					r = d
				}
			}
			return r, r
		default: // farthest-corner
			r := dist(corners[0].dx, corners[0].dy)
			for _, c := range corners[1:] {
				if d := dist(c.dx, c.dy); d > r {
					r = d
				}
			}
			return r, r
		}
	default: // ellipse
		switch size {
		case style.GradientSizeKeywordClosestSide:
			return math.Min(left, right), math.Min(top, bottom)
		case style.GradientSizeKeywordFarthestSide:
			return math.Max(left, right), math.Max(top, bottom)
		case style.GradientSizeKeywordClosestCorner:
			// Approximated as farthest-side per spec.md §4.3's documented
			// ellipse closest-corner approximation.
			return math.Max(left, right), math.Max(top, bottom)
		default: // farthest-corner
			return math.Max(left, right), math.Max(top, bottom)
		}
	}
}

// RadialAxis builds the radial-gradient axis/sample position function
// (spec.md §4.3 Radial sample formula).
func RadialAxis(cx, cy, rx, ry float64) Axis {
	maxR := math.Max(rx, ry)
	return Axis{
		Length: maxR,
		Project: func(x, y float64) float64 {
			if rx == 0 || ry == 0 {
				return maxR
			}
			nx, ny := (x-cx)/rx, (y-cy)/ry
			return math.Sqrt(nx*nx+ny*ny) * maxR
		},
	}
}

// ConicAxis builds the conic-gradient angle-to-LUT-index mapping
// (spec.md §4.3 Conic): angle = atan2(dx, -dy) - from, normalized to
// [0, 2pi), the whole circle treated as the axis "length".
func ConicAxis(cx, cy, fromRadians float64) Axis {
	const twoPi = 2 * math.Pi
	return Axis{
		Length: twoPi,
		Project: func(x, y float64) float64 {
			dx, dy := x-cx, y-cy
			if dx == 0 && dy == 0 {
				return 0
			}
			a := math.Atan2(dx, -dy) - fromRadians
			for a < 0 {
				a += twoPi
			}
			for a >= twoPi {
				a -= twoPi
			}
			return a
		},
	}
}
