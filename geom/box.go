package geom

// Point is a 2D coordinate in CSS pixels.
type Point struct {
	X, Y float32
}

// Size is a 2D extent in CSS pixels.
type Size struct {
	Width, Height float32
}

// Rect is an axis-aligned box, origin + extent.
type Rect struct {
	X, Y, Width, Height float32
}

// Right returns the right edge.
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// Center returns the rect's center point.
func (r Rect) Center() Point { return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2} }

// Inset shrinks the rect by the given resolved side widths, clamping to
// zero size.
func (r Rect) Inset(sides EdgeSizes) Rect {
	w := r.Width - sides.Left - sides.Right
	h := r.Height - sides.Top - sides.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + sides.Left, Y: r.Y + sides.Top, Width: w, Height: h}
}

// Contains reports whether the point lies within the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Sides holds the four edges of a box-model rectangle before resolution to
// pixels (border widths, margin, padding, inset as parsed Lengths, …).
type Sides[T any] struct {
	Top, Right, Bottom, Left T
}

// UniformSides builds a Sides value with all four edges equal.
func UniformSides[T any](v T) Sides[T] {
	return Sides[T]{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSizes holds four already-resolved pixel edge widths: the computed form
// of Sides[Length] used once layout has picked a percentage basis. Go's
// generics cannot specialize a method to one type argument, so resolved
// box-model math lives on this concrete type rather than on Sides[float32].
type EdgeSizes struct {
	Top, Right, Bottom, Left float32
}

// Horizontal returns Left+Right.
func (s EdgeSizes) Horizontal() float32 { return s.Left + s.Right }

// Vertical returns Top+Bottom.
func (s EdgeSizes) Vertical() float32 { return s.Top + s.Bottom }

// SpacePair is a generic two-axis value: corner radii (rx,ry), background
// tile size (w,h), object-position (x,y), and similar "two lengths" values
// share this shape.
type SpacePair[T any] struct {
	X, Y T
}
