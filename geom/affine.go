package geom

import "math"

// Affine is a 2D affine transform matrix in the CSS `matrix(a,b,c,d,e,f)`
// layout: [[a c e] [b d f] [0 0 1]]. Applying it to a point p yields
// M·p (spec.md §4.2 transform list + §8 transform-composition invariant).
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Affine{A: 1, D: 1}

// Translate builds a pure translation matrix.
func Translate(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, E: tx, F: ty}
}

// Scale builds a pure scale matrix.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Rotate builds a pure rotation matrix for the given angle in radians,
// clockwise (CSS convention).
func Rotate(radians float64) Affine {
	s, c := math.Sin(radians), math.Cos(radians)
	return Affine{A: c, B: s, C: -s, D: c}
}

// Skew builds a pure skew matrix from the given X/Y angles in radians.
func Skew(xRadians, yRadians float64) Affine {
	return Affine{A: 1, D: 1, B: math.Tan(yRadians), C: math.Tan(xRadians)}
}

// Mul returns m·other — applying the result to a point first applies other,
// then m, matching the left-to-right composition spec.md §4.2 describes:
// `translate(10,0) rotate(90deg)` rotates first then translates.
func (m Affine) Mul(other Affine) Affine {
	return Affine{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// Apply transforms a point by the matrix.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Invert returns the inverse transform; ok is false if the matrix is
// singular (degenerate scale), in which case the returned matrix is the
// identity.
func (m Affine) Invert() (Affine, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity, false
	}
	invDet := 1 / det
	return Affine{
		A: m.D * invDet,
		B: -m.B * invDet,
		C: -m.C * invDet,
		D: m.A * invDet,
		E: (m.C*m.F - m.D*m.E) * invDet,
		F: (m.B*m.E - m.A*m.F) * invDet,
	}, true
}

// Around composes `T(origin) · m · T(-origin)`, the pattern spec.md §3 uses
// for transform-origin: translate to the origin, apply m, translate back.
func (m Affine) Around(originX, originY float64) Affine {
	return Translate(originX, originY).Mul(m).Mul(Translate(-originX, -originY))
}

// ToArray returns the [a b c d tx ty] form measure_layout's MeasuredTree
// exposes per spec.md §6.
func (m Affine) ToArray() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}
