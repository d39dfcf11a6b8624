package geom

import "math"

// Unit is the physical/relative unit a Length was parsed in.
// ENUM(auto, px, percent, em, rem, vw, vh, cm, mm, in, q, pt, pc)
type Unit int

// Length is a single CSS-like length: a number plus the unit it was written
// in. Resolution to pixels is deferred until a Sizing context is known (the
// to_px contract in spec.md §4.1).
type Length struct {
	Unit  Unit
	Value float64 // meaningless when Unit == UnitAuto
}

// Auto is the `auto` keyword length.
var Auto = Length{Unit: UnitAuto}

// Px constructs an absolute pixel length.
func Px(v float64) Length { return Length{Unit: UnitPx, Value: v} }

// Percent constructs a percentage length.
func Percent(v float64) Length { return Length{Unit: UnitPercent, Value: v} }

// IsAuto reports whether the length is the `auto` keyword.
func (l Length) IsAuto() bool { return l.Unit == UnitAuto }

// IsPercent reports whether the length is a percentage.
func (l Length) IsPercent() bool { return l.Unit == UnitPercent }

// Sizing carries the viewport/font context to_px needs to resolve a length.
type Sizing struct {
	ViewportWidth  float64
	ViewportHeight float64
	RootFontSize   float64 // px, already DPR-scaled
	FontSize       float64 // px, the current node's resolved font-size
	DPR            float64
}

const (
	cmToIn = 1.0 / 2.54
	mmToIn = cmToIn / 10
	qToIn  = mmToIn / 4
	ptToIn = 1.0 / 72
	pcToIn = 1.0 / 6
	dpi    = 96.0 // CSS reference pixel density
)

// ToPx resolves the length to absolute pixels against the given sizing and
// percentage basis, implementing the to_px contract of spec.md §4.1
// verbatim: percentage/auto/vw/vh/em bypass the trailing DPR multiplication
// because they already carry viewport or font semantics.
func (l Length) ToPx(s Sizing, percentageBasis float64) float64 {
	switch l.Unit {
	case UnitAuto:
		return 0
	case UnitPx:
		return l.Value * s.DPR
	case UnitPercent:
		return l.Value / 100 * percentageBasis
	case UnitEm:
		return l.Value * s.FontSize
	case UnitRem:
		return l.Value * s.RootFontSize * s.DPR
	case UnitVw:
		return l.Value / 100 * s.ViewportWidth
	case UnitVh:
		return l.Value / 100 * s.ViewportHeight
	case UnitCm:
		return l.Value * cmToIn * dpi * s.DPR
	case UnitMm:
		return l.Value * mmToIn * dpi * s.DPR
	case UnitIn:
		return l.Value * dpi * s.DPR
	case UnitQ:
		return l.Value * qToIn * dpi * s.DPR
	case UnitPt:
		return l.Value * ptToIn * dpi * s.DPR
	case UnitPc:
		return l.Value * pcToIn * dpi * s.DPR
	default:
		return 0
	}
}

// AngleUnit is the unit an Angle literal was parsed in.
// ENUM(deg, rad, grad, turn)
type AngleUnit int

// Angle is a CSS angle, normalized to radians on demand via Radians.
type Angle struct {
	Unit  AngleUnit
	Value float64
}

// Radians converts the angle to radians.
func (a Angle) Radians() float64 {
	switch a.Unit {
	case AngleUnitRad:
		return a.Value
	case AngleUnitGrad:
		return a.Value * math.Pi / 200
	case AngleUnitTurn:
		return a.Value * 2 * math.Pi
	default: // deg
		return a.Value * math.Pi / 180
	}
}

// Degrees converts the angle to degrees.
func (a Angle) Degrees() float64 {
	return a.Radians() * 180 / math.Pi
}
