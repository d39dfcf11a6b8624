package cssvalue

import (
	"fmt"
	"strconv"
	"strings"

	"rasterdom/geom"
)

// unitSuffixes is checked in order, with "rem" listed before "em" so "rem"
// doesn't get mistaken for a stray "em" suffix.
var unitSuffixes = []struct {
	suffix string
	unit   geom.Unit
}{
	{"px", geom.UnitPx},
	{"%", geom.UnitPercent},
	{"rem", geom.UnitRem},
	{"em", geom.UnitEm},
	{"vw", geom.UnitVw},
	{"vh", geom.UnitVh},
	{"cm", geom.UnitCm},
	{"mm", geom.UnitMm},
	{"in", geom.UnitIn},
	{"q", geom.UnitQ},
	{"pt", geom.UnitPt},
	{"pc", geom.UnitPc},
}

// ParseLength parses a `<length-percentage>` value, or the `auto` keyword
// (spec.md §4.1 Length ToPx contract).
func ParseLength(value string) (geom.Length, error) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "auto") {
		return geom.Auto, nil
	}
	for _, u := range unitSuffixes {
		if strings.HasSuffix(strings.ToLower(value), u.suffix) {
			numPart := value[:len(value)-len(u.suffix)]
			v, err := strconv.ParseFloat(strings.TrimSpace(numPart), 64)
			if err != nil {
				continue
			}
			return geom.Length{Unit: u.unit, Value: v}, nil
		}
	}
	// Bare numbers are only valid for zero (CSS allows unitless 0).
	if v, err := strconv.ParseFloat(value, 64); err == nil && v == 0 {
		return geom.Px(0), nil
	}
	return geom.Length{}, fmt.Errorf("cssvalue: cannot parse length %q", value)
}

// ParseAngle parses a `<angle>` value (deg/rad/grad/turn), used by
// linear-gradient/rotate (spec.md §4.2/§4.3).
func ParseAngle(value string) (geom.Angle, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	suffixes := []struct {
		suffix string
		unit   geom.AngleUnit
	}{
		{"turn", geom.AngleUnitTurn},
		{"grad", geom.AngleUnitGrad},
		{"rad", geom.AngleUnitRad},
		{"deg", geom.AngleUnitDeg},
	}
	for _, u := range suffixes {
		if strings.HasSuffix(value, u.suffix) {
			numPart := value[:len(value)-len(u.suffix)]
			v, err := strconv.ParseFloat(strings.TrimSpace(numPart), 64)
			if err != nil {
				continue
			}
			return geom.Angle{Unit: u.unit, Value: v}, nil
		}
	}
	return geom.Angle{}, fmt.Errorf("cssvalue: cannot parse angle %q", value)
}
