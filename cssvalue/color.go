package cssvalue

import (
	"fmt"
	"strconv"
	"strings"

	cssscan "github.com/tdewolff/parse/v2/css"

	"rasterdom/geom"
)

// namedColors covers the CSS named-color keywords the corpus's test
// fixtures exercise most; anything else falls through to hex/rgb/hsl
// function forms.
var namedColors = map[string]geom.Color{
	"transparent": {},
	"black":       {A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"red":         {R: 255, A: 255},
	"green":       {G: 128, A: 255},
	"blue":        {B: 255, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"silver":      {R: 192, G: 192, B: 192, A: 255},
	"yellow":      {R: 255, G: 255, A: 255},
	"orange":      {R: 255, G: 165, A: 255},
	"purple":      {R: 128, B: 128, A: 255},
	"currentcolor": {},
}

// ParseColor parses a `<color>` value: hex (#rgb/#rgba/#rrggbb/#rrggbbaa),
// rgb()/rgba(), hsl()/hsla(), or a named keyword (spec.md §3 Color).
func ParseColor(value string) (geom.Color, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		return parseHexColor(value)
	}
	toks, err := tokenizeValue(value)
	if err != nil {
		return geom.Color{}, err
	}
	if len(toks) == 0 {
		return geom.Color{}, fmt.Errorf("cssvalue: empty color value")
	}
	if toks[0].Type == cssscan.IdentToken {
		if c, ok := namedColors[strings.ToLower(toks[0].Data)]; ok {
			return c, nil
		}
		return geom.Color{}, fmt.Errorf("cssvalue: unknown color keyword %q", toks[0].Data)
	}
	if toks[0].Type == cssscan.FunctionToken {
		fn := strings.ToLower(strings.TrimSuffix(toks[0].Data, "("))
		args, err := parseFunctionArgs(toks)
		if err != nil {
			return geom.Color{}, err
		}
		switch fn {
		case "rgb", "rgba":
			return parseRGBFunc(args)
		case "hsl", "hsla":
			return parseHSLFunc(args)
		}
		return geom.Color{}, fmt.Errorf("cssvalue: unsupported color function %q", fn)
	}
	return geom.Color{}, fmt.Errorf("cssvalue: cannot parse color %q", value)
}

func parseFunctionArgs(toks []token) ([][]token, error) {
	// toks[0] is the FunctionToken itself; the matching
	// RightParenthesisToken closes the group.
	if len(toks) < 2 || toks[len(toks)-1].Type != cssscan.RightParenthesisToken {
		return nil, fmt.Errorf("cssvalue: malformed function value")
	}
	inner := toks[1 : len(toks)-1]
	return splitTopLevelCommas(inner), nil
}

func parseHexColor(s string) (geom.Color, error) {
	h := strings.TrimPrefix(s, "#")
	expand := func(c byte) (byte, byte) { return c, c }
	var r, g, b, a byte = 0, 0, 0, 255
	parseHexByte := func(hi, lo byte) (byte, error) {
		v, err := strconv.ParseUint(string([]byte{hi, lo}), 16, 8)
		return byte(v), err
	}
	switch len(h) {
	case 3, 4:
		rr, _ := expand(h[0])
		gg, _ := expand(h[1])
		bb, _ := expand(h[2])
		var err error
		if r, err = parseHexByte(rr, h[0]); err != nil {
			return geom.Color{}, err
		}
		if g, err = parseHexByte(gg, h[1]); err != nil {
			return geom.Color{}, err
		}
		if b, err = parseHexByte(bb, h[2]); err != nil {
			return geom.Color{}, err
		}
		if len(h) == 4 {
			if a, err = parseHexByte(h[3], h[3]); err != nil {
				return geom.Color{}, err
			}
		}
	case 6, 8:
		var err error
		if r, err = parseHexByte(h[0], h[1]); err != nil {
			return geom.Color{}, err
		}
		if g, err = parseHexByte(h[2], h[3]); err != nil {
			return geom.Color{}, err
		}
		if b, err = parseHexByte(h[4], h[5]); err != nil {
			return geom.Color{}, err
		}
		if len(h) == 8 {
			if a, err = parseHexByte(h[6], h[7]); err != nil {
				return geom.Color{}, err
			}
		}
	default:
		return geom.Color{}, fmt.Errorf("cssvalue: malformed hex color %q", s)
	}
	return geom.Color{R: r, G: g, B: b, A: a}, nil
}

func parseRGBFunc(args [][]token) (geom.Color, error) {
	if len(args) < 3 {
		return geom.Color{}, fmt.Errorf("cssvalue: rgb() needs 3-4 components")
	}
	r, err := parseChannel(args[0])
	if err != nil {
		return geom.Color{}, err
	}
	g, err := parseChannel(args[1])
	if err != nil {
		return geom.Color{}, err
	}
	b, err := parseChannel(args[2])
	if err != nil {
		return geom.Color{}, err
	}
	a := byte(255)
	if len(args) >= 4 {
		af, err := parseAlphaArg(args[3])
		if err != nil {
			return geom.Color{}, err
		}
		a = af
	}
	return geom.Color{R: r, G: g, B: b, A: a}, nil
}

func parseChannel(toks []token) (byte, error) {
	if len(toks) == 0 {
		return 0, fmt.Errorf("cssvalue: missing color channel")
	}
	raw := strings.TrimSuffix(toks[0].Data, "%")
	v, err := parseFloat(raw)
	if err != nil {
		return 0, err
	}
	if strings.HasSuffix(toks[0].Data, "%") {
		v = v * 255 / 100
	}
	return clampByte(v), nil
}

func parseAlphaArg(toks []token) (byte, error) {
	if len(toks) == 0 {
		return 255, nil
	}
	raw := strings.TrimSuffix(toks[0].Data, "%")
	v, err := parseFloat(raw)
	if err != nil {
		return 0, err
	}
	if strings.HasSuffix(toks[0].Data, "%") {
		v = v / 100
	}
	return clampByte(v * 255), nil
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v + 0.5)
}

// parseHSLFunc implements the standard HSL-to-RGB conversion (CSS Color
// Module Level 4 §8.1).
func parseHSLFunc(args [][]token) (geom.Color, error) {
	if len(args) < 3 {
		return geom.Color{}, fmt.Errorf("cssvalue: hsl() needs 3-4 components")
	}
	hRaw := strings.TrimSuffix(args[0][0].Data, "deg")
	h, err := parseFloat(hRaw)
	if err != nil {
		return geom.Color{}, err
	}
	s, err := parsePercent(args[1])
	if err != nil {
		return geom.Color{}, err
	}
	l, err := parsePercent(args[2])
	if err != nil {
		return geom.Color{}, err
	}
	a := byte(255)
	if len(args) >= 4 {
		af, err := parseAlphaArg(args[3])
		if err != nil {
			return geom.Color{}, err
		}
		a = af
	}
	r, g, b := hslToRGB(h, s, l)
	return geom.Color{R: r, G: g, B: b, A: a}, nil
}

func parsePercent(toks []token) (float64, error) {
	if len(toks) == 0 {
		return 0, fmt.Errorf("cssvalue: missing percentage")
	}
	raw := strings.TrimSuffix(toks[0].Data, "%")
	v, err := parseFloat(raw)
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

func hslToRGB(h, s, l float64) (byte, byte, byte) {
	h = normalizeDeg(h)
	c := (1 - absf(2*l-1)) * s
	x := c * (1 - absf(modf(h/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return clampByte((r + m) * 255), clampByte((g + m) * 255), clampByte((b + m) * 255)
}

func normalizeDeg(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func modf(v, m float64) float64 {
	for v >= m {
		v -= m
	}
	for v < 0 {
		v += m
	}
	return v
}
