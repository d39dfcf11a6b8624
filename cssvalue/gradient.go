package cssvalue

import (
	"fmt"
	"strings"

	cssscan "github.com/tdewolff/parse/v2/css"

	"rasterdom/geom"
	"rasterdom/style"
)

// ParseGradient parses a `linear-gradient()`, `radial-gradient()`, or
// `conic-gradient()` function call, with an optional `repeating-` prefix
// (spec.md §4.3 GradientSampler input).
func ParseGradient(value string) (style.GradientValue, error) {
	toks, err := tokenizeValue(value)
	if err != nil {
		return style.GradientValue{}, err
	}
	if len(toks) == 0 || toks[0].Type != cssscan.FunctionToken {
		return style.GradientValue{}, fmt.Errorf("cssvalue: not a gradient function: %q", value)
	}
	name := strings.ToLower(strings.TrimSuffix(toks[0].Data, "("))
	repeating := strings.HasPrefix(name, "repeating-")
	name = strings.TrimPrefix(name, "repeating-")

	args, err := parseFunctionArgs(toks)
	if err != nil {
		return style.GradientValue{}, err
	}

	g := style.GradientValue{Repeating: repeating}
	switch name {
	case "linear-gradient":
		g.Kind = style.GradientKindLinear
		args = parseLinearHeader(&g, args)
	case "radial-gradient":
		g.Kind = style.GradientKindRadial
		args = parseRadialHeader(&g, args)
	case "conic-gradient":
		g.Kind = style.GradientKindConic
		args = parseConicHeader(&g, args)
	default:
		return style.GradientValue{}, fmt.Errorf("cssvalue: unsupported gradient function %q", name)
	}

	stops, err := parseColorStops(args)
	if err != nil {
		return style.GradientValue{}, err
	}
	g.Stops = stops
	return g, nil
}

// parseLinearHeader consumes an optional leading `<angle>` or `to <side>`
// argument and returns the remaining stop arguments.
func parseLinearHeader(g *style.GradientValue, args [][]token) [][]token {
	if len(args) == 0 {
		g.AngleRadians = 3.14159265358979 // "to bottom" default
		return args
	}
	first := args[0]
	if len(first) == 1 && isAngleToken(first[0]) {
		if a, err := ParseAngle(first[0].Data); err == nil {
			g.AngleRadians = a.Radians()
			return args[1:]
		}
	}
	if len(first) >= 2 && isIdent(first[0], "to") {
		g.AngleRadians = sideKeywordToRadians(first[1:])
		return args[1:]
	}
	return args
}

func isAngleToken(t token) bool {
	return t.Type == cssscan.NumberToken || t.Type == cssscan.PercentageToken ||
		t.Type == cssscan.DimensionToken
}

func sideKeywordToRadians(idents []token) float64 {
	var words []string
	for _, t := range idents {
		words = append(words, strings.ToLower(t.Data))
	}
	joined := strings.Join(words, " ")
	switch joined {
	case "top":
		return 0
	case "bottom":
		return 3.14159265358979
	case "left":
		return -3.14159265358979 / 2
	case "right":
		return 3.14159265358979 / 2
	case "top right", "right top":
		return 3.14159265358979 / 4
	case "top left", "left top":
		return -3.14159265358979 / 4
	case "bottom right", "right bottom":
		return 3*3.14159265358979/4
	case "bottom left", "left bottom":
		return -3*3.14159265358979/4
	default:
		return 3.14159265358979
	}
}

func parseRadialHeader(g *style.GradientValue, args [][]token) [][]token {
	g.Shape = style.GradientShapeEllipse
	g.Center = geom.SpacePair[geom.Length]{X: geom.Percent(50), Y: geom.Percent(50)}
	if len(args) == 0 {
		return args
	}
	first := args[0]
	consumed := false
	i := 0
	for i < len(first) {
		t := first[i]
		switch {
		case isIdent(t, "circle"):
			g.Shape = style.GradientShapeCircle
			consumed = true
		case isIdent(t, "ellipse"):
			g.Shape = style.GradientShapeEllipse
			consumed = true
		case isIdent(t, "closest-side"):
			g.SizeKeyword, g.HasSize = style.GradientSizeKeywordClosestSide, true
			consumed = true
		case isIdent(t, "farthest-side"):
			g.SizeKeyword, g.HasSize = style.GradientSizeKeywordFarthestSide, true
			consumed = true
		case isIdent(t, "closest-corner"):
			g.SizeKeyword, g.HasSize = style.GradientSizeKeywordClosestCorner, true
			consumed = true
		case isIdent(t, "farthest-corner"):
			g.SizeKeyword, g.HasSize = style.GradientSizeKeywordFarthestCorner, true
			consumed = true
		case isIdent(t, "at"):
			rest := first[i+1:]
			if len(rest) >= 1 {
				if cx, err := ParseLength(rest[0].Data); err == nil {
					g.Center.X = cx
				}
			}
			if len(rest) >= 2 {
				if cy, err := ParseLength(rest[1].Data); err == nil {
					g.Center.Y = cy
				}
			}
			i = len(first)
			consumed = true
			continue
		}
		i++
	}
	if !consumed {
		return args
	}
	return args[1:]
}

func parseConicHeader(g *style.GradientValue, args [][]token) [][]token {
	g.Center = geom.SpacePair[geom.Length]{X: geom.Percent(50), Y: geom.Percent(50)}
	if len(args) == 0 {
		return args
	}
	first := args[0]
	consumed := false
	for i := 0; i < len(first); i++ {
		t := first[i]
		switch {
		case isIdent(t, "from"):
			if i+1 < len(first) {
				if a, err := ParseAngle(first[i+1].Data); err == nil {
					g.FromRadians = a.Radians()
				}
			}
			consumed = true
		case isIdent(t, "at"):
			rest := first[i+1:]
			if len(rest) >= 1 {
				if cx, err := ParseLength(rest[0].Data); err == nil {
					g.Center.X = cx
				}
			}
			if len(rest) >= 2 {
				if cy, err := ParseLength(rest[1].Data); err == nil {
					g.Center.Y = cy
				}
			}
			consumed = true
			i = len(first)
		}
	}
	if !consumed {
		return args
	}
	return args[1:]
}

// parseColorStops parses the remaining comma-separated arguments as
// `<color> [<length-percentage>]?` stops.
func parseColorStops(args [][]token) ([]style.ColorStop, error) {
	var stops []style.ColorStop
	for _, group := range args {
		if len(group) == 0 {
			continue
		}
		colorToks, posToks := splitColorAndPosition(group)
		color, err := ParseColor(joinTokens(colorToks))
		if err != nil {
			return nil, err
		}
		stop := style.ColorStop{Color: color}
		if len(posToks) > 0 {
			if l, err := ParseLength(posToks[0].Data); err == nil {
				stop.Position = l
				stop.HasPos = true
			}
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

// splitColorAndPosition separates a stop's color tokens (which may
// themselves be a multi-token function call) from a trailing
// length-percentage position token.
func splitColorAndPosition(group []token) (colorToks, posToks []token) {
	last := group[len(group)-1]
	if last.Type == cssscan.PercentageToken || last.Type == cssscan.DimensionToken {
		return group[:len(group)-1], group[len(group)-1:]
	}
	return group, nil
}

func joinTokens(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Data)
	}
	return b.String()
}
