package cssvalue

import (
	"fmt"
	"strings"

	cssscan "github.com/tdewolff/parse/v2/css"

	"rasterdom/geom"
	"rasterdom/style"
)

// ParseClipPath parses `inset()`, `circle()`, `ellipse()`, `polygon()`,
// or `path()` basic-shape functions (spec.md §4.2/§4.4 MaskEngine input).
func ParseClipPath(value string) (style.ClipPathValue, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "none") {
		return style.ClipPathValue{Kind: style.ClipShapeKindNone}, nil
	}
	toks, err := tokenizeValue(value)
	if err != nil {
		return style.ClipPathValue{}, err
	}
	if len(toks) == 0 || toks[0].Type != cssscan.FunctionToken {
		return style.ClipPathValue{}, fmt.Errorf("cssvalue: not a basic-shape function: %q", value)
	}
	name := strings.ToLower(strings.TrimSuffix(toks[0].Data, "("))
	args, err := parseFunctionArgs(toks)
	if err != nil {
		return style.ClipPathValue{}, err
	}

	switch name {
	case "inset":
		return parseInsetShape(args)
	case "circle":
		return parseCircleShape(args)
	case "ellipse":
		return parseEllipseShape(args)
	case "polygon":
		return parsePolygonShape(args)
	case "path":
		return parsePathShape(args)
	default:
		return style.ClipPathValue{}, fmt.Errorf("cssvalue: unsupported basic shape %q", name)
	}
}

func parseInsetShape(args [][]token) (style.ClipPathValue, error) {
	if len(args) == 0 {
		return style.ClipPathValue{}, fmt.Errorf("cssvalue: inset() needs arguments")
	}
	lens := args[0]
	vals := make([]geom.Length, 0, len(lens))
	for _, t := range lens {
		if isIdent(t, "round") {
			break
		}
		l, err := ParseLength(t.Data)
		if err != nil {
			continue
		}
		vals = append(vals, l)
	}
	var sides geom.Sides[geom.Length]
	switch len(vals) {
	case 1:
		sides = geom.UniformSides(vals[0])
	case 2:
		sides = geom.Sides[geom.Length]{Top: vals[0], Bottom: vals[0], Left: vals[1], Right: vals[1]}
	case 3:
		sides = geom.Sides[geom.Length]{Top: vals[0], Left: vals[1], Right: vals[1], Bottom: vals[2]}
	case 4:
		sides = geom.Sides[geom.Length]{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}
	}
	return style.ClipPathValue{Kind: style.ClipShapeKindInset, Inset: sides, Rule: style.FillRuleNonzero}, nil
}

func parseCircleShape(args [][]token) (style.ClipPathValue, error) {
	c := style.ClipPathValue{
		Kind:    style.ClipShapeKindCircle,
		CenterX: geom.Percent(50),
		CenterY: geom.Percent(50),
		Rule:    style.FillRuleNonzero,
	}
	if len(args) == 0 {
		return c, nil
	}
	toks := args[0]
	i := 0
	if i < len(toks) && !isIdent(toks[i], "at") {
		if r, err := ParseLength(toks[i].Data); err == nil {
			c.Radius = geom.SpacePair[geom.Length]{X: r, Y: r}
		}
		i++
	}
	if i < len(toks) && isIdent(toks[i], "at") && i+2 <= len(toks)-1 {
		if cx, err := ParseLength(toks[i+1].Data); err == nil {
			c.CenterX = cx
		}
		if i+2 < len(toks) {
			if cy, err := ParseLength(toks[i+2].Data); err == nil {
				c.CenterY = cy
			}
		}
	}
	return c, nil
}

func parseEllipseShape(args [][]token) (style.ClipPathValue, error) {
	c := style.ClipPathValue{
		Kind:    style.ClipShapeKindEllipse,
		CenterX: geom.Percent(50),
		CenterY: geom.Percent(50),
		Rule:    style.FillRuleNonzero,
	}
	if len(args) == 0 {
		return c, nil
	}
	toks := args[0]
	i := 0
	if i+1 < len(toks) && !isIdent(toks[i], "at") && !isIdent(toks[i+1], "at") {
		rx, errX := ParseLength(toks[i].Data)
		ry, errY := ParseLength(toks[i+1].Data)
		if errX == nil && errY == nil {
			c.Radius = geom.SpacePair[geom.Length]{X: rx, Y: ry}
		}
		i += 2
	}
	if i < len(toks) && isIdent(toks[i], "at") {
		if i+1 < len(toks) {
			if cx, err := ParseLength(toks[i+1].Data); err == nil {
				c.CenterX = cx
			}
		}
		if i+2 < len(toks) {
			if cy, err := ParseLength(toks[i+2].Data); err == nil {
				c.CenterY = cy
			}
		}
	}
	return c, nil
}

func parsePolygonShape(args [][]token) (style.ClipPathValue, error) {
	rule := style.FillRuleNonzero
	start := 0
	if len(args) > 0 && len(args[0]) == 1 {
		if isIdent(args[0][0], "evenodd") {
			rule = style.FillRuleEvenodd
			start = 1
		} else if isIdent(args[0][0], "nonzero") {
			start = 1
		}
	}
	var points []geom.SpacePair[geom.Length]
	for _, pair := range args[start:] {
		if len(pair) < 2 {
			continue
		}
		x, errX := ParseLength(pair[0].Data)
		y, errY := ParseLength(pair[1].Data)
		if errX == nil && errY == nil {
			points = append(points, geom.SpacePair[geom.Length]{X: x, Y: y})
		}
	}
	return style.ClipPathValue{Kind: style.ClipShapeKindPolygon, Points: points, Rule: rule}, nil
}

func parsePathShape(args [][]token) (style.ClipPathValue, error) {
	if len(args) == 0 || len(args[0]) == 0 {
		return style.ClipPathValue{}, fmt.Errorf("cssvalue: path() needs an SVG path string")
	}
	raw := strings.Trim(args[0][0].Data, `"'`)
	return style.ClipPathValue{Kind: style.ClipShapeKindPath, PathData: raw, Rule: style.FillRuleNonzero}, nil
}
