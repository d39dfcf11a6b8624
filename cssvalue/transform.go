package cssvalue

import (
	"fmt"
	"math"
	"strings"

	cssscan "github.com/tdewolff/parse/v2/css"

	"rasterdom/geom"
	"rasterdom/style"
)

// ParseTransform parses a `transform` value: a space-separated list of
// transform functions composed left to right (spec.md §4.2).
func ParseTransform(value string) (style.TransformList, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "none") {
		return style.TransformList{}, nil
	}
	toks, err := tokenizeValue(value)
	if err != nil {
		return style.TransformList{}, err
	}
	var funcs []style.TransformFunc
	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.Type != cssscan.FunctionToken {
			return style.TransformList{}, fmt.Errorf("cssvalue: expected transform function, got %q", t.Data)
		}
		end := matchingParen(toks, i)
		if end < 0 {
			return style.TransformList{}, fmt.Errorf("cssvalue: unterminated transform function")
		}
		fn, err := parseOneTransform(t, toks[i+1:end])
		if err != nil {
			return style.TransformList{}, err
		}
		funcs = append(funcs, fn)
		i = end + 1
	}
	return style.TransformList{Funcs: funcs}, nil
}

func matchingParen(toks []token, open int) int {
	depth := 1
	for i := open + 1; i < len(toks); i++ {
		switch toks[i].Type {
		case cssscan.FunctionToken, cssscan.LeftParenthesisToken:
			depth++
		case cssscan.RightParenthesisToken:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseOneTransform(nameTok token, inner []token) (style.TransformFunc, error) {
	name := strings.ToLower(strings.TrimSuffix(nameTok.Data, "("))
	args := splitTopLevelCommas(inner)
	switch name {
	case "translate", "translatex", "translatey":
		return parseTranslate(name, args)
	case "scale", "scalex", "scaley":
		return parseScale(name, args)
	case "rotate":
		a, err := argAngle(args, 0)
		return style.TransformFunc{Kind: style.TransformKindRotate, AngleRadians: a}, err
	case "skew", "skewx", "skewy":
		return parseSkew(name, args)
	case "matrix":
		return parseMatrix(args)
	default:
		return style.TransformFunc{}, fmt.Errorf("cssvalue: unsupported transform function %q", name)
	}
}

func parseTranslate(name string, args [][]token) (style.TransformFunc, error) {
	fn := style.TransformFunc{Kind: style.TransformKindTranslate}
	switch name {
	case "translatex":
		x, err := argLength(args, 0)
		fn.TranslateX = x
		return fn, err
	case "translatey":
		y, err := argLength(args, 0)
		fn.TranslateY = y
		return fn, err
	default:
		x, err := argLength(args, 0)
		if err != nil {
			return fn, err
		}
		fn.TranslateX = x
		if len(args) > 1 {
			y, err := argLength(args, 1)
			if err != nil {
				return fn, err
			}
			fn.TranslateY = y
		}
		return fn, nil
	}
}

func parseScale(name string, args [][]token) (style.TransformFunc, error) {
	fn := style.TransformFunc{Kind: style.TransformKindScale, ScaleX: 1, ScaleY: 1}
	switch name {
	case "scalex":
		x, err := argFloat(args, 0)
		fn.ScaleX, fn.ScaleY = x, 1
		return fn, err
	case "scaley":
		y, err := argFloat(args, 0)
		fn.ScaleX, fn.ScaleY = 1, y
		return fn, err
	default:
		x, err := argFloat(args, 0)
		if err != nil {
			return fn, err
		}
		fn.ScaleX, fn.ScaleY = x, x
		if len(args) > 1 {
			y, err := argFloat(args, 1)
			if err != nil {
				return fn, err
			}
			fn.ScaleY = y
		}
		return fn, nil
	}
}

func parseSkew(name string, args [][]token) (style.TransformFunc, error) {
	fn := style.TransformFunc{Kind: style.TransformKindSkew}
	switch name {
	case "skewx":
		a, err := argAngle(args, 0)
		fn.SkewXRadians = a
		return fn, err
	case "skewy":
		a, err := argAngle(args, 0)
		fn.SkewYRadians = a
		return fn, err
	default:
		x, err := argAngle(args, 0)
		if err != nil {
			return fn, err
		}
		fn.SkewXRadians = x
		if len(args) > 1 {
			y, err := argAngle(args, 1)
			if err != nil {
				return fn, err
			}
			fn.SkewYRadians = y
		}
		return fn, nil
	}
}

func parseMatrix(args [][]token) (style.TransformFunc, error) {
	if len(args) != 6 {
		return style.TransformFunc{}, fmt.Errorf("cssvalue: matrix() needs 6 components")
	}
	vals := make([]float64, 6)
	for i := range vals {
		v, err := argFloat(args, i)
		if err != nil {
			return style.TransformFunc{}, err
		}
		vals[i] = v
	}
	return style.TransformFunc{
		Kind: style.TransformKindMatrix,
		Matrix: geom.Affine{A: vals[0], B: vals[1], C: vals[2], D: vals[3], E: vals[4], F: vals[5]},
	}, nil
}

func argLength(args [][]token, idx int) (geom.Length, error) {
	if idx >= len(args) || len(args[idx]) == 0 {
		return geom.Px(0), nil
	}
	return ParseLength(joinTokens(args[idx]))
}

func argAngle(args [][]token, idx int) (float64, error) {
	if idx >= len(args) || len(args[idx]) == 0 {
		return 0, nil
	}
	a, err := ParseAngle(joinTokens(args[idx]))
	if err != nil {
		return 0, err
	}
	return a.Radians(), nil
}

func argFloat(args [][]token, idx int) (float64, error) {
	if idx >= len(args) || len(args[idx]) == 0 {
		return 0, fmt.Errorf("cssvalue: missing numeric argument")
	}
	return parseFloat(joinTokens(args[idx]))
}

// Degrees is exported for tests that want to sanity-check ParseAngle
// against a human-readable degree value.
func Degrees(radians float64) float64 { return radians * 180 / math.Pi }
