package cssvalue

import (
	"strings"

	cssscan "github.com/tdewolff/parse/v2/css"

	"rasterdom/geom"
	"rasterdom/style"
)

// ParseShadowList parses a comma-separated `box-shadow`/`text-shadow`
// value into one or more layers (spec.md §4.4/§4.10). Each layer is
// `[inset] <offset-x> <offset-y> [<blur>] [<spread>] [<color>]`, the
// `inset` keyword and `<spread>` only being valid for box-shadow (an
// absent `<spread>` simply resolves to zero for text-shadow callers).
func ParseShadowList(value string) ([]style.ShadowValue, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "none") {
		return nil, nil
	}
	toks, err := tokenizeValue(value)
	if err != nil {
		return nil, err
	}
	groups := splitTopLevelCommas(toks)
	var shadows []style.ShadowValue
	for _, g := range groups {
		sh, err := parseOneShadow(g)
		if err != nil {
			return nil, err
		}
		shadows = append(shadows, sh)
	}
	return shadows, nil
}

func parseOneShadow(toks []token) (style.ShadowValue, error) {
	var sh style.ShadowValue
	var lengths []token
	var colorToks []token
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if isIdent(t, "inset") {
			sh.Inset = true
			continue
		}
		if t.Type == cssscan.NumberToken || t.Type == cssscan.DimensionToken || t.Type == cssscan.PercentageToken {
			lengths = append(lengths, t)
			continue
		}
		// Remaining tokens (ident/hash/function) form the color.
		colorToks = append(colorToks, toks[i:]...)
		break
	}
	getLen := func(idx int) geom.Length {
		if idx >= len(lengths) {
			return geom.Px(0)
		}
		l, err := ParseLength(lengths[idx].Data)
		if err != nil {
			return geom.Px(0)
		}
		return l
	}
	sh.OffsetX = getLen(0)
	sh.OffsetY = getLen(1)
	sh.Blur = getLen(2)
	sh.Spread = getLen(3)
	sh.Color = geom.Color{A: 255}
	if len(colorToks) > 0 {
		c, err := ParseColor(joinTokens(colorToks))
		if err == nil {
			sh.Color = c
		}
	}
	return sh, nil
}
