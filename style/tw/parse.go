package tw

import (
	"strconv"
	"strings"

	"rasterdom/cssvalue"
	"rasterdom/geom"
	"rasterdom/style"
)

// Patch is the result of parsing one utility token: a Style with only the
// utility's own properties set to Value, plus the token's cascade
// position (spec.md §4.1 parse_utility / cascade-layer ordering).
type Patch struct {
	Style      style.Style
	Important  bool
	Breakpoint Breakpoint
	Raw        string
}

// spacingScale is Tailwind's default spacing scale (n -> rem), used by
// p-*/m-*/gap-* utilities; 'px' is the literal one-pixel step.
var spacingScale = map[string]float64{
	"0": 0, "px": -1, "0.5": 0.125, "1": 0.25, "1.5": 0.375, "2": 0.5,
	"2.5": 0.625, "3": 0.75, "3.5": 0.875, "4": 1, "5": 1.25, "6": 1.5,
	"8": 2, "10": 2.5, "12": 3, "16": 4, "20": 5, "24": 6, "32": 8,
}

func spacingLength(token string) (geom.Length, bool) {
	if v, ok := spacingScale[token]; ok {
		if v == -1 {
			return geom.Px(1), true
		}
		return geom.Length{Unit: geom.UnitRem, Value: v}, true
	}
	if strings.HasSuffix(token, "%") {
		if n, err := strconv.ParseFloat(strings.TrimSuffix(token, "%"), 64); err == nil {
			return geom.Percent(n), true
		}
	}
	return geom.Length{}, false
}

// ParseToken implements parse_utility: an unrecognised token contributes
// an empty Style patch rather than an error, matching spec.md §4.1's
// "an unrecognised token contributes nothing".
func ParseToken(raw string) Patch {
	p := Patch{Raw: raw}
	t := raw

	important := false
	if strings.HasPrefix(t, "!") {
		important = true
		t = t[1:]
	} else if strings.HasSuffix(t, "!") {
		important = true
		t = t[:len(t)-1]
	}
	p.Important = important

	if idx := strings.Index(t, ":"); idx >= 0 {
		if bp, err := ParseBreakpoint(t[:idx]); err == nil && bp != BreakpointNone {
			p.Breakpoint = bp
			t = t[idx+1:]
		}
	}

	applyUtility(&p.Style, t)
	return p
}

// applyUtility dispatches one bare utility class (prefix stripped of
// breakpoint/important decoration) to the property it sets. This is a
// representative slice of Tailwind's utility surface — enough to drive
// every property category StyleModel exposes — not the full class list.
func applyUtility(s *style.Style, t string) {
	switch {
	case t == "flex":
		s.Display = style.ValueOf(style.DisplayFlex)
	case t == "grid":
		s.Display = style.ValueOf(style.DisplayGrid)
	case t == "block":
		s.Display = style.ValueOf(style.DisplayBlock)
	case t == "inline":
		s.Display = style.ValueOf(style.DisplayInline)
	case t == "inline-block":
		s.Display = style.ValueOf(style.DisplayInlineBlock)
	case t == "hidden":
		s.Display = style.ValueOf(style.DisplayNone)
	case t == "relative":
		s.Position = style.ValueOf(style.PositionRelative)
	case t == "absolute":
		s.Position = style.ValueOf(style.PositionAbsolute)
	case t == "fixed":
		s.Position = style.ValueOf(style.PositionFixed)
	case t == "static":
		s.Position = style.ValueOf(style.PositionStatic)

	case t == "flex-row":
		s.FlexDirection = style.ValueOf(style.FlexDirectionRow)
	case t == "flex-col":
		s.FlexDirection = style.ValueOf(style.FlexDirectionColumn)
	case t == "flex-wrap":
		s.FlexWrap = style.ValueOf(style.FlexWrapWrap)
	case t == "flex-nowrap":
		s.FlexWrap = style.ValueOf(style.FlexWrapNowrap)
	case t == "items-center":
		s.AlignItems = style.ValueOf(style.AlignItemsCenter)
	case t == "items-start":
		s.AlignItems = style.ValueOf(style.AlignItemsStart)
	case t == "items-end":
		s.AlignItems = style.ValueOf(style.AlignItemsEnd)
	case t == "items-stretch":
		s.AlignItems = style.ValueOf(style.AlignItemsStretch)
	case t == "justify-center":
		s.JustifyContent = style.ValueOf(style.JustifyContentCenter)
	case t == "justify-between":
		s.JustifyContent = style.ValueOf(style.JustifyContentSpaceBetween)
	case t == "justify-around":
		s.JustifyContent = style.ValueOf(style.JustifyContentSpaceAround)
	case t == "justify-start":
		s.JustifyContent = style.ValueOf(style.JustifyContentStart)
	case t == "justify-end":
		s.JustifyContent = style.ValueOf(style.JustifyContentEnd)

	case t == "rounded":
		r := style.CornerRadius{X: geom.Length{Unit: geom.UnitRem, Value: 0.25}, Y: geom.Length{Unit: geom.UnitRem, Value: 0.25}}
		s.BorderRadius = style.ValueOf(r)
	case t == "rounded-full":
		r := style.CornerRadius{X: geom.Percent(50), Y: geom.Percent(50)}
		s.BorderRadius = style.ValueOf(r)
	case t == "border":
		s.Border = style.ValueOf(style.BorderSide{Width: geom.Px(1), Style: style.BorderStyleKindSolid, Color: geom.Color{R: 229, G: 231, B: 235, A: 255}})
	case t == "italic", t == "not-italic":
		// no italic property modeled; accepted but inert.

	case strings.HasPrefix(t, "bg-"):
		applyColorUtility(s, strings.TrimPrefix(t, "bg-"), bgColor)
	case strings.HasPrefix(t, "text-") && isColorToken(strings.TrimPrefix(t, "text-")):
		applyColorUtility(s, strings.TrimPrefix(t, "text-"), textColor)
	case strings.HasPrefix(t, "text-"):
		applyTextSizeUtility(s, strings.TrimPrefix(t, "text-"))
	case strings.HasPrefix(t, "font-"):
		applyFontWeightUtility(s, strings.TrimPrefix(t, "font-"))
	case strings.HasPrefix(t, "opacity-"):
		if n, err := strconv.ParseFloat(strings.TrimPrefix(t, "opacity-"), 64); err == nil {
			s.Opacity = style.ValueOf(n / 100)
		}
	case strings.HasPrefix(t, "w-"):
		if l, ok := spacingLength(strings.TrimPrefix(t, "w-")); ok {
			s.Width = style.ValueOf(l)
		}
	case strings.HasPrefix(t, "h-"):
		if l, ok := spacingLength(strings.TrimPrefix(t, "h-")); ok {
			s.Height = style.ValueOf(l)
		}
	case strings.HasPrefix(t, "p-"):
		if l, ok := spacingLength(strings.TrimPrefix(t, "p-")); ok {
			s.Padding = style.ValueOf(geom.UniformSides(l))
		}
	case strings.HasPrefix(t, "px-"):
		if l, ok := spacingLength(strings.TrimPrefix(t, "px-")); ok {
			s.PaddingLeft, s.PaddingRight = style.ValueOf(l), style.ValueOf(l)
		}
	case strings.HasPrefix(t, "py-"):
		if l, ok := spacingLength(strings.TrimPrefix(t, "py-")); ok {
			s.PaddingTop, s.PaddingBottom = style.ValueOf(l), style.ValueOf(l)
		}
	case strings.HasPrefix(t, "m-"):
		if l, ok := spacingLength(strings.TrimPrefix(t, "m-")); ok {
			s.Margin = style.ValueOf(geom.UniformSides(l))
		}
	case strings.HasPrefix(t, "mx-"):
		if l, ok := spacingLength(strings.TrimPrefix(t, "mx-")); ok {
			s.MarginLeft, s.MarginRight = style.ValueOf(l), style.ValueOf(l)
		}
	case strings.HasPrefix(t, "my-"):
		if l, ok := spacingLength(strings.TrimPrefix(t, "my-")); ok {
			s.MarginTop, s.MarginBottom = style.ValueOf(l), style.ValueOf(l)
		}
	case strings.HasPrefix(t, "gap-"):
		if l, ok := spacingLength(strings.TrimPrefix(t, "gap-")); ok {
			s.Gap = style.ValueOf(geom.SpacePair[geom.Length]{X: l, Y: l})
		}
	case strings.HasPrefix(t, "rounded-"):
		if l, ok := spacingLength(strings.TrimPrefix(t, "rounded-")); ok {
			r := style.CornerRadius{X: l, Y: l}
			s.BorderRadius = style.ValueOf(r)
		}
	case strings.HasPrefix(t, "border-"):
		applyBorderWidthUtility(s, strings.TrimPrefix(t, "border-"))
	case strings.HasPrefix(t, "bg-gradient") || strings.HasPrefix(t, "from-") || strings.HasPrefix(t, "to-"):
		// gradient utility sugar not modeled; inert like italic.
	}
}

type colorTarget int

const (
	bgColor colorTarget = iota
	textColor
)

// tailwindPalette maps a small representative slice of Tailwind color
// tokens (color-shade) to an RGB value; this is the utility layer's own
// color table, distinct from cssvalue's CSS named-color keywords.
var tailwindPalette = map[string]geom.Color{
	"red-500":    {R: 239, G: 68, B: 68, A: 255},
	"red-600":    {R: 220, G: 38, B: 38, A: 255},
	"blue-500":   {R: 59, G: 130, B: 246, A: 255},
	"blue-600":   {R: 37, G: 99, B: 235, A: 255},
	"green-500":  {R: 34, G: 197, B: 94, A: 255},
	"gray-100":   {R: 243, G: 244, B: 246, A: 255},
	"gray-500":   {R: 107, G: 114, B: 128, A: 255},
	"gray-900":   {R: 17, G: 24, B: 39, A: 255},
	"white":      {R: 255, G: 255, B: 255, A: 255},
	"black":      {A: 255},
	"transparent": {},
}

func isColorToken(t string) bool {
	if _, ok := tailwindPalette[t]; ok {
		return true
	}
	if strings.HasPrefix(t, "[") {
		return true
	}
	_, err := cssvalue.ParseColor(t)
	return err == nil
}

func applyColorUtility(s *style.Style, token string, target colorTarget) {
	var c geom.Color
	var ok bool
	if c, ok = tailwindPalette[token]; !ok {
		if strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
			if parsed, err := cssvalue.ParseColor(strings.Trim(token, "[]")); err == nil {
				c, ok = parsed, true
			}
		} else if parsed, err := cssvalue.ParseColor(token); err == nil {
			c, ok = parsed, true
		}
	}
	if !ok {
		return
	}
	switch target {
	case bgColor:
		s.BackgroundColor = style.ValueOf(c)
	case textColor:
		s.Color = style.ValueOf(c)
	}
}

var textSizeScale = map[string]float64{
	"xs": 0.75, "sm": 0.875, "base": 1, "lg": 1.125, "xl": 1.25,
	"2xl": 1.5, "3xl": 1.875, "4xl": 2.25, "5xl": 3,
}

func applyTextSizeUtility(s *style.Style, token string) {
	if v, ok := textSizeScale[token]; ok {
		s.FontSize = style.ValueOf(geom.Length{Unit: geom.UnitRem, Value: v})
		return
	}
	switch token {
	case "left":
		s.TextAlign = style.ValueOf(style.TextAlignLeft)
	case "center":
		s.TextAlign = style.ValueOf(style.TextAlignCenter)
	case "right":
		s.TextAlign = style.ValueOf(style.TextAlignRight)
	case "justify":
		s.TextAlign = style.ValueOf(style.TextAlignJustify)
	}
}

var fontWeightScale = map[string]int{
	"thin": 100, "light": 300, "normal": 400, "medium": 500,
	"semibold": 600, "bold": 700, "extrabold": 800, "black": 900,
}

func applyFontWeightUtility(s *style.Style, token string) {
	if v, ok := fontWeightScale[token]; ok {
		s.FontWeight = style.ValueOf(v)
	}
}

func applyBorderWidthUtility(s *style.Style, token string) {
	n, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return
	}
	w := geom.Px(n)
	s.BorderTopWidth = style.ValueOf(w)
	s.BorderRightWidth = style.ValueOf(w)
	s.BorderBottomWidth = style.ValueOf(w)
	s.BorderLeftWidth = style.ValueOf(w)
	s.BorderTopStyle = style.ValueOf(style.BorderStyleKindSolid)
	s.BorderRightStyle = style.ValueOf(style.BorderStyleKindSolid)
	s.BorderBottomStyle = style.ValueOf(style.BorderStyleKindSolid)
	s.BorderLeftStyle = style.ValueOf(style.BorderStyleKindSolid)
}
