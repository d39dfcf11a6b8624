// Package tw is the Tailwind-like utility-class parser: parse_utility
// turns one whitespace-separated utility token into a style.Style patch,
// with breakpoint/important cascade-layer bucketing (spec.md §4.1).
package tw

// Breakpoint is the Tailwind-like breakpoint keyword set (spec.md §4.1):
// thresholds are expressed as rem, scaled by the root font-size and DPR to
// device pixels for the "matches" comparison.
// ENUM(none, sm, md, lg, xl, 2xl)
type Breakpoint int

// breakpointRem holds each breakpoint's threshold in rem units (Tailwind's
// own defaults: 640/768/1024/1280/1536 px at a 16px root font size, i.e.
// 40/48/64/80/96 rem).
var breakpointRem = map[Breakpoint]float64{
	BreakpointSm:     40,
	BreakpointMd:     48,
	BreakpointLg:     64,
	BreakpointXl:     80,
	Breakpoint2xl:    96,
}

// Matches reports whether the viewport (in CSS px, before DPR) is at
// least this breakpoint's threshold, the threshold itself scaled by root
// font-size and device pixel ratio (spec.md §4.1: "expressed as
// rem×root-font-size×DPR... breakpoint matches when viewport width in
// device pixels >= its threshold").
func (b Breakpoint) Matches(viewportWidthCSSPx, rootFontSizePx, dpr float64) bool {
	if b == BreakpointNone {
		return true
	}
	thresholdPx := breakpointRem[b] * rootFontSizePx * dpr
	devicePx := viewportWidthCSSPx * dpr
	return devicePx >= thresholdPx
}

// Specificity orders breakpoints for the "more specific media query wins"
// tiebreak within the important/non-important buckets (spec.md §4.1):
// larger thresholds are considered more specific.
func (b Breakpoint) Specificity() float64 {
	if b == BreakpointNone {
		return 0
	}
	return breakpointRem[b]
}
