// Package inline is the inline formatting context spec.md §4.10 describes:
// item collection, line-breaking (including text-wrap-style balance/pretty),
// line-clamp + ellipsis, vertical-align positioning, and the draw stage that
// hands shaped lines to paint/text.PaintGlyphs. It has no dependency on
// layouttree — callers collect Items from their own tree and hand back
// plain values, the same way paint/background and paint/imagefit take a
// caller-supplied ImageSource rather than a concrete node type.
package inline

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"rasterdom/geom"
	"rasterdom/paint/text"
	"rasterdom/style"
)

// ShapedGlyph is one shaping result: a glyph id, its advance in the run's
// writing direction, and the byte offset into the run it was shaped from
// (used to re-split a shaped run across a line break).
type ShapedGlyph struct {
	GID     uint32
	Advance float64
	Cluster int
}

// Metrics is the font metrics FontContext reports for a family/weight/size
// combination, used for line-height and baseline placement.
type Metrics struct {
	AscentPx  float64
	DescentPx float64
	LineGapPx float64
}

// FontContext is the abstract shaping/metrics/glyph-source collaborator
// (spec.md §1: "font loading/resolution is provided by an abstract
// FontContext"). layouttree.GlobalContext holds one of these; inline never
// constructs or owns a concrete implementation.
type FontContext interface {
	Shape(run string, family style.FontFamilyList, weight int, sizePx float64) []ShapedGlyph
	Metrics(family style.FontFamilyList, weight int, sizePx float64) Metrics
	Glyphs(family style.FontFamilyList, weight int) text.GlyphSource
}

// TextRun is one inline text item: a run of text sharing a single resolved
// style, the unit layouttree's collectInlineItems produces per text node.
type TextRun struct {
	Text       string
	FontFamily style.FontFamilyList
	FontWeight int
	Sized      style.SizedFontStyle
	Color      geom.Color
	WrapMode   style.TextWrapMode
	Transform  style.TextTransform
}

// AtomicItem is an inline-level box laid out as a single unbreakable unit
// (inline-block, inline-flex, image) — its content is measured by the
// caller, not by inline.
type AtomicItem struct {
	ID            int
	Size          geom.Size
	Baseline      float64 // distance from the box's top to its baseline
	VerticalAlign style.VerticalAlign
}

// Item is one inline-level box: exactly one of Text or Atomic is set.
type Item struct {
	Text   *TextRun
	Atomic *AtomicItem
}

// PositionedGlyphRun is a shaped text run placed on a line, in the line's
// local coordinate space (X relative to the line's left edge).
type PositionedGlyphRun struct {
	Run    *TextRun
	X      float64
	Glyphs []text.PositionedGlyph
}

// PositionedAtomic is an atomic item placed on a line.
type PositionedAtomic struct {
	Item *AtomicItem
	X, Y float64 // Y relative to the line's top
}

// Line is one laid-out visual line.
type Line struct {
	Runs     []PositionedGlyphRun
	Atomics  []PositionedAtomic
	Baseline float64 // from the line's top
	Height   float64
	Width    float64 // ink extent used, for text-align
}

// Result is the full laid-out paragraph Layout produces.
type Result struct {
	Lines  []Line
	Height float64
	// Truncated reports whether line-clamp cut content short.
	Truncated bool
}

// Options carries the per-paragraph layout policy (spec.md §4.10).
type Options struct {
	MaxWidth      float64
	Align         style.TextAlign
	WrapStyle     style.TextWrapStyle
	Overflow      style.TextOverflow
	LineClamp     int
	HasLineClamp  bool
}

// ApplyTextTransform rewrites run text per the CSS text-transform value,
// using golang.org/x/text/cases for locale-aware casing rather than
// strings.ToUpper/ToLower (those mishandle non-ASCII casing rules the
// cases package gets right, e.g. Turkish dotless i variants when a locale
// is supplied — this uses the root/undefined locale since node style
// carries no lang tag yet).
func ApplyTextTransform(s string, t style.TextTransform) string {
	switch t {
	case style.TextTransformUppercase:
		return cases.Upper(language.Und).String(s)
	case style.TextTransformLowercase:
		return cases.Lower(language.Und).String(s)
	case style.TextTransformCapitalize:
		return cases.Title(language.Und).String(s)
	default:
		return s
	}
}

// CollapseWhiteSpace implements the `white-space-collapse` value domain
// (spec.md GLOSSARY): preserve keeps raw text, collapse folds runs of
// whitespace (including newlines) to a single space, preserve-spaces keeps
// space runs but still folds newlines, preserve-breaks keeps newlines but
// folds space runs.
func CollapseWhiteSpace(s string, mode style.WhiteSpaceCollapse) string {
	switch mode {
	case style.WhiteSpaceCollapsePreserve:
		return s
	case style.WhiteSpaceCollapsePreserveSpaces:
		return strings.ReplaceAll(s, "\n", " ")
	case style.WhiteSpaceCollapsePreserveBreaks:
		return collapseRuns(s, true)
	default: // collapse
		return collapseRuns(strings.ReplaceAll(s, "\n", " "), false)
	}
}

func collapseRuns(s string, keepNewlines bool) string {
	var b strings.Builder
	inRun := false
	for _, r := range s {
		isSpace := unicode.IsSpace(r) && !(keepNewlines && r == '\n')
		if isSpace {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}
