// Package text is TextPaint (spec.md §4.10 draw stage): glyph drawing
// (bitmap + outline), text-shadow, text-stroke, text-decoration with
// skip-ink, and `background-clip: text` sampling.
package text

import (
	"image"

	"rasterdom/geom"
	"rasterdom/mask"
)

// GlyphSource is the abstract FontContext collaborator TextPaint draws
// through (spec.md §1: font loading/resolution is "an abstract FontContext
// providing shaping and glyph bitmaps/outlines"). A glyph resolves to
// exactly one of an outline path or a pre-rendered bitmap (color/emoji
// glyphs use the latter); Outline returning false means "ask Bitmap
// instead".
type GlyphSource interface {
	Outline(gid uint32, sizePx float64) (mask.Path, bool)
	Bitmap(gid uint32, sizePx float64) (img image.Image, origin geom.Point, ok bool)
}

// PositionedGlyph is one shaped glyph already placed at its pen position in
// the line's local coordinates: x grows right, y is 0 at the baseline and
// increases downward, matching the canvas's own convention so a glyph's Pen
// is a plain translation away from its drawn position.
type PositionedGlyph struct {
	GID uint32
	Pen geom.Point
}

// Line is one visual line of shaped glyphs handed to PaintGlyphs: X0/X1 are
// the horizontal extent text-decoration lines span, independent of any
// individual glyph's ink.
type Line struct {
	Glyphs   []PositionedGlyph
	Baseline float64
	X0, X1   float64
}
