package inline

import (
	"rasterdom/common"
	"rasterdom/compositor"
	"rasterdom/geom"
	"rasterdom/paint/text"
)

// PaintAtomic draws one inline-atomic box (an inline-block/inline-flex/image
// subtree), injected so inline never depends on layouttree/render's node
// types.
type PaintAtomic func(item *AtomicItem, origin geom.Point)

// Draw paints every line of result onto canvas, origin in canvas-local
// pixels, following spec.md §4.10's draw order: per line, each run's text
// shadows, underline/overline and glyphs, then the inline-atomic children
// positioned by their line's vertical-align, then each run's line-through.
func Draw(canvas *compositor.Canvas, result Result, origin geom.Point, fonts FontContext, rendering common.ImageRendering, transform geom.Affine, clip *compositor.Canvas, paintAtomic PaintAtomic) {
	y := origin.Y
	for _, line := range result.Lines {
		for _, r := range line.Runs {
			lineOrigin := geom.Point{X: origin.X + float32(r.X), Y: float32(y) + float32(line.Baseline)}
			src := fonts.Glyphs(r.Run.FontFamily, r.Run.FontWeight)
			txtLine := text.Line{Glyphs: r.Glyphs, Baseline: 0, X0: 0, X1: lineRunWidth(r)}
			sized := r.Run.Sized
			sized.DecorationLine.LineThrough = false
			text.PaintGlyphs(canvas, txtLine, lineOrigin, src, sized, rendering, transform, clip)
		}
		for _, a := range line.Atomics {
			if paintAtomic != nil {
				paintAtomic(a.Item, geom.Point{X: origin.X + float32(a.X), Y: float32(y) + float32(a.Y)})
			}
		}
		for _, r := range line.Runs {
			if sfs := r.Run.Sized; sfs.DecorationLine.LineThrough {
				lineOrigin := geom.Point{X: origin.X + float32(r.X), Y: float32(y) + float32(line.Baseline)}
				txtLine := text.Line{Glyphs: r.Glyphs, Baseline: 0, X0: 0, X1: lineRunWidth(r)}
				text.DrawLineThrough(canvas, txtLine, lineOrigin, sfs.FontSizePx, sfs.DecorationThicknessPx, sfs.DecorationColor, transform)
			}
		}
		y += line.Height
	}
}

func drawDecorations(canvas *compositor.Canvas, r PositionedGlyphRun, origin geom.Point, src text.GlyphSource, transform geom.Affine) {
	dec := r.Run.Sized.DecorationLine
	if !dec.Underline && !dec.Overline && !dec.LineThrough {
		return
	}
	txtLine := text.Line{Glyphs: r.Glyphs, Baseline: 0, X0: 0, X1: lineRunWidth(r)}
	sizePx := r.Run.Sized.FontSizePx
	thickness := r.Run.Sized.DecorationThicknessPx
	color := r.Run.Sized.DecorationColor
	if dec.Underline {
		text.DrawUnderline(canvas, txtLine, origin, src, sizePx, thickness, color, r.Run.Sized.DecorationSkipInk, transform)
	}
	if dec.Overline {
		text.DrawOverline(canvas, txtLine, origin, sizePx, thickness, color, transform)
	}
	if dec.LineThrough {
		text.DrawLineThrough(canvas, txtLine, origin, sizePx, thickness, color, transform)
	}
}
