package text

import (
	"image"
	"math"

	"rasterdom/common"
	"rasterdom/compositor"
	"rasterdom/geom"
	"rasterdom/mask"
	"rasterdom/style"
)

// fillMask blends color (or, when clip is non-nil, the matching pixel of an
// already-painted `background-clip: text` source canvas) through buf's
// coverage, the same pattern paint/border/paint.go's fillMaskColor uses.
func fillMask(canvas *compositor.Canvas, buf mask.Buffer, color geom.Color, clip *compositor.Canvas, mode style.BlendMode) {
	b := buf.Placement
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if y < 0 || y >= canvas.Height {
			continue
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			if x < 0 || x >= canvas.Width {
				continue
			}
			ma := buf.Alpha.AlphaAt(x, y).A
			if ma == 0 {
				continue
			}
			c := color
			if clip != nil {
				c = clip.Pix[y*clip.Width+x]
			}
			if c.A == 0 {
				continue
			}
			c.A = uint8(uint32(c.A) * uint32(ma) / 255)
			idx := y*canvas.Width + x
			canvas.Pix[idx] = compositor.Blend(canvas.Pix[idx], c, mode)
		}
	}
}

// PaintGlyphs draws one laid-out line of glyphs into canvas, in spec.md
// §4.10's draw-stage order: text shadows, underline/overline, glyph
// content (optionally sampled from a `background-clip: text` source
// instead of a flat fill color), then line-through. Inline-atomic box
// children (stage d) are the caller's responsibility — they are full
// render-node subtrees, not something this glyph-level package paints.
func PaintGlyphs(canvas *compositor.Canvas, line Line, origin geom.Point, src GlyphSource, sfs style.SizedFontStyle, rendering common.ImageRendering, transform geom.Affine, clip *compositor.Canvas) {
	for _, sh := range sfs.TextShadowPx {
		paintTextShadow(canvas, line, origin, src, sfs.FontSizePx, sh, transform)
	}

	dl := sfs.DecorationLine
	if dl.Underline {
		DrawUnderline(canvas, line, origin, src, sfs.FontSizePx, sfs.DecorationThicknessPx, sfs.DecorationColor, sfs.DecorationSkipInk, transform)
	}
	if dl.Overline {
		DrawOverline(canvas, line, origin, sfs.FontSizePx, sfs.DecorationThicknessPx, sfs.DecorationColor, transform)
	}

	paintGlyphRun(canvas, line, origin, src, sfs, rendering, transform, clip)

	if dl.LineThrough {
		DrawLineThrough(canvas, line, origin, sfs.FontSizePx, sfs.DecorationThicknessPx, sfs.DecorationColor, transform)
	}
}

func paintGlyphRun(canvas *compositor.Canvas, line Line, origin geom.Point, src GlyphSource, sfs style.SizedFontStyle, rendering common.ImageRendering, transform geom.Affine, clip *compositor.Canvas) {
	bounds := image.Rect(0, 0, canvas.Width, canvas.Height)
	for _, g := range line.Glyphs {
		glyphTransform := transform.Mul(geom.Translate(float64(origin.X+g.Pen.X), float64(origin.Y+g.Pen.Y)))

		if path, ok := src.Outline(g.GID, sfs.FontSizePx); ok {
			if sfs.StrokeWidthPx > 0 {
				paintGlyphStroke(canvas, path, sfs, glyphTransform, bounds)
			}
			buf := mask.Render(path, bounds, &glyphTransform, style.FillRuleNonzero)
			fillMask(canvas, buf, sfs.FillColor, clip, style.BlendModeNormal)
			mask.Release(buf)
			continue
		}

		if img, bitmapOrigin, ok := src.Bitmap(g.GID, sfs.FontSizePx); ok {
			paintGlyphBitmap(canvas, img, bitmapOrigin, glyphTransform, rendering)
		}
	}
}

// paintGlyphStroke approximates `text-stroke` (`-webkit-text-stroke`) by
// filling the same outline scaled up around its own pen origin before the
// normal fill is drawn over it. A real implementation would offset the
// path's contours by a constant width; without that, a uniform radial
// scale keyed to font-size gives a visually close halo for the common case
// of roughly-centered glyph ink.
func paintGlyphStroke(canvas *compositor.Canvas, path mask.Path, sfs style.SizedFontStyle, glyphTransform geom.Affine, bounds image.Rectangle) {
	scale := 1 + 2*sfs.StrokeWidthPx/math.Max(sfs.FontSizePx, 1)
	strokeTransform := glyphTransform.Mul(geom.Scale(scale, scale))
	buf := mask.Render(path, bounds, &strokeTransform, style.FillRuleNonzero)
	fillMask(canvas, buf, sfs.StrokeColor, nil, style.BlendModeNormal)
	mask.Release(buf)
}

func paintGlyphBitmap(canvas *compositor.Canvas, img image.Image, bitmapOrigin geom.Point, glyphTransform geom.Affine, rendering common.ImageRendering) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w <= 0 || h <= 0 {
		return
	}
	local := glyphTransform.Mul(geom.Translate(-float64(bitmapOrigin.X), -float64(bitmapOrigin.Y)))
	corners := [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := local.Apply(c[0], c[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	placement := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1).Intersect(image.Rect(0, 0, canvas.Width, canvas.Height))
	if placement.Empty() {
		return
	}

	inv, ok := local.Invert()
	if !ok {
		return
	}
	clipPath := mask.RoundedRect(geom.Rect{X: float32(placement.Min.X), Y: float32(placement.Min.Y), Width: float32(placement.Dx()), Height: float32(placement.Dy())}, geom.Size{}, geom.Size{}, geom.Size{}, geom.Size{})
	clipBuf := mask.Render(clipPath, placement, nil, style.FillRuleNonzero)
	defer mask.Release(clipBuf)

	sampler := compositor.NewSampler(img, rendering)
	compositor.OverlayImageWithMask(canvas, placement, sampler, inv, clipBuf, style.BlendModeNormal, 1)
}
