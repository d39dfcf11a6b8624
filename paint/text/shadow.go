package text

import (
	"image"
	"math"

	"rasterdom/blur"
	"rasterdom/compositor"
	"rasterdom/geom"
	"rasterdom/mask"
	"rasterdom/style"
)

// silhouetteSampler adapts a straight-RGBA pixel slice to compositor's
// ImageSampler interface, the same role NewBilinearSampler plays for a
// decoded image.Image, without the image.Image round-trip a blurred
// in-memory silhouette has no reason to pay.
type silhouetteSampler struct {
	pix  []geom.Color
	w, h int
}

func (s silhouetteSampler) At(x, y float64) geom.Color {
	ix, iy := int(math.Floor(x)), int(math.Floor(y))
	if ix < 0 || iy < 0 || ix >= s.w || iy >= s.h {
		return geom.Transparent
	}
	return s.pix[iy*s.w+ix]
}

// paintTextShadow implements draw stage a of spec.md §4.10: rasterize the
// line's combined glyph silhouette, offset by the shadow's vector, blur it
// by BlurPx (apply_blur's Shadow kind, so the same radius-to-sigma halving
// box/drop-shadow uses), then composite it under the node's transform
// before the real glyphs are drawn on top. CSS text-shadow has no `inset`
// keyword despite ResolvedShadow carrying one for the box-shadow grammar it
// shares; Inset is ignored here deliberately.
func paintTextShadow(canvas *compositor.Canvas, line Line, origin geom.Point, src GlyphSource, sizePx float64, shadow style.ResolvedShadow, transform geom.Affine) {
	if shadow.Color.Invisible() {
		return
	}

	pad := int(math.Ceil(shadow.BlurPx*3)) + 2
	minX := int(math.Floor(line.X0)) - pad
	maxX := int(math.Ceil(line.X1)) + pad
	minY := int(math.Floor(line.Baseline - sizePx)) - pad
	maxY := int(math.Ceil(line.Baseline + sizePx*0.5)) + pad
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return
	}

	silhouette := make([]geom.Color, w*h)
	bounds := image.Rect(0, 0, w, h)
	local := geom.Translate(float64(-minX), float64(-minY))
	any := false
	for _, g := range line.Glyphs {
		path, ok := src.Outline(g.GID, sizePx)
		if !ok || len(path) == 0 {
			continue
		}
		glyphTransform := local.Mul(geom.Translate(float64(g.Pen.X), float64(g.Pen.Y)))
		buf := mask.Render(path, bounds, &glyphTransform, style.FillRuleNonzero)
		for y := buf.Placement.Min.Y; y < buf.Placement.Max.Y; y++ {
			for x := buf.Placement.Min.X; x < buf.Placement.Max.X; x++ {
				a := buf.Alpha.AlphaAt(x, y).A
				if a == 0 {
					continue
				}
				any = true
				idx := y*w + x
				c := shadow.Color
				c.A = uint8(uint32(c.A) * uint32(a) / 255)
				silhouette[idx] = compositor.Blend(silhouette[idx], c, style.BlendModeNormal)
			}
		}
		mask.Release(buf)
	}
	if !any {
		return
	}

	shadowBuf := blur.AsImage(silhouette, w, h)
	blur.Apply(shadowBuf, shadow.BlurPx, blur.Shadow)

	localToCanvas := transform.Mul(geom.Translate(
		float64(origin.X)+float64(minX)+shadow.OffsetXPx,
		float64(origin.Y)+float64(minY)+shadow.OffsetYPx,
	))
	corners := [4][2]float64{{0, 0}, {float64(w), 0}, {0, float64(h)}, {float64(w), float64(h)}}
	cMinX, cMinY := math.Inf(1), math.Inf(1)
	cMaxX, cMaxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := localToCanvas.Apply(c[0], c[1])
		cMinX, cMaxX = math.Min(cMinX, x), math.Max(cMaxX, x)
		cMinY, cMaxY = math.Min(cMinY, y), math.Max(cMaxY, y)
	}
	placement := image.Rect(int(math.Floor(cMinX)), int(math.Floor(cMinY)), int(math.Ceil(cMaxX))+1, int(math.Ceil(cMaxY))+1).Intersect(image.Rect(0, 0, canvas.Width, canvas.Height))
	if placement.Empty() {
		return
	}

	inv, ok := localToCanvas.Invert()
	if !ok {
		return
	}
	clipPath := mask.RoundedRect(geom.Rect{X: float32(placement.Min.X), Y: float32(placement.Min.Y), Width: float32(placement.Dx()), Height: float32(placement.Dy())}, geom.Size{}, geom.Size{}, geom.Size{}, geom.Size{})
	clipBuf := mask.Render(clipPath, placement, nil, style.FillRuleNonzero)
	defer mask.Release(clipBuf)

	compositor.OverlayImageWithMask(canvas, placement, silhouetteSampler{silhouette, w, h}, inv, clipBuf, style.BlendModeNormal, 1)
}
