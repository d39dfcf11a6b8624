package background

import (
	"image"
	"math"

	"rasterdom/common"
	"rasterdom/compositor"
	"rasterdom/geom"
	"rasterdom/gradient"
	"rasterdom/mask"
	"rasterdom/style"
)

// CornerRadii is the four resolved corner (rx, ry) pairs a clip area
// needs, already inset for the clip kind in question.
type CornerRadii struct {
	TL, TR, BR, BL geom.Size
}

// ClipArea resolves the target area for a background-clip value
// (spec.md §4.7): border-box is the full box; padding-box insets by the
// border widths (radii inset by the averaged border width); content-box
// further insets by padding; border-area is the full area, clipped by the
// outer rounded rect (so its rect/radii equal border-box's).
func ClipArea(clip style.BackgroundClip, borderBox geom.Rect, border, padding geom.EdgeSizes, radii CornerRadii) (geom.Rect, CornerRadii) {
	switch clip {
	case style.BackgroundClipPaddingBox, style.BackgroundClipContentBox:
		rect := borderBox.Inset(border)
		avg := (border.Top + border.Right + border.Bottom + border.Left) / 4
		r := insetRadii(radii, avg)
		if clip == style.BackgroundClipContentBox {
			rect = rect.Inset(padding)
			r = insetRadii(r, 0) // padding doesn't further shrink radii per spec.md §4.7
		}
		return rect, r
	default: // border-box, border-area, text
		return borderBox, radii
	}
}

func insetRadii(r CornerRadii, by float32) CornerRadii {
	shrink := func(s geom.Size) geom.Size {
		w, h := s.Width-by, s.Height-by
		if w < 0 {
			w = 0
		}
		if h < 0 {
			h = 0
		}
		return geom.Size{Width: w, Height: h}
	}
	return CornerRadii{TL: shrink(r.TL), TR: shrink(r.TR), BR: shrink(r.BR), BL: shrink(r.BL)}
}

// ImageSource provides an already-decoded raster image and its intrinsic
// size for a `background-image: url(...)` layer.
type ImageSource interface {
	Image() image.Image
	IntrinsicSize() geom.Size
}

// PaintColor fills area (rounded by radii) with the resolved background
// color, the degenerate "zero layers" case of spec.md §4.7.
func PaintColor(canvas *compositor.Canvas, area geom.Rect, radii CornerRadii, color geom.Color) {
	if color.Invisible() {
		return
	}
	avg := averageRadius(radii)
	compositor.FillColorWithRadius(canvas, area, avg, geom.Identity, color, style.BlendModeNormal)
}

func averageRadius(r CornerRadii) geom.Size {
	return geom.Size{
		Width:  (r.TL.Width + r.TR.Width + r.BR.Width + r.BL.Width) / 4,
		Height: (r.TL.Height + r.TR.Height + r.BR.Height + r.BL.Height) / 4,
	}
}

// PaintLayer renders and composites one background layer into area,
// clipped by a rounded-rect mask derived from radii (spec.md §4.7 steps
// 1-4). images looks up an ImageSource by the layer's ImageRef.
// parentTransform only applies to the flat-color fast path; gradient and
// image tiles are drawn axis-aligned (a node-level transform rotating or
// skewing a tiled background is out of scope here).
func PaintLayer(canvas *compositor.Canvas, layer style.BackgroundLayer, area geom.Rect, radii CornerRadii, sizing geom.Sizing, rendering common.ImageRendering, images func(ref string) ImageSource, parentTransform geom.Affine) {
	if layer.Image.Kind == style.BackgroundImageKindNone {
		return
	}

	bounds := image.Rect(0, 0, canvas.Width, canvas.Height)
	clipPath := mask.RoundedRect(area, radii.TL, radii.TR, radii.BR, radii.BL)
	clipBuf := mask.Render(clipPath, bounds, nil, style.FillRuleNonzero)
	defer mask.Release(clipBuf)

	var intrinsic geom.Size
	var src ImageSource
	if layer.Image.Kind == style.BackgroundImageKindImage && images != nil {
		src = images(layer.Image.ImageRef)
		if src != nil {
			intrinsic = src.IntrinsicSize()
		}
	}
	areaSize := geom.Size{Width: area.Width, Height: area.Height}
	tile := TileSize(layer, areaSize, intrinsic, sizing)
	if tile.Width <= 0 || tile.Height <= 0 {
		return
	}

	originX := layer.PositionX.ToPx(sizing, float64(area.Width-tile.Width))
	originY := layer.PositionY.ToPx(sizing, float64(area.Height-tile.Height))

	tw, th := float64(tile.Width), float64(tile.Height)
	if layer.RepeatX == style.BackgroundRepeatKeywordRound {
		tw = RoundedTileDim(float64(area.Width), tw)
	}
	if layer.RepeatY == style.BackgroundRepeatKeywordRound {
		th = RoundedTileDim(float64(area.Height), th)
	}

	xs := TilePositions(layer.RepeatX, originX, float64(area.Width), tw)
	ys := TilePositions(layer.RepeatY, originY, float64(area.Height), th)

	switch layer.Image.Kind {
	case style.BackgroundImageKindColor:
		// A flat-colored "gradient" tile: fill the clipped area directly,
		// repeat semantics don't matter for a uniform fill.
		c := layer.Image.Color
		avg := averageRadius(radii)
		compositor.FillColorWithRadius(canvas, area, avg, parentTransform, c, layer.BlendMode)
	case style.BackgroundImageKindGradient:
		paintGradientTiles(canvas, layer.Image.Gradient, area, xs, ys, tw, th, sizing, clipBuf, layer.BlendMode)
	case style.BackgroundImageKindImage:
		if src == nil {
			return
		}
		paintImageTiles(canvas, src, area, xs, ys, tw, th, clipBuf, layer.BlendMode, rendering)
	}
}

func paintGradientTiles(canvas *compositor.Canvas, g style.GradientValue, area geom.Rect, xs, ys []float64, tw, th float64, sizing geom.Sizing, clipBuf mask.Buffer, mode style.BlendMode) {
	for _, ty := range ys {
		for _, tx := range xs {
			tileRect := geom.Rect{X: area.X + float32(tx), Y: area.Y + float32(ty), Width: float32(tw), Height: float32(th)}
			paintOneGradientTile(canvas, g, tileRect, area, sizing, clipBuf, mode)
		}
	}
}

func paintOneGradientTile(canvas *compositor.Canvas, g style.GradientValue, tileRect, clipArea geom.Rect, sizing geom.Sizing, clipBuf mask.Buffer, mode style.BlendMode) {
	var axis gradient.Axis
	switch g.Kind {
	case style.GradientKindRadial:
		cx := tileRect.X + float32(g.Center.X.ToPx(sizing, float64(tileRect.Width)))
		cy := tileRect.Y + float32(g.Center.Y.ToPx(sizing, float64(tileRect.Height)))
		rx, ry := gradient.RadialGeometry(tileRect, g.Shape, g.SizeKeyword, g.HasSize, float64(cx), float64(cy))
		axis = gradient.RadialAxis(float64(cx), float64(cy), rx, ry)
	case style.GradientKindConic:
		cx := tileRect.X + tileRect.Width/2
		cy := tileRect.Y + tileRect.Height/2
		axis = gradient.ConicAxis(float64(cx), float64(cy), g.FromRadians)
	default:
		axis = gradient.LinearAxis(tileRect, g.AngleRadians)
	}
	lut := gradient.BuildLUT(g, sizing, axis.Length)

	minX, minY := int(math.Max(float64(tileRect.X), float64(clipArea.X)))+0, int(math.Max(float64(tileRect.Y), float64(clipArea.Y)))
	maxX, maxY := int(math.Min(float64(tileRect.Right()), float64(clipArea.Right())))+1, int(math.Min(float64(tileRect.Bottom()), float64(clipArea.Bottom())))+1
	for y := minY; y < maxY && y < canvas.Height; y++ {
		for x := minX; x < maxX && x < canvas.Width; x++ {
			if x < 0 || y < 0 {
				continue
			}
			ma := clipBuf.Alpha.AlphaAt(x, y).A
			if ma == 0 {
				continue
			}
			pos := axis.Project(float64(x)+0.5, float64(y)+0.5)
			col := lut.Sample(pos, axis.Length)
			col.A = uint8(uint32(col.A) * uint32(ma) / 255)
			canvas.Pix[y*canvas.Width+x] = compositor.Blend(canvas.Pix[y*canvas.Width+x], col, mode)
		}
	}
}

func paintImageTiles(canvas *compositor.Canvas, src ImageSource, area geom.Rect, xs, ys []float64, tw, th float64, clipBuf mask.Buffer, mode style.BlendMode, rendering common.ImageRendering) {
	intrinsic := src.IntrinsicSize()
	if intrinsic.Width <= 0 || intrinsic.Height <= 0 {
		return
	}
	sampler := compositor.NewSampler(src.Image(), rendering)
	scaleX := float64(intrinsic.Width) / tw
	scaleY := float64(intrinsic.Height) / th
	for _, ty := range ys {
		for _, tx := range xs {
			tileRect := image.Rect(
				int(area.X+float32(tx)), int(area.Y+float32(ty)),
				int(area.X+float32(tx)+float32(tw))+1, int(area.Y+float32(ty)+float32(th))+1,
			)
			ox, oy := area.X+float32(tx), area.Y+float32(ty)
			inv := geom.Affine{A: float64(scaleX), D: float64(scaleY), E: -float64(ox) * scaleX, F: -float64(oy) * scaleY}
			compositor.OverlayImageWithMask(canvas, tileRect, sampler, inv, mask.Buffer{Alpha: clipBuf.Alpha, Placement: clipBuf.Placement}, mode, 1)
		}
	}
}
