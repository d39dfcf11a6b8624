// Package imagefit is ImagePaint (spec.md §4.9): resolves `object-fit` +
// `object-position` against a content box and paints the resized source
// image through it.
package imagefit

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"rasterdom/common"
	"rasterdom/compositor"
	"rasterdom/geom"
	"rasterdom/mask"
	"rasterdom/style"
)

// ImageSource provides an already-decoded raster image and its intrinsic
// size, mirroring `paint/background`'s collaborator of the same shape.
type ImageSource interface {
	Image() image.Image
	IntrinsicSize() geom.Size
}

// RenderSize resolves the size the whole source image is scaled to for the
// given object-fit, per spec.md §4.9's table.
func RenderSize(fit style.ObjectFit, content, intrinsic geom.Size) geom.Size {
	if intrinsic.Width <= 0 || intrinsic.Height <= 0 {
		return geom.Size{}
	}
	iw, ih := float64(intrinsic.Width), float64(intrinsic.Height)
	cw, ch := float64(content.Width), float64(content.Height)

	scaled := func(scale float64) geom.Size {
		return geom.Size{Width: float32(iw * scale), Height: float32(ih * scale)}
	}

	switch fit {
	case style.ObjectFitFill:
		return content
	case style.ObjectFitContain:
		return scaled(math.Min(cw/iw, ch/ih))
	case style.ObjectFitCover:
		return scaled(math.Max(cw/iw, ch/ih))
	case style.ObjectFitScaleDown:
		contain := scaled(math.Min(cw/iw, ch/ih))
		if iw <= float64(contain.Width) && ih <= float64(contain.Height) {
			return intrinsic
		}
		return contain
	default: // none
		return intrinsic
	}
}

// placeAxis resolves one axis of object-position into the image's offset
// relative to the content box's origin on that axis: when the rendered
// image fits inside the content box, pos (already clamped to [0,
// available]) is the leftover-space offset; when the image is larger, pos
// is how much of the image is cropped off the low side, returned negated so
// the image's drawn origin moves left/up by that amount. Both read as
// spec.md §4.9's single "resolved length clamped to [0, available_space]"
// rule.
func placeAxis(pos, contentDim, renderDim float32) float32 {
	if pos < 0 {
		pos = 0
	}
	avail := contentDim - renderDim
	if avail >= 0 {
		if pos > avail {
			pos = avail
		}
		return pos
	}
	maxCrop := -avail
	if pos > maxCrop {
		pos = maxCrop
	}
	return -pos
}

// Placement is the resolved destination of a fitted image: Size is what the
// whole source image is scaled to, Offset is where its top-left lands
// relative to the content box's origin (negative when object-fit crops).
type Placement struct {
	Size   geom.Size
	Offset geom.Point
}

// Resolve computes the full object-fit + object-position placement for an
// image of the given intrinsic size painted into content.
func Resolve(fit style.ObjectFit, position geom.SpacePair[geom.Length], content geom.Size, intrinsic geom.Size, sizing geom.Sizing) Placement {
	size := RenderSize(fit, content, intrinsic)
	posX := float32(position.X.ToPx(sizing, float64(content.Width)))
	posY := float32(position.Y.ToPx(sizing, float64(content.Height)))
	return Placement{
		Size:   size,
		Offset: geom.Point{X: placeAxis(posX, content.Width, size.Width), Y: placeAxis(posY, content.Height, size.Height)},
	}
}

// resize dispatches to the image-rendering-selected resampling kernel:
// nearest-neighbor for `pixelated`, otherwise a real bicubic/windowed-sinc
// resize (Catmull-Rom for shrinking, Lanczos for enlarging, the usual
// quality/speed split for each direction) rather than the per-pixel
// compositor.NewSampler lookup (bilinear, or nearest for `pixelated`)
// `paint/background` uses for tiled fills.
func resize(img image.Image, w, h int, rendering common.ImageRendering) image.Image {
	if w <= 0 || h <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	if rendering == common.ImageRenderingPixelated {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		return dst
	}
	filter := imaging.Lanczos
	if w*h < b.Dx()*b.Dy() {
		filter = imaging.CatmullRom
	}
	return imaging.Resize(img, w, h, filter)
}

// Paint resolves the fit/position placement and composites the resized
// source image into canvas, clipped to contentBox, under transform.
func Paint(canvas *compositor.Canvas, contentBox geom.Rect, src ImageSource, fit style.ObjectFit, position geom.SpacePair[geom.Length], sizing geom.Sizing, rendering common.ImageRendering, transform geom.Affine) {
	if src == nil {
		return
	}
	intrinsic := src.IntrinsicSize()
	if intrinsic.Width <= 0 || intrinsic.Height <= 0 {
		return
	}
	content := geom.Size{Width: contentBox.Width, Height: contentBox.Height}
	placement := Resolve(fit, position, content, intrinsic, sizing)
	if placement.Size.Width <= 0 || placement.Size.Height <= 0 {
		return
	}

	w, h := int(math.Round(float64(placement.Size.Width))), int(math.Round(float64(placement.Size.Height)))
	resized := resize(src.Image(), w, h, rendering)
	sampler := compositor.NewSampler(resized, rendering)

	bounds := image.Rect(0, 0, canvas.Width, canvas.Height)
	clipPath := mask.RoundedRect(contentBox, geom.Size{}, geom.Size{}, geom.Size{}, geom.Size{})
	clipBuf := mask.Render(clipPath, bounds, &transform, style.FillRuleNonzero)
	defer mask.Release(clipBuf)

	originX := contentBox.X + placement.Offset.X
	originY := contentBox.Y + placement.Offset.Y
	local := transform.Mul(geom.Translate(float64(originX), float64(originY)))
	inv, ok := local.Invert()
	if !ok {
		return
	}
	compositor.OverlayImageWithMask(canvas, clipBuf.Placement, sampler, inv, clipBuf, style.BlendModeNormal, 1)
}
