package mask

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"rasterdom/geom"
	"rasterdom/style"
)

// Buffer is an anti-aliased 8-bit alpha coverage buffer plus the pixel
// rectangle it covers (spec.md §4.4's `(alpha_buffer, placement)` return
// pair).
type Buffer struct {
	Alpha     *image.Alpha
	Placement image.Rectangle
}

// bufferPool is the engine's scratch-buffer pool (spec.md §4.4's
// `mask_memory`): callers Release a Buffer back once the compositor has
// consumed it so the next Render reuses its backing array instead of
// allocating.
var bufferPool = sync.Pool{
	New: func() any { return new(image.Alpha) },
}

// acquire returns a pooled *image.Alpha sized to r, reusing its backing
// pixel slice when it's already large enough.
func acquire(r image.Rectangle) *image.Alpha {
	a := bufferPool.Get().(*image.Alpha)
	need := r.Dx() * r.Dy()
	if cap(a.Pix) < need {
		a.Pix = make([]uint8, need)
	} else {
		a.Pix = a.Pix[:need]
		for i := range a.Pix {
			a.Pix[i] = 0
		}
	}
	a.Stride = r.Dx()
	a.Rect = r
	return a
}

// Release returns a Buffer's backing alpha image to the scratch pool.
func Release(b Buffer) {
	if b.Alpha != nil {
		bufferPool.Put(b.Alpha)
	}
}

// Render rasterizes path commands into an anti-aliased alpha buffer sized
// to bounds, applying an optional transform to every path point first
// (spec.md §4.4's `render(path_commands, transform?, fill_rule?)`).
func Render(path Path, bounds image.Rectangle, transform *geom.Affine, rule style.FillRule) Buffer {
	alpha := acquire(bounds)
	if len(path) == 0 {
		return Buffer{Alpha: alpha, Placement: bounds}
	}

	scanner := rasterx.NewScannerGV(bounds.Dx(), bounds.Dy(), translatedImage{alpha, bounds.Min}, bounds.Sub(bounds.Min))
	scanner.SetColor(color.Alpha{A: 255})
	filler := rasterx.NewFiller(bounds.Dx(), bounds.Dy(), scanner)
	filler.SetWinding(rule == style.FillRuleNonzero)

	tf := func(p geom.Point) fixed.Point26_6 {
		x, y := float64(p.X), float64(p.Y)
		if transform != nil {
			x, y = transform.Apply(x, y)
		}
		return fixed.Point26_6{X: fixed.Int26_6((x - float64(bounds.Min.X)) * 64), Y: fixed.Int26_6((y - float64(bounds.Min.Y)) * 64)}
	}

	open := false
	for _, cmd := range path {
		switch cmd.Kind {
		case MoveTo:
			if open {
				filler.Stop(false)
			}
			filler.Start(tf(cmd.End))
			open = true
		case LineTo:
			filler.Line(tf(cmd.End))
		case CurveTo:
			filler.CubeBezier(tf(cmd.CP1), tf(cmd.CP2), tf(cmd.End))
		case ClosePath:
			filler.Stop(true)
			open = false
		}
	}
	if open {
		filler.Stop(true)
	}
	filler.Draw()

	return Buffer{Alpha: alpha, Placement: bounds}
}

// translatedImage adapts a zero-origin *image.Alpha so rasterx, which
// always scans from (0,0), writes into the buffer's actual placement
// rectangle.
type translatedImage struct {
	alpha *image.Alpha
	off   image.Point
}

func (t translatedImage) ColorModel() color.Model { return t.alpha.ColorModel() }
func (t translatedImage) Bounds() image.Rectangle { return t.alpha.Bounds().Sub(t.off) }
func (t translatedImage) At(x, y int) color.Color { return t.alpha.At(x+t.off.X, y+t.off.Y) }
func (t translatedImage) Set(x, y int, c color.Color) {
	t.alpha.Set(x+t.off.X, y+t.off.Y, c)
}

var _ draw.Image = translatedImage{}
