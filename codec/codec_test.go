package codec

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"rasterdom/common"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func checkerImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{B: 255, A: 128})
			}
		}
	}
	return img
}

func TestWrite_PNG_SolidColorIsIndexed(t *testing.T) {
	img := solidImage(4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	if err := Write(&buf, common.FormatPng, []Frame{{Image: img}}, Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.Bytes()
	if !bytes.Equal(out[:8], pngSignature) {
		t.Fatalf("missing PNG signature")
	}
	if !bytes.Contains(out, []byte("IHDR")) || !bytes.Contains(out, []byte("PLTE")) {
		t.Errorf("expected IHDR and PLTE chunks for a 1-color image")
	}
}

func TestWrite_PNG_ManyColorsIsRGBA(t *testing.T) {
	img := checkerImage(20, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: uint8(x + y), A: 200})
		}
	}
	plan := planPNG(img)
	if plan.mode != colorRGBA {
		t.Errorf("plan.mode = %v, want colorRGBA for a many-distinct-color image", plan.mode)
	}
}

func TestQuantizeAlpha(t *testing.T) {
	cases := []struct{ in, want uint8 }{
		{0, 0}, {4, 0}, {5, 5}, {254, 250}, {255, 255},
	}
	for _, c := range cases {
		if got := quantizeAlpha(c.in); got != c.want {
			t.Errorf("quantizeAlpha(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestIndexedBitDepth(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 4}, {16, 4}, {17, 8}, {256, 8},
	}
	for _, c := range cases {
		if got := indexedBitDepth(c.n); got != c.want {
			t.Errorf("indexedBitDepth(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestWrite_JPEG_FlattensAlpha(t *testing.T) {
	img := checkerImage(8, 8)
	var buf bytes.Buffer
	if err := Write(&buf, common.FormatJpeg, []Frame{{Image: img}}, Options{JPEGQuality: 80}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.Bytes()
	if out[0] != 0xFF || out[1] != 0xD8 {
		t.Fatalf("missing JPEG SOI marker")
	}
	if out[2] != 0xFF || out[3] != 0xE0 {
		t.Errorf("missing JFIF APP0 marker right after SOI")
	}
}

func TestWrite_APNG_MultiFrame(t *testing.T) {
	frames := []Frame{
		{Image: solidImage(4, 4, color.NRGBA{R: 255, A: 255}), DurationMs: 100},
		{Image: solidImage(4, 4, color.NRGBA{G: 255, A: 255}), DurationMs: 200},
	}
	var buf bytes.Buffer
	if err := Write(&buf, common.FormatApng, frames, Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.Bytes()
	if !bytes.Contains(out, []byte("acTL")) {
		t.Errorf("expected acTL chunk for an animated PNG")
	}
	if !bytes.Contains(out, []byte("fdAT")) {
		t.Errorf("expected fdAT chunk for the second APNG frame")
	}
}

type fakeLosslessEncoder struct{}

func (fakeLosslessEncoder) EncodeFrame(img image.Image) (string, []byte, bool, error) {
	return "VP8L", []byte{0x01, 0x02, 0x03}, false, nil
}

func TestWrite_WebP_Static(t *testing.T) {
	img := solidImage(4, 4, color.NRGBA{R: 1, A: 255})
	var buf bytes.Buffer
	opts := Options{Encoder: fakeLosslessEncoder{}}
	if err := Write(&buf, common.FormatWebp, []Frame{{Image: img}}, opts); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.Bytes()
	if string(out[0:4]) != "RIFF" || string(out[8:12]) != "WEBP" {
		t.Fatalf("missing RIFF/WEBP container markers")
	}
	if !bytes.Contains(out, []byte("VP8L")) {
		t.Errorf("expected VP8L chunk from the injected encoder")
	}
}

func TestWrite_WebP_AnimatedHasANIMAndANMF(t *testing.T) {
	frames := []Frame{
		{Image: solidImage(2, 2, color.NRGBA{R: 1, A: 255}), DurationMs: 100},
		{Image: solidImage(2, 2, color.NRGBA{G: 1, A: 255}), DurationMs: 100},
	}
	var buf bytes.Buffer
	opts := Options{Encoder: fakeLosslessEncoder{}, LoopCount: 0}
	if err := Write(&buf, common.FormatAwebp, frames, opts); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.Bytes()
	if !bytes.Contains(out, []byte("ANIM")) {
		t.Errorf("expected ANIM chunk")
	}
	if bytes.Count(out, []byte("ANMF")) != 2 {
		t.Errorf("expected 2 ANMF chunks, got %d", bytes.Count(out, []byte("ANMF")))
	}
}

func TestWrite_NoFrames(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, common.FormatPng, nil, Options{})
	if err == nil {
		t.Fatal("expected error for empty frames")
	}
	var encErr *EncodeError
	if !asEncodeError(err, &encErr) {
		t.Errorf("expected *EncodeError, got %T", err)
	}
}

func asEncodeError(err error, target **EncodeError) bool {
	e, ok := err.(*EncodeError)
	if ok {
		*target = e
	}
	return ok
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	img := solidImage(2, 2, color.NRGBA{A: 255})
	var buf bytes.Buffer
	err := Write(&buf, common.Format(99), []Frame{{Image: img}}, Options{})
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
