package codec

import (
	"bytes"
	"image"
	"io"
)

func writePNG(dst io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := encodePNG(&buf, img); err != nil {
		return err
	}
	_, err := dst.Write(buf.Bytes())
	return err
}

// encodePNG assembles one IHDR/[PLTE]/[tRNS]/IDAT/IEND stream for img,
// writing the signature first.
func encodePNG(buf *bytes.Buffer, img image.Image) error {
	plan := planPNG(img)
	b := img.Bounds()

	buf.Write(pngSignature)
	writeChunk(buf, "IHDR", ihdrData(b.Dx(), b.Dy(), plan))
	if plan.mode == colorIndexed {
		writeChunk(buf, "PLTE", plteData(plan))
		if trns := trnsData(plan); trns != nil {
			writeChunk(buf, "tRNS", trns)
		}
	}

	raw := filterScanlines(encodeRawScanlines(img, plan), plan)
	idat, err := deflate(raw)
	if err != nil {
		return err
	}
	writeChunk(buf, "IDAT", idat)
	writeChunk(buf, "IEND", nil)
	return nil
}
