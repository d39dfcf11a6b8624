package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"io"
)

// writeJPEG flattens img onto opaque black (JPEG carries no alpha channel)
// and encodes at quality, then inserts a JFIF APP0 marker segment the same
// way the teacher's EnsureJFIFAPP0 does for Kindle compatibility — some
// readers of this format also expect it present rather than relying on the
// bare SOI/APPn the stdlib encoder emits.
func writeJPEG(dst io.Writer, img image.Image, quality int) error {
	flat := flattenToOpaque(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: quality}); err != nil {
		return err
	}
	out, err := ensureJFIFAPP0(buf.Bytes())
	if err != nil {
		return err
	}
	_, err = dst.Write(out)
	return err
}

func flattenToOpaque(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			a := float64(c.A) / 255
			r := uint8(float64(c.R) * a)
			g := uint8(float64(c.G) * a)
			bl := uint8(float64(c.B) * a)
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: 255})
		}
	}
	return out
}

// ensureJFIFAPP0 inserts a JFIF APP0 marker segment if the stdlib encoder's
// output doesn't already carry one.
func ensureJFIFAPP0(jpegData []byte) ([]byte, error) {
	if len(jpegData) < 4 {
		return nil, errors.New("jpeg too small")
	}
	if jpegData[0] != 0xFF || jpegData[1] != 0xD8 {
		return nil, errors.New("not a jpeg")
	}

	marker := []byte{0xFF, 0xE0}
	if jpegData[2] == marker[0] && jpegData[3] == marker[1] {
		return jpegData, nil
	}

	jfif := []byte{0x4A, 0x46, 0x49, 0x46, 0x00, 0x01, 0x02} // "JFIF\0" + version
	buf := new(bytes.Buffer)
	buf.Write(jpegData[:2])
	buf.Write(marker)
	_ = binary.Write(buf, binary.BigEndian, uint16(0x10)) // segment length
	buf.Write(jfif)
	_ = binary.Write(buf, binary.BigEndian, uint8(0))      // no density units
	_ = binary.Write(buf, binary.BigEndian, uint16(1))     // Xdensity
	_ = binary.Write(buf, binary.BigEndian, uint16(1))     // Ydensity
	_ = binary.Write(buf, binary.BigEndian, uint16(0))     // no thumbnail
	buf.Write(jpegData[2:])
	return buf.Bytes(), nil
}
