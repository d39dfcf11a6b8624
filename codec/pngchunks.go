package codec

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// writeChunk appends one PNG chunk (length + type + data + CRC32 of
// type+data) to buf, the length-prefixed-CRC'd framing every PNG/APNG chunk
// shares.
func writeChunk(buf *bytes.Buffer, typ string, data []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	buf.Write(lenBuf[:])

	body := make([]byte, 0, len(typ)+len(data))
	body = append(body, typ...)
	body = append(body, data...)
	buf.Write(body)

	crc := crc32.ChecksumIEEE(body)
	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], crc)
	buf.Write(crcBuf[:])
}

func deflate(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestSpeed)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(raw); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// colorModeKind is the PNG color-type this pixel plan encodes as.
type colorModeKind int

const (
	colorIndexed colorModeKind = iota
	colorRGB
	colorRGBA
)

// pngColorType is the PNG spec's IHDR color-type byte.
func (k colorModeKind) pngColorType() byte {
	switch k {
	case colorIndexed:
		return 3
	case colorRGB:
		return 2
	default:
		return 6
	}
}

// pngPlan is the per-image encode policy spec.md §6 dictates: indexed when
// the quantized-alpha distinct-color count fits 256, otherwise RGB/RGBA
// depending on whether any pixel is not fully opaque.
type pngPlan struct {
	mode     colorModeKind
	bitDepth int
	palette  []color.NRGBA    // first-occurrence order
	index    map[[4]uint8]int // quantized (r,g,b,aq) -> palette index
}

// quantizeAlpha buckets alpha into steps of 5 for the palette-fit check
// (spec.md §6: "distinct colors (with alpha quantized to steps of 5)").
func quantizeAlpha(a uint8) uint8 {
	return (a / 5) * 5
}

func planPNG(img image.Image) pngPlan {
	b := img.Bounds()
	index := make(map[[4]uint8]int)
	var palette []color.NRGBA
	hasAlpha := false
	hasPartialAlpha := false

	for y := b.Min.Y; y < b.Max.Y && len(palette) <= 256; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A != 255 {
				hasAlpha = true
				if c.A != 0 {
					hasPartialAlpha = true
				}
			}
			key := [4]uint8{c.R, c.G, c.B, quantizeAlpha(c.A)}
			if _, ok := index[key]; !ok {
				if len(palette) < 257 {
					index[key] = len(palette)
					palette = append(palette, c)
				}
			}
		}
	}
	_ = hasPartialAlpha

	if len(palette) <= 256 {
		return pngPlan{
			mode:     colorIndexed,
			bitDepth: indexedBitDepth(len(palette)),
			palette:  palette,
			index:    index,
		}
	}
	if hasAlpha {
		return pngPlan{mode: colorRGBA, bitDepth: 8}
	}
	return pngPlan{mode: colorRGB, bitDepth: 8}
}

func indexedBitDepth(paletteSize int) int {
	switch {
	case paletteSize <= 2:
		return 1
	case paletteSize <= 4:
		return 2
	case paletteSize <= 16:
		return 4
	default:
		return 8
	}
}

// bytesPerPixel is the PNG filter byte-stride for Sub (0 for sub-byte
// indexed rows, where Up is used instead).
func (p pngPlan) bytesPerPixel() int {
	switch p.mode {
	case colorIndexed:
		if p.bitDepth == 8 {
			return 1
		}
		return 0
	case colorRGB:
		return 3
	default:
		return 4
	}
}

// encodeRawScanlines packs img's pixels per plan into PNG's pre-filter
// pixel format: one row per scanline, no filter-type byte yet.
func encodeRawScanlines(img image.Image, plan pngPlan) [][]byte {
	b := img.Bounds()
	w := b.Dx()
	rows := make([][]byte, b.Dy())

	switch plan.mode {
	case colorIndexed:
		rowBytes := (w*plan.bitDepth + 7) / 8
		for ry, y := 0, b.Min.Y; y < b.Max.Y; ry, y = ry+1, y+1 {
			row := make([]byte, rowBytes)
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				key := [4]uint8{c.R, c.G, c.B, quantizeAlpha(c.A)}
				idx := plan.index[key]
				px := x - b.Min.X
				setIndexedPixel(row, px, plan.bitDepth, byte(idx))
			}
			rows[ry] = row
		}
	case colorRGB:
		for ry, y := 0, b.Min.Y; y < b.Max.Y; ry, y = ry+1, y+1 {
			row := make([]byte, w*3)
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				off := (x - b.Min.X) * 3
				row[off], row[off+1], row[off+2] = c.R, c.G, c.B
			}
			rows[ry] = row
		}
	default: // RGBA
		for ry, y := 0, b.Min.Y; y < b.Max.Y; ry, y = ry+1, y+1 {
			row := make([]byte, w*4)
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				off := (x - b.Min.X) * 4
				row[off], row[off+1], row[off+2], row[off+3] = c.R, c.G, c.B, c.A
			}
			rows[ry] = row
		}
	}
	return rows
}

func setIndexedPixel(row []byte, x, bitDepth int, idx byte) {
	switch bitDepth {
	case 8:
		row[x] = idx
	case 4:
		shift := uint(4 - 4*(x%2))
		row[x/2] |= idx << shift
	case 2:
		shift := uint(6 - 2*(x%4))
		row[x/4] |= idx << shift
	case 1:
		shift := uint(7 - (x % 8))
		row[x/8] |= idx << shift
	}
}

// filterScanlines applies spec.md §6's fixed filter choice (Sub for
// byte-depth rows, Up for sub-byte indexed rows) and prepends the PNG
// per-row filter-type byte.
func filterScanlines(rows [][]byte, plan pngPlan) []byte {
	bpp := plan.bytesPerPixel()
	var out bytes.Buffer
	var prev []byte
	for _, row := range rows {
		if bpp > 0 {
			out.WriteByte(1) // Sub
			filtered := make([]byte, len(row))
			for i, v := range row {
				left := byte(0)
				if i >= bpp {
					left = row[i-bpp]
				}
				filtered[i] = v - left
			}
			out.Write(filtered)
		} else {
			out.WriteByte(2) // Up
			filtered := make([]byte, len(row))
			for i, v := range row {
				above := byte(0)
				if prev != nil {
					above = prev[i]
				}
				filtered[i] = v - above
			}
			out.Write(filtered)
		}
		prev = row
	}
	return out.Bytes()
}

func ihdrData(w, h int, plan pngPlan) []byte {
	buf := make([]byte, 13)
	binary.BigEndian.PutUint32(buf[0:4], uint32(w))
	binary.BigEndian.PutUint32(buf[4:8], uint32(h))
	buf[8] = byte(plan.bitDepth)
	buf[9] = plan.mode.pngColorType()
	buf[10] = 0 // compression method
	buf[11] = 0 // filter method
	buf[12] = 0 // interlace method
	return buf
}

func plteData(plan pngPlan) []byte {
	data := make([]byte, 0, len(plan.palette)*3)
	for _, c := range plan.palette {
		data = append(data, c.R, c.G, c.B)
	}
	return data
}

// trnsData returns the palette alpha table, or nil if every palette entry
// is fully opaque (tRNS may then be omitted).
func trnsData(plan pngPlan) []byte {
	lastOpaque := -1
	for i, c := range plan.palette {
		if c.A != 255 {
			lastOpaque = i
		}
	}
	if lastOpaque < 0 {
		return nil
	}
	data := make([]byte, lastOpaque+1)
	for i := range data {
		data[i] = plan.palette[i].A
	}
	return data
}
