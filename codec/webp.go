package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// writeWebP assembles a RIFF/WEBP container: a bare VP8/VP8L chunk for a
// single static frame, or VP8X+ANIM+ANMF-per-frame for an animation. The
// actual compressed bitstream per frame comes from opts.Encoder — this
// package owns only the container math.
func writeWebP(dst io.Writer, frames []Frame, opts Options) error {
	if opts.Encoder == nil {
		return fmt.Errorf("no LosslessPayloadEncoder configured")
	}

	if len(frames) == 1 {
		return writeStaticWebP(dst, frames[0], opts.Encoder)
	}
	return writeAnimatedWebP(dst, frames, opts)
}

func writeStaticWebP(dst io.Writer, f Frame, enc LosslessPayloadEncoder) error {
	fourCC, payload, _, err := enc.EncodeFrame(f.Image)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	writeRIFFChunk(&body, fourCC, payload)

	return writeRIFFContainer(dst, body.Bytes())
}

func writeAnimatedWebP(dst io.Writer, frames []Frame, opts Options) error {
	b := frames[0].Image.Bounds()
	hasAlpha := false

	var body bytes.Buffer

	// VP8X and ANIM placeholders are written after scanning every frame for
	// hasAlpha, so frame chunks are built up front and appended afterward.
	var anmfChunks bytes.Buffer
	for _, f := range frames {
		fourCC, payload, frameAlpha, err := opts.Encoder.EncodeFrame(f.Image)
		if err != nil {
			return err
		}
		if frameAlpha {
			hasAlpha = true
		}

		fb := f.Image.Bounds()
		var anmfBody bytes.Buffer
		anmfBody.Write(anmfHeader(fb.Dx(), fb.Dy(), f.DurationMs))
		writeRIFFChunk(&anmfBody, fourCC, payload)

		writeRIFFChunk(&anmfChunks, "ANMF", anmfBody.Bytes())
	}

	writeRIFFChunk(&body, "VP8X", vp8xData(b.Dx(), b.Dy(), hasAlpha, true))
	writeRIFFChunk(&body, "ANIM", animData(opts.LoopCount))
	body.Write(anmfChunks.Bytes())

	return writeRIFFContainer(dst, body.Bytes())
}

func writeRIFFContainer(dst io.Writer, body []byte) error {
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(body)+4))
	buf.Write(size[:])
	buf.WriteString("WEBP")
	buf.Write(body)
	_, err := dst.Write(buf.Bytes())
	return err
}

// writeRIFFChunk appends a FourCC + little-endian size + data + pad-byte
// chunk, RIFF's container unit (distinct from PNG's big-endian/CRC chunk).
func writeRIFFChunk(buf *bytes.Buffer, fourCC string, data []byte) {
	buf.WriteString(fourCC)
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(data)))
	buf.Write(size[:])
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}
}

func vp8xData(w, h int, hasAlpha, hasAnim bool) []byte {
	data := make([]byte, 10)
	var flags byte
	if hasAlpha {
		flags |= 1 << 4
	}
	if hasAnim {
		flags |= 1 << 1
	}
	data[0] = flags
	put24(data[4:7], w-1)
	put24(data[7:10], h-1)
	return data
}

func put24(dst []byte, v int) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
}

func animData(loopCount int) []byte {
	data := make([]byte, 6)
	// background color: opaque white BGRA
	data[0], data[1], data[2], data[3] = 0xff, 0xff, 0xff, 0xff
	binary.LittleEndian.PutUint16(data[4:6], uint16(loopCount))
	return data
}

// anmfHeader builds the ANMF frame header (not itself a RIFF chunk — it's
// prefixed to the per-frame bitstream chunk before the whole thing is
// wrapped as one ANMF chunk by the caller).
func anmfHeader(w, h, durationMs int) []byte {
	data := make([]byte, 16)
	put24(data[0:3], 0) // x offset / 2
	put24(data[3:6], 0) // y offset / 2
	put24(data[6:9], w-1)
	put24(data[9:12], h-1)
	if durationMs <= 0 {
		durationMs = 100
	}
	if durationMs > 0xFFFFFF {
		durationMs = 0xFFFFFF
	}
	put24(data[12:15], durationMs)
	data[15] = 0 // blending + disposal flags
	return data
}
