package codec

import (
	"bytes"
	"encoding/binary"
	"io"
)

// writeAPNG assembles an animated PNG: the first frame doubles as the
// default image (IDAT), every frame (including the first) gets an fcTL,
// and frames after the first carry their pixel data as fdAT instead of
// IDAT, each keyed by a shared ascending sequence number.
func writeAPNG(dst io.Writer, frames []Frame, loopCount int) error {
	var buf bytes.Buffer
	buf.Write(pngSignature)

	plan := planPNG(frames[0].Image)
	b := frames[0].Image.Bounds()
	writeChunk(&buf, "IHDR", ihdrData(b.Dx(), b.Dy(), plan))
	if plan.mode == colorIndexed {
		writeChunk(&buf, "PLTE", plteData(plan))
		if trns := trnsData(plan); trns != nil {
			writeChunk(&buf, "tRNS", trns)
		}
	}

	writeChunk(&buf, "acTL", actlData(len(frames), loopCount))

	// Every frame is shown for the shortest duration among the frames.
	minDur := frames[0].DurationMs
	for _, f := range frames[1:] {
		if f.DurationMs < minDur {
			minDur = f.DurationMs
		}
	}

	seq := uint32(0)
	for i, f := range frames {
		fb := f.Image.Bounds()
		writeChunk(&buf, "fcTL", fctlData(seq, fb.Dx(), fb.Dy(), minDur))
		seq++

		framePlan := plan
		if i > 0 {
			framePlan = planPNG(f.Image)
		}
		raw := filterScanlines(encodeRawScanlines(f.Image, framePlan), framePlan)
		payload, err := deflate(raw)
		if err != nil {
			return err
		}

		if i == 0 {
			writeChunk(&buf, "IDAT", payload)
		} else {
			fdat := make([]byte, 4+len(payload))
			binary.BigEndian.PutUint32(fdat[0:4], seq)
			copy(fdat[4:], payload)
			seq++
			writeChunk(&buf, "fdAT", fdat)
		}
	}

	writeChunk(&buf, "IEND", nil)
	_, err := dst.Write(buf.Bytes())
	return err
}

func actlData(numFrames, loopCount int) []byte {
	data := make([]byte, 8)
	binary.BigEndian.PutUint32(data[0:4], uint32(numFrames))
	if loopCount < 0 {
		loopCount = 0
	} else if loopCount > 0xFFFF {
		loopCount = 0xFFFF
	}
	binary.BigEndian.PutUint32(data[4:8], uint32(loopCount))
	return data
}

// fctlData builds one fcTL chunk body. Frames are placed at (0,0) full-size
// rather than supporting sub-region updates or disposal/blend variation —
// every frame here replaces the canvas outright.
func fctlData(seq uint32, w, h, durationMs int) []byte {
	data := make([]byte, 26)
	binary.BigEndian.PutUint32(data[0:4], seq)
	binary.BigEndian.PutUint32(data[4:8], uint32(w))
	binary.BigEndian.PutUint32(data[8:12], uint32(h))
	binary.BigEndian.PutUint32(data[12:16], 0) // x offset
	binary.BigEndian.PutUint32(data[16:20], 0) // y offset

	num, den := durationFraction(durationMs)
	binary.BigEndian.PutUint16(data[20:22], num)
	binary.BigEndian.PutUint16(data[22:24], den)
	data[24] = 1 // dispose_op: background
	data[25] = 0 // blend_op: source
	return data
}

// durationFraction converts a millisecond duration into APNG's
// numerator/1000-denominator delay fraction.
func durationFraction(durationMs int) (uint16, uint16) {
	if durationMs <= 0 {
		durationMs = 100
	}
	return uint16(durationMs), 1000
}
