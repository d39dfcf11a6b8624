// Package codec is the write_image sink API (spec.md §6): PNG, JPEG, APNG,
// and (Animated) WebP encoding of the RGBA raster Renderer produces. PNG
// palette/bit-depth/tRNS policy, JPEG's alpha flatten, and APNG/WebP's
// container framing are implemented directly against compress/zlib and
// hash/crc32 rather than delegated to a higher-level image library — the
// teacher's `utils/images/jpeg.go` hand-assembles a JFIF APP0 marker segment
// around a stdlib-produced JPEG payload the same way APNG/WebP here
// hand-assemble their own container bytes around stdlib- or injected-codec
// payloads.
package codec

import (
	"fmt"
	"image"
	"io"

	"rasterdom/common"
)

// Frame is one image in an animation sequence (or the lone frame of a
// static sink).
type Frame struct {
	Image      image.Image
	DurationMs int
}

// LosslessPayloadEncoder produces the per-frame compressed bitstream for
// WebP/Animated WebP, the one piece of "WebP codec internals" spec.md §1
// externalizes as an abstract collaborator — no VP8L encoder ships with
// this package.
type LosslessPayloadEncoder interface {
	// EncodeFrame returns the chunk FourCC ("VP8 " or "VP8L"), the
	// compressed payload, and whether the frame carries an alpha channel.
	EncodeFrame(img image.Image) (fourCC string, payload []byte, hasAlpha bool, err error)
}

// Options carries the write_image policy knobs spec.md §6 names.
type Options struct {
	JPEGQuality int // 1-100, default 75
	LoopCount   int // 0 = infinite
	Encoder     LosslessPayloadEncoder
}

// EncodeError wraps a codec failure, per spec.md §7's EncodeError kind.
type EncodeError struct {
	Format common.Format
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Write implements write_image(image, sink, format, quality) (spec.md §6).
// For animated formats frames must have len >= 1; static formats use only
// frames[0].
func Write(dst io.Writer, format common.Format, frames []Frame, opts Options) error {
	if len(frames) == 0 {
		return &EncodeError{Format: format, Err: fmt.Errorf("no frames to encode")}
	}
	if opts.JPEGQuality <= 0 {
		opts.JPEGQuality = 75
	}

	var err error
	switch format {
	case common.FormatPng:
		err = writePNG(dst, frames[0].Image)
	case common.FormatJpeg:
		err = writeJPEG(dst, frames[0].Image, opts.JPEGQuality)
	case common.FormatApng:
		err = writeAPNG(dst, frames, opts.LoopCount)
	case common.FormatWebp:
		err = writeWebP(dst, frames[:1], opts)
	case common.FormatAwebp:
		err = writeWebP(dst, frames, opts)
	default:
		err = fmt.Errorf("unsupported format %s", format)
	}
	if err != nil {
		return &EncodeError{Format: format, Err: err}
	}
	return nil
}
