// Package common holds small enum-like types shared across otherwise
// independent subsystems (codec output selection, image resampling policy)
// so that neither side needs to import the other just to name a value.
package common

// Format identifies the raster/animation sink format write_image targets.
// ENUM(png, jpeg, webp, apng, awebp)
type Format int

// ImageRendering mirrors the CSS `image-rendering` property: it selects the
// resampling kernel used by object-fit resizes and background tile scaling.
// ENUM(auto, smooth, pixelated)
type ImageRendering int

// IsAnimated reports whether the format carries more than one frame.
func (f Format) IsAnimated() bool {
	return f == FormatApng || f == FormatAwebp
}

// Ext returns the conventional file extension for the format, including the
// leading dot.
func (f Format) Ext() string {
	switch f {
	case FormatPng, FormatApng:
		return ".png"
	case FormatJpeg:
		return ".jpg"
	case FormatWebp, FormatAwebp:
		return ".webp"
	default:
		return ""
	}
}
