// Package background is BackgroundPaint: it resolves each of a node's
// background layers into tile geometry and rasterized tiles, then
// composites them onto the canvas (spec.md §4.7).
package background

import (
	"math"

	"rasterdom/geom"
	"rasterdom/style"
)

// TileSize resolves (tile_w, tile_h) for a layer per spec.md §4.7 step 1.
func TileSize(layer style.BackgroundLayer, area geom.Size, intrinsic geom.Size, sizing geom.Sizing) geom.Size {
	switch {
	case layer.HasSize:
		w, h := layer.SizeWidth, layer.SizeHeight
		tw, th := float64(area.Width), float64(area.Height)
		if !w.IsAuto() {
			tw = w.ToPx(sizing, float64(area.Width))
		} else if intrinsic.Width > 0 {
			tw = float64(intrinsic.Width)
		}
		if !h.IsAuto() {
			th = h.ToPx(sizing, float64(area.Height))
		} else if intrinsic.Height > 0 {
			th = float64(intrinsic.Height)
		}
		// one axis auto with a known intrinsic aspect: derive it from the other.
		if w.IsAuto() && !h.IsAuto() && intrinsic.Height > 0 {
			tw = th * float64(intrinsic.Width) / float64(intrinsic.Height)
		}
		if h.IsAuto() && !w.IsAuto() && intrinsic.Width > 0 {
			th = tw * float64(intrinsic.Height) / float64(intrinsic.Width)
		}
		return geom.Size{Width: float32(tw), Height: float32(th)}
	case layer.SizeMode == style.BackgroundSizeKeywordCover:
		return scaleToArea(area, intrinsic, math.Max)
	case layer.SizeMode == style.BackgroundSizeKeywordContain:
		return scaleToArea(area, intrinsic, math.Min)
	default:
		if intrinsic.Width > 0 && intrinsic.Height > 0 {
			return intrinsic
		}
		return area
	}
}

func scaleToArea(area, intrinsic geom.Size, pick func(a, b float64) float64) geom.Size {
	if intrinsic.Width <= 0 || intrinsic.Height <= 0 {
		return area
	}
	scale := pick(float64(area.Width)/float64(intrinsic.Width), float64(area.Height)/float64(intrinsic.Height))
	return geom.Size{Width: float32(float64(intrinsic.Width) * scale), Height: float32(float64(intrinsic.Height) * scale)}
}

// TilePositions resolves the per-axis tile origin offsets for one axis,
// implementing spec.md §4.7 step 2's four background-repeat behaviors.
// origin is the single-tile position `background-position` computes;
// area/tile are the axis extents in the same units as origin.
func TilePositions(repeat style.BackgroundRepeatKeyword, origin, area, tile float64) []float64 {
	switch repeat {
	case style.BackgroundRepeatKeywordNoRepeat:
		return []float64{origin}
	case style.BackgroundRepeatKeywordSpace:
		return spacePositions(area, tile)
	case style.BackgroundRepeatKeywordRound:
		return roundPositions(area, tile)
	default: // repeat
		return repeatPositions(origin, area, tile)
	}
}

func repeatPositions(origin, area, tile float64) []float64 {
	if tile <= 0 {
		return []float64{origin}
	}
	var out []float64
	start := origin
	for start > 0 {
		start -= tile
	}
	for p := start; p < area; p += tile {
		if p+tile > 0 {
			out = append(out, p)
		}
	}
	return out
}

func spacePositions(area, tile float64) []float64 {
	if tile <= 0 {
		return []float64{0}
	}
	n := int(math.Floor(area / tile))
	if n <= 1 {
		return []float64{(area - tile) / 2}
	}
	gap := math.Floor((area - float64(n)*tile) / float64(n-1))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = float64(i) * (tile + gap)
	}
	return out
}

func roundPositions(area, tile float64) []float64 {
	if tile <= 0 {
		return []float64{0}
	}
	n := int(math.Max(1, math.Round(area/tile)))
	stretched := area / float64(n)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = float64(i) * stretched
	}
	return out
}

// RoundedTileDim returns the stretched tile dimension `round` resizes
// each tile to, matching TilePositions' `round` case's spacing.
func RoundedTileDim(area, tile float64) float64 {
	if tile <= 0 {
		return area
	}
	n := math.Max(1, math.Round(area/tile))
	return area / n
}
