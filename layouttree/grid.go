package layouttree

import (
	"rasterdom/geom"
	"rasterdom/style"
)

// measureGridChildren lays out children in row-major auto-placement order
// into the columns GridTemplateColumns describes (spec.md §4.11 grid
// formatting context). Row sizing always shrinks to the tallest child in
// the row; GridTemplateRows' track list only contributes its gap, not
// explicit row sizing — this renderer's grid support targets the common
// "template-columns auto-placement" case, not named lines, spans, or
// explicit row tracks.
func measureGridChildren(n *RenderNode, contentOrigin geom.Point, width float64, sizing geom.Sizing, global *GlobalContext) float64 {
	cols := n.Inherited.GridTemplateColumns
	colGap := cols.Gap.ToPx(sizing, width)
	rowGap := n.Inherited.GridTemplateRows.Gap.ToPx(sizing, width)

	widths := columnWidths(cols, width, colGap)
	if len(widths) == 0 {
		widths = []float64{width}
	}

	colX := make([]float64, len(widths))
	x := 0.0
	for i, w := range widths {
		colX[i] = x
		x += w + colGap
	}

	var y float64
	col := 0
	rowHeight := 0.0
	for _, c := range n.Children {
		if col >= len(widths) {
			y += rowHeight + rowGap
			rowHeight = 0
			col = 0
		}
		origin := geom.Point{X: contentOrigin.X + float32(colX[col]), Y: contentOrigin.Y + float32(y)}
		h := measureBox(c, origin, widths[col], global)
		if float64(h) > rowHeight {
			rowHeight = float64(h)
		}
		col++
	}
	y += rowHeight
	return y
}

// columnWidths resolves a track list into concrete pixel widths: fixed
// tracks keep their px value, fr/auto/min-content/max-content tracks share
// the space remaining after fixed tracks and gaps proportionally to their
// fr weight (auto/min/max-content tracks are treated as 1fr, a
// simplification of their true content-based sizing rules).
func columnWidths(list style.GridTrackList, avail, gap float64) []float64 {
	if len(list.Tracks) == 0 {
		return nil
	}
	totalGap := gap * float64(len(list.Tracks)-1)
	remaining := avail - totalGap
	var fixedTotal, frTotal float64
	for _, t := range list.Tracks {
		switch t.Kind {
		case style.GridTrackKindFixed:
			fixedTotal += t.Value
		case style.GridTrackKindFraction:
			frTotal += t.Value
		default:
			frTotal += 1
		}
	}
	remaining -= fixedTotal
	if remaining < 0 {
		remaining = 0
	}
	widths := make([]float64, len(list.Tracks))
	for i, t := range list.Tracks {
		switch t.Kind {
		case style.GridTrackKindFixed:
			widths[i] = t.Value
		case style.GridTrackKindFraction:
			if frTotal > 0 {
				widths[i] = remaining * (t.Value / frTotal)
			}
		default:
			if frTotal > 0 {
				widths[i] = remaining * (1 / frTotal)
			}
		}
	}
	return widths
}
