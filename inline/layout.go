package inline

import (
	"strings"

	"rasterdom/geom"
	"rasterdom/paint/text"
	"rasterdom/style"
)

// word is one breakable unit: a maximal span of non-space characters, a
// single collapsed space, or an atomic box wrapped as its own unbreakable
// word.
type word struct {
	run     *TextRun
	atomic  *AtomicItem
	text    string
	glyphs  []ShapedGlyph
	advance float64
	isSpace bool
}

// Layout breaks items into lines no wider than opts.MaxWidth (atomic items
// never split), honors line-clamp/ellipsis, and positions every run/atomic
// within its line including vertical-align (spec.md §4.10 steps 1-6).
func Layout(items []Item, fonts FontContext, opts Options) Result {
	words := collectWords(items, fonts)
	lines := breakLines(words, opts.MaxWidth)

	if opts.WrapStyle == style.TextWrapStyleBalance || opts.WrapStyle == style.TextWrapStylePretty {
		lines = rebalance(words, lines, opts.MaxWidth)
	}

	truncated := false
	if opts.HasLineClamp && opts.LineClamp > 0 && len(lines) > opts.LineClamp {
		lines = lines[:opts.LineClamp]
		truncated = true
	}

	result := Result{Truncated: truncated}
	y := 0.0
	for i, ln := range lines {
		line := buildLine(ln, fonts)
		applyAlign(&line, opts.Align, opts.MaxWidth, i == len(lines)-1)
		if truncated && i == len(lines)-1 && opts.Overflow == style.TextOverflowEllipsis {
			appendEllipsis(&line, fonts, opts.MaxWidth)
		}
		result.Lines = append(result.Lines, line)
		y += line.Height
	}
	result.Height = y
	return result
}

// collectWords shapes every text run and splits it into space/non-space
// words, and wraps every atomic item as its own unbreakable word.
func collectWords(items []Item, fonts FontContext) []word {
	var words []word
	for _, it := range items {
		switch {
		case it.Text != nil:
			words = append(words, splitRunIntoWords(it.Text, fonts)...)
		case it.Atomic != nil:
			words = append(words, word{atomic: it.Atomic, advance: float64(it.Atomic.Size.Width)})
		}
	}
	return words
}

func splitRunIntoWords(run *TextRun, fonts FontContext) []word {
	transformed := ApplyTextTransform(run.Text, run.Transform)
	var out []word
	var cur strings.Builder
	flush := func(isSpace bool) {
		s := cur.String()
		if s == "" {
			return
		}
		glyphs := fonts.Shape(s, run.FontFamily, run.FontWeight, run.Sized.FontSizePx)
		adv := 0.0
		for _, g := range glyphs {
			adv += g.Advance + run.Sized.LetterSpacingPx
		}
		if isSpace {
			adv += run.Sized.WordSpacingPx
		}
		out = append(out, word{run: run, text: s, glyphs: glyphs, advance: adv, isSpace: isSpace})
		cur.Reset()
	}
	lastWasSpace := false
	for _, r := range transformed {
		isSpace := r == ' '
		if isSpace != lastWasSpace && cur.Len() > 0 {
			flush(lastWasSpace)
		}
		cur.WriteRune(r)
		lastWasSpace = isSpace
	}
	flush(lastWasSpace)
	return out
}

// breakLines performs greedy (first-fit) line breaking honoring nowrap.
func breakLines(words []word, maxWidth float64) [][]word {
	if maxWidth <= 0 {
		return [][]word{words}
	}
	var lines [][]word
	var cur []word
	var curWidth float64
	for _, w := range words {
		if w.isSpace {
			if len(cur) == 0 {
				continue // never start a line with a collapsed leading space
			}
			cur = append(cur, w)
			curWidth += w.advance
			continue
		}
		nowrap := w.run != nil && w.run.WrapMode == style.TextWrapModeNowrap
		if len(cur) > 0 && !nowrap && curWidth+w.advance > maxWidth {
			lines = append(lines, trimTrailingSpace(cur))
			cur = nil
			curWidth = 0
		}
		cur = append(cur, w)
		curWidth += w.advance
	}
	if len(cur) > 0 {
		lines = append(lines, trimTrailingSpace(cur))
	}
	if len(lines) == 0 {
		lines = [][]word{{}}
	}
	return lines
}

func trimTrailingSpace(ws []word) []word {
	for len(ws) > 0 && ws[len(ws)-1].isSpace {
		ws = ws[:len(ws)-1]
	}
	return ws
}

// rebalance redistributes words across a narrower target width so every
// line is closer to the paragraph's average width (text-wrap-style:
// balance/pretty) — a cheap approximation, not the full Knuth-Plass pass a
// browser uses, sufficient for this renderer's deterministic-output goal.
func rebalance(words []word, lines [][]word, maxWidth float64) [][]word {
	if len(lines) <= 1 {
		return lines
	}
	total := 0.0
	for _, w := range words {
		total += w.advance
	}
	target := total / float64(len(lines))
	if target <= 0 || target >= maxWidth {
		return lines
	}
	return breakLines(words, target)
}

func buildLine(ws []word, fonts FontContext) Line {
	line := Line{}
	ascent, descent := 0.0, 0.0
	x := 0.0

	var curRun *TextRun
	var curGlyphs []text.PositionedGlyph
	var curStartX float64
	flushRun := func() {
		if curRun == nil {
			return
		}
		line.Runs = append(line.Runs, PositionedGlyphRun{Run: curRun, X: curStartX, Glyphs: curGlyphs})
		curRun = nil
		curGlyphs = nil
	}

	for _, w := range ws {
		if w.atomic != nil {
			flushRun()
			a := w.atomic
			if a.Baseline > ascent {
				ascent = a.Baseline
			}
			if float64(a.Size.Height)-a.Baseline > descent {
				descent = float64(a.Size.Height) - a.Baseline
			}
			line.Atomics = append(line.Atomics, PositionedAtomic{Item: a, X: x})
			x += w.advance
			continue
		}

		m := fonts.Metrics(w.run.FontFamily, w.run.FontWeight, w.run.Sized.FontSizePx)
		if m.AscentPx > ascent {
			ascent = m.AscentPx
		}
		if m.DescentPx > descent {
			descent = m.DescentPx
		}

		if curRun != w.run {
			flushRun()
			curRun = w.run
			curStartX = x
		}
		pen := x - curStartX
		for _, g := range w.glyphs {
			curGlyphs = append(curGlyphs, text.PositionedGlyph{GID: g.GID, Pen: geom.Point{X: float32(pen), Y: 0}})
			pen += g.Advance + w.run.Sized.LetterSpacingPx
		}
		x += w.advance
	}
	flushRun()

	if ascent == 0 && descent == 0 {
		ascent = 1 // empty line still reserves a minimal height
	}
	line.Baseline = ascent
	line.Height = ascent + descent
	line.Width = x

	// Atomics' Y is relative to the line top, computed now that ascent is final.
	for i := range line.Atomics {
		a := line.Atomics[i].Item
		switch a.VerticalAlign {
		case style.VerticalAlignTop, style.VerticalAlignTextTop:
			line.Atomics[i].Y = 0
		case style.VerticalAlignBottom, style.VerticalAlignTextBottom:
			line.Atomics[i].Y = line.Height - float64(a.Size.Height)
		case style.VerticalAlignMiddle:
			line.Atomics[i].Y = ascent - float64(a.Size.Height)/2
		default: // baseline
			line.Atomics[i].Y = ascent - a.Baseline
		}
	}
	return line
}

func applyAlign(line *Line, align style.TextAlign, maxWidth float64, isLastLine bool) {
	if maxWidth <= 0 {
		return
	}
	free := maxWidth - line.Width
	if free <= 0 {
		return
	}
	var shift float64
	switch align {
	case style.TextAlignRight, style.TextAlignEnd:
		shift = free
	case style.TextAlignCenter:
		shift = free / 2
	case style.TextAlignJustify:
		if !isLastLine {
			justify(line, free)
		}
		return
	default:
		return
	}
	for i := range line.Runs {
		line.Runs[i].X += shift
	}
	for i := range line.Atomics {
		line.Atomics[i].X += shift
	}
}

// justify distributes free space evenly across the line's items by
// position rank — an approximation: true justification stretches the
// original inter-word gaps, which this word-merged representation no
// longer tracks individually once glyphs are shaped into runs.
func justify(line *Line, free float64) {
	n := len(line.Runs) + len(line.Atomics)
	if n <= 1 {
		return
	}
	step := free / float64(n-1)
	type posItem struct {
		isRun bool
		idx   int
	}
	var items []posItem
	for i := range line.Runs {
		items = append(items, posItem{true, i})
	}
	for i := range line.Atomics {
		items = append(items, posItem{false, i})
	}
	for rank := range items {
		shift := step * float64(rank)
		if items[rank].isRun {
			line.Runs[items[rank].idx].X += shift
		} else {
			line.Atomics[items[rank].idx].X += shift
		}
	}
	line.Width += free
}

func appendEllipsis(line *Line, fonts FontContext, maxWidth float64) {
	if len(line.Runs) == 0 {
		return
	}
	last := &line.Runs[len(line.Runs)-1]
	glyphs := fonts.Shape("…", last.Run.FontFamily, last.Run.FontWeight, last.Run.Sized.FontSizePx)
	if len(glyphs) == 0 {
		return
	}
	ellipsisWidth := 0.0
	for _, g := range glyphs {
		ellipsisWidth += g.Advance
	}
	for maxWidth > 0 && last.X+lineRunWidth(*last)+ellipsisWidth > maxWidth && len(last.Glyphs) > 0 {
		last.Glyphs = last.Glyphs[:len(last.Glyphs)-1]
	}
	pen := lineRunWidth(*last)
	for _, g := range glyphs {
		last.Glyphs = append(last.Glyphs, text.PositionedGlyph{GID: g.GID, Pen: geom.Point{X: float32(pen), Y: 0}})
		pen += g.Advance
	}
}

func lineRunWidth(r PositionedGlyphRun) float64 {
	if len(r.Glyphs) == 0 {
		return 0
	}
	last := r.Glyphs[len(r.Glyphs)-1]
	return float64(last.Pen.X)
}
