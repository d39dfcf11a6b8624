package layouttree

import (
	"rasterdom/geom"
	"rasterdom/style"
)

// measureFlexChildren lays out one flex container's direct children along a
// single line (spec.md §4.11 flex formatting context; no wrapping onto
// multiple flex lines — flex-wrap is accepted on Style but this renderer
// always lays out as nowrap, a deliberate simplification since spec.md's
// size budget does not call for multi-line flex).
//
// Grounded on the six-phase algorithm in
// _examples/grindlemire-go-tui/pkg/layout/flex.go: base size + grow/shrink
// factors, free-space distribution, min/max clamp, justify-content
// positioning, cross-axis stretch/align, then conversion to concrete rects.
func measureFlexChildren(n *RenderNode, contentOrigin geom.Point, width float64, sizing geom.Sizing, global *GlobalContext) float64 {
	isColumn := n.Inherited.FlexDirection.IsColumn()
	reverse := n.Inherited.FlexDirection.IsReverse()
	mainSize := width
	fixedColumnSize := false
	if isColumn {
		// A column flex container's main size (height) defaults to its
		// content total (no grow/shrink free space to distribute) unless
		// an explicit non-percentage height pins it, in which case that
		// becomes the distributable main size.
		mainSize = 0
		if !n.Inherited.Height.IsAuto() && !n.Inherited.Height.IsPercent() {
			mainSize = n.Inherited.Height.ToPx(sizing, 0)
			fixedColumnSize = true
		}
	}
	gapMain, _ := flexGaps(n.Inherited, sizing, width)

	type item struct {
		node               *RenderNode
		margin, border, pad geom.EdgeSizes
		baseMain, baseCross float64
		grow, shrink        float64
		minMain, maxMain    float64
	}

	items := make([]item, len(n.Children))
	for i, c := range n.Children {
		cs := sizing
		cs.FontSize = c.Sized.FontSizePx
		margin := edgesOf(c.Inherited.Margin, cs, width)
		border := borderEdges(c.Inherited, cs)
		pad := edgesOf(c.Inherited.Padding, cs, width)

		var base, cross, minMain, maxMain float64
		if isColumn {
			cross = width - float64(margin.Horizontal()+border.Horizontal()+pad.Horizontal())
			base = flexBasis(c, cross, cs, margin, border, pad, global, true)
			minMain = c.Inherited.MinHeight.ToPx(cs, 0)
			maxMain = c.Inherited.MaxHeight.ToPx(cs, 0)
			if c.Inherited.MaxHeight.IsAuto() {
				maxMain = -1
			}
		} else {
			base = flexBasis(c, width, cs, margin, border, pad, global, false)
			minMain = c.Inherited.MinWidth.ToPx(cs, width)
			maxMain = c.Inherited.MaxWidth.ToPx(cs, width)
			if c.Inherited.MaxWidth.IsAuto() {
				maxMain = -1
			}
		}

		items[i] = item{
			node: c, margin: margin, border: border, pad: pad,
			baseMain: base, baseCross: cross,
			grow: c.Inherited.FlexGrow, shrink: c.Inherited.FlexShrink,
			minMain: minMain, maxMain: maxMain,
		}
	}

	mainEdges := func(it item) float64 {
		if isColumn {
			return float64(it.margin.Top + it.margin.Bottom + it.border.Top + it.border.Bottom + it.pad.Top + it.pad.Bottom)
		}
		return float64(it.margin.Left + it.margin.Right + it.border.Left + it.border.Right + it.pad.Left + it.pad.Right)
	}

	// Phase 1/2: total base size plus gaps, then distribute free space.
	var totalBase float64
	for i, it := range items {
		totalBase += it.baseMain + mainEdges(it)
		if i > 0 {
			totalBase += gapMain
		}
	}
	if isColumn && !fixedColumnSize {
		mainSize = totalBase
	}
	free := mainSize - totalBase

	usedMain := make([]float64, len(items))
	if free > 0 {
		var totalGrow float64
		for _, it := range items {
			totalGrow += it.grow
		}
		for i, it := range items {
			usedMain[i] = it.baseMain
			if totalGrow > 0 {
				usedMain[i] += free * (it.grow / totalGrow)
			}
		}
	} else if free < 0 {
		var totalShrink float64
		for _, it := range items {
			totalShrink += it.shrink * it.baseMain
		}
		for i, it := range items {
			usedMain[i] = it.baseMain
			if totalShrink > 0 {
				usedMain[i] += free * (it.shrink * it.baseMain / totalShrink)
			}
		}
	} else {
		for i, it := range items {
			usedMain[i] = it.baseMain
		}
	}

	// Phase 3: clamp to min/max.
	for i, it := range items {
		if it.minMain > 0 && usedMain[i] < it.minMain {
			usedMain[i] = it.minMain
		}
		if it.maxMain >= 0 && usedMain[i] > it.maxMain {
			usedMain[i] = it.maxMain
		}
		if usedMain[i] < 0 {
			usedMain[i] = 0
		}
	}

	var usedTotal float64
	for i, it := range items {
		usedTotal += usedMain[i] + mainEdges(it)
	}
	usedTotal += gapMain * float64(maxInt(len(items)-1, 0))
	remaining := mainSize - usedTotal
	if remaining < 0 {
		remaining = 0
	}

	// Phase 4: justify-content positions items along the main axis.
	offset, spacing := justifyOffsetSpacing(n.Inherited.JustifyContent, remaining, len(items))

	order := make([]int, len(items))
	for i := range order {
		if reverse {
			order[i] = len(items) - 1 - i
		} else {
			order[i] = i
		}
	}

	mainPos := offset
	for _, idx := range order {
		it := items[idx]
		// Phase 5: cross-axis size/position.
		crossAvail := width
		crossSize := it.baseCross
		if !isColumn {
			crossSize = resolveCrossSize(it.node, n.Inherited, crossAvail, sizing)
		}
		crossOffset := alignOffset(effectiveAlign(it.node.Inherited, n.Inherited), crossAvail, crossSize)

		// Phase 6: convert main/cross to a concrete rect and measure the
		// child's own subtree at that origin. The child's main-axis length
		// is pinned to usedMain so flex-grow/shrink actually takes effect
		// instead of being re-derived by measureBox's own auto-sizing.
		var childOrigin geom.Point
		var avail float64
		dpr := sizing.DPR
		if dpr == 0 {
			dpr = 1
		}
		if isColumn {
			childOrigin = geom.Point{X: contentOrigin.X + float32(crossOffset), Y: contentOrigin.Y + float32(mainPos)}
			avail = crossSize
			it.node.Inherited.Height = geom.Px(usedMain[idx] / dpr)
		} else {
			childOrigin = geom.Point{X: contentOrigin.X + float32(mainPos), Y: contentOrigin.Y + float32(crossOffset)}
			avail = width
			it.node.Inherited.Width = geom.Px(usedMain[idx] / dpr)
		}
		measureBox(it.node, childOrigin, avail, global)

		mainPos += usedMain[idx] + mainEdges(it) + gapMain + spacing
	}

	if isColumn {
		return mainSize
	}
	var maxCross float64
	for _, it := range items {
		if it.node.MarginBox.Height > float32(maxCross) {
			maxCross = float64(it.node.MarginBox.Height)
		}
	}
	return maxCross
}

// flexBasis measures a child's hypothetical main-axis size: flex-basis if
// not auto, else the child's own width/height, else its measured content
// size (a trial measurement, thrown away once the real pass repositions it).
func flexBasis(c *RenderNode, crossAvail float64, sizing geom.Sizing, margin, border, pad geom.EdgeSizes, global *GlobalContext, column bool) float64 {
	if !c.Inherited.HasFlexBasisAuto && !c.Inherited.FlexBasis.IsAuto() {
		return c.Inherited.FlexBasis.ToPx(sizing, crossAvail)
	}
	if column && !c.Inherited.Height.IsAuto() {
		return c.Inherited.Height.ToPx(sizing, 0)
	}
	if !column && !c.Inherited.Width.IsAuto() {
		return c.Inherited.Width.ToPx(sizing, crossAvail)
	}
	h := measureBox(c, geom.Point{}, crossAvail, global)
	if column {
		return float64(h)
	}
	return float64(c.MarginBox.Width)
}

func resolveCrossSize(c *RenderNode, parent style.InheritedStyle, crossAvail float64, sizing geom.Sizing) float64 {
	if effectiveAlign(c.Inherited, parent) == style.AlignItemsStretch && c.Inherited.Height.IsAuto() {
		return crossAvail
	}
	if !c.Inherited.Height.IsAuto() {
		return c.Inherited.Height.ToPx(sizing, crossAvail)
	}
	return crossAvail
}

func effectiveAlign(child, parent style.InheritedStyle) style.AlignItems {
	if child.AlignSelf != style.AlignItemsStretch {
		return child.AlignSelf
	}
	return parent.AlignItems
}

func alignOffset(align style.AlignItems, avail, size float64) float64 {
	switch align {
	case style.AlignItemsEnd:
		return avail - size
	case style.AlignItemsCenter:
		return (avail - size) / 2
	default: // stretch, start, baseline (approximated as start)
		return 0
	}
}

func justifyOffsetSpacing(j style.JustifyContent, free float64, n int) (offset, spacing float64) {
	if n == 0 {
		return 0, 0
	}
	switch j {
	case style.JustifyContentEnd:
		return free, 0
	case style.JustifyContentCenter:
		return free / 2, 0
	case style.JustifyContentSpaceBetween:
		if n > 1 {
			return 0, free / float64(n-1)
		}
		return 0, 0
	case style.JustifyContentSpaceAround:
		return free / float64(n) / 2, free / float64(n)
	case style.JustifyContentSpaceEvenly:
		return free / float64(n+1), free / float64(n+1)
	default: // start
		return 0, 0
	}
}

func flexGaps(inh style.InheritedStyle, sizing geom.Sizing, basis float64) (main, cross float64) {
	if inh.FlexDirection.IsColumn() {
		return inh.Gap.Y.ToPx(sizing, basis), inh.Gap.X.ToPx(sizing, basis)
	}
	return inh.Gap.X.ToPx(sizing, basis), inh.Gap.Y.ToPx(sizing, basis)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
