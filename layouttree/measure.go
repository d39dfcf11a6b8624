package layouttree

import (
	"rasterdom/geom"
	"rasterdom/inline"
	"rasterdom/style"
)

// Measure lays out root's box tree against a viewport of the given size,
// filling in every RenderNode's box geometry and, for inline formatting
// contexts, its Paragraph (spec.md §4.11 measure, §6 MeasureLayout).
func Measure(root *RenderNode, global *GlobalContext, viewportSize geom.Size) LayoutResult {
	measureBox(root, geom.Point{}, float64(viewportSize.Width), global)
	return LayoutResult{Root: root, CanvasSize: viewportSize}
}

// measureBox measures one box at origin (its margin box's top-left) against
// availWidth (the containing block's content width) and returns the margin
// box height it used.
func measureBox(n *RenderNode, origin geom.Point, availWidth float64, global *GlobalContext) float32 {
	sizing := global.Viewport
	sizing.FontSize = n.Sized.FontSizePx

	margin := edgesOf(n.Inherited.Margin, sizing, availWidth)
	border := borderEdges(n.Inherited, sizing)
	padding := edgesOf(n.Inherited.Padding, sizing, availWidth)

	outer := margin.Horizontal() + border.Horizontal() + padding.Horizontal()
	contentAvailWidth := availWidth - float64(outer)
	if contentAvailWidth < 0 {
		contentAvailWidth = 0
	}

	width := resolveDimension(n.Inherited.Width, contentAvailWidth, contentAvailWidth, sizing)
	width = clampDimension(width, n.Inherited.MinWidth, n.Inherited.MaxWidth, contentAvailWidth, sizing)

	contentOrigin := geom.Point{
		X: origin.X + margin.Left + border.Left + padding.Left,
		Y: origin.Y + margin.Top + border.Top + padding.Top,
	}

	var contentHeight float64
	switch {
	case n.Kind == NodeImage:
		contentHeight = measureImage(n, width, global)
	case n.Inherited.Display == style.DisplayFlex || n.Inherited.Display == style.DisplayInlineFlex:
		contentHeight = measureFlexChildren(n, contentOrigin, width, sizing, global)
	case n.Inherited.Display == style.DisplayGrid || n.Inherited.Display == style.DisplayInlineGrid:
		contentHeight = measureGridChildren(n, contentOrigin, width, sizing, global)
	case isPureInlineContainer(n):
		contentHeight = measureInlineContainer(n, contentOrigin, width, sizing, global)
	default:
		contentHeight = measureBlockChildren(n, contentOrigin, width, global)
	}

	height := resolveDimension(n.Inherited.Height, contentHeight, contentHeight, sizing)
	height = clampDimension(height, n.Inherited.MinHeight, n.Inherited.MaxHeight, contentHeight, sizing)

	marginW := float32(width) + padding.Horizontal() + border.Horizontal() + margin.Horizontal()
	marginH := float32(height) + padding.Vertical() + border.Vertical() + margin.Vertical()

	n.MarginBox = geom.Rect{X: origin.X, Y: origin.Y, Width: marginW, Height: marginH}
	n.BorderBox = n.MarginBox.Inset(margin)
	n.PaddingBox = n.BorderBox.Inset(border)
	n.ContentBox = n.PaddingBox.Inset(padding)
	return marginH
}

// resolveDimension resolves a width/height property: auto falls back to
// autoValue (fill-available for block width, shrink-to-fit content height),
// otherwise to_px against basis.
func resolveDimension(l geom.Length, basis, autoValue float64, sizing geom.Sizing) float64 {
	if l.IsAuto() {
		return autoValue
	}
	return l.ToPx(sizing, basis)
}

func clampDimension(v float64, min, max geom.Length, basis float64, sizing geom.Sizing) float64 {
	if !min.IsAuto() {
		if mn := min.ToPx(sizing, basis); v < mn {
			v = mn
		}
	}
	if !max.IsAuto() {
		if mx := max.ToPx(sizing, basis); v > mx {
			v = mx
		}
	}
	if v < 0 {
		v = 0
	}
	return v
}

func edgesOf(sides geom.Sides[geom.Length], sizing geom.Sizing, basis float64) geom.EdgeSizes {
	return geom.EdgeSizes{
		Top:    float32(sides.Top.ToPx(sizing, basis)),
		Right:  float32(sides.Right.ToPx(sizing, basis)),
		Bottom: float32(sides.Bottom.ToPx(sizing, basis)),
		Left:   float32(sides.Left.ToPx(sizing, basis)),
	}
}

func borderEdges(inh style.InheritedStyle, sizing geom.Sizing) geom.EdgeSizes {
	width := func(b style.BorderSide) float32 {
		if b.Style == style.BorderStyleKindNone {
			return 0
		}
		return float32(b.Width.ToPx(sizing, 0))
	}
	return geom.EdgeSizes{
		Top:    width(inh.BorderTop),
		Right:  width(inh.BorderRight),
		Bottom: width(inh.BorderBottom),
		Left:   width(inh.BorderLeft),
	}
}

// measureBlockChildren stacks children top to bottom, each at the
// container's content width (spec.md §4.11 block formatting context).
func measureBlockChildren(n *RenderNode, contentOrigin geom.Point, width float64, global *GlobalContext) float64 {
	var y float32
	for _, c := range n.Children {
		h := measureBox(c, geom.Point{X: contentOrigin.X, Y: contentOrigin.Y + y}, width, global)
		y += h
	}
	return float64(y)
}

func isPureInlineContainer(n *RenderNode) bool {
	if len(n.Children) == 0 {
		return false
	}
	for _, c := range n.Children {
		if !isInlineLevel(c) {
			return false
		}
	}
	return true
}

func measureImage(n *RenderNode, width float64, global *GlobalContext) float64 {
	intrinsic, ok := global.Images.IntrinsicSize(n.ImageRef)
	if !ok || intrinsic.Width == 0 {
		return width * 9 / 16 // no known aspect ratio: fall back to a 16:9 box
	}
	if n.Inherited.Height.IsAuto() {
		aspect := float64(intrinsic.Height) / float64(intrinsic.Width)
		return width * aspect
	}
	return width * float64(intrinsic.Height) / float64(intrinsic.Width)
}

// measureInlineContainer delegates to inline.Layout for every run of text
// and inline-atomic (inline-block/inline-flex/image) children (spec.md
// §4.10/§4.11). Atomic subtrees are measured twice: once untethered to learn
// their size for the line-breaker, then re-measured at their final
// line-relative origin once inline.Layout has placed them — simple and
// correct, at the cost of measuring atomic subtrees twice.
func measureInlineContainer(n *RenderNode, contentOrigin geom.Point, width float64, sizing geom.Sizing, global *GlobalContext) float64 {
	items, atomics := collectInlineItems(n.Children, width, global)
	opts := inline.Options{
		MaxWidth:     width,
		Align:        n.Inherited.TextAlign,
		WrapStyle:    n.Inherited.TextWrapStyle,
		Overflow:     n.Inherited.TextOverflow,
		LineClamp:    n.Inherited.LineClamp,
		HasLineClamp: n.Inherited.HasLineClamp,
	}
	result := inline.Layout(items, global.Fonts, opts)
	n.Paragraph = &result

	var lineTop float64
	for _, line := range result.Lines {
		for _, a := range line.Atomics {
			child := atomics[a.Item.ID]
			if child == nil {
				continue
			}
			finalOrigin := geom.Point{
				X: contentOrigin.X + float32(a.X),
				Y: contentOrigin.Y + float32(lineTop) + float32(a.Y),
			}
			measureBox(child, finalOrigin, width, global)
		}
		lineTop += line.Height
	}
	return result.Height
}

// collectInlineItems builds inline.Item values from a run of inline-level
// children: text nodes become TextRuns, everything else (inline-block,
// inline-flex, image) becomes an AtomicItem whose size comes from a trial
// measurement at origin zero.
func collectInlineItems(children []*RenderNode, availWidth float64, global *GlobalContext) ([]inline.Item, map[int]*RenderNode) {
	var items []inline.Item
	atomics := map[int]*RenderNode{}
	nextID := 0
	for _, c := range children {
		if c.Kind == NodeText {
			items = append(items, inline.Item{Text: &inline.TextRun{
				Text:       inline.CollapseWhiteSpace(c.Text, c.Inherited.WhiteSpaceCollapse),
				FontFamily: c.Inherited.FontFamily,
				FontWeight: c.Inherited.FontWeight,
				Sized:      c.Sized,
				Color:      c.Sized.FillColor,
				WrapMode:   c.Inherited.TextWrapMode,
				Transform:  c.Inherited.TextTransform,
			}})
			continue
		}

		measureBox(c, geom.Point{}, availWidth, global)
		id := nextID
		nextID++
		atomics[id] = c
		items = append(items, inline.Item{Atomic: &inline.AtomicItem{
			ID:            id,
			Size:          geom.Size{Width: c.MarginBox.Width, Height: c.MarginBox.Height},
			Baseline:      float64(c.MarginBox.Height),
			VerticalAlign: c.Inherited.VerticalAlign,
		}})
	}
	return items, atomics
}
