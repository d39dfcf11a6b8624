package layouttree

import (
	"rasterdom/style"
)

// Build resolves the input tree's cascade top-down into a RenderNode tree
// (spec.md §4.1 resolve/compute_lengths, §4.11 anonymous block synthesis),
// but does not measure it — call Measure on the result.
func Build(root *Node, global *GlobalContext) *RenderNode {
	return buildNode(root, style.DefaultInherited(), global)
}

func buildNode(n *Node, parentInherited style.InheritedStyle, global *GlobalContext) *RenderNode {
	inherited := style.Resolve(n.Style, parentInherited)

	sizing := global.Viewport
	sizing.FontSize = parentInherited.FontSize.ToPx(global.Viewport, global.Viewport.FontSize)
	sfs := style.ComputeLengths(&inherited, sizing)

	rn := &RenderNode{
		Kind:      n.Kind,
		Inherited: inherited,
		Sized:     sfs,
		Text:      n.Text,
		ImageRef:  n.ImageRef,
	}

	children := make([]*RenderNode, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, buildNode(c, inherited, global))
	}
	rn.Children = synthesizeAnonymousBlocks(rn, children)
	return rn
}

// synthesizeAnonymousBlocks wraps runs of inline-level children in an
// anonymous block box when they're interleaved with block-level siblings
// under a block container (spec.md §4.11: "a block container whose
// children are a mix of block-level and inline-level boxes gets its
// inline-level runs wrapped in anonymous block boxes").
func synthesizeAnonymousBlocks(parent *RenderNode, children []*RenderNode) []*RenderNode {
	if parent.Inherited.Display != style.DisplayBlock || !hasMixedLevels(children) {
		return children
	}

	var out []*RenderNode
	var run []*RenderNode
	flush := func() {
		if len(run) == 0 {
			return
		}
		anon := &RenderNode{
			Kind:        NodeContainer,
			Inherited:   anonymousBlockStyle(parent.Inherited),
			Sized:       parent.Sized,
			Children:    run,
			isAnonymous: true,
		}
		out = append(out, anon)
		run = nil
	}
	for _, c := range children {
		if isInlineLevel(c) {
			run = append(run, c)
		} else {
			flush()
			out = append(out, c)
		}
	}
	flush()
	return out
}

func hasMixedLevels(children []*RenderNode) bool {
	sawBlock, sawInline := false, false
	for _, c := range children {
		if isInlineLevel(c) {
			sawInline = true
		} else {
			sawBlock = true
		}
	}
	return sawBlock && sawInline
}

func isInlineLevel(n *RenderNode) bool {
	if n.Kind == NodeText {
		return true
	}
	switch n.Inherited.Display {
	case style.DisplayInline, style.DisplayInlineBlock, style.DisplayInlineFlex, style.DisplayInlineGrid:
		return true
	default:
		return false
	}
}

// anonymousBlockStyle inherits every inheritable property from parent and
// takes CSS initial values for everything else (spec.md §4.11: anonymous
// boxes behave as if none of their non-inherited properties were
// specified).
func anonymousBlockStyle(parent style.InheritedStyle) style.InheritedStyle {
	anon := style.DefaultInherited()
	anon.Color = parent.Color
	anon.FontFamily = parent.FontFamily
	anon.FontSize = parent.FontSize
	anon.FontWeight = parent.FontWeight
	anon.LineHeight = parent.LineHeight
	anon.LetterSpacing = parent.LetterSpacing
	anon.WordSpacing = parent.WordSpacing
	anon.TextAlign = parent.TextAlign
	anon.TextTransform = parent.TextTransform
	anon.WhiteSpaceCollapse = parent.WhiteSpaceCollapse
	anon.TextWrapMode = parent.TextWrapMode
	anon.TextWrapStyle = parent.TextWrapStyle
	anon.TextShadow = parent.TextShadow
	anon.Display = style.DisplayBlock
	return anon
}
