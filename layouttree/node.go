// Package layouttree owns the input node tree, the resolved RenderNode
// tree, and block/flex/grid measurement (spec.md §4.11): Build resolves
// style down from the root, synthesizes anonymous block boxes around
// stray inline content, and measures every node's box. It imports inline
// one-directionally for FontContext and to delegate inline-level
// formatting contexts to inline.Layout; inline never imports back.
package layouttree

import (
	"rasterdom/geom"
	"rasterdom/inline"
	"rasterdom/style"
)

// NodeKind selects how a Node is measured and painted.
type NodeKind int

const (
	NodeContainer NodeKind = iota
	NodeText
	NodeImage
)

// Node is the declarative input tree (spec.md §3): a plain JSON-shaped
// document, no resolved style or layout information yet.
type Node struct {
	Kind     NodeKind    `json:"kind"`
	Style    style.Style `json:"style"`
	Text     string      `json:"text,omitempty"`
	ImageRef string      `json:"imageRef,omitempty"`
	Children []*Node     `json:"children,omitempty"`
}

// ImageSource is the resource-lookup collaborator GlobalContext.Images
// satisfies: render owns the concrete PersistentImageStore, layouttree
// only needs to ask it for an image's intrinsic size during measurement.
type ImageSource interface {
	IntrinsicSize(ref string) (geom.Size, bool)
}

// GlobalContext carries the document-wide collaborators and viewport
// sizing every node's measurement needs (spec.md §4.1 GlobalContext).
type GlobalContext struct {
	Fonts    inline.FontContext
	Images   ImageSource
	Viewport geom.Sizing
}

// RenderNode is one resolved, measured node (spec.md §4.1 RenderNode):
// Style cascades are gone, replaced by InheritedStyle + SizedFontStyle,
// and the box geometry fields are filled in by Measure.
type RenderNode struct {
	Kind     NodeKind
	Inherited style.InheritedStyle
	Sized     style.SizedFontStyle
	Text      string
	ImageRef  string
	Children  []*RenderNode

	// Box geometry, all in document pixels, filled in by measurement.
	MarginBox  geom.Rect
	BorderBox  geom.Rect
	PaddingBox geom.Rect
	ContentBox geom.Rect

	// Paragraph is non-nil only for a block whose inline formatting
	// context produced laid-out text (spec.md §4.10).
	Paragraph *inline.Result

	isAnonymous bool
}

// LayoutResult is the top-level output of Build+measure (spec.md §6
// MeasureLayout): the resolved tree plus the overall canvas size it
// measured against.
type LayoutResult struct {
	Root       *RenderNode
	CanvasSize geom.Size
}
