package layouttree

import (
	"testing"

	"rasterdom/geom"
	"rasterdom/inline"
	"rasterdom/paint/text"
	"rasterdom/style"
)

// fixedFont is a minimal FontContext stub: one glyph per rune, fixed
// advance/metrics, mirroring inline's own test stub.
type fixedFont struct{ advance float64 }

func (f fixedFont) Shape(run string, family style.FontFamilyList, weight int, sizePx float64) []inline.ShapedGlyph {
	glyphs := make([]inline.ShapedGlyph, 0, len([]rune(run)))
	for i, r := range []rune(run) {
		glyphs = append(glyphs, inline.ShapedGlyph{GID: uint32(r), Advance: f.advance, Cluster: i})
	}
	return glyphs
}

func (f fixedFont) Metrics(family style.FontFamilyList, weight int, sizePx float64) inline.Metrics {
	return inline.Metrics{AscentPx: sizePx * 0.8, DescentPx: sizePx * 0.2}
}

func (f fixedFont) Glyphs(family style.FontFamilyList, weight int) text.GlyphSource { return nil }

type fixedImages struct{ size geom.Size }

func (f fixedImages) IntrinsicSize(ref string) (geom.Size, bool) {
	if f.size.Width == 0 {
		return geom.Size{}, false
	}
	return f.size, true
}

func testGlobal() *GlobalContext {
	return &GlobalContext{
		Fonts:  fixedFont{advance: 10},
		Images: fixedImages{size: geom.Size{Width: 200, Height: 100}},
		Viewport: geom.Sizing{
			ViewportWidth: 800, ViewportHeight: 600,
			RootFontSize: 16, FontSize: 16, DPR: 1,
		},
	}
}

func textNode(s string) *Node {
	return &Node{Kind: NodeText, Text: s}
}

func TestBuild_ResolvesCascadeAndSynthesizesAnonymousBlocks(t *testing.T) {
	root := &Node{
		Kind: NodeContainer,
		Children: []*Node{
			textNode("loose text"),
			{Kind: NodeContainer, Style: style.Style{Display: style.ValueOf(style.DisplayBlock)}},
		},
	}
	rn := Build(root, testGlobal())
	if len(rn.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2 (anonymous block + real block)", len(rn.Children))
	}
	if rn.Children[0].Kind != NodeContainer || !rn.Children[0].isAnonymous {
		t.Errorf("first child should be a synthesized anonymous block wrapping the loose text")
	}
	if len(rn.Children[0].Children) != 1 || rn.Children[0].Children[0].Text != "loose text" {
		t.Errorf("anonymous block should wrap the text node, got %+v", rn.Children[0].Children)
	}
}

func TestMeasure_BlockStacksChildrenVertically(t *testing.T) {
	root := &Node{
		Kind: NodeContainer,
		Children: []*Node{
			{Kind: NodeContainer, Style: style.Style{Height: style.ValueOf(geom.Px(50))}},
			{Kind: NodeContainer, Style: style.Style{Height: style.ValueOf(geom.Px(30))}},
		},
	}
	rn := Build(root, testGlobal())
	result := Measure(rn, testGlobal(), geom.Size{Width: 800, Height: 600})

	if len(result.Root.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(result.Root.Children))
	}
	first, second := result.Root.Children[0], result.Root.Children[1]
	if first.MarginBox.Y != 0 {
		t.Errorf("first child Y = %v, want 0", first.MarginBox.Y)
	}
	if second.MarginBox.Y != first.MarginBox.Height {
		t.Errorf("second child Y = %v, want %v (stacked below first)", second.MarginBox.Y, first.MarginBox.Height)
	}
}

func TestMeasure_TextProducesParagraph(t *testing.T) {
	root := &Node{Kind: NodeContainer, Children: []*Node{textNode("hello world")}}
	rn := Build(root, testGlobal())
	Measure(rn, testGlobal(), geom.Size{Width: 800, Height: 600})

	if rn.Paragraph == nil {
		t.Fatal("Paragraph is nil, want a laid-out result for a pure-inline-content block")
	}
	if len(rn.Paragraph.Lines) == 0 {
		t.Error("Paragraph has no lines")
	}
}

func TestMeasure_ImageUsesIntrinsicAspect(t *testing.T) {
	root := &Node{
		Kind:     NodeImage,
		ImageRef: "pic",
		Style:    style.Style{Width: style.ValueOf(geom.Px(100))},
	}
	rn := Build(root, testGlobal())
	Measure(rn, testGlobal(), geom.Size{Width: 800, Height: 600})

	// intrinsic 200x100 -> aspect 0.5, width 100 -> expected height 50
	if rn.ContentBox.Height != 50 {
		t.Errorf("content height = %v, want 50 for a 2:1 intrinsic image at width 100", rn.ContentBox.Height)
	}
}

func TestMeasure_FlexRowDistributesGrow(t *testing.T) {
	root := &Node{
		Kind: NodeContainer,
		Style: style.Style{
			Display: style.ValueOf(style.DisplayFlex),
		},
		Children: []*Node{
			{Kind: NodeContainer, Style: style.Style{
				FlexGrow:  style.ValueOf(1.0),
				FlexBasis: style.ValueOf(geom.Px(0)),
			}},
			{Kind: NodeContainer, Style: style.Style{
				FlexGrow:  style.ValueOf(1.0),
				FlexBasis: style.ValueOf(geom.Px(0)),
			}},
		},
	}
	rn := Build(root, testGlobal())
	Measure(rn, testGlobal(), geom.Size{Width: 800, Height: 600})

	if len(rn.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(rn.Children))
	}
	a, b := rn.Children[0], rn.Children[1]
	if a.MarginBox.Width <= 0 || b.MarginBox.Width <= 0 {
		t.Fatalf("both flex children should grow to share the row width, got %v and %v", a.MarginBox.Width, b.MarginBox.Width)
	}
	diff := a.MarginBox.Width - b.MarginBox.Width
	if diff < -1 || diff > 1 {
		t.Errorf("equal flex-grow children should split space evenly, got %v and %v", a.MarginBox.Width, b.MarginBox.Width)
	}
}

func TestMeasure_GridPlacesChildrenInColumns(t *testing.T) {
	root := &Node{
		Kind: NodeContainer,
		Style: style.Style{
			Display: style.ValueOf(style.DisplayGrid),
			GridTemplateColumns: style.ValueOf(style.GridTrackList{
				Tracks: []style.GridTrack{
					{Kind: style.GridTrackKindFraction, Value: 1},
					{Kind: style.GridTrackKindFraction, Value: 1},
				},
			}),
		},
		Children: []*Node{
			{Kind: NodeContainer, Style: style.Style{Height: style.ValueOf(geom.Px(20))}},
			{Kind: NodeContainer, Style: style.Style{Height: style.ValueOf(geom.Px(20))}},
			{Kind: NodeContainer, Style: style.Style{Height: style.ValueOf(geom.Px(20))}},
		},
	}
	rn := Build(root, testGlobal())
	Measure(rn, testGlobal(), geom.Size{Width: 800, Height: 600})

	if rn.Children[0].MarginBox.X != 0 {
		t.Errorf("first child X = %v, want 0", rn.Children[0].MarginBox.X)
	}
	if rn.Children[1].MarginBox.X <= rn.Children[0].MarginBox.X {
		t.Errorf("second child should be in the second column, to the right of the first")
	}
	if rn.Children[2].MarginBox.Y <= rn.Children[0].MarginBox.Y {
		t.Errorf("third child should wrap onto the second row")
	}
}
