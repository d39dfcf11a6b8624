package inline

import (
	"testing"

	"rasterdom/geom"
	"rasterdom/paint/text"
	"rasterdom/style"
)

// fixedFont is a FontContext stub: one glyph per rune, fixed advance,
// fixed metrics, no real glyph outlines (Outline/Bitmap unused by these
// tests).
type fixedFont struct {
	advance float64
}

func (f fixedFont) Shape(run string, family style.FontFamilyList, weight int, sizePx float64) []ShapedGlyph {
	glyphs := make([]ShapedGlyph, 0, len([]rune(run)))
	for i, r := range []rune(run) {
		glyphs = append(glyphs, ShapedGlyph{GID: uint32(r), Advance: f.advance, Cluster: i})
	}
	return glyphs
}

func (f fixedFont) Metrics(family style.FontFamilyList, weight int, sizePx float64) Metrics {
	return Metrics{AscentPx: sizePx * 0.8, DescentPx: sizePx * 0.2}
}

func (f fixedFont) Glyphs(family style.FontFamilyList, weight int) text.GlyphSource {
	return nil
}

func plainRun(s string) *TextRun {
	return &TextRun{
		Text:       s,
		FontFamily: style.FontFamilyList{Names: []string{"sans-serif"}},
		FontWeight: 400,
		Sized:      style.SizedFontStyle{FontSizePx: 16},
		WrapMode:   style.TextWrapModeWrap,
	}
}

func TestLayout_SingleLineFitsWithinMaxWidth(t *testing.T) {
	items := []Item{{Text: plainRun("hi")}}
	result := Layout(items, fixedFont{advance: 10}, Options{MaxWidth: 1000, Align: style.TextAlignLeft})
	if len(result.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(result.Lines))
	}
}

func TestLayout_WrapsAtWordBoundary(t *testing.T) {
	items := []Item{{Text: plainRun("aaa bbb ccc")}}
	result := Layout(items, fixedFont{advance: 10}, Options{MaxWidth: 50, Align: style.TextAlignLeft})
	if len(result.Lines) < 2 {
		t.Fatalf("len(Lines) = %d, want >= 2 for a narrow max width", len(result.Lines))
	}
}

func TestLayout_NowrapNeverBreaks(t *testing.T) {
	run := plainRun("aaa bbb ccc")
	run.WrapMode = style.TextWrapModeNowrap
	result := Layout([]Item{{Text: run}}, fixedFont{advance: 10}, Options{MaxWidth: 10, Align: style.TextAlignLeft})
	if len(result.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1 for nowrap", len(result.Lines))
	}
}

func TestLayout_LineClampTruncates(t *testing.T) {
	items := []Item{{Text: plainRun("aaa bbb ccc ddd eee")}}
	result := Layout(items, fixedFont{advance: 10}, Options{
		MaxWidth: 40, Align: style.TextAlignLeft,
		HasLineClamp: true, LineClamp: 2,
	})
	if len(result.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(result.Lines))
	}
	if !result.Truncated {
		t.Error("Truncated = false, want true")
	}
}

func TestLayout_CenterAlignShiftsRuns(t *testing.T) {
	items := []Item{{Text: plainRun("hi")}}
	result := Layout(items, fixedFont{advance: 10}, Options{MaxWidth: 100, Align: style.TextAlignCenter})
	if len(result.Lines) != 1 || len(result.Lines[0].Runs) != 1 {
		t.Fatalf("unexpected line shape: %+v", result.Lines)
	}
	if result.Lines[0].Runs[0].X <= 0 {
		t.Errorf("center-aligned run X = %v, want > 0", result.Lines[0].Runs[0].X)
	}
}

func TestLayout_AtomicItemReservesWidth(t *testing.T) {
	items := []Item{{Atomic: &AtomicItem{ID: 1, Size: geom.Size{Width: 30, Height: 10}, Baseline: 10}}}
	result := Layout(items, fixedFont{advance: 10}, Options{MaxWidth: 1000, Align: style.TextAlignLeft})
	if len(result.Lines) != 1 || len(result.Lines[0].Atomics) != 1 {
		t.Fatalf("expected one atomic on one line, got %+v", result.Lines)
	}
	if result.Lines[0].Width != 30 {
		t.Errorf("line width = %v, want 30", result.Lines[0].Width)
	}
}

func TestCollapseWhiteSpace(t *testing.T) {
	cases := []struct {
		in   string
		mode style.WhiteSpaceCollapse
		want string
	}{
		{"a   b\nc", style.WhiteSpaceCollapseCollapse, "a b c"},
		{"a   b\nc", style.WhiteSpaceCollapsePreserve, "a   b\nc"},
		{"a   b\nc", style.WhiteSpaceCollapsePreserveBreaks, "a b\nc"},
	}
	for _, c := range cases {
		if got := CollapseWhiteSpace(c.in, c.mode); got != c.want {
			t.Errorf("CollapseWhiteSpace(%q, %v) = %q, want %q", c.in, c.mode, got, c.want)
		}
	}
}

func TestApplyTextTransform(t *testing.T) {
	if got := ApplyTextTransform("hello", style.TextTransformUppercase); got != "HELLO" {
		t.Errorf("uppercase = %q, want HELLO", got)
	}
	if got := ApplyTextTransform("HELLO", style.TextTransformLowercase); got != "hello" {
		t.Errorf("lowercase = %q, want hello", got)
	}
	if got := ApplyTextTransform("x", style.TextTransformNone); got != "x" {
		t.Errorf("none = %q, want x", got)
	}
}
