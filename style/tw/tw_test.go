package tw

import "testing"

func TestParseTokenUnrecognizedIsInert(t *testing.T) {
	p := ParseToken("totally-not-a-utility-xyz")
	if p.Style.Display.IsSet() {
		t.Errorf("unrecognized token should not set Display")
	}
}

func TestParseTokenImportantPrefix(t *testing.T) {
	p := ParseToken("!bg-red-500")
	if !p.Important {
		t.Errorf("expected Important=true")
	}
	if !p.Style.BackgroundColor.IsSet() {
		t.Errorf("expected BackgroundColor set")
	}
}

func TestParseTokenBreakpointPrefix(t *testing.T) {
	p := ParseToken("lg:flex")
	if p.Breakpoint != BreakpointLg {
		t.Errorf("Breakpoint = %v, want lg", p.Breakpoint)
	}
	if !p.Style.Display.IsSet() {
		t.Errorf("expected Display set")
	}
}

func TestOrderBucketing(t *testing.T) {
	patches := []Patch{
		{Raw: "important-no-bp", Important: true},
		{Raw: "plain"},
		{Raw: "bp", Breakpoint: BreakpointMd},
		{Raw: "important-bp", Important: true, Breakpoint: BreakpointSm},
	}
	ordered := Order(patches)
	if ordered[0].Raw != "plain" {
		t.Errorf("bucket 0 should sort first, got %s", ordered[0].Raw)
	}
	if ordered[len(ordered)-1].Raw != "important-bp" {
		t.Errorf("important+breakpoint should sort last, got %s", ordered[len(ordered)-1].Raw)
	}
}

func TestBreakpointMatches(t *testing.T) {
	if !BreakpointLg.Matches(1100, 16, 1) {
		t.Errorf("1100px viewport should satisfy lg (1024px threshold)")
	}
	if BreakpointLg.Matches(900, 16, 1) {
		t.Errorf("900px viewport should not satisfy lg")
	}
}
