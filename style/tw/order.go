package tw

import (
	"sort"
	"strings"
)

// bucket classifies a Patch into one of the four cascade sub-layers
// spec.md §4.1 describes for Tailwind utilities: non-important/
// no-breakpoint first, then breakpoint, then important/no-breakpoint,
// then important+breakpoint.
func (p Patch) bucket() int {
	switch {
	case !p.Important && p.Breakpoint == BreakpointNone:
		return 0
	case !p.Important:
		return 1
	case p.Important && p.Breakpoint == BreakpointNone:
		return 2
	default:
		return 3
	}
}

// Order sorts parsed utility-token patches low-to-high cascade priority,
// matching spec.md §4.1's bucket ordering and, within a bucket, letting a
// more specific (larger-threshold) breakpoint win over a less specific
// one. Sort is stable so same-bucket same-specificity tokens keep source
// order (CSS's own "last declaration wins" tiebreak).
func Order(patches []Patch) []Patch {
	out := make([]Patch, len(patches))
	copy(out, patches)
	sort.SliceStable(out, func(i, j int) bool {
		bi, bj := out[i].bucket(), out[j].bucket()
		if bi != bj {
			return bi < bj
		}
		return out[i].Breakpoint.Specificity() < out[j].Breakpoint.Specificity()
	})
	return out
}

// ParseClassList parses a whitespace-separated Tailwind-like utility
// string (the `Style.tw` field, spec.md §6) into cascade-ordered patches.
func ParseClassList(classList string) []Patch {
	fields := strings.Fields(classList)
	patches := make([]Patch, 0, len(fields))
	for _, f := range fields {
		patches = append(patches, ParseToken(f))
	}
	return Order(patches)
}
