package cssvalue

import (
	"strconv"
	"strings"

	"rasterdom/style"
)

// ParseGridTrackList parses a `grid-template-columns`/`grid-template-rows`
// value: a space-separated list of `<length>`, `<number>fr`, or `auto`
// tracks (spec.md §4.1 grid layout).
func ParseGridTrackList(value string) (style.GridTrackList, error) {
	fields := strings.Fields(value)
	var tracks []style.GridTrack
	for _, f := range fields {
		tracks = append(tracks, parseOneTrack(f))
	}
	return style.GridTrackList{Tracks: tracks}, nil
}

func parseOneTrack(f string) style.GridTrack {
	switch strings.ToLower(f) {
	case "auto":
		return style.GridTrack{Kind: style.GridTrackKindAuto}
	case "min-content":
		return style.GridTrack{Kind: style.GridTrackKindMinContent}
	case "max-content":
		return style.GridTrack{Kind: style.GridTrackKindMaxContent}
	}
	if strings.HasSuffix(f, "fr") {
		if v, err := strconv.ParseFloat(strings.TrimSuffix(f, "fr"), 64); err == nil {
			return style.GridTrack{Kind: style.GridTrackKindFraction, Value: v}
		}
	}
	if l, err := ParseLength(f); err == nil {
		return style.GridTrack{Kind: style.GridTrackKindFixed, Value: float64(l.Value)}
	}
	return style.GridTrack{Kind: style.GridTrackKindAuto}
}
