package mask

import (
	"strconv"
	"unicode"

	"rasterdom/geom"
)

// ParseSVGPath parses an SVG path data string (the argument to a
// `clip-path: path(...)` function, spec.md §4.2) into a Path. It supports
// the M/L/H/V/C/Q/Z commands in both absolute and relative form; Q
// (quadratic) segments are elevated to the cubic CurveTo form Render
// expects.
func ParseSVGPath(d string) Path {
	toks := tokenizePathData(d)
	i := 0
	next := func() float64 {
		if i >= len(toks) {
			return 0
		}
		v, _ := strconv.ParseFloat(toks[i], 64)
		i++
		return v
	}

	var path Path
	var cur, start geom.Point
	var cmd byte
	for i < len(toks) {
		if len(toks[i]) == 1 && isCommandLetter(toks[i][0]) {
			cmd = toks[i][0]
			i++
		}
		switch cmd {
		case 'M', 'm':
			x, y := next(), next()
			if cmd == 'm' {
				x, y = float64(cur.X)+x, float64(cur.Y)+y
			}
			cur = geom.Point{X: float32(x), Y: float32(y)}
			start = cur
			path = append(path, Command{Kind: MoveTo, End: cur})
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'L', 'l':
			x, y := next(), next()
			if cmd == 'l' {
				x, y = float64(cur.X)+x, float64(cur.Y)+y
			}
			cur = geom.Point{X: float32(x), Y: float32(y)}
			path = append(path, Command{Kind: LineTo, End: cur})
		case 'H', 'h':
			x := next()
			if cmd == 'h' {
				x += float64(cur.X)
			}
			cur = geom.Point{X: float32(x), Y: cur.Y}
			path = append(path, Command{Kind: LineTo, End: cur})
		case 'V', 'v':
			y := next()
			if cmd == 'v' {
				y += float64(cur.Y)
			}
			cur = geom.Point{X: cur.X, Y: float32(y)}
			path = append(path, Command{Kind: LineTo, End: cur})
		case 'C', 'c':
			x1, y1, x2, y2, x, y := next(), next(), next(), next(), next(), next()
			if cmd == 'c' {
				x1, y1 = x1+float64(cur.X), y1+float64(cur.Y)
				x2, y2 = x2+float64(cur.X), y2+float64(cur.Y)
				x, y = x+float64(cur.X), y+float64(cur.Y)
			}
			end := geom.Point{X: float32(x), Y: float32(y)}
			path = append(path, Command{Kind: CurveTo, CP1: geom.Point{X: float32(x1), Y: float32(y1)}, CP2: geom.Point{X: float32(x2), Y: float32(y2)}, End: end})
			cur = end
		case 'Q', 'q':
			qx, qy, x, y := next(), next(), next(), next()
			if cmd == 'q' {
				qx, qy = qx+float64(cur.X), qy+float64(cur.Y)
				x, y = x+float64(cur.X), y+float64(cur.Y)
			}
			// Elevate quadratic (cur, q, end) to cubic control points.
			cp1 := geom.Point{X: cur.X + float32(2.0/3.0*(qx-float64(cur.X))), Y: cur.Y + float32(2.0/3.0*(qy-float64(cur.Y)))}
			end := geom.Point{X: float32(x), Y: float32(y)}
			cp2 := geom.Point{X: end.X + float32(2.0/3.0*(qx-float64(end.X))), Y: end.Y + float32(2.0/3.0*(qy-float64(end.Y)))}
			path = append(path, Command{Kind: CurveTo, CP1: cp1, CP2: cp2, End: end})
			cur = end
		case 'Z', 'z':
			path = append(path, Command{Kind: ClosePath})
			cur = start
		default:
			i++
		}
	}
	return path
}

func isCommandLetter(b byte) bool {
	switch b {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'Q', 'q', 'Z', 'z':
		return true
	}
	return false
}

// tokenizePathData splits SVG path data into command letters and numbers,
// tolerating the format's comma-or-whitespace separators and run-together
// numbers like "1.5-2.3".
func tokenizePathData(d string) []string {
	var toks []string
	i := 0
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case isCommandLetter(c):
			toks = append(toks, string(c))
			i++
		case c == ',' || unicode.IsSpace(rune(c)):
			i++
		case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
			j := i + 1
			for j < n && (d[j] == '.' || (d[j] >= '0' && d[j] <= '9') || d[j] == 'e' || d[j] == 'E') {
				j++
			}
			toks = append(toks, d[i:j])
			i = j
		default:
			i++
		}
	}
	return toks
}
