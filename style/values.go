package style

import "rasterdom/geom"

// ColorStop is one stop in a gradient's color list (spec.md §4.3): a color,
// an optional explicit position, and for multi-position stops (double-stop
// hard edges) a second position.
type ColorStop struct {
	Color    geom.Color
	Position geom.Length
	HasPos   bool
}

// GradientValue is the parsed, unresolved form of a linear/radial/conic
// gradient function (spec.md §4.3 GradientSampler).
type GradientValue struct {
	Kind GradientKind

	// Linear
	AngleRadians float64

	// Radial
	Shape       GradientShape
	SizeKeyword GradientSizeKeyword
	HasSize     bool
	Radius      geom.SpacePair[geom.Length]
	Center      geom.SpacePair[geom.Length]

	// Conic
	FromRadians float64

	Stops          []ColorStop
	Interpolation  ColorSpace
	Repeating      bool
}

// GradientKind distinguishes the three CSS gradient functions.
// ENUM(linear, radial, conic)
type GradientKind int

// ColorSpace is the interpolation color space a gradient samples in
// (spec.md §4.3 step 2).
// ENUM(srgb, oklab)
type ColorSpace int

// BackgroundLayer is one layer of a (possibly multi-layer) `background`
// shorthand (spec.md §4.7).
type BackgroundLayer struct {
	Image      BackgroundImage
	RepeatX    BackgroundRepeatKeyword
	RepeatY    BackgroundRepeatKeyword
	PositionX  geom.Length
	PositionY  geom.Length
	SizeMode   BackgroundSizeKeyword
	SizeWidth  geom.Length
	SizeHeight geom.Length
	HasSize    bool
	Clip       BackgroundClip
	Origin     BackgroundClip
	BlendMode  BlendMode
}

// BackgroundImage is either a plain color, a gradient, or a referenced
// raster image (spec.md §4.7/§4.9).
type BackgroundImage struct {
	Kind     BackgroundImageKind
	Color    geom.Color
	Gradient GradientValue
	ImageRef string
}

// BackgroundImageKind tags BackgroundImage's active field.
// ENUM(none, color, gradient, image)
type BackgroundImageKind int

// ShadowValue is one box-shadow or text-shadow layer (spec.md §4.4/§4.10).
type ShadowValue struct {
	OffsetX geom.Length
	OffsetY geom.Length
	Blur    geom.Length
	Spread  geom.Length
	Color   geom.Color
	Inset   bool
}

// TextDecorationLine is the CSS `text-decoration-line` value domain: a
// combinable set of underline/overline/line-through, not a single keyword
// (spec.md §4.10 draw stage a/b/e paints each independently).
type TextDecorationLine struct {
	Underline, Overline, LineThrough bool
}

// TransformFunc is one function in a `transform` list (spec.md §4.2).
type TransformFunc struct {
	Kind        TransformKind
	TranslateX  geom.Length
	TranslateY  geom.Length
	ScaleX      float64
	ScaleY      float64
	AngleRadians float64
	SkewXRadians float64
	SkewYRadians float64
	Matrix      geom.Affine
}

// TransformKind tags TransformFunc's active fields.
// ENUM(translate, scale, rotate, skew, matrix)
type TransformKind int

// TransformList is the parsed, unresolved `transform` property value: an
// ordered list of functions composed left to right (spec.md §4.2).
type TransformList struct {
	Funcs []TransformFunc
}

// BorderSide is one edge's resolved border (width/style/color), the unit
// `border-top`/`border-right`/… shorthands expand into (spec.md §4.6).
type BorderSide struct {
	Width geom.Length
	Style BorderStyleKind
	Color geom.Color
}

// CornerRadius is one corner's (rx, ry) pair for `border-radius` (spec.md
// §4.2/§4.6).
type CornerRadius = geom.SpacePair[geom.Length]

// ClipShapeKind is the clip-path/basic-shape function family (spec.md §4.2).
// ENUM(none, inset, circle, ellipse, polygon, path)
type ClipShapeKind int

// ClipPathValue is the parsed `clip-path` value: a basic shape plus fill
// rule, rasterized by MaskEngine (spec.md §4.4).
type ClipPathValue struct {
	Kind     ClipShapeKind
	Inset    geom.Sides[geom.Length]
	Radius   geom.SpacePair[geom.Length]
	CenterX  geom.Length
	CenterY  geom.Length
	Points   []geom.SpacePair[geom.Length]
	PathData string
	Rule     FillRule
}

// GridTrackKind distinguishes fixed, fr-unit, and auto grid tracks
// (spec.md §4.1 grid layout; grid-template-columns/rows).
// ENUM(fixed, fraction, auto, minContent, maxContent)
type GridTrackKind int

// GridTrack is one entry of a `grid-template-columns`/`-rows` track list.
type GridTrack struct {
	Kind  GridTrackKind
	Value float64 // px for Fixed, fr count for Fraction
}

// GridTrackList is the parsed track list for one grid axis.
type GridTrackList struct {
	Tracks []GridTrack
	Gap    geom.Length
}

// FontFamilyList is the parsed `font-family` fallback chain.
type FontFamilyList struct {
	Names []string
}
