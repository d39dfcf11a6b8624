package style

import (
	"rasterdom/common"
	"rasterdom/geom"
)

// Style is one node's unresolved style: every property is a Prop[T] cascade
// slot. A Style is built by repeated merge_from calls, one per cascade
// layer (stylesheet rule order, inline style, Tailwind utility classes),
// then turned into an InheritedStyle by resolve (spec.md §4.1).
//
// The property set below is a representative slice of the ~120 named
// properties spec.md describes: one or more per category (box model,
// background, border, text, transform, flex, grid, clip/mask), enough to
// exercise every cascade/shorthand/inheritance rule and every downstream
// component. Extending it to the full set is adding more fields of the
// same shape, not new mechanism.
type Style struct {
	Display  Prop[Display]
	Position Prop[Position]

	Top    Prop[geom.Length]
	Right  Prop[geom.Length]
	Bottom Prop[geom.Length]
	Left   Prop[geom.Length]
	Inset  Prop[geom.Sides[geom.Length]] // shorthand for Top/Right/Bottom/Left

	Width     Prop[geom.Length]
	Height    Prop[geom.Length]
	MinWidth  Prop[geom.Length]
	MinHeight Prop[geom.Length]
	MaxWidth  Prop[geom.Length]
	MaxHeight Prop[geom.Length]

	MarginTop    Prop[geom.Length]
	MarginRight  Prop[geom.Length]
	MarginBottom Prop[geom.Length]
	MarginLeft   Prop[geom.Length]
	Margin       Prop[geom.Sides[geom.Length]] // shorthand

	PaddingTop    Prop[geom.Length]
	PaddingRight  Prop[geom.Length]
	PaddingBottom Prop[geom.Length]
	PaddingLeft   Prop[geom.Length]
	Padding       Prop[geom.Sides[geom.Length]] // shorthand

	OverflowX Prop[Overflow]
	OverflowY Prop[Overflow]

	Opacity   Prop[float64]
	Isolation Prop[Isolation]
	ZIndex    Prop[int]
	HasZIndex Prop[bool]

	BackgroundColor Prop[geom.Color]
	BackgroundImage Prop[BackgroundImage]
	BackgroundPositionX Prop[geom.Length]
	BackgroundPositionY Prop[geom.Length]
	BackgroundSize      Prop[BackgroundLayer]
	BackgroundRepeatX   Prop[BackgroundRepeatKeyword]
	BackgroundRepeatY   Prop[BackgroundRepeatKeyword]
	BackgroundClip      Prop[BackgroundClip]
	BackgroundBlendMode Prop[BlendMode]
	Background          Prop[[]BackgroundLayer] // shorthand list

	BorderTopWidth    Prop[geom.Length]
	BorderRightWidth  Prop[geom.Length]
	BorderBottomWidth Prop[geom.Length]
	BorderLeftWidth   Prop[geom.Length]
	BorderTopStyle    Prop[BorderStyleKind]
	BorderRightStyle  Prop[BorderStyleKind]
	BorderBottomStyle Prop[BorderStyleKind]
	BorderLeftStyle   Prop[BorderStyleKind]
	BorderTopColor    Prop[geom.Color]
	BorderRightColor  Prop[geom.Color]
	BorderBottomColor Prop[geom.Color]
	BorderLeftColor   Prop[geom.Color]
	Border            Prop[BorderSide] // shorthand, applies to all four sides

	BorderTopLeftRadius     Prop[CornerRadius]
	BorderTopRightRadius    Prop[CornerRadius]
	BorderBottomRightRadius Prop[CornerRadius]
	BorderBottomLeftRadius  Prop[CornerRadius]
	BorderRadius            Prop[CornerRadius] // shorthand, all four corners

	BoxShadow  Prop[[]ShadowValue]
	ClipPath   Prop[ClipPathValue]

	Transform       Prop[TransformList]
	TransformOrigin Prop[geom.SpacePair[geom.Length]]

	Color             Prop[geom.Color] // inherited
	FontFamily        Prop[FontFamilyList] // inherited
	FontSize          Prop[geom.Length]    // inherited
	FontWeight        Prop[int]            // inherited
	LineHeight        Prop[geom.Length]    // inherited
	LetterSpacing     Prop[geom.Length]    // inherited
	WordSpacing       Prop[geom.Length]    // inherited
	TextAlign         Prop[TextAlign]      // inherited
	TextTransform     Prop[TextTransform]  // inherited
	WhiteSpaceCollapse Prop[WhiteSpaceCollapse] // inherited
	TextWrapMode      Prop[TextWrapMode]       // inherited
	TextWrapStyle     Prop[TextWrapStyle]      // inherited
	TextOverflow      Prop[TextOverflow]
	LineClamp         Prop[int]
	HasLineClamp      Prop[bool]
	TextShadow        Prop[[]ShadowValue] // inherited
	TextDecorationColor   Prop[geom.Color]
	TextDecorationLine    Prop[TextDecorationLine]
	TextDecorationSkipInk Prop[bool]
	VerticalAlign       Prop[VerticalAlign]
	ImageRendering      Prop[common.ImageRendering]

	ObjectFit      Prop[ObjectFit]
	ObjectPosition Prop[geom.SpacePair[geom.Length]]

	FlexDirection  Prop[FlexDirection]
	FlexWrap       Prop[FlexWrap]
	JustifyContent Prop[JustifyContent]
	AlignItems     Prop[AlignItems]
	AlignSelf      Prop[AlignItems]
	FlexGrow       Prop[float64]
	FlexShrink     Prop[float64]
	FlexBasis      Prop[geom.Length]
	HasFlexBasisAuto Prop[bool]
	Gap              Prop[geom.SpacePair[geom.Length]]

	GridTemplateColumns Prop[GridTrackList]
	GridTemplateRows    Prop[GridTrackList]

	MixBlendMode Prop[BlendMode]
}
