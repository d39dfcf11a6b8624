package style

import (
	"rasterdom/common"
	"rasterdom/geom"
)

// InheritedStyle is the fully resolved style for one node: no Unset,
// Initial, or Inherit remains, every property holds a concrete value
// (spec.md §4.1 InheritedStyle, §8 "every property in InheritedStyle has
// a definite value after resolve").
type InheritedStyle struct {
	Display  Display
	Position Position

	Inset geom.Sides[geom.Length]

	Width, Height             geom.Length
	MinWidth, MinHeight       geom.Length
	MaxWidth, MaxHeight       geom.Length

	Margin  geom.Sides[geom.Length]
	Padding geom.Sides[geom.Length]

	OverflowX, OverflowY Overflow

	Opacity   float64
	Isolation Isolation
	ZIndex    int
	HasZIndex bool

	BackgroundColor geom.Color
	BackgroundLayers []BackgroundLayer
	BackgroundClip   BackgroundClip
	BackgroundBlendMode BlendMode

	BorderTop, BorderRight, BorderBottom, BorderLeft BorderSide
	BorderRadiusTopLeft, BorderRadiusTopRight         CornerRadius
	BorderRadiusBottomRight, BorderRadiusBottomLeft    CornerRadius

	BoxShadow []ShadowValue
	ClipPath  ClipPathValue

	Transform       TransformList
	TransformOrigin geom.SpacePair[geom.Length]

	Color              geom.Color
	FontFamily         FontFamilyList
	FontSize           geom.Length
	FontWeight         int
	LineHeight         geom.Length
	LetterSpacing      geom.Length
	WordSpacing        geom.Length
	TextAlign          TextAlign
	TextTransform      TextTransform
	WhiteSpaceCollapse WhiteSpaceCollapse
	TextWrapMode       TextWrapMode
	TextWrapStyle      TextWrapStyle
	TextOverflow       TextOverflow
	LineClamp          int
	HasLineClamp       bool
	TextShadow         []ShadowValue
	TextDecorationColor   geom.Color
	TextDecorationLine    TextDecorationLine
	TextDecorationSkipInk bool
	VerticalAlign       VerticalAlign
	ImageRendering      common.ImageRendering

	ObjectFit      ObjectFit
	ObjectPosition geom.SpacePair[geom.Length]

	FlexDirection    FlexDirection
	FlexWrap         FlexWrap
	JustifyContent   JustifyContent
	AlignItems       AlignItems
	AlignSelf        AlignItems
	FlexGrow         float64
	FlexShrink       float64
	FlexBasis        geom.Length
	HasFlexBasisAuto bool
	Gap              geom.SpacePair[geom.Length]

	GridTemplateColumns GridTrackList
	GridTemplateRows    GridTrackList

	MixBlendMode BlendMode
}

// SizedFontStyle is the per-node computed text style once font-size has
// been resolved against its parent (spec.md §4.1 SizedFontStyle): absolute
// px sizes so children never re-resolve text lengths against the wrong em.
type SizedFontStyle struct {
	FontSizePx      float64
	LineHeightPx    float64
	LetterSpacingPx float64
	WordSpacingPx   float64
	StrokeWidthPx   float64
	StrokeColor     geom.Color
	DecorationColor       geom.Color
	DecorationThicknessPx float64
	DecorationLine        TextDecorationLine
	DecorationSkipInk     bool
	FillColor       geom.Color
	TextShadowPx    []ResolvedShadow
}

// ResolvedShadow is a ShadowValue with every Length already resolved to px
// against the node's font-size, per compute_lengths (spec.md §4.1).
type ResolvedShadow struct {
	OffsetXPx, OffsetYPx, BlurPx, SpreadPx float64
	Color                                  geom.Color
	Inset                                  bool
}

// DefaultInherited returns the InheritedStyle a root node resolves against:
// every property at its CSS initial value (spec.md §4.1 resolve contract,
// Initial branch, applied transitively up to a synthetic root parent).
func DefaultInherited() InheritedStyle {
	return InheritedStyle{
		Display:    DisplayBlock,
		Position:   PositionStatic,
		Width:      geom.Auto,
		Height:     geom.Auto,
		MaxWidth:   geom.Auto,
		MaxHeight:  geom.Auto,
		Opacity:    1,
		FontFamily: FontFamilyList{Names: []string{"sans-serif"}},
		FontSize:   geom.Px(16),
		FontWeight: 400,
		LineHeight: geom.Percent(120),
		Color:      geom.Color{R: 0, G: 0, B: 0, A: 255},
		TextAlign:  TextAlignLeft,
		WhiteSpaceCollapse:    WhiteSpaceCollapseCollapse,
		TextDecorationColor:   geom.Color{R: 0, G: 0, B: 0, A: 255},
		TextDecorationSkipInk: true,
		TransformOrigin:       geom.SpacePair[geom.Length]{X: geom.Percent(50), Y: geom.Percent(50)},
		ObjectPosition:        geom.SpacePair[geom.Length]{X: geom.Percent(50), Y: geom.Percent(50)},
		HasFlexBasisAuto:      true,
		FlexDirection: FlexDirectionRow,
		AlignItems:    AlignItemsStretch,
		FlexShrink:    1,
		BorderTop:    BorderSide{Style: BorderStyleKindNone},
		BorderRight:  BorderSide{Style: BorderStyleKindNone},
		BorderBottom: BorderSide{Style: BorderStyleKindNone},
		BorderLeft:   BorderSide{Style: BorderStyleKindNone},
	}
}
