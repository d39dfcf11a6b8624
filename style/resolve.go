package style

import "rasterdom/geom"

// Resolve implements resolve(style, parent, viewport) -> InheritedStyle
// (spec.md §4.1): every property resolves against the node's parent
// InheritedStyle, using each property's own inheritance flag.
func Resolve(s Style, parent InheritedStyle) InheritedStyle {
	var r InheritedStyle

	r.Display = resolveProp(s.Display, DisplayBlock, DisplayBlock, NotInherited)
	r.Position = resolveProp(s.Position, PositionStatic, PositionStatic, NotInherited)

	top := resolveProp(s.Top, geom.Auto, geom.Auto, NotInherited)
	right := resolveProp(s.Right, geom.Auto, geom.Auto, NotInherited)
	bottom := resolveProp(s.Bottom, geom.Auto, geom.Auto, NotInherited)
	left := resolveProp(s.Left, geom.Auto, geom.Auto, NotInherited)
	if s.Inset.State == StateValue {
		v := s.Inset.Val
		top, right, bottom, left = v.Top, v.Right, v.Bottom, v.Left
	}
	r.Inset = geom.Sides[geom.Length]{Top: top, Right: right, Bottom: bottom, Left: left}

	r.Width = resolveProp(s.Width, geom.Auto, geom.Auto, NotInherited)
	r.Height = resolveProp(s.Height, geom.Auto, geom.Auto, NotInherited)
	r.MinWidth = resolveProp(s.MinWidth, geom.Px(0), geom.Px(0), NotInherited)
	r.MinHeight = resolveProp(s.MinHeight, geom.Px(0), geom.Px(0), NotInherited)
	r.MaxWidth = resolveProp(s.MaxWidth, geom.Auto, geom.Auto, NotInherited)
	r.MaxHeight = resolveProp(s.MaxHeight, geom.Auto, geom.Auto, NotInherited)

	mTop := resolveProp(s.MarginTop, geom.Px(0), geom.Px(0), NotInherited)
	mRight := resolveProp(s.MarginRight, geom.Px(0), geom.Px(0), NotInherited)
	mBottom := resolveProp(s.MarginBottom, geom.Px(0), geom.Px(0), NotInherited)
	mLeft := resolveProp(s.MarginLeft, geom.Px(0), geom.Px(0), NotInherited)
	if s.Margin.State == StateValue {
		v := s.Margin.Val
		mTop, mRight, mBottom, mLeft = v.Top, v.Right, v.Bottom, v.Left
	}
	r.Margin = geom.Sides[geom.Length]{Top: mTop, Right: mRight, Bottom: mBottom, Left: mLeft}

	pTop := resolveProp(s.PaddingTop, geom.Px(0), geom.Px(0), NotInherited)
	pRight := resolveProp(s.PaddingRight, geom.Px(0), geom.Px(0), NotInherited)
	pBottom := resolveProp(s.PaddingBottom, geom.Px(0), geom.Px(0), NotInherited)
	pLeft := resolveProp(s.PaddingLeft, geom.Px(0), geom.Px(0), NotInherited)
	if s.Padding.State == StateValue {
		v := s.Padding.Val
		pTop, pRight, pBottom, pLeft = v.Top, v.Right, v.Bottom, v.Left
	}
	r.Padding = geom.Sides[geom.Length]{Top: pTop, Right: pRight, Bottom: pBottom, Left: pLeft}

	r.OverflowX = resolveProp(s.OverflowX, OverflowVisible, OverflowVisible, NotInherited)
	r.OverflowY = resolveProp(s.OverflowY, OverflowVisible, OverflowVisible, NotInherited)

	r.Opacity = resolveProp(s.Opacity, 1.0, 1.0, NotInherited)
	r.Isolation = resolveProp(s.Isolation, IsolationAuto, IsolationAuto, NotInherited)
	r.ZIndex = resolveProp(s.ZIndex, 0, 0, NotInherited)
	r.HasZIndex = resolveProp(s.HasZIndex, false, false, NotInherited)

	r.BackgroundColor = resolveProp(s.BackgroundColor, geom.Transparent, geom.Transparent, NotInherited)
	r.BackgroundLayers = resolveBackgroundLayers(s)
	r.BackgroundClip = resolveProp(s.BackgroundClip, BackgroundClipBorderBox, BackgroundClipBorderBox, NotInherited)
	r.BackgroundBlendMode = resolveProp(s.BackgroundBlendMode, BlendModeNormal, BlendModeNormal, NotInherited)

	noBorder := BorderSide{Style: BorderStyleKindNone}
	r.BorderTop = resolveBorderSide(s.Border, s.BorderTopWidth, s.BorderTopStyle, s.BorderTopColor, parent.Color, noBorder)
	r.BorderRight = resolveBorderSide(s.Border, s.BorderRightWidth, s.BorderRightStyle, s.BorderRightColor, parent.Color, noBorder)
	r.BorderBottom = resolveBorderSide(s.Border, s.BorderBottomWidth, s.BorderBottomStyle, s.BorderBottomColor, parent.Color, noBorder)
	r.BorderLeft = resolveBorderSide(s.Border, s.BorderLeftWidth, s.BorderLeftStyle, s.BorderLeftColor, parent.Color, noBorder)

	zeroRadius := CornerRadius{X: geom.Px(0), Y: geom.Px(0)}
	r.BorderRadiusTopLeft = resolveCornerRadius(s.BorderRadius, s.BorderTopLeftRadius, zeroRadius)
	r.BorderRadiusTopRight = resolveCornerRadius(s.BorderRadius, s.BorderTopRightRadius, zeroRadius)
	r.BorderRadiusBottomRight = resolveCornerRadius(s.BorderRadius, s.BorderBottomRightRadius, zeroRadius)
	r.BorderRadiusBottomLeft = resolveCornerRadius(s.BorderRadius, s.BorderBottomLeftRadius, zeroRadius)

	r.BoxShadow = resolveProp(s.BoxShadow, nil, nil, NotInherited)
	r.ClipPath = resolveProp(s.ClipPath, ClipPathValue{Kind: ClipShapeKindNone}, ClipPathValue{Kind: ClipShapeKindNone}, NotInherited)

	r.Transform = resolveProp(s.Transform, TransformList{}, TransformList{}, NotInherited)
	r.TransformOrigin = resolveProp(s.TransformOrigin,
		geom.SpacePair[geom.Length]{X: geom.Percent(50), Y: geom.Percent(50)},
		geom.SpacePair[geom.Length]{X: geom.Percent(50), Y: geom.Percent(50)},
		NotInherited)

	r.Color = resolveProp(s.Color, parent.Color, geom.Color{A: 255}, Inherited)
	r.FontFamily = resolveProp(s.FontFamily, parent.FontFamily, FontFamilyList{Names: []string{"sans-serif"}}, Inherited)
	r.FontSize = resolveProp(s.FontSize, parent.FontSize, geom.Px(16), Inherited)
	r.FontWeight = resolveProp(s.FontWeight, parent.FontWeight, 400, Inherited)
	r.LineHeight = resolveProp(s.LineHeight, parent.LineHeight, geom.Percent(120), Inherited)
	r.LetterSpacing = resolveProp(s.LetterSpacing, parent.LetterSpacing, geom.Px(0), Inherited)
	r.WordSpacing = resolveProp(s.WordSpacing, parent.WordSpacing, geom.Px(0), Inherited)
	r.TextAlign = resolveProp(s.TextAlign, parent.TextAlign, TextAlignLeft, Inherited)
	r.TextTransform = resolveProp(s.TextTransform, parent.TextTransform, TextTransformNone, Inherited)
	r.WhiteSpaceCollapse = resolveProp(s.WhiteSpaceCollapse, parent.WhiteSpaceCollapse, WhiteSpaceCollapseCollapse, Inherited)
	r.TextWrapMode = resolveProp(s.TextWrapMode, parent.TextWrapMode, TextWrapModeWrap, Inherited)
	r.TextWrapStyle = resolveProp(s.TextWrapStyle, parent.TextWrapStyle, TextWrapStyleStable, Inherited)
	r.TextOverflow = resolveProp(s.TextOverflow, TextOverflowClip, TextOverflowClip, NotInherited)
	r.LineClamp = resolveProp(s.LineClamp, 0, 0, NotInherited)
	r.HasLineClamp = resolveProp(s.HasLineClamp, false, false, NotInherited)
	r.TextShadow = resolveProp(s.TextShadow, parent.TextShadow, nil, Inherited)
	r.TextDecorationColor = resolveProp(s.TextDecorationColor, r.Color, r.Color, NotInherited)
	r.TextDecorationLine = resolveProp(s.TextDecorationLine, TextDecorationLine{}, TextDecorationLine{}, NotInherited)
	r.TextDecorationSkipInk = resolveProp(s.TextDecorationSkipInk, true, true, NotInherited)
	r.VerticalAlign = resolveProp(s.VerticalAlign, VerticalAlignBaseline, VerticalAlignBaseline, NotInherited)
	r.ImageRendering = resolveProp(s.ImageRendering, parent.ImageRendering, 0, Inherited)

	r.ObjectFit = resolveProp(s.ObjectFit, ObjectFitFill, ObjectFitFill, NotInherited)
	r.ObjectPosition = resolveProp(s.ObjectPosition,
		geom.SpacePair[geom.Length]{X: geom.Percent(50), Y: geom.Percent(50)},
		geom.SpacePair[geom.Length]{X: geom.Percent(50), Y: geom.Percent(50)},
		NotInherited)

	r.FlexDirection = resolveProp(s.FlexDirection, FlexDirectionRow, FlexDirectionRow, NotInherited)
	r.FlexWrap = resolveProp(s.FlexWrap, FlexWrapNowrap, FlexWrapNowrap, NotInherited)
	r.JustifyContent = resolveProp(s.JustifyContent, JustifyContentStart, JustifyContentStart, NotInherited)
	r.AlignItems = resolveProp(s.AlignItems, AlignItemsStretch, AlignItemsStretch, NotInherited)
	r.AlignSelf = resolveProp(s.AlignSelf, AlignItemsStretch, AlignItemsStretch, NotInherited)
	r.FlexGrow = resolveProp(s.FlexGrow, 0, 0, NotInherited)
	r.FlexShrink = resolveProp(s.FlexShrink, 1, 1, NotInherited)
	r.FlexBasis = resolveProp(s.FlexBasis, geom.Auto, geom.Auto, NotInherited)
	r.HasFlexBasisAuto = resolveProp(s.HasFlexBasisAuto, true, true, NotInherited)
	r.Gap = resolveProp(s.Gap, geom.SpacePair[geom.Length]{}, geom.SpacePair[geom.Length]{}, NotInherited)

	r.GridTemplateColumns = resolveProp(s.GridTemplateColumns, GridTrackList{}, GridTrackList{}, NotInherited)
	r.GridTemplateRows = resolveProp(s.GridTemplateRows, GridTrackList{}, GridTrackList{}, NotInherited)

	r.MixBlendMode = resolveProp(s.MixBlendMode, BlendModeNormal, BlendModeNormal, NotInherited)

	return r
}

// resolveBorderSide applies the `border` shorthand (spec.md §4.1: "border"
// is listed among the shorthands that clear longhands) before falling back
// to the per-side longhands, and defaults an unset border-color to
// currentColor (CSS initial value).
func resolveBorderSide(shorthand Prop[BorderSide], width Prop[geom.Length], styleP Prop[BorderStyleKind], colorP Prop[geom.Color], currentColor geom.Color, zero BorderSide) BorderSide {
	base := zero
	if shorthand.State == StateValue {
		base = shorthand.Val
		if base.Color == (geom.Color{}) {
			base.Color = currentColor
		}
	}
	return BorderSide{
		Width: resolveProp(width, base.Width, geom.Px(0), NotInherited),
		Style: resolveProp(styleP, base.Style, BorderStyleKindNone, NotInherited),
		Color: resolveProp(colorP, base.Color, currentColor, NotInherited),
	}
}

func resolveCornerRadius(shorthand, longhand Prop[CornerRadius], zero CornerRadius) CornerRadius {
	base := zero
	if shorthand.State == StateValue {
		base = shorthand.Val
	}
	return resolveProp(longhand, base, zero, NotInherited)
}

// resolveBackgroundLayers implements the `background` longhand/shorthand
// precedence of spec.md §4.7: when background-image is set, the longhands
// build a single layer; otherwise the shorthand's layers are returned as
// given. No value is carried over from one layer to another (there is no
// repeat-last step).
func resolveBackgroundLayers(s Style) []BackgroundLayer {
	if s.BackgroundImage.State == StateValue {
		layer := BackgroundLayer{
			Image:     s.BackgroundImage.Val,
			RepeatX:   resolveProp(s.BackgroundRepeatX, BackgroundRepeatKeywordRepeat, BackgroundRepeatKeywordRepeat, NotInherited),
			RepeatY:   resolveProp(s.BackgroundRepeatY, BackgroundRepeatKeywordRepeat, BackgroundRepeatKeywordRepeat, NotInherited),
			PositionX: resolveProp(s.BackgroundPositionX, geom.Percent(0), geom.Percent(0), NotInherited),
			PositionY: resolveProp(s.BackgroundPositionY, geom.Percent(0), geom.Percent(0), NotInherited),
		}
		if s.BackgroundSize.State == StateValue {
			layer.SizeMode = s.BackgroundSize.Val.SizeMode
			layer.SizeWidth = s.BackgroundSize.Val.SizeWidth
			layer.SizeHeight = s.BackgroundSize.Val.SizeHeight
			layer.HasSize = s.BackgroundSize.Val.HasSize
		}
		return []BackgroundLayer{layer}
	}
	if s.Background.State == StateValue {
		return s.Background.Val
	}
	return nil
}

// ComputeLengths returns r's text lengths as a SizedFontStyle, resolving
// em-relative lengths to absolute px against the node's own font-size so
// descendants never re-resolve a text length against a stale em (spec.md
// §4.1 compute_lengths); r itself is not modified. sizing.FontSize is the
// parent's font-size in px, the base r.FontSize's em and % resolve against.
func ComputeLengths(r *InheritedStyle, sizing geom.Sizing) SizedFontStyle {
	fontSizePx := r.FontSize.ToPx(sizing, sizing.FontSize)
	sizing.FontSize = fontSizePx

	lineHeightPx := r.LineHeight.ToPx(sizing, fontSizePx)
	if r.LineHeight.Unit == geom.UnitPercent {
		lineHeightPx = fontSizePx * r.LineHeight.Value / 100
	}

	sfs := SizedFontStyle{
		FontSizePx:            fontSizePx,
		LineHeightPx:          lineHeightPx,
		LetterSpacingPx:       r.LetterSpacing.ToPx(sizing, 0),
		WordSpacingPx:         r.WordSpacing.ToPx(sizing, 0),
		DecorationColor:       r.TextDecorationColor,
		DecorationThicknessPx: fontSizePx / 14,
		DecorationLine:        r.TextDecorationLine,
		DecorationSkipInk:     r.TextDecorationSkipInk,
		FillColor:             r.Color,
	}
	for _, sh := range r.TextShadow {
		sfs.TextShadowPx = append(sfs.TextShadowPx, ResolvedShadow{
			OffsetXPx: sh.OffsetX.ToPx(sizing, 0),
			OffsetYPx: sh.OffsetY.ToPx(sizing, 0),
			BlurPx:    sh.Blur.ToPx(sizing, 0),
			SpreadPx:  sh.Spread.ToPx(sizing, 0),
			Color:     sh.Color,
			Inset:     sh.Inset,
		})
	}
	return sfs
}
