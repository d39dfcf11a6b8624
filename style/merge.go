package style

import "rasterdom/geom"

// Merge overlays `high` onto `low` at the same cascade layer (spec.md
// §4.1 merge_from). Shorthand clearing: when high sets a shorthand to
// Value(v) and the corresponding longhands in high are Unset, those
// longhands are reset to Unset in low first, so an orphaned longhand
// write from a lower-priority layer never survives next to a shorthand
// write from a higher one (spec.md §8 "Shorthand clearing" invariant).
func Merge(low, high Style) Style {
	clearInsetLonghands(&low, &high)
	clearMarginLonghands(&low, &high)
	clearPaddingLonghands(&low, &high)
	clearBackgroundLonghands(&low, &high)
	clearBorderLonghands(&low, &high)
	clearBorderRadiusLonghands(&low, &high)

	var out Style
	out.Display = mergeProp(low.Display, high.Display)
	out.Position = mergeProp(low.Position, high.Position)

	out.Top = mergeProp(low.Top, high.Top)
	out.Right = mergeProp(low.Right, high.Right)
	out.Bottom = mergeProp(low.Bottom, high.Bottom)
	out.Left = mergeProp(low.Left, high.Left)
	out.Inset = mergeProp(low.Inset, high.Inset)

	out.Width = mergeProp(low.Width, high.Width)
	out.Height = mergeProp(low.Height, high.Height)
	out.MinWidth = mergeProp(low.MinWidth, high.MinWidth)
	out.MinHeight = mergeProp(low.MinHeight, high.MinHeight)
	out.MaxWidth = mergeProp(low.MaxWidth, high.MaxWidth)
	out.MaxHeight = mergeProp(low.MaxHeight, high.MaxHeight)

	out.MarginTop = mergeProp(low.MarginTop, high.MarginTop)
	out.MarginRight = mergeProp(low.MarginRight, high.MarginRight)
	out.MarginBottom = mergeProp(low.MarginBottom, high.MarginBottom)
	out.MarginLeft = mergeProp(low.MarginLeft, high.MarginLeft)
	out.Margin = mergeProp(low.Margin, high.Margin)

	out.PaddingTop = mergeProp(low.PaddingTop, high.PaddingTop)
	out.PaddingRight = mergeProp(low.PaddingRight, high.PaddingRight)
	out.PaddingBottom = mergeProp(low.PaddingBottom, high.PaddingBottom)
	out.PaddingLeft = mergeProp(low.PaddingLeft, high.PaddingLeft)
	out.Padding = mergeProp(low.Padding, high.Padding)

	out.OverflowX = mergeProp(low.OverflowX, high.OverflowX)
	out.OverflowY = mergeProp(low.OverflowY, high.OverflowY)

	out.Opacity = mergeProp(low.Opacity, high.Opacity)
	out.Isolation = mergeProp(low.Isolation, high.Isolation)
	out.ZIndex = mergeProp(low.ZIndex, high.ZIndex)
	out.HasZIndex = mergeProp(low.HasZIndex, high.HasZIndex)

	out.BackgroundColor = mergeProp(low.BackgroundColor, high.BackgroundColor)
	out.BackgroundImage = mergeProp(low.BackgroundImage, high.BackgroundImage)
	out.BackgroundPositionX = mergeProp(low.BackgroundPositionX, high.BackgroundPositionX)
	out.BackgroundPositionY = mergeProp(low.BackgroundPositionY, high.BackgroundPositionY)
	out.BackgroundSize = mergeProp(low.BackgroundSize, high.BackgroundSize)
	out.BackgroundRepeatX = mergeProp(low.BackgroundRepeatX, high.BackgroundRepeatX)
	out.BackgroundRepeatY = mergeProp(low.BackgroundRepeatY, high.BackgroundRepeatY)
	out.BackgroundClip = mergeProp(low.BackgroundClip, high.BackgroundClip)
	out.BackgroundBlendMode = mergeProp(low.BackgroundBlendMode, high.BackgroundBlendMode)
	out.Background = mergeProp(low.Background, high.Background)

	out.BorderTopWidth = mergeProp(low.BorderTopWidth, high.BorderTopWidth)
	out.BorderRightWidth = mergeProp(low.BorderRightWidth, high.BorderRightWidth)
	out.BorderBottomWidth = mergeProp(low.BorderBottomWidth, high.BorderBottomWidth)
	out.BorderLeftWidth = mergeProp(low.BorderLeftWidth, high.BorderLeftWidth)
	out.BorderTopStyle = mergeProp(low.BorderTopStyle, high.BorderTopStyle)
	out.BorderRightStyle = mergeProp(low.BorderRightStyle, high.BorderRightStyle)
	out.BorderBottomStyle = mergeProp(low.BorderBottomStyle, high.BorderBottomStyle)
	out.BorderLeftStyle = mergeProp(low.BorderLeftStyle, high.BorderLeftStyle)
	out.BorderTopColor = mergeProp(low.BorderTopColor, high.BorderTopColor)
	out.BorderRightColor = mergeProp(low.BorderRightColor, high.BorderRightColor)
	out.BorderBottomColor = mergeProp(low.BorderBottomColor, high.BorderBottomColor)
	out.BorderLeftColor = mergeProp(low.BorderLeftColor, high.BorderLeftColor)
	out.Border = mergeProp(low.Border, high.Border)

	out.BorderTopLeftRadius = mergeProp(low.BorderTopLeftRadius, high.BorderTopLeftRadius)
	out.BorderTopRightRadius = mergeProp(low.BorderTopRightRadius, high.BorderTopRightRadius)
	out.BorderBottomRightRadius = mergeProp(low.BorderBottomRightRadius, high.BorderBottomRightRadius)
	out.BorderBottomLeftRadius = mergeProp(low.BorderBottomLeftRadius, high.BorderBottomLeftRadius)
	out.BorderRadius = mergeProp(low.BorderRadius, high.BorderRadius)

	out.BoxShadow = mergeProp(low.BoxShadow, high.BoxShadow)
	out.ClipPath = mergeProp(low.ClipPath, high.ClipPath)

	out.Transform = mergeProp(low.Transform, high.Transform)
	out.TransformOrigin = mergeProp(low.TransformOrigin, high.TransformOrigin)

	out.Color = mergeProp(low.Color, high.Color)
	out.FontFamily = mergeProp(low.FontFamily, high.FontFamily)
	out.FontSize = mergeProp(low.FontSize, high.FontSize)
	out.FontWeight = mergeProp(low.FontWeight, high.FontWeight)
	out.LineHeight = mergeProp(low.LineHeight, high.LineHeight)
	out.LetterSpacing = mergeProp(low.LetterSpacing, high.LetterSpacing)
	out.WordSpacing = mergeProp(low.WordSpacing, high.WordSpacing)
	out.TextAlign = mergeProp(low.TextAlign, high.TextAlign)
	out.TextTransform = mergeProp(low.TextTransform, high.TextTransform)
	out.WhiteSpaceCollapse = mergeProp(low.WhiteSpaceCollapse, high.WhiteSpaceCollapse)
	out.TextWrapMode = mergeProp(low.TextWrapMode, high.TextWrapMode)
	out.TextWrapStyle = mergeProp(low.TextWrapStyle, high.TextWrapStyle)
	out.TextOverflow = mergeProp(low.TextOverflow, high.TextOverflow)
	out.LineClamp = mergeProp(low.LineClamp, high.LineClamp)
	out.HasLineClamp = mergeProp(low.HasLineClamp, high.HasLineClamp)
	out.TextShadow = mergeProp(low.TextShadow, high.TextShadow)
	out.TextDecorationColor = mergeProp(low.TextDecorationColor, high.TextDecorationColor)
	out.TextDecorationLine = mergeProp(low.TextDecorationLine, high.TextDecorationLine)
	out.TextDecorationSkipInk = mergeProp(low.TextDecorationSkipInk, high.TextDecorationSkipInk)
	out.VerticalAlign = mergeProp(low.VerticalAlign, high.VerticalAlign)
	out.ImageRendering = mergeProp(low.ImageRendering, high.ImageRendering)

	out.ObjectFit = mergeProp(low.ObjectFit, high.ObjectFit)
	out.ObjectPosition = mergeProp(low.ObjectPosition, high.ObjectPosition)

	out.FlexDirection = mergeProp(low.FlexDirection, high.FlexDirection)
	out.FlexWrap = mergeProp(low.FlexWrap, high.FlexWrap)
	out.JustifyContent = mergeProp(low.JustifyContent, high.JustifyContent)
	out.AlignItems = mergeProp(low.AlignItems, high.AlignItems)
	out.AlignSelf = mergeProp(low.AlignSelf, high.AlignSelf)
	out.FlexGrow = mergeProp(low.FlexGrow, high.FlexGrow)
	out.FlexShrink = mergeProp(low.FlexShrink, high.FlexShrink)
	out.FlexBasis = mergeProp(low.FlexBasis, high.FlexBasis)
	out.HasFlexBasisAuto = mergeProp(low.HasFlexBasisAuto, high.HasFlexBasisAuto)
	out.Gap = mergeProp(low.Gap, high.Gap)

	out.GridTemplateColumns = mergeProp(low.GridTemplateColumns, high.GridTemplateColumns)
	out.GridTemplateRows = mergeProp(low.GridTemplateRows, high.GridTemplateRows)

	out.MixBlendMode = mergeProp(low.MixBlendMode, high.MixBlendMode)

	return out
}

func clearInsetLonghands(low, high *Style) {
	if high.Inset.State != StateValue {
		return
	}
	if high.Top.State == StateUnset {
		low.Top = UnsetProp[geom.Length]()
	}
	if high.Right.State == StateUnset {
		low.Right = UnsetProp[geom.Length]()
	}
	if high.Bottom.State == StateUnset {
		low.Bottom = UnsetProp[geom.Length]()
	}
	if high.Left.State == StateUnset {
		low.Left = UnsetProp[geom.Length]()
	}
}

func clearMarginLonghands(low, high *Style) {
	if high.Margin.State != StateValue {
		return
	}
	if high.MarginTop.State == StateUnset {
		low.MarginTop = UnsetProp[geom.Length]()
	}
	if high.MarginRight.State == StateUnset {
		low.MarginRight = UnsetProp[geom.Length]()
	}
	if high.MarginBottom.State == StateUnset {
		low.MarginBottom = UnsetProp[geom.Length]()
	}
	if high.MarginLeft.State == StateUnset {
		low.MarginLeft = UnsetProp[geom.Length]()
	}
}

func clearPaddingLonghands(low, high *Style) {
	if high.Padding.State != StateValue {
		return
	}
	if high.PaddingTop.State == StateUnset {
		low.PaddingTop = UnsetProp[geom.Length]()
	}
	if high.PaddingRight.State == StateUnset {
		low.PaddingRight = UnsetProp[geom.Length]()
	}
	if high.PaddingBottom.State == StateUnset {
		low.PaddingBottom = UnsetProp[geom.Length]()
	}
	if high.PaddingLeft.State == StateUnset {
		low.PaddingLeft = UnsetProp[geom.Length]()
	}
}

func clearBackgroundLonghands(low, high *Style) {
	if high.Background.State != StateValue {
		return
	}
	if high.BackgroundImage.State == StateUnset {
		low.BackgroundImage = Prop[BackgroundImage]{State: StateUnset}
	}
	if high.BackgroundPositionX.State == StateUnset {
		low.BackgroundPositionX = UnsetProp[geom.Length]()
	}
	if high.BackgroundPositionY.State == StateUnset {
		low.BackgroundPositionY = UnsetProp[geom.Length]()
	}
	if high.BackgroundSize.State == StateUnset {
		low.BackgroundSize = Prop[BackgroundLayer]{State: StateUnset}
	}
	if high.BackgroundRepeatX.State == StateUnset {
		low.BackgroundRepeatX = Prop[BackgroundRepeatKeyword]{State: StateUnset}
	}
	if high.BackgroundRepeatY.State == StateUnset {
		low.BackgroundRepeatY = Prop[BackgroundRepeatKeyword]{State: StateUnset}
	}
}

func clearBorderLonghands(low, high *Style) {
	if high.Border.State != StateValue {
		return
	}
	if high.BorderTopWidth.State == StateUnset {
		low.BorderTopWidth = UnsetProp[geom.Length]()
	}
	if high.BorderRightWidth.State == StateUnset {
		low.BorderRightWidth = UnsetProp[geom.Length]()
	}
	if high.BorderBottomWidth.State == StateUnset {
		low.BorderBottomWidth = UnsetProp[geom.Length]()
	}
	if high.BorderLeftWidth.State == StateUnset {
		low.BorderLeftWidth = UnsetProp[geom.Length]()
	}
	if high.BorderTopStyle.State == StateUnset {
		low.BorderTopStyle = Prop[BorderStyleKind]{State: StateUnset}
	}
	if high.BorderRightStyle.State == StateUnset {
		low.BorderRightStyle = Prop[BorderStyleKind]{State: StateUnset}
	}
	if high.BorderBottomStyle.State == StateUnset {
		low.BorderBottomStyle = Prop[BorderStyleKind]{State: StateUnset}
	}
	if high.BorderLeftStyle.State == StateUnset {
		low.BorderLeftStyle = Prop[BorderStyleKind]{State: StateUnset}
	}
}

func clearBorderRadiusLonghands(low, high *Style) {
	if high.BorderRadius.State != StateValue {
		return
	}
	if high.BorderTopLeftRadius.State == StateUnset {
		low.BorderTopLeftRadius = Prop[CornerRadius]{State: StateUnset}
	}
	if high.BorderTopRightRadius.State == StateUnset {
		low.BorderTopRightRadius = Prop[CornerRadius]{State: StateUnset}
	}
	if high.BorderBottomRightRadius.State == StateUnset {
		low.BorderBottomRightRadius = Prop[CornerRadius]{State: StateUnset}
	}
	if high.BorderBottomLeftRadius.State == StateUnset {
		low.BorderBottomLeftRadius = Prop[CornerRadius]{State: StateUnset}
	}
}
