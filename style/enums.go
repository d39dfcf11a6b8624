package style

// Display selects the layout algorithm LayoutTree measures a node with.
// ENUM(none, block, inline, inline-block, flex, inline-flex, grid, inline-grid)
type Display int

// Position is the CSS `position` property.
// ENUM(static, relative, absolute, fixed)
type Position int

// Overflow is the CSS `overflow-x`/`overflow-y` value domain.
// ENUM(visible, hidden, clip, scroll)
type Overflow int

// TextAlign is the CSS `text-align` value domain.
// ENUM(left, right, center, justify, start, end)
type TextAlign int

// TextTransform is the CSS `text-transform` value domain (spec.md §4.10).
// ENUM(none, uppercase, lowercase, capitalize)
type TextTransform int

// WhiteSpaceCollapse is the CSS `white-space-collapse` value domain
// (spec.md GLOSSARY).
// ENUM(preserve, collapse, preserve-spaces, preserve-breaks)
type WhiteSpaceCollapse int

// TextWrapMode is the CSS `text-wrap-mode` value domain.
// ENUM(wrap, nowrap)
type TextWrapMode int

// TextWrapStyle is the CSS `text-wrap-style` value domain (spec.md §4.10
// step 4: balance/pretty).
// ENUM(stable, balance, pretty)
type TextWrapStyle int

// TextOverflow is the CSS `text-overflow` value domain.
// ENUM(clip, ellipsis)
type TextOverflow int

// FlexDirection is the CSS `flex-direction` value domain.
// ENUM(row, row-reverse, column, column-reverse)
type FlexDirection int

// FlexWrap is the CSS `flex-wrap` value domain.
// ENUM(nowrap, wrap, wrap-reverse)
type FlexWrap int

// JustifyContent is the CSS `justify-content` value domain.
// ENUM(start, end, center, space-between, space-around, space-evenly)
type JustifyContent int

// AlignItems is the CSS `align-items`/`align-self` value domain.
// ENUM(stretch, start, end, center, baseline)
type AlignItems int

// ObjectFit is the CSS `object-fit` value domain (spec.md §4.9).
// ENUM(fill, contain, cover, scale-down, none)
type ObjectFit int

// BlendMode is the CSS `mix-blend-mode`/`background-blend-mode` value
// domain plus the compositor-only PlusLighter/PlusDarker extensions
// (spec.md §4.5).
// ENUM(normal, multiply, screen, overlay, darken, lighten, color-dodge, color-burn, hard-light, soft-light, difference, exclusion, hue, saturation, color, luminosity, plus-lighter, plus-darker)
type BlendMode int

// BackgroundRepeatKeyword is one axis of the CSS `background-repeat`
// value domain (spec.md §4.7).
// ENUM(repeat, no-repeat, space, round)
type BackgroundRepeatKeyword int

// BackgroundClip selects the target area for a background layer or
// `background-clip: text` (spec.md §4.7).
// ENUM(border-box, padding-box, content-box, border-area, text)
type BackgroundClip int

// BackgroundSizeKeyword is the keyword form of `background-size`;
// explicit sizes are carried separately as Lengths.
// ENUM(auto, cover, contain)
type BackgroundSizeKeyword int

// BorderStyleKind is the CSS `border-style` value domain.
// ENUM(none, solid, dashed, dotted, double)
type BorderStyleKind int

// VerticalAlign is the CSS `vertical-align` value domain for inline-atomic
// boxes (spec.md §4.10 step 6).
// ENUM(baseline, middle, top, bottom, text-top, text-bottom)
type VerticalAlign int

// FillRule selects the polygon/path fill rule for clip-path and mask
// rasterization (spec.md §4.2, §4.4).
// ENUM(nonzero, evenodd)
type FillRule int

// GradientShape is the `radial-gradient` shape keyword (spec.md §4.3).
// ENUM(circle, ellipse)
type GradientShape int

// GradientSizeKeyword is the `radial-gradient` size keyword (spec.md §4.3).
// ENUM(closest-side, farthest-side, closest-corner, farthest-corner)
type GradientSizeKeyword int

// Isolation is the CSS `isolation` value domain (spec.md §4.11 step 1).
// ENUM(auto, isolate)
type Isolation int
