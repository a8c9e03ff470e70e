// Package style resolves the effective style of an element from stylesheet
// classes, inline declarations and parent inheritance.
package style

// SizingPolicy holds the dimension category. Unset fields defer to the
// element's natural size.
type SizingPolicy struct {
	Width     *Dimension
	Height    *Dimension
	MinWidth  *Dimension
	MaxWidth  *Dimension
	MinHeight *Dimension
	MaxHeight *Dimension
}

// Styles is a sparse record of optional properties, grouped into four
// categories: layout, dimension, appearance and text. Only the text
// category is inherited.
type Styles struct {
	// Layout
	Display        *DisplayType
	FlexDirection  *FlexDirection
	FlexWrap       *FlexWrap
	JustifyContent *JustifyContent
	AlignItems     *AlignItems
	FlexGrow       *float64
	FlexShrink     *float64
	Margin         *Margin
	Padding        *Padding
	Spacing        *Spacing
	Overflow       *Overflow

	// Dimension
	Sizing SizingPolicy

	// Appearance
	BackgroundColor *Color
	Color           *Color
	BorderWidth     *Dimension
	BorderColor     *Color
	BorderRadius    *Dimension

	// Text
	WhiteSpace *WhiteSpace
	FontSize   *Dimension
	FontWeight *FontWeight
	FontFamily *string
	FontStyle  *FontStyle
	TextAlign  *TextAlign
}

func ptr[T any](v T) *T {
	return &v
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// GetDisplay returns the display value (default: flex)
func (s *Styles) GetDisplay() DisplayType {
	return valueOr(s.Display, DisplayFlex)
}

// GetFlexDirection returns the flex-direction value (default: row)
func (s *Styles) GetFlexDirection() FlexDirection {
	return valueOr(s.FlexDirection, FlexDirectionRow)
}

// GetFlexWrap returns the flex-wrap value (default: nowrap)
func (s *Styles) GetFlexWrap() FlexWrap {
	return valueOr(s.FlexWrap, FlexWrapNowrap)
}

// GetJustifyContent returns the justify-content value (default: flex-start)
func (s *Styles) GetJustifyContent() JustifyContent {
	return valueOr(s.JustifyContent, JustifyFlexStart)
}

// GetAlignItems returns the align-items value (default: flex-start)
func (s *Styles) GetAlignItems() AlignItems {
	return valueOr(s.AlignItems, AlignItemsFlexStart)
}

// GetMargin returns the margin values for all four sides
func (s *Styles) GetMargin() Margin {
	return valueOr(s.Margin, Margin{})
}

// GetPadding returns the padding values for all four sides
func (s *Styles) GetPadding() Padding {
	return valueOr(s.Padding, Padding{})
}

func (s *Styles) GetSpacing() Spacing {
	return valueOr(s.Spacing, Spacing{})
}

// GetOverflow returns the overflow value (default: visible)
func (s *Styles) GetOverflow() Overflow {
	return valueOr(s.Overflow, OverflowVisible)
}

func (s *Styles) GetBackgroundColor() Color {
	return valueOr(s.BackgroundColor, Transparent)
}

// GetColor returns the text color (default: black)
func (s *Styles) GetColor() Color {
	return valueOr(s.Color, Black)
}

func (s *Styles) GetBorderWidth() float64 {
	return valueOr(s.BorderWidth, Dimension{}).Pixels()
}

func (s *Styles) GetBorderColor() Color {
	return valueOr(s.BorderColor, Transparent)
}

func (s *Styles) GetBorderRadius() float64 {
	return valueOr(s.BorderRadius, Dimension{}).Pixels()
}

func (s *Styles) GetWhiteSpace() WhiteSpace {
	return valueOr(s.WhiteSpace, WhiteSpaceNormal)
}

// GetFontSize returns the font-size in pixels (default: 16px)
func (s *Styles) GetFontSize() float64 {
	return valueOr(s.FontSize, Px(BaseFontSize)).Pixels()
}

func (s *Styles) GetFontWeight() FontWeight {
	return valueOr(s.FontWeight, FontWeightNormal)
}

func (s *Styles) GetFontFamily() string {
	return valueOr(s.FontFamily, "sans-serif")
}

func (s *Styles) GetFontStyle() FontStyle {
	return valueOr(s.FontStyle, FontStyleNormal)
}

// GetTextAlign returns the text-align value (default: left)
func (s *Styles) GetTextAlign() TextAlign {
	return valueOr(s.TextAlign, TextAlignLeft)
}
