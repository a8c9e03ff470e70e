package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in     string
		pixels float64
		unit   Unit
	}{
		{"10", 10, UnitPx},
		{"10px", 10, UnitPx},
		{" 2.5px ", 2.5, UnitPx},
		{"-4px", -4, UnitPx},
		{"2em", 32, UnitEm},
	}
	for _, tt := range tests {
		d, err := ParseDimension(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.pixels, d.Pixels(), tt.in)
		assert.Equal(t, tt.unit, d.Unit, tt.in)
	}

	_, err := ParseDimension("10%")
	assert.Error(t, err)
	_, err = ParseDimension("wide")
	assert.Error(t, err)
}

func TestParseEdges_Shorthand(t *testing.T) {
	e, err := ParseEdges("1px")
	require.NoError(t, err)
	assert.Equal(t, EdgeAll(1), e)

	e, err = ParseEdges("1px 2px")
	require.NoError(t, err)
	assert.Equal(t, 4.0, e.Horizontal())
	assert.Equal(t, 2.0, e.Vertical())

	e, err = ParseEdges("1 2 3")
	require.NoError(t, err)
	assert.Equal(t, Edges{Top: Px(1), Right: Px(2), Bottom: Px(3), Left: Px(2)}, e)

	e, err = ParseEdges("1 2 3 4")
	require.NoError(t, err)
	assert.Equal(t, 6.0, e.Horizontal())
	assert.Equal(t, 4.0, e.Vertical())

	_, err = ParseEdges("1 2 3 4 5")
	assert.Error(t, err)
	_, err = ParseEdges("")
	assert.Error(t, err)
}

func TestParseSpacing(t *testing.T) {
	s, err := ParseSpacing("10px")
	require.NoError(t, err)
	assert.Equal(t, Spacing{X: Px(10), Y: Px(10)}, s)

	s, err = ParseSpacing("10px 4px")
	require.NoError(t, err)
	assert.Equal(t, Spacing{X: Px(10), Y: Px(4)}, s)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", Color{255, 0, 0, 255}},
		{"#fff", Color{255, 255, 255, 255}},
		{"#102030", Color{16, 32, 48, 255}},
		{"#10203080", Color{16, 32, 48, 128}},
		{"rgb(1, 2, 3)", Color{1, 2, 3, 255}},
		{"rgba(1, 2, 3, 0)", Color{1, 2, 3, 0}},
		{"transparent", Transparent},
		{"  CornflowerBlue ", Color{100, 149, 237, 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"#12", "rgb(1,2)", "rgb(300,0,0)", "notacolor"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestFontWeight(t *testing.T) {
	s := NewResolver(nil).ParseInline("font-weight: bold")
	assert.True(t, s.GetFontWeight().IsBold())

	s = NewResolver(nil).ParseInline("font-weight: 300")
	assert.False(t, s.GetFontWeight().IsBold())

	s = NewResolver(nil).ParseInline("font-weight: 350")
	assert.Nil(t, s.FontWeight)
}

func TestDefaults(t *testing.T) {
	var s Styles
	assert.Equal(t, DisplayFlex, s.GetDisplay())
	assert.Equal(t, FlexDirectionRow, s.GetFlexDirection())
	assert.Equal(t, AlignItemsFlexStart, s.GetAlignItems())
	assert.Equal(t, OverflowVisible, s.GetOverflow())
	assert.Equal(t, 16.0, s.GetFontSize())
	assert.Equal(t, Transparent, s.GetBackgroundColor())
	assert.Equal(t, Black, s.GetColor())
}
