package style

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
)

// Floats returns the channels scaled to [0,1], the form gg expects.
func (c Color) Floats() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa, rgb(), rgba(), "transparent"
// and the CSS named colors.
func ParseColor(colorStr string) (Color, error) {
	colorStr = strings.ToLower(strings.TrimSpace(colorStr))

	switch {
	case colorStr == "transparent":
		return Transparent, nil
	case strings.HasPrefix(colorStr, "#"):
		return parseHexColor(colorStr[1:])
	case strings.HasPrefix(colorStr, "rgba(") && strings.HasSuffix(colorStr, ")"):
		return parseRGBFunc(colorStr[len("rgba("):len(colorStr)-1], true)
	case strings.HasPrefix(colorStr, "rgb(") && strings.HasSuffix(colorStr, ")"):
		return parseRGBFunc(colorStr[len("rgb("):len(colorStr)-1], false)
	}

	if named, ok := colornames.Map[colorStr]; ok {
		return Color{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", colorStr)
}

func parseHexColor(hex string) (Color, error) {
	switch len(hex) {
	case 3:
		// #abc -> #aabbcc
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("invalid hex color #%s", hex)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color #%s", hex)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseRGBFunc(args string, withAlpha bool) (Color, error) {
	parts := strings.Split(args, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want {
		return Color{}, fmt.Errorf("expected %d components, got %d", want, len(parts))
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("invalid color channel %q", parts[i])
		}
		channels[i] = uint8(n)
	}

	alpha := uint8(255)
	if withAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("invalid alpha %q", parts[3])
		}
		alpha = uint8(a*255 + 0.5)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}
