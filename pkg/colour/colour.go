// Package colour converts colours between HSL, RGB, hexadecimal and CSS
// string representations.
//
// Every function in this package is pure: malformed input never panics or
// returns an error. Parsers report failure with a boolean, RGBStringToHex
// echoes unrecognised input back, and ToRGB falls back to opaque black.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Precision is the number of decimal places kept for HSL saturation and
// lightness, and for the percentages rendered by HSL.String.
const Precision = 4

// RGB represents a colour in RGB format.
// Channels are nominally 0-255 and alpha 0-1. Conversions do not round or
// clamp the channels, so callers may see fractional or out-of-range values.
type RGB struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// HSL represents a colour in HSL format.
// H is in degrees [0,360), S and L are fractions [0,1], A is 0-1.
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
	A float64 `json:"a" yaml:"a"`
}

// Black is the opaque black returned by ToRGB for unrecognised input.
var Black = RGB{R: 0, G: 0, B: 0, A: 1}

// String returns the colour as "rgba(R,G,B, A)" with unrounded components.
func (c RGB) String() string {
	return fmt.Sprintf("rgba(%s,%s,%s, %s)",
		formatNumber(c.R), formatNumber(c.G), formatNumber(c.B), formatNumber(c.A))
}

// Hex returns the colour as an upper-case hex string (e.g. "#1A2B3C").
// Each channel is rounded and clamped to 0-255. The alpha byte is appended
// only when the colour is not fully opaque, giving "#RRGGBBAA".
func (c RGB) Hex() string {
	var sb strings.Builder
	sb.WriteByte('#')
	sb.WriteString(hexByte(c.R))
	sb.WriteString(hexByte(c.G))
	sb.WriteString(hexByte(c.B))
	if alpha := hexByte(c.A * 255); alpha != "FF" {
		sb.WriteString(alpha)
	}
	return sb.String()
}

// HSL converts the colour to HSL, keeping its alpha.
func (c RGB) HSL() HSL {
	hsl := RGBToHSL(c.R, c.G, c.B)
	hsl.A = c.A
	return hsl
}

// RGBA implements color.Color. Channels are rounded and clamped to 0-255
// and premultiplied by the clamped alpha.
func (c RGB) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(clamp(c.A, 0, 1) * 0xffff))
	r = uint32(channel8(c.R)) * 0x101 * a / 0xffff
	g = uint32(channel8(c.G)) * 0x101 * a / 0xffff
	b = uint32(channel8(c.B)) * 0x101 * a / 0xffff
	return r, g, b, a
}

// String returns the colour as "hsl(H,S%,L%)".
// Alpha is not part of the rendered form.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s,%s%%,%s%%)",
		formatNumber(c.H), formatNumber(roundFixed(100*c.S)), formatNumber(roundFixed(100*c.L)))
}

// RGB converts the colour to RGB, keeping its alpha.
func (c HSL) RGB() RGB {
	return HSLToRGB(c.H, c.S, c.L, c.A)
}

// formatNumber renders v using the fewest digits that represent it exactly.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// hexByte renders v as two upper-case hex digits.
func hexByte(v float64) string {
	return fmt.Sprintf("%02X", channel8(v))
}

// channel8 rounds v and clamps it to a byte. NaN maps to 0.
func channel8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(clamp(v, 0, 255)))
}

// roundFixed rounds v to Precision decimal places.
func roundFixed(v float64) float64 {
	scale := math.Pow10(Precision)
	return math.Round(v*scale) / scale
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
