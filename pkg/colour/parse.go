package colour

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hexRegex      = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)
	shortHexRegex = regexp.MustCompile(`(?i)^#([0-9a-f])([0-9a-f])([0-9a-f])$`)
)

// ParseRGB parses an "rgb(r,g,b)" or "rgba(r,g,b,a)" string.
// Components are split on commas and trimmed; alpha defaults to 1. It
// reports false for any other prefix, fewer than three components, or a
// component that is not a number. Components past the fourth are ignored.
func ParseRGB(s string) (RGB, bool) {
	var prefix string
	switch {
	case strings.HasPrefix(s, "rgba"):
		prefix = "rgba("
	case strings.HasPrefix(s, "rgb"):
		prefix = "rgb("
	default:
		return RGB{}, false
	}

	body := strings.TrimSpace(strings.TrimPrefix(s, prefix))
	body = strings.TrimSuffix(body, ")")

	parts := strings.Split(body, ",")
	if len(parts) < 3 {
		return RGB{}, false
	}
	if len(parts) > 4 {
		parts = parts[:4]
	}

	values := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return RGB{}, false
		}
		values[i] = v
	}

	c := RGB{R: values[0], G: values[1], B: values[2], A: 1}
	if len(values) == 4 {
		c.A = values[3]
	}
	return c, true
}

// RGBStringToHex converts an "rgb(...)" or "rgba(...)" string to an
// upper-case hex string such as "#FF0000" or "#FF000080".
// Opaque input never yields the 8-digit form: there is no "#RRGGBBFF".
// Input ParseRGB does not recognise is returned unchanged.
func RGBStringToHex(s string) string {
	c, ok := ParseRGB(s)
	if !ok {
		return s
	}
	return c.Hex()
}

// HexToRGB parses "#RGB", "#RRGGBB" or "RRGGBB" (case-insensitive).
// The short form is expanded by duplicating each digit. Alpha is always 1.
// It reports false for anything else, including the 8-digit "#RRGGBBAA"
// form.
func HexToRGB(s string) (RGB, bool) {
	if m := shortHexRegex.FindStringSubmatch(s); m != nil {
		s = "#" + m[1] + m[1] + m[2] + m[2] + m[3] + m[3]
	}

	m := hexRegex.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}

	return RGB{
		R: parseHexByte(m[1]),
		G: parseHexByte(m[2]),
		B: parseHexByte(m[3]),
		A: 1,
	}, true
}

// ToRGB converts any supported colour string to RGB.
// Strings containing '#' are parsed as hex, strings containing "rgb" as
// rgb()/rgba(). Anything unrecognised or unparsable yields Black.
func ToRGB(s string) RGB {
	var (
		c  RGB
		ok bool
	)
	switch {
	case strings.Contains(s, "#"):
		c, ok = HexToRGB(s)
	case strings.Contains(s, "rgb"):
		c, ok = ParseRGB(s)
	}
	if !ok {
		return Black
	}
	return c
}

// GetHSL converts any supported colour string to HSL, keeping the alpha
// found by ToRGB.
func GetHSL(s string) HSL {
	return ToRGB(s).HSL()
}

// IsColor reports whether s looks like a colour string, i.e. contains
// "rgb" or '#'. It does not validate the grammar: "notrgbcolor" is
// accepted and named colours such as "blue" are not.
func IsColor(s string) bool {
	return strings.Contains(s, "rgb") || strings.Contains(s, "#")
}

// parseHexByte converts a two-character hex string to a channel value.
// The caller guarantees the digits are valid.
func parseHexByte(s string) float64 {
	v, _ := strconv.ParseUint(s, 16, 8) //nolint:errcheck
	return float64(v)
}
