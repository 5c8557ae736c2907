package colour

import "math"

// HSLToRGB converts HSL to RGB colour space.
// h is hue in degrees, s is saturation (0-1), l is lightness (0-1) and a is
// alpha, passed through untouched.
//
// h is clamped to [0,360): 360 and above become 359, negatives and NaN
// become 0. s and l are clamped to [0,1]. The result is scaled to 0-255 but
// is neither rounded nor clamped.
func HSLToRGB(h, s, l, a float64) RGB {
	switch {
	case h >= 360:
		h = 359
	case !(h >= 0):
		h = 0
	}
	s = clamp(s, 0, 1)
	l = clamp(l, 0, 1)

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	// Pick the channel order from the 60 degree sector of the hue.
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: 255 * (r + m),
		G: 255 * (g + m),
		B: 255 * (b + m),
		A: a,
	}
}

// RGBToHSL converts RGB to HSL colour space.
// Channels are expected in [0,255] and are not validated. The returned hue
// is a whole number of degrees in [0,360); saturation and lightness are
// rounded to Precision decimal places. Alpha is always 1; use RGB.HSL to
// carry an alpha through.
func RGBToHSL(r, g, b float64) HSL {
	r /= 255
	g /= 255
	b /= 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	var h float64
	switch {
	case delta == 0:
		// Achromatic (grey).
	case maxVal == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case maxVal == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	h = math.Floor(wrapHue(h))
	if h >= 360 {
		h -= 360
	}

	// Saturation is derived from the rounded lightness.
	l := roundFixed((maxVal + minVal) / 2)
	var s float64
	if delta != 0 {
		s = roundFixed(delta / (1 - math.Abs(2*l-1)))
	}

	return HSL{H: h, S: s, L: l, A: 1}
}

// wrapHue maps h into [0,360), wrapping negative angles.
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
