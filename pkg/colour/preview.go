package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

var (
	textBlack = RGB{A: 1}
	textWhite = RGB{R: 255, G: 255, B: 255, A: 1}
)

// Swatch returns a solid block of the colour, width cells wide.
// A non-positive width uses the default of 8.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return ansiBackground(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a block of the colour with text centred on it.
// The text is black or white, whichever contrasts more with the colour, and
// is truncated to width.
func SwatchWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := textWhite
	if ContrastRatio(c, textBlack) > ContrastRatio(c, textWhite) {
		fg = textBlack
	}

	switch {
	case len(text) > width:
		text = text[:width]
	case len(text) < width:
		left := (width - len(text)) / 2
		text = strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
	}

	return ansiBackground(c) + ansiForeground(fg) + text + ansiReset
}

// SupportsANSI reports whether fd is a terminal that is likely to render
// ANSI colour sequences. It is false when NO_COLOR is set to a non-empty
// value or TERM is "dumb".
func SupportsANSI(fd uintptr) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(fd)) //nolint:gosec
}

func ansiBackground(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, channel8(c.R), channel8(c.G), channel8(c.B), ansiSuffix)
}

func ansiForeground(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, channel8(c.R), channel8(c.G), channel8(c.B), ansiSuffix)
}
