package colour

import (
	"math"
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

type namedColour struct {
	name string
	rgb  RGB
}

// namedColours is the SVG 1.1 colour keyword table sorted by name, so that
// ties in NearestName resolve alphabetically.
var namedColours = sync.OnceValue(func() []namedColour {
	out := make([]namedColour, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		out = append(out, namedColour{
			name: name,
			rgb:  RGB{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: 1},
		})
	}
	slices.SortFunc(out, func(a, b namedColour) int {
		return strings.Compare(a.name, b.name)
	})
	return out
})

// NearestName returns the CSS colour keyword closest to c by Euclidean
// distance in RGB, and whether the match is exact. Alpha is ignored.
func NearestName(c RGB) (name string, exact bool) {
	best := math.Inf(1)
	for _, nc := range namedColours() {
		dr := c.R - nc.rgb.R
		dg := c.G - nc.rgb.G
		db := c.B - nc.rgb.B
		if d := dr*dr + dg*dg + db*db; d < best {
			best = d
			name = nc.name
		}
	}
	return name, best == 0
}
