package colorbrew

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/image/colornames"
)

// NameMatch is the result of a reverse color-name lookup.
type NameMatch struct {
	// Name is the CSS color name, e.g. "steelblue".
	Name string
	// Hex is the hex value of the named color, e.g. "#4682b4".
	Hex string
	// Distance is the Euclidean distance in RGB space (0 = exact match),
	// rounded to 4 decimal places.
	Distance float64
	// Exact reports whether the lookup hit the color exactly.
	Exact bool
}

// namedColor is one entry of the CSS named-color table.
type namedColor struct {
	name    string
	hex     string
	r, g, b uint8
}

// namedColors holds all 148 CSS color names in alphabetical order. The slice
// is built once at init and never mutated, so unsynchronized concurrent reads
// are safe. Alphabetical order makes nearest-name ties deterministic: the
// alphabetically first name wins.
var namedColors = buildNamedColors()

// namedColorIndex maps lowercase name to its table entry for O(1) lookup.
var namedColorIndex = buildNamedColorIndex()

func buildNamedColors() []namedColor {
	entries := make([]namedColor, 0, len(colornames.Names)+1)
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		entries = append(entries, namedColor{
			name: name,
			hex:  fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
			r:    c.R, g: c.G, b: c.B,
		})
	}
	// colornames covers the SVG 1.1 set; CSS Color 4 adds rebeccapurple.
	if _, ok := colornames.Map["rebeccapurple"]; !ok {
		entries = append(entries, namedColor{
			name: "rebeccapurple",
			hex:  "#663399",
			r:    0x66, g: 0x33, b: 0x99,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	return entries
}

func buildNamedColorIndex() map[string]namedColor {
	index := make(map[string]namedColor, len(namedColors))
	for _, e := range namedColors {
		index[e.name] = e
	}
	return index
}

// ClosestName finds the CSS named color nearest to the given RGB channels by
// Euclidean distance in RGB space. The scan short-circuits on an exact match;
// among equidistant names the alphabetically first wins.
func ClosestName(r, g, b int) NameMatch {
	best := namedColor{}
	bestDist := math.Inf(1)

	for _, e := range namedColors {
		dr := float64(r - int(e.r))
		dg := float64(g - int(e.g))
		db := float64(b - int(e.b))
		dist := math.Sqrt(dr*dr + dg*dg + db*db)
		if dist < bestDist {
			best = e
			bestDist = dist
			if dist == 0 {
				break
			}
		}
	}

	return NameMatch{
		Name:     best.name,
		Hex:      best.hex,
		Distance: math.Round(bestDist*10000) / 10000,
		Exact:    bestDist == 0,
	}
}
