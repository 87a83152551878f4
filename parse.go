package colorbrew

import (
	"regexp"
	"strconv"
	"strings"
)

// Accepted string syntaxes, tried in order by Parse. The CSS function
// patterns tolerate flexible whitespace; percent signs in hsl() are optional.
var (
	hexPattern     = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbFuncPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	hslFuncPattern = regexp.MustCompile(`^hsl\(\s*(\d{1,3})\s*,\s*(\d{1,3})%?\s*,\s*(\d{1,3})%?\s*\)$`)
)

// Parse interprets a color string as a Color. Leading and trailing whitespace
// is trimmed, then the input is matched against, in order: a 3- or 6-digit
// hex string (optional '#'), a CSS rgb() function, a CSS hsl() function, and
// the CSS color names (case-insensitive). The first match wins.
//
// An input matching none of the four syntaxes yields a *ParseError. An rgb()
// or hsl() input with a component outside its domain yields a *ValueError.
func Parse(value string) (Color, error) {
	value = strings.TrimSpace(value)

	if hexPattern.MatchString(value) {
		r, g, b := HexToRGB(value)
		return Color{uint8(r), uint8(g), uint8(b)}, nil
	}

	if m := rgbFuncPattern.FindStringSubmatch(value); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		return NewRGB(r, g, b)
	}

	if m := hslFuncPattern.FindStringSubmatch(value); m != nil {
		h, _ := strconv.Atoi(m[1])
		s, _ := strconv.Atoi(m[2])
		l, _ := strconv.Atoi(m[3])
		return FromHSL(h, s, l)
	}

	if e, ok := namedColorIndex[strings.ToLower(value)]; ok {
		return Color{e.r, e.g, e.b}, nil
	}

	return Color{}, &ParseError{Input: value}
}

// normalizeName lowercases a CSS color name and strips surrounding
// whitespace; table keys are lowercase ASCII.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// validateRGB checks that each channel is within 0-255 and reports the
// offending channel by name otherwise.
func validateRGB(r, g, b int) error {
	for _, ch := range [...]struct {
		name  string
		value int
	}{{"r", r}, {"g", g}, {"b", b}} {
		if ch.value < 0 || ch.value > 255 {
			return rangeError(ch.name, ch.value, 0, 255)
		}
	}
	return nil
}
