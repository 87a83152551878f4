package colorbrew

import (
	"fmt"
	"math/rand/v2"
)

// Color is an immutable RGB color with 8-bit channels. The zero value is
// black. Color is comparable: two colors are equal when their channel
// triples are equal, and a Color can be used as a map key. Every derived
// representation is computed on demand from the three channels; every
// transformation returns a new value.
type Color struct {
	r, g, b uint8
}

// New parses a color string (hex, CSS rgb()/hsl() function, or CSS color
// name) into a Color. See Parse for the accepted syntaxes and error types.
func New(value string) (Color, error) {
	return Parse(value)
}

// NewRGB creates a Color from three channel values, validating that each is
// within 0-255. Out-of-range channels yield a *ValueError naming the channel;
// nothing is silently clamped.
func NewRGB(r, g, b int) (Color, error) {
	if err := validateRGB(r, g, b); err != nil {
		return Color{}, err
	}
	return Color{uint8(r), uint8(g), uint8(b)}, nil
}

// FromHSL creates a Color from hue (degrees), saturation, and lightness
// (0-100 percent). Hue is wrapped into [0,360), so any angle is accepted;
// saturation or lightness outside 0-100 yields a *ValueError.
func FromHSL(h, s, l int) (Color, error) {
	if s < 0 || s > 100 {
		return Color{}, rangeError("s", s, 0, 100)
	}
	if l < 0 || l > 100 {
		return Color{}, rangeError("l", l, 0, 100)
	}
	r, g, b := HSLToRGB(h, s, l)
	return Color{uint8(r), uint8(g), uint8(b)}, nil
}

// FromHSV creates a Color from hue (degrees), saturation, and value (0-100
// percent), with the same hue wrapping and range rules as FromHSL.
func FromHSV(h, s, v int) (Color, error) {
	if s < 0 || s > 100 {
		return Color{}, rangeError("s", s, 0, 100)
	}
	if v < 0 || v > 100 {
		return Color{}, rangeError("v", v, 0, 100)
	}
	r, g, b := HSVToRGB(h, s, v)
	return Color{uint8(r), uint8(g), uint8(b)}, nil
}

// FromCMYK creates a Color from cyan, magenta, yellow, and key percentages.
// Components outside 0-100 yield a *ValueError naming the component.
func FromCMYK(c, m, y, k int) (Color, error) {
	for _, comp := range [...]struct {
		name  string
		value int
	}{{"c", c}, {"m", m}, {"y", y}, {"k", k}} {
		if comp.value < 0 || comp.value > 100 {
			return Color{}, rangeError(comp.name, comp.value, 0, 100)
		}
	}
	r, g, b := CMYKToRGB(c, m, y, k)
	return Color{uint8(r), uint8(g), uint8(b)}, nil
}

// FromName creates a Color from a CSS color name, case-insensitively and
// ignoring surrounding whitespace. Unknown names yield a *ParseError.
func FromName(name string) (Color, error) {
	e, ok := namedColorIndex[normalizeName(name)]
	if !ok {
		return Color{}, &ParseError{Input: name, Want: "a CSS color name"}
	}
	return Color{e.r, e.g, e.b}, nil
}

// Random returns a Color with uniformly random channels.
func Random() Color {
	return Color{
		uint8(rand.IntN(256)),
		uint8(rand.IntN(256)),
		uint8(rand.IntN(256)),
	}
}

// R returns the red channel (0-255).
func (c Color) R() int { return int(c.r) }

// G returns the green channel (0-255).
func (c Color) G() int { return int(c.g) }

// B returns the blue channel (0-255).
func (c Color) B() int { return int(c.b) }

// RGB returns the three channels as (r, g, b).
func (c Color) RGB() (r, g, b int) {
	return int(c.r), int(c.g), int(c.b)
}

// Hex returns the lowercase '#'-prefixed 6-digit hex form, e.g. "#3498db".
func (c Color) Hex() string {
	return RGBToHex(c.RGB())
}

// HSL returns the hue (0-360), saturation (0-100), and lightness (0-100).
func (c Color) HSL() (h, s, l int) {
	return RGBToHSL(c.RGB())
}

// HSV returns the hue (0-360), saturation (0-100), and value (0-100).
func (c Color) HSV() (h, s, v int) {
	return RGBToHSV(c.RGB())
}

// CMYK returns the cyan, magenta, yellow, and key percentages (0-100).
func (c Color) CMYK() (cy, m, y, k int) {
	return RGBToCMYK(c.RGB())
}

// ClosestName returns the nearest CSS named color by RGB distance.
func (c Color) ClosestName() NameMatch {
	return ClosestName(c.RGB())
}

// String returns the hex form, e.g. "#3498db".
func (c Color) String() string {
	return c.Hex()
}

// GoString returns a constructor-style form, e.g. "Color('#3498db')".
// It is what %#v prints.
func (c Color) GoString() string {
	return fmt.Sprintf("Color('%s')", c.Hex())
}

// Format renders the color using one of the recognized specs: "hex", "rgb",
// "hsl", or "" (hex). Unknown specs yield a *ParseError listing the valid
// ones.
func (c Color) Format(spec string) (string, error) {
	switch spec {
	case "", "hex":
		return c.Hex(), nil
	case "rgb":
		return c.CSSRGB(), nil
	case "hsl":
		return c.CSSHSL(), nil
	default:
		return "", &ParseError{Input: spec, Want: `a format spec: "hex", "rgb", or "hsl"`}
	}
}
