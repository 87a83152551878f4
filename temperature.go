package colorbrew

import (
	"math"

	"github.com/colorbrew/colorbrew/internal/srgb"
)

// TemperatureClass is the perceptual warmth classification of a color.
type TemperatureClass uint8

const (
	// TemperatureNeutral covers near-grays (HSL saturation below 10).
	TemperatureNeutral TemperatureClass = iota
	// TemperatureWarm covers reds through yellows and magentas
	// (hue <= 60 or hue >= 300).
	TemperatureWarm
	// TemperatureCool covers greens through blues and purples.
	TemperatureCool
)

// String returns "neutral", "warm", or "cool".
func (t TemperatureClass) String() string {
	switch t {
	case TemperatureWarm:
		return "warm"
	case TemperatureCool:
		return "cool"
	default:
		return "neutral"
	}
}

// Temperature classifies the color as warm, cool, or neutral by its HSL hue
// angle. Saturation below 10 percent reads as neutral regardless of hue.
func (c Color) Temperature() TemperatureClass {
	h, s, _ := c.HSL()
	if s < 10 {
		return TemperatureNeutral
	}
	if h <= 60 || h >= 300 {
		return TemperatureWarm
	}
	return TemperatureCool
}

// sRGB (D65) to CIE XYZ matrix rows.
var xyzFromLinear = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// Kelvin bounds for the CCT estimate.
const (
	minKelvin = 1000
	maxKelvin = 40000
)

// Kelvin estimates the correlated color temperature in Kelvin. The color is
// linearized, transformed to CIE XYZ (D65), reduced to xy chromaticity, and
// run through McCamy's cubic approximation. The result is clamped to
// [1000, 40000]; black has no chromaticity and returns the 1000 K floor.
func (c Color) Kelvin() int {
	rl := srgb.Linearize8(c.r)
	gl := srgb.Linearize8(c.g)
	bl := srgb.Linearize8(c.b)

	x := xyzFromLinear[0][0]*rl + xyzFromLinear[0][1]*gl + xyzFromLinear[0][2]*bl
	y := xyzFromLinear[1][0]*rl + xyzFromLinear[1][1]*gl + xyzFromLinear[1][2]*bl
	z := xyzFromLinear[2][0]*rl + xyzFromLinear[2][1]*gl + xyzFromLinear[2][2]*bl

	total := x + y + z
	if total == 0 {
		return minKelvin
	}

	cx := x / total
	cy := y / total

	// McCamy's formula: CCT(n) = 449n^3 + 3525n^2 + 6823.3n + 5520.33
	// with n = (x - 0.3320) / (0.1858 - y).
	n := (cx - 0.3320) / (0.1858 - cy)
	cct := 449.0*n*n*n + 3525.0*n*n + 6823.3*n + 5520.33

	return clampInt(int(math.Round(cct)), minKelvin, maxKelvin)
}
