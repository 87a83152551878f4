package colorbrew

import "math"

// Color adjustment operations. The HSL-based adjustments round-trip through
// RGBToHSL/HSLToRGB and modify one component; mix-family operations
// interpolate directly in RGB space. All of them return new values.

// Lighten adds amount percentage points to the HSL lightness, clamped to
// [0,100].
func (c Color) Lighten(amount int) Color {
	h, s, l := c.HSL()
	return fromHSLClamped(h, s, l+amount)
}

// Darken subtracts amount percentage points from the HSL lightness, clamped
// to [0,100].
func (c Color) Darken(amount int) Color {
	h, s, l := c.HSL()
	return fromHSLClamped(h, s, l-amount)
}

// Saturate adds amount percentage points to the HSL saturation, clamped to
// [0,100].
func (c Color) Saturate(amount int) Color {
	h, s, l := c.HSL()
	return fromHSLClamped(h, s+amount, l)
}

// Desaturate subtracts amount percentage points from the HSL saturation,
// clamped to [0,100].
func (c Color) Desaturate(amount int) Color {
	h, s, l := c.HSL()
	return fromHSLClamped(h, s-amount, l)
}

// RotateHue shifts the hue by the given number of degrees, wrapping at 360.
// Negative degrees rotate the other way.
func (c Color) RotateHue(degrees int) Color {
	h, s, l := c.HSL()
	return fromHSLClamped(h+degrees, s, l)
}

// Invert returns the RGB inverse (255 minus each channel).
func (c Color) Invert() Color {
	return Color{255 - c.r, 255 - c.g, 255 - c.b}
}

// Grayscale removes all saturation, producing a gray of equal lightness.
func (c Color) Grayscale() Color {
	h, _, l := c.HSL()
	return fromHSLClamped(h, 0, l)
}

// fromHSLClamped converts adjusted HSL components back to a Color. Hue wraps
// and the percentages clamp inside HSLToRGB, so adjustments can overshoot
// freely.
func fromHSLClamped(h, s, l int) Color {
	r, g, b := HSLToRGB(h, s, l)
	return Color{uint8(r), uint8(g), uint8(b)}
}

// Mix blends c toward other by linear interpolation in RGB space. The weight
// is clamped to [0,1]; 0 returns c exactly and 1 returns other exactly.
func (c Color) Mix(other Color, weight float64) Color {
	w := clampFloat(weight, 0, 1)
	return Color{
		lerpChannel(c.r, other.r, w),
		lerpChannel(c.g, other.g, w),
		lerpChannel(c.b, other.b, w),
	}
}

// lerpChannel interpolates a single channel with round-to-nearest.
func lerpChannel(a, b uint8, w float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*w))
}

// Shade mixes the color toward pure black by the given amount (0-1).
func (c Color) Shade(amount float64) Color {
	return c.Mix(Color{0, 0, 0}, amount)
}

// Tint mixes the color toward pure white by the given amount (0-1).
func (c Color) Tint(amount float64) Color {
	return c.Mix(Color{255, 255, 255}, amount)
}

// Tone mixes the color toward mid-gray (128,128,128) by the given amount
// (0-1).
func (c Color) Tone(amount float64) Color {
	return c.Mix(Color{128, 128, 128}, amount)
}

// Gradient returns steps colors evenly interpolated from c to other, with
// exact endpoints: the first element is c and the last is other. A step
// count below 2 yields a single-element slice containing only c.
func (c Color) Gradient(other Color, steps int) []Color {
	if steps < 2 {
		return []Color{c}
	}
	out := make([]Color, steps)
	for i := range out {
		out[i] = c.Mix(other, float64(i)/float64(steps-1))
	}
	return out
}
