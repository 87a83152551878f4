package colorbrew

// Palette generation from color-wheel hue relationships. Every scheme is a
// set of hue rotations that preserve the original saturation and lightness;
// the returned slices never include the original color.

// Complementary returns the color opposite on the color wheel (hue + 180).
func (c Color) Complementary() Color {
	return c.RotateHue(180)
}

// Analogous returns n colors spaced step degrees apart, centered around the
// original hue.
func (c Color) Analogous(n, step int) []Color {
	start := -step * (n / 2)
	out := make([]Color, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, c.RotateHue(start+step*i))
	}
	return out
}

// Triadic returns the two colors a third of the wheel away (hue + 120 and
// + 240).
func (c Color) Triadic() []Color {
	return []Color{c.RotateHue(120), c.RotateHue(240)}
}

// SplitComplementary returns the two colors adjacent to the complement
// (hue + 150 and + 210).
func (c Color) SplitComplementary() []Color {
	return []Color{c.RotateHue(150), c.RotateHue(210)}
}

// Tetradic returns the three remaining corners of a square on the wheel
// (hue + 90, + 180, + 270).
func (c Color) Tetradic() []Color {
	return []Color{c.RotateHue(90), c.RotateHue(180), c.RotateHue(270)}
}
