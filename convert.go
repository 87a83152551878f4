package colorbrew

import (
	"fmt"
	"math"
)

// Pure conversion functions between color formats. Each function is total on
// its constrained input domain; validation of untrusted input is the job of
// the parsing layer and the Color constructors, not of these converters.
//
// Integer-producing conversions round to the nearest integer. Hue is wrapped
// into [0,360) and percentages are clamped to [0,100] before use, so outputs
// always land in valid channel range without a separate clamp.

// HexToRGB converts a hex color string to RGB channels.
// Accepts 3- or 6-digit strings, with or without a leading '#',
// case-insensitive. A 3-digit form duplicates each digit ("f0a" -> "ff00aa").
// Behavior on non-hex characters is unspecified; use Parse for validation.
func HexToRGB(hex string) (r, g, b int) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) == 3 {
		r = parseHexByte(hex[0:1]) * 17
		g = parseHexByte(hex[1:2]) * 17
		b = parseHexByte(hex[2:3]) * 17
		return r, g, b
	}
	return parseHexByte(hex[0:2]), parseHexByte(hex[2:4]), parseHexByte(hex[4:6])
}

// parseHexByte accumulates hex nibbles; a single digit yields its value,
// two digits yield the full byte.
func parseHexByte(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += int(c - '0')
		case 'a' <= c && c <= 'f':
			v += int(c-'a') + 10
		case 'A' <= c && c <= 'F':
			v += int(c-'A') + 10
		}
	}
	return v
}

// RGBToHex converts RGB channels to a lowercase, zero-padded, '#'-prefixed
// 6-digit hex string.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBToHSL converts RGB channels (0-255) to HSL:
// hue 0-360 degrees, saturation and lightness 0-100 percent.
func RGBToHSL(r, g, b int) (h, s, l int) {
	rn := float64(r) / 255.0
	gn := float64(g) / 255.0
	bn := float64(b) / 255.0

	cMax := math.Max(rn, math.Max(gn, bn))
	cMin := math.Min(rn, math.Min(gn, bn))
	delta := cMax - cMin

	lightness := (cMax + cMin) / 2.0

	var hue, saturation float64
	if delta != 0 {
		// Saturation splits on lightness to avoid division blow-up near
		// the extremes.
		if lightness <= 0.5 {
			saturation = delta / (cMax + cMin)
		} else {
			saturation = delta / (2.0 - cMax - cMin)
		}

		hue = hueFromMax(rn, gn, bn, cMax, delta)
	}

	return int(math.Round(hue)), int(math.Round(saturation * 100)), int(math.Round(lightness * 100))
}

// hueFromMax computes the hue angle in degrees from the max-channel case
// split, wrapped into [0,360). Shared by RGBToHSL and RGBToHSV.
func hueFromMax(rn, gn, bn, cMax, delta float64) float64 {
	var hue float64
	switch cMax {
	case rn:
		hue = math.Mod((gn-bn)/delta, 6.0)
	case gn:
		hue = (bn-rn)/delta + 2.0
	default:
		hue = (rn-gn)/delta + 4.0
	}
	hue *= 60.0
	if hue < 0 {
		hue += 360.0
	}
	return hue
}

// HSLToRGB converts HSL values (hue in degrees, saturation and lightness
// 0-100 percent) to RGB channels using the chroma/X/m piecewise hue-sector
// method. Hue is wrapped into [0,360); saturation and lightness are clamped.
func HSLToRGB(h, s, l int) (r, g, b int) {
	h = wrapHue(h)
	sn := float64(clampInt(s, 0, 100)) / 100.0
	ln := float64(clampInt(l, 0, 100)) / 100.0

	if sn == 0 {
		v := int(math.Round(ln * 255))
		return v, v, v
	}

	c := (1.0 - math.Abs(2.0*ln-1.0)) * sn
	x := c * (1.0 - math.Abs(math.Mod(float64(h)/60.0, 2.0)-1.0))
	m := ln - c/2.0

	r1, g1, b1 := hueSector(h, c, x)
	return int(math.Round((r1 + m) * 255)),
		int(math.Round((g1 + m) * 255)),
		int(math.Round((b1 + m) * 255))
}

// hueSector maps a hue angle to the (r,g,b) chroma components before the
// lightness offset is applied. Shared by HSLToRGB and HSVToRGB.
func hueSector(h int, c, x float64) (r, g, b float64) {
	switch {
	case h < 60:
		return c, x, 0
	case h < 120:
		return x, c, 0
	case h < 180:
		return 0, c, x
	case h < 240:
		return 0, x, c
	case h < 300:
		return x, 0, c
	default:
		return c, 0, x
	}
}

// RGBToHSV converts RGB channels (0-255) to HSV:
// hue 0-360 degrees, saturation and value 0-100 percent.
func RGBToHSV(r, g, b int) (h, s, v int) {
	rn := float64(r) / 255.0
	gn := float64(g) / 255.0
	bn := float64(b) / 255.0

	cMax := math.Max(rn, math.Max(gn, bn))
	cMin := math.Min(rn, math.Min(gn, bn))
	delta := cMax - cMin

	var hue, saturation float64
	if delta != 0 {
		saturation = delta / cMax
		hue = hueFromMax(rn, gn, bn, cMax, delta)
	}

	return int(math.Round(hue)), int(math.Round(saturation * 100)), int(math.Round(cMax * 100))
}

// HSVToRGB converts HSV values (hue in degrees, saturation and value 0-100
// percent) to RGB channels. Hue is wrapped into [0,360); saturation and
// value are clamped.
func HSVToRGB(h, s, v int) (r, g, b int) {
	h = wrapHue(h)
	sn := float64(clampInt(s, 0, 100)) / 100.0
	vn := float64(clampInt(v, 0, 100)) / 100.0

	if sn == 0 {
		val := int(math.Round(vn * 255))
		return val, val, val
	}

	c := vn * sn
	x := c * (1.0 - math.Abs(math.Mod(float64(h)/60.0, 2.0)-1.0))
	m := vn - c

	r1, g1, b1 := hueSector(h, c, x)
	return int(math.Round((r1 + m) * 255)),
		int(math.Round((g1 + m) * 255)),
		int(math.Round((b1 + m) * 255))
}

// RGBToCMYK converts RGB channels (0-255) to CMYK percentages (0-100).
// Black is special-cased to (0,0,0,100) to avoid division by zero at k=1.
func RGBToCMYK(r, g, b int) (c, m, y, k int) {
	if r == 0 && g == 0 && b == 0 {
		return 0, 0, 0, 100
	}

	rn := float64(r) / 255.0
	gn := float64(g) / 255.0
	bn := float64(b) / 255.0

	kf := 1.0 - math.Max(rn, math.Max(gn, bn))
	cf := (1.0 - rn - kf) / (1.0 - kf)
	mf := (1.0 - gn - kf) / (1.0 - kf)
	yf := (1.0 - bn - kf) / (1.0 - kf)

	return int(math.Round(cf * 100)), int(math.Round(mf * 100)),
		int(math.Round(yf * 100)), int(math.Round(kf * 100))
}

// CMYKToRGB converts CMYK percentages (0-100) to RGB channels.
// Formula: 255 * (1-x) * (1-k) per channel.
func CMYKToRGB(c, m, y, k int) (r, g, b int) {
	cn := float64(c) / 100.0
	mn := float64(m) / 100.0
	yn := float64(y) / 100.0
	kn := float64(k) / 100.0

	return int(math.Round(255 * (1 - cn) * (1 - kn))),
		int(math.Round(255 * (1 - mn) * (1 - kn))),
		int(math.Round(255 * (1 - yn) * (1 - kn)))
}

// wrapHue wraps a hue angle into [0,360), handling negative input.
func wrapHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampFloat restricts v to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
