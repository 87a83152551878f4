// Package srgb implements the sRGB transfer function (IEC 61966-2-1).
//
// The piecewise gamma curve here is shared by every part of colorbrew that
// needs light-linear values: WCAG luminance, CIE XYZ conversion for color
// temperature, and the color blindness simulation matrices, all of which are
// defined over linear RGB rather than gamma-encoded sRGB.
package srgb

import "math"

// Linearize converts a gamma-encoded sRGB component to linear light (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func Linearize(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// Delinearize converts a linear-light component back to gamma-encoded sRGB
// (OETF). Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1]; out-of-range input is not clamped here.
func Delinearize(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// Linearize8 converts an 8-bit sRGB channel to linear light in [0,1].
func Linearize8(v uint8) float64 {
	return Linearize(float64(v) / 255.0)
}

// To8Bit clamps a [0,1] component to range and scales it to an 8-bit channel
// with rounding. Matrix math upstream can overshoot [0,1], so the clamp
// happens before the rounding.
func To8Bit(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255.0))
}
