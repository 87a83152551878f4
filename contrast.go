package colorbrew

import (
	"math"

	"github.com/colorbrew/colorbrew/internal/srgb"
)

// WCAG 2.1 relative luminance and contrast ratio.

// WCAG contrast ratio thresholds for text legibility.
const (
	aaNormalThreshold  = 4.5
	aaLargeThreshold   = 3.0
	aaaNormalThreshold = 7.0
	aaaLargeThreshold  = 4.5
)

// lightThreshold splits colors into light and dark by relative luminance.
// Every color classifies as exactly one of the two.
const lightThreshold = 0.5

// Luminance returns the WCAG relative luminance: each channel linearized
// through the sRGB gamma curve, then weighted 0.2126 R + 0.7152 G + 0.0722 B.
// Ranges from 0.0 (black) to 1.0 (white).
func (c Color) Luminance() float64 {
	return 0.2126*srgb.Linearize8(c.r) +
		0.7152*srgb.Linearize8(c.g) +
		0.0722*srgb.Linearize8(c.b)
}

// Contrast returns the WCAG contrast ratio between c and other, rounded to
// 2 decimal places. The ratio is symmetric and ranges from 1.0 (same
// luminance) to 21.0 (black on white).
func (c Color) Contrast(other Color) float64 {
	l1 := c.Luminance()
	l2 := other.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return math.Round((l1+0.05)/(l2+0.05)*100) / 100
}

// MeetsAA reports whether the contrast between c and other meets the WCAG AA
// threshold: 4.5 for normal text, 3.0 for large text.
func (c Color) MeetsAA(other Color, large bool) bool {
	if large {
		return c.Contrast(other) >= aaLargeThreshold
	}
	return c.Contrast(other) >= aaNormalThreshold
}

// MeetsAAA reports whether the contrast between c and other meets the WCAG
// AAA threshold: 7.0 for normal text, 4.5 for large text.
func (c Color) MeetsAAA(other Color, large bool) bool {
	if large {
		return c.Contrast(other) >= aaaLargeThreshold
	}
	return c.Contrast(other) >= aaaNormalThreshold
}

// IsLight reports whether the color's relative luminance is at least 0.5.
// IsLight and IsDark partition all colors: exactly one is true.
func (c Color) IsLight() bool {
	return c.Luminance() >= lightThreshold
}

// IsDark reports whether the color's relative luminance is below 0.5.
func (c Color) IsDark() bool {
	return !c.IsLight()
}
