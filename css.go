package colorbrew

import (
	"fmt"
	"strconv"
)

// CSS text output. Thin formatting over the converters; the exact shapes are
// part of the public contract:
//
//	rgb(52, 152, 219)
//	rgba(52, 152, 219, 0.8)
//	hsl(204, 70%, 53%)
//	hsla(204, 70%, 53%, 0.8)

// CSSHex returns the CSS hex form (alias of Hex).
func (c Color) CSSHex() string {
	return c.Hex()
}

// CSSRGB returns the CSS rgb() function form.
func (c Color) CSSRGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b)
}

// CSSRGBA returns the CSS rgba() function form. Alpha outside [0,1] yields a
// *ValueError.
func (c Color) CSSRGBA(alpha float64) (string, error) {
	if err := validateAlpha(alpha); err != nil {
		return "", err
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.r, c.g, c.b, formatAlpha(alpha)), nil
}

// CSSHSL returns the CSS hsl() function form.
func (c Color) CSSHSL() string {
	h, s, l := c.HSL()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// CSSHSLA returns the CSS hsla() function form. Alpha outside [0,1] yields a
// *ValueError.
func (c Color) CSSHSLA(alpha float64) (string, error) {
	if err := validateAlpha(alpha); err != nil {
		return "", err
	}
	h, s, l := c.HSL()
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", h, s, l, formatAlpha(alpha)), nil
}

func validateAlpha(alpha float64) error {
	if alpha < 0 || alpha > 1 {
		return &ValueError{Arg: "alpha", Value: alpha, Reason: "must be 0.0-1.0"}
	}
	return nil
}

// formatAlpha renders alpha with the shortest representation that
// round-trips: 0.8 -> "0.8", 1 -> "1", 0.25 -> "0.25".
func formatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'g', -1, 64)
}
