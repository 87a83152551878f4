package colorbrew

import (
	"math"
	"sort"
	"strings"
)

// BlendMode selects one of the Photoshop-style per-channel compositing
// functions. Text is converted to a BlendMode once, at the boundary, via
// ParseBlendMode; the blend kernel itself switches exhaustively over the
// closed set.
type BlendMode uint8

const (
	// BlendMultiply darkens: B(a,b) = a*b.
	BlendMultiply BlendMode = iota
	// BlendScreen lightens: B(a,b) = 1-(1-a)*(1-b).
	BlendScreen
	// BlendOverlay multiplies or screens depending on the base channel.
	BlendOverlay
	// BlendSoftLight is the W3C compositing soft-light curve.
	BlendSoftLight
	// BlendHardLight is overlay with the layers swapped (top drives the
	// branch).
	BlendHardLight
	// BlendDifference is the absolute difference |a-b|.
	BlendDifference
)

// blendModeNames maps the wire names to modes; also drives String and the
// sorted list in parse errors.
var blendModeNames = map[string]BlendMode{
	"multiply":   BlendMultiply,
	"screen":     BlendScreen,
	"overlay":    BlendOverlay,
	"soft_light": BlendSoftLight,
	"hard_light": BlendHardLight,
	"difference": BlendDifference,
}

// String returns the mode's wire name, e.g. "soft_light".
func (m BlendMode) String() string {
	for name, mode := range blendModeNames {
		if mode == m {
			return name
		}
	}
	return "unknown"
}

// ParseBlendMode converts a mode name into a BlendMode. Unknown names yield
// a *ParseError listing the supported set, sorted.
func ParseBlendMode(name string) (BlendMode, error) {
	if m, ok := blendModeNames[name]; ok {
		return m, nil
	}
	return 0, &ParseError{Input: name, Want: "a blend mode: " + supportedNames(blendModeNames)}
}

// supportedNames renders a name->value map's keys sorted and comma-joined.
func supportedNames[V any](m map[string]V) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Blend composites the top color onto c (the base) with the given mode. Each
// channel is normalized to [0,1], blended independently, then clamped and
// rounded back to 8 bits.
func (c Color) Blend(top Color, mode BlendMode) Color {
	return Color{
		blendChannel8(mode, c.r, top.r),
		blendChannel8(mode, c.g, top.g),
		blendChannel8(mode, c.b, top.b),
	}
}

func blendChannel8(mode BlendMode, base, top uint8) uint8 {
	v := blendChannel(mode, float64(base)/255.0, float64(top)/255.0)
	return uint8(math.Round(clampFloat(v, 0, 1) * 255))
}

// blendChannel applies a blend mode to one pair of [0,1] channels, a being
// the base layer and b the top layer.
func blendChannel(mode BlendMode, a, b float64) float64 {
	switch mode {
	case BlendMultiply:
		return a * b
	case BlendScreen:
		return 1.0 - (1.0-a)*(1.0-b)
	case BlendOverlay:
		return overlayChannel(a, b)
	case BlendSoftLight:
		return softLightChannel(a, b)
	case BlendHardLight:
		// Overlay with the top layer driving the branch.
		return overlayChannel(b, a)
	case BlendDifference:
		return math.Abs(a - b)
	default:
		panic("colorbrew: invalid BlendMode")
	}
}

// overlayChannel combines multiply and screen: the dark half of the base
// multiplies, the light half screens.
func overlayChannel(a, b float64) float64 {
	if a < 0.5 {
		return 2.0 * a * b
	}
	return 1.0 - 2.0*(1.0-a)*(1.0-b)
}

// softLightChannel is the W3C compositing spec soft-light formula, with the
// polynomial correction term for dark bases (a <= 0.25).
func softLightChannel(a, b float64) float64 {
	if b <= 0.5 {
		return a - (1.0-2.0*b)*a*(1.0-a)
	}
	var d float64
	if a <= 0.25 {
		d = ((16.0*a-12.0)*a + 4.0) * a
	} else {
		d = math.Sqrt(a)
	}
	return a + (2.0*b-1.0)*(d-a)
}
