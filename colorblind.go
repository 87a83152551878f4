package colorbrew

import (
	"github.com/colorbrew/colorbrew/internal/srgb"
)

// Deficiency identifies a color vision deficiency to simulate. Text is
// converted to a Deficiency once, via ParseDeficiency; Simulate switches
// over the closed set.
type Deficiency uint8

const (
	// Protanopia is red-deficient vision.
	Protanopia Deficiency = iota
	// Deuteranopia is green-deficient vision.
	Deuteranopia
	// Tritanopia is blue-deficient vision.
	Tritanopia
)

var deficiencyNames = map[string]Deficiency{
	"protanopia":   Protanopia,
	"deuteranopia": Deuteranopia,
	"tritanopia":   Tritanopia,
}

// String returns the deficiency's wire name, e.g. "protanopia".
func (d Deficiency) String() string {
	for name, def := range deficiencyNames {
		if def == d {
			return name
		}
	}
	return "unknown"
}

// ParseDeficiency converts a deficiency name into a Deficiency. Unknown
// names yield a *ParseError listing the supported set, sorted.
func ParseDeficiency(name string) (Deficiency, error) {
	if d, ok := deficiencyNames[name]; ok {
		return d, nil
	}
	return 0, &ParseError{Input: name, Want: "a deficiency: " + supportedNames(deficiencyNames)}
}

// Simulation matrices operating in linear RGB space.
// Protanopia and deuteranopia: Viénot et al. 1999.
// Tritanopia: single-plane Brettel 1997 approximation.
var simulationMatrices = [...][3][3]float64{
	Protanopia: {
		{0.170556992, 0.829443014, 0.0},
		{0.170556991, 0.829443008, 0.0},
		{-0.004517144, 0.004517144, 1.0},
	},
	Deuteranopia: {
		{0.330660070, 0.669339930, 0.0},
		{0.330660070, 0.669339930, 0.0},
		{-0.027855380, 0.027855380, 1.0},
	},
	Tritanopia: {
		{1.0, 0.127398900, -0.127398900},
		{0.0, 0.873909300, 0.126090700},
		{0.0, 0.873909300, 0.126090700},
	},
}

// Simulate returns the color as it appears under the given color vision
// deficiency: the channels are linearized, multiplied by the deficiency's
// matrix, and delinearized with clamp-then-round (the matrix product can
// leave [0,1]).
func (c Color) Simulate(d Deficiency) Color {
	m := &simulationMatrices[d]

	rl := srgb.Linearize8(c.r)
	gl := srgb.Linearize8(c.g)
	bl := srgb.Linearize8(c.b)

	rs := m[0][0]*rl + m[0][1]*gl + m[0][2]*bl
	gs := m[1][0]*rl + m[1][1]*gl + m[1][2]*bl
	bs := m[2][0]*rl + m[2][1]*gl + m[2][2]*bl

	return Color{
		srgb.To8Bit(srgb.Delinearize(rs)),
		srgb.To8Bit(srgb.Delinearize(gs)),
		srgb.To8Bit(srgb.Delinearize(bs)),
	}
}
