// Package colorbrew provides color parsing, conversion, and analysis for Go.
//
// # Overview
//
// colorbrew represents a color as an immutable RGB value with 8-bit channels
// and derives every other representation on demand: hex, HSL, HSV, CMYK, and
// CSS function strings. On top of the conversions it offers manipulation
// (lighten, darken, saturate, hue rotation, mixing, gradients), Photoshop-style
// blend modes, WCAG contrast checking, color temperature estimation, color
// blindness simulation, nearest-named-color lookup, and palette generation.
//
// # Quick Start
//
//	import "github.com/colorbrew/colorbrew"
//
//	c, err := colorbrew.New("#3498db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	lighter := c.Lighten(20)
//	fmt.Println(c.CSSRGB())          // "rgb(52, 152, 219)"
//	fmt.Println(lighter.Hex())       // "#8ac4ea"
//	fmt.Println(c.ClosestName().Name)
//
// # Value Semantics
//
// Color is a small comparable struct. Every operation returns a new value;
// nothing is ever mutated, so colors are safe to share between goroutines,
// use as map keys, and compare with ==.
//
// # Errors
//
// Construction is the only place validation happens. Failures are reported
// as *ParseError (text that matches no recognized color syntax) or
// *ValueError (a numeric argument outside its domain); see errors.go.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Color, BlendMode, Deficiency, TemperatureClass, NameMatch
//   - Converters: pure functions between hex/RGB/HSL/HSV/CMYK (convert.go)
//   - Internal: srgb (gamma linearization shared by contrast, temperature,
//     and colorblind simulation)
package colorbrew

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
