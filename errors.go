package colorbrew

import "fmt"

// ParseError reports text that does not match any recognized color syntax.
// Input carries the original offending string; Want, when set, describes the
// accepted forms (used by the enum parsers to list the valid names).
type ParseError struct {
	Input string
	Want  string
}

func (e *ParseError) Error() string {
	if e.Want != "" {
		return fmt.Sprintf("cannot parse %q: want %s", e.Input, e.Want)
	}
	return fmt.Sprintf("cannot parse color string %q", e.Input)
}

// ValueError reports a numeric argument outside its valid domain.
// Arg names the offending parameter, Value holds what was supplied.
type ValueError struct {
	Arg    string
	Value  any
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s %s, got %v", e.Arg, e.Reason, e.Value)
}

// rangeError is shorthand for the common "must be lo-hi" ValueError.
func rangeError(arg string, value any, lo, hi int) *ValueError {
	return &ValueError{
		Arg:    arg,
		Value:  value,
		Reason: fmt.Sprintf("must be %d-%d", lo, hi),
	}
}
