package geom

import "fmt"

// Code is the outcome of a geometry predicate. Each predicate documents the
// subset of codes it can return.
type Code int

const (
	// Success means a unique, well-defined result was produced.
	Success Code = iota
	// Fail means the input was degenerate and no result was produced.
	Fail
	// Overlapping means the closest set is not unique; a representative
	// result was still produced.
	Overlapping
	Intersecting
	NotIntersecting
	CompletelyInside
	CompletelyOutside
)

var codeNames = [...]string{
	Success:           "success",
	Fail:              "fail",
	Overlapping:       "overlapping",
	Intersecting:      "intersecting",
	NotIntersecting:   "not-intersecting",
	CompletelyInside:  "completely-inside",
	CompletelyOutside: "completely-outside",
}

// String returns the kebab-case name of the code.
func (c Code) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(b []byte) error {
	code, err := ParseCode(string(b))
	if err != nil {
		return err
	}
	*c = code
	return nil
}

// ParseCode is the inverse of Code.String.
func ParseCode(s string) (Code, error) {
	for i, name := range codeNames {
		if name == s {
			return Code(i), nil
		}
	}
	return Fail, fmt.Errorf("unknown geometry code %q", s)
}

// OK reports whether the predicate produced a usable result.
func (c Code) OK() bool {
	return c != Fail
}
