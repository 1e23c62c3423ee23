package interp

import (
	"fmt"
	"strings"
)

// Kind selects an interpolation method.
type Kind int

const (
	// SLinear is a first-order spline; identical to Linear. It is the default.
	SLinear Kind = iota
	Linear
	Nearest
	Previous
	Next
	Cubic
	Natural
	Akima
	PCHIP
)

var kindNames = map[Kind]string{
	SLinear:  "slinear",
	Linear:   "linear",
	Nearest:  "nearest",
	Previous: "previous",
	Next:     "next",
	Cubic:    "cubic",
	Natural:  "natural",
	Akima:    "akima",
	PCHIP:    "pchip",
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns all supported kinds in declaration order.
func Kinds() []Kind {
	return []Kind{SLinear, Linear, Nearest, Previous, Next, Cubic, Natural, Akima, PCHIP}
}

// ParseKind maps a name to a Kind. "zero" is accepted for Previous.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "zero" {
		return Previous, nil
	}
	for k, s := range kindNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// minPoints returns the smallest sample count k can fit.
func (k Kind) minPoints() int {
	switch k {
	case Nearest, Previous, Next:
		return 1
	case Natural, PCHIP, Akima:
		return 3
	case Cubic:
		return 4
	default:
		return 2
	}
}
