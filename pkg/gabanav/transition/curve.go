package transition

import (
	"fmt"
	"strings"
)

// Curve is the timing curve of a transition.
type Curve int

const (
	CurveLinear Curve = iota
	CurveEaseIn
	CurveEaseOut
	CurveEaseInOut
)

// Ease maps linear progress t in [0, 1] onto the curve.
// Values outside the range are clamped.
func (c Curve) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	switch c {
	case CurveEaseIn:
		return t * t * t
	case CurveEaseOut:
		u := 1 - t
		return 1 - u*u*u
	case CurveEaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	default:
		return t
	}
}

// String returns the configuration name of the curve.
func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveEaseIn:
		return "ease_in"
	case CurveEaseOut:
		return "ease_out"
	case CurveEaseInOut:
		return "ease_in_out"
	default:
		return "unknown"
	}
}

// ParseCurve parses a configuration name such as "ease_in_out".
// An empty name yields CurveEaseInOut.
func ParseCurve(name string) (Curve, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "_")) {
	case "", "ease_in_out":
		return CurveEaseInOut, nil
	case "linear":
		return CurveLinear, nil
	case "ease_in":
		return CurveEaseIn, nil
	case "ease_out":
		return CurveEaseOut, nil
	default:
		return CurveLinear, fmt.Errorf("unknown curve %q", name)
	}
}
