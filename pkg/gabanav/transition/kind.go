package transition

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Direction is the direction of a navigation.
type Direction int

const (
	DirectionPush Direction = iota
	DirectionBack
)

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == DirectionPush {
		return DirectionBack
	}
	return DirectionPush
}

func (d Direction) String() string {
	if d == DirectionBack {
		return "back"
	}
	return "push"
}

// Builder computes the parameters for a screen that is appearing.
// Only the appearing side is authored; see Kind.Disappearing.
//
// Builders passed to Custom are compared by identity, so implementations
// should be pointer types.
type Builder interface {
	AppearingParameters(size Size, dir Direction) Parameters
}

type kindTag int

const (
	tagIdentity kindTag = iota
	tagModal
	tagOverlay
	tagSliderNav
	tagReverseSliderNav
	tagCustom
)

// Kind selects how a transition looks. The zero value is Identity.
type Kind struct {
	tag         kindTag
	edgeGesture bool
	custom      Builder
}

// Identity is a transition with no visual change.
func Identity() Kind { return Kind{tag: tagIdentity} }

// Modal slides the screen up from below the viewport.
func Modal() Kind { return Kind{tag: tagModal} }

// Overlay fades the screen in over the previous one.
func Overlay() Kind { return Kind{tag: tagOverlay} }

// SliderNav slides the screen in from the right.
// edgeGesture enables the interactive edge-drag back gesture.
func SliderNav(edgeGesture bool) Kind { return Kind{tag: tagSliderNav, edgeGesture: edgeGesture} }

// ReverseSliderNav is SliderNav with push and back swapped.
func ReverseSliderNav(edgeGesture bool) Kind {
	return Kind{tag: tagReverseSliderNav, edgeGesture: edgeGesture}
}

// Custom wraps an externally supplied builder.
func Custom(b Builder) Kind { return Kind{tag: tagCustom, custom: b} }

// IsIdentity reports whether k is the Identity kind.
func (k Kind) IsIdentity() bool { return k.tag == tagIdentity }

// IsModal reports whether k is the Modal kind.
func (k Kind) IsModal() bool { return k.tag == tagModal }

// IsOverlay reports whether k is the Overlay kind.
func (k Kind) IsOverlay() bool { return k.tag == tagOverlay }

// IsSliderNav reports whether k is a SliderNav kind.
func (k Kind) IsSliderNav() bool { return k.tag == tagSliderNav }

// IsReverseSliderNav reports whether k is a ReverseSliderNav kind.
func (k Kind) IsReverseSliderNav() bool { return k.tag == tagReverseSliderNav }

// IsCustom reports whether k wraps a caller-supplied Builder.
func (k Kind) IsCustom() bool { return k.tag == tagCustom }

// EdgeGestureEnabled reports whether a slider kind exposes the edge-drag gesture.
// It is always false for other kinds.
func (k Kind) EdgeGestureEnabled() bool {
	return (k.tag == tagSliderNav || k.tag == tagReverseSliderNav) && k.edgeGesture
}

// Builder returns the builder backing a Custom kind, or nil.
func (k Kind) Builder() Builder {
	return k.custom
}

// Equal compares kinds structurally. Custom kinds compare builder identity,
// so Custom builders should be pointers.
func (k Kind) Equal(other Kind) bool {
	if k.tag != other.tag {
		return false
	}
	switch k.tag {
	case tagSliderNav, tagReverseSliderNav:
		return k.edgeGesture == other.edgeGesture
	case tagCustom:
		return sameBuilder(k.custom, other.custom)
	default:
		return true
	}
}

// sameBuilder compares builders by identity. Builders whose dynamic type
// cannot be compared, such as structs holding slices, are never equal.
func sameBuilder(a, b Builder) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func (k Kind) String() string {
	switch k.tag {
	case tagIdentity:
		return "identity"
	case tagModal:
		return "modal"
	case tagOverlay:
		return "overlay"
	case tagSliderNav:
		return fmt.Sprintf("slider(edge=%t)", k.edgeGesture)
	case tagReverseSliderNav:
		return fmt.Sprintf("reverse_slider(edge=%t)", k.edgeGesture)
	case tagCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ErrUnknownKind is returned by ParseKind for names it cannot resolve.
var ErrUnknownKind = errors.New("unknown transition kind")

// ParseKind resolves a configuration name into a Kind.
// Names of the form "custom:<name>" are looked up in customs.
func ParseKind(name string, edgeGesture bool, customs map[string]Builder) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if customName, ok := strings.CutPrefix(normalized, "custom:"); ok {
		b, found := customs[customName]
		if !found || b == nil {
			return Kind{}, fmt.Errorf("%w: no custom builder registered as %q", ErrUnknownKind, customName)
		}
		return Custom(b), nil
	}

	switch strings.ReplaceAll(normalized, "-", "_") {
	case "identity", "none":
		return Identity(), nil
	case "modal":
		return Modal(), nil
	case "overlay", "fade":
		return Overlay(), nil
	case "slider", "slider_nav":
		return SliderNav(edgeGesture), nil
	case "reverse_slider", "reverse_slider_nav":
		return ReverseSliderNav(edgeGesture), nil
	default:
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}
