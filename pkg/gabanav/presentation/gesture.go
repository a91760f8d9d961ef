package presentation

import "github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"

// Point is a pointer location in viewport coordinates.
type Point struct {
	X float64
	Y float64
}

// Recognizer is the kind of pan gesture a screen accepts.
type Recognizer int

const (
	RecognizerNone     Recognizer = iota
	RecognizerEdgeDrag            // horizontal drag starting at a screen edge
	RecognizerVerticalDrag
)

func (r Recognizer) String() string {
	switch r {
	case RecognizerEdgeDrag:
		return "edge_drag"
	case RecognizerVerticalDrag:
		return "vertical_drag"
	default:
		return "none"
	}
}

// RecognizerFor returns the recognizer a screen exposes for the transition
// it arrived with.
func RecognizerFor(kind transition.Kind) Recognizer {
	switch {
	case kind.EdgeGestureEnabled():
		return RecognizerEdgeDrag
	case kind.IsModal():
		return RecognizerVerticalDrag
	default:
		return RecognizerNone
	}
}

// GestureUpdate describes a tracked pan gesture.
type GestureUpdate struct {
	Recognizer Recognizer
	// Delta is the signed distance from the start location along the
	// recognizer's axis: x for edge drags, y for vertical drags.
	Delta float64
	// Dismiss is Delta oriented so that positive values move the screen
	// toward its dismissed position.
	Dismiss float64
}

// GestureHandler interprets tracked gestures. Deciding whether a gesture
// commits a back navigation is entirely up to the handler.
type GestureHandler interface {
	GestureProgress(update GestureUpdate)
	GestureEnded(update GestureUpdate, cancelled bool)
}

// GestureState is the tracking state of a pan gesture.
type GestureState int

const (
	GestureIdle GestureState = iota
	GestureTracking
)

type gestureTracker struct {
	state      GestureState
	recognizer Recognizer
	reversed   bool
	start      Point
	last       GestureUpdate
}

func (g *gestureTracker) begin(r Recognizer, reversed bool, at Point) {
	g.state = GestureTracking
	g.recognizer = r
	g.reversed = reversed
	g.start = at
	g.last = GestureUpdate{Recognizer: r}
}

func (g *gestureTracker) move(at Point) GestureUpdate {
	var delta float64
	if g.recognizer == RecognizerVerticalDrag {
		delta = at.Y - g.start.Y
	} else {
		delta = at.X - g.start.X
	}

	dismiss := delta
	if g.reversed {
		dismiss = -delta
	}

	g.last = GestureUpdate{Recognizer: g.recognizer, Delta: delta, Dismiss: dismiss}
	return g.last
}

func (g *gestureTracker) reset() GestureUpdate {
	last := g.last
	*g = gestureTracker{}
	return last
}
