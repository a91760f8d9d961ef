package presentation

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/internal"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

// PresenceState is the lifecycle phase of a screen.
type PresenceState int

const (
	Hidden PresenceState = iota
	Appearing
	Visible
	Disappearing
)

func (s PresenceState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Appearing:
		return "appearing"
	case Visible:
		return "visible"
	case Disappearing:
		return "disappearing"
	default:
		return "unknown"
	}
}

// Surface is the view-hierarchy side of a screen.
type Surface interface {
	// Present inserts the screen with its content.
	Present(content any)
	// Remove takes the screen out of the hierarchy entirely.
	Remove()
	// SetInteractionEnabled toggles user input for the screen.
	SetInteractionEnabled(enabled bool)
}

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	Name     string                 // Used in log lines, typically the routed path
	Animator Animator               // Required
	Surface  Surface                // Required
	Viewport func() transition.Size // Required, read on every run
	Gestures GestureHandler         // Optional, receives pan gestures
	// EdgeWidth limits where an edge drag may start, measured from the
	// leading edge. Zero accepts a start anywhere.
	EdgeWidth float64
}

// Controller drives the presence state machine of one screen.
// Like the Navigator, it is meant to be used from the UI goroutine only;
// Interactive is the one accessor safe to call from elsewhere.
type Controller struct {
	opts   ControllerOptions
	logger *slog.Logger

	state      PresenceState
	transition transition.Resolved
	direction  transition.Direction

	running    Animation
	pending    func()
	generation uint64

	interactive atomic.Bool
	gesture     gestureTracker
}

// NewController creates a hidden controller.
func NewController(opts ControllerOptions) *Controller {
	return &Controller{
		opts:       opts,
		logger:     internal.GetInternalLogger(),
		transition: transition.IdentityTransition(),
	}
}

// Update shows the screen when content is non-nil and hides it otherwise,
// using t and dir for the animation. Calls that would not change whether the
// screen is shown are ignored, and so is hiding a screen that is already on
// its way out.
func (c *Controller) Update(content any, t transition.Resolved, dir transition.Direction) {
	show := content != nil
	if (show && c.state != Hidden) || (!show && (c.state == Hidden || c.state == Disappearing)) {
		return
	}

	c.interrupt()
	c.endGesture(true)

	c.transition = t
	c.direction = dir

	if show {
		c.appear(content)
	} else {
		c.disappear()
	}
}

func (c *Controller) appear(content any) {
	c.setState(Appearing)
	c.opts.Surface.Present(content)

	params := c.transition.Kind.Appearing(c.opts.Viewport(), c.direction)
	c.opts.Animator.Apply(params.Initial)

	c.run(params, func() {
		c.setState(Visible)
		c.setInteractive(true)
	})
}

func (c *Controller) disappear() {
	c.setState(Disappearing)
	c.setInteractive(false)

	params := c.transition.Kind.Disappearing(c.opts.Viewport(), c.direction)

	c.run(params, func() {
		c.opts.Surface.Remove()
		c.setState(Hidden)
	})
}

// run plays params and calls done once the run completes on its own.
func (c *Controller) run(params transition.Parameters, done func()) {
	c.generation++
	gen := c.generation
	finished := false

	complete := func() {
		if finished || gen != c.generation {
			return
		}
		finished = true
		c.running = nil
		c.pending = nil
		done()
	}

	if !c.transition.Animated() {
		c.opts.Animator.Apply(params.Final)
		complete()
		return
	}

	var anim Animation
	if params.IsStatic() {
		// Nothing moves, but callers still expect the full duration.
		c.opts.Animator.Apply(params.Final)
		anim = c.opts.Animator.Delay(c.transition.Duration, complete)
	} else {
		anim = c.opts.Animator.Animate(params.Initial, params.Final, c.transition.Duration, c.transition.Curve, complete)
	}

	if !finished {
		c.running = anim
		c.pending = done
	}
}

// interrupt fast-forwards the run in flight, dropping its completion.
func (c *Controller) interrupt() {
	if c.running == nil {
		return
	}
	running := c.running
	c.running = nil
	c.pending = nil
	c.generation++

	c.logger.Debug("Interrupting transition", "screen", c.opts.Name, "state", c.state.String())
	running.FastForward()
}

// Finish fast-forwards the run in flight and completes it, so a
// disappearing screen ends up hidden and an appearing one visible.
func (c *Controller) Finish() {
	if c.running == nil {
		return
	}
	done := c.pending
	c.interrupt()
	if done != nil {
		done()
	}
}

func (c *Controller) setState(s PresenceState) {
	c.logger.Debug("Presence changed", "screen", c.opts.Name, "from", c.state.String(), "to", s.String())
	c.state = s
}

func (c *Controller) setInteractive(enabled bool) {
	c.interactive.Store(enabled)
	c.opts.Surface.SetInteractionEnabled(enabled)
}

// State returns the presence state.
func (c *Controller) State() PresenceState {
	return c.state
}

// Interactive reports whether the screen accepts user input.
func (c *Controller) Interactive() bool {
	return c.interactive.Load()
}

// Transition returns the transition of the latest run.
func (c *Controller) Transition() transition.Resolved {
	return c.transition
}

// Animating reports whether a run is in flight.
func (c *Controller) Animating() bool {
	return c.running != nil
}

// Recognizer returns the pan gesture the screen currently accepts.
// Only visible screens accept gestures.
func (c *Controller) Recognizer() Recognizer {
	if c.state != Visible {
		return RecognizerNone
	}
	return RecognizerFor(c.transition.Kind)
}

// GestureState returns whether a pan gesture is being tracked.
func (c *Controller) GestureState() GestureState {
	return c.gesture.state
}

// GestureBegan starts tracking a pan gesture at p if the screen accepts one
// there. It reports whether tracking started.
func (c *Controller) GestureBegan(p Point) bool {
	r := c.Recognizer()
	if r == RecognizerNone || c.gesture.state == GestureTracking {
		return false
	}

	reversed := c.transition.Kind.IsReverseSliderNav()
	if r == RecognizerEdgeDrag && c.opts.EdgeWidth > 0 {
		if reversed {
			if p.X < c.opts.Viewport().W-c.opts.EdgeWidth {
				return false
			}
		} else if p.X > c.opts.EdgeWidth {
			return false
		}
	}

	c.gesture.begin(r, reversed, p)
	return true
}

// GestureMoved reports the delta from the start location to the handler.
func (c *Controller) GestureMoved(p Point) {
	if c.gesture.state != GestureTracking {
		return
	}

	update := c.gesture.move(p)
	if c.opts.Gestures != nil {
		c.opts.Gestures.GestureProgress(update)
	}
}

// GestureEnded finishes the gesture at p.
func (c *Controller) GestureEnded(p Point) {
	if c.gesture.state != GestureTracking {
		return
	}
	c.gesture.move(p)
	c.endGesture(false)
}

// GestureCancelled abandons the gesture.
func (c *Controller) GestureCancelled() {
	c.endGesture(true)
}

func (c *Controller) endGesture(cancelled bool) {
	if c.gesture.state != GestureTracking {
		return
	}

	last := c.gesture.reset()
	if c.opts.Gestures != nil {
		c.opts.Gestures.GestureEnded(last, cancelled)
	}
}
