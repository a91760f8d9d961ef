package presentation

import (
	"time"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

// Animation is an interpolation in flight.
type Animation interface {
	// FastForward stops the run and jumps to its end state.
	// The completion callback of a fast-forwarded run is never called.
	FastForward()
}

// Animator applies visual states to one screen.
type Animator interface {
	// Apply sets the visual state immediately.
	Apply(state transition.VisualState)

	// Animate interpolates from one state to another and calls done when
	// the run completes on its own.
	Animate(from, to transition.VisualState, duration time.Duration, curve transition.Curve, done func()) Animation

	// Delay waits for duration without any visual change, then calls done.
	Delay(duration time.Duration, done func()) Animation
}

// Target receives the interpolated states produced by a FrameAnimator.
type Target interface {
	SetVisualState(state transition.VisualState)
}

// FrameAnimator is an Animator advanced by explicit Step calls from the
// frame loop. Completion callbacks run inside Step, on the caller's goroutine.
type FrameAnimator struct {
	target  Target
	clock   func() time.Time
	current *frameRun
}

// NewFrameAnimator creates an animator writing to target.
// A nil clock uses time.Now.
func NewFrameAnimator(target Target, clock func() time.Time) *FrameAnimator {
	if clock == nil {
		clock = time.Now
	}
	return &FrameAnimator{target: target, clock: clock}
}

type frameRun struct {
	animator *FrameAnimator
	from     transition.VisualState
	to       transition.VisualState
	start    time.Time
	duration time.Duration
	curve    transition.Curve
	static   bool
	done     func()
	finished bool
}

// Apply writes state to the target right away.
func (f *FrameAnimator) Apply(state transition.VisualState) {
	f.target.SetVisualState(state)
}

// Animate starts interpolating from from to to, fast-forwarding any run
// already in flight. done is called from Step once duration has elapsed.
func (f *FrameAnimator) Animate(from, to transition.VisualState, duration time.Duration, curve transition.Curve, done func()) Animation {
	return f.begin(&frameRun{from: from, to: to, duration: duration, curve: curve, done: done})
}

// Delay starts a run that leaves the target untouched and calls done from
// Step once duration has elapsed.
func (f *FrameAnimator) Delay(duration time.Duration, done func()) Animation {
	return f.begin(&frameRun{duration: duration, static: true, done: done})
}

func (f *FrameAnimator) begin(run *frameRun) Animation {
	if f.current != nil {
		f.current.FastForward()
	}

	run.animator = f
	run.start = f.clock()
	f.current = run

	if !run.static {
		f.target.SetVisualState(run.from)
	}
	return run
}

// Running reports whether a run is in flight.
func (f *FrameAnimator) Running() bool {
	return f.current != nil
}

// Step advances the run in flight to the current clock time.
func (f *FrameAnimator) Step() {
	run := f.current
	if run == nil {
		return
	}

	elapsed := f.clock().Sub(run.start)
	progress := 1.0
	if run.duration > 0 {
		progress = float64(elapsed) / float64(run.duration)
	}

	if progress < 1 {
		if !run.static {
			f.target.SetVisualState(transition.Lerp(run.from, run.to, run.curve.Ease(progress)))
		}
		return
	}

	run.finish()
	if run.done != nil {
		run.done()
	}
}

func (r *frameRun) finish() {
	r.finished = true
	if !r.static {
		r.animator.target.SetVisualState(r.to)
	}
	if r.animator.current == r {
		r.animator.current = nil
	}
}

func (r *frameRun) FastForward() {
	if r.finished {
		return
	}
	r.finish()
}
