package presentation

import (
	"time"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

// recordingAnimator records every call and lets tests complete runs by hand.
type recordingAnimator struct {
	applied []transition.VisualState
	runs    []*recordedRun
}

type recordedRun struct {
	from, to      transition.VisualState
	duration      time.Duration
	curve         transition.Curve
	delay         bool
	done          func()
	fastForwarded bool
}

func (r *recordedRun) FastForward() {
	r.fastForwarded = true
}

func (r *recordedRun) complete() {
	if !r.fastForwarded {
		r.done()
	}
}

func (a *recordingAnimator) Apply(state transition.VisualState) {
	a.applied = append(a.applied, state)
}

func (a *recordingAnimator) Animate(from, to transition.VisualState, d time.Duration, c transition.Curve, done func()) Animation {
	run := &recordedRun{from: from, to: to, duration: d, curve: c, done: done}
	a.runs = append(a.runs, run)
	return run
}

func (a *recordingAnimator) Delay(d time.Duration, done func()) Animation {
	run := &recordedRun{duration: d, delay: true, done: done}
	a.runs = append(a.runs, run)
	return run
}

func (a *recordingAnimator) last() *recordedRun {
	if len(a.runs) == 0 {
		return nil
	}
	return a.runs[len(a.runs)-1]
}

type recordingSurface struct {
	presented   []any
	removed     int
	interactive bool
	toggles     []bool
}

func (s *recordingSurface) Present(content any) { s.presented = append(s.presented, content) }
func (s *recordingSurface) Remove()             { s.removed++ }
func (s *recordingSurface) SetInteractionEnabled(enabled bool) {
	s.interactive = enabled
	s.toggles = append(s.toggles, enabled)
}

type recordingHandler struct {
	progress  []GestureUpdate
	ended     []GestureUpdate
	cancelled []bool
}

func (h *recordingHandler) GestureProgress(u GestureUpdate) { h.progress = append(h.progress, u) }
func (h *recordingHandler) GestureEnded(u GestureUpdate, cancelled bool) {
	h.ended = append(h.ended, u)
	h.cancelled = append(h.cancelled, cancelled)
}

type recordingTarget struct {
	states []transition.VisualState
}

func (t *recordingTarget) SetVisualState(s transition.VisualState) {
	t.states = append(t.states, s)
}

func (t *recordingTarget) last() transition.VisualState {
	return t.states[len(t.states)-1]
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func viewport(w, h float64) func() transition.Size {
	return func() transition.Size { return transition.Size{W: w, H: h} }
}
