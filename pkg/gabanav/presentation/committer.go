package presentation

import (
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/router"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

// BackGestureCommitter turns pan gestures into back navigations.
//
// Progress never touches the navigator. Only a gesture that ends, without
// being cancelled, at least MinPanDistance toward dismissal commits a
// GoBack(1).
type BackGestureCommitter struct {
	nav *router.Navigator

	// OnProgress, when set, receives the fraction of MinPanDistance covered
	// so far, clamped to [0, 1]. Hosts use it to scrub interactive feedback.
	OnProgress func(fraction float64)

	progress float64
}

// NewBackGestureCommitter creates a committer bound to nav.
func NewBackGestureCommitter(nav *router.Navigator) *BackGestureCommitter {
	return &BackGestureCommitter{nav: nav}
}

// GestureProgress records how far the gesture has travelled toward dismissal.
func (b *BackGestureCommitter) GestureProgress(update GestureUpdate) {
	b.progress = b.fraction(update.Dismiss)
	if b.OnProgress != nil {
		b.OnProgress(b.progress)
	}
}

// GestureEnded goes back one entry when the gesture was not cancelled and
// travelled at least MinPanDistance.
func (b *BackGestureCommitter) GestureEnded(update GestureUpdate, cancelled bool) {
	b.progress = 0
	if b.OnProgress != nil {
		b.OnProgress(0)
	}

	if cancelled || update.Dismiss < b.nav.MinPanDistance() {
		return
	}
	b.nav.GoBack(1, transition.Request{})
}

// Progress returns the last reported fraction.
func (b *BackGestureCommitter) Progress() float64 {
	return b.progress
}

func (b *BackGestureCommitter) fraction(dismiss float64) float64 {
	f := dismiss / b.nav.MinPanDistance()
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
