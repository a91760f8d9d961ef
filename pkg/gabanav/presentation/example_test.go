package presentation_test

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/presentation"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

type printSurface struct{ name string }

func (s printSurface) Present(content any) { fmt.Printf("%s: present %v\n", s.name, content) }
func (s printSurface) Remove()             { fmt.Printf("%s: remove\n", s.name) }
func (s printSurface) SetInteractionEnabled(enabled bool) {
	fmt.Printf("%s: interactive=%t\n", s.name, enabled)
}

type printTarget struct{}

func (printTarget) SetVisualState(s transition.VisualState) {
	fmt.Printf("frame y=%.0f alpha=%.1f\n", s.Frame.Y, s.Alpha)
}

// Example demonstrates a modal screen sliding up, driven frame by frame.
func Example() {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	animator := presentation.NewFrameAnimator(printTarget{}, clock)
	screen := presentation.NewController(presentation.ControllerOptions{
		Name:     "/settings",
		Animator: animator,
		Surface:  printSurface{name: "settings"},
		Viewport: func() transition.Size { return transition.Size{W: 100, H: 200} },
	})

	modal := transition.Resolved{Kind: transition.Modal(), Duration: 200 * time.Millisecond, Curve: transition.CurveLinear}
	screen.Update("settings content", modal, transition.DirectionPush)

	for screen.State() != presentation.Visible {
		now = now.Add(100 * time.Millisecond)
		animator.Step()
	}
	fmt.Println(screen.State())

	// Output:
	// settings: present settings content
	// frame y=200 alpha=1.0
	// frame y=200 alpha=1.0
	// frame y=100 alpha=1.0
	// frame y=0 alpha=1.0
	// settings: interactive=true
	// visible
}
