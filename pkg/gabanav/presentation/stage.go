package presentation

import (
	"log/slog"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/internal"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/router"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

// Screen is what a ScreenFactory hands back for a newly mounted path.
type Screen struct {
	Animator Animator
	Surface  Surface
}

// ScreenFactory builds the animator and surface for a path the first time
// it is mounted.
type ScreenFactory func(path string) Screen

// StageOptions configures a Stage.
type StageOptions struct {
	Navigator *router.Navigator
	Routes    *router.Routes
	Factory   ScreenFactory
	Viewport  func() transition.Size
	Gestures  GestureHandler // Defaults to a BackGestureCommitter on Navigator
	EdgeWidth float64
}

// Stage keeps one Controller per mounted path and feeds every navigator
// change to them: the current path gets its routed content, every other
// screen gets nil and animates out.
type Stage struct {
	opts        StageOptions
	screens     map[string]*Controller
	current     string
	unsubscribe func()
	logger      *slog.Logger
}

// NewStage mounts the navigator's current path and subscribes to changes.
func NewStage(opts StageOptions) *Stage {
	if opts.Gestures == nil {
		opts.Gestures = NewBackGestureCommitter(opts.Navigator)
	}

	s := &Stage{
		opts:    opts,
		screens: make(map[string]*Controller),
		logger:  internal.GetInternalLogger(),
	}
	s.sync(opts.Navigator.State())
	s.unsubscribe = opts.Navigator.Subscribe(s.sync)
	return s
}

// Close stops following the navigator.
func (s *Stage) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Stage) sync(state router.State) {
	t := transition.IdentityTransition()
	dir := transition.DirectionPush
	if state.LastAction != nil {
		t = state.LastAction.Transition
		dir = state.LastAction.Action
	}

	s.prune()

	content, err := s.opts.Routes.Content(state.Path)
	if err != nil {
		s.logger.Error("Failed to build screen content", "path", state.Path, "error", err)
	} else if content == nil {
		s.logger.Warn("Route returned no content", "path", state.Path)
	}

	s.current = state.Path
	c := s.controller(state.Path)
	if c.State() == Disappearing {
		// Coming back to a screen that is still leaving.
		c.Finish()
	}
	c.Update(content, t, dir)

	for path, other := range s.screens {
		if path != state.Path {
			other.Update(nil, t, dir)
		}
	}
}

// prune forgets screens that finished hiding.
func (s *Stage) prune() {
	for path, c := range s.screens {
		if c.State() == Hidden && !c.Animating() {
			delete(s.screens, path)
		}
	}
}

func (s *Stage) controller(path string) *Controller {
	if c, ok := s.screens[path]; ok {
		return c
	}

	screen := s.opts.Factory(path)
	c := NewController(ControllerOptions{
		Name:      path,
		Animator:  screen.Animator,
		Surface:   screen.Surface,
		Viewport:  s.opts.Viewport,
		Gestures:  s.opts.Gestures,
		EdgeWidth: s.opts.EdgeWidth,
	})
	s.screens[path] = c
	return c
}

// Current returns the controller for the navigator's current path.
func (s *Stage) Current() *Controller {
	return s.screens[s.current]
}

// Screen returns the controller mounted for path, if any.
func (s *Stage) Screen(path string) (*Controller, bool) {
	c, ok := s.screens[path]
	return c, ok
}

// Mounted returns the number of mounted screens.
func (s *Stage) Mounted() int {
	return len(s.screens)
}

// GestureBegan forwards a gesture start to the current screen and reports
// whether it started tracking.
func (s *Stage) GestureBegan(p Point) bool {
	if c := s.Current(); c != nil {
		return c.GestureBegan(p)
	}
	return false
}

// GestureMoved forwards a gesture move to the current screen.
func (s *Stage) GestureMoved(p Point) {
	if c := s.Current(); c != nil {
		c.GestureMoved(p)
	}
}

// GestureEnded forwards a gesture end to the current screen.
func (s *Stage) GestureEnded(p Point) {
	if c := s.Current(); c != nil {
		c.GestureEnded(p)
	}
}

// GestureCancelled abandons the current screen's gesture.
func (s *Stage) GestureCancelled() {
	if c := s.Current(); c != nil {
		c.GestureCancelled()
	}
}
