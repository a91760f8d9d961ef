// Package sdlhost renders a gabanav stage into an SDL2 window and feeds it
// keyboard, mouse, finger and evdev touch input.
package sdlhost

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	gabanav "github.com/BrandonKowalski/gabanav/pkg/gabanav"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/internal"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/internal/display"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/internal/touch"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/presentation"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/router"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

// Host owns the window and runs the frame loop.
type Host struct {
	window   *display.Window
	nav      *router.Navigator
	stage    *presentation.Stage
	textures *display.TextureCache
	touch    *touch.Reader

	screens    map[string]*screen
	onKey      func(sdl.Keycode) bool
	background sdl.Color
	clock      func() time.Time
	tracking   bool
	logger     *slog.Logger
}

// New opens the window and mounts the initial path of a navigator built
// from opts. Call gabanav.Init first so logging is configured.
func New(opts gabanav.Options, routes *router.Routes) (*Host, error) {
	if routes == nil || routes.Len() == 0 {
		return nil, gabanav.ErrNoRoutes
	}

	nav, err := opts.NewNavigator()
	if err != nil {
		return nil, err
	}

	var winOpts display.WindowOptions
	if opts.Fullscreen {
		winOpts = display.WindowOptions{Borderless: true, Fullscreen: true}
	}

	window, err := display.Init(opts.WindowTitle, winOpts)
	if err != nil {
		return nil, gabanav.NewInfrastructureError("open_window", err)
	}

	h := &Host{
		window:     window,
		nav:        nav,
		textures:   display.NewTextureCache(),
		screens:    make(map[string]*screen),
		background: sdl.Color{R: 0, G: 0, B: 0, A: 255},
		clock:      time.Now,
		logger:     internal.GetInternalLogger(),
	}

	if opts.TouchDevice != "" {
		reader, err := touch.Open(opts.TouchDevice)
		if err != nil {
			h.logger.Warn("Touch device unavailable; using SDL input only", "device", opts.TouchDevice, "error", err)
		} else {
			h.touch = reader
		}
	}

	h.stage = presentation.NewStage(presentation.StageOptions{
		Navigator: nav,
		Routes:    routes,
		Factory:   h.mount,
		Viewport:  h.viewport,
		EdgeWidth: opts.EdgeWidth,
	})

	return h, nil
}

// Navigator returns the navigator driving the host.
func (h *Host) Navigator() *router.Navigator {
	return h.nav
}

// SetBackground sets the color drawn behind all screens.
func (h *Host) SetBackground(color sdl.Color) {
	h.background = color
}

// OnKey registers a handler for key presses. Returning true consumes the
// key; otherwise Escape and Backspace go back.
func (h *Host) OnKey(fn func(key sdl.Keycode) bool) {
	h.onKey = fn
}

// Close releases the touch device, textures and window.
func (h *Host) Close() {
	h.stage.Close()
	if h.touch != nil {
		if err := h.touch.Close(); err != nil {
			h.logger.Warn("Failed to close touch device", "error", err)
		}
	}
	h.textures.Destroy()
	display.Cleanup(h.window)
}

func (h *Host) mount(path string) presentation.Screen {
	s := newScreen(h, path)
	h.screens[path] = s
	return presentation.Screen{Animator: s.animator, Surface: s}
}

func (h *Host) viewport() transition.Size {
	return transition.Size{
		W: float64(h.window.GetWidth()),
		H: float64(h.window.GetHeight()),
	}
}

// Run drives the frame loop until the window is closed or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, quit := event.(*sdl.QuitEvent); quit {
				return nil
			}
			h.handleEvent(event)
		}
		h.drainTouch()
		h.step()

		h.render()
	}
}

// step advances every screen's animation and unmounts screens the stage
// no longer tracks.
func (h *Host) step() {
	for _, s := range h.screens {
		s.animator.Step()
	}
	h.prune()
}

func (h *Host) prune() {
	for path, s := range h.screens {
		if s.presented {
			continue
		}
		if _, mounted := h.stage.Screen(path); !mounted {
			delete(h.screens, path)
		}
	}
}

func (h *Host) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return
		}
		if h.onKey != nil && h.onKey(e.Keysym.Sym) {
			return
		}
		switch e.Keysym.Sym {
		case sdl.K_ESCAPE, sdl.K_BACKSPACE:
			if h.nav.CanGoBack() {
				h.nav.GoBack(1, transition.Request{})
			}
		}

	case *sdl.MouseButtonEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT {
			return
		}
		p := presentation.Point{X: float64(e.X), Y: float64(e.Y)}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			h.began(p)
		} else {
			h.ended(p)
		}

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID {
			return
		}
		h.moved(presentation.Point{X: float64(e.X), Y: float64(e.Y)})

	case *sdl.TouchFingerEvent:
		p := h.denormalize(float64(e.X), float64(e.Y))
		switch e.Type {
		case sdl.FINGERDOWN:
			h.began(p)
		case sdl.FINGERMOTION:
			h.moved(p)
		case sdl.FINGERUP:
			h.ended(p)
		}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_FOCUS_LOST && h.tracking {
			h.tracking = false
			h.stage.GestureCancelled()
		}
	}
}

func (h *Host) drainTouch() {
	if h.touch == nil {
		return
	}
	for {
		select {
		case ev, ok := <-h.touch.Events():
			if !ok {
				h.touch = nil
				return
			}
			p := h.denormalize(ev.X, ev.Y)
			switch ev.Phase {
			case touch.PhaseBegan:
				h.began(p)
			case touch.PhaseMoved:
				h.moved(p)
			case touch.PhaseEnded:
				h.ended(p)
			}
		default:
			return
		}
	}
}

func (h *Host) denormalize(x, y float64) presentation.Point {
	size := h.viewport()
	return presentation.Point{X: x * size.W, Y: y * size.H}
}

func (h *Host) began(p presentation.Point) {
	h.tracking = h.stage.GestureBegan(p)
}

func (h *Host) moved(p presentation.Point) {
	if h.tracking {
		h.stage.GestureMoved(p)
	}
}

func (h *Host) ended(p presentation.Point) {
	if h.tracking {
		h.tracking = false
		h.stage.GestureEnded(p)
	}
}

func (h *Host) render() {
	h.window.Clear(h.background)

	width, height := h.window.GetWidth(), h.window.GetHeight()
	for _, s := range h.drawOrder() {
		if err := s.render(h.window.Renderer, width, height); err != nil {
			h.logger.Error("Failed to render screen", "path", s.path, "error", err)
		}
	}

	h.window.Present()
}

// drawOrder sorts mounted screens bottom to top.
func (h *Host) drawOrder() []*screen {
	stack := h.nav.Stack()
	ordered := make([]*screen, 0, len(h.screens))
	for _, s := range h.screens {
		ordered = append(ordered, s)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := depth(stack, ordered[i].path), depth(stack, ordered[j].path)
		if di != dj {
			return di < dj
		}
		return ordered[i].path < ordered[j].path
	})
	return ordered
}

// depth is the position of path in the history. A path no longer in the
// history is a screen on its way out after going back, and stays on top.
func depth(stack []router.HistoryStackItem, path string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Path == path {
			return i
		}
	}
	return len(stack)
}
