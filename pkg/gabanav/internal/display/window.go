package display

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/constants"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/internal"
)

// Window wraps the SDL window and renderer the host draws screens into.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

func openWindow(title string, winOpts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
	}

	width, height := displayMode.W, displayMode.H
	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, 1024)
		height = envDimension(constants.WindowHeightEnvVar, 768)
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.toSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window dimension; using default", "env", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) Close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Clear fills the frame with the background color.
func (w *Window) Clear(color sdl.Color) {
	w.Renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	w.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
