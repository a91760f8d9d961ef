// Package display owns the SDL window, renderer and per-screen textures used
// by the gabanav host.
package display

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/constants"
)

// Init starts SDL video and opens the host window.
func Init(title string, winOpts WindowOptions) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true, Fullscreen: true}
		}
	}

	window, err := openWindow(title, winOpts)
	if err != nil {
		sdl.Quit()
		return nil, err
	}
	return window, nil
}

// Cleanup closes the window and shuts SDL down.
func Cleanup(window *Window) {
	if window != nil {
		window.Close()
	}
	sdl.Quit()
}
