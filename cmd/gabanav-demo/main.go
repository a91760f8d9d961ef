// Command gabanav-demo opens a window with a few colored screens.
// Keys 1-3 push screens with different transitions, 0 clears the history,
// and Escape or an edge swipe goes back. An optional argument names a TOML
// options file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	gabanav "github.com/BrandonKowalski/gabanav/pkg/gabanav"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/router"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/sdlhost"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	opts := gabanav.DefaultOptions()
	opts.WindowTitle = "gabanav demo"
	if len(os.Args) > 1 {
		loaded, err := gabanav.LoadOptions(os.Args[1], nil)
		if err != nil {
			return err
		}
		opts = loaded
	}

	gabanav.Init(opts)
	defer gabanav.Close()
	logger := gabanav.GetLogger()

	routes := router.NewRoutes().
		Register("/", color(40, 44, 52)).
		Register("/library", color(97, 175, 239)).
		Register("/settings", color(152, 195, 121)).
		Register("/about", color(224, 108, 117)).
		NotFound(color(90, 90, 90))

	host, err := sdlhost.New(opts, routes)
	if err != nil {
		return err
	}
	defer host.Close()

	nav := host.Navigator()
	nav.Subscribe(func(state router.State) {
		logger.Info("Navigated", "path", state.Path, "index", state.CurrentStackIndex, "can_go_back", state.CanGoBack)
	})

	host.OnKey(func(key sdl.Keycode) bool {
		switch key {
		case sdl.K_1:
			nav.Navigate("/library", transition.Request{}, false)
		case sdl.K_2:
			nav.Navigate("/settings", transition.Request{}.WithKind(transition.Modal()), false)
		case sdl.K_3:
			nav.Navigate("/about", transition.Request{}.
				WithKind(transition.Overlay()).
				WithDuration(500*time.Millisecond).
				WithCurve(transition.CurveEaseOut), false)
		case sdl.K_0:
			nav.Clear()
		default:
			return false
		}
		return true
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return host.Run(ctx)
}

func color(r, g, b uint8) router.ContentFunc {
	return func(string) (any, error) {
		return sdlhost.SolidColor{R: r, G: g, B: b, A: 255}, nil
	}
}
