package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// Content is what routes return for the SDL host: something that can draw
// itself into a screen-sized render target.
type Content interface {
	Draw(renderer *sdl.Renderer, width, height int32) error
}

// DrawFunc adapts a function to Content.
type DrawFunc func(renderer *sdl.Renderer, width, height int32) error

// Draw calls f.
func (f DrawFunc) Draw(renderer *sdl.Renderer, width, height int32) error {
	return f(renderer, width, height)
}

// SolidColor fills the whole screen with one color.
type SolidColor sdl.Color

// Draw fills the target with c.
func (c SolidColor) Draw(renderer *sdl.Renderer, width, height int32) error {
	if err := renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return renderer.FillRect(&sdl.Rect{W: width, H: height})
}
