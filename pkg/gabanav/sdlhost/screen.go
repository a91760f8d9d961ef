package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	gabanav "github.com/BrandonKowalski/gabanav/pkg/gabanav"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/presentation"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

// screen is the SDL side of one mounted path. It is both the controller's
// Surface and the FrameAnimator's Target.
type screen struct {
	host     *Host
	path     string
	animator *presentation.FrameAnimator

	content     Content
	visual      transition.VisualState
	presented   bool
	interactive bool
	dirty       bool
}

func newScreen(host *Host, path string) *screen {
	s := &screen{host: host, path: path}
	s.animator = presentation.NewFrameAnimator(s, host.clock)
	return s
}

func (s *screen) Present(content any) {
	c, ok := content.(Content)
	if !ok {
		s.host.logger.Error("Cannot draw routed content",
			"path", s.path,
			"type", fmt.Sprintf("%T", content),
			"error", gabanav.ErrUnrenderableContent)
	}
	s.content = c
	s.presented = true
	s.dirty = true
}

// Remove releases the texture but leaves the screen mounted; the stage may
// present into it again. Host.prune drops it once the stage forgets the path.
func (s *screen) Remove() {
	s.presented = false
	s.content = nil
	s.host.textures.Remove(s.path)
}

func (s *screen) SetInteractionEnabled(enabled bool) {
	s.interactive = enabled
}

func (s *screen) SetVisualState(state transition.VisualState) {
	s.visual = state
}

// texture returns the rendered content, drawing it again when the content
// changed or the cached texture was evicted.
func (s *screen) texture(renderer *sdl.Renderer, width, height int32) (*sdl.Texture, error) {
	if !s.dirty {
		if tex := s.host.textures.Get(s.path); tex != nil {
			return tex, nil
		}
	}

	tex, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_TARGET, width, height)
	if err != nil {
		return nil, fmt.Errorf("create texture for %s: %w", s.path, err)
	}

	previous := renderer.GetRenderTarget()
	if err := renderer.SetRenderTarget(tex); err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("target texture for %s: %w", s.path, err)
	}
	renderer.SetDrawColor(0, 0, 0, 0)
	renderer.Clear()
	drawErr := s.content.Draw(renderer, width, height)
	renderer.SetRenderTarget(previous)

	if drawErr != nil {
		tex.Destroy()
		return nil, fmt.Errorf("draw %s: %w", s.path, drawErr)
	}

	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	s.host.textures.Set(s.path, tex)
	s.dirty = false
	return tex, nil
}

func (s *screen) render(renderer *sdl.Renderer, width, height int32) error {
	if !s.presented || s.content == nil || s.visual.Alpha <= 0 {
		return nil
	}

	tex, err := s.texture(renderer, width, height)
	if err != nil {
		return err
	}

	tex.SetAlphaMod(alphaMod(s.visual.Alpha))
	return renderer.Copy(tex, nil, toSDLRect(s.visual.Frame))
}

func alphaMod(alpha float64) uint8 {
	switch {
	case alpha <= 0:
		return 0
	case alpha >= 1:
		return 255
	default:
		return uint8(alpha*255 + 0.5)
	}
}

func toSDLRect(r transition.Rect) *sdl.Rect {
	return &sdl.Rect{
		X: int32(r.X),
		Y: int32(r.Y),
		W: int32(r.W),
		H: int32(r.H),
	}
}
