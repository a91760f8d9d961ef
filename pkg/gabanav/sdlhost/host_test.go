package sdlhost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/internal"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/internal/display"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/presentation"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/router"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestHost builds a host without a window: the stage gets a fixed
// viewport and nothing is rendered.
func newTestHost(t *testing.T) (*Host, *testClock) {
	t.Helper()

	def := transition.Resolved{
		Kind:     transition.SliderNav(true),
		Duration: 300 * time.Millisecond,
		Curve:    transition.CurveEaseInOut,
	}
	nav, err := router.New(router.Options{DefaultTransition: &def, MinPanDistance: 60})
	require.NoError(t, err)

	clock := &testClock{now: time.Unix(0, 0)}
	h := &Host{
		nav:      nav,
		textures: display.NewTextureCache(),
		screens:  make(map[string]*screen),
		clock:    clock.Now,
		logger:   internal.GetInternalLogger(),
	}

	routes := router.NewRoutes().NotFound(func(string) (any, error) {
		return SolidColor{R: 255, A: 255}, nil
	})
	h.stage = presentation.NewStage(presentation.StageOptions{
		Navigator: nav,
		Routes:    routes,
		Factory:   h.mount,
		Viewport: func() transition.Size {
			return transition.Size{W: 320, H: 240}
		},
	})
	t.Cleanup(h.stage.Close)

	return h, clock
}

func settle(h *Host, clock *testClock) {
	clock.Advance(time.Second)
	h.step()
}

func TestDepthOrdersLeavingScreenOnTop(t *testing.T) {
	stack := []router.HistoryStackItem{{Path: "/"}, {Path: "/a"}, {Path: "/b"}}

	assert.Equal(t, 0, depth(stack, "/"))
	assert.Equal(t, 2, depth(stack, "/b"))
	assert.Equal(t, 3, depth(stack, "/gone"))
}

func TestAlphaMod(t *testing.T) {
	assert.Equal(t, uint8(0), alphaMod(-0.5))
	assert.Equal(t, uint8(0), alphaMod(0))
	assert.Equal(t, uint8(128), alphaMod(0.5))
	assert.Equal(t, uint8(255), alphaMod(1))
	assert.Equal(t, uint8(255), alphaMod(2))
}

func TestToSDLRect(t *testing.T) {
	r := toSDLRect(transition.Rect{X: -106.7, Y: 10, W: 320, H: 240})
	assert.Equal(t, int32(-106), r.X)
	assert.Equal(t, int32(10), r.Y)
	assert.Equal(t, int32(320), r.W)
	assert.Equal(t, int32(240), r.H)
}

func TestScreenTracksSurfaceCalls(t *testing.T) {
	h := &Host{screens: make(map[string]*screen)}
	s := newScreen(h, "/a")
	h.screens["/a"] = s

	s.Present(SolidColor{R: 255, A: 255})
	s.SetInteractionEnabled(true)
	s.SetVisualState(transition.VisualState{Alpha: 0.25})

	assert.True(t, s.presented)
	assert.True(t, s.dirty)
	assert.True(t, s.interactive)
	assert.Equal(t, 0.25, s.visual.Alpha)
}

func TestBackDuringExitKeepsScreenMounted(t *testing.T) {
	h, clock := newTestHost(t)
	nav := h.Navigator()

	nav.Navigate("/a", transition.Request{}, false)
	settle(h, clock)
	a := h.screens["/a"]
	require.NotNil(t, a)

	nav.Navigate("/b", transition.Request{}, false)
	clock.Advance(100 * time.Millisecond)
	h.step()

	c, ok := h.stage.Screen("/a")
	require.True(t, ok)
	require.Equal(t, presentation.Disappearing, c.State())

	nav.GoBack(1, transition.Request{})

	assert.Same(t, a, h.screens["/a"])
	assert.True(t, a.presented)
	assert.True(t, a.dirty)

	settle(h, clock)

	assert.Same(t, a, h.screens["/a"])
	assert.True(t, a.presented)
	assert.Equal(t, presentation.Visible, h.stage.Current().State())
	assert.True(t, h.stage.Current().Interactive())
	assert.Equal(t, 1.0, a.visual.Alpha)
	assert.Equal(t, 0.0, a.visual.Frame.X)
	assert.False(t, h.screens["/b"].presented)
}

func TestPruneDropsScreensTheStageForgot(t *testing.T) {
	h, clock := newTestHost(t)
	nav := h.Navigator()

	nav.Navigate("/a", transition.Request{}, false)
	settle(h, clock)
	nav.Navigate("/b", transition.Request{}, false)
	settle(h, clock)

	// "/a" is hidden but the stage only forgets it on the next
	// navigation.
	assert.Contains(t, h.screens, "/a")
	assert.False(t, h.screens["/a"].presented)

	nav.Navigate("/c", transition.Request{}, false)
	settle(h, clock)

	assert.NotContains(t, h.screens, "/")
	assert.NotContains(t, h.screens, "/a")
	assert.True(t, h.screens["/c"].presented)
}
