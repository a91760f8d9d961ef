package transition

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shrinkBuilder struct {
	id int
}

func (*shrinkBuilder) AppearingParameters(size Size, dir Direction) Parameters {
	initial := VisualState{Frame: Rect{X: size.W / 4, Y: size.H / 4, W: size.W / 2, H: size.H / 2}, Alpha: 0.5}
	if dir == DirectionBack {
		initial.Alpha = 1
	}
	return Parameters{Initial: initial, Final: VisualState{Frame: FullFrame(size), Alpha: 1}}
}

func builtInKinds() map[string]Kind {
	return map[string]Kind{
		"identity":             Identity(),
		"overlay":              Overlay(),
		"modal":                Modal(),
		"slider":               SliderNav(true),
		"slider_no_edge":       SliderNav(false),
		"reverse_slider":       ReverseSliderNav(true),
		"reverse_slider_plain": ReverseSliderNav(false),
		"custom":               Custom(&shrinkBuilder{}),
	}
}

func TestDisappearingIsReversedOppositeAppearing(t *testing.T) {
	sizes := []Size{{W: 100, H: 200}, {W: 640, H: 480}, {W: 1, H: 1}, {W: 0, H: 0}, {W: 333, H: 77}}
	directions := []Direction{DirectionPush, DirectionBack}

	for name, kind := range builtInKinds() {
		t.Run(name, func(t *testing.T) {
			for _, size := range sizes {
				for _, dir := range directions {
					appearing := kind.Appearing(size, dir.Opposite())
					disappearing := kind.Disappearing(size, dir)

					assert.Equal(t, appearing.Final, disappearing.Initial, "size=%v dir=%v", size, dir)
					assert.Equal(t, appearing.Initial, disappearing.Final, "size=%v dir=%v", size, dir)
				}
			}
		})
	}
}

func TestAppearingFinalIsFullViewport(t *testing.T) {
	size := Size{W: 320, H: 240}
	want := VisualState{Frame: Rect{W: 320, H: 240}, Alpha: 1}

	for name, kind := range builtInKinds() {
		if kind.IsCustom() {
			continue
		}
		for _, dir := range []Direction{DirectionPush, DirectionBack} {
			assert.Equal(t, want, kind.Appearing(size, dir).Final, "%s %v", name, dir)
		}
	}
}

func TestModalPushStartsBelowViewport(t *testing.T) {
	params := Modal().Appearing(Size{W: 100, H: 200}, DirectionPush)

	assert.Equal(t, 200.0, params.Initial.Frame.Y)
	assert.Equal(t, 0.0, params.Final.Frame.Y)
	assert.Equal(t, 0.0, params.Initial.Frame.X)
}

func TestModalBackIsStatic(t *testing.T) {
	params := Modal().Appearing(Size{W: 100, H: 200}, DirectionBack)
	assert.True(t, params.IsStatic())

	// Dismissing a modal slides it back down.
	out := Modal().Disappearing(Size{W: 100, H: 200}, DirectionBack)
	assert.Equal(t, 0.0, out.Initial.Frame.Y)
	assert.Equal(t, 200.0, out.Final.Frame.Y)
}

func TestOverlayFadesOnlyOnPush(t *testing.T) {
	size := Size{W: 50, H: 50}

	push := Overlay().Appearing(size, DirectionPush)
	assert.Equal(t, 0.0, push.Initial.Alpha)
	assert.Equal(t, 1.0, push.Final.Alpha)
	assert.Equal(t, push.Initial.Frame, push.Final.Frame)

	back := Overlay().Appearing(size, DirectionBack)
	assert.True(t, back.IsStatic())
}

func TestIdentityIsStatic(t *testing.T) {
	for _, dir := range []Direction{DirectionPush, DirectionBack} {
		assert.True(t, Identity().Appearing(Size{W: 10, H: 20}, dir).IsStatic())
		assert.True(t, Identity().Disappearing(Size{W: 10, H: 20}, dir).IsStatic())
	}
}

func TestSliderOffsets(t *testing.T) {
	size := Size{W: 300, H: 100}

	tests := []struct {
		name  string
		kind  Kind
		dir   Direction
		wantX float64
	}{
		{"slider push enters from right", SliderNav(true), DirectionPush, 300},
		{"slider back enters from a third left", SliderNav(true), DirectionBack, -100},
		{"reverse push enters from a third left", ReverseSliderNav(false), DirectionPush, -100},
		{"reverse back enters from right", ReverseSliderNav(false), DirectionBack, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.kind.Appearing(size, tt.dir)
			assert.Equal(t, tt.wantX, params.Initial.Frame.X)
			assert.Equal(t, 0.0, params.Initial.Frame.Y)
			assert.Equal(t, 0.0, params.Final.Frame.X)
		})
	}
}

func TestResolveFieldIndependence(t *testing.T) {
	fallback := Resolved{Kind: SliderNav(true), Duration: 300 * time.Millisecond, Curve: CurveEaseOut}

	tests := []struct {
		name string
		req  Request
		want Resolved
	}{
		{"empty inherits everything", Request{}, fallback},
		{
			"kind only",
			Request{}.WithKind(Modal()),
			Resolved{Kind: Modal(), Duration: 300 * time.Millisecond, Curve: CurveEaseOut},
		},
		{
			"duration only",
			Request{}.WithDuration(0),
			Resolved{Kind: SliderNav(true), Duration: 0, Curve: CurveEaseOut},
		},
		{
			"curve only",
			Request{}.WithCurve(CurveLinear),
			Resolved{Kind: SliderNav(true), Duration: 300 * time.Millisecond, Curve: CurveLinear},
		},
		{
			"all fields",
			Request{}.WithKind(Overlay()).WithDuration(time.Second).WithCurve(CurveEaseIn),
			Resolved{Kind: Overlay(), Duration: time.Second, Curve: CurveEaseIn},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.req, fallback)
			assert.True(t, tt.want.Equal(got), "got %+v want %+v", got, tt.want)
		})
	}
}

func TestResolveRoundTripsThroughRequest(t *testing.T) {
	r := Resolved{Kind: ReverseSliderNav(true), Duration: 42 * time.Millisecond, Curve: CurveEaseIn}
	assert.True(t, r.Equal(Resolve(r.Request(), IdentityTransition())))
}

func TestKindEquality(t *testing.T) {
	a := &shrinkBuilder{id: 1}
	b := &shrinkBuilder{id: 2}

	assert.True(t, SliderNav(true).Equal(SliderNav(true)))
	assert.False(t, SliderNav(true).Equal(SliderNav(false)))
	assert.False(t, SliderNav(true).Equal(ReverseSliderNav(true)))
	assert.True(t, Modal().Equal(Modal()))
	assert.True(t, Custom(a).Equal(Custom(a)))
	assert.False(t, Custom(a).Equal(Custom(b)))
	assert.True(t, Kind{}.Equal(Identity()))
}

type offsetBuilder struct {
	offsets []float64
}

func (b offsetBuilder) AppearingParameters(size Size, dir Direction) Parameters {
	frame := FullFrame(size)
	return Parameters{Initial: VisualState{Frame: frame.Offset(b.offsets[0], 0), Alpha: 1}, Final: VisualState{Frame: frame, Alpha: 1}}
}

func TestKindEqualityWithValueBuilder(t *testing.T) {
	k := Custom(offsetBuilder{offsets: []float64{1}})

	assert.NotPanics(t, func() {
		assert.False(t, k.Equal(k))
		assert.False(t, k.Equal(Custom(&shrinkBuilder{})))
		assert.False(t, Resolved{Kind: k}.Equal(Resolved{Kind: k}))
	})
	assert.False(t, Custom(nil).Equal(k))
	assert.True(t, Custom(nil).Equal(Custom(nil)))
}

func TestEdgeGestureEnabled(t *testing.T) {
	assert.True(t, SliderNav(true).EdgeGestureEnabled())
	assert.True(t, ReverseSliderNav(true).EdgeGestureEnabled())
	assert.False(t, SliderNav(false).EdgeGestureEnabled())
	assert.False(t, Modal().EdgeGestureEnabled())
}

func TestParseKind(t *testing.T) {
	custom := &shrinkBuilder{}
	customs := map[string]Builder{"shrink": custom}

	k, err := ParseKind("Slider", true, customs)
	require.NoError(t, err)
	assert.True(t, k.Equal(SliderNav(true)))

	k, err = ParseKind("reverse-slider", false, nil)
	require.NoError(t, err)
	assert.True(t, k.Equal(ReverseSliderNav(false)))

	k, err = ParseKind("custom:shrink", false, customs)
	require.NoError(t, err)
	assert.True(t, k.Equal(Custom(custom)))

	_, err = ParseKind("custom:missing", false, customs)
	assert.True(t, errors.Is(err, ErrUnknownKind))

	_, err = ParseKind("spin", false, nil)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestCurveEase(t *testing.T) {
	for _, c := range []Curve{CurveLinear, CurveEaseIn, CurveEaseOut, CurveEaseInOut} {
		assert.Equal(t, 0.0, c.Ease(0), c.String())
		assert.Equal(t, 1.0, c.Ease(1), c.String())
		assert.Equal(t, 1.0, c.Ease(3), c.String())
		assert.InDelta(t, 0.5, c.Ease(0.5), 0.5, c.String())
	}
	assert.InDelta(t, 0.5, CurveEaseInOut.Ease(0.5), 1e-9)
	assert.Less(t, CurveEaseIn.Ease(0.25), CurveLinear.Ease(0.25))
	assert.Greater(t, CurveEaseOut.Ease(0.25), CurveLinear.Ease(0.25))
}

func TestParseCurve(t *testing.T) {
	c, err := ParseCurve("")
	require.NoError(t, err)
	assert.Equal(t, CurveEaseInOut, c)

	c, err = ParseCurve("ease-out")
	require.NoError(t, err)
	assert.Equal(t, CurveEaseOut, c)

	_, err = ParseCurve("bounce")
	assert.Error(t, err)
}

func TestLerp(t *testing.T) {
	from := VisualState{Frame: Rect{X: 0, Y: 100, W: 10, H: 10}, Alpha: 0}
	to := VisualState{Frame: Rect{X: 50, Y: 0, W: 10, H: 10}, Alpha: 1}

	mid := Lerp(from, to, 0.5)
	assert.Equal(t, VisualState{Frame: Rect{X: 25, Y: 50, W: 10, H: 10}, Alpha: 0.5}, mid)
	assert.Equal(t, from, Lerp(from, to, 0))
	assert.Equal(t, to, Lerp(from, to, 1))
}
