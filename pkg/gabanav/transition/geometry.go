package transition

// Size is a viewport size in pixels.
type Size struct {
	W float64
	H float64
}

// Rect is a frame in viewport coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// FullFrame returns the rectangle covering the whole viewport.
func FullFrame(size Size) Rect {
	return Rect{X: 0, Y: 0, W: size.W, H: size.H}
}

// Offset returns r translated by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// VisualState is everything the animator needs to place a screen.
type VisualState struct {
	Frame Rect
	Alpha float64
}

// Parameters are the endpoints of one transition run.
type Parameters struct {
	Initial VisualState
	Final   VisualState
}

// Reverse swaps the endpoints.
func (p Parameters) Reverse() Parameters {
	return Parameters{Initial: p.Final, Final: p.Initial}
}

// IsStatic reports whether running the parameters produces no visible change.
func (p Parameters) IsStatic() bool {
	return p.Initial == p.Final
}

// Lerp interpolates between two visual states. t is not clamped.
func Lerp(from, to VisualState, t float64) VisualState {
	mix := func(a, b float64) float64 { return a + (b-a)*t }
	return VisualState{
		Frame: Rect{
			X: mix(from.Frame.X, to.Frame.X),
			Y: mix(from.Frame.Y, to.Frame.Y),
			W: mix(from.Frame.W, to.Frame.W),
			H: mix(from.Frame.H, to.Frame.H),
		},
		Alpha: mix(from.Alpha, to.Alpha),
	}
}
