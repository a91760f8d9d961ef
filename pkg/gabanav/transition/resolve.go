package transition

import "time"

// Request is a partial transition. Unset fields inherit from a fallback.
type Request struct {
	Kind     *Kind
	Duration *time.Duration
	Curve    *Curve
}

// Resolved is a transition with every field set.
type Resolved struct {
	Kind     Kind
	Duration time.Duration
	Curve    Curve
}

// Equal compares resolved transitions structurally.
func (r Resolved) Equal(other Resolved) bool {
	return r.Kind.Equal(other.Kind) && r.Duration == other.Duration && r.Curve == other.Curve
}

// Animated reports whether running the transition takes any time.
func (r Resolved) Animated() bool {
	return r.Duration > 0 && !r.Kind.IsIdentity()
}

// IdentityTransition is the transition recorded on the root history item.
func IdentityTransition() Resolved {
	return Resolved{Kind: Identity(), Duration: 0, Curve: CurveLinear}
}

// WithKind returns a copy of the request with the kind set.
func (r Request) WithKind(k Kind) Request {
	r.Kind = &k
	return r
}

// WithDuration returns a copy of the request with the duration set.
func (r Request) WithDuration(d time.Duration) Request {
	r.Duration = &d
	return r
}

// WithCurve returns a copy of the request with the curve set.
func (r Request) WithCurve(c Curve) Request {
	r.Curve = &c
	return r
}

// IsEmpty reports whether the request overrides nothing.
func (r Request) IsEmpty() bool {
	return r.Kind == nil && r.Duration == nil && r.Curve == nil
}

// Resolve fills the unset fields of req from fallback.
func Resolve(req Request, fallback Resolved) Resolved {
	out := fallback
	if req.Kind != nil {
		out.Kind = *req.Kind
	}
	if req.Duration != nil {
		out.Duration = *req.Duration
	}
	if req.Curve != nil {
		out.Curve = *req.Curve
	}
	return out
}

// Request converts a resolved transition into a request that overrides every field.
func (r Resolved) Request() Request {
	return Request{}.WithKind(r.Kind).WithDuration(r.Duration).WithCurve(r.Curve)
}
