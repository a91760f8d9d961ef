package router

import "fmt"

// ContentFunc produces the content for a routed path.
// A nil content with a nil error means the path renders nothing.
type ContentFunc func(path string) (content any, err error)

// Routes maps exact paths to content functions.
// It does no pattern matching: a path either has a registered function or
// it doesn't.
type Routes struct {
	routes   map[string]ContentFunc
	fallback ContentFunc
}

// NewRoutes creates an empty route table.
func NewRoutes() *Routes {
	return &Routes{
		routes: make(map[string]ContentFunc),
	}
}

// Register adds a route. The path is cleaned before it is stored, so
// "settings/" and "/settings" are the same route.
func (r *Routes) Register(path string, fn ContentFunc) *Routes {
	r.routes[CleanPath(path)] = fn
	return r
}

// NotFound sets the function used for paths without a route.
func (r *Routes) NotFound(fn ContentFunc) *Routes {
	r.fallback = fn
	return r
}

// Match returns the content function for path.
func (r *Routes) Match(path string) (ContentFunc, bool) {
	if fn, ok := r.routes[CleanPath(path)]; ok {
		return fn, true
	}
	if r.fallback != nil {
		return r.fallback, true
	}
	return nil, false
}

// Content runs the content function registered for path.
func (r *Routes) Content(path string) (any, error) {
	fn, ok := r.Match(path)
	if !ok {
		return nil, fmt.Errorf("router: no route for %q", path)
	}

	content, err := fn(path)
	if err != nil {
		return nil, fmt.Errorf("router: route %q error: %w", path, err)
	}
	return content, nil
}

// Len returns the number of registered routes, not counting NotFound.
func (r *Routes) Len() int {
	return len(r.routes)
}
