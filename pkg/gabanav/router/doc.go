// Package router provides path-based navigation with an in-memory history stack.
//
// A Navigator starts at an initial path and resolves every navigation request
// against the current path, the way a shell resolves cd arguments:
//
//	nav, _ := router.New(router.Options{
//	    DefaultTransition: &slide,
//	    MinPanDistance:    60,
//	})
//
//	nav.Navigate("news", transition.Request{}, false)            // /news
//	nav.Navigate("/settings/user", transition.Request{}, false)  // /settings/user
//	nav.Navigate("..", transition.Request{}, false)              // /settings
//	nav.GoBack(2, transition.Request{})                          // /news
//
// Navigating to a path that is already on the stack goes back to it rather
// than pushing a duplicate, so the history never holds the same path twice
// through forward navigation.
//
// # Transitions
//
// Every stack item records the transition used to arrive at it. Pushes
// resolve the requested transition against the navigator's default; backs
// resolve against the transition of the item being left, so going back
// replays the arrival animation in reverse unless explicitly overridden.
//
// # Observing
//
// Subscribe registers a callback that receives a State snapshot after each
// completed mutation. The snapshot carries the last NavigationAction, which
// the presentation layer uses to pick the transition and direction.
//
// # Routes
//
// Routes is a plain exact-path table from paths to content functions. It
// does not match patterns; callers with richer routing needs supply their
// own lookup.
package router
