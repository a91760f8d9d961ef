// Package presentation animates screens in and out in response to navigation.
//
// Each mounted screen has a Controller that moves through four presence
// states:
//
//	Hidden -> Appearing -> Visible -> Disappearing -> Hidden
//
// Update drives the machine from two inputs: whether the screen has content
// to show, and the transition and direction of the latest navigation. The
// controller computes the visual endpoints with the transition package,
// applies the initial state immediately and hands the run to an Animator.
// Starting a new run on a screen fast-forwards the one in flight.
//
// Screens that arrived with an edge-gesture slider or a modal also track a
// pan gesture and report its signed delta to a GestureHandler. The handler
// decides whether the gesture turns into a back navigation; the controller
// never touches the Navigator itself.
//
// Stage ties it together: it subscribes to a router.Navigator and keeps one
// Controller per mounted path.
package presentation
