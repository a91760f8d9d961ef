// Package transition resolves screen transitions and computes their visual endpoints.
//
// A transition is described in two forms. A Request is partial: any of its
// fields may be left unset, and Resolve fills the gaps from a fallback. A
// Resolved transition has every field set and is what gets recorded on the
// history stack.
//
// Each Kind knows how to build the parameters for a screen that is appearing.
// The parameters for a disappearing screen are never authored by hand; they are
// the appearing parameters for the opposite direction, run backwards:
//
//	disappearing(size, dir) = reverse(appearing(size, dir.Opposite()))
//
// # Kinds
//
//	transition.Identity()              // no visual change
//	transition.Overlay()               // fade in on push
//	transition.Modal()                 // slide up from the bottom on push
//	transition.SliderNav(true)         // slide in from the right, edge gesture enabled
//	transition.ReverseSliderNav(false) // slide in from the left
//	transition.Custom(myBuilder)       // externally supplied Builder
package transition
