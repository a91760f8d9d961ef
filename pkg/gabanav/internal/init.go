// Package internal contains the shared infrastructure for gabanav: logging
// and the plumbing used by the SDL host. Types and functions in this package
// are not part of the public API.
package internal
