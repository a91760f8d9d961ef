package router

import (
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/internal"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

// RootPath is the initial path used when Options.InitialPath is empty.
const RootPath = "/"

var (
	// ErrMissingDefault is returned by New when no default transition is configured.
	ErrMissingDefault = errors.New("router: default transition is required")

	// ErrInvalidPanDistance is returned by New when MinPanDistance is not positive.
	ErrInvalidPanDistance = errors.New("router: minimum pan distance must be positive")
)

// Options configures a Navigator.
type Options struct {
	InitialPath       string               // Root of the history, "/" when empty
	DefaultTransition *transition.Resolved // Used for pushes without an explicit transition
	MinPanDistance    float64              // Distance a back gesture must travel to commit
}

// NavigationAction is a snapshot of one completed navigation.
type NavigationAction struct {
	CurrentPath        string
	PreviousPath       string
	PreviousStackIndex int
	Action             transition.Direction
	Transition         transition.Resolved
}

// State is what subscribers see after every mutation.
type State struct {
	Path              string
	CanGoBack         bool
	CurrentStackIndex int
	LastAction        *NavigationAction
}

// Navigator owns the history stack and turns navigation requests into
// stack mutations. It is not safe for concurrent use; all calls are
// expected on the UI goroutine.
type Navigator struct {
	initialPath       string
	defaultTransition transition.Resolved
	minPanDistance    float64

	stack      *Stack
	lastAction *NavigationAction

	subscribers []subscriber
	nextID      uint32
	logger      *slog.Logger
}

type subscriber struct {
	id uint32
	fn func(State)
}

// New creates a Navigator positioned at the initial path.
func New(opts Options) (*Navigator, error) {
	if opts.DefaultTransition == nil {
		return nil, ErrMissingDefault
	}
	if opts.MinPanDistance <= 0 {
		return nil, ErrInvalidPanDistance
	}

	initial := RootPath
	if opts.InitialPath != "" {
		initial = CleanPath(opts.InitialPath)
	}

	return &Navigator{
		initialPath:       initial,
		defaultTransition: *opts.DefaultTransition,
		minPanDistance:    opts.MinPanDistance,
		stack:             NewStack(rootItem(initial)),
		logger:            internal.GetInternalLogger(),
	}, nil
}

func rootItem(path string) HistoryStackItem {
	return HistoryStackItem{Path: path, Transition: transition.IdentityTransition()}
}

// Navigate moves to path, resolved against the current path.
//
// Navigating to the current path does nothing. Navigating to a path already
// on the stack goes back to it instead of pushing a duplicate. Otherwise the
// path is pushed, or replaces the top item when replace is true. A replace
// while only the initial item is on the stack pushes instead.
func (n *Navigator) Navigate(path string, req transition.Request, replace bool) {
	current := n.Path()
	target := ResolvePath(current, path)

	if target == current {
		n.logger.Warn("Ignoring navigation to the current path", "path", target)
		return
	}

	if i := n.stack.IndexOf(target); i >= 0 {
		n.logger.Debug("Target already in history, going back", "path", target, "index", i)
		n.GoBack(n.CurrentStackIndex()-i, req)
		return
	}

	resolved := transition.Resolve(req, n.defaultTransition)
	item := HistoryStackItem{Path: target, Transition: resolved}
	previousIndex := n.CurrentStackIndex()

	// The root item is only ever rewritten by Clear.
	if replace && n.stack.Len() > 1 {
		n.stack.ReplaceTop(item)
	} else {
		n.stack.Push(item)
	}

	n.emit(&NavigationAction{
		CurrentPath:        target,
		PreviousPath:       current,
		PreviousStackIndex: previousIndex,
		Action:             transition.DirectionPush,
		Transition:         resolved,
	})
}

// GoBack pops total items off the stack. total is clamped so the initial
// item always remains. The transition is resolved against the one recorded
// on the item being left, so a back replays how that page was entered.
func (n *Navigator) GoBack(total int, req transition.Request) {
	if !n.CanGoBack() {
		n.logger.Debug("Cannot go back", "path", n.Path(), "depth", n.stack.Len())
		return
	}
	if total < 1 {
		return
	}

	leaving := n.stack.Peek()
	previousIndex := n.CurrentStackIndex()
	resolved := transition.Resolve(req, leaving.Transition)

	if n.stack.PopN(total) == 0 {
		return
	}

	n.emit(&NavigationAction{
		CurrentPath:        n.Path(),
		PreviousPath:       leaving.Path,
		PreviousStackIndex: previousIndex,
		Action:             transition.DirectionBack,
		Transition:         resolved,
	})
}

// Clear resets the history to the initial path. It is a hard reset, not a
// navigation, so the last action becomes nil.
func (n *Navigator) Clear() {
	n.stack.Reset(rootItem(n.initialPath))
	n.lastAction = nil

	n.logger.Debug("History cleared", "path", n.initialPath)
	n.notify()
}

func (n *Navigator) emit(action *NavigationAction) {
	n.lastAction = action

	n.logger.Debug("Navigated",
		"action", action.Action.String(),
		"from", action.PreviousPath,
		"to", action.CurrentPath,
		"transition", action.Transition.Kind.String(),
		"depth", n.stack.Len())

	n.notify()
}

// Path returns the path on top of the stack.
func (n *Navigator) Path() string {
	return n.stack.Peek().Path
}

// CanGoBack reports whether more than one history item lies off the initial
// path. Repeat visits to the initial path do not count.
func (n *Navigator) CanGoBack() bool {
	offRoot := n.stack.CountWhere(func(item HistoryStackItem) bool {
		return item.Path != n.initialPath
	})
	return offRoot > 1
}

// CurrentStackIndex returns the index of the top item, counted from 0.
func (n *Navigator) CurrentStackIndex() int {
	return n.stack.Len() - 1
}

// LastAction returns the most recent navigation, or nil.
func (n *Navigator) LastAction() *NavigationAction {
	return n.lastAction
}

// Stack returns a copy of the history, oldest first.
func (n *Navigator) Stack() []HistoryStackItem {
	return n.stack.Items()
}

// CurrentTransition returns the transition recorded on the top item.
func (n *Navigator) CurrentTransition() transition.Resolved {
	return n.stack.Peek().Transition
}

// InitialPath returns the path of the root item.
func (n *Navigator) InitialPath() string { return n.initialPath }

// DefaultTransition returns the transition used for pushes without one.
func (n *Navigator) DefaultTransition() transition.Resolved { return n.defaultTransition }

// MinPanDistance returns how far a back gesture must travel to commit.
func (n *Navigator) MinPanDistance() float64 { return n.minPanDistance }

// State returns a snapshot of the navigator.
func (n *Navigator) State() State {
	return State{
		Path:              n.Path(),
		CanGoBack:         n.CanGoBack(),
		CurrentStackIndex: n.CurrentStackIndex(),
		LastAction:        n.lastAction,
	}
}

// Subscribe registers fn to be called after every completed mutation.
// The returned function removes the subscription.
func (n *Navigator) Subscribe(fn func(State)) (unsubscribe func()) {
	n.nextID++
	id := n.nextID
	n.subscribers = append(n.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range n.subscribers {
			if s.id == id {
				n.subscribers = append(n.subscribers[:i:i], n.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (n *Navigator) notify() {
	state := n.State()
	subs := append([]subscriber(nil), n.subscribers...)
	for _, s := range subs {
		s.fn(state)
	}
}
