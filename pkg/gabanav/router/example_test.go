package router_test

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/router"
	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

func newNavigator() *router.Navigator {
	slide := transition.Resolved{
		Kind:     transition.SliderNav(true),
		Duration: 300 * time.Millisecond,
		Curve:    transition.CurveEaseInOut,
	}

	nav, err := router.New(router.Options{
		DefaultTransition: &slide,
		MinPanDistance:    60,
	})
	if err != nil {
		panic(err)
	}
	return nav
}

// Example demonstrates relative and absolute navigation followed by a multi-step back.
func Example() {
	nav := newNavigator()

	nav.Navigate("news", transition.Request{}, false)
	fmt.Println(nav.Path(), nav.CurrentStackIndex())

	nav.Navigate("/settings/user", transition.Request{}, false)
	fmt.Println(nav.Path(), nav.CurrentStackIndex())

	nav.Navigate("..", transition.Request{}, false)
	fmt.Println(nav.Path(), nav.CurrentStackIndex())

	nav.GoBack(2, transition.Request{})
	fmt.Println(nav.Path(), nav.CurrentStackIndex(), nav.LastAction().Action)

	// Output:
	// /news 1
	// /settings/user 2
	// /settings 3
	// /news 1 back
}

// Example_subscribe demonstrates observing navigation actions.
func Example_subscribe() {
	nav := newNavigator()

	unsubscribe := nav.Subscribe(func(s router.State) {
		if s.LastAction == nil {
			fmt.Println("reset to", s.Path)
			return
		}
		a := s.LastAction
		fmt.Printf("%s %s -> %s (%s)\n", a.Action, a.PreviousPath, a.CurrentPath, a.Transition.Kind)
	})

	nav.Navigate("library", transition.Request{}, false)
	nav.Navigate("game", transition.Request{}.WithKind(transition.Modal()), false)
	nav.Navigate("/library", transition.Request{}, false)
	nav.Clear()

	unsubscribe()
	nav.Navigate("ignored", transition.Request{}, false)

	// Output:
	// push / -> /library (slider(edge=true))
	// push /library -> /library/game (modal)
	// back /library/game -> /library (modal)
	// reset to /
}
