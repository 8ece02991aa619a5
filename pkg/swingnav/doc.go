// Package swingnav provides screen navigation for single-window desktop
// applications: a flat table mapping path names to screen factories, a
// navigator that swaps the active screen inside one frame, linear history
// for back navigation, and hooks that run around each transition.
//
// It is not a routing framework: there is no URL parsing, no query
// parameters, and no nested routes. One string resolves to one screen.
//
// # Basic Usage
//
//	// Screens implement swingnav.Screen.
//	type homeScreen struct{ panel *appPanel }
//
//	func (s *homeScreen) Panel() swingnav.Panel { return s.panel }
//	func (s *homeScreen) OnStarted()            { s.panel.Refresh() }
//
//	nav := swingnav.New(swingnav.Options{Frame: frame})
//	nav.AddRoute("home", swingnav.NoArgs(func() swingnav.Screen {
//	    return newHomeScreen()
//	}))
//	nav.AddRoute("detail", func(args swingnav.Args) (swingnav.Screen, error) {
//	    return newDetailScreen(args)
//	})
//
//	nav.Navigate("home")
//	nav.NavigateWith("detail", swingnav.Args{{itemID}})
//	nav.Back() // home again, as a fresh instance
//
// # Transition Order
//
// A successful navigation runs a fixed sequence: pre-hooks in
// registration order, content swap, sizing of the new panel (measured
// from the frame's content, falling back to the frame itself), history
// push, the screen's OnStarted signal, then post-hooks. There is no
// pending state between steps; each call runs to completion or returns
// an error with the frame and history in whatever state the completed
// steps left them.
//
// # Hooks
//
//	nav.BeforeEach(func(path string, args swingnav.Args, s swingnav.Screen) {
//	    swingnav.Logger().Info("leaving for", "path", path)
//	})
//	nav.AfterEach(swingnav.TitleHook(frame, localizer))
//
// # Threading
//
// Everything is synchronous and single-threaded by contract: issue all
// navigation calls from the one thread that owns the GUI toolkit. The
// navigator performs no locking.
package swingnav
