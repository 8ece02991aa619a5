package swingnav

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ggggg/SwingNavigator/pkg/swingnav/internal"
)

// Options configures a Navigator. The zero value is usable: routes can be
// added later with AddRoute and the frame set later with SetFrame.
type Options struct {
	Frame  Frame              // Display surface; may be set later via SetFrame
	Routes map[string]Factory // Initial route table; copied on construction
	Logger *slog.Logger       // Defaults to the package logger
}

// Navigator maps path names to screen factories and swaps the active
// screen inside a single application frame. It records visited paths for
// back navigation and runs registered hooks before and after each
// transition.
//
// A Navigator is created once at application startup and lives for the
// process lifetime. All operations are synchronous and must be issued
// from a single logical thread of control, matching the single-threaded
// contract of the underlying GUI toolkit; concurrent callers must
// serialize externally.
type Navigator struct {
	frame      Frame
	routes     map[string]Factory
	history    *historyStack
	beforeEach []Hook
	afterEach  []Hook
	logger     *slog.Logger
}

// New creates a Navigator from opts.
func New(opts Options) *Navigator {
	routes := make(map[string]Factory, len(opts.Routes))
	for path, factory := range opts.Routes {
		routes[path] = factory
	}

	logger := opts.Logger
	if logger == nil {
		logger = internal.GetLogger()
	}

	return &Navigator{
		frame:   opts.Frame,
		routes:  routes,
		history: newHistoryStack(),
		logger:  logger,
	}
}

// AddRoute registers factory under path so it can be navigated to.
// Registering the same path again overwrites the earlier factory.
func (n *Navigator) AddRoute(path string, factory Factory) error {
	if path == "" {
		return errors.New("swingnav: route path must not be empty")
	}
	if factory == nil {
		return errors.New("swingnav: route factory must not be nil")
	}
	n.routes[path] = factory
	n.logger.Debug("route registered", "path", path)
	return nil
}

// Resolve returns the factory registered under path.
// Fails with ErrRouteNotFound when the path is absent.
func (n *Navigator) Resolve(path string) (Factory, error) {
	factory, ok := n.routes[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRouteNotFound, path)
	}
	return factory, nil
}

// Navigate changes the currently displayed screen to a fresh instance of
// the screen registered under path.
//
// It fails with ErrRouteNotFound for an unregistered path, with
// ErrSurfaceNotConfigured when no frame has been set, and with a
// ConstructionError when the factory fails. On any failure before the
// transition begins, history and the frame are left untouched. A
// successful call runs the full transition: pre-hooks, content swap,
// sizing, history push, the screen's started signal, then post-hooks.
func (n *Navigator) Navigate(path string) error {
	return n.navigate(path, nil)
}

// NavigateWith is Navigate with argument groups: args is handed to the
// route's factory and to every hook run during the transition. Routes
// registered through NoArgs reject args with a ConstructionError.
func (n *Navigator) NavigateWith(path string, args Args) error {
	return n.navigate(path, args)
}

func (n *Navigator) navigate(path string, args Args) error {
	factory, err := n.Resolve(path)
	if err != nil {
		return err
	}
	if n.frame == nil {
		return ErrSurfaceNotConfigured
	}

	screen, err := factory(args)
	if err != nil {
		return &ConstructionError{Path: path, Err: err}
	}
	if screen == nil {
		return &ConstructionError{Path: path, Err: errors.New("factory returned nil screen")}
	}

	n.logger.Debug("navigating", "path", path, "history_depth", n.history.Len())
	n.move(path, args, screen)
	return nil
}

// move performs the transition sequence shared by both navigate forms.
// The step order is fixed; a panicking hook aborts the remaining steps.
func (n *Navigator) move(path string, args Args, screen Screen) {
	for _, hook := range n.beforeEach {
		hook(path, args, screen)
	}

	panel := screen.Panel()
	n.frame.SetContent(panel)

	// Size the new panel to the frame's content area; fall back to the
	// frame's own size when there is no content to measure. The content
	// is hidden while it is resized and shown again afterwards.
	var size Size
	if contentSize, ok := n.frame.ContentSize(); ok {
		n.frame.SetContentVisible(false)
		size = contentSize
	} else {
		size = n.frame.Size()
	}
	panel.SetPreferredSize(size)

	n.frame.SetContent(panel)
	n.frame.SetContentVisible(true)

	n.history.Push(path)
	screen.OnStarted()

	for _, hook := range n.afterEach {
		hook(path, args, screen)
	}
}

// Back returns to the previous screen as a zero-argument navigation.
// The current path is popped and discarded, the previous path is popped
// and re-navigated to; the re-navigation pushes it back, so history
// shrinks by exactly one entry. Fails with ErrHistoryUnderflow when
// fewer than two entries exist.
func (n *Navigator) Back() error {
	if n.history.Len() < 2 {
		return ErrHistoryUnderflow
	}
	n.history.Pop() // the screen being left
	prev, _ := n.history.Pop()
	return n.Navigate(prev)
}

// CanGoBack reports whether Back has a previous screen to return to.
func (n *Navigator) CanGoBack() bool {
	return n.history.Len() >= 2
}

// BeforeEach registers a hook that runs before each transition, after the
// new screen has been constructed. Hooks run in registration order; there
// is no removal.
func (n *Navigator) BeforeEach(hook Hook) {
	n.beforeEach = append(n.beforeEach, hook)
}

// AfterEach registers a hook that runs after each completed transition,
// in registration order.
func (n *Navigator) AfterEach(hook Hook) {
	n.afterEach = append(n.afterEach, hook)
}

// History returns a snapshot of the visited paths, oldest first. Mutating
// the returned slice does not affect the navigator.
func (n *Navigator) History() []string {
	return n.history.Snapshot()
}

// ClearHistory discards all recorded history. The displayed screen is
// unaffected; Back fails with ErrHistoryUnderflow until two further
// navigations occur.
func (n *Navigator) ClearHistory() {
	n.history.Clear()
}

// Frame returns the display surface, or nil if none has been set.
func (n *Navigator) Frame() Frame {
	return n.frame
}

// SetFrame sets the display surface. A navigator may be constructed
// before its frame exists; navigation before SetFrame fails with
// ErrSurfaceNotConfigured.
func (n *Navigator) SetFrame(frame Frame) {
	n.frame = frame
}
