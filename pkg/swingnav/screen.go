package swingnav

import "errors"

// Size is a width and height in pixels.
type Size struct {
	W int32
	H int32
}

// Panel is the visual surface a Screen contributes to the frame.
// Concrete panel types are defined by the embedding application or by a
// frame adapter such as sdlframe.
type Panel interface {
	// Size returns the panel's current size.
	Size() Size
	// SetPreferredSize sets the size the panel should lay itself out at.
	SetPreferredSize(size Size)
}

// Screen is a single navigable unit of displayable content.
// A fresh instance is constructed on every navigation; instances are never
// reused or cached. Once replaced by a later navigation the instance is
// eligible for disposal.
type Screen interface {
	// Panel returns the screen's visual surface.
	Panel() Panel
	// OnStarted is called once the screen is displayed and its path has
	// been pushed onto history.
	OnStarted()
}

// Args is an ordered list of argument groups passed through a navigation:
// to the screen's factory and to every hook run during the transition.
type Args [][]any

// Factory builds a fresh Screen for a navigation. args is nil for the
// zero-argument Navigate form. A returned error is wrapped in a
// ConstructionError and aborts the navigation before any transition step.
type Factory func(args Args) (Screen, error)

// NoArgs adapts a plain screen constructor into a Factory for screens that
// take no arguments. The returned factory rejects argument-group lists, so
// NavigateWith on a NoArgs route fails with a ConstructionError the same
// way a missing constructor shape would.
func NoArgs(construct func() Screen) Factory {
	return func(args Args) (Screen, error) {
		if len(args) > 0 {
			return nil, errors.New("screen does not accept argument groups")
		}
		return construct(), nil
	}
}

// Frame is the single application-owned region where exactly one screen's
// panel is shown at a time. The Navigator is the frame's sole mutator
// during a transition; implementations are not expected to be safe for
// concurrent mutation.
type Frame interface {
	// Content returns the currently displayed panel, or nil if none.
	Content() Panel
	// SetContent replaces the displayed panel.
	SetContent(panel Panel)
	// SetContentVisible toggles visibility of the displayed content.
	SetContentVisible(visible bool)
	// ContentSize returns the size of the content area.
	// Returns false when the frame has no content.
	ContentSize() (Size, bool)
	// Size returns the frame's own size.
	Size() Size
}
