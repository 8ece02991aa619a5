package swingnav

import "github.com/nicksnyder/go-i18n/v2/i18n"

// Hook is a side-effecting callback run around a navigation transition.
// It receives the target path, the argument groups of the navigation (nil
// for the zero-argument form), and the freshly constructed screen. Hooks
// run synchronously in registration order and must not be assumed to
// retain the screen beyond their own invocation.
//
// Hooks have no error return. A panicking hook propagates to the caller
// of Navigate and aborts the remaining transition steps, so treat hooks
// as must-not-fail code or recover inside the hook itself.
type Hook func(path string, args Args, screen Screen)

// Titler is the subset of a frame that can retitle itself.
// sdlframe.Frame implements it.
type Titler interface {
	SetTitle(title string)
}

// TitleHook returns a Hook that localizes the message "screen.<path>.title"
// through loc and applies it to t. Paths without a matching message leave
// the title untouched. Register with AfterEach so the title only changes
// once the transition has completed.
func TitleHook(t Titler, loc *i18n.Localizer) Hook {
	return func(path string, _ Args, _ Screen) {
		title, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "screen." + path + ".title",
		})
		if err != nil {
			return
		}
		t.SetTitle(title)
	}
}
