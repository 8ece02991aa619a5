package swingnav_test

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ggggg/SwingNavigator/pkg/swingnav"
)

type fakeTitler struct {
	titles []string
}

func (f *fakeTitler) SetTitle(title string) {
	f.titles = append(f.titles, title)
}

func newTestLocalizer(t *testing.T) *i18n.Localizer {
	t.Helper()

	bundle := i18n.NewBundle(language.English)
	require.NoError(t, bundle.AddMessages(language.English,
		&i18n.Message{ID: "screen.home.title", Other: "Home"},
		&i18n.Message{ID: "screen.settings.title", Other: "Settings"},
	))
	return i18n.NewLocalizer(bundle, "en")
}

func TestTitleHook_SetsLocalizedTitle(t *testing.T) {
	titler := &fakeTitler{}
	hook := swingnav.TitleHook(titler, newTestLocalizer(t))

	hook("home", nil, nil)
	hook("settings", nil, nil)

	assert.Equal(t, []string{"Home", "Settings"}, titler.titles)
}

func TestTitleHook_UnknownPathLeavesTitleUntouched(t *testing.T) {
	titler := &fakeTitler{}
	hook := swingnav.TitleHook(titler, newTestLocalizer(t))

	hook("about", nil, nil)

	assert.Empty(t, titler.titles)
}

func TestTitleHook_RunsOnNavigation(t *testing.T) {
	titler := &fakeTitler{}
	nav := swingnav.New(swingnav.Options{Frame: &fakeFrame{}})
	require.NoError(t, nav.AddRoute("home", swingnav.NoArgs(func() swingnav.Screen { return newFakeScreen() })))
	nav.AfterEach(swingnav.TitleHook(titler, newTestLocalizer(t)))

	require.NoError(t, nav.Navigate("home"))

	assert.Equal(t, []string{"Home"}, titler.titles)
}
