// Package sdlframe implements swingnav.Frame on top of an SDL2 window:
// one window, one renderer, one panel displayed at a time. The caller is
// responsible for sdl.Init and for running the event loop; the frame only
// owns the window, its content slot, and per-frame presentation.
package sdlframe

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ggggg/SwingNavigator/pkg/swingnav"
)

// Renderable is implemented by panels that can draw themselves with an
// SDL renderer. Panels without it still participate in navigation and
// sizing; they just produce no pixels during Present.
type Renderable interface {
	Render(r *sdl.Renderer) error
}

// Frame is an SDL window acting as the navigator's display surface.
// SDL requires window and renderer calls on the main thread, so Present
// runs on the same thread as navigation; the frame does no locking of
// its own.
type Frame struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	content  swingnav.Panel
	visible  bool
}

// New creates the application window described by cfg.
// sdl.Init(sdl.INIT_VIDEO) must have been called first.
func New(cfg Config) (*Frame, error) {
	if cfg.LogPath != "" {
		swingnav.SetLogPath(cfg.LogPath)
	}

	swingnav.Logger().Debug("creating SDL window", "width", cfg.Width, "height", cfg.Height)

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		cfg.Width, cfg.Height, cfg.flags())
	if err != nil {
		return nil, fmt.Errorf("sdlframe: creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("sdlframe: creating renderer: %w", err)
	}

	return &Frame{
		window:   window,
		renderer: renderer,
		visible:  true,
	}, nil
}

// Content returns the currently displayed panel, or nil if none.
func (f *Frame) Content() swingnav.Panel {
	return f.content
}

// SetContent replaces the displayed panel.
func (f *Frame) SetContent(panel swingnav.Panel) {
	f.content = panel
}

// SetContentVisible toggles whether Present draws the content.
func (f *Frame) SetContentVisible(visible bool) {
	f.visible = visible
}

// ContentSize returns the size of the content area, which for an SDL
// window is the window itself. Returns false when no panel is set.
func (f *Frame) ContentSize() (swingnav.Size, bool) {
	if f.content == nil {
		return swingnav.Size{}, false
	}
	return f.Size(), true
}

// Size returns the window's current size.
func (f *Frame) Size() swingnav.Size {
	w, h := f.window.GetSize()
	return swingnav.Size{W: w, H: h}
}

// SetTitle sets the window title. Satisfies swingnav.Titler so the frame
// can be fed straight to swingnav.TitleHook.
func (f *Frame) SetTitle(title string) {
	f.window.SetTitle(title)
}

// Renderer exposes the underlying SDL renderer for panels that draw
// outside the Present cycle.
func (f *Frame) Renderer() *sdl.Renderer {
	return f.renderer
}

// Present clears the window, draws the current content if it is visible
// and Renderable, and swaps the render buffer. Call once per frame, on
// the same thread that issues navigation calls.
func (f *Frame) Present() error {
	if err := f.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return fmt.Errorf("sdlframe: setting clear color: %w", err)
	}
	if err := f.renderer.Clear(); err != nil {
		return fmt.Errorf("sdlframe: clearing: %w", err)
	}

	if f.visible {
		if r, ok := f.content.(Renderable); ok {
			if err := r.Render(f.renderer); err != nil {
				return fmt.Errorf("sdlframe: rendering content: %w", err)
			}
		}
	}

	f.renderer.Present()
	return nil
}

// Close destroys the renderer and window. The frame must not be used
// afterwards.
func (f *Frame) Close() {
	f.renderer.Destroy()
	f.window.Destroy()
}
