package sdlframe

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ggggg/SwingNavigator/pkg/swingnav"
)

// DrawFunc draws a panel's content into the given size.
type DrawFunc func(r *sdl.Renderer, size swingnav.Size) error

// Panel is a basic swingnav.Panel backed by a draw callback. Screens that
// don't need their own panel type can wrap one of these.
type Panel struct {
	size swingnav.Size
	draw DrawFunc
}

// NewPanel creates a panel of the given initial size. draw may be nil for
// panels that render nothing themselves.
func NewPanel(size swingnav.Size, draw DrawFunc) *Panel {
	return &Panel{size: size, draw: draw}
}

// Size returns the panel's current size.
func (p *Panel) Size() swingnav.Size {
	return p.size
}

// SetPreferredSize adopts the given size; the next Render draws at it.
func (p *Panel) SetPreferredSize(size swingnav.Size) {
	p.size = size
}

// Render draws the panel via its callback.
func (p *Panel) Render(r *sdl.Renderer) error {
	if p.draw == nil {
		return nil
	}
	return p.draw(r, p.size)
}
