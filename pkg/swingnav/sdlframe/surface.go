package sdlframe

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ggggg/SwingNavigator/pkg/swingnav/icon"
)

// SetIcon sets the window icon from an RGBA image, such as one produced
// by icon.Rasterize.
func (f *Frame) SetIcon(img *image.RGBA) error {
	if img == nil || len(img.Pix) == 0 {
		return fmt.Errorf("sdlframe: empty icon image")
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(img.Rect.Dx()), int32(img.Rect.Dy()),
		32, int32(img.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return fmt.Errorf("sdlframe: creating icon surface: %w", err)
	}
	defer surface.Free()

	f.window.SetIcon(surface)
	return nil
}

// SetIconFile rasterizes the SVG at path to size x size pixels and sets
// it as the window icon.
func (f *Frame) SetIconFile(path string, size int) error {
	img, err := icon.RasterizeFile(path, size, size)
	if err != nil {
		return err
	}
	return f.SetIcon(img)
}
