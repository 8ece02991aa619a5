// Package icon rasterizes SVG artwork into RGBA images, sized for use as
// window or route icons. Frame adapters convert the result into whatever
// surface type their toolkit wants.
package icon

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize parses SVG data from r and renders it into an RGBA image of
// the given size. The SVG viewbox is scaled to fill the full target
// rectangle.
func Rasterize(r io.Reader, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("icon: invalid target size %dx%d", width, height)
	}

	svg, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("icon: parsing svg: %w", err)
	}
	svg.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	svg.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return rgba, nil
}

// RasterizeFile is Rasterize reading SVG data from the file at path.
func RasterizeFile(path string, width, height int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("icon: opening %s: %w", path, err)
	}
	defer f.Close()

	return Rasterize(f, width, height)
}
