package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/srlehn/blockimg/term"
)

// Resizer uses "github.com/nfnt/resize"
type Resizer struct {
	// Interpolation defaults to resize.Lanczos3
	Interpolation *resize.InterpolationFunction
}

var _ term.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := term.ValidateResize(img, size); err != nil {
		return nil, err
	}
	interp := resize.Lanczos3
	if r != nil && r.Interpolation != nil {
		interp = *r.Interpolation
	}
	return resize.Resize(uint(size.X), uint(size.Y), img, interp), nil
}
