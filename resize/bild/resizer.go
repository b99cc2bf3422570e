package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/blockimg/term"
)

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct {
	// Filter defaults to transform.Lanczos
	Filter *transform.ResampleFilter
}

var _ term.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := term.ValidateResize(img, size); err != nil {
		return nil, err
	}
	filter := transform.Lanczos
	if r != nil && r.Filter != nil {
		filter = *r.Filter
	}
	return transform.Resize(img, size.X, size.Y, filter), nil
}
