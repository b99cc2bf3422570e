package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/blockimg/term"
)

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct {
	// Filter defaults to imaging.Lanczos
	Filter *imaging.ResampleFilter
}

var _ term.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := term.ValidateResize(img, size); err != nil {
		return nil, err
	}
	filter := imaging.Lanczos
	if r != nil && r.Filter != nil {
		filter = *r.Filter
	}
	return imaging.Resize(img, size.X, size.Y, filter), nil
}
