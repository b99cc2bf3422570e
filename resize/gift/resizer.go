package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/blockimg/term"
)

// Resizer uses "github.com/disintegration/gift"
type Resizer struct {
	// Resampling defaults to gift.LanczosResampling
	Resampling gift.Resampling
}

var _ term.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := term.ValidateResize(img, size); err != nil {
		return nil, err
	}
	resampling := gift.LanczosResampling
	if r != nil && r.Resampling != nil {
		resampling = r.Resampling
	}
	g := gift.New(gift.Resize(size.X, size.Y, resampling))
	g.SetParallelization(true)
	m := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(m, img)
	return m, nil
}
