// Package caire resizes by seam carving: content aware, it removes the
// least noticeable pixel paths instead of scaling. Suited for exact
// resizing where the aspect ratio changes.
package caire

import (
	"image"
	"image/draw"

	"github.com/esimov/caire"

	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/term"
)

type Resizer struct{}

var _ term.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := term.ValidateResize(img, size); err != nil {
		return nil, err
	}
	p := &caire.Processor{
		BlurRadius:     1,
		SobelThreshold: 4,
		NewWidth:       size.X,
		NewHeight:      size.Y,
		ShapeType:      `circle`,
	}
	src, err := term.Underlying(img)
	if err != nil {
		return nil, err
	}
	nimg, ok := src.(*image.NRGBA)
	if !ok {
		b := src.Bounds()
		nimg = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nimg, nimg.Bounds(), src, b.Min, draw.Src)
	}
	m, err := p.Resize(nimg)
	if err != nil {
		return nil, errors.New(err)
	}
	return m, nil
}
