// Package xdraw resizes with the scalers of golang.org/x/image/draw.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/blockimg/term"
)

type resizer struct {
	scaler draw.Scaler
}

var _ term.Resizer = (*resizer)(nil)

func NearestNeighbor() term.Resizer { return &resizer{scaler: draw.NearestNeighbor} }

// ApproxBiLinear is a good tradeoff of speed and quality for half blocks.
func ApproxBiLinear() term.Resizer { return &resizer{scaler: draw.ApproxBiLinear} }

func BiLinear() term.Resizer { return &resizer{scaler: draw.BiLinear} }

// CatmullRom is the slowest and sharpest.
func CatmullRom() term.Resizer { return &resizer{scaler: draw.CatmullRom} }

// Resize returns a non-premultiplied image so that the alpha channel can
// be compared against the transparency threshold.
func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := term.ValidateResize(img, size); err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
