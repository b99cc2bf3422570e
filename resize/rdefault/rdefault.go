// Package rdefault picks a resizer by platform and image type.
package rdefault

import (
	"image"
	"runtime"

	"github.com/srlehn/blockimg/resize/rez"
	"github.com/srlehn/blockimg/resize/xdraw"
	"github.com/srlehn/blockimg/term"
)

type Resizer struct{}

var _ term.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := term.ValidateResize(img, size); err != nil {
		return nil, err
	}
	im, err := term.Underlying(img)
	if err != nil {
		return nil, err
	}
	if runtime.GOARCH != `amd64` {
		return xdraw.ApproxBiLinear().Resize(im, size)
	}
	switch im.(type) {
	case *image.YCbCr, *image.RGBA, *image.NRGBA, *image.Gray:
		// use SIMD assembly if possible
		imgRet, err := (&rez.Resizer{}).Resize(im, size)
		if err == nil {
			return imgRet, nil
		}
	}
	return xdraw.ApproxBiLinear().Resize(im, size)
}
