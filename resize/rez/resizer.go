package rez

import (
	"image"
	"image/draw"

	"github.com/bamiaux/rez"

	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/term"
)

// Resizer uses "github.com/bamiaux/rez"
type Resizer struct {
	// Filter defaults to the bilinear filter
	Filter rez.Filter
}

var _ term.Resizer = (*Resizer)(nil)

// Resize converts sources of types rez can't handle to RGBA first.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := term.ValidateResize(img, size); err != nil {
		return nil, err
	}
	filter := rez.NewBilinearFilter()
	if r != nil && r.Filter != nil {
		filter = r.Filter
	}
	src, err := term.Underlying(img)
	if err != nil {
		return nil, err
	}
	var dst image.Image
	rect := image.Rectangle{Max: size}
	switch it := src.(type) {
	case *image.RGBA:
		dst = image.NewRGBA(rect)
	case *image.Gray:
		dst = image.NewGray(rect)
	case *image.YCbCr:
		dst = image.NewYCbCr(rect, it.SubsampleRatio)
	default:
		b := src.Bounds()
		m := image.NewRGBA(image.Rectangle{Max: b.Size()})
		draw.Draw(m, m.Bounds(), src, b.Min, draw.Src)
		src = m
		dst = image.NewRGBA(rect)
	}
	if err := rez.Convert(dst, src, filter); err != nil {
		return nil, errors.New(err)
	}
	return dst, nil
}
