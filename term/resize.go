package term

import (
	"image"
	"image/color"

	"github.com/srlehn/blockimg/internal/consts"
	"github.com/srlehn/blockimg/internal/errors"
)

// Resizer resamples images to an exact pixel size
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

// FitImage maps img onto the pixel buffer that is printed into an area of
// widthCells x heightCells. A zero value means the dimension is not given.
//
//   - none given: the image is fit into the terminal viewport reported by
//     geo, keeping one row free. Aspect ratio is preserved.
//   - one given: the image is fit into that boundary. Aspect ratio is
//     preserved.
//   - both given: the image is resized to exactly widthCells x 2*heightCells
//     pixels, aspect ratio is not preserved.
//
// Images are never upscaled unless both dimensions are given. The source
// is never modified, it is returned as is when no resampling is needed.
// A nil Resizer selects the nearest neighbour fallback.
func FitImage(img image.Image, widthCells, heightCells uint, geo Geometry, rsz Resizer) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	src := img.Bounds().Size()
	if src.X <= 0 || src.Y <= 0 {
		return img, nil
	}
	size, _ := PrintSize(src, widthCells, heightCells, geo)
	if size == src {
		return img, nil
	}
	return resample(img, size, rsz)
}

// PrintSize computes the pixel size FitImage produces for a source of size
// src. exact reports whether the aspect ratio is disregarded.
func PrintSize(src image.Point, widthCells, heightCells uint, geo Geometry) (size image.Point, exact bool) {
	if src.X <= 0 || src.Y <= 0 {
		return image.Point{}, false
	}
	printWidth, printHeight := uint(src.X), uint(src.Y)
	if widthCells > 0 {
		printWidth = widthCells
	}
	if heightCells > 0 {
		// two pixels are printed per cell
		printHeight = 2 * heightCells
	}

	switch {
	case widthCells == 0 && heightCells == 0:
		if geo == nil {
			geo = &TTYGeometry{}
		}
		cols, rows := geo.Size()
		w := max(uint(cols), 1)
		// one row less: the shell prompt takes a line after printing
		h := 2*max(uint(rows), 2) - 2
		if printWidth > w {
			printWidth = w
		}
		if printHeight > h {
			printHeight = h
		}
		return fitWithin(src, printWidth, printHeight), false
	case widthCells > 0 && heightCells > 0:
		return image.Pt(int(printWidth), int(printHeight)), true
	default:
		return fitWithin(src, printWidth, printHeight), false
	}
}

// fitWithin returns the largest size with the aspect ratio of src that
// fits into maxWidth x maxHeight. src is returned if it already fits.
// Divisions truncate.
func fitWithin(src image.Point, maxWidth, maxHeight uint) image.Point {
	srcW, srcH := uint64(src.X), uint64(src.Y)
	maxW, maxH := max(uint64(maxWidth), 1), max(uint64(maxHeight), 1)
	if srcW <= maxW && srcH <= maxH {
		return src
	}
	var w, h uint64
	if maxW*srcH <= maxH*srcW {
		w, h = maxW, srcH*maxW/srcW
	} else {
		w, h = srcW*maxH/srcH, maxH
	}
	return image.Pt(int(max(w, 1)), int(max(h, 1)))
}

// Thumbnail shrinks img to fit into maxSize while preserving its aspect ratio.
func Thumbnail(img image.Image, maxSize image.Point, rsz Resizer) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	src := img.Bounds().Size()
	if src.X <= 0 || src.Y <= 0 || maxSize.X <= 0 || maxSize.Y <= 0 {
		return img, nil
	}
	size := fitWithin(src, uint(maxSize.X), uint(maxSize.Y))
	if size == src {
		return img, nil
	}
	return resample(img, size, rsz)
}

// ThumbnailExact resizes img to size regardless of its aspect ratio.
func ThumbnailExact(img image.Image, size image.Point, rsz Resizer) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	src := img.Bounds().Size()
	if src.X <= 0 || src.Y <= 0 || src == size {
		return img, nil
	}
	return resample(img, size, rsz)
}

func resample(img image.Image, size image.Point, rsz Resizer) (image.Image, error) {
	if size.X <= 0 || size.Y <= 0 {
		return image.NewNRGBA(image.Rectangle{}), nil
	}
	if rsz == nil {
		rsz = ResizerDefault()
	}
	imgResized, err := rsz.Resize(img, size)
	if err != nil {
		return nil, errors.New(err)
	}
	if imgResized == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	return imgResized, nil
}

// samples the nearest source pixel, used when no Resizer is configured
type resizerFallback struct{}

var _ Resizer = (*resizerFallback)(nil)

func ResizerDefault() Resizer { return &resizerFallback{} }

func (r *resizerFallback) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New(`invalid size`)
	}
	srcB := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	if srcB.Empty() {
		return dst, nil
	}
	for y := 0; y < size.Y; y++ {
		srcY := srcB.Min.Y + y*srcB.Dy()/size.Y
		for x := 0; x < size.X; x++ {
			srcX := srcB.Min.X + x*srcB.Dx()/size.X
			dst.SetNRGBA(x, y, color.NRGBAModel.Convert(img.At(srcX, srcY)).(color.NRGBA))
		}
	}
	return dst, nil
}

// ValidateResize is the argument check shared by Resizer implementations.
func ValidateResize(img image.Image, size image.Point) error {
	if img == nil {
		return errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return errors.Errorf(`invalid size %dx%d`, size.X, size.Y)
	}
	if img.Bounds().Empty() {
		return errors.New(`resize: empty source image`)
	}
	return nil
}
