package term

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/srlehn/blockimg/internal/consts"
	"github.com/srlehn/blockimg/internal/errors"
)

// Image is an image.Image that decodes its file or byte source on first use.
type Image struct {
	Original image.Image
	FileName string // lazily loaded
	Encoded  []byte // lazily loaded
	format   string
}

var _ image.Image = (*Image)(nil)

// NewImage ...
func NewImage(img image.Image) *Image {
	if m, ok := img.(*Image); ok {
		return m
	}
	return &Image{Original: img}
}

// NewImageFilename - for lazy loading the file
func NewImageFilename(imgFile string) *Image {
	if imgFilenameAbs, err := filepath.Abs(imgFile); err == nil {
		imgFile = imgFilenameAbs
	}
	return &Image{FileName: imgFile}
}

// NewImageBytes - for lazy loading encoded bytes, e.g. from "embed"
func NewImageBytes(imgBytes []byte) *Image {
	return &Image{Encoded: imgBytes}
}

// Decode decodes and stores the image source in the struct.
// Decoding failures are marked with ErrDecode, failing to open the file is not.
//
// Decode requires registration of image decoders.
func (i *Image) Decode() error {
	if i == nil {
		return errors.NilReceiver()
	}
	if i.Original != nil {
		return nil
	}
	var rdr io.Reader
	switch {
	case len(i.Encoded) > 0 && len(i.FileName) > 0:
		return errors.Mark(ErrConfig, errors.New(`image contains 2 sources`))
	case len(i.Encoded) > 0:
		rdr = bytes.NewReader(i.Encoded)
	case len(i.FileName) > 0:
		f, err := os.Open(i.FileName)
		if err != nil {
			return errors.New(err)
		}
		defer f.Close()
		rdr = f
	default:
		return errors.New(consts.ErrNilImage)
	}
	img, format, err := image.Decode(rdr)
	if err != nil {
		return errors.Mark(ErrDecode, err)
	}
	i.Original = img
	i.format = format
	return nil
}

// Format is the name of the decoder used, empty before decoding.
func (i *Image) Format() string {
	if i == nil {
		return ``
	}
	return i.format
}

// ColorModel ...
func (i *Image) ColorModel() color.Model {
	if i == nil || i.Decode() != nil {
		return color.NRGBAModel
	}
	return i.Original.ColorModel()
}

// Bounds is empty if the image can't be decoded.
func (i *Image) Bounds() image.Rectangle {
	if i == nil || i.Decode() != nil {
		return image.Rectangle{}
	}
	return i.Original.Bounds()
}

// At ...
func (i *Image) At(x, y int) color.Color {
	if i == nil || i.Decode() != nil {
		return color.NRGBA{}
	}
	return i.Original.At(x, y)
}

// Image returns the decoded image.
func (i *Image) Image() (image.Image, error) {
	if i == nil {
		return nil, errors.NilReceiver()
	}
	if err := i.Decode(); err != nil {
		return nil, err
	}
	return i.Original, nil
}

// Underlying returns the decoded image wrapped by an *Image, other images
// are returned unchanged.
func Underlying(img image.Image) (image.Image, error) {
	ti, ok := img.(*Image)
	if !ok {
		return img, nil
	}
	return ti.Image()
}
