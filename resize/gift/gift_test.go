package gift_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/blockimg/resize/gift"
	"github.com/srlehn/blockimg/term"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(4 * x), G: uint8(4 * y), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestResize(t *testing.T) {
	rsz := &gift.Resizer{}
	for _, size := range []image.Point{{32, 24}, {100, 75}, {17, 33}} {
		src := gradient(64, 48)
		got, err := rsz.Resize(src, size)
		require.NoError(t, err)
		assert.Equal(t, size, got.Bounds().Size())
		assert.Equal(t, image.Pt(64, 48), src.Bounds().Size())
	}
}

func TestResizeInvalid(t *testing.T) {
	rsz := &gift.Resizer{}
	_, err := rsz.Resize(nil, image.Pt(1, 1))
	assert.ErrorIs(t, err, term.ErrNilImage)
	_, err = rsz.Resize(gradient(2, 2), image.Pt(0, 3))
	assert.Error(t, err)
}
