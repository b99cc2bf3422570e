package term_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/blockimg/term"
)

func newImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestFitImage(t *testing.T) {
	geo := term.FixedGeometry{Columns: 80, Rows: 24}
	tests := []struct {
		name          string
		src           image.Point
		width, height uint
		geo           term.Geometry
		want          image.Point
	}{
		{`terminal bounds`, image.Pt(1000, 800), 0, 0, geo, image.Pt(57, 46)},
		{`terminal bounds width limited`, image.Pt(1000, 800), 0, 0, term.FixedGeometry{Columns: 60, Rows: 47}, image.Pt(60, 48)},
		{`width only`, image.Pt(1000, 800), 100, 0, geo, image.Pt(100, 80)},
		{`height only`, image.Pt(1000, 800), 0, 90, geo, image.Pt(225, 180)},
		{`height only small`, image.Pt(20, 10), 0, 4, geo, image.Pt(16, 8)},
		{`exact upscales`, image.Pt(20, 10), 15, 9, geo, image.Pt(15, 18)},
		{`exact ignores aspect ratio`, image.Pt(1000, 800), 10, 30, geo, image.Pt(10, 60)},
		{`fits terminal`, image.Pt(40, 20), 0, 0, geo, image.Pt(40, 20)},
		{`width larger than image`, image.Pt(50, 40), 100, 0, geo, image.Pt(50, 40)},
		{`tiny terminal`, image.Pt(100, 100), 0, 0, term.FixedGeometry{Columns: 1, Rows: 1}, image.Pt(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newImage(tt.src.X, tt.src.Y)
			got, err := term.FitImage(src, tt.width, tt.height, tt.geo, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Bounds().Size())
			// the source is left alone
			assert.Equal(t, tt.src, src.Bounds().Size())
		})
	}
}

func TestFitImageUnchanged(t *testing.T) {
	src := newImage(10, 6)
	got, err := term.FitImage(src, 0, 0, term.FixedGeometry{Columns: 80, Rows: 24}, nil)
	require.NoError(t, err)
	assert.Same(t, src, got)
}

func TestFitImageIdempotent(t *testing.T) {
	geo := term.FixedGeometry{Columns: 80, Rows: 24}
	first, err := term.FitImage(newImage(1000, 800), 0, 0, geo, nil)
	require.NoError(t, err)
	second, err := term.FitImage(first, 0, 0, geo, nil)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestFitImageEmpty(t *testing.T) {
	src := image.NewNRGBA(image.Rectangle{})
	got, err := term.FitImage(src, 10, 10, term.FixedGeometry{Columns: 80, Rows: 24}, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Point{}, got.Bounds().Size())
}

func TestFitImageNil(t *testing.T) {
	_, err := term.FitImage(nil, 0, 0, nil, nil)
	assert.ErrorIs(t, err, term.ErrNilImage)
}

func TestPrintSize(t *testing.T) {
	geo := term.GeometryFunc(func() (uint16, uint16) { return 80, 24 })
	size, exact := term.PrintSize(image.Pt(1000, 800), 0, 0, geo)
	assert.Equal(t, image.Pt(57, 46), size)
	assert.False(t, exact)

	size, exact = term.PrintSize(image.Pt(1000, 800), 15, 9, geo)
	assert.Equal(t, image.Pt(15, 18), size)
	assert.True(t, exact)

	size, _ = term.PrintSize(image.Point{}, 0, 0, geo)
	assert.Equal(t, image.Point{}, size)
}

func TestThumbnail(t *testing.T) {
	got, err := term.Thumbnail(newImage(200, 100), image.Pt(50, 50), nil)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(50, 25), got.Bounds().Size())

	src := newImage(20, 10)
	got, err = term.Thumbnail(src, image.Pt(50, 50), nil)
	require.NoError(t, err)
	assert.Same(t, src, got)
}

func TestResizerDefault(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0xff, A: 0xff})
	src.SetNRGBA(1, 1, color.NRGBA{B: 0xff, A: 0xff})
	got, err := term.ResizerDefault().Resize(src, image.Pt(4, 4))
	require.NoError(t, err)
	require.Equal(t, image.Pt(4, 4), got.Bounds().Size())
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, got.At(1, 1))
	assert.Equal(t, color.NRGBA{B: 0xff, A: 0xff}, got.At(3, 3))
}

func TestValidateResize(t *testing.T) {
	assert.ErrorIs(t, term.ValidateResize(nil, image.Pt(1, 1)), term.ErrNilImage)
	assert.Error(t, term.ValidateResize(newImage(1, 1), image.Pt(0, 1)))
	assert.Error(t, term.ValidateResize(image.NewNRGBA(image.Rectangle{}), image.Pt(1, 1)))
	assert.NoError(t, term.ValidateResize(newImage(1, 1), image.Pt(1, 1)))
}

type countingGeometry struct{ calls int }

func (g *countingGeometry) Size() (uint16, uint16) {
	g.calls++
	return 80, 24
}

func TestFitImageQueriesGeometry(t *testing.T) {
	geo := &countingGeometry{}
	_, err := term.FitImage(newImage(100, 100), 0, 0, geo, nil)
	require.NoError(t, err)
	_, err = term.FitImage(newImage(100, 100), 0, 0, geo, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, geo.calls)

	// a given width doesn't need the terminal
	_, err = term.FitImage(newImage(100, 100), 10, 0, geo, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, geo.calls)
}
