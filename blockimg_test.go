package blockimg_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/blockimg"
	"github.com/srlehn/blockimg/term"
)

func filled(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func config(opts ...term.Option) *term.Config {
	cfg, err := term.NewConfig(append([]term.Option{
		term.SetColors(term.Truecolor),
		term.SetGeometry(term.FixedGeometry{Columns: 80, Rows: 24}),
	}, opts...)...)
	if err != nil {
		panic(err)
	}
	return cfg
}

func TestFprintFitsTerminal(t *testing.T) {
	var buf bytes.Buffer
	w, h, err := blockimg.Fprint(&buf, filled(1000, 800, color.NRGBA{G: 0xff, A: 0xff}), config())
	require.NoError(t, err)
	// 57x46 pixels
	assert.Equal(t, uint(57), w)
	assert.Equal(t, uint(23), h)
	assert.Equal(t, 23, strings.Count(buf.String(), "\r\n"))
}

func TestFprintExact(t *testing.T) {
	var buf bytes.Buffer
	w, h, err := blockimg.Fprint(&buf, filled(20, 10, color.NRGBA{R: 0xff, A: 0xff}), config(term.SetWidth(15), term.SetHeight(9)))
	require.NoError(t, err)
	assert.Equal(t, uint(15), w)
	assert.Equal(t, uint(9), h)
}

func TestFprintNoResize(t *testing.T) {
	var buf bytes.Buffer
	w, h, err := blockimg.Fprint(&buf, filled(200, 3, color.NRGBA{R: 0xff, A: 0xff}), config(term.SetResize(false)))
	require.NoError(t, err)
	assert.Equal(t, uint(200), w)
	assert.Equal(t, uint(2), h)
}

func TestFprintEmpty(t *testing.T) {
	var buf bytes.Buffer
	w, h, err := blockimg.Fprint(&buf, image.NewNRGBA(image.Rectangle{}), config())
	require.NoError(t, err)
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.Zero(t, buf.Len())
}

func TestFprintErrors(t *testing.T) {
	var buf bytes.Buffer
	_, _, err := blockimg.Fprint(&buf, filled(2, 2, color.NRGBA{}), config(term.SetPrinter(`unknown`)))
	assert.ErrorIs(t, err, term.ErrConfig)

	cfg := config()
	cfg.Absolute, cfg.Y = true, -1
	_, _, err = blockimg.Fprint(&buf, filled(2, 2, color.NRGBA{}), cfg)
	assert.ErrorIs(t, err, term.ErrConfig)

	_, _, err = blockimg.Fprint(&buf, term.NewImageBytes([]byte(`garbage`)), config())
	assert.ErrorIs(t, err, term.ErrDecode)

	_, _, err = blockimg.Fprint(&buf, nil, config())
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestFprintLazyImage(t *testing.T) {
	var enc bytes.Buffer
	require.NoError(t, png.Encode(&enc, filled(4, 4, color.NRGBA{B: 0xff, A: 0xff})))
	var buf bytes.Buffer
	w, h, err := blockimg.Fprint(&buf, term.NewImageBytes(enc.Bytes()), config())
	require.NoError(t, err)
	assert.Equal(t, uint(4), w)
	assert.Equal(t, uint(2), h)
	assert.Contains(t, buf.String(), `38;2;0;0;255`)
}

func TestPrintBytesEmpty(t *testing.T) {
	_, _, err := blockimg.PrintBytes(nil, nil)
	assert.ErrorIs(t, err, term.ErrDecode)
}

func TestResize(t *testing.T) {
	m, err := blockimg.Resize(filled(1000, 800, color.NRGBA{A: 0xff}), 100, 0)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(100, 80), m.Bounds().Size())
}
