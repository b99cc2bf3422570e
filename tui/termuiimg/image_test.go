package termuiimg_test

import (
	"image"
	"image/color"
	"testing"

	ui "github.com/gizak/termui/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/blockimg/drawers/block"
	"github.com/srlehn/blockimg/tui/termuiimg"
)

func TestDraw(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 0xff, A: 0xff})
		}
	}
	img, err := termuiimg.NewImage(src, nil)
	require.NoError(t, err)
	img.SetRect(0, 0, 10, 6)

	buf := ui.NewBuffer(image.Rect(0, 0, 10, 6))
	img.Draw(buf)
	require.NoError(t, img.Err)

	red := ui.Color(196)
	// the block border takes one cell on each side
	c := buf.GetCell(image.Pt(1, 1))
	assert.Equal(t, block.LowerHalfBlock, c.Rune)
	assert.Equal(t, ui.NewStyle(red, red), c.Style)

	c = buf.GetCell(image.Pt(3, 2))
	assert.Equal(t, block.UpperHalfBlock, c.Rune)
	assert.Equal(t, ui.NewStyle(red, ui.ColorClear), c.Style)
}

func TestNewImageNil(t *testing.T) {
	_, err := termuiimg.NewImage(nil, nil)
	assert.Error(t, err)
}
