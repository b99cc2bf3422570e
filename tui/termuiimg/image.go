// Package termuiimg provides a termui widget showing a half block image.
// termui renders with the 256 color palette.
package termuiimg

import (
	"image"

	ui "github.com/gizak/termui/v3"

	"github.com/srlehn/blockimg/drawers/block"
	"github.com/srlehn/blockimg/internal/consts"
	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/term"
)

var _ ui.Drawable = (*Image)(nil)

type Image struct {
	ui.Block
	img  image.Image
	rsz  term.Resizer
	size image.Point
	rows [][]block.Cell
	// Transparent leaves cells of transparent pixels to the widgets below.
	Transparent bool
	// Err is the error of the last Draw call.
	Err error
}

func NewImage(img image.Image, rsz term.Resizer) (*Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	return &Image{
		Block: *ui.NewBlock(),
		img:   img,
		rsz:   rsz,
	}, nil
}

func (m *Image) Draw(buf *ui.Buffer) {
	if m == nil || buf == nil {
		return
	}
	m.Block.Draw(buf) // border
	m.Err = nil
	area := m.Inner.Size()
	if area.X <= 0 || area.Y <= 0 {
		return
	}
	if m.rows == nil || area != m.size {
		geo := term.FixedGeometry{Columns: uint16(area.X), Rows: uint16(area.Y + 1)}
		fitted, err := term.FitImage(m.img, 0, 0, geo, m.rsz)
		if err != nil {
			m.Err = err
			return
		}
		m.rows = block.Rasterize(fitted, block.Options{
			Mode:           term.Indexed,
			Transparent:    m.Transparent,
			AlphaThreshold: 1,
		})
		m.size = area
	}
	for dy, row := range m.rows {
		if dy >= area.Y {
			break
		}
		for dx, c := range row {
			if dx >= area.X {
				break
			}
			if c.Skip() {
				continue
			}
			buf.SetCell(ui.NewCell(c.Rune, Style(c)), m.Inner.Min.Add(image.Pt(dx, dy)))
		}
	}
}

// Style maps the cell colors onto the palette, unset colors are cleared.
func Style(c block.Cell) ui.Style {
	return ui.NewStyle(uiColor(c.FG), uiColor(c.BG))
}

func uiColor(c block.Color) ui.Color {
	if !c.Set {
		return ui.ColorClear
	}
	return ui.Color(c.ANSI256())
}
