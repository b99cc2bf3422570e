// Package tcellimg paints half block images onto a tcell screen.
package tcellimg

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/srlehn/blockimg/drawers/block"
	"github.com/srlehn/blockimg/internal/consts"
	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/term"
)

// Image is a source image together with the cell grid rasterized for the
// last drawn area. Redrawing with the same area size, Options and screen
// colors reuses the grid.
type Image struct {
	img     image.Image
	rsz     term.Resizer
	rows    [][]block.Cell
	cached  cacheKey
	Options block.Options
}

type cacheKey struct {
	size   image.Point
	opts   block.Options
	colors int
}

func NewImage(img image.Image, rsz term.Resizer) (*Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	return &Image{
		img: img,
		rsz: rsz,
		Options: block.Options{
			Mode:           term.Truecolor,
			AlphaThreshold: 1,
		},
	}, nil
}

// Draw fits the image into bounds (in cells) keeping its aspect ratio and
// paints it at the upper left corner of bounds.
func (m *Image) Draw(scr tcell.Screen, bounds image.Rectangle) error {
	if m == nil {
		return errors.NilReceiver()
	}
	if scr == nil {
		return errors.NilParam()
	}
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil
	}
	key := cacheKey{size: bounds.Size(), opts: m.Options, colors: scr.Colors()}
	if m.rows == nil || key != m.cached {
		rows, err := m.rasterize(key.size, key.colors)
		if err != nil {
			return err
		}
		m.rows, m.cached = rows, key
	}
	Paint(scr, bounds.Min.X, bounds.Min.Y, clip(m.rows, bounds.Size()))
	return nil
}

func (m *Image) rasterize(area image.Point, colors int) ([][]block.Cell, error) {
	// no prompt follows on a screen, so hand FitImage one spare row
	geo := term.FixedGeometry{Columns: uint16(area.X), Rows: uint16(area.Y + 1)}
	fitted, err := term.FitImage(m.img, 0, 0, geo, m.rsz)
	if err != nil {
		return nil, err
	}
	opts := m.Options
	if colors < 8 {
		opts.Mode = term.NoColor
	}
	return block.Rasterize(fitted, opts), nil
}

// Rows is the cell grid of the last Draw call.
func (m *Image) Rows() [][]block.Cell {
	if m == nil {
		return nil
	}
	return m.rows
}

// Paint sets the content of the screen cells starting at x, y. Cells
// drawing nothing and cells off screen are left untouched.
func Paint(scr tcell.Screen, x, y int, rows [][]block.Cell) {
	if scr == nil {
		return
	}
	scrW, scrH := scr.Size()
	for dy, row := range rows {
		cy := y + dy
		if cy < 0 {
			continue
		}
		if cy >= scrH {
			break
		}
		for dx, c := range row {
			cx := x + dx
			if cx < 0 || c.Skip() {
				continue
			}
			if cx >= scrW {
				break
			}
			scr.SetContent(cx, cy, c.Rune, nil, Style(c))
		}
	}
}

// Style maps the cell colors, unset halves take tcell.ColorDefault.
func Style(c block.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(c.FG)).
		Background(tcellColor(c.BG))
}

func tcellColor(c block.Color) tcell.Color {
	if !c.Set {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clip(rows [][]block.Cell, size image.Point) [][]block.Cell {
	if len(rows) > size.Y {
		rows = rows[:size.Y]
	}
	out := make([][]block.Cell, len(rows))
	for i, row := range rows {
		if len(row) > size.X {
			row = row[:size.X]
		}
		out[i] = row
	}
	return out
}
