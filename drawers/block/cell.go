package block

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/srlehn/blockimg/term"
)

const (
	UpperHalfBlock = '▀'
	LowerHalfBlock = '▄'
	FullBlock      = '█'
)

// transparent pixels are blended onto this pattern unless the terminal
// background is used
var (
	checkerDark  = Color{R: 102, G: 102, B: 102, Set: true}
	checkerLight = Color{R: 153, G: 153, B: 153, Set: true}
)

// luminance (CIE L*) from which a half counts as lit without colors
const noColorThreshold = 0.5

// Color is an 8 bit RGB color. The zero value is unset: the terminal
// default color is used.
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB returns a set color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, Set: true} }

// ANSI256 is the nearest color of the 256 color palette.
func (c Color) ANSI256() termenv.ANSI256Color {
	hex := termenv.RGBColor(c.colorful().Hex())
	if ac, ok := term.Indexed.Profile().Convert(hex).(termenv.ANSI256Color); ok {
		return ac
	}
	return 0
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Cell is one character cell. A zero Rune draws nothing, the cursor moves
// past the cell and the terminal content shows through.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Skip reports whether nothing is drawn in the cell.
func (c Cell) Skip() bool { return c.Rune == 0 }

// Options for Rasterize.
type Options struct {
	// Mode must be resolved, ColorDetect is treated like Truecolor.
	Mode        term.ColorMode
	Transparent bool
	// AlphaThreshold: lower alpha values are transparent, 0 is taken as 1
	// so that fully transparent pixels always are.
	AlphaThreshold uint8
}

// Rasterize turns img into rows of cells, each cell covering one pixel
// column of two pixel rows: the upper pixel is painted as background and
// the lower one as foreground of a lower half block. An odd last pixel
// row only paints the upper half.
func Rasterize(img image.Image, opts Options) [][]Cell {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	rows := make([][]Cell, 0, (h+1)/2)
	for y := 0; y < h; y += 2 {
		row := make([]Cell, w)
		for x := 0; x < w; x++ {
			upper := opts.paint(img.At(b.Min.X+x, b.Min.Y+y), x, y)
			if y+1 >= h {
				row[x] = opts.halfCell(upper)
				continue
			}
			lower := opts.paint(img.At(b.Min.X+x, b.Min.Y+y+1), x, y+1)
			row[x] = opts.cell(upper, lower)
		}
		rows = append(rows, row)
	}
	return rows
}

// paint returns the color of one pixel in the cell grid, unset if the
// terminal background should show through.
func (o Options) paint(c color.Color, x, y int) Color {
	p := color.NRGBAModel.Convert(c).(color.NRGBA)
	if p.A < max(o.AlphaThreshold, 1) {
		if o.Transparent {
			return Color{}
		}
		return checker(x, y)
	}
	if p.A < 0xff && !o.Transparent {
		bg := checker(x, y)
		return RGB(over(p.R, bg.R, p.A), over(p.G, bg.G, p.A), over(p.B, bg.B, p.A))
	}
	return RGB(p.R, p.G, p.B)
}

func (o Options) cell(upper, lower Color) Cell {
	if o.Mode == term.NoColor {
		return monoCell(upper, lower, true)
	}
	switch {
	case upper.Set && lower.Set:
		return Cell{Rune: LowerHalfBlock, FG: lower, BG: upper}
	case upper.Set:
		return Cell{Rune: UpperHalfBlock, FG: upper}
	case lower.Set:
		return Cell{Rune: LowerHalfBlock, FG: lower}
	}
	return Cell{}
}

// halfCell is used for the last row of an image with odd height
func (o Options) halfCell(upper Color) Cell {
	if o.Mode == term.NoColor {
		return monoCell(upper, Color{}, false)
	}
	if !upper.Set {
		return Cell{}
	}
	return Cell{Rune: UpperHalfBlock, FG: upper}
}

func monoCell(upper, lower Color, hasLower bool) Cell {
	if !upper.Set && (!hasLower || !lower.Set) {
		return Cell{}
	}
	u, l := lit(upper), hasLower && lit(lower)
	switch {
	case u && l:
		return Cell{Rune: FullBlock}
	case u:
		return Cell{Rune: UpperHalfBlock}
	case l:
		return Cell{Rune: LowerHalfBlock}
	}
	return Cell{Rune: ' '}
}

func lit(c Color) bool {
	if !c.Set {
		return false
	}
	l, _, _ := c.colorful().Lab()
	return l >= noColorThreshold
}

func checker(x, y int) Color {
	if x%2 == y%2 {
		return checkerDark
	}
	return checkerLight
}

// over composites fg with alpha onto an opaque bg
func over(fg, bg, alpha uint8) uint8 {
	return uint8((uint16(fg)*uint16(alpha) + uint16(bg)*(0xff-uint16(alpha))) / 0xff)
}
