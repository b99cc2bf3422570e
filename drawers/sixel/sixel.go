// Package sixel prints images as DEC sixel graphics.
package sixel

import (
	"bytes"
	"image"
	"io"
	"log/slog"

	sixel "github.com/mattn/go-sixel"

	"github.com/srlehn/blockimg/internal/consts"
	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/internal/logx"
	"github.com/srlehn/blockimg/term"
)

func init() { term.RegisterPrinter(&Printer{}) }

var _ term.Printer = (*Printer)(nil)

// assumed cell size when the terminal doesn't report one
const (
	DefaultCellWidth  uint = 8
	DefaultCellHeight uint = 16
)

// Printer scales the half block sized image up to the pixel size of the
// cells it covers and encodes it as sixel.
type Printer struct {
	// CellSize reports the pixel size of one cell, term.CellPixelSize of
	// stdout if nil.
	CellSize func() (width, height uint, _ error)
}

func (p *Printer) Name() string { return consts.PrinterSixelName }

// Print expects img to be sized like for the block printer: one pixel
// column per cell and two pixel rows per cell.
func (p *Printer) Print(w io.Writer, img image.Image, cfg *term.Config) (width, height uint, _ error) {
	if p == nil || w == nil || img == nil || cfg == nil {
		return 0, 0, errors.NilParam()
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return 0, 0, nil
	}
	cols, rows := uint(b.Dx()), uint(b.Dy()+1)/2
	cpw, cph := p.cellSize(cfg)
	size := image.Pt(int(cols*cpw), int(rows*cph))
	scaled, err := term.ThumbnailExact(img, size, cfg.Resizer)
	if err != nil {
		return 0, 0, err
	}

	buf := &bytes.Buffer{}
	enc := sixel.NewEncoder(buf)
	enc.Dither = true
	if err := enc.Encode(scaled); err != nil {
		return 0, 0, errors.New(err)
	}

	placement, err := term.Placement(cfg)
	if err != nil {
		return 0, 0, err
	}
	drawFn := func() error {
		out := placement + term.CursorForward(uint(cfg.X)) + buf.String() + "\n" + term.Finish(cfg)
		if err := term.WriteString(w, out); err != nil {
			return err
		}
		return term.Flush(w)
	}
	if err := logx.TimeIt(drawFn, `image printing`, cfg, `printer`, p.Name(), `size`, size); err != nil {
		return 0, 0, err
	}
	return cols, rows, nil
}

func (p *Printer) cellSize(cfg *term.Config) (width, height uint) {
	cellSize := p.CellSize
	if cellSize == nil {
		cellSize = func() (uint, uint, error) { return term.CellPixelSize(nil) }
	}
	width, height, err := cellSize()
	if logx.IsErr(err, cfg, slog.LevelDebug) || width == 0 || height == 0 {
		return DefaultCellWidth, DefaultCellHeight
	}
	return width, height
}
