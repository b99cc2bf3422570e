// Package block prints images with half block characters, two pixels per cell.
package block

import (
	"image"
	"io"
	"time"

	"github.com/srlehn/blockimg/internal/consts"
	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/internal/logx"
	"github.com/srlehn/blockimg/term"
)

func init() { term.RegisterPrinter(&Printer{}) }

var _ term.Printer = (*Printer)(nil)

// Printer is the default printer, it works in every terminal with unicode
// support.
type Printer struct{}

func (p *Printer) Name() string { return consts.PrinterBlockName }

// Print writes img without resizing it. The returned size is in cells.
func (p *Printer) Print(w io.Writer, img image.Image, cfg *term.Config) (width, height uint, _ error) {
	if p == nil || w == nil || img == nil || cfg == nil {
		return 0, 0, errors.NilParam()
	}
	start := time.Now()
	mode := cfg.Colors.Resolve(w)
	rows := Rasterize(img, Options{
		Mode:           mode,
		Transparent:    cfg.Transparent,
		AlphaThreshold: cfg.AlphaThreshold,
	})
	if len(rows) == 0 {
		return 0, 0, nil
	}
	logx.Debug(`image rasterization`, cfg, `printer`, p.Name(), `colors`, mode.String(), `duration`, time.Since(start))

	placement, err := term.Placement(cfg)
	if err != nil {
		return 0, 0, err
	}
	drawFn := func() error {
		if err := term.WriteString(w, placement); err != nil {
			return err
		}
		if err := Encode(w, rows, EncodeOptions{Mode: mode, Indent: cfg.X}); err != nil {
			return err
		}
		if err := term.WriteString(w, term.Finish(cfg)); err != nil {
			return err
		}
		return term.Flush(w)
	}
	if err := logx.TimeIt(drawFn, `image printing`, cfg, `printer`, p.Name()); err != nil {
		return 0, 0, err
	}
	return uint(len(rows[0])), uint(len(rows)), nil
}
