// Package blockimg prints images in the terminal with half block
// characters, fitting two pixel rows into one row of cells.
//
//	cfg := term.DefaultConfig()
//	cfg.Width = 40
//	_, _, err := blockimg.PrintFile(`img.png`, cfg)
package blockimg

import (
	"image"
	"io"
	"os"

	// registered decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	// registered printers
	_ "github.com/srlehn/blockimg/drawers/block"
	_ "github.com/srlehn/blockimg/drawers/sixel"

	"github.com/srlehn/blockimg/internal/consts"
	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/internal/logx"
	"github.com/srlehn/blockimg/resize/rdefault"
	"github.com/srlehn/blockimg/term"
)

// chosen defaults
var resizer term.Resizer = &rdefault.Resizer{}

// Print fits img into the area described by cfg and prints it to stdout.
// It returns the printed size in cells. A nil cfg uses term.DefaultConfig.
func Print(img image.Image, cfg *term.Config) (width, height uint, _ error) {
	return Fprint(os.Stdout, img, cfg)
}

// Fprint is Print with an arbitrary output.
func Fprint(w io.Writer, img image.Image, cfg *term.Config) (width, height uint, _ error) {
	if w == nil || img == nil {
		return 0, 0, errors.NilParam()
	}
	if cfg == nil {
		cfg = term.DefaultConfig()
	}
	if err := cfg.Check(); err != nil {
		return 0, 0, err
	}
	pr, err := term.PrinterByName(cfg.Printer)
	if err != nil {
		return 0, 0, err
	}
	im, err := term.Underlying(img)
	if err != nil {
		return 0, 0, err
	}
	if cfg.Resizer == nil {
		// the printer might resample too (sixel)
		c := *cfg
		c.Resizer = resizer
		cfg = &c
	}
	if cfg.Resize {
		im, err = term.FitImage(im, cfg.Width, cfg.Height, cfg.GeometryOrDefault(), cfg.Resizer)
		if err != nil {
			return 0, 0, err
		}
		logx.Debug(`image fit`, cfg, `source`, img.Bounds().Size(), `result`, im.Bounds().Size())
	}
	return pr.Print(w, im, cfg)
}

// PrintFile decodes the file and prints it to stdout. Decoding failures
// are marked with term.ErrDecode.
func PrintFile(fileName string, cfg *term.Config) (width, height uint, _ error) {
	img := term.NewImageFilename(fileName)
	if err := img.Decode(); err != nil {
		return 0, 0, err
	}
	return Print(img.Original, cfg)
}

// PrintBytes - for use with "embed", etc.
func PrintBytes(imgBytes []byte, cfg *term.Config) (width, height uint, _ error) {
	if len(imgBytes) == 0 {
		return 0, 0, errors.Mark(term.ErrDecode, errors.New(`no image data`))
	}
	img := term.NewImageBytes(imgBytes)
	if err := img.Decode(); err != nil {
		return 0, 0, err
	}
	return Print(img.Original, cfg)
}

// Resize fits img into widthCells x heightCells (0 for not given) with
// the stdout terminal as the bounds when neither is given.
func Resize(img image.Image, widthCells, heightCells uint) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	return term.FitImage(img, widthCells, heightCells, &term.TTYGeometry{}, resizer)
}

// TerminalSize returns columns and rows of the stdout terminal or 80x24.
func TerminalSize() (columns, rows uint16) { return term.TerminalSize() }
