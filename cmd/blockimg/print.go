package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/srlehn/blockimg"
	"github.com/srlehn/blockimg/internal/consts"
	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/internal/logx"
	"github.com/srlehn/blockimg/term"
)

func init() {
	addPrintFlags(printCmd.Flags(), &printFlags)
	rootCmd.AddCommand(printCmd)
}

var printCmd = &cobra.Command{
	Use:   printCmdStr + ` [flags] image...`,
	Short: "print images",
	Long:  `print images to stdout, fit into the terminal unless a size is given`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(l *logger) error { return printImages(cmd.OutOrStdout(), args, l) })
	},
}

var printCmdStr = "print"

type printOptions struct {
	width         uint
	height        uint
	noResize      bool
	transparent   bool
	x             uint16
	y             int16
	absolute      bool
	restoreCursor bool
	colors        string
	printer       string
	resizer       string
}

var printFlags printOptions

func addPrintFlags(fs *pflag.FlagSet, o *printOptions) {
	fs.UintVarP(&o.width, `width`, `w`, 0, `width in cells`)
	fs.UintVarP(&o.height, `height`, `H`, 0, `height in cells`)
	fs.BoolVar(&o.noResize, `no-resize`, false, `print the image pixel by pixel`)
	fs.BoolVarP(&o.transparent, `transparent`, `t`, false, `show the terminal background through transparent pixels`)
	fs.Uint16VarP(&o.x, `offset-x`, `x`, 0, `columns to the right`)
	fs.Int16VarP(&o.y, `offset-y`, `y`, 0, `rows down, negative values move up`)
	fs.BoolVarP(&o.absolute, `absolute`, `a`, false, `x and y are counted from the upper left corner of the screen`)
	fs.BoolVar(&o.restoreCursor, `restore-cursor`, false, `return the cursor to its position before printing`)
	fs.StringVar(&o.colors, `colors`, `auto`, `color mode (auto, truecolor, 256, none)`)
	fs.StringVar(&o.printer, `printer`, consts.PrinterBlockName, `printer (`+strings.Join(term.Printers(), `, `)+`)`)
	fs.StringVar(&o.resizer, `resizer`, resizerDefaultName, `resizer (`+strings.Join(resizerNames(), `, `)+`)`)
}

// config translates the flags into a term.Config
func (o *printOptions) config(l *logger) (*term.Config, error) {
	if o == nil {
		return nil, errors.NilReceiver()
	}
	colors, err := term.ParseColorMode(o.colors)
	if err != nil {
		return nil, err
	}
	rsz, err := resizerByName(o.resizer)
	if err != nil {
		return nil, err
	}
	opts := []term.Option{
		term.SetWidth(o.width),
		term.SetHeight(o.height),
		term.SetResize(!o.noResize),
		term.SetTransparent(o.transparent),
		term.SetOffset(o.x, o.y, o.absolute),
		term.SetRestoreCursor(o.restoreCursor),
		term.SetColors(colors),
		term.SetPrinter(o.printer),
		term.SetResizer(rsz),
	}
	if l != nil && l.handler != nil {
		opts = append(opts, term.SetSLogger(l.handler, true))
	}
	return term.NewConfig(opts...)
}

func printImages(w io.Writer, imgFiles []string, l *logger) error {
	if len(imgFiles) == 0 {
		return errors.New(`no image file given`)
	}
	cfg, err := printFlags.config(l)
	if err != nil {
		return err
	}
	if _, err := term.PrinterByName(cfg.Printer); err != nil {
		return err
	}
	var errs []error
	for _, imgFile := range imgFiles {
		img := term.NewImageFilename(imgFile)
		if err := img.Decode(); err != nil {
			logx.Warn(`skipping image`, l, `file`, imgFile, `error`, err)
			errs = append(errs, err)
			continue
		}
		cols, rows, err := blockimg.Fprint(w, img.Original, cfg)
		if err != nil {
			// output errors affect every following image
			if errors.Is(err, term.ErrWrite) {
				return err
			}
			errs = append(errs, err)
			continue
		}
		logx.Info(`image printed`, l, `file`, imgFile, `format`, img.Format(), `columns`, cols, `rows`, rows)
	}
	return errors.Join(errs...)
}
