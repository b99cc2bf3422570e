package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/blockimg/internal/logx"
	"github.com/srlehn/blockimg/term"
)

func init() {
	sizeCmd.Flags().UintVarP(&sizeFlags.width, `width`, `w`, 0, `width in cells`)
	sizeCmd.Flags().UintVarP(&sizeFlags.height, `height`, `H`, 0, `height in cells`)
	rootCmd.AddCommand(sizeCmd)
}

var sizeCmd = &cobra.Command{
	Use:   sizeCmdStr + ` [flags] [image...]`,
	Short: "print terminal and image sizes",
	Long:  `print the terminal size in cells and the size images would be printed with`,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(l *logger) error { return printSizes(cmd.OutOrStdout(), args, &term.TTYGeometry{File: os.Stdout}, l) })
	},
}

var (
	sizeCmdStr = "size"
	sizeFlags  printOptions
)

func printSizes(w io.Writer, imgFiles []string, geo term.Geometry, l *logger) error {
	cols, rows := geo.Size()
	logx.Debug(`terminal size`, l, `columns`, cols, `rows`, rows)
	if len(imgFiles) == 0 {
		_, err := fmt.Fprintf(w, "terminal: %dx%d\n", cols, rows)
		return err
	}
	for _, imgFile := range imgFiles {
		img := term.NewImageFilename(imgFile)
		if err := img.Decode(); err != nil {
			return err
		}
		src := img.Original.Bounds().Size()
		size, exact := term.PrintSize(src, sizeFlags.width, sizeFlags.height, geo)
		mode := `fit`
		if exact {
			mode = `exact`
		}
		_, err := fmt.Fprintf(w, "%s: %dx%d px -> %dx%d px, %dx%d cells (%s)\n",
			imgFile, src.X, src.Y, size.X, size.Y, size.X, (size.Y+1)/2, mode)
		if err != nil {
			return err
		}
	}
	return nil
}
