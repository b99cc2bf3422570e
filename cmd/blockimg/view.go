package main

import (
	"image"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	ui "github.com/gizak/termui/v3"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"

	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/internal/logx"
	"github.com/srlehn/blockimg/term"
	"github.com/srlehn/blockimg/tui/bubbleteaimg"
	"github.com/srlehn/blockimg/tui/tcellimg"
	"github.com/srlehn/blockimg/tui/termuiimg"
	"github.com/srlehn/blockimg/tui/tviewimg"
)

func init() {
	viewCmd.Flags().BoolVarP(&viewFlags.transparent, `transparent`, `t`, false, `show the terminal background through transparent pixels`)
	viewCmd.Flags().StringVar(&viewFlags.resizer, `resizer`, resizerDefaultName, `resizer (`+strings.Join(resizerNames(), `, `)+`)`)
	viewCmd.Flags().StringVar(&viewUIFlag, `ui`, `tcell`, `toolkit (`+strings.Join(viewerNames(), `, `)+`)`)
	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   viewCmdStr + ` [flags] image`,
	Short: "show an image full screen",
	Long:  `show an image full screen, quit with q, Esc or Ctrl-C`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(l *logger) error { return view(args[0], viewUIFlag, l) })
	},
}

var (
	viewCmdStr = "view"
	viewFlags  printOptions
	viewUIFlag string
)

type viewer func(img image.Image, rsz term.Resizer, l *logger) error

var viewers = map[string]viewer{
	`tcell`:     viewTCell,
	`tview`:     viewTView,
	`termui`:    viewTermUI,
	`bubbletea`: viewBubbleTea,
}

func viewerNames() []string {
	names := make([]string, 0, len(viewers))
	for name := range viewers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func view(imgFile, toolkit string, l *logger) error {
	vw, ok := viewers[toolkit]
	if !ok {
		return errors.Mark(term.ErrConfig, errors.Errorf(`unknown toolkit %q`, toolkit))
	}
	img := term.NewImageFilename(imgFile)
	if err := img.Decode(); err != nil {
		return err
	}
	rsz, err := resizerByName(viewFlags.resizer)
	if err != nil {
		return err
	}
	logx.Debug(`viewing image`, l, `file`, imgFile, `ui`, toolkit)
	return vw(img.Original, rsz, l)
}

func viewTCell(img image.Image, rsz term.Resizer, l *logger) error {
	timg, err := tcellimg.NewImage(img, rsz)
	if err != nil {
		return err
	}
	timg.Options.Transparent = viewFlags.transparent

	scr, err := tcell.NewScreen()
	if err != nil {
		return errors.New(err)
	}
	if err := scr.Init(); err != nil {
		return errors.New(err)
	}
	defer scr.Fini()

	draw := func() error {
		scr.Clear()
		w, h := scr.Size()
		if err := timg.Draw(scr, image.Rect(0, 0, w, h)); err != nil {
			return err
		}
		scr.Show()
		logx.Debug(`image drawn`, l, `columns`, w, `rows`, h)
		return nil
	}
	for {
		switch ev := scr.PollEvent().(type) {
		case nil:
			// screen finalized
			return nil
		case *tcell.EventResize:
			scr.Sync()
			if err := draw(); err != nil {
				return err
			}
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return nil
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func viewTView(img image.Image, rsz term.Resizer, l *logger) error {
	timg, err := tviewimg.NewImage(img, rsz)
	if err != nil {
		return err
	}
	timg.SetTransparent(viewFlags.transparent).SetLogger(l)
	timg.SetBorder(true).SetTitle(` ` + viewCmdStr + ` `)

	app := tview.NewApplication().SetRoot(timg, true)
	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if isQuitKey(ev) {
			app.Stop()
			return nil
		}
		return ev
	})
	if err := app.Run(); err != nil {
		return errors.New(err)
	}
	return nil
}

func viewTermUI(img image.Image, rsz term.Resizer, l *logger) error {
	timg, err := termuiimg.NewImage(img, rsz)
	if err != nil {
		return err
	}
	timg.Transparent = viewFlags.transparent
	timg.Title = ` ` + viewCmdStr + ` `

	if err := ui.Init(); err != nil {
		return errors.New(err)
	}
	defer ui.Close()

	render := func(w, h int) error {
		timg.SetRect(0, 0, w, h)
		ui.Clear()
		ui.Render(timg)
		logx.Debug(`image drawn`, l, `columns`, w, `rows`, h)
		return timg.Err
	}
	if err := render(ui.TerminalDimensions()); err != nil {
		return err
	}
	for ev := range ui.PollEvents() {
		switch ev.ID {
		case `q`, `Q`, `<Escape>`, `<C-c>`:
			return nil
		case `<Resize>`:
			sz, ok := ev.Payload.(ui.Resize)
			if !ok {
				continue
			}
			if err := render(sz.Width, sz.Height); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewBubbleTea(img image.Image, rsz term.Resizer, l *logger) error {
	m, err := bubbleteaimg.NewImage(img, rsz)
	if err != nil {
		return err
	}
	m.Transparent = viewFlags.transparent
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return errors.New(err)
	}
	if err := m.Err(); err != nil {
		return err
	}
	logx.Debug(`bubbletea program finished`, l)
	return nil
}
