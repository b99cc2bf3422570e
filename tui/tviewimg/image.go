// Package tviewimg provides a tview primitive showing a half block image.
package tviewimg

import (
	"image"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/srlehn/blockimg/internal/logx"
	"github.com/srlehn/blockimg/term"
	"github.com/srlehn/blockimg/tui/tcellimg"
)

var _ tview.Primitive = (*Image)(nil)

// Image draws its image into the inner rectangle of the box, fit to keep
// the aspect ratio.
type Image struct {
	*tview.Box
	img    *tcellimg.Image
	logger logx.LoggerProvider
}

func NewImage(img image.Image, rsz term.Resizer) (*Image, error) {
	m, err := tcellimg.NewImage(img, rsz)
	if err != nil {
		return nil, err
	}
	return &Image{Box: tview.NewBox(), img: m}, nil
}

// SetTransparent lets the box background show through transparent pixels.
func (i *Image) SetTransparent(transparent bool) *Image {
	i.img.Options.Transparent = transparent
	return i
}

// SetLogger sets where drawing errors are logged.
func (i *Image) SetLogger(l logx.LoggerProvider) *Image {
	i.logger = l
	return i
}

func (i *Image) Draw(screen tcell.Screen) {
	i.Box.DrawForSubclass(screen, i)
	x, y, w, h := i.GetInnerRect()
	err := i.img.Draw(screen, image.Rect(x, y, x+w, y+h))
	_ = logx.IsErr(err, i.logger, slog.LevelError)
}
