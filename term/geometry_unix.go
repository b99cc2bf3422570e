//go:build unix

package term

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/srlehn/blockimg/internal/errors"
)

// CellPixelSize returns the size of one cell in pixels as reported by the
// TIOCGWINSZ ioctl. Many terminals leave the pixel fields zeroed.
func CellPixelSize(f *os.File) (width, height uint, _ error) {
	if f == nil {
		f = os.Stdout
	}
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, errors.New(err)
	}
	if ws.Col == 0 || ws.Row == 0 || ws.Xpixel == 0 || ws.Ypixel == 0 {
		return 0, 0, errors.New(`terminal does not report its pixel size`)
	}
	return uint(ws.Xpixel) / uint(ws.Col), uint(ws.Ypixel) / uint(ws.Row), nil
}
