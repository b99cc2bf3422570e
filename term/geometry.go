package term

import (
	"math"
	"os"

	xterm "golang.org/x/term"
)

// Fallback terminal size used when the viewport cannot be queried.
const (
	DefaultColumns uint16 = 80
	DefaultRows    uint16 = 24
)

// Geometry reports the size of the terminal viewport in cells.
// Implementations never fail, they fall back to a sane default.
type Geometry interface {
	Size() (columns, rows uint16)
}

var (
	_ Geometry = GeometryFunc(nil)
	_ Geometry = FixedGeometry{}
	_ Geometry = (*TTYGeometry)(nil)
)

// GeometryFunc adapts a function to Geometry.
type GeometryFunc func() (columns, rows uint16)

func (f GeometryFunc) Size() (columns, rows uint16) {
	if f == nil {
		return DefaultColumns, DefaultRows
	}
	return f()
}

// FixedGeometry always reports the same size.
type FixedGeometry struct {
	Columns uint16
	Rows    uint16
}

func (g FixedGeometry) Size() (columns, rows uint16) { return g.Columns, g.Rows }

// TTYGeometry queries the terminal attached to File (os.Stdout if nil)
// on every call since the terminal may be resized in between.
type TTYGeometry struct {
	File *os.File
}

func (g *TTYGeometry) Size() (columns, rows uint16) {
	f := os.Stdout
	if g != nil && g.File != nil {
		f = g.File
	}
	w, h, err := xterm.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultColumns, DefaultRows
	}
	return clampUint16(w), clampUint16(h)
}

// TerminalSize returns the size of the terminal attached to stdout.
func TerminalSize() (columns, rows uint16) { return (&TTYGeometry{}).Size() }

func clampUint16(n int) uint16 {
	switch {
	case n < 0:
		return 0
	case n > math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(n)
}
