package block

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/term"
)

// EncodeOptions for Encode.
type EncodeOptions struct {
	// Mode must be resolved, ColorDetect is treated like Truecolor.
	Mode term.ColorMode
	// Indent shifts every row to the right, in cells.
	Indent uint16
}

// Encode writes rows as SGR colored text, one line per row. Every line
// ends with an attribute reset. The first write error is returned, marked
// with term.ErrWrite.
func Encode(w io.Writer, rows [][]Cell, opts EncodeOptions) error {
	if w == nil {
		return errors.NilParam()
	}
	var b strings.Builder
	for _, row := range rows {
		b.Reset()
		encodeRow(&b, row, opts)
		if err := term.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func encodeRow(b *strings.Builder, row []Cell, opts EncodeOptions) {
	b.WriteString(term.CursorForward(uint(opts.Indent)))
	var (
		p    pen
		skip uint
	)
	for _, c := range row {
		if c.Skip() {
			skip++
			continue
		}
		b.WriteString(term.CursorForward(skip))
		skip = 0
		if opts.Mode != term.NoColor {
			b.WriteString(p.change(c, opts.Mode))
		}
		b.WriteRune(c.Rune)
	}
	b.WriteString(term.ResetSeq)
	b.WriteString("\r\n")
}

// pen tracks the colors in effect so that only changes are emitted
type pen struct {
	fg, bg Color
}

func (p *pen) change(c Cell, mode term.ColorMode) string {
	var params []string
	if c.FG != p.fg {
		params = append(params, sgrColor(c.FG, false, mode))
	}
	if c.BG != p.bg {
		params = append(params, sgrColor(c.BG, true, mode))
	}
	p.fg, p.bg = c.FG, c.BG
	if len(params) == 0 {
		return ``
	}
	return termenv.CSI + strings.Join(params, `;`) + `m`
}

func sgrColor(c Color, bg bool, mode term.ColorMode) string {
	if !c.Set {
		if bg {
			return `49`
		}
		return `39`
	}
	if mode == term.Indexed {
		return c.ANSI256().Sequence(bg)
	}
	prefix := termenv.Foreground
	if bg {
		prefix = termenv.Background
	}
	return fmt.Sprintf(`%s;2;%d;%d;%d`, prefix, c.R, c.G, c.B)
}
