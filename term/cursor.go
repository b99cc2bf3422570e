package term

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/srlehn/blockimg/internal/errors"
)

// DECSC / DECRC, understood by more terminals than the SCO variants
const (
	saveCursorSeq    = "\x1b7"
	restoreCursorSeq = "\x1b8"
)

// ResetSeq resets all SGR attributes.
const ResetSeq = termenv.CSI + termenv.ResetSeq + `m`

// CursorForward moves the cursor n cells to the right, empty for n == 0.
func CursorForward(n uint) string {
	if n == 0 {
		return ``
	}
	return termenv.CSI + fmt.Sprintf(termenv.CursorForwardSeq, n)
}

// Placement returns the sequence moving the cursor to the row the image
// starts in. The column offset X is applied per row by the printers.
func Placement(cfg *Config) (string, error) {
	if cfg == nil {
		return ``, errors.NilParam()
	}
	if err := cfg.Check(); err != nil {
		return ``, err
	}
	var b strings.Builder
	if cfg.RestoreCursor {
		b.WriteString(saveCursorSeq)
	}
	switch {
	case cfg.Absolute:
		b.WriteString(termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, int(cfg.Y)+1, 1))
	case cfg.Y < 0:
		b.WriteString(termenv.CSI + fmt.Sprintf(termenv.CursorPreviousLineSeq, -int(cfg.Y)))
	default:
		b.WriteString(strings.Repeat("\n", int(cfg.Y)))
	}
	return b.String(), nil
}

// Finish returns the sequence written after the image.
func Finish(cfg *Config) string {
	if cfg != nil && cfg.RestoreCursor {
		return restoreCursorSeq
	}
	return ``
}
