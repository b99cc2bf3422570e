package term

import (
	"io"

	"github.com/srlehn/blockimg/internal/errors"
)

// WriteString writes s to w, failures are marked with ErrWrite.
func WriteString(w io.Writer, s string) error {
	if len(s) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, s); err != nil {
		return errors.Mark(ErrWrite, err)
	}
	return nil
}

// Flush flushes buffered writers such as *bufio.Writer.
func Flush(w io.Writer) error {
	f, ok := w.(interface{ Flush() error })
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return errors.Mark(ErrWrite, err)
	}
	return nil
}
