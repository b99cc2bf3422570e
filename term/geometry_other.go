//go:build !unix

package term

import (
	"os"

	"github.com/srlehn/blockimg/internal/errors"
)

func CellPixelSize(f *os.File) (width, height uint, _ error) {
	return 0, 0, errors.New(errors.ErrUnsupported)
}
