package consts

import (
	"errors"
)

var (
	ErrNilImage  = errors.New(`nil image`)
	ErrDecode    = errors.New(`image decoding failed`)
	ErrWrite     = errors.New(`writing to output failed`)
	ErrConfig    = errors.New(`invalid configuration`)
	ErrNoPrinter = errors.New(`unknown printer`)
	ErrNoResizer = errors.New(`unknown resizer`)
)

const (
	PrinterBlockName = `block`
	PrinterSixelName = `sixel`
)
