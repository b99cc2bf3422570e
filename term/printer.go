package term

import (
	"image"
	"io"
	"sort"
	"sync"

	"github.com/srlehn/blockimg/internal/consts"
	"github.com/srlehn/blockimg/internal/errors"
)

// Printer writes an image that already has its final pixel size to w.
// It returns the size of the printed area in cells.
type Printer interface {
	Name() string
	Print(w io.Writer, img image.Image, cfg *Config) (width, height uint, _ error)
}

var (
	printersMu         sync.RWMutex
	printersRegistered = make(map[string]Printer)
)

// RegisterPrinter makes p available by its name. A later registration
// replaces an earlier one with the same name.
func RegisterPrinter(p Printer) {
	if p == nil {
		return
	}
	printersMu.Lock()
	defer printersMu.Unlock()
	printersRegistered[p.Name()] = p
}

// PrinterByName returns the registered printer, an empty name selects the
// block printer.
func PrinterByName(name string) (Printer, error) {
	if len(name) == 0 {
		name = consts.PrinterBlockName
	}
	printersMu.RLock()
	defer printersMu.RUnlock()
	p, ok := printersRegistered[name]
	if !ok || p == nil {
		return nil, errors.Mark(ErrConfig, errors.Errorf(`%w %q`, consts.ErrNoPrinter, name))
	}
	return p, nil
}

// Printers returns the names of all registered printers, sorted.
func Printers() []string {
	printersMu.RLock()
	defer printersMu.RUnlock()
	names := make([]string, 0, len(printersRegistered))
	for name := range printersRegistered {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
