package main

import (
	"sort"

	"github.com/srlehn/blockimg/internal/consts"
	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/resize/bild"
	"github.com/srlehn/blockimg/resize/caire"
	"github.com/srlehn/blockimg/resize/gift"
	"github.com/srlehn/blockimg/resize/imaging"
	"github.com/srlehn/blockimg/resize/nfnt"
	"github.com/srlehn/blockimg/resize/rdefault"
	"github.com/srlehn/blockimg/resize/rez"
	"github.com/srlehn/blockimg/resize/xdraw"
	"github.com/srlehn/blockimg/term"
)

const resizerDefaultName = `default`

var resizers = map[string]func() term.Resizer{
	resizerDefaultName: func() term.Resizer { return &rdefault.Resizer{} },
	`xdraw`:            xdraw.CatmullRom,
	`nearest`:          xdraw.NearestNeighbor,
	`nfnt`:             func() term.Resizer { return &nfnt.Resizer{} },
	`imaging`:          func() term.Resizer { return &imaging.Resizer{} },
	`gift`:             func() term.Resizer { return &gift.Resizer{} },
	`bild`:             func() term.Resizer { return &bild.Resizer{} },
	`rez`:              func() term.Resizer { return &rez.Resizer{} },
	// content aware, only useful when both width and height are given
	`caire`: func() term.Resizer { return &caire.Resizer{} },
}

func resizerNames() []string {
	names := make([]string, 0, len(resizers))
	for name := range resizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resizerByName(name string) (term.Resizer, error) {
	if len(name) == 0 {
		name = resizerDefaultName
	}
	newResizer, ok := resizers[name]
	if !ok {
		return nil, errors.Mark(term.ErrConfig, errors.Errorf(`%w %q`, consts.ErrNoResizer, name))
	}
	return newResizer(), nil
}
