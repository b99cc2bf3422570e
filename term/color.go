package term

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/srlehn/blockimg/internal/errors"
)

// ColorMode selects how colors are encoded. It is resolved once per
// print call and passed down explicitly.
type ColorMode uint8

const (
	// ColorDetect resolves to one of the other modes from the environment.
	ColorDetect ColorMode = iota
	// Truecolor uses 24 bit SGR sequences.
	Truecolor
	// Indexed uses the 256 color palette.
	Indexed
	// NoColor emits no color sequences at all.
	NoColor
)

func (m ColorMode) String() string {
	switch m {
	case ColorDetect:
		return `auto`
	case Truecolor:
		return `truecolor`
	case Indexed:
		return `256`
	case NoColor:
		return `none`
	default:
		return `unknown`
	}
}

// ParseColorMode accepts the names printed by ColorMode.String and a few aliases.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ``, `auto`, `detect`:
		return ColorDetect, nil
	case `truecolor`, `24bit`, `rgb`:
		return Truecolor, nil
	case `256`, `indexed`, `ansi256`:
		return Indexed, nil
	case `none`, `no`, `off`, `ascii`:
		return NoColor, nil
	}
	return ColorDetect, errors.Mark(ErrConfig, errors.Errorf(`unknown color mode %q`, s))
}

// Resolve returns m unless it is ColorDetect, in which case the mode is
// derived from the environment of w.
func (m ColorMode) Resolve(w io.Writer) ColorMode {
	if m != ColorDetect {
		return m
	}
	return DetectColorMode(w)
}

// DetectColorMode inspects the environment (TERM, COLORTERM, NO_COLOR,
// CLICOLOR_FORCE). w is not required to be a terminal, piped output
// (less -R, files) is colored for the terminal the environment describes.
// TERM=dumb or an unset TERM without COLORTERM gives NoColor.
func DetectColorMode(w io.Writer) ColorMode {
	if w == nil {
		return NoColor
	}
	return ColorModeFromProfile(termenv.NewOutput(w, termenv.WithTTY(true)).EnvColorProfile())
}

// ColorModeFromProfile maps a termenv profile, the 16 color profile is
// served by the 256 color palette.
func ColorModeFromProfile(p termenv.Profile) ColorMode {
	switch p {
	case termenv.TrueColor:
		return Truecolor
	case termenv.ANSI256, termenv.ANSI:
		return Indexed
	default:
		return NoColor
	}
}

// Profile maps the mode onto the termenv profile used for color conversion.
func (m ColorMode) Profile() termenv.Profile {
	switch m {
	case Truecolor:
		return termenv.TrueColor
	case Indexed:
		return termenv.ANSI256
	default:
		return termenv.Ascii
	}
}
