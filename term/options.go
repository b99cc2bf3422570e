package term

import (
	"log/slog"

	"github.com/srlehn/blockimg/internal/consts"
	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/internal/logx"
)

// Config controls how an image is fit and printed.
type Config struct {
	// Width and Height of the print area in cells, 0 when not given.
	// One cell holds two vertically stacked pixels.
	Width  uint
	Height uint
	// Resize the image before printing.
	Resize bool
	// Transparent lets the terminal background show through transparent
	// pixels. Otherwise they are blended onto a checkerboard.
	Transparent bool
	// AlphaThreshold: pixels with a lower alpha value count as transparent.
	// 0 means not given and counts as 1.
	AlphaThreshold uint8
	// X shifts every printed row to the right, in cells.
	X uint16
	// Y moves the cursor down (up if negative) before printing. With
	// Absolute set it is the row counted from the top of the screen.
	Y int16
	// Absolute places the image at X,Y instead of relative to the cursor.
	Absolute bool
	// RestoreCursor returns the cursor to its original position afterwards.
	RestoreCursor bool
	// Colors is the color encoding, ColorDetect asks the environment
	// (TERM, COLORTERM, NO_COLOR) also when the output is no terminal.
	Colors ColorMode
	// Printer is the name of a registered Printer, empty for the block printer.
	Printer string

	Resizer  Resizer
	Geometry Geometry
	logger   *slog.Logger
}

var _ logx.LoggerProvider = (*Config)(nil)

// DefaultConfig resizes to fit, blends transparency onto a checkerboard
// and detects the color mode.
func DefaultConfig() *Config {
	return &Config{
		Resize:         true,
		AlphaThreshold: 1,
		Colors:         ColorDetect,
		Printer:        consts.PrinterBlockName,
	}
}

// NewConfig applies opts to DefaultConfig.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.SetOptions(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Logger is nil unless set with SetSLogger.
func (c *Config) Logger() *slog.Logger {
	if c == nil {
		return nil
	}
	return c.logger
}

// Check reports combinations that cannot be printed.
func (c *Config) Check() error {
	if c == nil {
		return errors.NilReceiver()
	}
	if c.Absolute && c.Y < 0 {
		return errors.Mark(ErrConfig, errors.New(`absolute offset with negative y`))
	}
	if c.Colors > NoColor {
		return errors.Mark(ErrConfig, errors.Errorf(`color mode %d`, c.Colors))
	}
	return nil
}

// GeometryOrDefault is the configured Geometry or the stdout terminal.
func (c *Config) GeometryOrDefault() Geometry {
	if c == nil || c.Geometry == nil {
		return &TTYGeometry{}
	}
	return c.Geometry
}

// Option changes a Config.
type Option interface {
	ApplyOption(c *Config) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Config) error

func (o OptFunc) ApplyOption(c *Config) error { return o(c) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(c *Config) error { return c.SetOptions([]Option(o)...) }

func (c *Config) SetOptions(opts ...Option) error {
	if c == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(c); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func SetWidth(w uint) Option {
	return OptFunc(func(c *Config) error { c.Width = w; return nil })
}
func SetHeight(h uint) Option {
	return OptFunc(func(c *Config) error { c.Height = h; return nil })
}
func SetResize(resize bool) Option {
	return OptFunc(func(c *Config) error { c.Resize = resize; return nil })
}
func SetTransparent(transparent bool) Option {
	return OptFunc(func(c *Config) error { c.Transparent = transparent; return nil })
}
func SetAlphaThreshold(alpha uint8) Option {
	return OptFunc(func(c *Config) error { c.AlphaThreshold = alpha; return nil })
}
func SetOffset(x uint16, y int16, absolute bool) Option {
	return OptFunc(func(c *Config) error {
		if absolute && y < 0 {
			return errors.Mark(ErrConfig, errors.New(`absolute offset with negative y`))
		}
		c.X, c.Y, c.Absolute = x, y, absolute
		return nil
	})
}
func SetRestoreCursor(restore bool) Option {
	return OptFunc(func(c *Config) error { c.RestoreCursor = restore; return nil })
}
func SetColors(mode ColorMode) Option {
	return OptFunc(func(c *Config) error {
		if mode > NoColor {
			return errors.Mark(ErrConfig, errors.Errorf(`color mode %d`, mode))
		}
		c.Colors = mode
		return nil
	})
}
func SetPrinter(name string) Option {
	return OptFunc(func(c *Config) error { c.Printer = name; return nil })
}
func SetResizer(rsz Resizer) Option {
	return OptFunc(func(c *Config) error { c.Resizer = rsz; return nil })
}
func SetGeometry(geo Geometry) Option {
	return OptFunc(func(c *Config) error { c.Geometry = geo; return nil })
}
func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(c *Config) error {
		if enable {
			if h == nil {
				c.logger = slog.Default()
			} else {
				c.logger = slog.New(h)
			}
		} else {
			c.logger = nil
		}
		return nil
	})
}
