// Package bubbleteaimg provides a bubbletea model showing a half block image.
package bubbleteaimg

import (
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/srlehn/blockimg/drawers/block"
	"github.com/srlehn/blockimg/internal/consts"
	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/term"
)

var _ tea.Model = (*Image)(nil)

// KeyQuit ends the program.
var KeyQuit = key.NewBinding(
	key.WithKeys(`q`, `esc`, `ctrl+c`),
	key.WithHelp(`q`, `quit`),
)

// Image fits its image into the window minus the frame of Style.
type Image struct {
	img   image.Image
	rsz   term.Resizer
	mode  term.ColorMode
	Style lipgloss.Style
	// Transparent lets the terminal background show through.
	Transparent bool

	window image.Point
	view   string
	err    error
}

// NewImage uses the color profile detected by lipgloss.
func NewImage(img image.Image, rsz term.Resizer) (*Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	return &Image{
		img:   img,
		rsz:   rsz,
		mode:  term.ColorModeFromProfile(lipgloss.ColorProfile()),
		Style: lipgloss.NewStyle(),
	}, nil
}

// SetColorMode overrides the detected color mode.
func (m *Image) SetColorMode(mode term.ColorMode) *Image {
	m.mode = mode
	return m
}

func (m *Image) Init() tea.Cmd { return nil }

func (m *Image) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.window = image.Pt(msg.Width, msg.Height)
		m.view, m.err = m.render()
	case tea.KeyMsg:
		if key.Matches(msg, KeyQuit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Image) View() string {
	if m.err != nil {
		return m.err.Error()
	}
	return m.view
}

// Err is the error of the last rendering.
func (m *Image) Err() error { return m.err }

func (m *Image) render() (string, error) {
	fw, fh := m.Style.GetFrameSize()
	cols, rows := m.window.X-fw, m.window.Y-fh
	if cols <= 0 || rows <= 0 {
		return ``, nil
	}
	geo := term.FixedGeometry{Columns: uint16(cols), Rows: uint16(rows + 1)}
	fitted, err := term.FitImage(m.img, 0, 0, geo, m.rsz)
	if err != nil {
		return ``, err
	}
	mode := m.mode
	if mode == term.ColorDetect {
		mode = term.Truecolor
	}
	cells := block.Rasterize(fitted, block.Options{
		Mode:           mode,
		Transparent:    m.Transparent,
		AlphaThreshold: 1,
	})
	var b strings.Builder
	if err := block.Encode(&b, cells, block.EncodeOptions{Mode: mode}); err != nil {
		return ``, err
	}
	// bubbletea splits the view at line feeds
	v := strings.TrimSuffix(strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	return m.Style.Render(v), nil
}
