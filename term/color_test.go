package term_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/srlehn/blockimg/term"
)

func TestParseColorMode(t *testing.T) {
	tests := map[string]term.ColorMode{
		``:          term.ColorDetect,
		`auto`:      term.ColorDetect,
		`truecolor`: term.Truecolor,
		`24bit`:     term.Truecolor,
		`256`:       term.Indexed,
		` Indexed `: term.Indexed,
		`none`:      term.NoColor,
		`ascii`:     term.NoColor,
	}
	for s, want := range tests {
		got, err := term.ParseColorMode(s)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, want, got, s)
	}
	_, err := term.ParseColorMode(`16`)
	assert.ErrorIs(t, err, term.ErrConfig)
}

func TestColorModeString(t *testing.T) {
	for _, m := range []term.ColorMode{term.ColorDetect, term.Truecolor, term.Indexed, term.NoColor} {
		got, err := term.ParseColorMode(m.String())
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, m, got)
	}
}

func setColorEnv(t *testing.T, termName, colorTerm string) {
	t.Helper()
	for _, k := range []string{`NO_COLOR`, `CLICOLOR`, `CLICOLOR_FORCE`, `GOOGLE_CLOUD_SHELL`, `TERM_PROGRAM`} {
		t.Setenv(k, ``)
	}
	t.Setenv(`TERM`, termName)
	t.Setenv(`COLORTERM`, colorTerm)
}

func TestColorModeResolve(t *testing.T) {
	setColorEnv(t, `dumb`, ``)
	var buf bytes.Buffer
	assert.Equal(t, term.Truecolor, term.Truecolor.Resolve(&buf))
	assert.Equal(t, term.Indexed, term.Indexed.Resolve(&buf))
	assert.Equal(t, term.NoColor, term.DetectColorMode(nil))
	assert.Equal(t, term.NoColor, term.ColorDetect.Resolve(&buf))
}

func TestDetectColorModePiped(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		termName, colorTerm string
		want                term.ColorMode
	}{
		{`xterm-256color`, `truecolor`, term.Truecolor},
		{`xterm`, `24bit`, term.Truecolor},
		{`xterm-256color`, ``, term.Indexed},
		{`xterm-color`, ``, term.Indexed},
		{`dumb`, ``, term.NoColor},
		{``, ``, term.NoColor},
	}
	for _, tt := range tests {
		setColorEnv(t, tt.termName, tt.colorTerm)
		assert.Equal(t, tt.want, term.DetectColorMode(&buf), tt.termName+` `+tt.colorTerm)
	}

	setColorEnv(t, `xterm-256color`, `truecolor`)
	t.Setenv(`NO_COLOR`, `1`)
	assert.Equal(t, term.NoColor, term.DetectColorMode(&buf))
}

func TestColorModeProfile(t *testing.T) {
	assert.Equal(t, termenv.TrueColor, term.Truecolor.Profile())
	assert.Equal(t, termenv.ANSI256, term.Indexed.Profile())
	assert.Equal(t, termenv.Ascii, term.NoColor.Profile())
}
