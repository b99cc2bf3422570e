package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/blockimg/internal/logx"
)

type provider struct{ logger *slog.Logger }

func (p *provider) Logger() *slog.Logger { return p.logger }

func newProvider(buf *bytes.Buffer, lvl slog.Level) *provider {
	return &provider{logger: slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: lvl}))}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	p := newProvider(&buf, slog.LevelInfo)
	logx.Debug(`hidden`, p)
	logx.Info(`shown`, p, `key`, 1)
	logx.Warn(`warned`, p)
	assert.NotContains(t, buf.String(), `hidden`)
	assert.Contains(t, buf.String(), `msg=shown key=1`)
	assert.Contains(t, buf.String(), `level=WARN msg=warned`)

	// nil providers and loggers are silent
	logx.Info(`x`, nil)
	logx.Info(`x`, &provider{})
}

func TestIsErr(t *testing.T) {
	var buf bytes.Buffer
	p := newProvider(&buf, slog.LevelDebug)
	assert.False(t, logx.IsErr(nil, p, slog.LevelError))
	assert.True(t, logx.IsErr(errors.Join(errors.New(`one`), errors.New(`two`)), p, slog.LevelError))
	assert.Contains(t, buf.String(), `msg=one`)
	assert.Contains(t, buf.String(), `msg=two`)
	assert.True(t, logx.IsErr(errors.New(`three`), nil, slog.LevelError))
}

func TestTimeIt(t *testing.T) {
	var buf bytes.Buffer
	p := newProvider(&buf, slog.LevelDebug)
	errFn := errors.New(`fn failed`)
	err := logx.TimeIt(func() error { return errFn }, `timed`, p, `k`, `v`)
	assert.Same(t, errFn, err)
	assert.Contains(t, buf.String(), `msg=timed duration=`)
	assert.Contains(t, buf.String(), `k=v`)
	assert.Error(t, logx.TimeIt(nil, ``, p))
}
