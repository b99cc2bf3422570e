package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	xterm "golang.org/x/term"

	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/term"
)

// newLogger returns a silent logger unless a log file, a log level or
// debugging is requested. Without a log file the log goes to stderr.
func newLogger(logFile, level string, debug bool) (*logger, error) {
	if len(logFile) == 0 && len(level) == 0 && !debug {
		return &logger{}, nil
	}
	lvl, err := parseLogLevel(level, debug)
	if err != nil {
		return nil, err
	}
	var (
		w      io.Writer = os.Stderr
		closer io.Closer
		color  = isTerminal(os.Stderr)
	)
	if len(logFile) > 0 {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.New(err)
		}
		w, closer, color = f, f, false
	}
	h := tint.NewHandler(w, &tint.Options{
		AddSource:  debug,
		Level:      lvl,
		TimeFormat: time.TimeOnly,
		NoColor:    !color,
	})
	return &logger{handler: h, closer: closer}, nil
}

func parseLogLevel(level string, debug bool) (slog.Level, error) {
	if len(level) == 0 {
		if debug {
			return slog.LevelDebug, nil
		}
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return 0, errors.Mark(term.ErrConfig, errors.Errorf(`log level %q`, level))
	}
	return lvl, nil
}

func isTerminal(f *os.File) bool {
	return f != nil && xterm.IsTerminal(int(f.Fd()))
}
