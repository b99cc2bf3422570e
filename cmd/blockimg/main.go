package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/srlehn/blockimg/internal/errors"
	"github.com/srlehn/blockimg/internal/logx"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]) + ` [flags] image...`,
	Short:            "blockimg prints images with half block characters",
	Long:             "blockimg prints images with half block characters, two pixels per terminal cell",
	SilenceUsage:     true,
	SilenceErrors:    true,
	TraverseChildren: true,
	Args:             cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(1)
		}
		run(func(l *logger) error { return printImages(cmd.OutOrStdout(), args, l) })
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	pf.BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	pf.StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
	pf.StringVar(&logLevelFlag, `log-level`, ``, `log level (debug, info, warn, error)`)
	addPrintFlags(rootCmd.Flags(), &printFlags)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !silentFlag {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var (
	debugFlag    bool
	silentFlag   bool
	logFileFlag  string
	logLevelFlag string
)

// logger carries the slog handler chosen by the logging flags
type logger struct {
	handler slog.Handler
	closer  io.Closer
}

var _ logx.LoggerProvider = (*logger)(nil)

func (l *logger) Logger() *slog.Logger {
	if l == nil || l.handler == nil {
		return nil
	}
	return slog.New(l.handler)
}

func (l *logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func run(fn func(l *logger) error) {
	var exitCode int
	var l *logger
	defer func() {
		// the terminal might be left in raw mode by the view command
		if r := recover(); r != nil {
			exitCode = 1
			if !silentFlag {
				if stackFramer, ok := r.(interface{ ErrorStack() string }); ok {
					fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
				} else {
					fmt.Fprintln(os.Stderr, r)
					debug.PrintStack()
				}
			}
		}
		_ = l.Close()
		os.Exit(exitCode)
	}()
	var err error
	if fn == nil {
		err = errors.NilParam()
	} else {
		l, err = newLogger(logFileFlag, logLevelFlag, debugFlag)
		if err == nil {
			err = fn(l)
		}
	}
	if err != nil {
		logx.IsErr(err, l, slog.LevelError)
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, err.Error())
			}
		}
	}
}
