//go:build linux || darwin

package app

import (
	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"github.com/pranshuparmar/memtop/internal/poll"
)

// levelLogger forwards warnings always and everything else only in verbose
// mode.
type levelLogger struct {
	log     *logger.Logger
	verbose bool
}

func newLogger(verbose bool) poll.Logger {
	return &levelLogger{
		log:     logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "memtop")),
		verbose: verbose,
	}
}

func (l *levelLogger) Infoln(args ...any) {
	if l.verbose {
		l.log.Infoln(args...)
	}
}

func (l *levelLogger) Debugln(args ...any) {
	if l.verbose {
		l.log.Debugln(args...)
	}
}

func (l *levelLogger) Warn(args ...any) {
	l.log.Warn(args...)
}
