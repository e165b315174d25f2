package logging

import (
	"io"
	"log"
	"os"
)

// Logger is the leveled logger passed to services and screens
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}

// Noop returns a logger that discards everything
func Noop() Logger {
	return noopLogger{}
}

type stdLogger struct {
	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
}

// New returns a logger writing level-prefixed lines to out (stderr if nil)
func New(out io.Writer) Logger {
	if out == nil {
		out = os.Stderr
	}
	flags := log.LstdFlags | log.Lmsgprefix
	return &stdLogger{
		debug: log.New(out, "DEBUG ", flags),
		info:  log.New(out, "INFO  ", flags),
		warn:  log.New(out, "WARN  ", flags),
	}
}

func (l *stdLogger) Debugf(f string, a ...any) { l.debug.Printf(f, a...) }
func (l *stdLogger) Infof(f string, a ...any)  { l.info.Printf(f, a...) }
func (l *stdLogger) Warnf(f string, a ...any)  { l.warn.Printf(f, a...) }
