package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap sugared logger with a debug flag.
// Without debug only warnings and errors are written.
type Logger struct {
	debug bool
	*zap.SugaredLogger
}

// New creates a new logger writing to stderr when debug is enabled and discarding otherwise.
func New(debug bool) *Logger {
	var writer io.Writer = io.Discard
	if debug {
		writer = os.Stderr
	}
	return NewWithWriter(debug, writer)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(debug bool, w io.Writer) *Logger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return &Logger{
		debug:         debug,
		SugaredLogger: zap.New(core).Sugar(),
	}
}

// Nop returns a logger that drops everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// DebugEnabled reports whether debug logging is enabled.
func (l *Logger) DebugEnabled() bool {
	return l.debug
}

// Named returns a child logger scoped to a component name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{debug: l.debug, SugaredLogger: l.SugaredLogger.Named(name)}
}

// Zap exposes the underlying structured logger.
func (l *Logger) Zap() *zap.Logger {
	return l.Desugar()
}

// Printf logs if debug is enabled
func (l *Logger) Printf(format string, v ...interface{}) {
	l.Infof(format, v...)
}

// Print logs if debug is enabled
func (l *Logger) Print(v ...interface{}) {
	l.Info(v...)
}

// Println logs if debug is enabled
func (l *Logger) Println(v ...interface{}) {
	l.Infoln(v...)
}
