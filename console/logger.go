package console

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Writer adapts a console function to zapcore.WriteSyncer.
// Each write is one encoded entry; the trailing newline is dropped.
type Writer struct {
	emit func(args ...any)
}

func (w Writer) Write(p []byte) (int, error) {
	if w.emit != nil {
		w.emit(strings.TrimRight(string(p), "\n"))
	}
	return len(p), nil
}

func (w Writer) Sync() error { return nil }

// NewLogger returns a zap logger that writes to the browser console.
// Entries at warn and above go to console.error so they show up in red.
func NewLogger(level zapcore.Level) *zap.Logger {
	return newLogger(level, Log, Error)
}

func newLogger(level zapcore.Level, out, errOut func(args ...any)) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	// the console stamps entries itself
	encCfg.TimeKey = ""
	enc := zapcore.NewConsoleEncoder(encCfg)

	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= level && l < zapcore.WarnLevel
	})
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= level && l >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(enc, Writer{emit: out}, low),
		zapcore.NewCore(enc.Clone(), Writer{emit: errOut}, high),
	)
	return zap.New(core)
}
