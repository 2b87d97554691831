// Package logging builds the zap logger shared by every abrank command:
// a human console core on stderr plus an optional rotated JSON file core.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// File enables the JSON file core; empty disables it.
	File    string
	Quiet   bool // console at warn and above
	Verbose bool // console at debug and above
	RunID   string
	Command string
}

// New returns a logger writing to console (usually stderr). The caller
// owns Sync.
func New(o Options, console io.Writer) *zap.Logger {
	consoleLevel := zap.InfoLevel
	switch {
	case o.Quiet:
		consoleLevel = zap.WarnLevel
	case o.Verbose:
		consoleLevel = zap.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(console)), consoleLevel),
	}

	if o.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.TimeKey = "timestamp"
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		fileCfg.MessageKey = "message"
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(rotator), zap.DebugLevel))
	}

	l := zap.New(zapcore.NewTee(cores...))
	if o.Command != "" {
		l = l.With(zap.String("cmd", o.Command))
	}
	if o.RunID != "" {
		l = l.With(zap.String("run_id", o.RunID))
	}
	return l
}

// Nop discards everything.
func Nop() *zap.Logger { return zap.NewNop() }
