// Package logger provides the shared application logger backed by zap with
// file rotation via lumberjack.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the globally available SugaredLogger. It defaults to a no-op logger
// so packages can log before InitLogger runs (or when embedded as a library).
var Log = zap.NewNop().Sugar()

// InitLogger initializes the global logger writing to a rolling file.
// filePath is the log file path, e.g. "merge2048.log". When debug is true
// the log level is lowered to Debug, which includes per-move records.
func InitLogger(filePath string, debug bool) error {
	// Rotation policy: 10MB per file, 3 backups, 7 days retention
	lj := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   false,
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	ws := zapcore.AddSync(lj)
	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	// Console style is easier to tail than JSON for a desktop game
	encoder := zapcore.NewConsoleEncoder(encCfg)
	core := zapcore.NewCore(encoder, ws, level)

	logger := zap.New(core, zap.AddCaller())
	Log = logger.Sugar()
	return nil
}

// SyncLogger flushes any buffered log entries
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
