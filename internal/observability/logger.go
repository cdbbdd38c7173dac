// Package observability builds the zap logger shared by every component.
package observability

import (
	"errors"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/grindlemire/panelcheck/internal/config"
)

// New builds a logger that writes to console in the configured format and,
// when configured, to a rotating JSON log file and a debug-level JSON file.
// The returned close function flushes the logger and closes the files.
func New(cfg config.LoggerConfig, console zapcore.WriteSyncer) (*zap.Logger, func() error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder(cfg.Format), console, level)}
	var files []*lumberjack.Logger

	if cfg.LogFile != "" {
		f := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		files = append(files, f)
		cores = append(cores, zapcore.NewCore(encoder("json"), zapcore.AddSync(f), level))
	}
	if cfg.DebugFile != "" {
		f := &lumberjack.Logger{Filename: cfg.DebugFile, MaxSize: cfg.MaxSize}
		files = append(files, f)
		cores = append(cores, zapcore.NewCore(encoder("json"), zapcore.AddSync(f), zap.DebugLevel))
	}

	name := cfg.ServiceName
	if name == "" {
		name = "panelcheck"
	}
	logger := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)).Named(name)

	closeFn := func() error {
		var errs []error
		if err := logger.Sync(); err != nil && !ignorableSyncError(err) {
			errs = append(errs, err)
		}
		for _, f := range files {
			errs = append(errs, f.Close())
		}
		return errors.Join(errs...)
	}
	return logger, closeFn
}

// NewConsole is New writing console output to stderr.
func NewConsole(cfg config.LoggerConfig) (*zap.Logger, func() error) {
	return New(cfg, zapcore.Lock(os.Stderr))
}

func encoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")

	if format == "console" {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.EncodeName = func(loggerName string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(loggerName + ".")
		}
		return zapcore.NewConsoleEncoder(ec)
	}

	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(ec)
}

// ignorableSyncError reports errors from syncing terminals, which do not
// support fsync on every platform.
func ignorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "sync /dev/std") ||
		strings.Contains(msg, "invalid argument") ||
		strings.Contains(msg, "inappropriate ioctl") ||
		strings.Contains(msg, "operation not supported")
}
