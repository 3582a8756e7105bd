package logutils

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogSettings defines the logging output of the process.
type LogSettings struct {
	Enabled         bool   `json:"Enabled"`
	Level           string `json:"Level"`
	File            string `json:"File"`
	MaxSize         int    `json:"MaxSize"`
	MaxBackups      int    `json:"MaxBackups"`
	CompressRotated bool   `json:"CompressRotated"`
	// Console mirrors log lines to stderr when a file is configured.
	Console bool `json:"Console"`
}

var (
	zapLogger     *zap.Logger
	zapLoggerLock sync.RWMutex
)

func init() {
	zapLogger = zap.NewNop()
}

// ZapLogger returns the process wide logger. It is a no-op logger until
// OverrideRootLogWithConfig is called.
func ZapLogger() *zap.Logger {
	zapLoggerLock.RLock()
	defer zapLoggerLock.RUnlock()
	return zapLogger
}

// SetZapLogger replaces the process wide logger.
func SetZapLogger(logger *zap.Logger) {
	zapLoggerLock.Lock()
	defer zapLoggerLock.Unlock()
	zapLogger = logger
}

// OverrideRootLogWithConfig builds a logger from settings and installs it as the
// process wide logger.
func OverrideRootLogWithConfig(settings LogSettings) error {
	if !settings.Enabled {
		SetZapLogger(zap.NewNop())
		return nil
	}

	level, err := lvlFromString(settings.Level)
	if err != nil {
		return err
	}

	logger := zap.New(newCore(settings, level), zap.AddCaller())
	SetZapLogger(logger)
	return nil
}

func newCore(settings LogSettings, level zapcore.Level) zapcore.Core {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if settings.File == "" {
		return zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level)
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		ZapSyncerWithRotation(FileOptions{
			Filename:   settings.File,
			MaxSize:    settings.MaxSize,
			MaxBackups: settings.MaxBackups,
			Compress:   settings.CompressRotated,
		}),
		level,
	)
	if !settings.Console {
		return fileCore
	}
	return zapcore.NewTee(
		fileCore,
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level),
	)
}

// lvlFromString accepts the geth style level names used in configs
// ("ERROR", "WARN", "INFO", "DEBUG", "TRACE").
func lvlFromString(level string) (zapcore.Level, error) {
	switch strings.ToUpper(level) {
	case "", "INFO":
		return zapcore.InfoLevel, nil
	case "ERROR":
		return zapcore.ErrorLevel, nil
	case "WARN":
		return zapcore.WarnLevel, nil
	case "DEBUG", "TRACE":
		return zapcore.DebugLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level: %s", level)
}
