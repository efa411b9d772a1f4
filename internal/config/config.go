// Package config handles the global command line tool configuration: the
// viper keys for the global flags and the shared logger.
package config

import (
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Viper keys for the global flags.
const (
	DebugKey    = "debug"
	RawKey      = "raw"
	LogLevelKey = "log-level"
)

var globalLogger *zap.Logger

// GetLogger returns a process-wide logger that writes to stderr, so
// commands printing structured output to stdout stay parseable by scripts.
// All non-fatal logging is disabled unless the user raises --log-level,
// which means the logger never replaces the need to return meaningful
// errors; use it to add context (typically at the debug level) for the
// operations that led up to an error.
func GetLogger() *zap.Logger {
	if globalLogger != nil {
		return globalLogger
	}
	level := viper.GetInt(LogLevelKey)
	if level < 0 || level > 5 {
		// Ignore an invalid level and log at the highest verbosity so
		// GetLogger never needs to return an error.
		level = 5
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zapLevel(level),
	)
	globalLogger = zap.New(core)
	return globalLogger
}

// zapLevel maps the 0-5 scale used by the --log-level flag onto zap levels
// (0=Fatal, 1=Error, 2=Warn, 3=Info, 4+5=Debug).
func zapLevel(level int) zapcore.Level {
	switch level {
	case 0:
		return zapcore.FatalLevel
	case 1:
		return zapcore.ErrorLevel
	case 2:
		return zapcore.WarnLevel
	case 3:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
