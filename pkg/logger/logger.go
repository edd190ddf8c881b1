package logger

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/wanderly/wanderly-cli/pkg/config"
)

var logger *log.Logger

func levelFromConfig() log.Level {
	switch strings.ToLower(config.GetString("log.level")) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Init sets up the file logger. The verbose flag forces debug level over
// whatever log.level says.
func Init(verbose bool) {
	level := levelFromConfig()
	if verbose {
		level = log.DebugLevel
	}

	out := os.Stderr
	if logFile := config.GetString("log.file"); logFile != "" {
		if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600); err == nil {
			out = f
		}
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

func ensure() *log.Logger {
	if logger == nil {
		Init(false)
	}
	return logger
}

// Debug logs a debug message
func Debug(msg string, args ...interface{}) {
	ensure().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...interface{}) {
	ensure().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...interface{}) {
	ensure().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...interface{}) {
	ensure().Error(msg, args...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, args ...interface{}) {
	ensure().Fatal(msg, args...)
}

// GetLogger returns the logger instance
func GetLogger() *log.Logger {
	return ensure()
}
