// Package common provides the logrus configuration helpers shared by the
// service entrypoint: level/format selection driven by ServerConfig.Debug,
// layered on top of the OutputSplitter-backed global Logger.
package common

import (
	"time"

	"github.com/sirupsen/logrus"
)

// ServiceVersion is stamped into every log entry. There is no separate
// version package in this service; it's a single binary released as one
// unit.
const ServiceVersion = "dev"

// LogLevel represents standard logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggerConfig configures the process-wide logger.
type LoggerConfig struct {
	Level      LogLevel
	Format     string // "json" or "text"
	TimeFormat string
}

// DefaultLoggerConfig returns the defaults used outside of debug mode.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:      LogLevelInfo,
		Format:     "json",
		TimeFormat: time.RFC3339,
	}
}

// NewLogger applies config to the shared Logger instance and returns it.
func NewLogger(config LoggerConfig) *logrus.Logger {
	switch config.Level {
	case LogLevelDebug:
		Logger.SetLevel(logrus.DebugLevel)
	case LogLevelWarn:
		Logger.SetLevel(logrus.WarnLevel)
	case LogLevelError:
		Logger.SetLevel(logrus.ErrorLevel)
	default:
		Logger.SetLevel(logrus.InfoLevel)
	}

	if config.Format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: config.TimeFormat})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{TimestampFormat: config.TimeFormat, FullTimestamp: true})
	}

	return Logger
}
