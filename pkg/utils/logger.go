package utils

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// LogConfig represents logger configuration
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"` // json or text
	Output string `json:"output"` // stdout, stderr, or file path
}

// LogFields represents structured log fields
type LogFields map[string]interface{}

// Logger interface for abstraction
type Logger interface {
	Debug(msg string, fields ...LogFields)
	Info(msg string, fields ...LogFields)
	Warn(msg string, fields ...LogFields)
	Error(msg string, err error, fields ...LogFields)
	Fatal(msg string, err error, fields ...LogFields)
	WithFields(fields LogFields) Logger
}

// AppLogger implements Logger using logrus
type AppLogger struct {
	entry *logrus.Entry
}

// InitLogger initializes the global logger
func InitLogger(config *LogConfig) error {
	logger = logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
		logger.Warnf("Invalid log level '%s', defaulting to info", config.Level)
	}
	logger.SetLevel(level)

	switch strings.ToLower(config.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			ForceColors:     false,
		})
	default:
		return fmt.Errorf("unsupported log format: %s", config.Format)
	}

	switch strings.ToLower(config.Output) {
	case "stdout", "":
		logger.SetOutput(os.Stdout)
	case "stderr":
		logger.SetOutput(os.Stderr)
	default:
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(file)
	}

	return nil
}

// GetLogger returns a new AppLogger instance
func GetLogger() Logger {
	if logger == nil {
		log.Println("Warning: Logger not initialized, using fallback")
		InitLogger(&LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		})
	}

	return &AppLogger{
		entry: logger.WithFields(logrus.Fields{}),
	}
}

// Underlying exposes the raw logrus logger for middleware that needs it.
func Underlying() *logrus.Logger {
	if logger == nil {
		GetLogger()
	}
	return logger
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...LogFields) {
	entry := l.entry
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields[0]))
	}
	entry.Debug(msg)
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...LogFields) {
	entry := l.entry
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields[0]))
	}
	entry.Info(msg)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...LogFields) {
	entry := l.entry
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields[0]))
	}
	entry.Warn(msg)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...LogFields) {
	entry := l.entry
	if err != nil {
		entry = entry.WithError(err)
	}
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields[0]))
	}
	entry.Error(msg)
}

// Fatal logs a fatal message and exits
func (l *AppLogger) Fatal(msg string, err error, fields ...LogFields) {
	entry := l.entry
	if err != nil {
		entry = entry.WithError(err)
	}
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields[0]))
	}
	entry.Fatal(msg)
}

// WithFields returns a logger with additional fields
func (l *AppLogger) WithFields(fields LogFields) Logger {
	return &AppLogger{
		entry: l.entry.WithFields(logrus.Fields(fields)),
	}
}
