// Package log writes diagnostics to a daily file through logrus. The terminal belongs to the TUI, so nothing is printed.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/reelctl/reelctl/filesystem"
	"github.com/reelctl/reelctl/key"
	"github.com/reelctl/reelctl/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	logger  = discarding()
	output  io.Closer
	enabled bool
)

func discarding() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Setup opens today's log file and applies formatter and level from config.
// When logs.write is false every call in this package is discarded.
func Setup() error {
	if output != nil {
		_ = output.Close()
		output = nil
	}

	logger, enabled = discarding(), viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		enabled = false
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(f)
	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger, output = l, f
	return nil
}

// Enabled reports whether Setup activated file logging.
func Enabled() bool {
	return enabled
}

func WithField(k string, v any) *logrus.Entry {
	return logger.WithField(k, v)
}

func Error(args ...any)                 { logger.Error(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Debug(args ...any)                 { logger.Debug(args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
func Tracef(format string, args ...any) { logger.Tracef(format, args...) }
