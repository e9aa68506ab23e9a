package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the leveled, field-aware interface used throughout the tool.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

var std = newStd()

func newStd() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	return l
}

// SetVerbosity maps the CLI flags onto log levels: --verbose shows
// everything, --debug shows info and above, the default shows warnings and
// errors only.
func SetVerbosity(debug, verbose bool) {
	switch {
	case verbose:
		std.SetLevel(logrus.DebugLevel)
	case debug:
		std.SetLevel(logrus.InfoLevel)
	default:
		std.SetLevel(logrus.WarnLevel)
	}
}

func Debug(args ...interface{}) { std.Debug(args...) }
func Info(args ...interface{})  { std.Info(args...) }
func Warn(args ...interface{})  { std.Warn(args...) }
func Error(args ...interface{}) { std.Error(args...) }

func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { std.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { std.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }

// WithField returns a logger carrying a single structured field.
func WithField(key string, value interface{}) Logger {
	return entryLogger{std.WithField(key, value)}
}

// WithFields returns a logger carrying several structured fields.
func WithFields(fields map[string]interface{}) Logger {
	return entryLogger{std.WithFields(logrus.Fields(fields))}
}

type entryLogger struct {
	*logrus.Entry
}

func (e entryLogger) WithField(key string, value interface{}) Logger {
	return entryLogger{e.Entry.WithField(key, value)}
}

func (e entryLogger) WithFields(fields map[string]interface{}) Logger {
	return entryLogger{e.Entry.WithFields(logrus.Fields(fields))}
}
