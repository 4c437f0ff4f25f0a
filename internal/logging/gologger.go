package logging

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// NewGoLogger adapts go-logger for the json and pretty formats. go-logger
// owns its output stream, so cfg.Writer is ignored; pair these formats with
// -o when rendering to a file.
func NewGoLogger(cfg Config) (Logger, error) {
	options := []glog.Option{}
	level, err := goLoggerLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	options = append(options, glog.WithLevel(level))

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported go-logger format %q", cfg.Format)
	}

	root := glog.NewLogger(options...)
	return &goLogger{inner: root.GetLogger("docrst")}, nil
}

func goLoggerLevel(level string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return glog.Debug, nil
	case "info":
		return glog.Info, nil
	case "", "warn", "warning":
		return glog.Warn, nil
	case "error":
		return glog.Error, nil
	default:
		return "", fmt.Errorf("logging: unknown level %q", level)
	}
}

type goLogger struct {
	inner glog.Logger
}

func (l *goLogger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *goLogger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *goLogger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *goLogger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

func (l *goLogger) WithFields(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	if with, ok := l.inner.(glog.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		return &goLogger{inner: with.WithFields(copied)}
	}
	return l
}
