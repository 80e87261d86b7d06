package currentloop

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger denotes a generic logging interface, fulfilled e.g. by a
// zap.SugaredLogger
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// NullLogger denotes a logger suppressing any output
type NullLogger struct{}

// Debugf fulfils the Logger interface (discarding the message)
func (l *NullLogger) Debugf(format string, args ...interface{}) {}

// Infof fulfils the Logger interface (discarding the message)
func (l *NullLogger) Infof(format string, args ...interface{}) {}

// Warnf fulfils the Logger interface (discarding the message)
func (l *NullLogger) Warnf(format string, args ...interface{}) {}

// Errorf fulfils the Logger interface (discarding the message)
func (l *NullLogger) Errorf(format string, args ...interface{}) {}

// Fatalf fulfils the Logger interface (discarding the message)
func (l *NullLogger) Fatalf(format string, args ...interface{}) {}

// NewDefaultLogger instantiates a new zap-based default logger, logging
// at info level (or debug level, if requested)
func NewDefaultLogger(debug bool) Logger {
	config := zap.NewDevelopmentConfig()
	if !debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return logger.Sugar()
}
