package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

// Init configures the process logger. Production gets JSON output at info
// level; anything else gets the console encoder at debug level.
func Init(environment string) {
	var base *zap.Logger
	var err error

	if environment == "production" {
		base, err = zap.NewProduction()
	} else {
		devCfg := zap.NewDevelopmentConfig()
		devCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		base, err = devCfg.Build()
	}
	if err != nil {
		base = zap.NewNop()
	}

	log = base.Sugar()
}

func instance() *zap.SugaredLogger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, keysAndValues ...any) {
	instance().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	instance().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	instance().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	instance().Errorw(msg, keysAndValues...)
}

// Fatal logs and exits the process.
func Fatal(msg string, keysAndValues ...any) {
	instance().Fatalw(msg, keysAndValues...)
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
