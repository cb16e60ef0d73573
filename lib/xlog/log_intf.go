package xlog

import (
	"os"

	"go.uber.org/zap/zapcore"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

func (lvl LogLevel) zapLevel() zapcore.Level {
	switch lvl {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (lvl LogLevel) String() string {
	return string(lvl)
}

func getLogLevelOrDefault(env string) zapcore.Level {
	if env == "" {
		return zapcore.InfoLevel
	}
	return LogLevel(env).zapLevel()
}

type LogEncoderType uint8

const (
	JSON LogEncoderType = iota
	PlainText
	_encMax
)

func getEncoderByType(typ LogEncoderType) func(cfg zapcore.EncoderConfig) zapcore.Encoder {
	if typ == PlainText {
		return zapcore.NewConsoleEncoder
	}
	return zapcore.NewJSONEncoder
}

func getOutWriter() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stdout)
}

const coreKeyIgnored = ""

// Logger is the tree package's ambient logging boundary. It is
// intentionally narrow: rgbtree never needs more than leveled messages
// with structured fields to trace rotations, repairs and push-downs.
// Context-field propagation, banners, and shipping logs to an external
// pipeline belong to a service, not a library, so none of that is
// reproduced here.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Sync() error
}

// Field is a re-export of zap.Field so callers outside this module
// never need to import go.uber.org/zap directly just to build a log
// call.
type Field = zapcore.Field
