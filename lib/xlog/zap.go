package xlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var encoderCfg = zapcore.EncoderConfig{
	MessageKey:    "msg",
	LevelKey:      "lvl",
	EncodeLevel:   zapcore.CapitalLevelEncoder,
	TimeKey:       "ts",
	EncodeTime:    zapcore.ISO8601TimeEncoder,
	CallerKey:     "callAt",
	EncodeCaller:  zapcore.ShortCallerEncoder,
	NameKey:       "component",
	EncodeName:    zapcore.FullNameEncoder,
	StacktraceKey: coreKeyIgnored,
}

type zapLogger struct {
	l *zap.Logger
}

func (zl *zapLogger) Debug(msg string, fields ...Field) { zl.l.Debug(msg, fields...) }
func (zl *zapLogger) Info(msg string, fields ...Field)  { zl.l.Info(msg, fields...) }
func (zl *zapLogger) Warn(msg string, fields ...Field)  { zl.l.Warn(msg, fields...) }
func (zl *zapLogger) Error(msg string, fields ...Field) { zl.l.Error(msg, fields...) }
func (zl *zapLogger) Sync() error                       { return zl.l.Sync() }

// NewZap builds a Logger backed by go.uber.org/zap with the given
// level and encoder (JSON vs. plain-text console, capital level names,
// ISO8601 timestamps).
func NewZap(level LogLevel, encoder LogEncoderType) Logger {
	core := zapcore.NewCore(
		getEncoderByType(encoder)(encoderCfg),
		getOutWriter(),
		zap.NewAtomicLevelAt(level.zapLevel()),
	)
	return &zapLogger{l: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
}

// NewZapFromEnv builds a Logger the same way NewZap does, but derives
// the level from an already-read environment value (e.g. the value of
// an RGBTREE_LOG_LEVEL variable) instead of a typed LogLevel, falling
// back to info level when envLevel is empty or unrecognized.
func NewZapFromEnv(envLevel string, encoder LogEncoderType) Logger {
	core := zapcore.NewCore(
		getEncoderByType(encoder)(encoderCfg),
		getOutWriter(),
		zap.NewAtomicLevelAt(getLogLevelOrDefault(envLevel)),
	)
	return &zapLogger{l: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (nopLogger) Sync() error            { return nil }

// Nop returns a Logger that discards everything. It is the rgbtree
// package's default so a Tree built without WithLogger allocates and
// emits nothing, per the "tree allocates nothing" resource policy.
func Nop() Logger { return nopLogger{} }
