// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a production JSON logger, l is the minimum level to emit
func NewLogger(l string) *Logger {
	logger := new(Logger)

	lvl, err := zapcore.ParseLevel(strings.ToLower(l))
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lvl == zapcore.DebugLevel {
		c.Development = true
	}

	lgr, err := c.Build()
	if err != nil {
		panic(err)
	}

	logger.SugaredLogger = lgr.Sugar()
	logger.security = &SecurityLogger{l: lgr.Named("security")}

	return logger
}
