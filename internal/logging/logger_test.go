// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	l := NewLogger("invalid")

	if !l.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected invalid level to fall back to error")
	}
	if l.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected info to be disabled when falling back to error")
	}
}

func TestSecurityLoggerDoesNotPanic(t *testing.T) {
	s := NewNoopLogger().Security()

	s.SystemStartup()
	s.AuthnSuccess("jdoe")
	s.AuthnFailure("jdoe", "expired")
	s.AuthzFailure("jdoe", "admin_api")
	s.UserCreated("jdoe", "jwt")
	s.SystemShutdown()
}
