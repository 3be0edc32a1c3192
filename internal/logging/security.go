// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const appID = "jwt-sso-bridge"

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger writes events following the OWASP logging vocabulary
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name, description string, fields ...zap.Field) {
	fields = append(
		fields,
		zap.String("type", "security"),
		zap.String("appid", appID),
		zap.String("event", name),
	)
	s.l.Warn(description, fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.event("sys_startup", "system started")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("sys_shutdown", "system stopped")
}

func (s *SecurityLogger) AuthnSuccess(user string) {
	s.event("authn_login_success:"+user, "user logged in through single sign-on", zap.String("user", user))
}

func (s *SecurityLogger) AuthnFailure(user, reason string) {
	s.event("authn_login_fail:"+user, "single sign-on login failed", zap.String("user", user), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(user, resource string) {
	s.event("authz_fail:"+user+","+resource, "user attempted to access a resource without entitlement", zap.String("user", user), zap.String("resource", resource))
}

func (s *SecurityLogger) UserCreated(user, authMethod string) {
	s.event("user_created:"+authMethod+","+user, "user account provisioned", zap.String("user", user), zap.String("auth", authMethod))
}
