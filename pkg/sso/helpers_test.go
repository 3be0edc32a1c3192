// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package sso -destination ./mock_sso.go -source=./interfaces.go

const (
	testKey     = "s3cr3t-shared-key"
	testWWWRoot = "https://site.example.com"
	testSSOURL  = "https://idp.example.org/sso/start"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig(t *testing.T) Config {
	t.Helper()

	c, err := NewConfig(testSSOURL, []byte(testKey), "", 0, nil, nil, false, testWWWRoot, "")
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	return c
}

func noops() (*tracing.Tracer, *monitoring.NoopMonitor, *logging.Logger) {
	return tracing.NewNoopTracer(), monitoring.NewNoopMonitor("jwt-sso-bridge"), logging.NewNoopLogger()
}

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	return token
}
