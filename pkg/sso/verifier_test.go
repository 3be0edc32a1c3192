// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestVerifier(t *testing.T, key string, leeway time.Duration) *TokenVerifier {
	t.Helper()

	c := testConfig(t)
	c.Key = []byte(key)
	c.Leeway = leeway

	tracer, monitor, logger := noops()
	return NewTokenVerifierWithClock(c, func() time.Time { return testNow }, tracer, monitor, logger)
}

func TestTokenVerifierAcceptsValidToken(t *testing.T) {
	v := newTestVerifier(t, testKey, 0)

	token := sign(t, jwt.SigningMethodHS256, []byte(testKey), jwt.MapClaims{
		"username": "jdoe",
		"email":    "jdoe@allowed.com",
		"cohort":   []string{"C1", "C2"},
		"exp":      testNow.Add(time.Minute).Unix(),
	})

	claims, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims["username"] != "jdoe" || claims["email"] != "jdoe@allowed.com" {
		t.Errorf("unexpected claims %v", claims)
	}

	if cohorts, ok := claims["cohort"].([]interface{}); !ok || len(cohorts) != 2 {
		t.Errorf("expected 2 cohorts, got %v", claims["cohort"])
	}
}

func TestTokenVerifierRejections(t *testing.T) {
	valid := jwt.MapClaims{"username": "jdoe", "email": "jdoe@allowed.com"}
	good := sign(t, jwt.SigningMethodHS256, []byte(testKey), valid)
	parts := strings.Split(good, ".")

	tamperedPayload := base64.RawURLEncoding.EncodeToString([]byte(`{"username":"admin","email":"jdoe@allowed.com"}`))
	lowerAlgHeader := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"hs256","typ":"JWT"}`))
	rsHeader := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	arrayPayload := base64.RawURLEncoding.EncodeToString([]byte(`[1,2,3]`))

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, valid).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		key      string
		leeway   time.Duration
		token    string
		expected error
	}{
		{
			name:     "empty key",
			key:      "",
			token:    good,
			expected: ErrInvalidKey,
		},
		{
			name:     "wrong key",
			key:      "another-key",
			token:    good,
			expected: ErrBadSignature,
		},
		{
			name:     "tampered payload",
			key:      testKey,
			token:    parts[0] + "." + tamperedPayload + "." + parts[2],
			expected: ErrBadSignature,
		},
		{
			name:     "empty signature",
			key:      testKey,
			token:    parts[0] + "." + parts[1] + ".",
			expected: ErrBadSignature,
		},
		{
			name:     "alg none",
			key:      testKey,
			token:    noneToken,
			expected: ErrUnsupportedAlgorithm,
		},
		{
			name:     "HS384",
			key:      testKey,
			token:    sign(t, jwt.SigningMethodHS384, []byte(testKey), valid),
			expected: ErrUnsupportedAlgorithm,
		},
		{
			name:     "alg is case sensitive",
			key:      testKey,
			token:    lowerAlgHeader + "." + parts[1] + "." + parts[2],
			expected: ErrUnsupportedAlgorithm,
		},
		{
			name:     "RS256 header is refused before the signature",
			key:      testKey,
			token:    rsHeader + "." + parts[1] + ".bm90LWEtc2lnbmF0dXJl",
			expected: ErrUnsupportedAlgorithm,
		},
		{
			name:     "single segment",
			key:      testKey,
			token:    "not-a-token",
			expected: ErrInvalidToken,
		},
		{
			name:     "four segments",
			key:      testKey,
			token:    good + ".extra",
			expected: ErrInvalidToken,
		},
		{
			name:     "empty token",
			key:      testKey,
			token:    "",
			expected: ErrInvalidToken,
		},
		{
			name:     "header is not base64url",
			key:      testKey,
			token:    "!!!." + parts[1] + "." + parts[2],
			expected: ErrInvalidToken,
		},
		{
			name:     "header is not json",
			key:      testKey,
			token:    base64.RawURLEncoding.EncodeToString([]byte("HS256")) + "." + parts[1] + "." + parts[2],
			expected: ErrInvalidToken,
		},
		{
			name:     "payload is not an object",
			key:      testKey,
			token:    parts[0] + "." + arrayPayload + "." + parts[2],
			expected: ErrInvalidToken,
		},
		{
			name: "expired",
			key:  testKey,
			token: sign(t, jwt.SigningMethodHS256, []byte(testKey), jwt.MapClaims{
				"username": "jdoe", "email": "jdoe@allowed.com", "exp": testNow.Add(-time.Minute).Unix(),
			}),
			expected: ErrExpired,
		},
		{
			name: "not yet valid",
			key:  testKey,
			token: sign(t, jwt.SigningMethodHS256, []byte(testKey), jwt.MapClaims{
				"username": "jdoe", "email": "jdoe@allowed.com", "nbf": testNow.Add(time.Minute).Unix(),
			}),
			expected: ErrNotYetValid,
		},
		{
			name:   "expired beyond leeway",
			key:    testKey,
			leeway: 30 * time.Second,
			token: sign(t, jwt.SigningMethodHS256, []byte(testKey), jwt.MapClaims{
				"username": "jdoe", "email": "jdoe@allowed.com", "exp": testNow.Add(-time.Minute).Unix(),
			}),
			expected: ErrExpired,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := newTestVerifier(t, test.key, test.leeway)

			claims, err := v.Verify(context.Background(), test.token)

			if claims != nil {
				t.Errorf("expected no claims, got %v", claims)
			}

			if !errors.Is(err, test.expected) {
				t.Errorf("expected error %v, got %v", test.expected, err)
			}
		})
	}
}

func TestTokenVerifierLeeway(t *testing.T) {
	v := newTestVerifier(t, testKey, 2*time.Minute)

	token := sign(t, jwt.SigningMethodHS256, []byte(testKey), jwt.MapClaims{
		"username": "jdoe",
		"email":    "jdoe@allowed.com",
		"exp":      testNow.Add(-time.Minute).Unix(),
		"nbf":      testNow.Add(time.Minute).Unix(),
	})

	claims, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("expected leeway to absorb the skew, got %v", err)
	}

	if claims["username"] != "jdoe" {
		t.Errorf("unexpected username %v", claims["username"])
	}
}

func TestTokenVerifierDoesNotKeepCallerKey(t *testing.T) {
	c := testConfig(t)
	key := []byte(testKey)
	c.Key = key

	tracer, monitor, logger := noops()
	v := NewTokenVerifierWithClock(c, func() time.Time { return testNow }, tracer, monitor, logger)

	token := sign(t, jwt.SigningMethodHS256, []byte(testKey), jwt.MapClaims{"username": "jdoe"})

	key[0] = 'X'

	if _, err := v.Verify(context.Background(), token); err != nil {
		t.Fatalf("expected the verifier to keep its own copy of the key, got %v", err)
	}
}
