// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
)

const testIssuer = "https://issuer.example.org"

func TestJWTVerifier_VerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	mint := func(claims jwt.MapClaims) string {
		claims["iss"] = testIssuer
		claims["exp"] = time.Now().Add(time.Hour).Unix()

		token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		return token
	}

	tests := []struct {
		name            string
		allowedSubjects []string
		requiredScope   string
		token           string
		expectedSubject string
		expectErr       bool
		expectedErr     error
	}{
		{
			name:            "allowed subject",
			allowedSubjects: []string{"operator"},
			token:           mint(jwt.MapClaims{"sub": "operator"}),
			expectedSubject: "operator",
		},
		{
			name:            "required scope in scope claim",
			requiredScope:   "sso:admin",
			token:           mint(jwt.MapClaims{"sub": "svc", "scope": "openid sso:admin"}),
			expectedSubject: "svc",
		},
		{
			name:            "required scope in scp claim",
			requiredScope:   "sso:admin",
			token:           mint(jwt.MapClaims{"sub": "svc", "scp": []string{"sso:admin"}}),
			expectedSubject: "svc",
		},
		{
			name:            "subject not allowed and scope missing",
			allowedSubjects: []string{"operator"},
			requiredScope:   "sso:admin",
			token:           mint(jwt.MapClaims{"sub": "intruder", "scope": "openid"}),
			expectedSubject: "intruder",
			expectedErr:     ErrUnauthorized,
		},
		{
			name:            "no policy configured",
			token:           mint(jwt.MapClaims{"sub": "operator"}),
			expectedSubject: "operator",
			expectedErr:     ErrUnauthorized,
		},
		{
			name:            "wrong issuer",
			allowedSubjects: []string{"operator"},
			token: func() string {
				token, _ := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
					"sub": "operator", "iss": "https://other.example.org", "exp": time.Now().Add(time.Hour).Unix(),
				}).SignedString(key)
				return token
			}(),
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			idTokenVerifier := oidc.NewVerifier(
				testIssuer,
				&oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}},
				verifierConfig(),
			)

			provider := NewMockProviderInterface(ctrl)
			provider.EXPECT().Verifier(gomock.Any()).Return(idTokenVerifier)

			v := NewJWTVerifier(
				provider,
				test.allowedSubjects,
				test.requiredScope,
				tracing.NewNoopTracer(),
				monitoring.NewNoopMonitor("jwt-sso-bridge"),
				logging.NewNoopLogger(),
			)

			subject, err := v.VerifyToken(context.Background(), test.token)

			switch {
			case test.expectErr:
				if err == nil {
					t.Fatalf("expected an error, got subject %q", subject)
				}
				return
			case !errors.Is(err, test.expectedErr):
				t.Fatalf("expected error %v, got %v", test.expectedErr, err)
			}

			if subject != test.expectedSubject {
				t.Fatalf("expected subject %q, got %q", test.expectedSubject, subject)
			}
		})
	}
}

func TestNewAdminAuthenticator(t *testing.T) {
	tracer, monitor, logger := tracing.NewNoopTracer(), monitoring.NewNoopMonitor("jwt-sso-bridge"), logging.NewNoopLogger()

	v, err := NewAdminAuthenticator(context.Background(), Config{Enabled: false}, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := v.(*NoopVerifier); !ok {
		t.Fatalf("expected a noop verifier, got %T", v)
	}

	if _, err := NewAdminAuthenticator(context.Background(), Config{Enabled: true}, tracer, monitor, logger); err == nil {
		t.Fatal("expected an error without issuer")
	}

	if _, err := NewAdminAuthenticator(context.Background(), Config{Enabled: true, Issuer: testIssuer}, tracer, monitor, logger); err == nil {
		t.Fatal("expected an error without an access policy")
	}

	v, err = NewAdminAuthenticator(
		context.Background(),
		Config{Enabled: true, Issuer: testIssuer, JWKSURL: testIssuer + "/jwks", RequiredScope: "sso:admin"},
		tracer, monitor, logger,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := v.(*JWTVerifier); !ok {
		t.Fatalf("expected a JWT verifier, got %T", v)
	}
}
