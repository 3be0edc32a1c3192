// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
)

// TokenVerifier checks HS256 compact tokens against a shared key.
type TokenVerifier struct {
	key    []byte
	leeway time.Duration
	now    func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *TokenVerifier) Verify(ctx context.Context, token string) (RawClaims, error) {
	_, span := v.tracer.Start(ctx, "sso.TokenVerifier.Verify")
	defer span.End()

	if len(v.key) == 0 {
		return nil, ErrInvalidKey
	}

	token = strings.TrimSpace(token)

	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrInvalidToken, len(segments))
	}

	alg, err := v.algorithm(segments[0])
	if err != nil {
		return nil, err
	}

	// the algorithm is pinned before any signature work
	if alg != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithTimeFunc(v.now),
		jwt.WithJSONNumber(),
	)

	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(token, claims, v.keyFunc); err != nil {
		return nil, classifyTokenError(err)
	}

	return RawClaims(claims), nil
}

func (v *TokenVerifier) keyFunc(*jwt.Token) (interface{}, error) {
	return v.key, nil
}

func (v *TokenVerifier) algorithm(segment string) (string, error) {
	b, err := jwt.NewParser().DecodeSegment(segment)
	if err != nil {
		return "", fmt.Errorf("%w: header is not base64url: %v", ErrInvalidToken, err)
	}

	header := struct {
		Alg string `json:"alg"`
	}{}

	if err := json.Unmarshal(b, &header); err != nil {
		return "", fmt.Errorf("%w: header is not a JSON object: %v", ErrInvalidToken, err)
	}

	return header.Alg, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	default:
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
}

func NewTokenVerifier(config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *TokenVerifier {
	return NewTokenVerifierWithClock(config, time.Now, tracer, monitor, logger)
}

func NewTokenVerifierWithClock(config Config, now func() time.Time, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *TokenVerifier {
	v := new(TokenVerifier)

	v.key = slices.Clone(config.Key)
	v.leeway = config.Leeway
	v.now = now

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
