// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
)

// Config describes who may call the admin API.
type Config struct {
	Enabled         bool
	Issuer          string
	JWKSURL         string
	AllowedSubjects []string
	RequiredScope   string
}

// NewAdminAuthenticator builds the bearer token verifier for the admin API.
// With authentication disabled every bearer token is accepted.
func NewAdminAuthenticator(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if !cfg.Enabled {
		logger.Warn("admin API authentication is disabled")
		return NewNoopVerifier(), nil
	}

	if cfg.Issuer == "" {
		return nil, fmt.Errorf("issuer is required for admin API authentication")
	}

	if len(cfg.AllowedSubjects) == 0 && cfg.RequiredScope == "" {
		return nil, fmt.Errorf("admin API authentication needs allowed subjects or a required scope")
	}

	if cfg.JWKSURL != "" {
		logger.Infof("verifying admin tokens against JWKS %s", cfg.JWKSURL)

		return NewJWTVerifierDirect(
			NewKeySetVerifier(ctx, cfg.Issuer, cfg.JWKSURL),
			cfg.AllowedSubjects,
			cfg.RequiredScope,
			tracer, monitor, logger,
		), nil
	}

	logger.Infof("discovering admin token issuer %s", cfg.Issuer)

	provider, err := NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, err
	}

	return NewJWTVerifier(provider, cfg.AllowedSubjects, cfg.RequiredScope, tracer, monitor, logger), nil
}
