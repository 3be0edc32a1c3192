// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"context"
	"errors"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/storage"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
)

// Plugin describes how identities owned by this bridge behave towards the
// other login paths of the hosting application.
type Plugin struct {
	identities IdentityStoreInterface
	realm      string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *Plugin) AuthMethod() string {
	return AuthMethod
}

// PreventLocalPasswords is always true, identities never hold a password.
func (p *Plugin) PreventLocalPasswords() bool {
	return true
}

func (p *Plugin) CanChangePassword() bool {
	return false
}

func (p *Plugin) IsInternal() bool {
	return false
}

// UserLogin accepts a login attempt only for an identity of this auth
// method and only when a token came with the request.
func (p *Plugin) UserLogin(ctx context.Context, username string, hasToken bool) (bool, error) {
	ctx, span := p.tracer.Start(ctx, "sso.Plugin.UserLogin")
	defer span.End()

	if !hasToken {
		return false, nil
	}

	identity, err := p.identities.FindIdentityByUsername(ctx, CanonicalUsername(username), p.realm)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return identity.AuthMethod == AuthMethod && !identity.Suspended, nil
}

func NewPlugin(identities IdentityStoreInterface, config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Plugin {
	p := new(Plugin)

	p.identities = identities
	p.realm = config.Realm
	if p.realm == "" {
		p.realm = DefaultRealm
	}

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}
