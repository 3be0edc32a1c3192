// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"context"

	"github.com/canonical/jwt-sso-bridge/internal/types"
)

type VerifierInterface interface {
	Verify(ctx context.Context, token string) (RawClaims, error)
}

type PolicyInterface interface {
	Evaluate(ctx context.Context, raw RawClaims) (*Claims, error)
}

type ResolverInterface interface {
	Resolve(ctx context.Context, claims *Claims) (*Resolution, error)
}

type LauncherInterface interface {
	Launch(ctx context.Context, identity *types.Identity) (string, error)
}

type ServiceInterface interface {
	Login(ctx context.Context, token string) (*LoginResult, error)
	LoginURL(ctx context.Context, wantsURL string) (string, error)
	Logout(ctx context.Context) (string, error)
}

type IdentityStoreInterface interface {
	FindIdentityByUsername(ctx context.Context, username, realm string) (*types.Identity, error)
	CreateIdentity(ctx context.Context, username, realm, authMethod string) (*types.Identity, error)
	UpdateIdentity(ctx context.Context, identity *types.Identity) error
}

type CohortStoreInterface interface {
	AddCohortMember(ctx context.Context, cohortID, identityID string) (bool, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// SessionInterface is the request scoped session of the hosting application.
// Implementations find the current session through ctx.
type SessionInterface interface {
	Start(ctx context.Context, identity *types.Identity) error
	WantsURL(ctx context.Context) (string, bool)
	SetWantsURL(ctx context.Context, target string) error
	ClearWantsURL(ctx context.Context) error
	Destroy(ctx context.Context) error
}
