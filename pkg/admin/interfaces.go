// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"

	"github.com/canonical/jwt-sso-bridge/internal/types"
)

type StorageInterface interface {
	FindIdentityByUsername(ctx context.Context, username, realm string) (*types.Identity, error)
	ListCohortIDsByIdentity(ctx context.Context, identityID string) ([]string, error)
	CreateCohort(ctx context.Context, c *types.Cohort) (*types.Cohort, error)
	ListCohorts(ctx context.Context, page, size int64) ([]*types.Cohort, error)
	ListCohortMembers(ctx context.Context, cohortID string) ([]*types.Identity, error)
}

// CapabilitiesInterface describes what an identity's auth method allows.
type CapabilitiesInterface interface {
	AuthMethod() string
	PreventLocalPasswords() bool
	CanChangePassword() bool
	IsInternal() bool
	UserLogin(ctx context.Context, username string, hasToken bool) (bool, error)
}

type ServiceInterface interface {
	GetIdentity(ctx context.Context, username string) (*IdentityView, error)
	ListCohorts(ctx context.Context, page, size int64) ([]*types.Cohort, error)
	CreateCohort(ctx context.Context, id, name string) (*types.Cohort, error)
	ListCohortMembers(ctx context.Context, cohortID string) ([]string, error)
}
