// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/jwt-sso-bridge/internal/types"
)

type StorageInterface interface {
	FindIdentityByUsername(ctx context.Context, username, realm string) (*types.Identity, error)
	CreateIdentity(ctx context.Context, username, realm, authMethod string) (*types.Identity, error)
	UpdateIdentity(ctx context.Context, identity *types.Identity) error

	CreateCohort(ctx context.Context, c *types.Cohort) (*types.Cohort, error)
	GetCohort(ctx context.Context, id string) (*types.Cohort, error)
	ListCohorts(ctx context.Context, page, size int64) ([]*types.Cohort, error)
	AddCohortMember(ctx context.Context, cohortID, identityID string) (bool, error)
	ListCohortIDsByIdentity(ctx context.Context, identityID string) ([]string, error)
	ListCohortMembers(ctx context.Context, cohortID string) ([]*types.Identity, error)
}
