// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"github.com/canonical/jwt-sso-bridge/internal/types"
)

type CreateCohortRequest struct {
	ID   string `json:"id" validate:"required,max=100,cohortid"`
	Name string `json:"name" validate:"required,max=255"`
}

type Capabilities struct {
	LocalPasswordAllowed bool `json:"local_password_allowed"`
	CanChangePassword    bool `json:"can_change_password"`
	Internal             bool `json:"internal"`
	TokenLoginAllowed    bool `json:"token_login_allowed"`
}

type IdentityView struct {
	*types.Identity

	Cohorts      []string      `json:"cohorts"`
	Capabilities *Capabilities `json:"capabilities,omitempty"`
}
