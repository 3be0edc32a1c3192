// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Identity is the local user record an SSO login resolves to.
// Username is unique per Realm, compared case-insensitively.
type Identity struct {
	ID         string    `db:"id" json:"id"`
	Username   string    `db:"username" json:"username"`
	Realm      string    `db:"realm" json:"realm"`
	AuthMethod string    `db:"auth_method" json:"auth_method"`
	Email      string    `db:"email" json:"email"`
	FirstName  string    `db:"first_name" json:"firstname"`
	LastName   string    `db:"last_name" json:"lastname"`
	IDNumber   string    `db:"id_number" json:"idnumber"`
	Suspended  bool      `db:"suspended" json:"suspended"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type Cohort struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CohortMembership struct {
	CohortID   string    `db:"cohort_id" json:"cohort_id"`
	IdentityID string    `db:"identity_id" json:"identity_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
