// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"errors"
	"fmt"
)

// Token verification errors.
var (
	ErrInvalidToken         = errors.New("invalid token")
	ErrBadSignature         = errors.New("token signature mismatch")
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	ErrExpired              = errors.New("token has expired")
	ErrNotYetValid          = errors.New("token is not valid yet")
	ErrInvalidKey           = errors.New("signing key is not configured")
)

// Claim policy errors.
var (
	ErrMissingClaim    = errors.New("missing required claim")
	ErrInvalidClaim    = errors.New("invalid claim")
	ErrForbiddenDomain = errors.New("email domain is not allowed")
)

// Identity resolution errors. ErrUnknownCohort is never fatal.
var (
	ErrAccountCreationDisabled = errors.New("account does not exist and account creation is disabled")
	ErrAuthMethodMismatch      = errors.New("account uses a different authentication method")
	ErrIdentitySuspended       = errors.New("account is suspended")
	ErrUnknownCohort           = errors.New("unknown cohort")
	ErrStoreConflict           = errors.New("identity store conflict")
)

var ErrNotConfigured = errors.New("single sign-on is not configured")

type MissingClaimError struct {
	Name string
}

func (e *MissingClaimError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingClaim, e.Name)
}

func (e *MissingClaimError) Unwrap() error {
	return ErrMissingClaim
}

type InvalidClaimError struct {
	Name   string
	Reason string
}

func (e *InvalidClaimError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrInvalidClaim, e.Name, e.Reason)
}

func (e *InvalidClaimError) Unwrap() error {
	return ErrInvalidClaim
}

// CohortError reports a membership that could not be applied during a login.
type CohortError struct {
	CohortID string
	Err      error
}

func (e *CohortError) Error() string {
	return fmt.Sprintf("cohort %q: %v", e.CohortID, e.Err)
}

func (e *CohortError) Unwrap() error {
	return e.Err
}

// reason is the short label used for metrics and security events.
func reason(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, ErrUnsupportedAlgorithm):
		return "unsupported_algorithm"
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrNotYetValid):
		return "not_yet_valid"
	case errors.Is(err, ErrMissingClaim):
		return "missing_claim"
	case errors.Is(err, ErrInvalidClaim):
		return "invalid_claim"
	case errors.Is(err, ErrForbiddenDomain):
		return "forbidden_domain"
	case errors.Is(err, ErrAccountCreationDisabled):
		return "account_creation_disabled"
	case errors.Is(err, ErrAuthMethodMismatch):
		return "auth_method_mismatch"
	case errors.Is(err, ErrIdentitySuspended):
		return "suspended"
	case errors.Is(err, ErrStoreConflict):
		return "store_conflict"
	case errors.Is(err, ErrNotConfigured), errors.Is(err, ErrInvalidKey):
		return "not_configured"
	default:
		return "internal_error"
	}
}
