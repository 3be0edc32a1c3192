// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

const noopSubject = "admin"

type NoopVerifier struct{}

// NewNoopVerifier returns a verifier that accepts every token.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	return noopSubject, nil
}
