// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal stores the subject of the verified admin token.
func WithPrincipal(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, principalContextKey, subject)
}

func GetPrincipal(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(principalContextKey).(string)
	return subject, ok
}
