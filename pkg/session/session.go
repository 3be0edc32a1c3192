// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound  = errors.New("session not found")
	ErrNoSession = errors.New("no session bound to the request")
)

// Session is the browser session. IdentityID is empty until a login
// succeeds.
type Session struct {
	ID         string    `json:"id"`
	IdentityID string    `json:"identity_id,omitempty"`
	Username   string    `json:"username,omitempty"`
	WantsURL   string    `json:"wants_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (s *Session) Authenticated() bool {
	return s.IdentityID != ""
}

const idSize = 32

func generateID() (string, error) {
	b := make([]byte, idSize)

	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
