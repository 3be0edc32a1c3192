// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"net/http"
	"time"
)

type Config struct {
	CookieName string
	Path       string
	TTL        time.Duration
	Secure     bool
}

func (c Config) normalize() Config {
	if c.CookieName == "" {
		c.CookieName = "sso_session"
	}

	if c.Path == "" {
		c.Path = "/"
	}

	if c.TTL <= 0 {
		c.TTL = 2 * time.Hour
	}

	return c
}

func setCookie(w http.ResponseWriter, c Config, s *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.CookieName,
		Value:    s.ID,
		Path:     c.Path,
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, c Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.CookieName,
		Value:    "",
		Path:     c.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
