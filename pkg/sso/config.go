// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

const (
	// AuthMethod tags every identity provisioned by this bridge.
	AuthMethod = "jwt"

	DefaultRealm = "local"

	defaultProfilePath = "/user/edit"
)

// Config holds the operator settings. It is passed by value and never
// mutated after construction.
type Config struct {
	// URL is the SSO provider page that starts the flow.
	URL string
	// Key is the shared HMAC secret.
	Key []byte

	Realm  string
	Leeway time.Duration

	AllowedEmailDomains []string
	DeniedEmailDomains  []string

	PreventAccountCreation bool

	WWWRoot    string
	ProfileURL string
}

// NewConfig copies the caller's slices so later changes cannot leak in.
func NewConfig(
	ssoURL string,
	key []byte,
	realm string,
	leeway time.Duration,
	allowedDomains []string,
	deniedDomains []string,
	preventAccountCreation bool,
	wwwRoot string,
	profileURL string,
) (Config, error) {
	c := Config{
		URL:                    ssoURL,
		Key:                    slices.Clone(key),
		Realm:                  realm,
		Leeway:                 leeway,
		AllowedEmailDomains:    cleanDomains(allowedDomains),
		DeniedEmailDomains:     cleanDomains(deniedDomains),
		PreventAccountCreation: preventAccountCreation,
		WWWRoot:                strings.TrimSuffix(wwwRoot, "/"),
		ProfileURL:             profileURL,
	}

	if c.Realm == "" {
		c.Realm = DefaultRealm
	}

	if c.Leeway < 0 {
		return Config{}, fmt.Errorf("clock leeway must not be negative")
	}

	root, err := url.Parse(c.WWWRoot)
	if err != nil || root.Scheme == "" || root.Host == "" {
		return Config{}, fmt.Errorf("www root %q must be an absolute URL", wwwRoot)
	}

	if c.ProfileURL == "" {
		c.ProfileURL = c.WWWRoot + defaultProfilePath
	}

	return c, nil
}

// Enabled reports whether both the provider URL and the key are set.
func (c Config) Enabled() bool {
	return c.URL != "" && len(c.Key) > 0
}

func (c Config) homeURL() string {
	return strings.TrimSuffix(c.WWWRoot, "/") + "/"
}

func cleanDomains(domains []string) []string {
	out := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		d = strings.TrimPrefix(d, "@")
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}
