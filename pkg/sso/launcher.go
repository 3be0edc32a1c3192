// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
	"github.com/canonical/jwt-sso-bridge/internal/types"
)

// SessionLauncher starts the authenticated session and picks where the
// browser goes next.
type SessionLauncher struct {
	session SessionInterface

	root       *url.URL
	homeURL    string
	profileURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (l *SessionLauncher) Launch(ctx context.Context, identity *types.Identity) (string, error) {
	ctx, span := l.tracer.Start(ctx, "sso.SessionLauncher.Launch")
	defer span.End()

	if identity == nil {
		return "", fmt.Errorf("no identity to start a session for")
	}

	if err := l.session.Start(ctx, identity); err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}

	if !ProfileComplete(identity) {
		return l.profileURL, nil
	}

	wants, ok := l.session.WantsURL(ctx)
	if !ok {
		return l.homeURL, nil
	}

	target, ok := sameOrigin(l.root, wants)
	if !ok {
		l.logger.Debugf("ignoring off-site return url %q", wants)
		return l.homeURL, nil
	}

	if err := l.session.ClearWantsURL(ctx); err != nil {
		l.logger.Errorf("failed to clear return url: %v", err)
	}

	return target, nil
}

// ProfileComplete reports whether the fields the application requires
// before normal navigation are all set.
func ProfileComplete(identity *types.Identity) bool {
	return strings.TrimSpace(identity.FirstName) != "" &&
		strings.TrimSpace(identity.LastName) != "" &&
		strings.TrimSpace(identity.Email) != ""
}

// sameOrigin resolves target against root and accepts it only when scheme,
// host and port match and the path stays under the root path. The resolved
// absolute URL is returned.
func sameOrigin(root *url.URL, target string) (string, bool) {
	target = strings.TrimSpace(target)
	if root == nil || target == "" {
		return "", false
	}

	t, err := url.Parse(target)
	if err != nil {
		return "", false
	}

	t = root.ResolveReference(t)

	if t.User != nil || !strings.EqualFold(t.Scheme, root.Scheme) {
		return "", false
	}

	if canonicalHost(t) != canonicalHost(root) {
		return "", false
	}

	base := strings.TrimSuffix(root.Path, "/")
	if base != "" && t.Path != base && !strings.HasPrefix(t.Path, base+"/") {
		return "", false
	}

	return t.String(), true
}

func canonicalHost(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	port := u.Port()

	switch {
	case port == "":
	case port == "80" && strings.EqualFold(u.Scheme, "http"):
	case port == "443" && strings.EqualFold(u.Scheme, "https"):
	default:
		host += ":" + port
	}

	return host
}

func NewSessionLauncher(session SessionInterface, config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionLauncher {
	l := new(SessionLauncher)

	l.session = session

	root, err := url.Parse(config.WWWRoot)
	if err != nil {
		logger.Errorf("invalid www root %q: %v", config.WWWRoot, err)
	}

	l.root = root
	l.homeURL = config.homeURL()
	l.profileURL = config.ProfileURL
	if l.profileURL == "" {
		l.profileURL = strings.TrimSuffix(config.WWWRoot, "/") + defaultProfilePath
	}

	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger

	return l
}
