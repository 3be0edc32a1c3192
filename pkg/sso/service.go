// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"context"
	"errors"
	"net/url"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
	"github.com/canonical/jwt-sso-bridge/internal/types"
)

type LoginResult struct {
	RedirectURL  string
	Identity     *types.Identity
	Created      bool
	CohortErrors []error
}

// Service runs a login through verification, claim policy, identity
// resolution and session launch. A failing stage stops the pipeline.
type Service struct {
	verifier VerifierInterface
	policy   PolicyInterface
	resolver ResolverInterface
	launcher LauncherInterface
	session  SessionInterface

	config Config
	root   *url.URL

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Login(ctx context.Context, token string) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "sso.Service.Login")
	defer span.End()

	if !s.config.Enabled() {
		return nil, s.failed("", ErrNotConfigured)
	}

	raw, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, s.failed("", err)
	}

	claims, err := s.policy.Evaluate(ctx, raw)
	if err != nil {
		return nil, s.failed(claimedUsername(raw), err)
	}

	res, err := s.resolver.Resolve(ctx, claims)
	if err != nil {
		return nil, s.failed(claims.Username, err)
	}

	redirect, err := s.launcher.Launch(ctx, res.Identity)
	if err != nil {
		return nil, s.failed(res.Identity.Username, err)
	}

	s.count(nil)
	s.logger.Security().AuthnSuccess(res.Identity.Username)

	return &LoginResult{
		RedirectURL:  redirect,
		Identity:     res.Identity,
		Created:      res.Created,
		CohortErrors: res.CohortErrors,
	}, nil
}

// LoginURL remembers wantsURL when it points inside the application and
// returns the provider page that starts the flow.
func (s *Service) LoginURL(ctx context.Context, wantsURL string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "sso.Service.LoginURL")
	defer span.End()

	if s.config.URL == "" {
		return "", ErrNotConfigured
	}

	if wantsURL == "" {
		return s.config.URL, nil
	}

	target, ok := sameOrigin(s.root, wantsURL)
	if !ok {
		s.logger.Debugf("not storing off-site return url %q", wantsURL)
		return s.config.URL, nil
	}

	if err := s.session.SetWantsURL(ctx, target); err != nil {
		s.logger.Errorf("failed to store return url: %v", err)
	}

	return s.config.URL, nil
}

func (s *Service) Logout(ctx context.Context) (string, error) {
	ctx, span := s.tracer.Start(ctx, "sso.Service.Logout")
	defer span.End()

	if err := s.session.Destroy(ctx); err != nil {
		return "", err
	}

	return s.config.homeURL(), nil
}

func (s *Service) failed(username string, err error) error {
	s.count(err)
	s.logger.Security().AuthnFailure(username, reason(err))

	if errors.Is(err, ErrInvalidKey) || errors.Is(err, ErrNotConfigured) {
		s.logger.Errorf("single sign-on misconfigured: %v", err)
	} else {
		s.logger.Debugf("login rejected: %v", err)
	}

	return err
}

func (s *Service) count(err error) {
	if merr := s.monitor.IncrementLoginCounter(map[string]string{"outcome": reason(err)}); merr != nil {
		s.logger.Debugf("failed to record login metric: %v", merr)
	}
}

func claimedUsername(raw RawClaims) string {
	if u, ok := raw["username"].(string); ok {
		return CanonicalUsername(u)
	}
	return ""
}

func NewService(
	verifier VerifierInterface,
	policy PolicyInterface,
	resolver ResolverInterface,
	launcher LauncherInterface,
	session SessionInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.verifier = verifier
	s.policy = policy
	s.resolver = resolver
	s.launcher = launcher
	s.session = session

	s.config = config

	root, err := url.Parse(config.WWWRoot)
	if err != nil {
		logger.Errorf("invalid www root %q: %v", config.WWWRoot, err)
	}
	s.root = root

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
