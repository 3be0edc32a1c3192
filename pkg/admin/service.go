// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"fmt"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
	"github.com/canonical/jwt-sso-bridge/internal/types"
	"github.com/canonical/jwt-sso-bridge/pkg/sso"
)

type Service struct {
	storage      StorageInterface
	capabilities CapabilitiesInterface
	realm        string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) GetIdentity(ctx context.Context, username string) (*IdentityView, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.GetIdentity")
	defer span.End()

	identity, err := s.storage.FindIdentityByUsername(ctx, sso.CanonicalUsername(username), s.realm)
	if err != nil {
		return nil, err
	}

	cohorts, err := s.storage.ListCohortIDsByIdentity(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	view := &IdentityView{Identity: identity, Cohorts: cohorts}

	if identity.AuthMethod == s.capabilities.AuthMethod() {
		tokenLogin, err := s.capabilities.UserLogin(ctx, identity.Username, true)
		if err != nil {
			return nil, fmt.Errorf("failed to check token login for %s: %w", identity.Username, err)
		}

		view.Capabilities = &Capabilities{
			LocalPasswordAllowed: !s.capabilities.PreventLocalPasswords(),
			CanChangePassword:    s.capabilities.CanChangePassword(),
			Internal:             s.capabilities.IsInternal(),
			TokenLoginAllowed:    tokenLogin,
		}
	}

	return view, nil
}

func (s *Service) ListCohorts(ctx context.Context, page, size int64) ([]*types.Cohort, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListCohorts")
	defer span.End()

	cohorts, err := s.storage.ListCohorts(ctx, page, size)
	if err != nil {
		return nil, err
	}

	if cohorts == nil {
		cohorts = []*types.Cohort{}
	}

	return cohorts, nil
}

func (s *Service) CreateCohort(ctx context.Context, id, name string) (*types.Cohort, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.CreateCohort")
	defer span.End()

	cohort, err := s.storage.CreateCohort(ctx, &types.Cohort{ID: id, Name: name})
	if err != nil {
		return nil, fmt.Errorf("failed to create cohort %s: %w", id, err)
	}

	s.logger.Infof("created cohort %s", cohort.ID)

	return cohort, nil
}

func (s *Service) ListCohortMembers(ctx context.Context, cohortID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListCohortMembers")
	defer span.End()

	members, err := s.storage.ListCohortMembers(ctx, cohortID)
	if err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(members))
	for _, m := range members {
		usernames = append(usernames, m.Username)
	}

	return usernames, nil
}

func NewService(
	storage StorageInterface,
	capabilities CapabilitiesInterface,
	realm string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if realm == "" {
		realm = sso.DefaultRealm
	}

	return &Service{
		storage:      storage,
		capabilities: capabilities,
		realm:        realm,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}
