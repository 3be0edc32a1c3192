// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/jwt-sso-bridge/internal/types"
)

type serviceMocks struct {
	verifier *MockVerifierInterface
	policy   *MockPolicyInterface
	resolver *MockResolverInterface
	launcher *MockLauncherInterface
	session  *MockSessionInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	return &serviceMocks{
		verifier: NewMockVerifierInterface(ctrl),
		policy:   NewMockPolicyInterface(ctrl),
		resolver: NewMockResolverInterface(ctrl),
		launcher: NewMockLauncherInterface(ctrl),
		session:  NewMockSessionInterface(ctrl),
	}
}

func (m *serviceMocks) service(config Config) *Service {
	tracer, monitor, logger := noops()
	return NewService(m.verifier, m.policy, m.resolver, m.launcher, m.session, config, tracer, monitor, logger)
}

func TestServiceLogin(t *testing.T) {
	raw := RawClaims{"username": "jdoe", "email": "jdoe@allowed.com"}
	claims := &Claims{Username: "jdoe", Email: "jdoe@allowed.com"}
	identity := &types.Identity{ID: "id-1", Username: "jdoe", AuthMethod: AuthMethod}
	cohortErr := &CohortError{CohortID: "C1", Err: ErrUnknownCohort}
	resolveErr := errors.New("resolve failed")

	tests := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
		expected    *LoginResult
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				gomock.InOrder(
					m.verifier.EXPECT().Verify(gomock.Any(), "token").Return(raw, nil),
					m.policy.EXPECT().Evaluate(gomock.Any(), raw).Return(claims, nil),
					m.resolver.EXPECT().Resolve(gomock.Any(), claims).Return(
						&Resolution{Identity: identity, Created: true, CohortErrors: []error{cohortErr}}, nil,
					),
					m.launcher.EXPECT().Launch(gomock.Any(), identity).Return(testWWWRoot+"/", nil),
				)
			},
			expected: &LoginResult{
				RedirectURL:  testWWWRoot + "/",
				Identity:     identity,
				Created:      true,
				CohortErrors: []error{cohortErr},
			},
		},
		{
			name: "bad signature stops before the policy",
			setupMocks: func(m *serviceMocks) {
				m.verifier.EXPECT().Verify(gomock.Any(), "token").Return(nil, ErrBadSignature)
			},
			expectedErr: ErrBadSignature,
		},
		{
			name: "forbidden domain stops before resolution",
			setupMocks: func(m *serviceMocks) {
				m.verifier.EXPECT().Verify(gomock.Any(), "token").Return(raw, nil)
				m.policy.EXPECT().Evaluate(gomock.Any(), raw).Return(nil, ErrForbiddenDomain)
			},
			expectedErr: ErrForbiddenDomain,
		},
		{
			name: "resolution failure starts no session",
			setupMocks: func(m *serviceMocks) {
				m.verifier.EXPECT().Verify(gomock.Any(), "token").Return(raw, nil)
				m.policy.EXPECT().Evaluate(gomock.Any(), raw).Return(claims, nil)
				m.resolver.EXPECT().Resolve(gomock.Any(), claims).Return(nil, resolveErr)
			},
			expectedErr: resolveErr,
		},
		{
			name: "launch failure",
			setupMocks: func(m *serviceMocks) {
				m.verifier.EXPECT().Verify(gomock.Any(), "token").Return(raw, nil)
				m.policy.EXPECT().Evaluate(gomock.Any(), raw).Return(claims, nil)
				m.resolver.EXPECT().Resolve(gomock.Any(), claims).Return(&Resolution{Identity: identity}, nil)
				m.launcher.EXPECT().Launch(gomock.Any(), identity).Return("", errors.New("session store down"))
			},
			expectedErr: errors.New("session store down"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			test.setupMocks(m)

			res, err := m.service(testConfig(t)).Login(context.Background(), "token")

			if test.expectedErr != nil {
				if err == nil || (!errors.Is(err, test.expectedErr) && err.Error() != test.expectedErr.Error()) {
					t.Fatalf("expected error %v, got %v", test.expectedErr, err)
				}
				if res != nil {
					t.Fatalf("expected no result, got %+v", res)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if res.RedirectURL != test.expected.RedirectURL || res.Identity != test.expected.Identity || res.Created != test.expected.Created {
				t.Fatalf("expected %+v, got %+v", test.expected, res)
			}

			if len(res.CohortErrors) != len(test.expected.CohortErrors) {
				t.Fatalf("expected cohort errors %v, got %v", test.expected.CohortErrors, res.CohortErrors)
			}
		})
	}
}

func TestServiceLoginNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	config := testConfig(t)
	config.Key = nil

	m := newServiceMocks(ctrl)

	if _, err := m.service(config).Login(context.Background(), "token"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected %v, got %v", ErrNotConfigured, err)
	}
}

func TestServiceLoginURL(t *testing.T) {
	tests := []struct {
		name        string
		wantsURL    string
		ssoURL      string
		setupMocks  func(*MockSessionInterface)
		expected    string
		expectedErr error
	}{
		{
			name:       "no return url",
			ssoURL:     testSSOURL,
			setupMocks: func(*MockSessionInterface) {},
			expected:   testSSOURL,
		},
		{
			name:     "same-origin return url is stored",
			wantsURL: testWWWRoot + "/course/view?id=3",
			ssoURL:   testSSOURL,
			setupMocks: func(s *MockSessionInterface) {
				s.EXPECT().SetWantsURL(gomock.Any(), testWWWRoot+"/course/view?id=3").Return(nil)
			},
			expected: testSSOURL,
		},
		{
			name:       "off-site return url is dropped",
			wantsURL:   "https://evil.test/",
			ssoURL:     testSSOURL,
			setupMocks: func(*MockSessionInterface) {},
			expected:   testSSOURL,
		},
		{
			name:        "not configured",
			setupMocks:  func(*MockSessionInterface) {},
			expectedErr: ErrNotConfigured,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			test.setupMocks(m.session)

			config := testConfig(t)
			config.URL = test.ssoURL

			target, err := m.service(config).LoginURL(context.Background(), test.wantsURL)

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected error %v, got %v", test.expectedErr, err)
			}

			if target != test.expected {
				t.Fatalf("expected %q, got %q", test.expected, target)
			}
		})
	}
}

func TestServiceLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.session.EXPECT().Destroy(gomock.Any()).Return(nil)

	target, err := m.service(testConfig(t)).Logout(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if target != testWWWRoot+"/" {
		t.Fatalf("expected root redirect, got %q", target)
	}
}
