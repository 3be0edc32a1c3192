// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
	"github.com/canonical/jwt-sso-bridge/internal/types"
)

type contextKey int

const stateKey contextKey = iota

// state is the per-request view of the session. Anonymous sessions are only
// written to the store once they carry data.
type state struct {
	w         http.ResponseWriter
	session   *Session
	persisted bool
}

// Manager binds a session to each request and implements the session
// operations the login flow needs.
type Manager struct {
	store  StoreInterface
	config Config
	now    func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			st := &state{w: w}

			if s := m.load(ctx, r); s != nil {
				st.session = s
				st.persisted = true
			} else {
				s, err := m.anonymous()
				if err != nil {
					m.logger.Errorf("failed to create session: %v", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				st.session = s
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, stateKey, st)))
		},
	)
}

func (m *Manager) load(ctx context.Context, r *http.Request) *Session {
	c, err := r.Cookie(m.config.CookieName)
	if err != nil || c.Value == "" {
		return nil
	}

	s, err := m.store.Get(ctx, c.Value)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.Errorf("failed to load session: %v", err)
		}
		return nil
	}

	if !m.now().Before(s.ExpiresAt) {
		return nil
	}

	return s
}

func (m *Manager) anonymous() (*Session, error) {
	id, err := generateID()
	if err != nil {
		return nil, err
	}

	now := m.now()

	return &Session{
		ID:        id,
		CreatedAt: now,
		ExpiresAt: now.Add(m.config.TTL),
	}, nil
}

// current returns a copy of the request's session.
func (m *Manager) current(ctx context.Context) (*Session, bool) {
	st, ok := ctx.Value(stateKey).(*state)
	if !ok {
		return nil, false
	}

	s := *st.session
	return &s, true
}

// Start authenticates the session for identity under a fresh id. The return
// url survives the rotation.
func (m *Manager) Start(ctx context.Context, identity *types.Identity) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Start")
	defer span.End()

	st, ok := ctx.Value(stateKey).(*state)
	if !ok {
		return ErrNoSession
	}

	id, err := generateID()
	if err != nil {
		return err
	}

	now := m.now()
	s := &Session{
		ID:         id,
		IdentityID: identity.ID,
		Username:   identity.Username,
		WantsURL:   st.session.WantsURL,
		CreatedAt:  now,
		ExpiresAt:  now.Add(m.config.TTL),
	}

	if err := m.store.Save(ctx, s); err != nil {
		return err
	}

	if st.persisted {
		if err := m.store.Delete(ctx, st.session.ID); err != nil {
			m.logger.Errorf("failed to drop previous session: %v", err)
		}
	}

	st.session = s
	st.persisted = true
	setCookie(st.w, m.config, s)

	return nil
}

func (m *Manager) WantsURL(ctx context.Context) (string, bool) {
	s, ok := m.current(ctx)
	if !ok || s.WantsURL == "" {
		return "", false
	}

	return s.WantsURL, true
}

func (m *Manager) SetWantsURL(ctx context.Context, target string) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.SetWantsURL")
	defer span.End()

	st, ok := ctx.Value(stateKey).(*state)
	if !ok {
		return ErrNoSession
	}

	st.session.WantsURL = target

	if err := m.store.Save(ctx, st.session); err != nil {
		return err
	}

	if !st.persisted {
		st.persisted = true
		setCookie(st.w, m.config, st.session)
	}

	return nil
}

func (m *Manager) ClearWantsURL(ctx context.Context) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.ClearWantsURL")
	defer span.End()

	st, ok := ctx.Value(stateKey).(*state)
	if !ok {
		return ErrNoSession
	}

	if st.session.WantsURL == "" {
		return nil
	}

	st.session.WantsURL = ""

	if !st.persisted {
		return nil
	}

	return m.store.Save(ctx, st.session)
}

// Destroy removes the session and leaves a fresh anonymous one bound to the
// request.
func (m *Manager) Destroy(ctx context.Context) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Destroy")
	defer span.End()

	st, ok := ctx.Value(stateKey).(*state)
	if !ok {
		return ErrNoSession
	}

	if st.persisted {
		if err := m.store.Delete(ctx, st.session.ID); err != nil {
			return err
		}
	}

	clearCookie(st.w, m.config)

	s, err := m.anonymous()
	if err != nil {
		return err
	}

	st.session = s
	st.persisted = false

	return nil
}

func NewManager(store StoreInterface, config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Manager {
	m := new(Manager)

	m.store = store
	m.config = config.normalize()
	m.now = time.Now

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
