// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sso

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/jwt-sso-bridge/internal/http/types"
	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
)

const (
	tokenParam    = "jwt"
	wantsURLParam = "wantsurl"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/login", a.login)
	mux.Post("/login", a.login)
	mux.Get("/logout", a.logout)
	mux.Post("/logout", a.logout)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sso.API.login")
	defer span.End()

	token := r.FormValue(tokenParam)

	if token == "" {
		target, err := a.service.LoginURL(ctx, r.FormValue(wantsURLParam))
		if err != nil {
			a.error(w, err)
			return
		}

		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	res, err := a.service.Login(ctx, token)
	if err != nil {
		a.error(w, err)
		return
	}

	http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sso.API.logout")
	defer span.End()

	target, err := a.service.Logout(ctx)
	if err != nil {
		a.error(w, err)
		return
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (a *API) error(w http.ResponseWriter, err error) {
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		a.logger.Errorf("login failed: %v", err)
	}

	types.WriteError(w, status, publicMessage(err))
}

// StatusFromError maps login failures onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrNotConfigured), errors.Is(err, ErrInvalidKey):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrBadSignature),
		errors.Is(err, ErrUnsupportedAlgorithm),
		errors.Is(err, ErrExpired),
		errors.Is(err, ErrNotYetValid),
		errors.Is(err, ErrMissingClaim),
		errors.Is(err, ErrInvalidClaim):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbiddenDomain),
		errors.Is(err, ErrAccountCreationDisabled),
		errors.Is(err, ErrAuthMethodMismatch),
		errors.Is(err, ErrIdentitySuspended):
		return http.StatusForbidden
	case errors.Is(err, ErrStoreConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage never carries token contents or store details.
func publicMessage(err error) string {
	var missing *MissingClaimError
	var invalid *InvalidClaimError

	switch {
	case errors.As(err, &missing):
		return missing.Error()
	case errors.As(err, &invalid):
		return ErrInvalidClaim.Error() + ": " + invalid.Name
	}

	for _, sentinel := range []error{
		ErrNotConfigured,
		ErrInvalidKey,
		ErrInvalidToken,
		ErrBadSignature,
		ErrUnsupportedAlgorithm,
		ErrExpired,
		ErrNotYetValid,
		ErrForbiddenDomain,
		ErrAccountCreationDisabled,
		ErrAuthMethodMismatch,
		ErrIdentitySuspended,
		ErrStoreConflict,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}

	return http.StatusText(http.StatusInternalServerError)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
