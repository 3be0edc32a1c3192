// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/jwt-sso-bridge/internal/http/types"
	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
	"github.com/canonical/jwt-sso-bridge/internal/version"
)

// CheckFunc reports whether a dependency is usable.
type CheckFunc func(context.Context) error

type Status struct {
	Version string `json:"version"`
}

type Readiness struct {
	Ready  bool              `json:"ready"`
	Checks map[string]string `json:"checks"`
}

type API struct {
	checks map[string]CheckFunc

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	types.WriteJSON(w, http.StatusOK, Status{Version: version.Version})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	res := Readiness{Ready: true, Checks: make(map[string]string, len(a.checks))}

	names := make([]string, 0, len(a.checks))
	for name := range a.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := a.checks[name](ctx); err != nil {
			a.logger.Errorf("readiness check %s failed: %v", name, err)
			res.Ready = false
			res.Checks[name] = "unavailable"
			continue
		}
		res.Checks[name] = "ok"
	}

	status := http.StatusOK
	if !res.Ready {
		status = http.StatusServiceUnavailable
	}

	types.WriteJSON(w, status, res)
}

func NewAPI(checks map[string]CheckFunc, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.checks = checks
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
