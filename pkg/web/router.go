// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/jwt-sso-bridge/internal/db"
	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
	"github.com/canonical/jwt-sso-bridge/pkg/admin"
	"github.com/canonical/jwt-sso-bridge/pkg/authentication"
	"github.com/canonical/jwt-sso-bridge/pkg/metrics"
	"github.com/canonical/jwt-sso-bridge/pkg/session"
	"github.com/canonical/jwt-sso-bridge/pkg/sso"
	"github.com/canonical/jwt-sso-bridge/pkg/status"
)

func NewRouter(
	ssoService sso.ServiceInterface,
	sessions *session.Manager,
	adminService admin.ServiceInterface,
	adminVerifier authentication.TokenVerifierInterface,
	dbClient db.DBClientInterface,
	checks map[string]status.CheckFunc,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(checks, tracer, monitor, logger).RegisterEndpoints(router)

	// browser facing login flow
	router.Group(func(r chi.Router) {
		r.Use(sessions.Middleware)
		sso.NewAPI(ssoService, tracer, monitor, logger).RegisterEndpoints(r)
	})

	router.Group(func(r chi.Router) {
		r.Use(
			authentication.NewMiddleware(adminVerifier, tracer, monitor, logger).Authenticate(),
			db.TransactionMiddleware(dbClient, logger),
		)
		admin.NewAPI(adminService, tracer, monitor, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
