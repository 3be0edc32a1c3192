// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/jwt-sso-bridge/internal/db"
	"github.com/canonical/jwt-sso-bridge/internal/http/types"
	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/storage"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
	"github.com/canonical/jwt-sso-bridge/pkg/authentication"
)

type API struct {
	service   ServiceInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/identities/{username}", a.getIdentity)
	mux.Get("/api/v0/cohorts", a.listCohorts)
	mux.Post("/api/v0/cohorts", a.createCohort)
	mux.Get("/api/v0/cohorts/{id}/members", a.listCohortMembers)
}

func (a *API) getIdentity(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.getIdentity")
	defer span.End()

	identity, err := a.service.GetIdentity(ctx, chi.URLParam(r, "username"))
	if err != nil {
		a.error(w, r, err)
		return
	}

	types.WriteData(w, http.StatusOK, "identity", identity, nil)
}

func (a *API) listCohorts(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.listCohorts")
	defer span.End()

	page := queryInt(r, "page", 1)
	size := int64(db.PageSize(queryInt(r, "size", 0)))

	cohorts, err := a.service.ListCohorts(ctx, page, size)
	if err != nil {
		a.error(w, r, err)
		return
	}

	types.WriteData(w, http.StatusOK, "cohorts", cohorts, &types.Pagination{Page: page, Size: size})
}

func (a *API) createCohort(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.createCohort")
	defer span.End()

	req := new(CreateCohortRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	cohort, err := a.service.CreateCohort(ctx, req.ID, req.Name)
	if err != nil {
		a.error(w, r, err)
		return
	}

	types.WriteData(w, http.StatusCreated, "cohort created", cohort, nil)
}

func (a *API) listCohortMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.listCohortMembers")
	defer span.End()

	members, err := a.service.ListCohortMembers(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, r, err)
		return
	}

	types.WriteData(w, http.StatusOK, "members", members, nil)
}

func (a *API) error(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		types.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrDuplicateKey):
		types.WriteError(w, http.StatusConflict, "already exists")
	default:
		principal, _ := authentication.GetPrincipal(r.Context())
		a.logger.Errorf("admin request %s %s by %q failed: %v", r.Method, r.URL.Path, principal, err)
		types.WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func queryInt(r *http.Request, name string, fallback int64) int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

var cohortIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("cohortid", func(fl validator.FieldLevel) bool {
		return cohortIDPattern.MatchString(fl.Field().String())
	})

	return v
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		validator: newValidator(),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
