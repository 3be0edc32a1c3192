// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
	"github.com/canonical/jwt-sso-bridge/internal/version"
)

func newTestRouter(checks map[string]CheckFunc) *chi.Mux {
	mux := chi.NewMux()
	NewAPI(checks, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("jwt-sso-bridge"), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func TestAlive(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var s Status
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if s.Version != version.Version {
		t.Fatalf("expected version %s, got %s", version.Version, s.Version)
	}
}

func TestReady(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name           string
		checks         map[string]CheckFunc
		expectedStatus int
		expectedChecks map[string]string
	}{
		{
			name:           "all dependencies up",
			checks:         map[string]CheckFunc{"postgres": ok, "redis": ok},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]string{"postgres": "ok", "redis": "ok"},
		},
		{
			name:           "redis down",
			checks:         map[string]CheckFunc{"postgres": ok, "redis": down},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]string{"postgres": "ok", "redis": "unavailable"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTestRouter(test.checks).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/ready", nil))

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, w.Code)
			}

			var r Readiness
			if err := json.NewDecoder(w.Body).Decode(&r); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			for name, expected := range test.expectedChecks {
				if r.Checks[name] != expected {
					t.Errorf("expected %s to be %s, got %s", name, expected, r.Checks[name])
				}
			}
		})
	}
}
