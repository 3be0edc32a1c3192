// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	httptypes "github.com/canonical/jwt-sso-bridge/internal/http/types"
	"github.com/canonical/jwt-sso-bridge/internal/types"
	"github.com/canonical/jwt-sso-bridge/pkg/admin"
)

type adminClient struct {
	endpoint string
	client   *http.Client
}

// Ensure interface compliance
var _ admin.ServiceInterface = (*adminClient)(nil)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

func newAdminClient(endpoint string, client *http.Client) *adminClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	return &adminClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client:   client,
	}
}

func (c *adminClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		e := new(httptypes.ErrorResponse)
		if json.Unmarshal(raw, e) == nil && e.Message != "" {
			return fmt.Errorf("api error (status %d): %s", resp.StatusCode, e.Message)
		}
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}

	env := new(envelope)
	if err := json.Unmarshal(raw, env); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response data: %w", err)
	}

	return nil
}

func (c *adminClient) GetIdentity(ctx context.Context, username string) (*admin.IdentityView, error) {
	out := new(admin.IdentityView)
	if err := c.do(ctx, http.MethodGet, "/api/v0/identities/"+url.PathEscape(username), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) ListCohorts(ctx context.Context, page, size int64) ([]*types.Cohort, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	if size > 0 {
		q.Set("size", fmt.Sprint(size))
	}

	out := make([]*types.Cohort, 0)
	if err := c.do(ctx, http.MethodGet, "/api/v0/cohorts?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) CreateCohort(ctx context.Context, id, name string) (*types.Cohort, error) {
	out := new(types.Cohort)
	if err := c.do(ctx, http.MethodPost, "/api/v0/cohorts", admin.CreateCohortRequest{ID: id, Name: name}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) ListCohortMembers(ctx context.Context, cohortID string) ([]string, error) {
	out := make([]string, 0)
	if err := c.do(ctx, http.MethodGet, "/api/v0/cohorts/"+url.PathEscape(cohortID)+"/members", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
