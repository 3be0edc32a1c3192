// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// getHTTPClient picks the admin API credentials from flags. Client
// credentials win over a static bearer token.
func getHTTPClient(ctx context.Context) (*http.Client, error) {
	if clientID != "" {
		cfg, err := clientCredentials(ctx)
		if err != nil {
			return nil, err
		}
		return cfg.Client(ctx), nil
	}

	if bearerToken != "" {
		return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: bearerToken})), nil
	}

	return http.DefaultClient, nil
}

func getClient(ctx context.Context) (*adminClient, error) {
	client, err := getHTTPClient(ctx)
	if err != nil {
		return nil, err
	}

	return newAdminClient(httpEndpoint, client), nil
}
