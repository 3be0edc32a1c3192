// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an admin API access token using the Client Credentials flow",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := clientCredentials(cmd.Context())
		if err != nil {
			return err
		}

		token, err := cfg.Token(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		if verbose, _ := cmd.Flags().GetBool("json"); verbose {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
				"access_token": token.AccessToken,
				"token_type":   token.Type(),
				"expires_at":   token.Expiry.Format(time.RFC3339),
			})
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	},
}

// clientCredentials resolves the token endpoint, through discovery when only
// the issuer is known.
func clientCredentials(ctx context.Context) (*clientcredentials.Config, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("--client-id and --client-secret must be provided")
	}

	endpoint := tokenURL
	if endpoint == "" {
		if issuerURL == "" {
			return nil, fmt.Errorf("either --token-url or --issuer-url must be provided")
		}

		provider, err := oidc.NewProvider(ctx, issuerURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create OIDC provider from issuer: %w", err)
		}
		endpoint = provider.Endpoint().TokenURL
	}

	return &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     endpoint,
		Scopes:       scopes,
	}, nil
}

func init() {
	tokenCmd.Flags().Bool("json", false, "Print the token with its type and expiry as JSON")

	rootCmd.AddCommand(tokenCmd)
}
