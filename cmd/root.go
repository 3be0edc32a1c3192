// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	httpEndpoint string
	bearerToken  string
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "app",
	Short: "JWT SSO Bridge",
	Long:  `JWT SSO Bridge server and CLI for managing cohorts and minting test tokens.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8080", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "token", os.Getenv("ADMIN_API_TOKEN"), "Bearer token for the admin API")
	rootCmd.PersistentFlags().StringVar(&clientID, "client-id", "", "Client ID for the client credentials flow")
	rootCmd.PersistentFlags().StringVar(&clientSecret, "client-secret", "", "Client Secret for the client credentials flow")
	rootCmd.PersistentFlags().StringVar(&tokenURL, "token-url", "", "Token URL")
	rootCmd.PersistentFlags().StringVar(&issuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	rootCmd.PersistentFlags().StringSliceVar(&scopes, "scopes", []string{}, "Scopes (comma-separated)")
}
