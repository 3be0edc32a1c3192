// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins"`

	SSOURL                 string        `envconfig:"sso_url"`
	SSOKey                 string        `envconfig:"sso_key"`
	SSORealm               string        `envconfig:"sso_realm" default:"local"`
	SSOClockLeeway         time.Duration `envconfig:"sso_clock_leeway" default:"0s"`
	AllowedEmailDomains    []string      `envconfig:"sso_allowed_email_domains"`
	DeniedEmailDomains     []string      `envconfig:"sso_denied_email_domains"`
	PreventAccountCreation bool          `envconfig:"prevent_account_creation" default:"false"`

	WWWRoot    string `envconfig:"www_root" required:"true"`
	ProfileURL string `envconfig:"profile_url"`

	SessionCookieName   string        `envconfig:"session_cookie_name" default:"sso_session"`
	SessionTTL          time.Duration `envconfig:"session_ttl" default:"2h"`
	SessionCookieSecure bool          `envconfig:"session_cookie_secure" default:"true"`

	RedisAddr     string `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AdminAPIAuthEnabled     bool     `envconfig:"admin_api_auth_enabled" default:"true"`
	AdminAPIIssuer          string   `envconfig:"admin_api_issuer"`
	AdminAPIJWKSURL         string   `envconfig:"admin_api_jwks_url"`
	AdminAPIAllowedSubjects []string `envconfig:"admin_api_allowed_subjects"`
	AdminAPIRequiredScope   string   `envconfig:"admin_api_required_scope"`
}
