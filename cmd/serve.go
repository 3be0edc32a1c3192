// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/jwt-sso-bridge/internal/config"
	"github.com/canonical/jwt-sso-bridge/internal/db"
	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring/prometheus"
	"github.com/canonical/jwt-sso-bridge/internal/redis"
	"github.com/canonical/jwt-sso-bridge/internal/storage"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
	"github.com/canonical/jwt-sso-bridge/pkg/admin"
	"github.com/canonical/jwt-sso-bridge/pkg/authentication"
	"github.com/canonical/jwt-sso-bridge/pkg/session"
	"github.com/canonical/jwt-sso-bridge/pkg/sso"
	"github.com/canonical/jwt-sso-bridge/pkg/status"
	"github.com/canonical/jwt-sso-bridge/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the SSO bridge, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("jwt-sso-bridge", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	ssoConfig, err := sso.NewConfig(
		specs.SSOURL,
		[]byte(specs.SSOKey),
		specs.SSORealm,
		specs.SSOClockLeeway,
		specs.AllowedEmailDomains,
		specs.DeniedEmailDomains,
		specs.PreventAccountCreation,
		specs.WWWRoot,
		specs.ProfileURL,
	)
	if err != nil {
		return fmt.Errorf("invalid sso configuration: %v", err)
	}

	if !ssoConfig.Enabled() {
		logger.Warn("SSO_URL or SSO_KEY is not set, jwt logins are disabled")
	}

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	redisClient, err := redis.NewClient(
		redis.Config{
			Addr:     specs.RedisAddr,
			Password: specs.RedisPassword,
			DB:       specs.RedisDB,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %v", err)
	}
	defer redisClient.Close()

	sessions := session.NewManager(
		session.NewRedisStore(redisClient.Client, tracer, monitor, logger),
		session.Config{
			CookieName: specs.SessionCookieName,
			TTL:        specs.SessionTTL,
			Secure:     specs.SessionCookieSecure,
		},
		tracer,
		monitor,
		logger,
	)

	ssoService := sso.NewService(
		sso.NewTokenVerifier(ssoConfig, tracer, monitor, logger),
		sso.NewClaimPolicy(ssoConfig, tracer, monitor, logger),
		sso.NewIdentityResolver(s, s, dbClient, ssoConfig, tracer, monitor, logger),
		sso.NewSessionLauncher(sessions, ssoConfig, tracer, monitor, logger),
		sessions,
		ssoConfig,
		tracer,
		monitor,
		logger,
	)

	plugin := sso.NewPlugin(s, ssoConfig, tracer, monitor, logger)
	adminService := admin.NewService(s, plugin, ssoConfig.Realm, tracer, monitor, logger)

	adminVerifier, err := authentication.NewAdminAuthenticator(
		context.Background(),
		authentication.Config{
			Enabled:         specs.AdminAPIAuthEnabled,
			Issuer:          specs.AdminAPIIssuer,
			JWKSURL:         specs.AdminAPIJWKSURL,
			AllowedSubjects: specs.AdminAPIAllowedSubjects,
			RequiredScope:   specs.AdminAPIRequiredScope,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to configure admin API authentication: %v", err)
	}

	checks := map[string]status.CheckFunc{
		"postgres": dbClient.Ping,
		"redis":    redisClient.Healthy,
	}

	router := web.NewRouter(
		ssoService,
		sessions,
		adminService,
		adminVerifier,
		dbClient,
		checks,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
