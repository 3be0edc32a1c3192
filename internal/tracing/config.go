// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
)

// Config selects where login spans are exported. The gRPC endpoint wins
// over the HTTP one; with neither set spans are written to Stdout.
type Config struct {
	Enabled      bool
	GRPCEndpoint string
	HTTPEndpoint string

	Stdout io.Writer
	Logger logging.LoggerInterface
}

func (c *Config) exporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	switch {
	case c.GRPCEndpoint != "":
		return otlptrace.New(ctx, otlptracegrpc.NewClient(otlptracegrpc.WithEndpoint(c.GRPCEndpoint), otlptracegrpc.WithInsecure()))
	case c.HTTPEndpoint != "":
		return otlptrace.New(ctx, otlptracehttp.NewClient(otlptracehttp.WithEndpoint(c.HTTPEndpoint), otlptracehttp.WithInsecure()))
	}

	w := c.Stdout
	if w == nil {
		w = os.Stdout
	}

	return stdouttrace.New(stdouttrace.WithWriter(w))
}

func NewConfig(enabled bool, grpcEndpoint, httpEndpoint string, logger logging.LoggerInterface) *Config {
	return &Config{
		Enabled:      enabled,
		GRPCEndpoint: grpcEndpoint,
		HTTPEndpoint: httpEndpoint,
		Logger:       logger,
	}
}
