// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
)

const pingTimeout = 2 * time.Second

type Config struct {
	Addr     string
	Password string
	DB       int
}

type Client struct {
	*goredis.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Healthy pings the server and records the result as a dependency metric.
func (c *Client) Healthy(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "redis.Client.Healthy")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := c.Client.Ping(ctx).Err()

	available := 1.0
	if err != nil {
		available = 0
		c.logger.Errorf("redis is not reachable: %v", err)
	}

	_ = c.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, available)

	return err
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	c := new(Client)

	c.Client = goredis.NewClient(
		&goredis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
	)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	if err := c.Healthy(context.Background()); err != nil {
		_ = c.Client.Close()
		return nil, err
	}

	return c, nil
}
