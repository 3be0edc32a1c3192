// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
)

// recordingRunner counts statements sent to the pool.
type recordingRunner struct {
	calls int
}

func (r *recordingRunner) Exec(string, ...interface{}) (sql.Result, error) {
	r.calls++
	return nil, nil
}

func (r *recordingRunner) Query(string, ...interface{}) (*sql.Rows, error) {
	r.calls++
	return nil, nil
}

func newTestClient(begin func(context.Context) (TxInterface, error), pool *recordingRunner) *DBClient {
	d := new(DBClient)
	d.dbRunner = pool
	d.begin = begin
	d.tracer = tracing.NewNoopTracer()
	d.monitor = monitoring.NewNoopMonitor("jwt-sso-bridge")
	d.logger = logging.NewNoopLogger()
	return d
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name     string
		page     int64
		size     uint64
		expected uint64
	}{
		{name: "first page", page: 1, size: 10, expected: 0},
		{name: "third page", page: 3, size: 10, expected: 20},
		{name: "zero page defaults to first", page: 0, size: 10, expected: 0},
		{name: "negative page defaults to first", page: -4, size: 25, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Offset(tt.page, tt.size); got != tt.expected {
				t.Errorf("expected offset %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestPageSize(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected uint64
	}{
		{name: "explicit size", size: 20, expected: 20},
		{name: "zero uses default", size: 0, expected: defaultPageSize},
		{name: "negative uses default", size: -1, expected: defaultPageSize},
		{name: "capped", size: 10000, expected: maxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageSize(tt.size); got != tt.expected {
				t.Errorf("expected page size %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWithTxDoesNotFallBackToPoolWhenBeginFails(t *testing.T) {
	errBegin := errors.New("too many connections")
	beginCalls := 0
	pool := new(recordingRunner)

	client := newTestClient(func(context.Context) (TxInterface, error) {
		beginCalls++
		return nil, errBegin
	}, pool)

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := client.Statement(ctx).Insert("cohorts").Columns("id").Values("C1").ExecContext(ctx); !errors.Is(err, errBegin) {
			t.Errorf("expected begin error from exec, got %v", err)
		}

		var id string
		err := client.Statement(ctx).Select("id").From("cohorts").QueryRowContext(ctx).Scan(&id)
		if !errors.Is(err, errBegin) {
			t.Errorf("expected begin error from scan, got %v", err)
		}

		return err
	})

	if !errors.Is(err, errBegin) {
		t.Fatalf("expected WithTx to return the begin error, got %v", err)
	}

	if pool.calls != 0 {
		t.Errorf("expected no statement on the pool, got %d", pool.calls)
	}

	if beginCalls != 1 {
		t.Errorf("expected a single begin attempt, got %d", beginCalls)
	}
}

func TestWithSavepointOutsideTransactionRunsFn(t *testing.T) {
	client := newTestClient(func(context.Context) (TxInterface, error) {
		t.Fatal("no transaction expected")
		return nil, nil
	}, new(recordingRunner))

	errFn := errors.New("fn failed")
	called := false

	err := client.WithSavepoint(context.Background(), "cohort_member", func(context.Context) error {
		called = true
		return errFn
	})

	if !called {
		t.Fatal("expected fn to run")
	}

	if !errors.Is(err, errFn) {
		t.Errorf("expected fn error, got %v", err)
	}
}
