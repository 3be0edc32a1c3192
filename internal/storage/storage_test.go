// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/canonical/jwt-sso-bridge/internal/db"
	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
	"github.com/canonical/jwt-sso-bridge/internal/types"
	"github.com/canonical/jwt-sso-bridge/migrations"
)

// newTestStorage runs against a migrated database when TEST_DATABASE_DSN is set.
func newTestStorage(t *testing.T) (*Storage, *db.DBClient) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("invalid DSN: %v", err)
	}

	sqlDB := stdlib.OpenDB(*config)
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		t.Skipf("database not reachable: %v", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.EmbedMigrations)
	if err != nil {
		t.Fatalf("failed to create goose provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	tracer, monitor, logger := tracing.NewNoopTracer(), monitoring.NewNoopMonitor("jwt-sso-bridge"), logging.NewNoopLogger()

	client, err := db.NewDBClient(
		db.Config{DSN: dsn, MaxConns: 4, MinConns: 1, MaxConnLifetime: time.Minute, MaxConnIdleTime: time.Minute},
		tracer, monitor, logger,
	)
	if err != nil {
		t.Skipf("database not reachable: %v", err)
	}
	t.Cleanup(client.Close)

	return NewStorage(client, tracer, monitor, logger), client
}

func TestIdentityLifecycle(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	username := "User-" + uuid.NewString()

	created, err := s.CreateIdentity(ctx, username, "local", "jwt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.CreateIdentity(ctx, username, "local", "jwt"); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	found, err := s.FindIdentityByUsername(ctx, username, "local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if found.ID != created.ID || found.AuthMethod != "jwt" {
		t.Fatalf("unexpected identity %+v", found)
	}

	if _, err := s.FindIdentityByUsername(ctx, username, "other"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected realm scoping, got %v", err)
	}

	found.Email = "jdoe@example.com"
	found.FirstName = "John"
	if err := s.UpdateIdentity(ctx, found); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := s.FindIdentityByUsername(ctx, username, "local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if again.Email != "jdoe@example.com" || again.FirstName != "John" {
		t.Fatalf("profile not persisted: %+v", again)
	}
}

func TestCohortMembership(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	identity, err := s.CreateIdentity(ctx, "member-"+uuid.NewString(), "local", "jwt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cohortID := "cohort-" + uuid.NewString()
	if _, err := s.CreateCohort(ctx, &types.Cohort{ID: cohortID, Name: "Cohort"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.CreateCohort(ctx, &types.Cohort{ID: cohortID, Name: "Cohort"}); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	added, err := s.AddCohortMember(ctx, cohortID, identity.ID)
	if err != nil || !added {
		t.Fatalf("expected the member to be added, got %v %v", added, err)
	}

	added, err = s.AddCohortMember(ctx, cohortID, identity.ID)
	if err != nil || added {
		t.Fatalf("expected the second add to be a no-op, got %v %v", added, err)
	}

	if _, err := s.AddCohortMember(ctx, "missing-"+uuid.NewString(), identity.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	members, err := s.ListCohortMembers(ctx, cohortID)
	if err != nil || len(members) != 1 || members[0].ID != identity.ID {
		t.Fatalf("unexpected members %v %v", members, err)
	}

	ids, err := s.ListCohortIDsByIdentity(ctx, identity.ID)
	if err != nil || len(ids) != 1 || ids[0] != cohortID {
		t.Fatalf("unexpected cohort ids %v %v", ids, err)
	}
}

func TestWithTxRollsBack(t *testing.T) {
	s, client := newTestStorage(t)
	ctx := context.Background()

	username := "rollback-" + uuid.NewString()
	boom := errors.New("boom")

	err := client.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.CreateIdentity(txCtx, username, "local", "jwt"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if _, err := s.FindIdentityByUsername(ctx, username, "local"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected the insert to be rolled back, got %v", err)
	}
}

func TestCohortFailureKeepsTransactionUsable(t *testing.T) {
	s, client := newTestStorage(t)
	ctx := context.Background()

	cohortID := "cohort-" + uuid.NewString()
	if _, err := s.CreateCohort(ctx, &types.Cohort{ID: cohortID, Name: "Cohort"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	username := "savepoint-" + uuid.NewString()
	var identity *types.Identity

	err := client.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		if identity, err = s.CreateIdentity(txCtx, username, "local", "jwt"); err != nil {
			return err
		}

		if _, err := s.AddCohortMember(txCtx, cohortID, "missing-"+uuid.NewString()); !errors.Is(err, ErrForeignKeyViolation) {
			t.Errorf("expected ErrForeignKeyViolation, got %v", err)
		}

		if _, err := s.AddCohortMember(txCtx, "missing-"+uuid.NewString(), identity.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}

		added, err := s.AddCohortMember(txCtx, cohortID, identity.ID)
		if err != nil || !added {
			t.Errorf("expected the member to be added after a failed one, got %v %v", added, err)
		}

		return err
	})
	if err != nil {
		t.Fatalf("expected the transaction to commit, got %v", err)
	}

	if _, err := s.FindIdentityByUsername(ctx, username, "local"); err != nil {
		t.Fatalf("expected the identity to be committed, got %v", err)
	}

	members, err := s.ListCohortMembers(ctx, cohortID)
	if err != nil || len(members) != 1 || members[0].ID != identity.ID {
		t.Fatalf("unexpected members %v %v", members, err)
	}
}
