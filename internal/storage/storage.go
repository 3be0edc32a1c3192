// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/jwt-sso-bridge/internal/db"
	"github.com/canonical/jwt-sso-bridge/internal/logging"
	"github.com/canonical/jwt-sso-bridge/internal/monitoring"
	"github.com/canonical/jwt-sso-bridge/internal/tracing"
	"github.com/canonical/jwt-sso-bridge/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var identityColumns = []string{
	"id",
	"username",
	"realm",
	"auth_method",
	"email",
	"first_name",
	"last_name",
	"id_number",
	"suspended",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(...any) error
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func scanIdentity(row rowScanner) (*types.Identity, error) {
	var i types.Identity

	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.Realm,
		&i.AuthMethod,
		&i.Email,
		&i.FirstName,
		&i.LastName,
		&i.IDNumber,
		&i.Suspended,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &i, nil
}

// FindIdentityByUsername matches usernames case-insensitively within realm.
func (s *Storage) FindIdentityByUsername(ctx context.Context, username, realm string) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindIdentityByUsername")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(identityColumns...).
		From("identities").
		Where(sq.Eq{"realm": realm}).
		Where("lower(username) = lower(?)", username).
		QueryRowContext(ctx)

	identity, err := scanIdentity(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

// CreateIdentity inserts a new identity with an empty profile.
// It never raises a unique violation, which would abort the surrounding
// transaction: a concurrent insert of the same username yields ErrDuplicateKey.
func (s *Storage) CreateIdentity(ctx context.Context, username, realm, authMethod string) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateIdentity")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate identity ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("identities").
		Columns("id", "username", "realm", "auth_method").
		Values(id.String(), strings.ToLower(username), realm, authMethod).
		Suffix("ON CONFLICT DO NOTHING RETURNING " + strings.Join(identityColumns, ", ")).
		QueryRowContext(ctx)

	identity, err := scanIdentity(row)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("identity %q already exists: %w", username, ErrDuplicateKey)
		}
		return nil, classify(err, "failed to insert identity")
	}

	return identity, nil
}

// UpdateIdentity overwrites the profile attributes of the identity.
func (s *Storage) UpdateIdentity(ctx context.Context, identity *types.Identity) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateIdentity")
	defer span.End()

	err := s.db.Statement(ctx).
		Update("identities").
		SetMap(map[string]interface{}{
			"email":      identity.Email,
			"first_name": identity.FirstName,
			"last_name":  identity.LastName,
			"id_number":  identity.IDNumber,
			"updated_at": sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": identity.ID}).
		Suffix("RETURNING updated_at").
		QueryRowContext(ctx).
		Scan(&identity.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return classify(err, "failed to update identity")
	}

	return nil
}

func (s *Storage) CreateCohort(ctx context.Context, c *types.Cohort) (*types.Cohort, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCohort")
	defer span.End()

	var cohort types.Cohort
	err := s.db.Statement(ctx).
		Insert("cohorts").
		Columns("id", "name").
		Values(c.ID, c.Name).
		Suffix("RETURNING id, name, created_at").
		QueryRowContext(ctx).
		Scan(&cohort.ID, &cohort.Name, &cohort.CreatedAt)

	if err != nil {
		return nil, classify(err, "failed to insert cohort")
	}

	return &cohort, nil
}

func (s *Storage) GetCohort(ctx context.Context, id string) (*types.Cohort, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCohort")
	defer span.End()

	var c types.Cohort
	err := s.db.Statement(ctx).
		Select("id", "name", "created_at").
		From("cohorts").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.Name, &c.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cohort: %w", err)
	}

	return &c, nil
}

func (s *Storage) ListCohorts(ctx context.Context, page, size int64) ([]*types.Cohort, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCohorts")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "created_at").
		From("cohorts").
		OrderBy("id").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cohorts: %w", err)
	}
	defer rows.Close()

	var cohorts []*types.Cohort
	for rows.Next() {
		var c types.Cohort
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cohort: %w", err)
		}
		cohorts = append(cohorts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return cohorts, nil
}

// AddCohortMember is idempotent: it reports whether a new membership row was
// written and returns ErrNotFound when the cohort does not exist.
// Inside a transaction a failure is confined to a savepoint, so the caller can
// keep using the transaction for the remaining cohorts.
func (s *Storage) AddCohortMember(ctx context.Context, cohortID, identityID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddCohortMember")
	defer span.End()

	added := false

	err := s.db.WithSavepoint(ctx, "cohort_member", func(ctx context.Context) error {
		if _, err := s.GetCohort(ctx, cohortID); err != nil {
			return err
		}

		res, err := s.db.Statement(ctx).
			Insert("cohort_members").
			Columns("cohort_id", "identity_id").
			Values(cohortID, identityID).
			Suffix("ON CONFLICT DO NOTHING").
			ExecContext(ctx)

		if err != nil {
			return classify(err, "failed to add cohort member")
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}

		added = n > 0
		return nil
	})

	return added, err
}

func (s *Storage) ListCohortIDsByIdentity(ctx context.Context, identityID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCohortIDsByIdentity")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("cohort_id").
		From("cohort_members").
		Where(sq.Eq{"identity_id": identityID}).
		OrderBy("cohort_id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cohorts of identity: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan cohort id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

func (s *Storage) ListCohortMembers(ctx context.Context, cohortID string) ([]*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCohortMembers")
	defer span.End()

	if _, err := s.GetCohort(ctx, cohortID); err != nil {
		return nil, err
	}

	columns := make([]string, len(identityColumns))
	for n, c := range identityColumns {
		columns[n] = "i." + c
	}

	rows, err := s.db.Statement(ctx).
		Select(columns...).
		From("identities i").
		Join("cohort_members m ON i.id = m.identity_id").
		Where(sq.Eq{"m.cohort_id": cohortID}).
		OrderBy("i.username").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cohort members: %w", err)
	}
	defer rows.Close()

	var members []*types.Identity
	for rows.Next() {
		identity, err := scanIdentity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, identity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}
