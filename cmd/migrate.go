// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/jwt-sso-bridge/migrations"
)

// usernameIndex enforces one identity per (realm, lower(username)).
const usernameIndex = "identities_realm_username_key"

var bridgeTables = []string{"identities", "cohorts", "cohort_members"}

var migrateCmd = &cobra.Command{
	Use:   "migrate [up | down [version] | status | check]",
	Short: "Manage the identity and cohort schema",
	Long: `Apply or roll back the embedded migrations of the identity and cohort tables.

check exits non zero when migrations are pending or when the tables and the
case-insensitive username index the login flow relies on are missing.`,
	Args: migrateArgs,
	RunE: runMigrate,
}

type migrationReport struct {
	Status  string                   `json:"status,omitempty"`
	Version int64                    `json:"version"`
	Applied []*goose.MigrationResult `json:"applied,omitempty"`
	Missing []string                 `json:"missing,omitempty"`
}

type migrator struct {
	db       *sql.DB
	provider *goose.Provider

	json bool
	out  io.Writer
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "status", "check":
		if len(args) > 1 {
			return fmt.Errorf("%s takes no version", args[0])
		}
	case "down":
		if len(args) == 2 {
			if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
				return fmt.Errorf("invalid version number: %q", args[1])
			}
		}
	default:
		return fmt.Errorf("unknown migrate command %q", args[0])
	}

	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	format, _ := cmd.Flags().GetString("format")

	cmd.SilenceUsage = true

	m, err := newMigrator(cmd.Context(), dsn, format == "json", cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer m.db.Close()

	ctx := cmd.Context()

	switch command {
	case "down":
		target := int64(-1)
		if len(args) == 2 {
			target, _ = strconv.ParseInt(args[1], 10, 64)
		}
		return m.down(ctx, target)
	case "status":
		return m.status(ctx)
	case "check":
		return m.check(ctx)
	default:
		return m.up(ctx)
	}
}

func newMigrator(ctx context.Context, dsn string, asJSON bool, out io.Writer) (*migrator, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %v", err)
	}

	db := stdlib.OpenDB(*config)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	var opts []goose.ProviderOption
	if asJSON {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return &migrator{db: db, provider: provider, json: asJSON, out: out}, nil
}

func (m *migrator) report(r *migrationReport) error {
	if !m.json {
		return nil
	}

	return json.NewEncoder(m.out).Encode(r)
}

func (m *migrator) up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return err
	}

	version, _ := m.provider.GetDBVersion(ctx)

	if !m.json {
		fmt.Fprintf(m.out, "applied %d migration(s), schema at version %d\n", len(results), version)
	}

	return m.report(&migrationReport{Status: "ok", Version: version, Applied: results})
}

// down rolls back one migration, or every migration above target when
// target is not negative.
func (m *migrator) down(ctx context.Context, target int64) error {
	var results []*goose.MigrationResult

	if target < 0 {
		result, err := m.provider.Down(ctx)
		if err != nil {
			return err
		}
		results = append(results, result)
	} else {
		var err error
		if results, err = m.provider.DownTo(ctx, target); err != nil {
			return err
		}
	}

	version, _ := m.provider.GetDBVersion(ctx)

	if !m.json {
		fmt.Fprintf(m.out, "rolled back %d migration(s), schema at version %d\n", len(results), version)
	}

	return m.report(&migrationReport{Status: "ok", Version: version, Applied: results})
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(statuses)
	}

	fmt.Fprintf(m.out, "%-26s %s\n", "APPLIED AT", "MIGRATION")
	for _, s := range statuses {
		appliedAt := "pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(m.out, "%-26s %s\n", appliedAt, s.Source.Path)
	}

	return nil
}

func (m *migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	version, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	missing, err := missingSchema(ctx, m.db)
	if err != nil {
		return err
	}

	r := &migrationReport{Status: "ok", Version: version, Missing: missing}

	switch {
	case pending:
		r.Status = "pending"
	case len(missing) > 0:
		r.Status = "incomplete"
	}

	if err := m.report(r); err != nil {
		return err
	}

	switch r.Status {
	case "pending":
		return fmt.Errorf("migrations are pending: schema at version %d", version)
	case "incomplete":
		return fmt.Errorf("schema at version %d is incomplete: %s", version, strings.Join(missing, "; "))
	}

	if !m.json {
		fmt.Fprintf(m.out, "schema is up to date (version %d)\n", version)
	}

	return nil
}

// missingSchema lists the tables and indexes of the bridge that are absent
// from the current schema.
func missingSchema(ctx context.Context, db *sql.DB) ([]string, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(db)

	rows, err := psql.Select("table_name").
		From("information_schema.tables").
		Where(sq.Expr("table_schema = current_schema()")).
		Where(sq.Eq{"table_name": bridgeTables}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	present := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		present[name] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	var missing []string
	for _, table := range bridgeTables {
		if !present[table] {
			missing = append(missing, "table "+table)
		}
	}

	var def string
	err = psql.Select("indexdef").
		From("pg_indexes").
		Where(sq.Expr("schemaname = current_schema()")).
		Where(sq.Eq{"tablename": "identities", "indexname": usernameIndex}).
		QueryRowContext(ctx).
		Scan(&def)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		missing = append(missing, "index "+usernameIndex)
	case err != nil:
		return nil, fmt.Errorf("failed to read index %s: %w", usernameIndex, err)
	default:
		if err := checkUsernameIndex(def); err != nil {
			missing = append(missing, err.Error())
		}
	}

	return missing, nil
}

// checkUsernameIndex validates the definition reported by pg_indexes.
func checkUsernameIndex(def string) error {
	d := strings.ToLower(def)

	if !strings.HasPrefix(d, "create unique index") {
		return fmt.Errorf("index %s is not unique", usernameIndex)
	}

	lowered := strings.Contains(d, "lower(username)") || strings.Contains(d, "lower((username)::text)")
	if !strings.Contains(d, "(realm") || !lowered {
		return fmt.Errorf("index %s does not cover (realm, lower(username))", usernameIndex)
	}

	return nil
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")
	_ = migrateCmd.MarkFlagRequired("dsn")

	rootCmd.AddCommand(migrateCmd)
}
