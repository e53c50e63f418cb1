// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/lms-admin/migrations"
)

var migrateFormat string

// migrateCmd applies the embedded goose migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Apply, roll back or inspect the schema migrations of the admin database`,
	Args:  migrateArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		command, version := "up", int64(-1)
		if len(args) > 0 {
			command = args[0]
		}
		if len(args) > 1 {
			version, _ = strconv.ParseInt(args[1], 10, 64)
		}

		m, closeFn, err := newMigrator(cmd.Context(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer closeFn()

		return m.run(cmd.Context(), command, version)
	},
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateFormat, "format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

// migrateArgs accepts no argument, one of up/down/status/check, or down
// followed by a target version.
func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "down", "status", "check":
	default:
		return fmt.Errorf("invalid first argument: %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("invalid argument combination: %q", args)
		}
		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %q", args[1])
		}
	}

	return nil
}

type migrator struct {
	provider *goose.Provider
	out      io.Writer
	asJSON   bool
}

func newMigrator(ctx context.Context, out io.Writer) (*migrator, func(), error) {
	if dsn == "" {
		return nil, nil, errors.New("a database is required, set --dsn or DSN")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("DSN validation failed: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("DB connection failed: %w", err)
	}

	asJSON := migrateFormat == "json"

	var opts []goose.ProviderOption
	if asJSON {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return &migrator{provider: provider, out: out, asJSON: asJSON}, func() { _ = db.Close() }, nil
}

func (m *migrator) run(ctx context.Context, command string, version int64) error {
	switch command {
	case "up":
		results, err := m.provider.Up(ctx)
		if err != nil {
			return err
		}
		return m.results(results)
	case "down":
		return m.down(ctx, version)
	case "status":
		return m.status(ctx)
	case "check":
		return m.check(ctx)
	}

	return fmt.Errorf("unknown migrate command %q", command)
}

// down rolls back one migration, or every migration above version when it
// is not negative.
func (m *migrator) down(ctx context.Context, version int64) error {
	if version >= 0 {
		results, err := m.provider.DownTo(ctx, version)
		if err != nil {
			return err
		}
		return m.results(results)
	}

	result, err := m.provider.Down(ctx)
	if err != nil {
		return err
	}
	return m.results([]*goose.MigrationResult{result})
}

func (m *migrator) results(results []*goose.MigrationResult) error {
	if m.asJSON {
		if results == nil {
			results = []*goose.MigrationResult{}
		}
		return json.NewEncoder(m.out).Encode(map[string]interface{}{"applied": results})
	}

	for _, r := range results {
		fmt.Fprintf(m.out, "%s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}
	return nil
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}
	if m.asJSON {
		return json.NewEncoder(m.out).Encode(statuses)
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "VERSION\tAPPLIED_AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.Source.Version, appliedAt, s.Source.Path)
	}
	return w.Flush()
}

// check fails when migrations are pending, so deployments can gate on it.
func (m *migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get database version: %w", err)
	}

	state := "ok"
	if pending {
		state = "pending"
	}

	if m.asJSON {
		return json.NewEncoder(m.out).Encode(map[string]interface{}{"status": state, "version": current})
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}
	fmt.Fprintf(m.out, "Database is up to date (version %d)\n", current)
	return nil
}
