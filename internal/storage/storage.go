// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/lms-admin/internal/db"
	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

const orderNewestFirst = "created_at DESC"

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

type scanFunc[T any] func(sq.RowScanner) (*T, error)

// collect scans every row and always returns a non-nil slice.
func collect[T any](rows *sql.Rows, scan scanFunc[T]) ([]*T, error) {
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

func (s *Storage) list(ctx context.Context, q sq.SelectBuilder, op string) (*sql.Rows, error) {
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, op)
	}
	return rows, nil
}

// deleteByID removes one row, reporting ErrNotFound when nothing matched.
func (s *Storage) deleteByID(ctx context.Context, table, id string) error {
	res, err := s.db.Statement(ctx).
		Delete(table).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "delete from "+table)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete from %s %s: %w", table, id, ErrNotFound)
	}

	return nil
}

func (s *Storage) count(ctx context.Context, table string) (int, error) {
	var n int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From(table).
		QueryRowContext(ctx).
		Scan(&n)
	if err != nil {
		return 0, wrapError(err, "count "+table)
	}
	return n, nil
}

// touch sets updated_at to at, or one microsecond past the stored value when
// at is not later, so a row's updated_at only ever moves forward.
func touch(at time.Time) sq.Sqlizer {
	return sq.Expr("GREATEST(?::timestamptz, updated_at + interval '1 microsecond')", at)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// search matches term as a case-insensitive substring of any of columns.
func search(term string, columns ...string) sq.Or {
	pattern := "%" + likeEscaper.Replace(term) + "%"

	or := make(sq.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, sq.ILike{c: pattern})
	}
	return or
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
