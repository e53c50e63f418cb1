// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/lms-admin/internal/types"
)

var activityColumns = []string{
	"id", "action", "entity_type", "entity_id", "user_id", "company_id", "details", "created_at",
}

func scanActivityLog(row sq.RowScanner) (*types.ActivityLog, error) {
	var (
		a       types.ActivityLog
		details []byte
	)
	err := row.Scan(
		&a.ID, &a.Action, &a.EntityType, &a.EntityID, &a.UserID, &a.CompanyID, &details, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Details = map[string]interface{}{}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &a.Details); err != nil {
			return nil, fmt.Errorf("failed to decode activity details: %w", err)
		}
	}

	return &a, nil
}

func (s *Storage) CreateActivityLog(ctx context.Context, a *types.ActivityLog) (*types.ActivityLog, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateActivityLog")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	details := a.Details
	if details == nil {
		details = map[string]interface{}{}
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("failed to encode activity details: %w", err)
	}

	created, err := scanActivityLog(
		s.db.Statement(ctx).
			Insert("activity_logs").
			Columns("id", "action", "entity_type", "entity_id", "user_id", "company_id", "details").
			Values(id, string(a.Action), string(a.EntityType), a.EntityID, a.UserID, a.CompanyID, string(raw)).
			Suffix(returning(activityColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "insert activity log")
	}

	return created, nil
}

// ListActivityLogs returns the newest entries first. A zero limit means no
// limit.
func (s *Storage) ListActivityLogs(ctx context.Context, filter types.ActivityFilter) ([]*types.ActivityLog, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivityLogs")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(activityColumns...).
		From("activity_logs").
		OrderBy(orderNewestFirst)

	if filter.CompanyID != "" {
		q = q.Where(sq.Eq{"company_id": filter.CompanyID})
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	rows, err := s.list(ctx, q, "list activity logs")
	if err != nil {
		return nil, err
	}

	logs, err := collect(rows, scanActivityLog)
	if err != nil {
		return nil, err
	}

	if err := s.embedActivityLogs(ctx, filter.Embed, logs...); err != nil {
		return nil, err
	}

	return logs, nil
}

func (s *Storage) embedActivityLogs(ctx context.Context, embed types.Embed, logs ...*types.ActivityLog) error {
	if len(logs) == 0 {
		return nil
	}

	if embed.Has(types.EmbedUser) {
		ids := make([]string, 0, len(logs))
		for _, a := range logs {
			ids = append(ids, a.UserID)
		}

		users, err := s.usersByID(ctx, ids)
		if err != nil {
			return err
		}

		for _, a := range logs {
			a.User = users[a.UserID]
		}
	}

	if embed.Has(types.EmbedCompany) {
		ids := make([]string, 0, len(logs))
		for _, a := range logs {
			if a.CompanyID != nil {
				ids = append(ids, *a.CompanyID)
			}
		}

		companies, err := s.companiesByID(ctx, ids)
		if err != nil {
			return err
		}

		for _, a := range logs {
			if a.CompanyID != nil {
				a.Company = companies[*a.CompanyID]
			}
		}
	}

	return nil
}
