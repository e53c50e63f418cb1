// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/lms-admin/internal/types"
)

var userColumns = []string{
	"id", "username", "email", "firstname", "lastname", "company_id", "department", "manager_id", "suspended", "created_at", "updated_at",
}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Firstname, &u.Lastname, &u.CompanyID, &u.Department, &u.ManagerID, &u.Suspended, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) ListUsers(ctx context.Context, filter types.ListFilter) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		OrderBy(orderNewestFirst)

	if filter.CompanyID != "" {
		q = q.Where(sq.Eq{"company_id": filter.CompanyID})
	}

	if filter.Search != "" {
		q = q.Where(search(filter.Search, "firstname", "lastname", "email", "username"))
	}

	rows, err := s.list(ctx, q, "list users")
	if err != nil {
		return nil, err
	}

	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, err
	}

	if err := s.embedUsers(ctx, filter.Embed, users...); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string, embed types.Embed) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "get user")
	}

	if err := s.embedUsers(ctx, embed, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User, embed types.Embed) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanUser(
		s.db.Statement(ctx).
			Insert("users").
			Columns("id", "username", "email", "firstname", "lastname", "company_id", "department", "manager_id", "suspended").
			Values(id, u.Username, u.Email, u.Firstname, u.Lastname, u.CompanyID, u.Department, u.ManagerID, u.Suspended).
			Suffix(returning(userColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "insert user")
	}

	if err := s.embedUsers(ctx, embed, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Storage) UpdateUser(ctx context.Context, id string, patch *types.UserPatch, updatedAt time.Time, embed types.Embed) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	changes := patch.Changes()
	changes["updated_at"] = touch(updatedAt)

	updated, err := scanUser(
		s.db.Statement(ctx).
			Update("users").
			SetMap(changes).
			Where(sq.Eq{"id": id}).
			Suffix(returning(userColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "update user")
	}

	if err := s.embedUsers(ctx, embed, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUser")
	defer span.End()

	return s.deleteByID(ctx, "users", id)
}

func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountUsers")
	defer span.End()

	return s.count(ctx, "users")
}

func (s *Storage) embedUsers(ctx context.Context, embed types.Embed, users ...*types.User) error {
	if !embed.Has(types.EmbedCompany) || len(users) == 0 {
		return nil
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.CompanyID)
	}

	companies, err := s.companiesByID(ctx, ids)
	if err != nil {
		return err
	}

	for _, u := range users {
		u.Company = companies[u.CompanyID]
	}
	return nil
}

// usersByID resolves the user embed of activity rows.
func (s *Storage) usersByID(ctx context.Context, ids []string) (map[string]*types.User, error) {
	out := make(map[string]*types.User)

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := s.list(
		ctx,
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"id": ids}),
		"embed users",
	)
	if err != nil {
		return nil, err
	}

	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}
