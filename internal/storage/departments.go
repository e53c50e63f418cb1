// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/lms-admin/internal/types"
)

var departmentColumns = []string{
	"id", "name", "shortname", "company_id", "parent_id", "created_at", "updated_at",
}

func scanDepartment(row sq.RowScanner) (*types.Department, error) {
	var d types.Department
	err := row.Scan(
		&d.ID, &d.Name, &d.Shortname, &d.CompanyID, &d.ParentID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Storage) ListDepartments(ctx context.Context, filter types.ListFilter) ([]*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDepartments")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(departmentColumns...).
		From("departments").
		OrderBy(orderNewestFirst)

	if filter.CompanyID != "" {
		q = q.Where(sq.Eq{"company_id": filter.CompanyID})
	}

	if filter.Search != "" {
		q = q.Where(search(filter.Search, "name", "shortname"))
	}

	rows, err := s.list(ctx, q, "list departments")
	if err != nil {
		return nil, err
	}

	departments, err := collect(rows, scanDepartment)
	if err != nil {
		return nil, err
	}

	if err := s.embedDepartments(ctx, filter.Embed, departments...); err != nil {
		return nil, err
	}

	return departments, nil
}

func (s *Storage) GetDepartmentByID(ctx context.Context, id string, embed types.Embed) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDepartmentByID")
	defer span.End()

	d, err := scanDepartment(
		s.db.Statement(ctx).
			Select(departmentColumns...).
			From("departments").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "get department")
	}

	if err := s.embedDepartments(ctx, embed, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Storage) CreateDepartment(ctx context.Context, d *types.Department, embed types.Embed) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDepartment")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanDepartment(
		s.db.Statement(ctx).
			Insert("departments").
			Columns("id", "name", "shortname", "company_id", "parent_id").
			Values(id, d.Name, d.Shortname, d.CompanyID, d.ParentID).
			Suffix(returning(departmentColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "insert department")
	}

	if err := s.embedDepartments(ctx, embed, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Storage) UpdateDepartment(ctx context.Context, id string, patch *types.DepartmentPatch, updatedAt time.Time, embed types.Embed) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDepartment")
	defer span.End()

	changes := patch.Changes()
	changes["updated_at"] = touch(updatedAt)

	updated, err := scanDepartment(
		s.db.Statement(ctx).
			Update("departments").
			SetMap(changes).
			Where(sq.Eq{"id": id}).
			Suffix(returning(departmentColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "update department")
	}

	if err := s.embedDepartments(ctx, embed, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Storage) DeleteDepartment(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteDepartment")
	defer span.End()

	return s.deleteByID(ctx, "departments", id)
}

func (s *Storage) embedDepartments(ctx context.Context, embed types.Embed, departments ...*types.Department) error {
	if !embed.Has(types.EmbedCompany) || len(departments) == 0 {
		return nil
	}

	ids := make([]string, 0, len(departments))
	for _, d := range departments {
		ids = append(ids, d.CompanyID)
	}

	companies, err := s.companiesByID(ctx, ids)
	if err != nil {
		return err
	}

	for _, d := range departments {
		d.Company = companies[d.CompanyID]
	}
	return nil
}
