// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/lms-admin/internal/types"
)

var companyColumns = []string{
	"id", "name", "shortname", "city", "country", "theme", "logo_url", "suspended", "created_at", "updated_at",
}

func scanCompany(row sq.RowScanner) (*types.Company, error) {
	var c types.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Shortname, &c.City, &c.Country, &c.Theme, &c.LogoURL, &c.Suspended, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) ListCompanies(ctx context.Context, filter types.CompanyFilter) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCompanies")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(companyColumns...).
		From("companies").
		OrderBy(orderNewestFirst)

	if filter.Suspended != nil {
		q = q.Where(sq.Eq{"suspended": *filter.Suspended})
	}

	if filter.Search != "" {
		q = q.Where(search(filter.Search, "name", "shortname", "city"))
	}

	rows, err := s.list(ctx, q, "list companies")
	if err != nil {
		return nil, err
	}

	return collect(rows, scanCompany)
}

func (s *Storage) GetCompanyByID(ctx context.Context, id string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyByID")
	defer span.End()

	c, err := scanCompany(
		s.db.Statement(ctx).
			Select(companyColumns...).
			From("companies").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "get company")
	}

	return c, nil
}

func (s *Storage) CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompany")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanCompany(
		s.db.Statement(ctx).
			Insert("companies").
			Columns("id", "name", "shortname", "city", "country", "theme", "logo_url", "suspended").
			Values(id, c.Name, c.Shortname, c.City, c.Country, c.Theme, c.LogoURL, c.Suspended).
			Suffix(returning(companyColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "insert company")
	}

	return created, nil
}

func (s *Storage) UpdateCompany(ctx context.Context, id string, patch *types.CompanyPatch, updatedAt time.Time) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCompany")
	defer span.End()

	changes := patch.Changes()
	changes["updated_at"] = touch(updatedAt)

	updated, err := scanCompany(
		s.db.Statement(ctx).
			Update("companies").
			SetMap(changes).
			Where(sq.Eq{"id": id}).
			Suffix(returning(companyColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "update company")
	}

	return updated, nil
}

func (s *Storage) DeleteCompany(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCompany")
	defer span.End()

	return s.deleteByID(ctx, "companies", id)
}

func (s *Storage) CountCompaniesByStatus(ctx context.Context) (int, int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountCompaniesByStatus")
	defer span.End()

	rows, err := s.list(
		ctx,
		s.db.Statement(ctx).
			Select("suspended", "COUNT(*)").
			From("companies").
			GroupBy("suspended"),
		"count companies",
	)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	var active, suspended int
	for rows.Next() {
		var (
			isSuspended bool
			n           int
		)
		if err := rows.Scan(&isSuspended, &n); err != nil {
			return 0, 0, wrapError(err, "scan company count")
		}
		if isSuspended {
			suspended = n
		} else {
			active = n
		}
	}

	if err := rows.Err(); err != nil {
		return 0, 0, wrapError(err, "count companies")
	}

	return active, suspended, nil
}

// companiesByID resolves the company embed for a set of rows.
func (s *Storage) companiesByID(ctx context.Context, ids []string) (map[string]*types.Company, error) {
	out := make(map[string]*types.Company)

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := s.list(
		ctx,
		s.db.Statement(ctx).
			Select(companyColumns...).
			From("companies").
			Where(sq.Eq{"id": ids}),
		"embed companies",
	)
	if err != nil {
		return nil, err
	}

	companies, err := collect(rows, scanCompany)
	if err != nil {
		return nil, err
	}

	for _, c := range companies {
		out[c.ID] = c
	}
	return out, nil
}
