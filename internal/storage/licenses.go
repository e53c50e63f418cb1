// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/lms-admin/internal/types"
)

var licenseColumns = []string{
	"id", "name", "company_id", "course_id", "allocation", "used", "valid_from", "valid_to", "created_at", "updated_at",
}

func scanLicense(row sq.RowScanner) (*types.License, error) {
	var l types.License
	err := row.Scan(
		&l.ID, &l.Name, &l.CompanyID, &l.CourseID, &l.Allocation, &l.Used, &l.ValidFrom, &l.ValidTo, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Storage) ListLicenses(ctx context.Context, filter types.ListFilter) ([]*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLicenses")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(licenseColumns...).
		From("licenses").
		OrderBy(orderNewestFirst)

	if filter.CompanyID != "" {
		q = q.Where(sq.Eq{"company_id": filter.CompanyID})
	}

	if filter.Search != "" {
		q = q.Where(search(filter.Search, "name"))
	}

	rows, err := s.list(ctx, q, "list licenses")
	if err != nil {
		return nil, err
	}

	licenses, err := collect(rows, scanLicense)
	if err != nil {
		return nil, err
	}

	if err := s.embedLicenses(ctx, filter.Embed, licenses...); err != nil {
		return nil, err
	}

	return licenses, nil
}

func (s *Storage) GetLicenseByID(ctx context.Context, id string, embed types.Embed) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLicenseByID")
	defer span.End()

	l, err := scanLicense(
		s.db.Statement(ctx).
			Select(licenseColumns...).
			From("licenses").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "get license")
	}

	if err := s.embedLicenses(ctx, embed, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Storage) CreateLicense(ctx context.Context, l *types.License, embed types.Embed) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLicense")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanLicense(
		s.db.Statement(ctx).
			Insert("licenses").
			Columns("id", "name", "company_id", "course_id", "allocation", "used", "valid_from", "valid_to").
			Values(id, l.Name, l.CompanyID, l.CourseID, l.Allocation, l.Used, l.ValidFrom, l.ValidTo).
			Suffix(returning(licenseColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "insert license")
	}

	if err := s.embedLicenses(ctx, embed, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Storage) UpdateLicense(ctx context.Context, id string, patch *types.LicensePatch, updatedAt time.Time, embed types.Embed) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLicense")
	defer span.End()

	changes := patch.Changes()
	changes["updated_at"] = touch(updatedAt)

	updated, err := scanLicense(
		s.db.Statement(ctx).
			Update("licenses").
			SetMap(changes).
			Where(sq.Eq{"id": id}).
			Suffix(returning(licenseColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "update license")
	}

	if err := s.embedLicenses(ctx, embed, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Storage) DeleteLicense(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLicense")
	defer span.End()

	return s.deleteByID(ctx, "licenses", id)
}

func (s *Storage) CountLicenses(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountLicenses")
	defer span.End()

	return s.count(ctx, "licenses")
}

// embedLicenses resolves the company and course embeds, each with one query.
func (s *Storage) embedLicenses(ctx context.Context, embed types.Embed, licenses ...*types.License) error {
	if len(licenses) == 0 {
		return nil
	}

	if embed.Has(types.EmbedCompany) {
		ids := make([]string, 0, len(licenses))
		for _, l := range licenses {
			ids = append(ids, l.CompanyID)
		}

		companies, err := s.companiesByID(ctx, ids)
		if err != nil {
			return err
		}

		for _, l := range licenses {
			l.Company = companies[l.CompanyID]
		}
	}

	if embed.Has(types.EmbedCourse) {
		ids := make([]string, 0, len(licenses))
		for _, l := range licenses {
			ids = append(ids, l.CourseID)
		}

		courses, err := s.coursesByID(ctx, ids)
		if err != nil {
			return err
		}

		for _, l := range licenses {
			l.Course = courses[l.CourseID]
		}
	}

	return nil
}
