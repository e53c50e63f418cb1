// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/lms-admin/internal/types"
)

var courseColumns = []string{
	"id", "fullname", "shortname", "summary", "company_id", "category_id", "visible", "created_at", "updated_at",
}

func scanCourse(row sq.RowScanner) (*types.Course, error) {
	var c types.Course
	err := row.Scan(
		&c.ID, &c.Fullname, &c.Shortname, &c.Summary, &c.CompanyID, &c.CategoryID, &c.Visible, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) ListCourses(ctx context.Context, filter types.ListFilter) ([]*types.Course, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCourses")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(courseColumns...).
		From("courses").
		OrderBy(orderNewestFirst)

	if filter.CompanyID != "" {
		q = q.Where(sq.Eq{"company_id": filter.CompanyID})
	}

	if filter.Search != "" {
		q = q.Where(search(filter.Search, "fullname", "shortname"))
	}

	rows, err := s.list(ctx, q, "list courses")
	if err != nil {
		return nil, err
	}

	courses, err := collect(rows, scanCourse)
	if err != nil {
		return nil, err
	}

	if err := s.embedCourses(ctx, filter.Embed, courses...); err != nil {
		return nil, err
	}

	return courses, nil
}

func (s *Storage) GetCourseByID(ctx context.Context, id string, embed types.Embed) (*types.Course, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCourseByID")
	defer span.End()

	c, err := scanCourse(
		s.db.Statement(ctx).
			Select(courseColumns...).
			From("courses").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "get course")
	}

	if err := s.embedCourses(ctx, embed, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Storage) CreateCourse(ctx context.Context, c *types.Course, embed types.Embed) (*types.Course, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCourse")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanCourse(
		s.db.Statement(ctx).
			Insert("courses").
			Columns("id", "fullname", "shortname", "summary", "company_id", "category_id", "visible").
			Values(id, c.Fullname, c.Shortname, c.Summary, c.CompanyID, c.CategoryID, c.Visible).
			Suffix(returning(courseColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "insert course")
	}

	if err := s.embedCourses(ctx, embed, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Storage) UpdateCourse(ctx context.Context, id string, patch *types.CoursePatch, updatedAt time.Time, embed types.Embed) (*types.Course, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCourse")
	defer span.End()

	changes := patch.Changes()
	changes["updated_at"] = touch(updatedAt)

	updated, err := scanCourse(
		s.db.Statement(ctx).
			Update("courses").
			SetMap(changes).
			Where(sq.Eq{"id": id}).
			Suffix(returning(courseColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "update course")
	}

	if err := s.embedCourses(ctx, embed, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Storage) DeleteCourse(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCourse")
	defer span.End()

	return s.deleteByID(ctx, "courses", id)
}

func (s *Storage) CountCourses(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountCourses")
	defer span.End()

	return s.count(ctx, "courses")
}

func (s *Storage) embedCourses(ctx context.Context, embed types.Embed, courses ...*types.Course) error {
	if !embed.Has(types.EmbedCompany) || len(courses) == 0 {
		return nil
	}

	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.CompanyID)
	}

	companies, err := s.companiesByID(ctx, ids)
	if err != nil {
		return err
	}

	for _, c := range courses {
		c.Company = companies[c.CompanyID]
	}
	return nil
}

// coursesByID resolves the course embed of licenses.
func (s *Storage) coursesByID(ctx context.Context, ids []string) (map[string]*types.Course, error) {
	out := make(map[string]*types.Course)

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := s.list(
		ctx,
		s.db.Statement(ctx).
			Select(courseColumns...).
			From("courses").
			Where(sq.Eq{"id": ids}),
		"embed courses",
	)
	if err != nil {
		return nil, err
	}

	courses, err := collect(rows, scanCourse)
	if err != nil {
		return nil, err
	}

	for _, c := range courses {
		out[c.ID] = c
	}
	return out, nil
}
