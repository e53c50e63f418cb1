// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/lms-admin/internal/types"
)

const courseEmbed = types.EmbedCompany

func (s *Service) ListCourses(ctx context.Context, filter types.ListFilter) ([]*types.Course, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListCourses")
	defer span.End()

	filter.Embed = courseEmbed
	courses, err := s.storage.ListCourses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	return courses, nil
}

func (s *Service) GetCourse(ctx context.Context, id string) (*types.Course, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.GetCourse")
	defer span.End()

	c, err := s.storage.GetCourseByID(ctx, id, courseEmbed)
	if err != nil {
		return nil, fmt.Errorf("failed to get course %s: %w", id, err)
	}

	return c, nil
}

func (s *Service) CreateCourse(ctx context.Context, actor *types.Identity, c *types.Course) (*types.Course, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.CreateCourse")
	defer span.End()

	if c == nil {
		return nil, errors.New("course is required")
	}
	if err := s.validate.StructCtx(ctx, c); err != nil {
		return nil, fmt.Errorf("invalid course: %w", err)
	}

	var created *types.Course
	err := s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		var err error
		if created, err = s.storage.CreateCourse(ctx, c, courseEmbed); err != nil {
			return nil, fmt.Errorf("failed to create course: %w", err)
		}
		return &activity{types.ActionCreate, types.EntityCourse, created.ID, "Course created"}, nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateCourse(ctx context.Context, actor *types.Identity, id string, patch *types.CoursePatch) (*types.Course, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.UpdateCourse")
	defer span.End()

	if patch != nil {
		if err := s.validate.StructCtx(ctx, patch); err != nil {
			return nil, fmt.Errorf("invalid course update: %w", err)
		}
	}

	var updated *types.Course
	err := s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		var err error
		if updated, err = s.storage.UpdateCourse(ctx, id, patch, s.timestamp(), courseEmbed); err != nil {
			return nil, fmt.Errorf("failed to update course %s: %w", id, err)
		}
		return &activity{types.ActionUpdate, types.EntityCourse, id, "Course updated"}, nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteCourse(ctx context.Context, actor *types.Identity, id string) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.DeleteCourse")
	defer span.End()

	return s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		if err := s.storage.DeleteCourse(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to delete course %s: %w", id, err)
		}
		return &activity{types.ActionDelete, types.EntityCourse, id, "Course deleted"}, nil
	})
}
