// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/lms-admin/internal/types"
)

const departmentEmbed = types.EmbedCompany

func (s *Service) ListDepartments(ctx context.Context, filter types.ListFilter) ([]*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListDepartments")
	defer span.End()

	filter.Embed = departmentEmbed
	departments, err := s.storage.ListDepartments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	return departments, nil
}

func (s *Service) GetDepartment(ctx context.Context, id string) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.GetDepartment")
	defer span.End()

	d, err := s.storage.GetDepartmentByID(ctx, id, departmentEmbed)
	if err != nil {
		return nil, fmt.Errorf("failed to get department %s: %w", id, err)
	}

	return d, nil
}

func (s *Service) CreateDepartment(ctx context.Context, actor *types.Identity, d *types.Department) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.CreateDepartment")
	defer span.End()

	if d == nil {
		return nil, errors.New("department is required")
	}
	if err := s.validate.StructCtx(ctx, d); err != nil {
		return nil, fmt.Errorf("invalid department: %w", err)
	}

	var created *types.Department
	err := s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		var err error
		if created, err = s.storage.CreateDepartment(ctx, d, departmentEmbed); err != nil {
			return nil, fmt.Errorf("failed to create department: %w", err)
		}
		return &activity{types.ActionCreate, types.EntityDepartment, created.ID, "Department created"}, nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateDepartment applies patch as given. A parent_id pointing back into the
// department's own subtree is accepted.
func (s *Service) UpdateDepartment(ctx context.Context, actor *types.Identity, id string, patch *types.DepartmentPatch) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.UpdateDepartment")
	defer span.End()

	if patch != nil {
		if err := s.validate.StructCtx(ctx, patch); err != nil {
			return nil, fmt.Errorf("invalid department update: %w", err)
		}
	}

	var updated *types.Department
	err := s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		var err error
		if updated, err = s.storage.UpdateDepartment(ctx, id, patch, s.timestamp(), departmentEmbed); err != nil {
			return nil, fmt.Errorf("failed to update department %s: %w", id, err)
		}
		return &activity{types.ActionUpdate, types.EntityDepartment, id, "Department updated"}, nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteDepartment(ctx context.Context, actor *types.Identity, id string) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.DeleteDepartment")
	defer span.End()

	return s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		if err := s.storage.DeleteDepartment(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to delete department %s: %w", id, err)
		}
		return &activity{types.ActionDelete, types.EntityDepartment, id, "Department deleted"}, nil
	})
}
