// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/lms-admin/internal/types"
)

func (s *Service) ListCompanies(ctx context.Context, filter types.CompanyFilter) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListCompanies")
	defer span.End()

	companies, err := s.storage.ListCompanies(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return companies, nil
}

func (s *Service) GetCompany(ctx context.Context, id string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.GetCompany")
	defer span.End()

	c, err := s.storage.GetCompanyByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get company %s: %w", id, err)
	}

	return c, nil
}

func (s *Service) CreateCompany(ctx context.Context, actor *types.Identity, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.CreateCompany")
	defer span.End()

	if c == nil {
		return nil, errors.New("company is required")
	}
	if err := s.validate.StructCtx(ctx, c); err != nil {
		return nil, fmt.Errorf("invalid company: %w", err)
	}

	var created *types.Company
	err := s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		var err error
		if created, err = s.storage.CreateCompany(ctx, c); err != nil {
			return nil, fmt.Errorf("failed to create company: %w", err)
		}
		return &activity{types.ActionCreate, types.EntityCompany, created.ID, "Company created"}, nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateCompany(ctx context.Context, actor *types.Identity, id string, patch *types.CompanyPatch) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.UpdateCompany")
	defer span.End()

	if patch != nil {
		if err := s.validate.StructCtx(ctx, patch); err != nil {
			return nil, fmt.Errorf("invalid company update: %w", err)
		}
	}

	var updated *types.Company
	err := s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		var err error
		if updated, err = s.storage.UpdateCompany(ctx, id, patch, s.timestamp()); err != nil {
			return nil, fmt.Errorf("failed to update company %s: %w", id, err)
		}
		return &activity{types.ActionUpdate, types.EntityCompany, id, "Company updated"}, nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteCompany(ctx context.Context, actor *types.Identity, id string) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.DeleteCompany")
	defer span.End()

	return s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		if err := s.storage.DeleteCompany(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to delete company %s: %w", id, err)
		}
		return &activity{types.ActionDelete, types.EntityCompany, id, "Company deleted"}, nil
	})
}

// SuspendCompany flips the suspended flag and records a single suspend or
// unsuspend activity.
func (s *Service) SuspendCompany(ctx context.Context, actor *types.Identity, id string, suspended bool) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.SuspendCompany")
	defer span.End()

	action, details := types.ActionUnsuspend, "Company unsuspended"
	if suspended {
		action, details = types.ActionSuspend, "Company suspended"
	}

	var updated *types.Company
	err := s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		var err error
		if updated, err = s.storage.UpdateCompany(ctx, id, &types.CompanyPatch{Suspended: &suspended}, s.timestamp()); err != nil {
			return nil, fmt.Errorf("failed to %s company %s: %w", action, id, err)
		}
		return &activity{action, types.EntityCompany, id, details}, nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
