// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/lms-admin/internal/types"
)

const licenseEmbed = types.EmbedCompany | types.EmbedCourse

func (s *Service) ListLicenses(ctx context.Context, filter types.ListFilter) ([]*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListLicenses")
	defer span.End()

	filter.Embed = licenseEmbed
	licenses, err := s.storage.ListLicenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}

	return licenses, nil
}

func (s *Service) GetLicense(ctx context.Context, id string) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.GetLicense")
	defer span.End()

	l, err := s.storage.GetLicenseByID(ctx, id, licenseEmbed)
	if err != nil {
		return nil, fmt.Errorf("failed to get license %s: %w", id, err)
	}

	return l, nil
}

// CreateLicense stores the license as given; used may exceed allocation.
func (s *Service) CreateLicense(ctx context.Context, actor *types.Identity, l *types.License) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.CreateLicense")
	defer span.End()

	if l == nil {
		return nil, errors.New("license is required")
	}
	if err := s.validate.StructCtx(ctx, l); err != nil {
		return nil, fmt.Errorf("invalid license: %w", err)
	}

	var created *types.License
	err := s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		var err error
		if created, err = s.storage.CreateLicense(ctx, l, licenseEmbed); err != nil {
			return nil, fmt.Errorf("failed to create license: %w", err)
		}
		return &activity{types.ActionCreate, types.EntityLicense, created.ID, "License created"}, nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateLicense(ctx context.Context, actor *types.Identity, id string, patch *types.LicensePatch) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.UpdateLicense")
	defer span.End()

	if patch != nil {
		if err := s.validate.StructCtx(ctx, patch); err != nil {
			return nil, fmt.Errorf("invalid license update: %w", err)
		}
	}

	var updated *types.License
	err := s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		var err error
		if updated, err = s.storage.UpdateLicense(ctx, id, patch, s.timestamp(), licenseEmbed); err != nil {
			return nil, fmt.Errorf("failed to update license %s: %w", id, err)
		}
		return &activity{types.ActionUpdate, types.EntityLicense, id, "License updated"}, nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteLicense(ctx context.Context, actor *types.Identity, id string) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.DeleteLicense")
	defer span.End()

	return s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		if err := s.storage.DeleteLicense(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to delete license %s: %w", id, err)
		}
		return &activity{types.ActionDelete, types.EntityLicense, id, "License deleted"}, nil
	})
}
