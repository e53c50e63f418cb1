// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/lms-admin/internal/types"
)

const userEmbed = types.EmbedCompany

func (s *Service) ListUsers(ctx context.Context, filter types.ListFilter) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListUsers")
	defer span.End()

	filter.Embed = userEmbed
	users, err := s.storage.ListUsers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.GetUser")
	defer span.End()

	u, err := s.storage.GetUserByID(ctx, id, userEmbed)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	return u, nil
}

func (s *Service) CreateUser(ctx context.Context, actor *types.Identity, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.CreateUser")
	defer span.End()

	if u == nil {
		return nil, errors.New("user is required")
	}
	if err := s.validate.StructCtx(ctx, u); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	var created *types.User
	err := s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		var err error
		if created, err = s.storage.CreateUser(ctx, u, userEmbed); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return &activity{types.ActionCreate, types.EntityUser, created.ID, "User created"}, nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateUser(ctx context.Context, actor *types.Identity, id string, patch *types.UserPatch) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.UpdateUser")
	defer span.End()

	if patch != nil {
		if err := s.validate.StructCtx(ctx, patch); err != nil {
			return nil, fmt.Errorf("invalid user update: %w", err)
		}
	}

	var updated *types.User
	err := s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		var err error
		if updated, err = s.storage.UpdateUser(ctx, id, patch, s.timestamp(), userEmbed); err != nil {
			return nil, fmt.Errorf("failed to update user %s: %w", id, err)
		}
		return &activity{types.ActionUpdate, types.EntityUser, id, "User updated"}, nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteUser(ctx context.Context, actor *types.Identity, id string) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.DeleteUser")
	defer span.End()

	return s.mutate(ctx, actor, func(ctx context.Context) (*activity, error) {
		if err := s.storage.DeleteUser(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to delete user %s: %w", id, err)
		}
		return &activity{types.ActionDelete, types.EntityUser, id, "User deleted"}, nil
	})
}
