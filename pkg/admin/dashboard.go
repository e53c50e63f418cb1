// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/lms-admin/internal/types"
)

// GetDashboardStats issues the five dashboard reads concurrently. The counts
// are not taken from a single snapshot.
func (s *Service) GetDashboardStats(ctx context.Context) (*types.DashboardStats, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.GetDashboardStats")
	defer span.End()

	if stats, ok := s.cache.Get(ctx); ok {
		return stats, nil
	}

	gen := s.generation.Load()

	stats := new(types.DashboardStats)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		active, suspended, err := s.storage.CountCompaniesByStatus(gctx)
		if err != nil {
			return fmt.Errorf("failed to count companies: %w", err)
		}
		stats.ActiveCompanies = active
		stats.SuspendedCompanies = suspended
		stats.TotalCompanies = active + suspended
		return nil
	})

	g.Go(func() error {
		n, err := s.storage.CountUsers(gctx)
		if err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		stats.TotalUsers = n
		return nil
	})

	g.Go(func() error {
		n, err := s.storage.CountCourses(gctx)
		if err != nil {
			return fmt.Errorf("failed to count courses: %w", err)
		}
		stats.TotalCourses = n
		return nil
	})

	g.Go(func() error {
		n, err := s.storage.CountLicenses(gctx)
		if err != nil {
			return fmt.Errorf("failed to count licenses: %w", err)
		}
		stats.TotalLicenses = n
		return nil
	})

	g.Go(func() error {
		logs, err := s.storage.ListActivityLogs(gctx, types.ActivityFilter{
			Limit: dashboardActivityLimit,
			Embed: types.EmbedUser | types.EmbedCompany,
		})
		if err != nil {
			return fmt.Errorf("failed to list recent activity: %w", err)
		}
		stats.RecentActivity = logs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	if stats.RecentActivity == nil {
		stats.RecentActivity = []*types.ActivityLog{}
	}

	if s.generation.Load() != gen {
		return stats, nil
	}

	s.cache.Set(ctx, stats)

	// a mutation that committed between the check and Set may have
	// invalidated before this Set landed
	if s.generation.Load() != gen {
		s.cache.Invalidate(ctx)
	}

	return stats, nil
}
