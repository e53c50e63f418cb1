// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"

	"github.com/canonical/lms-admin/internal/types"
)

var _ StatsCacheInterface = (*NoopCache)(nil)

// NoopCache always misses.
type NoopCache struct{}

func (NoopCache) Get(context.Context) (*types.DashboardStats, bool) { return nil, false }
func (NoopCache) Set(context.Context, *types.DashboardStats)       {}
func (NoopCache) Invalidate(context.Context)                       {}

func NewNoopCache() *NoopCache {
	return new(NoopCache)
}
