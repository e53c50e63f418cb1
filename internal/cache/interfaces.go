// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/lms-admin/internal/types"
)

// StatsCacheInterface holds the last computed dashboard snapshot. Failures
// are logged and surface as misses.
type StatsCacheInterface interface {
	Get(context.Context) (*types.DashboardStats, bool)
	Set(context.Context, *types.DashboardStats)
	Invalidate(context.Context)
}

// RedisClientInterface is the subset of the go-redis client the cache uses.
type RedisClientInterface interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}
