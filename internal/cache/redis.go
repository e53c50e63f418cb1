// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/tracing"
	"github.com/canonical/lms-admin/internal/types"
)

const DashboardStatsKey = "lms-admin:dashboard:stats"

var _ StatsCacheInterface = (*RedisCache)(nil)

type RedisCache struct {
	client RedisClientInterface
	ttl    time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *RedisCache) Get(ctx context.Context) (*types.DashboardStats, bool) {
	ctx, span := c.tracer.Start(ctx, "cache.RedisCache.Get")
	defer span.End()

	raw, err := c.client.Get(ctx, DashboardStatsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.dependencyDown()
		c.logger.Warnf("failed to read dashboard stats from cache: %v", err)
		return nil, false
	}
	c.dependencyUp()

	stats := new(types.DashboardStats)
	if err := json.Unmarshal(raw, stats); err != nil {
		c.logger.Warnf("discarding malformed dashboard stats cache entry: %v", err)
		return nil, false
	}

	return stats, true
}

func (c *RedisCache) Set(ctx context.Context, stats *types.DashboardStats) {
	ctx, span := c.tracer.Start(ctx, "cache.RedisCache.Set")
	defer span.End()

	if stats == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		c.logger.Warnf("failed to encode dashboard stats: %v", err)
		return
	}

	if err := c.client.Set(ctx, DashboardStatsKey, raw, c.ttl).Err(); err != nil {
		c.dependencyDown()
		c.logger.Warnf("failed to write dashboard stats to cache: %v", err)
		return
	}
	c.dependencyUp()
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	ctx, span := c.tracer.Start(ctx, "cache.RedisCache.Invalidate")
	defer span.End()

	if err := c.client.Del(ctx, DashboardStatsKey).Err(); err != nil {
		c.dependencyDown()
		c.logger.Warnf("failed to invalidate dashboard stats cache: %v", err)
		return
	}
	c.dependencyUp()
}

func (c *RedisCache) dependencyUp() {
	c.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, 1)
}

func (c *RedisCache) dependencyDown() {
	c.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, 0)
}

func NewRedisCache(client RedisClientInterface, ttl time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RedisCache {
	c := new(RedisCache)

	c.client = client
	c.ttl = ttl

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}

// NewRedisClient connects to addr and checks the connection once.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return rdb, nil
}
