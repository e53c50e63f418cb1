// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/lms-admin/internal/logging"
)

// Config selects the span exporter. A disabled config yields a noop tracer.
type Config struct {
	ServiceName      string
	OtelHTTPEndpoint string
	OtelGRPCEndpoint string
	Logger           logging.LoggerInterface

	Enabled bool
}

type Option func(*Config)

// WithCollector sets the OTLP endpoints, gRPC taking precedence when both
// are set.
func WithCollector(grpcEndpoint, httpEndpoint string) Option {
	return func(c *Config) {
		c.OtelGRPCEndpoint = grpcEndpoint
		c.OtelHTTPEndpoint = httpEndpoint
	}
}

func WithLogger(logger logging.LoggerInterface) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func Enabled(enabled bool) Option {
	return func(c *Config) {
		c.Enabled = enabled
	}
}

func NewConfig(serviceName string, opts ...Option) *Config {
	c := &Config{
		ServiceName: serviceName,
		Logger:      logging.NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}
