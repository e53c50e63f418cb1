// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"
)

func TestNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.TestNoopTracer")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Error("noop tracer should not produce valid span contexts")
	}
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		expect Config
	}{
		{
			name:   "defaults to disabled",
			expect: Config{ServiceName: "svc"},
		},
		{
			name:   "collector endpoints",
			opts:   []Option{Enabled(true), WithCollector("collector:4317", "collector:4318")},
			expect: Config{ServiceName: "svc", Enabled: true, OtelGRPCEndpoint: "collector:4317", OtelHTTPEndpoint: "collector:4318"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := NewConfig("svc", test.opts...)

			if c.Logger == nil {
				t.Fatal("expected a default logger")
			}

			c.Logger = nil
			if *c != test.expect {
				t.Errorf("expected %+v, got %+v", test.expect, *c)
			}
		})
	}
}
