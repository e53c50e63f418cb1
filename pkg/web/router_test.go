// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/lms-admin/internal/identity"
	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/tracing"
	"github.com/canonical/lms-admin/internal/types"
	"github.com/canonical/lms-admin/pkg/admin"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

// dashboardOnly answers GetDashboardStats and counts the calls.
type dashboardOnly struct {
	admin.ServiceInterface

	calls int
}

func (d *dashboardOnly) GetDashboardStats(context.Context) (*types.DashboardStats, error) {
	d.calls++
	return &types.DashboardStats{RecentActivity: []*types.ActivityLog{}}, nil
}

func denyAll(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func newRouter(service admin.ServiceInterface, authn func(http.Handler) http.Handler) http.Handler {
	logger := logging.NewNoopLogger()
	return NewRouter(
		service,
		okPinger{},
		authn,
		[]string{"https://admin.example.com"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("lms-admin", logger),
		logger,
	)
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name     string
		authn    func(http.Handler) http.Handler
		path     string
		expected int
		calls    int
	}{
		{name: "status without authn", authn: denyAll, path: "/api/v0/status", expected: http.StatusOK},
		{name: "ready without authn", authn: denyAll, path: "/api/v0/ready", expected: http.StatusOK},
		{name: "metrics without authn", authn: denyAll, path: "/api/v0/metrics", expected: http.StatusOK},
		{name: "admin api behind authn", authn: denyAll, path: "/api/v0/dashboard", expected: http.StatusUnauthorized},
		{name: "admin api without authn configured", path: "/api/v0/dashboard", expected: http.StatusOK, calls: 1},
		{name: "unknown route", path: "/api/v0/nothing", expected: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(dashboardOnly)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(identity.UserHeader, "admin-1")
			w := httptest.NewRecorder()
			newRouter(svc, tt.authn).ServeHTTP(w, req)

			if w.Code != tt.expected {
				t.Fatalf("expected status %d, got %d", tt.expected, w.Code)
			}
			if svc.calls != tt.calls {
				t.Errorf("expected %d service calls, got %d", tt.calls, svc.calls)
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v0/companies", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	newRouter(new(dashboardOnly), nil).ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.example.com" {
		t.Errorf("expected the origin to be allowed, got %q", got)
	}
}
