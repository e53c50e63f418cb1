// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strings"

	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/tracing"
	"github.com/canonical/lms-admin/internal/types"
)

const (
	// UserHeader carries the authenticated user ID set by the fronting proxy
	UserHeader = "X-Authenticated-User-Id"
	// CompanyHeader carries the company of the authenticated user, if any
	CompanyHeader = "X-Authenticated-Company-Id"
)

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware builds the acting identity from the proxy headers. An
// identity already set upstream, by token authentication, wins.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if FromContext(ctx) == nil {
			if userID := strings.TrimSpace(r.Header.Get(UserHeader)); userID != "" {
				id := &types.Identity{UserID: userID}
				if companyID := strings.TrimSpace(r.Header.Get(CompanyHeader)); companyID != "" {
					id.CompanyID = &companyID
				}
				ctx = WithIdentity(ctx, id)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
