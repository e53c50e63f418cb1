// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/lms-admin/internal/identity"
	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/tracing"
	"github.com/canonical/lms-admin/pkg/admin"
	"github.com/canonical/lms-admin/pkg/metrics"
	"github.com/canonical/lms-admin/pkg/status"
)

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept", "Authorization", "Content-Type",
			identity.UserHeader, identity.CompanyHeader,
		},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}

// NewRouter serves the status and metrics endpoints unauthenticated and the
// admin API behind authn, when set, followed by identity resolution.
func NewRouter(
	service admin.ServiceInterface,
	db status.PingerInterface,
	authn func(http.Handler) http.Handler,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(db, tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		if authn != nil {
			r.Use(authn)
		}
		r.Use(identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware)

		admin.NewAPI(service, tracer, monitor, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
