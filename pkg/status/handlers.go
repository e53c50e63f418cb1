// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lms-admin/internal/http/types"
	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/tracing"
	"github.com/canonical/lms-admin/internal/version"
)

const (
	statusEndpoint = "/api/v0/status"
	readyEndpoint  = "/api/v0/ready"

	pingTimeout = 2 * time.Second
)

// PingerInterface is satisfied by the database client.
type PingerInterface interface {
	Ping(context.Context) error
}

type Status struct {
	Version string `json:"version"`
}

type Readiness struct {
	Database bool `json:"database"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get(statusEndpoint, a.alive)
	mux.Get(readyEndpoint, a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	if err := httptypes.WriteJSON(w, http.StatusOK, Status{Version: version.Version}); err != nil {
		a.logger.Errorf("failed to encode status: %v", err)
	}
}

// ready reports whether the database answers a ping.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := http.StatusOK
	readiness := Readiness{Database: true}

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database ping failed: %v", err)
		status = http.StatusServiceUnavailable
		readiness.Database = false
		_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, 0)
	} else {
		_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, 1)
	}

	if err := httptypes.WriteJSON(w, status, readiness); err != nil {
		a.logger.Errorf("failed to encode readiness: %v", err)
	}
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
