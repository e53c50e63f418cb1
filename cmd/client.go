// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"

	"github.com/canonical/lms-admin/internal/cache"
	"github.com/canonical/lms-admin/internal/db"
	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/storage"
	"github.com/canonical/lms-admin/internal/tracing"
	"github.com/canonical/lms-admin/internal/types"
	"github.com/canonical/lms-admin/pkg/admin"
)

// getService connects to --dsn and returns the admin service on top of it,
// with a closure releasing the connection.
func getService() (admin.ServiceInterface, func(), error) {
	if dsn == "" {
		return nil, nil, errors.New("a database is required, set --dsn or DSN")
	}

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("lms-admin", logger)

	dbClient, err := db.NewDBClient(db.Config{DSN: dsn, MaxConns: 2}, tracer, monitor, logger)
	if err != nil {
		return nil, nil, err
	}

	s := admin.NewService(
		storage.NewStorage(dbClient, tracer, monitor, logger),
		dbClient,
		cache.NewNoopCache(),
		admin.AuditTransactional,
		tracer,
		monitor,
		logger,
	)

	return s, dbClient.Close, nil
}

// getActor returns the identity changes are attributed to, nil without
// --user-id.
func getActor() *types.Identity {
	if userID == "" {
		return nil
	}

	id := &types.Identity{UserID: userID}
	if companyID != "" {
		c := companyID
		id.CompanyID = &c
	}
	return id
}
