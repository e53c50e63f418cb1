// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(map[string]string, float64) error
	SetDependencyAvailability(map[string]string, float64) error
	// IncAuditFailureMetric counts activity rows that could not be written
	// after their mutation was committed.
	IncAuditFailureMetric(map[string]string) error
}
