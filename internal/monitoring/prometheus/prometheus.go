// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec
	auditFailure *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return errors.New("metric not found")
	}

	o, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	o.Observe(value)
	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return errors.New("metric not found")
	}

	g, err := m.dependencies.GetMetricWith(tags)
	if err != nil {
		return err
	}

	g.Set(value)
	return nil
}

func (m *Monitor) IncAuditFailureMetric(tags map[string]string) error {
	if m.auditFailure == nil {
		return errors.New("metric not found")
	}

	c, err := m.auditFailure.GetMetricWith(tags)
	if err != nil {
		return err
	}

	c.Inc()
	return nil
}

func (m *Monitor) register() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	m.auditFailure = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "activity_log_failures_total",
			Help:        "activity_log_failures_total",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"entity", "action"},
	)

	if existing, ok := m.registerOrExisting(m.responseTime).(*prometheus.HistogramVec); ok {
		m.responseTime = existing
	}
	if existing, ok := m.registerOrExisting(m.dependencies).(*prometheus.GaugeVec); ok {
		m.dependencies = existing
	}
	if existing, ok := m.registerOrExisting(m.auditFailure).(*prometheus.CounterVec); ok {
		m.auditFailure = existing
	}
}

// registerOrExisting returns the already registered collector when an
// identical one exists, so repeated monitors share the same series.
func (m *Monitor) registerOrExisting(c prometheus.Collector) prometheus.Collector {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		return are.ExistingCollector
	}

	m.logger.Errorf("failed to register metric: %v", err)
	return c
}

// NewMonitor creates the collectors and registers them with the default
// prometheus registry, which is what the metrics endpoint serves.
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.register()

	return m
}
