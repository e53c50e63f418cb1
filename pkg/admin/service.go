// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"fmt"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/tracing"
	"github.com/canonical/lms-admin/internal/types"
)

// AuditMode decides how a mutation and its activity row are coupled.
type AuditMode string

const (
	// AuditTransactional writes the mutation and its activity row in one
	// transaction: an audit failure rolls the mutation back.
	AuditTransactional AuditMode = "transactional"
	// AuditBestEffort commits the mutation on its own and only logs audit
	// failures.
	AuditBestEffort AuditMode = "best-effort"
)

func ParseAuditMode(s string) (AuditMode, error) {
	switch m := AuditMode(s); m {
	case AuditTransactional, AuditBestEffort:
		return m, nil
	case "":
		return AuditTransactional, nil
	default:
		return "", fmt.Errorf("unknown audit mode %q", s)
	}
}

const (
	dashboardActivityLimit = 10
	defaultActivityLimit   = 50
	maxActivityLimit       = 500
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface
	cache   StatsCacheInterface

	auditMode AuditMode
	validate  *validator.Validate
	now       func() time.Time

	// generation counts committed mutations, read by the dashboard to avoid
	// caching stats computed across one
	generation atomic.Uint64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// activity describes the audit row produced by one mutation.
type activity struct {
	action     types.Action
	entityType types.EntityType
	entityID   string
	details    interface{}
}

// mutate runs fn and records the activity it returns. Each public mutating
// operation goes through here exactly once.
func (s *Service) mutate(ctx context.Context, actor *types.Identity, fn func(context.Context) (*activity, error)) error {
	var done *activity

	run := func(ctx context.Context) error {
		a, err := fn(ctx)
		if err != nil {
			return err
		}
		done = a

		if err := s.logActivity(ctx, actor, a.action, a.entityType, a.entityID, a.details); err != nil {
			if s.auditMode == AuditBestEffort {
				s.logger.Errorf("failed to record %s of %s %s: %v", a.action, a.entityType, a.entityID, err)
				_ = s.monitor.IncAuditFailureMetric(map[string]string{"entity": string(a.entityType), "action": string(a.action)})
				return nil
			}
			return fmt.Errorf("failed to record %s of %s %s: %w", a.action, a.entityType, a.entityID, err)
		}

		return nil
	}

	var err error
	if s.auditMode == AuditTransactional {
		err = s.tx.WithTx(ctx, run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		return err
	}

	s.generation.Add(1)
	s.cache.Invalidate(ctx)

	if !actor.IsAnonymous() {
		s.logger.Security().AdminAction(actor.UserID, string(done.action), fmt.Sprintf("%s/%s", done.entityType, done.entityID))
	}

	return nil
}

// logActivity appends one row to the activity log. Without an identity there
// is no one to attribute the activity to and nothing is written.
func (s *Service) logActivity(ctx context.Context, actor *types.Identity, action types.Action, entityType types.EntityType, entityID string, details interface{}) error {
	if actor.IsAnonymous() {
		s.logger.Debugf("skipping %s %s %s activity: no identity", action, entityType, entityID)
		return nil
	}

	var companyID *string
	if actor.CompanyID != nil && *actor.CompanyID != "" {
		id := *actor.CompanyID
		companyID = &id
	}

	_, err := s.storage.CreateActivityLog(ctx, &types.ActivityLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     actor.UserID,
		CompanyID:  companyID,
		Details:    types.NormalizeDetails(details),
	})

	return err
}

func (s *Service) LogActivity(ctx context.Context, actor *types.Identity, action types.Action, entityType types.EntityType, entityID string, details interface{}) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.LogActivity")
	defer span.End()

	if err := s.logActivity(ctx, actor, action, entityType, entityID, details); err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	return nil
}

// ListActivity returns the newest activity rows with their user and company.
func (s *Service) ListActivity(ctx context.Context, filter types.ActivityFilter) ([]*types.ActivityLog, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListActivity")
	defer span.End()

	switch {
	case filter.Limit == 0:
		filter.Limit = defaultActivityLimit
	case filter.Limit > maxActivityLimit:
		filter.Limit = maxActivityLimit
	}
	filter.Embed = types.EmbedUser | types.EmbedCompany

	logs, err := s.storage.ListActivityLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	return logs, nil
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC()
}

// newValidator validates Optional patch fields through their value, an empty
// string standing in for an explicit null.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if o, ok := field.Interface().(types.Optional[string]); ok && o.Value != nil {
			return *o.Value
		}
		return ""
	}, types.Optional[string]{})
	return v
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	cache StatsCacheInterface,
	auditMode AuditMode,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.cache = cache

	s.auditMode = auditMode
	if s.auditMode == "" {
		s.auditMode = AuditTransactional
	}
	s.validate = newValidator()
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
