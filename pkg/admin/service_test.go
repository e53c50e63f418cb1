// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lms-admin/internal/cache"
	"github.com/canonical/lms-admin/internal/storage"
	"github.com/canonical/lms-admin/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_admin.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage  *MockStorageInterface
	tx       *MockTxRunnerInterface
	cache    *MockStatsCacheInterface
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		tx:       NewMockTxRunnerInterface(ctrl),
		cache:    NewMockStatsCacheInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Security().Return(m.security).AnyTimes()
	m.security.EXPECT().AdminAction(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	return m
}

func (m *serviceMocks) service(mode AuditMode) *Service {
	return NewService(m.storage, m.tx, m.cache, mode, m.tracer, m.monitor, m.logger)
}

// runInTx makes the tx runner execute the callback inline.
func (m *serviceMocks) runInTx() *gomock.Call {
	return m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func strPtr(s string) *string { return &s }

func TestParseAuditMode(t *testing.T) {
	tests := []struct {
		input    string
		expected AuditMode
		wantErr  bool
	}{
		{input: "", expected: AuditTransactional},
		{input: "transactional", expected: AuditTransactional},
		{input: "best-effort", expected: AuditBestEffort},
		{input: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseAuditMode(tt.input)
			if tt.wantErr != (err != nil) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if mode != tt.expected {
				t.Errorf("expected mode %q, got %q", tt.expected, mode)
			}
		})
	}
}

func TestService_CreateCompany(t *testing.T) {
	actor := &types.Identity{UserID: "admin-1", CompanyID: strPtr("c-root")}
	input := &types.Company{Name: "Acme", Shortname: "acme"}
	created := &types.Company{ID: "c-1", Name: "Acme", Shortname: "acme"}
	dbErr := errors.New("db error")

	tests := []struct {
		name       string
		mode       AuditMode
		actor      *types.Identity
		input      *types.Company
		setupMocks func(*serviceMocks)
		wantErr    bool
	}{
		{
			name:  "transactional create writes one activity row",
			mode:  AuditTransactional,
			actor: actor,
			input: input,
			setupMocks: func(m *serviceMocks) {
				m.runInTx()
				m.storage.EXPECT().CreateCompany(gomock.Any(), input).Return(created, nil)
				m.storage.EXPECT().CreateActivityLog(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.ActivityLog) (*types.ActivityLog, error) {
						if a.Action != types.ActionCreate || a.EntityType != types.EntityCompany || a.EntityID != "c-1" {
							t.Errorf("unexpected activity %+v", a)
						}
						if a.UserID != "admin-1" || a.CompanyID == nil || *a.CompanyID != "c-root" {
							t.Errorf("unexpected attribution %+v", a)
						}
						if a.Details["message"] != "Company created" {
							t.Errorf("unexpected details %v", a.Details)
						}
						return a, nil
					},
				)
				m.cache.EXPECT().Invalidate(gomock.Any())
			},
		},
		{
			name:  "no identity skips the activity row",
			mode:  AuditTransactional,
			actor: nil,
			input: input,
			setupMocks: func(m *serviceMocks) {
				m.runInTx()
				m.storage.EXPECT().CreateCompany(gomock.Any(), input).Return(created, nil)
				m.cache.EXPECT().Invalidate(gomock.Any())
			},
		},
		{
			name:  "transactional audit failure fails the call",
			mode:  AuditTransactional,
			actor: actor,
			input: input,
			setupMocks: func(m *serviceMocks) {
				m.runInTx()
				m.storage.EXPECT().CreateCompany(gomock.Any(), input).Return(created, nil)
				m.storage.EXPECT().CreateActivityLog(gomock.Any(), gomock.Any()).Return(nil, dbErr)
			},
			wantErr: true,
		},
		{
			name:  "best-effort audit failure is logged only",
			mode:  AuditBestEffort,
			actor: actor,
			input: input,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateCompany(gomock.Any(), input).Return(created, nil)
				m.storage.EXPECT().CreateActivityLog(gomock.Any(), gomock.Any()).Return(nil, dbErr)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
				m.monitor.EXPECT().IncAuditFailureMetric(map[string]string{"entity": "company", "action": "create"}).Return(nil)
				m.cache.EXPECT().Invalidate(gomock.Any())
			},
		},
		{
			name:  "storage failure skips the activity row",
			mode:  AuditBestEffort,
			actor: actor,
			input: input,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateCompany(gomock.Any(), input).Return(nil, dbErr)
			},
			wantErr: true,
		},
		{
			name:       "validation failure never reaches storage",
			mode:       AuditTransactional,
			actor:      actor,
			input:      &types.Company{Shortname: "acme"},
			setupMocks: func(m *serviceMocks) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMocks(m)

			c, err := m.service(tt.mode).CreateCompany(context.Background(), tt.actor, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.ID != "c-1" {
				t.Errorf("expected created company, got %+v", c)
			}
		})
	}
}

func TestService_UpdateCompany_InjectsUpdatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	s := m.service(AuditTransactional)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	s.now = func() time.Time { return now }

	patch := &types.CompanyPatch{City: strPtr("Lyon")}

	m.runInTx()
	m.storage.EXPECT().UpdateCompany(gomock.Any(), "c-1", patch, now.UTC()).Return(&types.Company{ID: "c-1", City: "Lyon"}, nil)
	m.storage.EXPECT().CreateActivityLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *types.ActivityLog) (*types.ActivityLog, error) {
			if a.Action != types.ActionUpdate || a.Details["message"] != "Company updated" {
				t.Errorf("unexpected activity %+v", a)
			}
			if a.CompanyID != nil {
				t.Errorf("expected no company attribution, got %q", *a.CompanyID)
			}
			return a, nil
		},
	)
	m.cache.EXPECT().Invalidate(gomock.Any())

	c, err := s.UpdateCompany(context.Background(), &types.Identity{UserID: "admin-1"}, "c-1", patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.City != "Lyon" {
		t.Errorf("expected updated city, got %q", c.City)
	}
}

func TestService_UpdateCompany_InvalidPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	_, err := m.service(AuditTransactional).UpdateCompany(context.Background(), nil, "c-1", &types.CompanyPatch{Name: strPtr("")})
	if err == nil {
		t.Fatal("expected validation error for empty name")
	}
}

func TestService_UpdateCompany_LogoURL(t *testing.T) {
	tests := []struct {
		name    string
		logoURL types.Optional[string]
		wantErr bool
	}{
		{name: "valid url", logoURL: types.Some("https://cdn.example.com/acme.png")},
		{name: "invalid url", logoURL: types.Some("not a url"), wantErr: true},
		{name: "explicit null clears", logoURL: types.Null[string]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			patch := &types.CompanyPatch{LogoURL: tt.logoURL}

			if !tt.wantErr {
				m.runInTx()
				m.storage.EXPECT().UpdateCompany(gomock.Any(), "c-1", patch, gomock.Any()).Return(&types.Company{ID: "c-1"}, nil)
				m.cache.EXPECT().Invalidate(gomock.Any())
			}

			_, err := m.service(AuditTransactional).UpdateCompany(context.Background(), nil, "c-1", patch)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestService_SuspendCompany(t *testing.T) {
	tests := []struct {
		name      string
		suspended bool
		action    types.Action
		message   string
	}{
		{name: "suspend", suspended: true, action: types.ActionSuspend, message: "Company suspended"},
		{name: "unsuspend", suspended: false, action: types.ActionUnsuspend, message: "Company unsuspended"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)

			m.runInTx()
			m.storage.EXPECT().UpdateCompany(gomock.Any(), "c-1", gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, patch *types.CompanyPatch, _ time.Time) (*types.Company, error) {
					if patch.Suspended == nil || *patch.Suspended != tt.suspended {
						t.Errorf("unexpected patch %+v", patch)
					}
					if len(patch.Changes()) != 1 {
						t.Errorf("suspend must only touch the suspended flag, got %v", patch.Changes())
					}
					return &types.Company{ID: "c-1", Suspended: tt.suspended}, nil
				},
			)
			// exactly one activity row per suspend call
			m.storage.EXPECT().CreateActivityLog(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, a *types.ActivityLog) (*types.ActivityLog, error) {
					if a.Action != tt.action || a.Details["message"] != tt.message {
						t.Errorf("unexpected activity %+v", a)
					}
					return a, nil
				},
			).Times(1)
			m.cache.EXPECT().Invalidate(gomock.Any())

			c, err := m.service(AuditTransactional).SuspendCompany(context.Background(), &types.Identity{UserID: "admin-1"}, "c-1", tt.suspended)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Suspended != tt.suspended {
				t.Errorf("expected suspended %v, got %v", tt.suspended, c.Suspended)
			}
		})
	}
}

func TestService_DeleteCompany_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	m.runInTx()
	m.storage.EXPECT().DeleteCompany(gomock.Any(), "missing").Return(storage.ErrNotFound)

	err := m.service(AuditTransactional).DeleteCompany(context.Background(), &types.Identity{UserID: "admin-1"}, "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ListUsers_EmbedsCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	m.storage.EXPECT().ListUsers(gomock.Any(), types.ListFilter{CompanyID: "c-1", Embed: types.EmbedCompany}).Return([]*types.User{}, nil)

	users, err := m.service(AuditTransactional).ListUsers(context.Background(), types.ListFilter{CompanyID: "c-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil {
		t.Error("expected empty non-nil slice")
	}
}

func TestService_GetLicense_EmbedsCompanyAndCourse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	m.storage.EXPECT().GetLicenseByID(gomock.Any(), "l-1", types.EmbedCompany|types.EmbedCourse).Return(&types.License{ID: "l-1"}, nil)

	if _, err := m.service(AuditTransactional).GetLicense(context.Background(), "l-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_CreateUser_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	_, err := m.service(AuditTransactional).CreateUser(context.Background(), nil, &types.User{Username: "amy", Email: "not-an-email", CompanyID: "c-1"})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestService_DeleteDepartment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	m.storage.EXPECT().DeleteDepartment(gomock.Any(), "d-1").Return(nil)
	m.storage.EXPECT().CreateActivityLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *types.ActivityLog) (*types.ActivityLog, error) {
			if a.Action != types.ActionDelete || a.EntityType != types.EntityDepartment || a.EntityID != "d-1" {
				t.Errorf("unexpected activity %+v", a)
			}
			return a, nil
		},
	)
	m.cache.EXPECT().Invalidate(gomock.Any())

	if err := m.service(AuditBestEffort).DeleteDepartment(context.Background(), &types.Identity{UserID: "admin-1"}, "d-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_LogActivity(t *testing.T) {
	tests := []struct {
		name       string
		actor      *types.Identity
		details    interface{}
		setupMocks func(*serviceMocks)
		wantErr    bool
	}{
		{
			name:       "anonymous is a silent no-op",
			actor:      nil,
			details:    "ignored",
			setupMocks: func(m *serviceMocks) {},
		},
		{
			name:       "empty user id is anonymous",
			actor:      &types.Identity{},
			details:    "ignored",
			setupMocks: func(m *serviceMocks) {},
		},
		{
			name:    "string details become a message",
			actor:   &types.Identity{UserID: "u-1"},
			details: "Exported report",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateActivityLog(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.ActivityLog) (*types.ActivityLog, error) {
						if len(a.Details) != 1 || a.Details["message"] != "Exported report" {
							t.Errorf("unexpected details %v", a.Details)
						}
						return a, nil
					},
				)
			},
		},
		{
			name:    "map details pass through",
			actor:   &types.Identity{UserID: "u-1"},
			details: map[string]interface{}{"seats": 3},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateActivityLog(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.ActivityLog) (*types.ActivityLog, error) {
						if a.Details["seats"] != 3 {
							t.Errorf("unexpected details %v", a.Details)
						}
						return a, nil
					},
				)
			},
		},
		{
			name:    "storage failure is returned",
			actor:   &types.Identity{UserID: "u-1"},
			details: "x",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateActivityLog(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMocks(m)

			err := m.service(AuditTransactional).LogActivity(context.Background(), tt.actor, types.ActionUpdate, types.EntityCourse, "k-1", tt.details)

			if tt.wantErr != (err != nil) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestService_ListActivity_Limits(t *testing.T) {
	tests := []struct {
		name     string
		limit    uint64
		expected uint64
	}{
		{name: "default", limit: 0, expected: defaultActivityLimit},
		{name: "explicit", limit: 20, expected: 20},
		{name: "capped", limit: 10000, expected: maxActivityLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)

			m.storage.EXPECT().ListActivityLogs(gomock.Any(), types.ActivityFilter{
				CompanyID: "c-1",
				Limit:     tt.expected,
				Embed:     types.EmbedUser | types.EmbedCompany,
			}).Return([]*types.ActivityLog{}, nil)

			if _, err := m.service(AuditTransactional).ListActivity(context.Background(), types.ActivityFilter{CompanyID: "c-1", Limit: tt.limit}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_GetDashboardStats(t *testing.T) {
	recent := []*types.ActivityLog{{ID: "a-1"}}
	dbErr := errors.New("db error")

	tests := []struct {
		name       string
		setupMocks func(*serviceMocks)
		expected   *types.DashboardStats
		wantErr    bool
	}{
		{
			name: "cache hit skips storage",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().Get(gomock.Any()).Return(&types.DashboardStats{TotalUsers: 9}, true)
			},
			expected: &types.DashboardStats{TotalUsers: 9},
		},
		{
			name: "fan-out assembles counts",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().Get(gomock.Any()).Return(nil, false)
				m.storage.EXPECT().CountCompaniesByStatus(gomock.Any()).Return(2, 1, nil)
				m.storage.EXPECT().CountUsers(gomock.Any()).Return(5, nil)
				m.storage.EXPECT().CountCourses(gomock.Any()).Return(2, nil)
				m.storage.EXPECT().CountLicenses(gomock.Any()).Return(4, nil)
				m.storage.EXPECT().ListActivityLogs(gomock.Any(), types.ActivityFilter{
					Limit: dashboardActivityLimit,
					Embed: types.EmbedUser | types.EmbedCompany,
				}).Return(recent, nil)
				m.cache.EXPECT().Set(gomock.Any(), gomock.Any())
			},
			expected: &types.DashboardStats{
				TotalCompanies:     3,
				TotalUsers:         5,
				TotalCourses:       2,
				TotalLicenses:      4,
				ActiveCompanies:    2,
				SuspendedCompanies: 1,
				RecentActivity:     recent,
			},
		},
		{
			name: "any failed read fails the call",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().Get(gomock.Any()).Return(nil, false)
				m.storage.EXPECT().CountCompaniesByStatus(gomock.Any()).Return(0, 0, nil).AnyTimes()
				m.storage.EXPECT().CountUsers(gomock.Any()).Return(0, dbErr).AnyTimes()
				m.storage.EXPECT().CountCourses(gomock.Any()).Return(0, nil).AnyTimes()
				m.storage.EXPECT().CountLicenses(gomock.Any()).Return(0, nil).AnyTimes()
				m.storage.EXPECT().ListActivityLogs(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMocks(m)

			stats, err := m.service(AuditTransactional).GetDashboardStats(context.Background())

			if tt.wantErr {
				if !errors.Is(err, dbErr) {
					t.Fatalf("expected wrapped db error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stats.TotalCompanies != tt.expected.TotalCompanies ||
				stats.TotalUsers != tt.expected.TotalUsers ||
				stats.TotalCourses != tt.expected.TotalCourses ||
				stats.TotalLicenses != tt.expected.TotalLicenses ||
				stats.ActiveCompanies != tt.expected.ActiveCompanies ||
				stats.SuspendedCompanies != tt.expected.SuspendedCompanies ||
				len(stats.RecentActivity) != len(tt.expected.RecentActivity) {
				t.Errorf("expected %+v, got %+v", tt.expected, stats)
			}
		})
	}
}

func TestService_NoopCacheIsAlwaysAMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	s := NewService(m.storage, m.tx, cache.NewNoopCache(), AuditTransactional, m.tracer, m.monitor, m.logger)

	m.storage.EXPECT().CountCompaniesByStatus(gomock.Any()).Return(0, 0, nil).Times(2)
	m.storage.EXPECT().CountUsers(gomock.Any()).Return(0, nil).Times(2)
	m.storage.EXPECT().CountCourses(gomock.Any()).Return(0, nil).Times(2)
	m.storage.EXPECT().CountLicenses(gomock.Any()).Return(0, nil).Times(2)
	m.storage.EXPECT().ListActivityLogs(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	for i := 0; i < 2; i++ {
		stats, err := s.GetDashboardStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.RecentActivity == nil {
			t.Error("expected non-nil recent activity")
		}
	}
}

func TestService_GetDashboardStats_MutationDuringReads(t *testing.T) {
	tests := []struct {
		name string
		// mutateOnSet commits a mutation while the stats are being cached
		// instead of while they are being read
		mutateOnSet bool
	}{
		{name: "mutation during the reads skips the cache"},
		{name: "mutation racing the cache write invalidates it", mutateOnSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			s := m.service(AuditBestEffort)

			commit := func() {
				if err := s.DeleteUser(context.Background(), nil, "u-1"); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}

			m.storage.EXPECT().DeleteUser(gomock.Any(), "u-1").Return(nil)

			m.cache.EXPECT().Get(gomock.Any()).Return(nil, false)
			m.storage.EXPECT().CountCompaniesByStatus(gomock.Any()).Return(1, 0, nil)
			m.storage.EXPECT().CountCourses(gomock.Any()).Return(0, nil)
			m.storage.EXPECT().CountLicenses(gomock.Any()).Return(0, nil)
			m.storage.EXPECT().ListActivityLogs(gomock.Any(), gomock.Any()).Return(nil, nil)

			if tt.mutateOnSet {
				m.storage.EXPECT().CountUsers(gomock.Any()).Return(1, nil)
				m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Do(func(context.Context, *types.DashboardStats) { commit() })
				// once by the mutation, once more to drop the stats just cached
				m.cache.EXPECT().Invalidate(gomock.Any()).Times(2)
			} else {
				m.cache.EXPECT().Invalidate(gomock.Any())
				m.storage.EXPECT().CountUsers(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
					commit()
					return 1, nil
				})
			}

			stats, err := s.GetDashboardStats(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stats.TotalUsers != 1 {
				t.Errorf("expected the computed stats to be returned, got %+v", stats)
			}
		})
	}
}
