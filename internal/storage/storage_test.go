// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/lms-admin/internal/db"
	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/tracing"
	"github.com/canonical/lms-admin/internal/types"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	c := db.NewDBClientFromSQL(sqlDB, tracer, monitor, logger)
	return NewStorage(c, tracer, monitor, logger), mock
}

func companyRow(rows *sqlmock.Rows, id, name string, suspended bool) *sqlmock.Rows {
	return rows.AddRow(id, name, "short-"+id, "Leeds", "GB", "default", nil, suspended, testTime, testTime)
}

func TestListCompanies(t *testing.T) {
	suspended := true

	tests := []struct {
		name   string
		filter types.CompanyFilter
		query  string
		args   []driver.Value
	}{
		{
			name:   "no filter",
			filter: types.CompanyFilter{},
			query:  `SELECT .* FROM companies ORDER BY created_at DESC`,
		},
		{
			name:   "suspended filter",
			filter: types.CompanyFilter{Suspended: &suspended},
			query:  `SELECT .* FROM companies WHERE suspended = \$1 ORDER BY created_at DESC`,
			args:   []driver.Value{true},
		},
		{
			name:   "search",
			filter: types.CompanyFilter{Search: "lee"},
			query:  `SELECT .* FROM companies WHERE \(name ILIKE \$1 OR shortname ILIKE \$2 OR city ILIKE \$3\) ORDER BY created_at DESC`,
			args:   []driver.Value{"%lee%", "%lee%", "%lee%"},
		},
		{
			name:   "search escapes wildcards",
			filter: types.CompanyFilter{Suspended: &suspended, Search: `50%_off\`},
			query:  `SELECT .* FROM companies WHERE suspended = \$1 AND \(name ILIKE \$2 OR shortname ILIKE \$3 OR city ILIKE \$4\)`,
			args:   []driver.Value{true, `%50\%\_off\\%`, `%50\%\_off\\%`, `%50\%\_off\\%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)

			rows := companyRow(sqlmock.NewRows(companyColumns), "c2", "Beta", true)
			rows = companyRow(rows, "c1", "Alpha", true)

			expect := mock.ExpectQuery(tt.query)
			if len(tt.args) > 0 {
				expect = expect.WithArgs(tt.args...)
			}
			expect.WillReturnRows(rows)

			companies, err := s.ListCompanies(context.Background(), tt.filter)

			require.NoError(t, err)
			require.Len(t, companies, 2)
			assert.Equal(t, "c2", companies[0].ID)
			assert.Nil(t, companies[0].LogoURL)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListCompanies_EmptyIsNotNil(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT .* FROM companies`).WillReturnRows(sqlmock.NewRows(companyColumns))

	companies, err := s.ListCompanies(context.Background(), types.CompanyFilter{})

	require.NoError(t, err)
	assert.NotNil(t, companies)
	assert.Empty(t, companies)
}

func TestGetCompanyByID_NotFound(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT .* FROM companies WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(companyColumns))

	_, err := s.GetCompanyByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCompany(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "created"},
		{name: "duplicate shortname", dbErr: &pgconn.PgError{Code: pgErrCodeUniqueViolation}, wantErr: ErrDuplicateKey},
		{name: "driver failure", dbErr: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)

			expect := mock.ExpectQuery(`INSERT INTO companies \(id,name,shortname,city,country,theme,logo_url,suspended\) VALUES .* RETURNING id, name`).
				WithArgs(sqlmock.AnyArg(), "Acme", "acme", "", "", "", nil, false)
			if tt.dbErr != nil {
				expect.WillReturnError(tt.dbErr)
			} else {
				expect.WillReturnRows(companyRow(sqlmock.NewRows(companyColumns), "c1", "Acme", false))
			}

			c, err := s.CreateCompany(context.Background(), &types.Company{Name: "Acme", Shortname: "acme"})

			switch {
			case tt.dbErr == nil:
				require.NoError(t, err)
				assert.Equal(t, "c1", c.ID)
				assert.Equal(t, testTime, c.CreatedAt)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.ErrorIs(t, err, tt.dbErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateCompany_SetsOnlyChangedColumns(t *testing.T) {
	s, mock := newTestStorage(t)
	name := "Renamed"
	now := testTime.Add(time.Hour)

	mock.ExpectQuery(`UPDATE companies SET name = \$1, updated_at = GREATEST\(\$2::timestamptz, updated_at \+ interval '1 microsecond'\) WHERE id = \$3 RETURNING`).
		WithArgs("Renamed", now, "c1").
		WillReturnRows(companyRow(sqlmock.NewRows(companyColumns), "c1", "Renamed", false))

	c, err := s.UpdateCompany(context.Background(), "c1", &types.CompanyPatch{Name: &name}, now)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", c.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCompany(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "not found", affected: 0, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)

			mock.ExpectExec(`DELETE FROM companies WHERE id = \$1`).
				WithArgs("c1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := s.DeleteCompany(context.Background(), "c1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCountCompaniesByStatus(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT suspended, COUNT\(\*\) FROM companies GROUP BY suspended`).
		WillReturnRows(sqlmock.NewRows([]string{"suspended", "count"}).AddRow(false, 7).AddRow(true, 2))

	active, suspended, err := s.CountCompaniesByStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, active)
	assert.Equal(t, 2, suspended)
}

func TestCountUsers(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := s.CountUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestListUsers_EmbedsCompanyWithOneQuery(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT .* FROM users WHERE company_id = \$1 ORDER BY created_at DESC`).
		WithArgs("c1").
		WillReturnRows(
			sqlmock.NewRows(userColumns).
				AddRow("u2", "bob", "bob@example.com", "Bob", "B", "c1", nil, nil, false, testTime, testTime).
				AddRow("u1", "amy", "amy@example.com", "Amy", "A", "c1", "Sales", "u2", false, testTime, testTime),
		)
	mock.ExpectQuery(`SELECT .* FROM companies WHERE id IN \(\$1\)`).
		WithArgs("c1").
		WillReturnRows(companyRow(sqlmock.NewRows(companyColumns), "c1", "Acme", false))

	users, err := s.ListUsers(context.Background(), types.ListFilter{CompanyID: "c1", Embed: types.EmbedCompany})

	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		require.NotNil(t, u.Company)
		assert.Equal(t, "Acme", u.Company.Name)
	}
	require.NotNil(t, users[1].Department)
	assert.Equal(t, "Sales", *users[1].Department)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_Search(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT .* FROM users WHERE company_id = \$1 AND \(firstname ILIKE \$2 OR lastname ILIKE \$3 OR email ILIKE \$4 OR username ILIKE \$5\) ORDER BY created_at DESC`).
		WithArgs("c1", "%Amy%", "%Amy%", "%Amy%", "%Amy%").
		WillReturnRows(
			sqlmock.NewRows(userColumns).
				AddRow("u1", "amy", "amy@example.com", "Amy", "A", "c1", nil, nil, false, testTime, testTime),
		)

	users, err := s.ListUsers(context.Background(), types.ListFilter{CompanyID: "c1", Search: "Amy"})

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Nil(t, users[0].Company)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourseByID_WithoutEmbedSkipsJoin(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT .* FROM courses WHERE id = \$1`).
		WithArgs("k1").
		WillReturnRows(sqlmock.NewRows(courseColumns).AddRow("k1", "Go 101", "go101", "", "c1", "", true, testTime, testTime))

	c, err := s.GetCourseByID(context.Background(), "k1", types.EmbedNone)

	require.NoError(t, err)
	assert.Nil(t, c.Company)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDepartment_ForeignKeyViolation(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`INSERT INTO departments`).
		WillReturnError(&pgconn.PgError{Code: pgErrCodeForeignKeyViolation})

	_, err := s.CreateDepartment(context.Background(), &types.Department{Name: "Ops", Shortname: "ops", CompanyID: "nope"}, types.EmbedNone)

	assert.ErrorIs(t, err, ErrForeignKeyViolation)
}

func TestListLicenses_EmbedsCompanyAndCourse(t *testing.T) {
	s, mock := newTestStorage(t)
	validTo := testTime.AddDate(1, 0, 0)

	mock.ExpectQuery(`SELECT .* FROM licenses ORDER BY created_at DESC`).
		WillReturnRows(
			sqlmock.NewRows(licenseColumns).
				AddRow("l1", "Seats", "c1", "k1", 10, 12, testTime, validTo, testTime, testTime),
		)
	mock.ExpectQuery(`SELECT .* FROM companies WHERE id IN`).
		WithArgs("c1").
		WillReturnRows(companyRow(sqlmock.NewRows(companyColumns), "c1", "Acme", false))
	mock.ExpectQuery(`SELECT .* FROM courses WHERE id IN`).
		WithArgs("k1").
		WillReturnRows(sqlmock.NewRows(courseColumns).AddRow("k1", "Go 101", "go101", "", "c1", "", true, testTime, testTime))

	licenses, err := s.ListLicenses(context.Background(), types.ListFilter{Embed: types.EmbedCompany | types.EmbedCourse})

	require.NoError(t, err)
	require.Len(t, licenses, 1)
	assert.Equal(t, 12, licenses[0].Used)
	require.NotNil(t, licenses[0].Company)
	require.NotNil(t, licenses[0].Course)
	assert.Equal(t, "Go 101", licenses[0].Course.Fullname)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateActivityLog_EncodesDetails(t *testing.T) {
	s, mock := newTestStorage(t)
	companyID := "c1"

	mock.ExpectQuery(`INSERT INTO activity_logs`).
		WithArgs(sqlmock.AnyArg(), "create", "company", "c1", "u1", &companyID, `{"message":"Company created"}`).
		WillReturnRows(
			sqlmock.NewRows(activityColumns).
				AddRow("a1", "create", "company", "c1", "u1", "c1", []byte(`{"message":"Company created"}`), testTime),
		)

	a, err := s.CreateActivityLog(context.Background(), &types.ActivityLog{
		Action:     types.ActionCreate,
		EntityType: types.EntityCompany,
		EntityID:   "c1",
		UserID:     "u1",
		CompanyID:  &companyID,
		Details:    map[string]interface{}{"message": "Company created"},
	})

	require.NoError(t, err)
	assert.Equal(t, types.ActionCreate, a.Action)
	assert.Equal(t, "Company created", a.Details["message"])
	require.NotNil(t, a.CompanyID)
	assert.Equal(t, "c1", *a.CompanyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActivityLogs_LimitAndUserEmbed(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT .* FROM activity_logs ORDER BY created_at DESC LIMIT 5`).
		WillReturnRows(
			sqlmock.NewRows(activityColumns).
				AddRow("a2", "update", "user", "u9", "u1", nil, []byte(`{}`), testTime).
				AddRow("a1", "create", "company", "c1", "u1", "c1", nil, testTime),
		)
	mock.ExpectQuery(`SELECT .* FROM users WHERE id IN \(\$1\)`).
		WithArgs("u1").
		WillReturnRows(
			sqlmock.NewRows(userColumns).
				AddRow("u1", "amy", "amy@example.com", "Amy", "A", "c1", nil, nil, false, testTime, testTime),
		)

	logs, err := s.ListActivityLogs(context.Background(), types.ActivityFilter{Limit: 5, Embed: types.EmbedUser})

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Nil(t, logs[0].CompanyID)
	assert.NotNil(t, logs[1].Details)
	for _, a := range logs {
		require.NotNil(t, a.User)
		assert.Equal(t, "amy", a.User.Username)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: ErrDuplicateKey},
		{name: "fk", err: &pgconn.PgError{Code: "23503"}, want: ErrForeignKeyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapError(tt.err, "op")
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
