// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/canonical/lms-admin/internal/storage"
	"github.com/canonical/lms-admin/internal/types"
)

// memStore is an in-memory StorageInterface used to check the facade
// end to end without a database.
type memStore struct {
	mu    sync.Mutex
	clock time.Time
	seq   int

	companies   []*types.Company
	users       []*types.User
	courses     []*types.Course
	departments []*types.Department
	licenses    []*types.License
	activity    []*types.ActivityLog
}

var _ StorageInterface = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memStore) tick() (string, time.Time) {
	m.seq++
	m.clock = m.clock.Add(time.Second)
	return fmt.Sprintf("id-%03d", m.seq), m.clock
}

// applyPatch overlays the set fields of patch onto row; patch and row share
// JSON field names.
func applyPatch(row, patch interface{}) error {
	raw, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, row)
}

func newestFirst[T any](rows []*T, created func(*T) time.Time, keep func(*T) bool) []*T {
	out := make([]*T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			c := *r
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return created(out[i]).After(created(out[j])) })
	return out
}

func find[T any](rows []*T, id string, key func(*T) string) (int, error) {
	for i, r := range rows {
		if key(r) == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%s: %w", id, storage.ErrNotFound)
}

func remove[T any](rows []*T, id string, key func(*T) string) ([]*T, error) {
	i, err := find(rows, id, key)
	if err != nil {
		return rows, err
	}
	return append(rows[:i], rows[i+1:]...), nil
}

func byCompany(companyID, rowCompany string) bool {
	return companyID == "" || companyID == rowCompany
}

// touched mirrors the database rule: updated_at never moves backwards and
// always advances by at least a microsecond.
func touched(prev, at time.Time) time.Time {
	if floor := prev.Add(time.Microsecond); at.Before(floor) {
		return floor
	}
	return at
}

func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func (m *memStore) ListCompanies(_ context.Context, filter types.CompanyFilter) ([]*types.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return newestFirst(m.companies, func(c *types.Company) time.Time { return c.CreatedAt }, func(c *types.Company) bool {
		return (filter.Suspended == nil || *filter.Suspended == c.Suspended) &&
			matches(filter.Search, c.Name, c.Shortname, c.City)
	}), nil
}

func (m *memStore) GetCompanyByID(_ context.Context, id string) (*types.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := find(m.companies, id, func(c *types.Company) string { return c.ID })
	if err != nil {
		return nil, err
	}
	c := *m.companies[i]
	return &c, nil
}

func (m *memStore) CreateCompany(_ context.Context, c *types.Company) (*types.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *c
	row.ID, row.CreatedAt = m.tick()
	row.UpdatedAt = row.CreatedAt
	m.companies = append(m.companies, &row)
	out := row
	return &out, nil
}

func (m *memStore) UpdateCompany(_ context.Context, id string, patch *types.CompanyPatch, updatedAt time.Time) (*types.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := find(m.companies, id, func(c *types.Company) string { return c.ID })
	if err != nil {
		return nil, err
	}
	if err := applyPatch(m.companies[i], patch); err != nil {
		return nil, err
	}
	m.companies[i].UpdatedAt = touched(m.companies[i].UpdatedAt, updatedAt)
	out := *m.companies[i]
	return &out, nil
}

func (m *memStore) DeleteCompany(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var err error
	m.companies, err = remove(m.companies, id, func(c *types.Company) string { return c.ID })
	return err
}

func (m *memStore) ListUsers(_ context.Context, filter types.ListFilter) ([]*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return newestFirst(m.users, func(u *types.User) time.Time { return u.CreatedAt }, func(u *types.User) bool {
		return byCompany(filter.CompanyID, u.CompanyID) &&
			matches(filter.Search, u.Firstname, u.Lastname, u.Email, u.Username)
	}), nil
}

func (m *memStore) GetUserByID(_ context.Context, id string, _ types.Embed) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := find(m.users, id, func(u *types.User) string { return u.ID })
	if err != nil {
		return nil, err
	}
	u := *m.users[i]
	return &u, nil
}

func (m *memStore) CreateUser(_ context.Context, u *types.User, _ types.Embed) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *u
	row.ID, row.CreatedAt = m.tick()
	row.UpdatedAt = row.CreatedAt
	m.users = append(m.users, &row)
	out := row
	return &out, nil
}

func (m *memStore) UpdateUser(_ context.Context, id string, patch *types.UserPatch, updatedAt time.Time, _ types.Embed) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := find(m.users, id, func(u *types.User) string { return u.ID })
	if err != nil {
		return nil, err
	}
	if err := applyPatch(m.users[i], patch); err != nil {
		return nil, err
	}
	m.users[i].UpdatedAt = touched(m.users[i].UpdatedAt, updatedAt)
	out := *m.users[i]
	return &out, nil
}

func (m *memStore) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var err error
	m.users, err = remove(m.users, id, func(u *types.User) string { return u.ID })
	return err
}

func (m *memStore) ListCourses(_ context.Context, filter types.ListFilter) ([]*types.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return newestFirst(m.courses, func(c *types.Course) time.Time { return c.CreatedAt }, func(c *types.Course) bool {
		return byCompany(filter.CompanyID, c.CompanyID) &&
			matches(filter.Search, c.Fullname, c.Shortname)
	}), nil
}

func (m *memStore) GetCourseByID(_ context.Context, id string, _ types.Embed) (*types.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := find(m.courses, id, func(c *types.Course) string { return c.ID })
	if err != nil {
		return nil, err
	}
	c := *m.courses[i]
	return &c, nil
}

func (m *memStore) CreateCourse(_ context.Context, c *types.Course, _ types.Embed) (*types.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *c
	row.ID, row.CreatedAt = m.tick()
	row.UpdatedAt = row.CreatedAt
	m.courses = append(m.courses, &row)
	out := row
	return &out, nil
}

func (m *memStore) UpdateCourse(_ context.Context, id string, patch *types.CoursePatch, updatedAt time.Time, _ types.Embed) (*types.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := find(m.courses, id, func(c *types.Course) string { return c.ID })
	if err != nil {
		return nil, err
	}
	if err := applyPatch(m.courses[i], patch); err != nil {
		return nil, err
	}
	m.courses[i].UpdatedAt = touched(m.courses[i].UpdatedAt, updatedAt)
	out := *m.courses[i]
	return &out, nil
}

func (m *memStore) DeleteCourse(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var err error
	m.courses, err = remove(m.courses, id, func(c *types.Course) string { return c.ID })
	return err
}

func (m *memStore) ListDepartments(_ context.Context, filter types.ListFilter) ([]*types.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return newestFirst(m.departments, func(d *types.Department) time.Time { return d.CreatedAt }, func(d *types.Department) bool {
		return byCompany(filter.CompanyID, d.CompanyID) &&
			matches(filter.Search, d.Name, d.Shortname)
	}), nil
}

func (m *memStore) GetDepartmentByID(_ context.Context, id string, _ types.Embed) (*types.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := find(m.departments, id, func(d *types.Department) string { return d.ID })
	if err != nil {
		return nil, err
	}
	d := *m.departments[i]
	return &d, nil
}

func (m *memStore) CreateDepartment(_ context.Context, d *types.Department, _ types.Embed) (*types.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *d
	row.ID, row.CreatedAt = m.tick()
	row.UpdatedAt = row.CreatedAt
	m.departments = append(m.departments, &row)
	out := row
	return &out, nil
}

func (m *memStore) UpdateDepartment(_ context.Context, id string, patch *types.DepartmentPatch, updatedAt time.Time, _ types.Embed) (*types.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := find(m.departments, id, func(d *types.Department) string { return d.ID })
	if err != nil {
		return nil, err
	}
	if err := applyPatch(m.departments[i], patch); err != nil {
		return nil, err
	}
	m.departments[i].UpdatedAt = touched(m.departments[i].UpdatedAt, updatedAt)
	out := *m.departments[i]
	return &out, nil
}

func (m *memStore) DeleteDepartment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var err error
	m.departments, err = remove(m.departments, id, func(d *types.Department) string { return d.ID })
	return err
}

func (m *memStore) ListLicenses(_ context.Context, filter types.ListFilter) ([]*types.License, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return newestFirst(m.licenses, func(l *types.License) time.Time { return l.CreatedAt }, func(l *types.License) bool {
		return byCompany(filter.CompanyID, l.CompanyID) &&
			matches(filter.Search, l.Name)
	}), nil
}

func (m *memStore) GetLicenseByID(_ context.Context, id string, _ types.Embed) (*types.License, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := find(m.licenses, id, func(l *types.License) string { return l.ID })
	if err != nil {
		return nil, err
	}
	l := *m.licenses[i]
	return &l, nil
}

func (m *memStore) CreateLicense(_ context.Context, l *types.License, _ types.Embed) (*types.License, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *l
	row.ID, row.CreatedAt = m.tick()
	row.UpdatedAt = row.CreatedAt
	m.licenses = append(m.licenses, &row)
	out := row
	return &out, nil
}

func (m *memStore) UpdateLicense(_ context.Context, id string, patch *types.LicensePatch, updatedAt time.Time, _ types.Embed) (*types.License, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := find(m.licenses, id, func(l *types.License) string { return l.ID })
	if err != nil {
		return nil, err
	}
	if err := applyPatch(m.licenses[i], patch); err != nil {
		return nil, err
	}
	m.licenses[i].UpdatedAt = touched(m.licenses[i].UpdatedAt, updatedAt)
	out := *m.licenses[i]
	return &out, nil
}

func (m *memStore) DeleteLicense(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var err error
	m.licenses, err = remove(m.licenses, id, func(l *types.License) string { return l.ID })
	return err
}

func (m *memStore) CreateActivityLog(_ context.Context, a *types.ActivityLog) (*types.ActivityLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *a
	row.ID, row.CreatedAt = m.tick()
	m.activity = append(m.activity, &row)
	out := row
	return &out, nil
}

func (m *memStore) ListActivityLogs(_ context.Context, filter types.ActivityFilter) ([]*types.ActivityLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := newestFirst(m.activity, func(a *types.ActivityLog) time.Time { return a.CreatedAt }, func(a *types.ActivityLog) bool {
		return filter.CompanyID == "" || (a.CompanyID != nil && *a.CompanyID == filter.CompanyID)
	})
	if filter.Limit > 0 && uint64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *memStore) CountCompaniesByStatus(_ context.Context) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var active, suspended int
	for _, c := range m.companies {
		if c.Suspended {
			suspended++
		} else {
			active++
		}
	}
	return active, suspended, nil
}

func (m *memStore) CountUsers(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users), nil
}

func (m *memStore) CountCourses(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.courses), nil
}

func (m *memStore) CountLicenses(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.licenses), nil
}

// inlineTx runs the unit of work without a transaction.
type inlineTx struct{}

func (inlineTx) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
