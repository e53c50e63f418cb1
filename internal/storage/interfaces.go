// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/lms-admin/internal/types"
)

type StorageInterface interface {
	ListCompanies(ctx context.Context, filter types.CompanyFilter) ([]*types.Company, error)
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error)
	UpdateCompany(ctx context.Context, id string, patch *types.CompanyPatch, updatedAt time.Time) (*types.Company, error)
	DeleteCompany(ctx context.Context, id string) error

	ListUsers(ctx context.Context, filter types.ListFilter) ([]*types.User, error)
	GetUserByID(ctx context.Context, id string, embed types.Embed) (*types.User, error)
	CreateUser(ctx context.Context, u *types.User, embed types.Embed) (*types.User, error)
	UpdateUser(ctx context.Context, id string, patch *types.UserPatch, updatedAt time.Time, embed types.Embed) (*types.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListCourses(ctx context.Context, filter types.ListFilter) ([]*types.Course, error)
	GetCourseByID(ctx context.Context, id string, embed types.Embed) (*types.Course, error)
	CreateCourse(ctx context.Context, c *types.Course, embed types.Embed) (*types.Course, error)
	UpdateCourse(ctx context.Context, id string, patch *types.CoursePatch, updatedAt time.Time, embed types.Embed) (*types.Course, error)
	DeleteCourse(ctx context.Context, id string) error

	ListDepartments(ctx context.Context, filter types.ListFilter) ([]*types.Department, error)
	GetDepartmentByID(ctx context.Context, id string, embed types.Embed) (*types.Department, error)
	CreateDepartment(ctx context.Context, d *types.Department, embed types.Embed) (*types.Department, error)
	UpdateDepartment(ctx context.Context, id string, patch *types.DepartmentPatch, updatedAt time.Time, embed types.Embed) (*types.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	ListLicenses(ctx context.Context, filter types.ListFilter) ([]*types.License, error)
	GetLicenseByID(ctx context.Context, id string, embed types.Embed) (*types.License, error)
	CreateLicense(ctx context.Context, l *types.License, embed types.Embed) (*types.License, error)
	UpdateLicense(ctx context.Context, id string, patch *types.LicensePatch, updatedAt time.Time, embed types.Embed) (*types.License, error)
	DeleteLicense(ctx context.Context, id string) error

	CreateActivityLog(ctx context.Context, a *types.ActivityLog) (*types.ActivityLog, error)
	ListActivityLogs(ctx context.Context, filter types.ActivityFilter) ([]*types.ActivityLog, error)

	CountCompaniesByStatus(ctx context.Context) (active int, suspended int, err error)
	CountUsers(ctx context.Context) (int, error)
	CountCourses(ctx context.Context) (int, error)
	CountLicenses(ctx context.Context) (int, error)
}
