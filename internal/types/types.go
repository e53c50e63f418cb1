// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Company struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" validate:"required"`
	Shortname string    `db:"shortname" json:"shortname" validate:"required"`
	City      string    `db:"city" json:"city"`
	Country   string    `db:"country" json:"country"`
	Theme     string    `db:"theme" json:"theme"`
	LogoURL   *string   `db:"logo_url" json:"logo_url,omitempty" validate:"omitempty,url"`
	Suspended bool      `db:"suspended" json:"suspended"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type User struct {
	ID         string    `db:"id" json:"id"`
	Username   string    `db:"username" json:"username" validate:"required"`
	Email      string    `db:"email" json:"email" validate:"required,email"`
	Firstname  string    `db:"firstname" json:"firstname"`
	Lastname   string    `db:"lastname" json:"lastname"`
	CompanyID  string    `db:"company_id" json:"company_id" validate:"required"`
	Department *string   `db:"department" json:"department,omitempty"`
	ManagerID  *string   `db:"manager_id" json:"manager_id,omitempty"`
	Suspended  bool      `db:"suspended" json:"suspended"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`

	Company *Company `db:"-" json:"company,omitempty"`
}

type Course struct {
	ID         string    `db:"id" json:"id"`
	Fullname   string    `db:"fullname" json:"fullname" validate:"required"`
	Shortname  string    `db:"shortname" json:"shortname" validate:"required"`
	Summary    string    `db:"summary" json:"summary"`
	CompanyID  string    `db:"company_id" json:"company_id" validate:"required"`
	CategoryID string    `db:"category_id" json:"category_id"`
	Visible    bool      `db:"visible" json:"visible"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`

	Company *Company `db:"-" json:"company,omitempty"`
}

type Department struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" validate:"required"`
	Shortname string    `db:"shortname" json:"shortname" validate:"required"`
	CompanyID string    `db:"company_id" json:"company_id" validate:"required"`
	ParentID  *string   `db:"parent_id" json:"parent_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	Company *Company `db:"-" json:"company,omitempty"`
}

// License allocates seats on a course to a company. Used is not checked
// against Allocation.
type License struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name" validate:"required"`
	CompanyID  string    `db:"company_id" json:"company_id" validate:"required"`
	CourseID   string    `db:"course_id" json:"course_id" validate:"required"`
	Allocation int       `db:"allocation" json:"allocation" validate:"gte=0"`
	Used       int       `db:"used" json:"used" validate:"gte=0"`
	ValidFrom  time.Time `db:"valid_from" json:"valid_from"`
	ValidTo    time.Time `db:"valid_to" json:"valid_to"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`

	Company *Company `db:"-" json:"company,omitempty"`
	Course  *Course  `db:"-" json:"course,omitempty"`
}

type ActivityLog struct {
	ID         string                 `db:"id" json:"id"`
	Action     Action                 `db:"action" json:"action"`
	EntityType EntityType             `db:"entity_type" json:"entity_type"`
	EntityID   string                 `db:"entity_id" json:"entity_id"`
	UserID     string                 `db:"user_id" json:"user_id"`
	CompanyID  *string                `db:"company_id" json:"company_id"`
	Details    map[string]interface{} `db:"details" json:"details"`
	CreatedAt  time.Time              `db:"created_at" json:"created_at"`

	User    *User    `db:"-" json:"user,omitempty"`
	Company *Company `db:"-" json:"company,omitempty"`
}

type DashboardStats struct {
	TotalCompanies     int            `json:"total_companies"`
	TotalUsers         int            `json:"total_users"`
	TotalCourses       int            `json:"total_courses"`
	TotalLicenses      int            `json:"total_licenses"`
	ActiveCompanies    int            `json:"active_companies"`
	SuspendedCompanies int            `json:"suspended_companies"`
	RecentActivity     []*ActivityLog `json:"recent_activity"`
}

// Identity is the acting principal of a request. CompanyID comes from the
// session metadata and may be absent.
type Identity struct {
	UserID    string  `json:"user_id"`
	CompanyID *string `json:"company_id,omitempty"`
}

// IsAnonymous reports whether there is no one to attribute activity to.
func (i *Identity) IsAnonymous() bool {
	return i == nil || i.UserID == ""
}

type CompanyFilter struct {
	Suspended *bool
	// Search matches rows whose text columns contain the term, ignoring case.
	Search string
}

type ListFilter struct {
	CompanyID string
	Search    string
	Embed     Embed
}

type ActivityFilter struct {
	CompanyID string
	Limit     uint64
	Embed     Embed
}
