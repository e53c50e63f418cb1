// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "time"

// Patch types carry partial updates: nil fields are left untouched, set
// fields are validated even when empty. Nullable columns use Optional so an
// explicit null clears them.
// Changes returns the column map for the fields that are set.

type CompanyPatch struct {
	Name      *string          `json:"name,omitempty" validate:"omitnil,min=1"`
	Shortname *string          `json:"shortname,omitempty" validate:"omitnil,min=1"`
	City      *string          `json:"city,omitempty"`
	Country   *string          `json:"country,omitempty"`
	Theme     *string          `json:"theme,omitempty"`
	LogoURL   Optional[string] `json:"logo_url,omitzero" validate:"omitempty,url"`
	Suspended *bool            `json:"suspended,omitempty"`
}

func (p *CompanyPatch) Changes() map[string]interface{} {
	m := make(map[string]interface{})
	if p == nil {
		return m
	}
	setIf(m, "name", p.Name)
	setIf(m, "shortname", p.Shortname)
	setIf(m, "city", p.City)
	setIf(m, "country", p.Country)
	setIf(m, "theme", p.Theme)
	setOptional(m, "logo_url", p.LogoURL)
	setIf(m, "suspended", p.Suspended)
	return m
}

type UserPatch struct {
	Username   *string          `json:"username,omitempty" validate:"omitnil,min=1"`
	Email      *string          `json:"email,omitempty" validate:"omitnil,email"`
	Firstname  *string          `json:"firstname,omitempty"`
	Lastname   *string          `json:"lastname,omitempty"`
	CompanyID  *string          `json:"company_id,omitempty" validate:"omitnil,min=1"`
	Department Optional[string] `json:"department,omitzero"`
	ManagerID  Optional[string] `json:"manager_id,omitzero"`
	Suspended  *bool            `json:"suspended,omitempty"`
}

func (p *UserPatch) Changes() map[string]interface{} {
	m := make(map[string]interface{})
	if p == nil {
		return m
	}
	setIf(m, "username", p.Username)
	setIf(m, "email", p.Email)
	setIf(m, "firstname", p.Firstname)
	setIf(m, "lastname", p.Lastname)
	setIf(m, "company_id", p.CompanyID)
	setOptional(m, "department", p.Department)
	setOptional(m, "manager_id", p.ManagerID)
	setIf(m, "suspended", p.Suspended)
	return m
}

type CoursePatch struct {
	Fullname   *string `json:"fullname,omitempty" validate:"omitnil,min=1"`
	Shortname  *string `json:"shortname,omitempty" validate:"omitnil,min=1"`
	Summary    *string `json:"summary,omitempty"`
	CompanyID  *string `json:"company_id,omitempty" validate:"omitnil,min=1"`
	CategoryID *string `json:"category_id,omitempty"`
	Visible    *bool   `json:"visible,omitempty"`
}

func (p *CoursePatch) Changes() map[string]interface{} {
	m := make(map[string]interface{})
	if p == nil {
		return m
	}
	setIf(m, "fullname", p.Fullname)
	setIf(m, "shortname", p.Shortname)
	setIf(m, "summary", p.Summary)
	setIf(m, "company_id", p.CompanyID)
	setIf(m, "category_id", p.CategoryID)
	setIf(m, "visible", p.Visible)
	return m
}

type DepartmentPatch struct {
	Name      *string          `json:"name,omitempty" validate:"omitnil,min=1"`
	Shortname *string          `json:"shortname,omitempty" validate:"omitnil,min=1"`
	CompanyID *string          `json:"company_id,omitempty" validate:"omitnil,min=1"`
	ParentID  Optional[string] `json:"parent_id,omitzero"`
}

func (p *DepartmentPatch) Changes() map[string]interface{} {
	m := make(map[string]interface{})
	if p == nil {
		return m
	}
	setIf(m, "name", p.Name)
	setIf(m, "shortname", p.Shortname)
	setIf(m, "company_id", p.CompanyID)
	setOptional(m, "parent_id", p.ParentID)
	return m
}

type LicensePatch struct {
	Name       *string    `json:"name,omitempty" validate:"omitnil,min=1"`
	CompanyID  *string    `json:"company_id,omitempty" validate:"omitnil,min=1"`
	CourseID   *string    `json:"course_id,omitempty" validate:"omitnil,min=1"`
	Allocation *int       `json:"allocation,omitempty" validate:"omitnil,gte=0"`
	Used       *int       `json:"used,omitempty" validate:"omitnil,gte=0"`
	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidTo    *time.Time `json:"valid_to,omitempty"`
}

func (p *LicensePatch) Changes() map[string]interface{} {
	m := make(map[string]interface{})
	if p == nil {
		return m
	}
	setIf(m, "name", p.Name)
	setIf(m, "company_id", p.CompanyID)
	setIf(m, "course_id", p.CourseID)
	setIf(m, "allocation", p.Allocation)
	setIf(m, "used", p.Used)
	setIf(m, "valid_from", p.ValidFrom)
	setIf(m, "valid_to", p.ValidTo)
	return m
}

func setIf[T any](m map[string]interface{}, column string, v *T) {
	if v != nil {
		m[column] = *v
	}
}

func setOptional[T any](m map[string]interface{}, column string, v Optional[T]) {
	if v.Set {
		m[column] = v.column()
	}
}
