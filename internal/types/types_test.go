// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestEmbed(t *testing.T) {
	tests := []struct {
		embed    Embed
		has      []Embed
		hasNot   []Embed
		expected string
	}{
		{embed: EmbedNone, hasNot: []Embed{EmbedCompany, EmbedCourse, EmbedUser, EmbedNone}, expected: "none"},
		{embed: EmbedCompany, has: []Embed{EmbedCompany}, hasNot: []Embed{EmbedCourse}, expected: "company"},
		{embed: EmbedCompany | EmbedCourse, has: []Embed{EmbedCompany, EmbedCourse, EmbedCompany | EmbedCourse}, hasNot: []Embed{EmbedUser}, expected: "company,course"},
		{embed: EmbedUser | EmbedCompany, has: []Embed{EmbedUser, EmbedCompany}, expected: "company,user"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			for _, f := range tt.has {
				if !tt.embed.Has(f) {
					t.Errorf("expected %s to include %s", tt.embed, f)
				}
			}
			for _, f := range tt.hasNot {
				if tt.embed.Has(f) {
					t.Errorf("expected %s not to include %s", tt.embed, f)
				}
			}
			if got := tt.embed.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

type seatChange struct {
	Seats int    `json:"seats"`
	Note  string `json:"note"`
}

func TestNormalizeDetails(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected map[string]interface{}
	}{
		{name: "nil", input: nil, expected: map[string]interface{}{}},
		{name: "text", input: "Company created", expected: map[string]interface{}{"message": "Company created"}},
		{name: "map", input: map[string]interface{}{"seats": 3}, expected: map[string]interface{}{"seats": 3}},
		{name: "string map", input: map[string]string{"from": "a"}, expected: map[string]interface{}{"from": "a"}},
		{name: "struct", input: seatChange{Seats: 4, Note: "x"}, expected: map[string]interface{}{"seats": float64(4), "note": "x"}},
		{name: "scalar", input: 42, expected: map[string]interface{}{"message": "42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDetails(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPatchChanges(t *testing.T) {
	name := "Acme"
	suspended := false
	used := 0
	validTo := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		changes  map[string]interface{}
		expected map[string]interface{}
	}{
		{name: "nil patch", changes: (*CompanyPatch)(nil).Changes(), expected: map[string]interface{}{}},
		{name: "empty patch", changes: (&UserPatch{}).Changes(), expected: map[string]interface{}{}},
		{
			name:     "zero values are kept when set",
			changes:  (&CompanyPatch{Name: &name, Suspended: &suspended}).Changes(),
			expected: map[string]interface{}{"name": "Acme", "suspended": false},
		},
		{
			name:     "explicit null clears a nullable column",
			changes:  (&UserPatch{Department: Some("Sales"), ManagerID: Null[string]()}).Changes(),
			expected: map[string]interface{}{"department": "Sales", "manager_id": nil},
		},
		{
			name:     "license",
			changes:  (&LicensePatch{Used: &used, ValidTo: &validTo}).Changes(),
			expected: map[string]interface{}{"used": 0, "valid_to": validTo},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.changes, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, tt.changes)
			}
		})
	}
}

func TestOptionalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Optional[string]
	}{
		{name: "absent key is untouched", body: `{}`, expected: Optional[string]{}},
		{name: "null clears", body: `{"parent_id": null}`, expected: Null[string]()},
		{name: "value sets", body: `{"parent_id": "d-1"}`, expected: Some("d-1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch DepartmentPatch
			if err := json.Unmarshal([]byte(tt.body), &patch); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(patch.ParentID, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, patch.ParentID)
			}

			raw, err := json.Marshal(patch)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var again DepartmentPatch
			if err := json.Unmarshal(raw, &again); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(again.ParentID, tt.expected) {
				t.Errorf("expected %+v after re-encoding %s, got %+v", tt.expected, raw, again.ParentID)
			}
		})
	}

	if err := json.Unmarshal([]byte(`{"parent_id": 3}`), new(DepartmentPatch)); err == nil {
		t.Error("expected a type error for a non-string parent_id")
	}
}

func TestIdentityIsAnonymous(t *testing.T) {
	var nilIdentity *Identity

	if !nilIdentity.IsAnonymous() {
		t.Errorf("expected a nil identity to be anonymous")
	}
	if !(&Identity{}).IsAnonymous() {
		t.Errorf("expected an empty identity to be anonymous")
	}
	if (&Identity{UserID: "u-1"}).IsAnonymous() {
		t.Errorf("expected an identity with a user to be attributable")
	}
}
