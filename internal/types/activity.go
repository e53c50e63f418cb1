// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"fmt"
)

type Action string

const (
	ActionCreate    Action = "create"
	ActionUpdate    Action = "update"
	ActionDelete    Action = "delete"
	ActionSuspend   Action = "suspend"
	ActionUnsuspend Action = "unsuspend"
)

type EntityType string

const (
	EntityCompany    EntityType = "company"
	EntityUser       EntityType = "user"
	EntityCourse     EntityType = "course"
	EntityDepartment EntityType = "department"
	EntityLicense    EntityType = "license"
)

// NormalizeDetails turns the details argument of an activity into the
// structured record stored in the log. Plain text becomes {"message": text},
// maps pass through unchanged.
func NormalizeDetails(details interface{}) map[string]interface{} {
	switch d := details.(type) {
	case nil:
		return map[string]interface{}{}
	case string:
		return map[string]interface{}{"message": d}
	case map[string]interface{}:
		return d
	case map[string]string:
		m := make(map[string]interface{}, len(d))
		for k, v := range d {
			m[k] = v
		}
		return m
	}

	raw, err := json.Marshal(details)
	if err == nil {
		var m map[string]interface{}
		if err := json.Unmarshal(raw, &m); err == nil && m != nil {
			return m
		}
	}

	return map[string]interface{}{"message": fmt.Sprint(details)}
}
