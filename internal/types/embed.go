// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "strings"

// Embed is a join specification: the related records to resolve inline
// alongside the rows of a list or get call.
type Embed uint8

const (
	EmbedCompany Embed = 1 << iota
	EmbedCourse
	EmbedUser

	EmbedNone Embed = 0
)

func (e Embed) Has(f Embed) bool {
	return e&f == f && f != EmbedNone
}

func (e Embed) String() string {
	if e == EmbedNone {
		return "none"
	}

	var parts []string
	if e.Has(EmbedCompany) {
		parts = append(parts, "company")
	}
	if e.Has(EmbedCourse) {
		parts = append(parts, "course")
	}
	if e.Has(EmbedUser) {
		parts = append(parts, "user")
	}
	return strings.Join(parts, ",")
}
