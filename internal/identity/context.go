// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/canonical/lms-admin/internal/types"
)

type contextKey struct{}

// WithIdentity returns a copy of ctx carrying the acting identity.
func WithIdentity(ctx context.Context, id *types.Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the acting identity, or nil when the request is
// anonymous.
func FromContext(ctx context.Context) *types.Identity {
	id, _ := ctx.Value(contextKey{}).(*types.Identity)
	if id.IsAnonymous() {
		return nil
	}
	return id
}
