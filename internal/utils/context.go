// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/MKhiriev/courses-api/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the context key under which the authentication
// middleware stores the authenticated [models.User].
var CurrentUserCtxKey = contextKey("currentUser")

// WithCurrentUser returns a copy of ctx carrying user.
func WithCurrentUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, CurrentUserCtxKey, user)
}

// GetCurrentUserFromContext returns the authenticated user stored in ctx.
func GetCurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}
