// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/courses-api/models"
)

func TestContextKeyString(t *testing.T) {
	if CurrentUserCtxKey.String() != "currentUser" {
		t.Errorf("expected 'currentUser', got '%s'", CurrentUserCtxKey.String())
	}
}

func TestGetCurrentUserFromContext_Success(t *testing.T) {
	ctx := WithCurrentUser(context.Background(), models.User{ID: 42, EmailAddress: "joe@smith.com"})

	user, ok := GetCurrentUserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if user.ID != 42 || user.EmailAddress != "joe@smith.com" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestGetCurrentUserFromContext_Missing(t *testing.T) {
	_, ok := GetCurrentUserFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetCurrentUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CurrentUserCtxKey, "not a user")

	if _, ok := GetCurrentUserFromContext(ctx); ok {
		t.Error("expected ok=false for wrong value type")
	}
}
