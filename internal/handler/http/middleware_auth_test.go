package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/courses-api/internal/utils"
	"github.com/MKhiriev/courses-api/models"
)

// runAuth runs authenticateUser in front of a handler that records the user
// found in the context. The middleware logs into buf.
func runAuth(t *testing.T, h *Handler, setup func(r *http.Request), buf *bytes.Buffer) (*httptest.ResponseRecorder, *models.User) {
	t.Helper()

	var gotUser *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetCurrentUserFromContext(r.Context())
		require.True(t, ok)
		gotUser = &user
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(zerolog.New(buf).WithContext(req.Context()))
	if setup != nil {
		setup(req)
	}

	rec := httptest.NewRecorder()
	h.authenticateUser(next).ServeHTTP(rec, req)
	return rec, gotUser
}

func TestAuthenticateUser_Success(t *testing.T) {
	var buf bytes.Buffer
	rec, user := runAuth(t, newTestHandler(nil, nil), func(r *http.Request) {
		r.SetBasicAuth(joeEmail, joePassword)
	}, &buf)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, user)
	assert.Equal(t, joe, *user)
	assert.Contains(t, buf.String(), "authentication successful")
}

func TestAuthenticateUser_FailuresAreIndistinguishable(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantReason string
	}{
		{
			name:       "no header",
			wantReason: "auth header not found",
		},
		{
			name:       "not basic scheme",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") },
			wantReason: "auth header not found",
		},
		{
			name:       "garbage credentials",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Basic !!!") },
			wantReason: "auth header not found",
		},
		{
			name:       "unknown email",
			setup:      func(r *http.Request) { r.SetBasicAuth("nobody@smith.com", joePassword) },
			wantReason: "no user with such email address",
		},
		{
			name:       "wrong password",
			setup:      func(r *http.Request) { r.SetBasicAuth(joeEmail, "wrongpassword1") },
			wantReason: "wrong password",
		},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rec, user := runAuth(t, newTestHandler(nil, nil), tt.setup, &buf)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, user)
			assert.JSONEq(t, `{"message":"Access Denied"}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), tt.wantReason)
			assert.Contains(t, buf.String(), tt.wantReason)
			assert.Contains(t, buf.String(), `"level":"warn"`)

			bodies = append(bodies, rec.Body.String())
		})
	}

	for _, body := range bodies[1:] {
		assert.Equal(t, bodies[0], body)
	}
}

func TestAuthenticateUser_StorageErrorIsNotAccessDenied(t *testing.T) {
	users := &mockUserService{
		authenticateFn: func(context.Context, string, string) (models.User, error) {
			return models.User{}, errors.New("database is locked")
		},
	}

	var buf bytes.Buffer
	rec, user := runAuth(t, newTestHandler(users, nil), func(r *http.Request) {
		r.SetBasicAuth(joeEmail, joePassword)
	}, &buf)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, user)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())
}
