package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/courses-api/internal/config"
	"github.com/MKhiriev/courses-api/internal/logger"
	"github.com/MKhiriev/courses-api/internal/service"
	"github.com/MKhiriev/courses-api/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for unit tests.
// Each method field can be overridden per test case.
type mockUserService struct {
	registerUserFn func(ctx context.Context, user models.NewUser) (models.User, error)
	authenticateFn func(ctx context.Context, emailAddress, password string) (models.User, error)
}

func (m *mockUserService) RegisterUser(ctx context.Context, user models.NewUser) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockUserService) Authenticate(ctx context.Context, emailAddress, password string) (models.User, error) {
	if m.authenticateFn == nil {
		return authenticateJoe(ctx, emailAddress, password)
	}
	return m.authenticateFn(ctx, emailAddress, password)
}

// mockCourseService implements service.CourseService for unit tests.
type mockCourseService struct {
	listCoursesFn  func(ctx context.Context) ([]models.Course, error)
	getCourseFn    func(ctx context.Context, id int64) (models.Course, error)
	createCourseFn func(ctx context.Context, owner models.User, course models.NewCourse) (models.Course, error)
	updateCourseFn func(ctx context.Context, user models.User, id int64, update models.CourseUpdate) error
	deleteCourseFn func(ctx context.Context, user models.User, id int64) error
}

func (m *mockCourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return m.listCoursesFn(ctx)
}

func (m *mockCourseService) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	return m.getCourseFn(ctx, id)
}

func (m *mockCourseService) CreateCourse(ctx context.Context, owner models.User, course models.NewCourse) (models.Course, error) {
	return m.createCourseFn(ctx, owner, course)
}

func (m *mockCourseService) UpdateCourse(ctx context.Context, user models.User, id int64, update models.CourseUpdate) error {
	return m.updateCourseFn(ctx, user, id, update)
}

func (m *mockCourseService) DeleteCourse(ctx context.Context, user models.User, id int64) error {
	return m.deleteCourseFn(ctx, user, id)
}

// ─────────────────────────────────────────────
// Fixtures & helpers
// ─────────────────────────────────────────────

const (
	joeEmail    = "joe@smith.com"
	joePassword = "joepassword12"
)

var joe = models.User{ID: 1, FirstName: "Joe", LastName: "Smith", EmailAddress: joeEmail}

func authenticateJoe(_ context.Context, emailAddress, password string) (models.User, error) {
	if emailAddress != joeEmail {
		return models.User{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, service.ErrUnknownEmail)
	}
	if password != joePassword {
		return models.User{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, service.ErrWrongPassword)
	}
	return joe, nil
}

func newTestHandler(users service.UserService, courses service.CourseService) *Handler {
	if users == nil {
		users = &mockUserService{}
	}
	if courses == nil {
		courses = &mockCourseService{}
	}
	return NewHandler(&service.Services{UserService: users, CourseService: courses}, config.App{}, logger.Nop())
}

// serve sends a request through the full router.
func serve(h *Handler, method, target, body string, withAuth bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if withAuth {
		req.SetBasicAuth(joeEmail, joePassword)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var body models.ErrorsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Errors
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.App{EnableGlobalErrorLogging: true}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.True(t, h.logErrors)
}

// ─────────────────────────────────────────────
// Routing
// ─────────────────────────────────────────────

func TestWelcome(t *testing.T) {
	rec := serve(newTestHandler(nil, nil), http.MethodGet, "/", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Welcome to User/Courses API!", decodeMessage(t, rec))
}

func TestRouteNotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/nope"},
		{name: "unknown api path", method: http.MethodGet, target: "/api/nope"},
		{name: "unsupported method on users", method: http.MethodDelete, target: "/api/users"},
		{name: "unsupported method on courses", method: http.MethodPatch, target: "/api/courses/1"},
		{name: "post on root", method: http.MethodPost, target: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newTestHandler(nil, nil), tt.method, tt.target, "", false)

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"message":"Route Not Found"}`, rec.Body.String())
		})
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/users"},
		{http.MethodPost, "/api/courses"},
		{http.MethodPut, "/api/courses/1"},
		{http.MethodDelete, "/api/courses/1"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			rec := serve(newTestHandler(nil, nil), route.method, route.target, `{}`, false)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Access Denied"}`, rec.Body.String())
		})
	}
}

func TestRecoversFromPanic(t *testing.T) {
	courses := &mockCourseService{
		listCoursesFn: func(context.Context) ([]models.Course, error) {
			panic("boom")
		},
	}

	rec := serve(newTestHandler(nil, courses), http.MethodGet, "/api/courses", "", false)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
