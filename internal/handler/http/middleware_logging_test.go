package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func zerologTo(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		handler      http.HandlerFunc
		wantContains []string
	}{
		{
			name:   "GET 200 with body",
			method: http.MethodGet,
			path:   "/api/courses",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte("[]"))
			},
			wantContains: []string{`"method":"GET"`, `"uri":"/api/courses"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:   "DELETE 204",
			method: http.MethodDelete,
			path:   "/api/courses/1",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantContains: []string{`"method":"DELETE"`, `"status":204`, `"size":0`},
		},
		{
			name:         "handler that writes nothing",
			method:       http.MethodGet,
			path:         "/",
			handler:      func(http.ResponseWriter, *http.Request) {},
			wantContains: []string{`"status":200`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerologTo(&buf).WithContext(req.Context()))

			newTestHandler(nil, nil).withLogging(tt.handler).ServeHTTP(httptest.NewRecorder(), req)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
