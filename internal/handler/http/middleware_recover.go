// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/courses-api/internal/logger"
)

// withRecover turns a panic in a downstream handler into a 500
// {"message": ...} response written by writeError. The stack is logged when
// global error logging is on. [http.ErrAbortHandler] is re-panicked so the
// server can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			err, ok := rec.(error)
			if ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			err = fmt.Errorf("%w: %w", ErrPanicRecovered, err)

			if h.logErrors {
				logger.FromRequest(r).Error().
					Str("panic", fmt.Sprint(rec)).
					Bytes("stack", debug.Stack()).
					Msg("recovered from panic")
			}

			h.writeError(w, r, err)
		}()

		next.ServeHTTP(w, r)
	})
}
