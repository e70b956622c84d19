package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

type ctxKey struct{}

// requestID propagates a caller-supplied X-Request-Id or assigns a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// RequestID returns the id assigned to the request carrying ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// recoverer turns handler panics into 500 responses and reports them to
// Sentry when a client is configured.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			hub := sentry.CurrentHub().Clone()
			hub.Scope().SetTag("request_id", RequestID(r.Context()))
			hub.Scope().SetRequest(r)
			hub.Recover(rec)
			s.logger.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				ID:     RequestID(r.Context()),
				Detail: fmt.Sprintf("internal error: %v", rec),
			})
		}()
		next.ServeHTTP(w, r)
	})
}
