package api

import (
	"log/slog"
	"net/http"
	"time"

	"sales-service/internal/api/handlers"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// WriteAuthorizer reports whether the request may perform writes. The check
// itself is external to this service; here it is just yes or no.
type WriteAuthorizer func(r *http.Request) bool

// TokenAuthorizer authorizes writes carrying the configured bearer token.
// An empty token disables the check.
func TokenAuthorizer(token string) WriteAuthorizer {
	return func(r *http.Request) bool {
		if token == "" {
			return true
		}
		return r.Header.Get("Authorization") == "Bearer "+token
	}
}

func requireWriteAuth(authorize WriteAuthorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authorize != nil && !authorize(r) {
				handlers.WriteError(w, http.StatusUnauthorized, "unauthorized", "write authorization required", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		slog.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
