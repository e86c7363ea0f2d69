package chi

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/api"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/config"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggerMiddleware is a custom logging middleware
func LoggerMiddleware(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				if r.URL.Path != "/health" {

					l.Info("http_request",
						"request_id", middleware.GetReqID(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
						"status", ww.Status(),
						"duration", time.Since(start),
					)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// RequireUser extracts the caller's username from the X-User header, set by
// the authenticating reverse proxy, and stores it in the request context.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := r.Header.Get("X-User")
		if username == "" {
			api.WriteError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(api.WithUser(r.Context(), username)))
	})
}

// BasicAuthMiddleware protects the storage-admin surface. An unconfigured
// password is an operational error answered with 500, never a silent bypass.
func BasicAuthMiddleware(cfg config.StorageAdminConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Password == "" {
				logger.Error("storage admin password not configured")
				api.WriteError(w, http.StatusInternalServerError, "storage admin credentials not configured")
				return
			}

			username, password, ok := r.BasicAuth()
			usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.Username)) == 1
			passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.Password)) == 1
			if !ok || !usernameMatch || !passwordMatch {
				w.Header().Set("WWW-Authenticate", `Basic realm="storage"`)
				api.WriteError(w, http.StatusUnauthorized, "invalid credentials")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
