package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-core-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hrms-core-go/internal/handler/http/response"
)

// caller returns the authenticated identity, writing a 401 when it is missing.
func caller(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		slog.Error("caller identity missing from context", "path", r.URL.Path)
		response.Unauthorized(w, "Unauthorized")
		return auth.Identity{}, false
	}
	return identity, true
}

// queryInt reads a positive integer query parameter, falling back to def.
func queryInt(r *http.Request, key string, def int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

// queryString returns a pointer to a non-empty query parameter.
func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}
