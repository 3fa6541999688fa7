package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-core-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type callerKey struct{}

// AuthRequired accepts verified access tokens whose session is still live,
// and stores the caller identity in the request context.
func AuthRequired(ja *jwtauth.JWTAuth, sessions auth.SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, _, err := jwtauth.FromContext(ctx)

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(ctx)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != jwt.TokenTypeAccess || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			caller, err := auth.IdentityFromClaims(claims)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			active, err := sessions.IsSessionActive(ctx, caller.ID, caller.SessionID)
			if err != nil {
				slog.Error("session lookup failed", "employee_id", caller.ID, "error", err)
				response.InternalServerError(w, "An unexpected error occurred")
				return
			}
			if !active {
				response.HandleError(w, auth.ErrSessionEnded)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, callerKey{}, caller)))
		}
		return http.HandlerFunc(hfn)
	}
}

// CallerFromContext returns the identity stored by AuthRequired.
func CallerFromContext(ctx context.Context) (auth.Identity, bool) {
	caller, ok := ctx.Value(callerKey{}).(auth.Identity)
	return caller, ok
}

// WithCaller stores caller in ctx the way AuthRequired does.
func WithCaller(ctx context.Context, caller auth.Identity) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}
