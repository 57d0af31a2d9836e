package middleware

import (
	"net/http"

	"github.com/finadvise/auth-service/internal/audit"
	"github.com/finadvise/auth-service/internal/domain"
)

// RequireRoles gates a route on exact role-set membership. An empty set
// means any authenticated identity. There is no hierarchy: the set must name
// every role it accepts. Assumes Auth() has already injected claims.
func RequireRoles(required domain.RoleSet, aud *audit.Logger, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				// Middleware ordering issue (Auth not applied) or context missing
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			if !domain.Authorize(claims.Role, required) {
				if aud != nil {
					aud.AccessDenied(r.Context(), claims.Username, string(claims.Role), r.URL.Path)
				}
				writeErr(w, r, domain.ErrInsufficientRole())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
