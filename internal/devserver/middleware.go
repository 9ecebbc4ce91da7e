package devserver

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/vy-hr/portal-go/internal/domain/session"
)

// AuthRequired rejects requests whose bearer token is missing, expired,
// or carries no employee identity. Runs behind jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			writeMsg(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		employeeID, ok := claims["employeeId"].(string)
		if !ok || employeeID == "" {
			writeMsg(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminOnly requires the ADMIN role claim. The client hides admin views
// from non-admins, but the server is the actual authorization boundary.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			writeMsg(w, http.StatusForbidden, "Admin access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || session.Role(role) != session.RoleAdmin {
			writeMsg(w, http.StatusForbidden, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// employeeIDFromContext pulls the caller's identity out of the verified
// token. AuthRequired guarantees it is present on protected routes.
func employeeIDFromContext(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	employeeID, _ := claims["employeeId"].(string)
	return employeeID
}
