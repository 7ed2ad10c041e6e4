package httpapi

import (
	"context"
	"net/http"
	"strings"

	"brasserie/internal/domain"
)

type contextKey string

const staffKey contextKey = "staff"

// sessionToken pulls the session token from the cookie set at login or from
// a bearer header, whichever is present.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie("session"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// RequireAuth gates management routes behind a valid staff session and puts
// the resolved staff identity on the request context.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staff, err := h.Auth.Authenticate(r.Context(), sessionToken(r))
		if err != nil {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), staffKey, staff)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func staffFromContext(ctx context.Context) *domain.StaffUser {
	staff, _ := ctx.Value(staffKey).(*domain.StaffUser)
	return staff
}
