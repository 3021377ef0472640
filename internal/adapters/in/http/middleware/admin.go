// internal/adapters/in/http/middleware/admin.go
package middleware

import (
	"context"
	"log"
	"net/http"
)

// AdminChecker resolves whether a uid carries the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}

// AdminOnly gates the admin panel: it must run AFTER Auth so the uid is in
// the context, and forbids everyone whose user doc lacks isAdmin.
type AdminOnly struct {
	Users AdminChecker
}

func (m *AdminOnly) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Users == nil {
			http.Error(w, "admin middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		uid, ok := UIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		isAdmin, err := m.Users.IsAdmin(r.Context(), uid)
		if err != nil {
			log.Printf("[admin_mw] WARN: role lookup failed uid=%q err=%v", uid, err)
			http.Error(w, "role lookup failed", http.StatusInternalServerError)
			return
		}
		if !isAdmin {
			http.Error(w, "forbidden: admin only", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
