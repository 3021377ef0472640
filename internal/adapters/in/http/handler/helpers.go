// internal/adapters/in/http/handler/helpers.go
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"foodcourt/internal/adapters/in/http/middleware"
)

// ============================================================
// HTTP helpers
// ============================================================

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErr(w, http.StatusMethodNotAllowed, "method_not_allowed")
}

// readSessionID resolves the cart session:
// X-Session-Id header, sessionId query param, then the authenticated uid.
// Anonymous sessions work as long as the client presents a session id.
func readSessionID(r *http.Request) string {
	if v := strings.TrimSpace(r.Header.Get("X-Session-Id")); v != "" {
		return v
	}
	if v := strings.TrimSpace(r.URL.Query().Get("sessionId")); v != "" {
		return v
	}
	if uid, ok := middleware.UIDFromContext(r.Context()); ok {
		return uid
	}
	return ""
}

// lastPathSegment returns the final non-empty path element of r.URL.Path.
func lastPathSegment(r *http.Request) string {
	p := strings.TrimRight(r.URL.Path, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return strings.TrimSpace(p[i+1:])
	}
	return ""
}
