// internal/adapters/in/http/handler/admin_user_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "foodcourt/internal/application/usecase"
)

// AdminUserHandler serves the admin panel's role management (admin gate
// applied by middleware):
//   - GET /api/admin/users
//   - PUT /api/admin/users/{uid}/role   body: {"isAdmin": true|false}
type AdminUserHandler struct {
	uc *usecase.UserUsecase
}

func NewAdminUserHandler(uc *usecase.UserUsecase) http.Handler {
	return &AdminUserHandler{uc: uc}
}

type setRoleRequest struct {
	IsAdmin bool `json:"isAdmin"`
}

func (h *AdminUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "admin user handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/users"):
		h.handleList(w, r, start)
	case r.Method == http.MethodPut && strings.HasSuffix(path, "/role"):
		h.handleSetRole(w, r, start)
	default:
		methodNotAllowed(w)
	}
}

func (h *AdminUserHandler) handleList(w http.ResponseWriter, r *http.Request, start time.Time) {
	users, err := h.uc.List(r.Context())
	if err != nil {
		log.Printf("[admin_user_handler] list failed err=%v elapsed=%s", err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *AdminUserHandler) handleSetRole(w http.ResponseWriter, r *http.Request, start time.Time) {
	// path: .../users/{uid}/role
	path := strings.TrimRight(r.URL.Path, "/")
	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		writeErr(w, http.StatusBadRequest, "uid is required")
		return
	}
	uid := strings.TrimSpace(parts[len(parts)-2])

	var req setRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	u, err := h.uc.SetAdmin(r.Context(), uid, req.IsAdmin)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			writeErr(w, http.StatusNotFound, "user not found")
		case errors.Is(err, usecase.ErrUserInvalidArgument):
			writeErr(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[admin_user_handler] set role failed uid=%q err=%v elapsed=%s", uid, err, time.Since(start))
			writeErr(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, u)
}
