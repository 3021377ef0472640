// internal/adapters/in/http/handler/signin_handler.go
package handler

import (
	"log"
	"net/http"
	"time"

	"foodcourt/internal/adapters/in/http/middleware"
	usecase "foodcourt/internal/application/usecase"
)

// SignInHandler bootstraps the user doc after Firebase sign-in (auth required):
//   - POST /api/auth/bootstrap
//
// Idempotent: returning users just get their existing doc back.
type SignInHandler struct {
	uc *usecase.UserUsecase
}

func NewSignInHandler(uc *usecase.UserUsecase) http.Handler {
	return &SignInHandler{uc: uc}
}

func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "signin handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.UIDFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	email, _ := middleware.EmailFromContext(r.Context())

	u, err := h.uc.Bootstrap(r.Context(), uid, email)
	if err != nil {
		log.Printf("[signin_handler] bootstrap failed uid=%q err=%v elapsed=%s", uid, err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, u)
}
