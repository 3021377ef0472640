// internal/adapters/in/http/handler/checkout_handler.go
package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"foodcourt/internal/adapters/in/http/middleware"
	usecase "foodcourt/internal/application/usecase"
)

// CheckoutHandler serves order submission (auth required):
//   - POST /api/checkout        (submit current cart as an order)
//   - GET  /api/checkout/orders (order history for the caller)
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) http.Handler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "checkout handler is not configured")
		return
	}

	uid, ok := middleware.UIDFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.handleSubmit(w, r, uid, start)
	case http.MethodGet:
		h.handleHistory(w, r, uid, start)
	default:
		methodNotAllowed(w)
	}
}

func (h *CheckoutHandler) handleSubmit(w http.ResponseWriter, r *http.Request, uid string, start time.Time) {
	sid := readSessionID(r)
	if sid == "" {
		writeErr(w, http.StatusBadRequest, "session id is required")
		return
	}

	o, err := h.uc.Submit(r.Context(), uid, sid)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCheckoutEmptyCart):
			writeErr(w, http.StatusConflict, "cart is empty")
		case errors.Is(err, usecase.ErrCheckoutBadPrice),
			errors.Is(err, usecase.ErrCheckoutInvalidArgument):
			writeErr(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[checkout_handler] submit failed uid=%q sessionId=%q err=%v elapsed=%s",
				uid, sid, err, time.Since(start))
			writeErr(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, o)
}

func (h *CheckoutHandler) handleHistory(w http.ResponseWriter, r *http.Request, uid string, start time.Time) {
	orders, err := h.uc.History(r.Context(), uid)
	if err != nil {
		log.Printf("[checkout_handler] history failed uid=%q err=%v elapsed=%s", uid, err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}
