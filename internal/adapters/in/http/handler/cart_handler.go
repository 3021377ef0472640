// internal/adapters/in/http/handler/cart_handler.go
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

// CartHandler serves the cart endpoints:
//   - GET    /api/cart          (current contents + ready flag)
//   - DELETE /api/cart          (clear)
//   - POST   /api/cart/items    (add one item by foodId)
//   - DELETE /api/cart/items    (remove all entries for foodId)
//
// The session id comes from X-Session-Id / sessionId query (or the uid when
// the caller is authenticated); no auth is required to use the cart.
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

type cartItemRequest struct {
	FoodID string `json:"foodId"`
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	sid := readSessionID(r)
	if sid == "" {
		writeErr(w, http.StatusBadRequest, "session id is required")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	onItems := strings.HasSuffix(path, "/items")

	switch {
	case r.Method == http.MethodGet && !onItems:
		h.respond(w, r, start, "get")(h.uc.Get(r.Context(), sid))

	case r.Method == http.MethodDelete && !onItems:
		h.respond(w, r, start, "clear")(h.uc.Clear(r.Context(), sid))

	case r.Method == http.MethodPost && onItems:
		req, ok := h.decodeItem(w, r)
		if !ok {
			return
		}
		h.respond(w, r, start, "add")(h.uc.AddItem(r.Context(), sid, req.FoodID))

	case r.Method == http.MethodDelete && onItems:
		// allow foodId via query for DELETE bodies that clients drop
		fid := strings.TrimSpace(r.URL.Query().Get("foodId"))
		if fid == "" {
			req, ok := h.decodeItem(w, r)
			if !ok {
				return
			}
			fid = req.FoodID
		}
		h.respond(w, r, start, "remove")(h.uc.RemoveItem(r.Context(), sid, fid))

	default:
		methodNotAllowed(w)
	}
}

func (h *CartHandler) decodeItem(w http.ResponseWriter, r *http.Request) (cartItemRequest, bool) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return cartItemRequest{}, false
	}
	if strings.TrimSpace(req.FoodID) == "" {
		writeErr(w, http.StatusBadRequest, "foodId is required")
		return cartItemRequest{}, false
	}
	return req, true
}

func (h *CartHandler) respond(w http.ResponseWriter, r *http.Request, start time.Time, op string) func(usecase.CartView, error) {
	return func(v usecase.CartView, err error) {
		if err == nil {
			writeJSON(w, http.StatusOK, v)
			return
		}

		switch {
		case errors.Is(err, usecase.ErrCartFoodNotFound):
			writeErr(w, http.StatusNotFound, "food not found")
		case errors.Is(err, usecase.ErrCartInvalidArgument):
			writeErr(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[cart_handler] %s failed method=%s path=%q err=%v elapsed=%s",
				op, r.Method, r.URL.Path, err, time.Since(start))
			writeErr(w, http.StatusInternalServerError, err.Error())
		}
	}
}
