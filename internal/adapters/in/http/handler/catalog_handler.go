// internal/adapters/in/http/handler/catalog_handler.go
package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "foodcourt/internal/application/usecase"
)

// CatalogHandler serves the buyer-facing catalog:
//   - GET /api/catalog        (list)
//   - GET /api/catalog/{id}   (detail)
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "catalog handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	if strings.HasSuffix(path, "/catalog") {
		h.handleList(w, r, start)
		return
	}
	h.handleGet(w, r, start)
}

func (h *CatalogHandler) handleList(w http.ResponseWriter, r *http.Request, start time.Time) {
	foods, err := h.uc.List(r.Context())
	if err != nil {
		log.Printf("[catalog_handler] list failed err=%v elapsed=%s", err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"foods": foods})
}

func (h *CatalogHandler) handleGet(w http.ResponseWriter, r *http.Request, start time.Time) {
	id := lastPathSegment(r)
	f, err := h.uc.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCatalogNotFound):
			writeErr(w, http.StatusNotFound, "not found")
		case errors.Is(err, usecase.ErrCatalogInvalidArgument):
			writeErr(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[catalog_handler] get failed id=%q err=%v elapsed=%s", id, err, time.Since(start))
			writeErr(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, f)
}
