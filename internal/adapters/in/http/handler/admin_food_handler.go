// internal/adapters/in/http/handler/admin_food_handler.go
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "foodcourt/internal/application/usecase"
	fooddom "foodcourt/internal/domain/food"
)

// maxImageUpload caps admin image uploads (multipart memory + body).
const maxImageUpload = 10 << 20 // 10 MiB

// FoodImageStore is the object-storage port the admin panel goes through.
type FoodImageStore interface {
	Upload(ctx context.Context, foodID, fileName, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

// AdminFoodHandler serves the admin panel's catalog CRUD (admin gate applied
// by middleware):
//   - POST   /api/admin/foods
//   - PUT    /api/admin/foods/{id}
//   - DELETE /api/admin/foods/{id}
//   - POST   /api/admin/foods/{id}/image  (multipart upload, field "image")
type AdminFoodHandler struct {
	uc     *usecase.CatalogUsecase
	images FoodImageStore
}

func NewAdminFoodHandler(uc *usecase.CatalogUsecase, images FoodImageStore) http.Handler {
	return &AdminFoodHandler{uc: uc, images: images}
}

func (h *AdminFoodHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "admin food handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(path, "/foods"):
		h.handleCreate(w, r, start)
	case r.Method == http.MethodPost && strings.HasSuffix(path, "/image"):
		h.handleUploadImage(w, r, start)
	case r.Method == http.MethodPut:
		h.handleUpdate(w, r, start)
	case r.Method == http.MethodDelete:
		h.handleDelete(w, r, start)
	default:
		methodNotAllowed(w)
	}
}

func (h *AdminFoodHandler) handleCreate(w http.ResponseWriter, r *http.Request, start time.Time) {
	var in usecase.CreateFoodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	f, err := h.uc.Create(r.Context(), in)
	if err != nil {
		h.writeUCErr(w, r, start, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (h *AdminFoodHandler) handleUpdate(w http.ResponseWriter, r *http.Request, start time.Time) {
	id := lastPathSegment(r)

	var p fooddom.Patch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	f, err := h.uc.Update(r.Context(), id, p)
	if err != nil {
		h.writeUCErr(w, r, start, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *AdminFoodHandler) handleDelete(w http.ResponseWriter, r *http.Request, start time.Time) {
	id := lastPathSegment(r)

	// grab the image URL before the doc disappears
	var imageURL string
	if h.images != nil {
		if f, err := h.uc.Get(r.Context(), id); err == nil {
			imageURL = f.Image
		}
	}

	if err := h.uc.Delete(r.Context(), id); err != nil {
		h.writeUCErr(w, r, start, "delete", err)
		return
	}

	// best effort; the catalog doc is already gone
	if h.images != nil && imageURL != "" {
		if err := h.images.Delete(r.Context(), imageURL); err != nil {
			log.Printf("[admin_food_handler] image cleanup failed id=%q err=%v", id, err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// handleUploadImage stores the image and patches the food's image URL.
func (h *AdminFoodHandler) handleUploadImage(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.images == nil {
		writeErr(w, http.StatusServiceUnavailable, "image storage is not configured")
		return
	}

	// path: .../foods/{id}/image
	path := strings.TrimRight(r.URL.Path, "/")
	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		writeErr(w, http.StatusBadRequest, "food id is required")
		return
	}
	id := strings.TrimSpace(parts[len(parts)-2])

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUpload)
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeErr(w, http.StatusBadRequest, `multipart field "image" is required`)
		return
	}
	defer file.Close()

	url, err := h.images.Upload(r.Context(), id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		log.Printf("[admin_food_handler] image upload failed id=%q err=%v elapsed=%s", id, err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	f, err := h.uc.Update(r.Context(), id, fooddom.Patch{Image: &url})
	if err != nil {
		h.writeUCErr(w, r, start, "image-patch", err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *AdminFoodHandler) writeUCErr(w http.ResponseWriter, r *http.Request, start time.Time, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrCatalogNotFound):
		writeErr(w, http.StatusNotFound, "not found")
	case errors.Is(err, usecase.ErrCatalogInvalidArgument):
		writeErr(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[admin_food_handler] %s failed path=%q err=%v elapsed=%s", op, r.URL.Path, err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, err.Error())
	}
}
