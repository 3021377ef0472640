// internal/adapters/in/http/handler/cart_handler_test.go
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "foodcourt/internal/application/usecase"
	fooddom "foodcourt/internal/domain/food"
	"foodcourt/internal/session"
)

type stubFoodRepo struct {
	byID map[string]*fooddom.Food
}

func (r *stubFoodRepo) GetByID(ctx context.Context, id string) (*fooddom.Food, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *stubFoodRepo) List(ctx context.Context) ([]*fooddom.Food, error) { return nil, nil }
func (r *stubFoodRepo) Upsert(ctx context.Context, f *fooddom.Food) error { return nil }
func (r *stubFoodRepo) Delete(ctx context.Context, id string) error       { return nil }

func newCartTestHandler(t *testing.T) http.Handler {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pizza, err := fooddom.New("f-pizza", "Cheese Vegetable Pizza", "", "4.9", "1000", "239,000 đ", "", now)
	require.NoError(t, err)

	sessions := session.NewManager(nil, 0)
	t.Cleanup(sessions.Close)
	uc := usecase.NewCartUsecase(sessions, &stubFoodRepo{byID: map[string]*fooddom.Food{"f-pizza": pizza}})
	return NewCartHandler(uc)
}

func doCart(h http.Handler, method, target, sid, body string) *httptest.ResponseRecorder {
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("{}")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if sid != "" {
		req.Header.Set("X-Session-Id", sid)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) usecase.CartView {
	t.Helper()
	var v usecase.CartView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestCartHandlerAddAndGet(t *testing.T) {
	h := newCartTestHandler(t)

	rec := doCart(h, http.MethodPost, "/api/cart/items", "sess-1", `{"foodId":"f-pizza"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeView(t, rec)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Cheese Vegetable Pizza", view.Items[0].Name)

	rec = doCart(h, http.MethodGet, "/api/cart", "sess-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeView(t, rec)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, "sess-1", view.SessionID)
}

func TestCartHandlerRemoveViaQuery(t *testing.T) {
	h := newCartTestHandler(t)

	rec := doCart(h, http.MethodPost, "/api/cart/items", "sess-1", `{"foodId":"f-pizza"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doCart(h, http.MethodDelete, "/api/cart/items?foodId=f-pizza", "sess-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeView(t, rec).Items)
}

func TestCartHandlerClear(t *testing.T) {
	h := newCartTestHandler(t)

	rec := doCart(h, http.MethodPost, "/api/cart/items", "sess-1", `{"foodId":"f-pizza"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doCart(h, http.MethodDelete, "/api/cart", "sess-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeView(t, rec).Items)
}

func TestCartHandlerUnknownFood(t *testing.T) {
	h := newCartTestHandler(t)

	rec := doCart(h, http.MethodPost, "/api/cart/items", "sess-1", `{"foodId":"nope"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandlerRequiresSessionID(t *testing.T) {
	h := newCartTestHandler(t)

	rec := doCart(h, http.MethodGet, "/api/cart", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandlerSessionIDFromQuery(t *testing.T) {
	h := newCartTestHandler(t)

	rec := doCart(h, http.MethodPost, "/api/cart/items?sessionId=sess-q", "", `{"foodId":"f-pizza"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sess-q", decodeView(t, rec).SessionID)
}

func TestCartHandlerBadRequests(t *testing.T) {
	h := newCartTestHandler(t)

	rec := doCart(h, http.MethodPost, "/api/cart/items", "sess-1", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doCart(h, http.MethodPost, "/api/cart/items", "sess-1", `{"foodId":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doCart(h, http.MethodPut, "/api/cart", "sess-1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
