// internal/adapters/in/http/router.go
package http

import (
	"log"
	"net/http"

	"foodcourt/internal/adapters/in/http/middleware"
)

// Deps is the storefront handler set.
type Deps struct {
	Catalog  http.Handler
	Cart     http.Handler
	Checkout http.Handler
	SignIn   http.Handler

	AdminFood http.Handler
	AdminUser http.Handler

	Auth  *middleware.Auth
	Admin *middleware.AdminOnly
}

// handleSafe registers pattern with h.
// If h is nil, it logs and registers NotFoundHandler instead (so a partially
// wired container won't crash the server).
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register registers storefront routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	authed := func(h http.Handler) http.Handler {
		if deps.Auth == nil || h == nil {
			return h
		}
		return deps.Auth.Handler(h)
	}

	// catalog (public)
	handleSafe(mux, "/api/catalog", deps.Catalog, "Catalog")
	handleSafe(mux, "/api/catalog/", deps.Catalog, "Catalog")

	// cart (session-scoped, auth-agnostic)
	handleSafe(mux, "/api/cart", deps.Cart, "Cart")
	handleSafe(mux, "/api/cart/", deps.Cart, "Cart")

	// checkout (auth required)
	handleSafe(mux, "/api/checkout", authed(deps.Checkout), "Checkout")
	handleSafe(mux, "/api/checkout/", authed(deps.Checkout), "Checkout")

	// sign-in bootstrap (auth required)
	handleSafe(mux, "/api/auth/bootstrap", authed(deps.SignIn), "SignIn")

	// admin panel (auth + admin role)
	handleSafe(mux, "/api/admin/foods", gate(deps.Auth, deps.Admin, deps.AdminFood), "AdminFood")
	handleSafe(mux, "/api/admin/foods/", gate(deps.Auth, deps.Admin, deps.AdminFood), "AdminFood")
	handleSafe(mux, "/api/admin/users", gate(deps.Auth, deps.Admin, deps.AdminUser), "AdminUser")
	handleSafe(mux, "/api/admin/users/", gate(deps.Auth, deps.Admin, deps.AdminUser), "AdminUser")
}

// gate chains Auth then AdminOnly in front of h.
func gate(auth *middleware.Auth, admin *middleware.AdminOnly, h http.Handler) http.Handler {
	if h == nil {
		return nil
	}
	if admin != nil {
		h = admin.Handler(h)
	}
	if auth != nil {
		h = auth.Handler(h)
	}
	return h
}
