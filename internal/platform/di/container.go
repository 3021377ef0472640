// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"
	"net/http"

	gcsclient "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	inhttp "foodcourt/internal/adapters/in/http"
	"foodcourt/internal/adapters/in/http/handler"
	"foodcourt/internal/adapters/in/http/middleware"
	fsrepo "foodcourt/internal/adapters/out/firestore"
	"foodcourt/internal/adapters/out/gcs"
	"foodcourt/internal/adapters/out/sqlitestore"
	usecase "foodcourt/internal/application/usecase"
	cartdom "foodcourt/internal/domain/cart"
	"foodcourt/internal/infra/config"
	firebaseinfra "foodcourt/internal/infra/firebase"
	firestoreinfra "foodcourt/internal/infra/firestore"
	sqliteinfra "foodcourt/internal/infra/sqlite"
	"foodcourt/internal/session"
)

// Container owns external clients and the wired handler tree.
type Container struct {
	Config *config.Config

	Firestore *firestoreinfra.ClientWrapper
	Firebase  *firebaseinfra.AuthWrapper
	GCS       *gcsclient.Client
	CartKV    *sqliteinfra.KV

	Sessions *session.Manager

	Handler http.Handler
}

// NewContainer initializes infra and wires the storefront.
// Firestore and Firebase are strict; GCS is best-effort (image upload
// endpoints answer 503 without it).
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	fsw, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("di: firestore init failed: %w", err)
	}
	c.Firestore = fsw

	fba, err := firebaseinfra.NewAuth(ctx, cfg.FirebaseProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		c.closePartial()
		return nil, fmt.Errorf("di: firebase init failed: %w", err)
	}
	c.Firebase = fba

	if cfg.GCSBucket != "" {
		var gc *gcsclient.Client
		if cfg.GCPCreds != "" {
			gc, err = gcsclient.NewClient(ctx, option.WithCredentialsFile(cfg.GCPCreds))
		} else {
			gc, err = gcsclient.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[di] WARN: gcs init failed (image upload disabled): %v", err)
		} else {
			c.GCS = gc
		}
	}

	// durable cart mirror
	var factory session.StorageFactory
	switch cfg.CartStorage {
	case "firestore":
		factory = func(sessionID string) cartdom.Storage {
			return fsrepo.NewCartStorageFS(fsw.Client, sessionID)
		}
	default:
		kv, err := sqliteinfra.Open(cfg.CartSQLitePath)
		if err != nil {
			c.closePartial()
			return nil, fmt.Errorf("di: cart sqlite init failed: %w", err)
		}
		c.CartKV = kv
		factory = func(sessionID string) cartdom.Storage {
			return sqlitestore.NewCartStorage(kv, sessionID)
		}
	}
	c.Sessions = session.NewManager(factory, session.DefaultIdleTTL)

	// repositories
	foodRepo := fsrepo.NewFoodRepositoryFS(fsw.Client)
	orderRepo := fsrepo.NewOrderRepositoryFS(fsw.Client)
	userRepo := fsrepo.NewUserRepositoryFS(fsw.Client)

	// usecases
	catalogUC := usecase.NewCatalogUsecase(foodRepo)
	cartUC := usecase.NewCartUsecase(c.Sessions, foodRepo)
	checkoutUC := usecase.NewCheckoutUsecase(c.Sessions, orderRepo)
	userUC := usecase.NewUserUsecase(userRepo)

	// object storage (optional)
	var images handler.FoodImageStore
	if c.GCS != nil {
		images = gcs.NewFoodImageRepositoryGCS(c.GCS, cfg.GCSBucket)
	}

	// http
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	inhttp.Register(mux, inhttp.Deps{
		Catalog:   handler.NewCatalogHandler(catalogUC),
		Cart:      handler.NewCartHandler(cartUC),
		Checkout:  handler.NewCheckoutHandler(checkoutUC),
		SignIn:    handler.NewSignInHandler(userUC),
		AdminFood: handler.NewAdminFoodHandler(catalogUC, images),
		AdminUser: handler.NewAdminUserHandler(userUC),
		Auth:      &middleware.Auth{FirebaseAuth: fba.Auth},
		Admin:     &middleware.AdminOnly{Users: userUC},
	})

	c.Handler = middleware.CORS(middleware.Recover(mux))
	return c, nil
}

// Close releases external clients. Session stores are flushed first so the
// final cart states reach their durable mirrors.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Sessions != nil {
		c.Sessions.Close()
	}
	c.closePartial()
}

func (c *Container) closePartial() {
	if c.CartKV != nil {
		if err := c.CartKV.Close(); err != nil {
			log.Printf("[di] WARN: sqlite close failed: %v", err)
		}
	}
	if c.GCS != nil {
		if err := c.GCS.Close(); err != nil {
			log.Printf("[di] WARN: gcs close failed: %v", err)
		}
	}
	if c.Firestore != nil {
		if err := c.Firestore.Close(); err != nil {
			log.Printf("[di] WARN: firestore close failed: %v", err)
		}
	}
}
