// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	fooddom "foodcourt/internal/domain/food"
)

var (
	ErrCatalogInvalidArgument = errors.New("catalog_usecase: invalid argument")
	ErrCatalogNotFound        = errors.New("catalog_usecase: not found")
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// CatalogUsecase serves catalog browsing and the admin panel's CRUD.
type CatalogUsecase struct {
	repo  fooddom.Repository
	clock Clock
}

func NewCatalogUsecase(repo fooddom.Repository) *CatalogUsecase {
	return &CatalogUsecase{repo: repo, clock: systemClock{}}
}

// NewCatalogUsecaseWithClock is useful for tests.
func NewCatalogUsecaseWithClock(repo fooddom.Repository, clock Clock) *CatalogUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CatalogUsecase{repo: repo, clock: clock}
}

func (uc *CatalogUsecase) List(ctx context.Context) ([]*fooddom.Food, error) {
	return uc.repo.List(ctx)
}

func (uc *CatalogUsecase) Get(ctx context.Context, id string) (*fooddom.Food, error) {
	fid := strings.TrimSpace(id)
	if fid == "" {
		return nil, ErrCatalogInvalidArgument
	}

	f, err := uc.repo.GetByID(ctx, fid)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrCatalogNotFound
	}
	return f, nil
}

// CreateFoodInput carries the admin form fields.
type CreateFoodInput struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Rating    string `json:"rating"`
	Favorites string `json:"favorites"`
	Price     string `json:"price"`
	Details   string `json:"details"`
}

// Create adds a new catalog item with a generated id.
func (uc *CatalogUsecase) Create(ctx context.Context, in CreateFoodInput) (*fooddom.Food, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrCatalogInvalidArgument
	}

	f, err := fooddom.New(
		uuid.NewString(),
		in.Name, in.Image, in.Rating, in.Favorites, in.Price, in.Details,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, ErrCatalogInvalidArgument
	}

	if err := uc.repo.Upsert(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Update applies a partial patch to an existing item.
func (uc *CatalogUsecase) Update(ctx context.Context, id string, p fooddom.Patch) (*fooddom.Food, error) {
	f, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := f.Apply(p, uc.clock.Now()); err != nil {
		return nil, ErrCatalogInvalidArgument
	}
	if err := uc.repo.Upsert(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes an item. Deleting an absent item is a no-op.
func (uc *CatalogUsecase) Delete(ctx context.Context, id string) error {
	fid := strings.TrimSpace(id)
	if fid == "" {
		return ErrCatalogInvalidArgument
	}
	return uc.repo.Delete(ctx, fid)
}
