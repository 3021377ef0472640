// internal/adapters/out/firestore/food_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	fooddom "foodcourt/internal/domain/food"
)

// FoodRepositoryFS implements food.Repository using Firestore.
//
// Collection design:
// - collection: foods
// - docId: Food.ID (the source of truth)
type FoodRepositoryFS struct {
	Client *firestore.Client
}

func NewFoodRepositoryFS(client *firestore.Client) *FoodRepositoryFS {
	return &FoodRepositoryFS{Client: client}
}

func (r *FoodRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("foods")
}

// GetByID returns (nil, nil) if not found (nil policy).
func (r *FoodRepositoryFS) GetByID(ctx context.Context, id string) (*fooddom.Food, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("food_repository_fs: firestore client is nil")
	}

	fid := strings.TrimSpace(id)
	if fid == "" {
		return nil, errors.New("food_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(fid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var doc foodDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	f := doc.toDomain()
	// docId is the source of truth even when the id field is missing
	f.ID = fid
	return f, nil
}

func (r *FoodRepositoryFS) List(ctx context.Context) ([]*fooddom.Food, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("food_repository_fs: firestore client is nil")
	}

	iter := r.col().OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	out := []*fooddom.Food{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var doc foodDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		f := doc.toDomain()
		f.ID = snap.Ref.ID
		out = append(out, f)
	}
	return out, nil
}

// Upsert overwrites the full doc (simple & predictable).
func (r *FoodRepositoryFS) Upsert(ctx context.Context, f *fooddom.Food) error {
	if r == nil || r.Client == nil {
		return errors.New("food_repository_fs: firestore client is nil")
	}
	if f == nil {
		return errors.New("food_repository_fs: food is nil")
	}

	fid := strings.TrimSpace(f.ID)
	if fid == "" {
		return errors.New("food_repository_fs: Upsert requires food.ID as docId")
	}

	_, err := r.col().Doc(fid).Set(ctx, foodDocFromDomain(f))
	return err
}

func (r *FoodRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("food_repository_fs: firestore client is nil")
	}

	fid := strings.TrimSpace(id)
	if fid == "" {
		return errors.New("food_repository_fs: id is empty")
	}

	_, err := r.col().Doc(fid).Delete(ctx)
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type foodDoc struct {
	ID        string    `firestore:"id"`
	Name      string    `firestore:"name"`
	Image     string    `firestore:"image"`
	Rating    string    `firestore:"rating"`
	Favorites string    `firestore:"favorites"`
	Price     string    `firestore:"price"`
	Details   string    `firestore:"details"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

func foodDocFromDomain(f *fooddom.Food) foodDoc {
	return foodDoc{
		ID:        f.ID,
		Name:      f.Name,
		Image:     f.Image,
		Rating:    f.Rating,
		Favorites: f.Favorites,
		Price:     f.Price,
		Details:   f.Details,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (d foodDoc) toDomain() *fooddom.Food {
	return &fooddom.Food{
		ID:        strings.TrimSpace(d.ID),
		Name:      strings.TrimSpace(d.Name),
		Image:     strings.TrimSpace(d.Image),
		Rating:    strings.TrimSpace(d.Rating),
		Favorites: strings.TrimSpace(d.Favorites),
		Price:     strings.TrimSpace(d.Price),
		Details:   strings.TrimSpace(d.Details),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
