// internal/domain/food/entity.go
package food

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidFood = errors.New("food: invalid")
	ErrNotFound    = errors.New("food: not found")
)

// Policy
var (
	MaxNameLength    = 200
	MaxDetailsLength = 4000
)

// Food represents one purchasable catalog item.
//   - docId = Food.ID (Firestore, collection "foods")
//   - Price keeps the display-formatted string (e.g. "239,000 đ") as served
//     to clients; arithmetic goes through ParsePrice.
type Food struct {
	ID        string `json:"id" firestore:"id"`
	Name      string `json:"name" firestore:"name"`
	Image     string `json:"image" firestore:"image"`
	Rating    string `json:"rating" firestore:"rating"`
	Favorites string `json:"favorites" firestore:"favorites"`
	Price     string `json:"price" firestore:"price"`
	Details   string `json:"details" firestore:"details"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New creates a catalog item.
// id is the Firestore docId and must be non-empty.
func New(id, name, image, rating, favorites, price, details string, now time.Time) (*Food, error) {
	f := &Food{
		ID:        strings.TrimSpace(id),
		Name:      strings.TrimSpace(name),
		Image:     strings.TrimSpace(image),
		Rating:    strings.TrimSpace(rating),
		Favorites: strings.TrimSpace(favorites),
		Price:     strings.TrimSpace(price),
		Details:   strings.TrimSpace(details),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Patch represents partial updates to Food fields.
// A nil field means "no change".
type Patch struct {
	Name      *string
	Image     *string
	Rating    *string
	Favorites *string
	Price     *string
	Details   *string
}

// Apply applies non-nil patch fields and refreshes UpdatedAt.
func (f *Food) Apply(p Patch, now time.Time) error {
	if f == nil {
		return ErrInvalidFood
	}
	if p.Name != nil {
		f.Name = strings.TrimSpace(*p.Name)
	}
	if p.Image != nil {
		f.Image = strings.TrimSpace(*p.Image)
	}
	if p.Rating != nil {
		f.Rating = strings.TrimSpace(*p.Rating)
	}
	if p.Favorites != nil {
		f.Favorites = strings.TrimSpace(*p.Favorites)
	}
	if p.Price != nil {
		f.Price = strings.TrimSpace(*p.Price)
	}
	if p.Details != nil {
		f.Details = strings.TrimSpace(*p.Details)
	}
	f.UpdatedAt = now
	return f.validate()
}

func (f *Food) validate() error {
	if f == nil {
		return ErrInvalidFood
	}
	if strings.TrimSpace(f.ID) == "" {
		return ErrInvalidFood
	}
	if f.Name == "" || len([]rune(f.Name)) > MaxNameLength {
		return ErrInvalidFood
	}
	if len([]rune(f.Details)) > MaxDetailsLength {
		return ErrInvalidFood
	}
	if f.CreatedAt.IsZero() || f.UpdatedAt.IsZero() {
		return ErrInvalidFood
	}
	if f.UpdatedAt.Before(f.CreatedAt) {
		return ErrInvalidFood
	}
	return nil
}
