// internal/application/usecase/fakes_test.go
package usecase

import (
	"context"
	"sync"
	"time"

	fooddom "foodcourt/internal/domain/food"
	orderdom "foodcourt/internal/domain/order"
	userdom "foodcourt/internal/domain/user"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeFoodRepo struct {
	mu   sync.Mutex
	byID map[string]*fooddom.Food
	err  error
}

func newFakeFoodRepo(foods ...*fooddom.Food) *fakeFoodRepo {
	r := &fakeFoodRepo{byID: map[string]*fooddom.Food{}}
	for _, f := range foods {
		r.byID[f.ID] = f
	}
	return r
}

func (r *fakeFoodRepo) GetByID(ctx context.Context, id string) (*fooddom.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	f, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFoodRepo) List(ctx context.Context) ([]*fooddom.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*fooddom.Food, 0, len(r.byID))
	for _, f := range r.byID {
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeFoodRepo) Upsert(ctx context.Context, f *fooddom.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	cp := *f
	r.byID[f.ID] = &cp
	return nil
}

func (r *fakeFoodRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	delete(r.byID, id)
	return nil
}

type fakeOrderRepo struct {
	mu        sync.Mutex
	created   []orderdom.Order
	createErr error
}

func (r *fakeOrderRepo) Create(ctx context.Context, o orderdom.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, o)
	return nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID string) ([]orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []orderdom.Order
	for _, o := range r.created {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	byUID map[string]*userdom.User
	err   error
}

func newFakeUserRepo(users ...*userdom.User) *fakeUserRepo {
	r := &fakeUserRepo{byUID: map[string]*userdom.User{}}
	for _, u := range users {
		r.byUID[u.UID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByUID(ctx context.Context, uid string) (*userdom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byUID[uid]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*userdom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*userdom.User, 0, len(r.byUID))
	for _, u := range r.byUID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Upsert(ctx context.Context, u *userdom.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	cp := *u
	r.byUID[u.UID] = &cp
	return nil
}

func mustFood(id, name, price string) *fooddom.Food {
	f, err := fooddom.New(id, name, "", "4.5", "900", price, "", testNow)
	if err != nil {
		panic(err)
	}
	return f
}
