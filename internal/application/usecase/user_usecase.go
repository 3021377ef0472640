// internal/application/usecase/user_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	userdom "foodcourt/internal/domain/user"
)

var (
	ErrUserInvalidArgument = errors.New("user_usecase: invalid argument")
	ErrUserNotFound        = errors.New("user_usecase: not found")
)

// UserUsecase covers sign-in bootstrap and the admin panel's role management.
type UserUsecase struct {
	repo  userdom.Repository
	clock Clock
}

func NewUserUsecase(repo userdom.Repository) *UserUsecase {
	return &UserUsecase{repo: repo, clock: systemClock{}}
}

// NewUserUsecaseWithClock is useful for tests.
func NewUserUsecaseWithClock(repo userdom.Repository, clock Clock) *UserUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &UserUsecase{repo: repo, clock: clock}
}

// Bootstrap ensures a user doc exists for the authenticated uid.
// Called on first sign-in; idempotent for returning users.
func (uc *UserUsecase) Bootstrap(ctx context.Context, uid, email string) (*userdom.User, error) {
	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, ErrUserInvalidArgument
	}

	existing, err := uc.repo.GetByUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	u, err := userdom.New(id, email, false, uc.clock.Now())
	if err != nil {
		return nil, ErrUserInvalidArgument
	}
	if err := uc.repo.Upsert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Get returns the user doc for uid.
func (uc *UserUsecase) Get(ctx context.Context, uid string) (*userdom.User, error) {
	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, ErrUserInvalidArgument
	}

	u, err := uc.repo.GetByUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// IsAdmin reports whether uid has the admin role. Unknown users are not admins.
func (uc *UserUsecase) IsAdmin(ctx context.Context, uid string) (bool, error) {
	u, err := uc.repo.GetByUID(ctx, strings.TrimSpace(uid))
	if err != nil {
		return false, err
	}
	return u != nil && u.IsAdmin, nil
}

// List returns all users (admin panel).
func (uc *UserUsecase) List(ctx context.Context) ([]*userdom.User, error) {
	return uc.repo.List(ctx)
}

// SetAdmin toggles the role flag for uid.
func (uc *UserUsecase) SetAdmin(ctx context.Context, uid string, isAdmin bool) (*userdom.User, error) {
	u, err := uc.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := u.SetAdmin(isAdmin, uc.clock.Now()); err != nil {
		return nil, ErrUserInvalidArgument
	}
	if err := uc.repo.Upsert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
