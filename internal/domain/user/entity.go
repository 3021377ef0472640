// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidUser = errors.New("user: invalid")
	ErrNotFound    = errors.New("user: not found")
)

// User mirrors the "users" collection: one doc per auth uid, carrying the
// role flag the admin panel toggles.
//   - docId = UID (Firebase Auth uid)
type User struct {
	UID     string `json:"id" firestore:"id"`
	Email   string `json:"email" firestore:"email"`
	IsAdmin bool   `json:"isAdmin" firestore:"isAdmin"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func New(uid, email string, isAdmin bool, now time.Time) (*User, error) {
	u := &User{
		UID:       strings.TrimSpace(uid),
		Email:     strings.TrimSpace(email),
		IsAdmin:   isAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// SetAdmin flips the role flag and refreshes UpdatedAt.
func (u *User) SetAdmin(isAdmin bool, now time.Time) error {
	if u == nil {
		return ErrInvalidUser
	}
	u.IsAdmin = isAdmin
	u.UpdatedAt = now
	return u.validate()
}

func (u *User) validate() error {
	if u == nil {
		return ErrInvalidUser
	}
	if u.UID == "" {
		return ErrInvalidUser
	}
	if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
		return ErrInvalidUser
	}
	if u.UpdatedAt.Before(u.CreatedAt) {
		return ErrInvalidUser
	}
	return nil
}
