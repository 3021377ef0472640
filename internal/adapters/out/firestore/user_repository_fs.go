// internal/adapters/out/firestore/user_repository_fs.go
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

	userdom "foodcourt/internal/domain/user"
)

// UserRepositoryFS implements user.Repository using Firestore.
//
// Collection design:
// - collection: users
// - docId: uid (Firebase Auth uid)
type UserRepositoryFS struct {
	Client *firestore.Client
}

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

// GetByUID returns (nil, nil) if not found (nil policy).
func (r *UserRepositoryFS) GetByUID(ctx context.Context, uid string) (*userdom.User, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("user_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, errors.New("user_repository_fs: uid is empty")
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	u := doc.toDomain()
	u.UID = id
	return u, nil
}

func (r *UserRepositoryFS) List(ctx context.Context) ([]*userdom.User, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("user_repository_fs: firestore client is nil")
	}

	iter := r.col().OrderBy("email", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	out := []*userdom.User{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var doc userDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		u := doc.toDomain()
		u.UID = snap.Ref.ID
		out = append(out, u)
	}
	return out, nil
}

func (r *UserRepositoryFS) Upsert(ctx context.Context, u *userdom.User) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}
	if u == nil {
		return errors.New("user_repository_fs: user is nil")
	}

	id := strings.TrimSpace(u.UID)
	if id == "" {
		return errors.New("user_repository_fs: Upsert requires user.UID as docId")
	}

	_, err := r.col().Doc(id).Set(ctx, userDocFromDomain(u))
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type userDoc struct {
	ID        string    `firestore:"id"`
	Email     string    `firestore:"email"`
	IsAdmin   bool      `firestore:"isAdmin"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

func userDocFromDomain(u *userdom.User) userDoc {
	return userDoc{
		ID:        u.UID,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDoc) toDomain() *userdom.User {
	return &userdom.User{
		UID:       strings.TrimSpace(d.ID),
		Email:     strings.TrimSpace(d.Email),
		IsAdmin:   d.IsAdmin,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
