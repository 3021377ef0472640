// internal/application/usecase/user_usecase_test.go
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserBootstrapCreatesOnce(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecaseWithClock(repo, fixedClock{t: testNow})
	ctx := context.Background()

	u1, err := uc.Bootstrap(ctx, "uid-1", "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", u1.UID)
	assert.False(t, u1.IsAdmin)
	assert.Equal(t, testNow, u1.CreatedAt)

	// returning user keeps the existing doc
	u2, err := uc.Bootstrap(ctx, "uid-1", "other@example.com")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u2.Email)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserBootstrapRequiresUID(t *testing.T) {
	uc := NewUserUsecase(newFakeUserRepo())

	_, err := uc.Bootstrap(context.Background(), "  ", "a@example.com")
	assert.ErrorIs(t, err, ErrUserInvalidArgument)
}

func TestUserIsAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecaseWithClock(repo, fixedClock{t: testNow})
	ctx := context.Background()

	_, err := uc.Bootstrap(ctx, "uid-1", "a@example.com")
	require.NoError(t, err)

	ok, err := uc.IsAdmin(ctx, "uid-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// unknown users are not admins, and not an error
	ok, err = uc.IsAdmin(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = uc.SetAdmin(ctx, "uid-1", true)
	require.NoError(t, err)

	ok, err = uc.IsAdmin(ctx, "uid-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserSetAdminUnknownUID(t *testing.T) {
	uc := NewUserUsecase(newFakeUserRepo())

	_, err := uc.SetAdmin(context.Background(), "ghost", true)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
