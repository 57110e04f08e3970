package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-redstore/models"
	"go-redstore/storage"
)

func newTestStores(t *testing.T) *Stores {
	t.Helper()
	return New(storage.NewMemory())
}

func TestUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		users := NewUsers(storage.NewMemory())
		require.NoError(t, users.Create(ctx, models.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "hash"}))

		user, ok, err := users.Get(ctx, "jane@example.com")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Jane", user.Name)
	})

	t.Run("EmailLookupIsCaseInsensitive", func(t *testing.T) {
		users := NewUsers(storage.NewMemory())
		require.NoError(t, users.Create(ctx, models.User{Email: "Jane@Example.com"}))

		_, ok, err := users.Get(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("DuplicateRejected", func(t *testing.T) {
		users := NewUsers(storage.NewMemory())
		require.NoError(t, users.Create(ctx, models.User{Email: "jane@example.com"}))
		err := users.Create(ctx, models.User{Email: "jane@example.com"})
		require.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("MissingUser", func(t *testing.T) {
		users := NewUsers(storage.NewMemory())
		_, ok, err := users.Get(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
