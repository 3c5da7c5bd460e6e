package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/insurance/backend/internal/domain/identity"
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormUserRepository(newTestDB(t))

	user, err := identity.NewUser("alice", "secret-pass", identity.RoleManager)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	t.Run("find by username", func(t *testing.T) {
		got, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, identity.RoleManager, got.Role)
		assert.True(t, got.VerifyPassword("secret-pass"))
	})

	t.Run("duplicate username", func(t *testing.T) {
		dup, err := identity.NewUser("alice", "other-pass", identity.RoleAgent)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)

		exists, err := repo.ExistsByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, user.SetRole(identity.RoleAdmin))
		require.NoError(t, repo.Update(ctx, user))

		got, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, identity.RoleAdmin, got.Role)
	})

	t.Run("list and count", func(t *testing.T) {
		users, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, users, 1)

		n, err := repo.Count(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, user.ID))
		_, err := repo.FindByUsername(ctx, "alice")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
