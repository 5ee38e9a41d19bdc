package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-service/internal/domain"
)

func TestMemoryRepoCreateAssignsID(t *testing.T) {
	repo := NewMemoryRepo()
	user := domain.NewUser("a@x.com", "hash")

	require.NoError(t, repo.CreateUser(context.Background(), user))
	assert.NotEmpty(t, user.ID)

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", found.Email)
}

func TestMemoryRepoDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, domain.NewUser("a@x.com", "hash")))

	err := repo.CreateUser(ctx, domain.NewUser("a@x.com", "otherhash"))
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestMemoryRepoNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = repo.AddContact(ctx, "missing", domain.Contact{Name: "Bob"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	user := domain.NewUser("a@x.com", "hash")
	require.NoError(t, repo.CreateUser(ctx, user))
	require.NoError(t, repo.AddContact(ctx, user.ID, domain.Contact{Name: "Bob", Note: "friend"}))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	found.Contacts[0].Name = "Mallory"
	found.Email = "evil@x.com"

	again, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", again.Contacts[0].Name)
	assert.Equal(t, "a@x.com", again.Email)
}
