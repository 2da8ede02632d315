package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/invitesvc/domain"
)

func TestUserCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &domain.User{
		Phone:    testPhone,
		FullName: "Ali Rezaei",
		Role:     domain.RoleMechanic,
		Status:   domain.StatusActive,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	require.NotZero(t, user.ID)

	byPhone, err := repo.FindByPhone(context.Background(), testPhone)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byPhone.ID)
	assert.False(t, byPhone.PasswordSet())

	byID, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, testPhone, byID.Phone)
}

func TestUserNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByPhone(context.Background(), testPhone)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserPhoneUniqueness(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	first := &domain.User{Phone: testPhone, Role: domain.RoleMechanic, Status: domain.StatusActive}
	require.NoError(t, repo.Create(context.Background(), first))

	dup := &domain.User{Phone: testPhone, Role: domain.RoleVendor, Status: domain.StatusActive}
	assert.Error(t, repo.Create(context.Background(), dup))
}

func TestUserUpdateKeepsCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &domain.User{Phone: testPhone, FullName: "New user", Role: domain.RoleMechanic, Status: domain.StatusActive}
	require.NoError(t, repo.Create(context.Background(), user))

	created, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.False(t, created.CreatedAt.IsZero())

	created.FullName = "Ali Rezaei"
	created.Status = domain.StatusSuspended
	require.NoError(t, repo.Update(context.Background(), created))

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ali Rezaei", found.FullName)
	assert.Equal(t, domain.StatusSuspended, found.Status)
	assert.Equal(t, created.CreatedAt.Unix(), found.CreatedAt.Unix())
}

func TestUserSetPassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &domain.User{Phone: testPhone, Role: domain.RoleMechanic, Status: domain.StatusActive}
	require.NoError(t, repo.Create(context.Background(), user))

	require.NoError(t, repo.SetPassword(context.Background(), user.ID, "bcrypt_hash"))

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, found.PasswordSet())
	assert.Equal(t, "bcrypt_hash", found.PasswordHash)
}
