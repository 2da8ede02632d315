package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/invitesvc/domain"
)

func TestVendorCreateAndFindByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := NewVendorRepository(db)

	profile := &domain.VendorProfile{
		UserID:      7,
		StoreName:   "Partsland",
		City:        "Shiraz",
		AddressLine: "Zand Blvd 12",
		Province:    "Fars",
		PostalCode:  "7134811111",
		IsActive:    true,
	}
	require.NoError(t, repo.Create(context.Background(), profile))
	require.NotZero(t, profile.ID)

	found, err := repo.FindByUserID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, found.ID)
	assert.Equal(t, "Partsland", found.StoreName)
	assert.Equal(t, "Fars", found.Province)
	assert.True(t, found.IsActive)
}

func TestVendorNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewVendorRepository(db)

	_, err := repo.FindByUserID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestVendorOnePerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewVendorRepository(db)

	first := &domain.VendorProfile{UserID: 7, StoreName: "Partsland", IsActive: true}
	require.NoError(t, repo.Create(context.Background(), first))

	dup := &domain.VendorProfile{UserID: 7, StoreName: "Other", IsActive: true}
	assert.Error(t, repo.Create(context.Background(), dup))
}
