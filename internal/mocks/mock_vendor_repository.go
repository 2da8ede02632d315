package mocks

import (
	"context"
	"time"

	"github.com/you/invitesvc/domain"
)

// MockVendorRepository implements domain.VendorRepository interface for testing
type MockVendorRepository struct {
	CreateFunc       func(ctx context.Context, profile *domain.VendorProfile) error
	FindByUserIDFunc func(ctx context.Context, userID uint) (*domain.VendorProfile, error)
}

// NewMockVendorRepository creates a new MockVendorRepository with default behaviors
func NewMockVendorRepository() *MockVendorRepository {
	return &MockVendorRepository{}
}

// Create creates a vendor profile
func (m *MockVendorRepository) Create(ctx context.Context, profile *domain.VendorProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	profile.ID = 1
	return nil
}

// FindByUserID finds a vendor profile by its owning user
func (m *MockVendorRepository) FindByUserID(ctx context.Context, userID uint) (*domain.VendorProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return &domain.VendorProfile{
		ID:        1,
		UserID:    userID,
		StoreName: "Partsland",
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// Ensure MockVendorRepository implements the interface
var _ domain.VendorRepository = (*MockVendorRepository)(nil)
