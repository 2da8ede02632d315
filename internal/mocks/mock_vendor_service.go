package mocks

import (
	"context"
	"time"

	"github.com/you/invitesvc/domain"
)

// MockVendorService implements domain.VendorService interface for testing
type MockVendorService struct {
	ProfileFunc func(ctx context.Context, userID uint) (*domain.VendorProfile, error)
}

// NewMockVendorService creates a new MockVendorService with default behaviors
func NewMockVendorService() *MockVendorService {
	return &MockVendorService{}
}

// Profile returns the vendor profile owned by userID
func (m *MockVendorService) Profile(ctx context.Context, userID uint) (*domain.VendorProfile, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
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

// Ensure MockVendorService implements the interface
var _ domain.VendorService = (*MockVendorService)(nil)
