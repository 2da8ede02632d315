package mocks

import (
	"context"
	"time"

	"github.com/you/invitesvc/domain"
)

// MockMechanicRepository implements domain.MechanicRepository interface for testing
type MockMechanicRepository struct {
	CreateFunc       func(ctx context.Context, profile *domain.MechanicProfile) error
	FindByUserIDFunc func(ctx context.Context, userID uint) (*domain.MechanicProfile, error)
}

// NewMockMechanicRepository creates a new MockMechanicRepository with default behaviors
func NewMockMechanicRepository() *MockMechanicRepository {
	return &MockMechanicRepository{}
}

// Create creates a mechanic profile
func (m *MockMechanicRepository) Create(ctx context.Context, profile *domain.MechanicProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	profile.ID = 1
	return nil
}

// FindByUserID finds a mechanic profile by its owning user
func (m *MockMechanicRepository) FindByUserID(ctx context.Context, userID uint) (*domain.MechanicProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return &domain.MechanicProfile{
		ID:        1,
		UserID:    userID,
		Code:      "AB23CD",
		QRActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// Ensure MockMechanicRepository implements the interface
var _ domain.MechanicRepository = (*MockMechanicRepository)(nil)
