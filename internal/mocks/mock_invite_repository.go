package mocks

import (
	"context"
	"time"

	"github.com/you/invitesvc/domain"
)

// MockInviteRepository implements domain.InviteRepository interface for testing
type MockInviteRepository struct {
	CreateFunc         func(ctx context.Context, invite *domain.Invitation) error
	FindByCodeHashFunc func(ctx context.Context, codeHash string) (*domain.Invitation, error)
}

// NewMockInviteRepository creates a new MockInviteRepository with default behaviors
func NewMockInviteRepository() *MockInviteRepository {
	return &MockInviteRepository{}
}

// Create stores an invitation
func (m *MockInviteRepository) Create(ctx context.Context, invite *domain.Invitation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, invite)
	}
	invite.ID = 1
	return nil
}

// FindByCodeHash finds an invitation by its token digest
func (m *MockInviteRepository) FindByCodeHash(ctx context.Context, codeHash string) (*domain.Invitation, error) {
	if m.FindByCodeHashFunc != nil {
		return m.FindByCodeHashFunc(ctx, codeHash)
	}
	// Default behavior: return a valid unused invitation
	return &domain.Invitation{
		ID:        1,
		CodeHash:  codeHash,
		Phone:     "+989121234567",
		Role:      domain.RoleMechanic,
		CreatedAt: time.Now().Add(-time.Hour),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

// Ensure MockInviteRepository implements the interface
var _ domain.InviteRepository = (*MockInviteRepository)(nil)
