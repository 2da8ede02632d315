package mocks

import (
	"context"

	"github.com/you/invitesvc/domain"
)

// MockRedemptionStore implements domain.RedemptionStore interface for testing
type MockRedemptionStore struct {
	RedeemFunc func(ctx context.Context, invite *domain.Invitation, code *domain.OneTimeCode) (*domain.RedemptionResult, error)
}

// NewMockRedemptionStore creates a new MockRedemptionStore with default behaviors
func NewMockRedemptionStore() *MockRedemptionStore {
	return &MockRedemptionStore{}
}

// Redeem executes the atomic provisioning unit
func (m *MockRedemptionStore) Redeem(ctx context.Context, invite *domain.Invitation, code *domain.OneTimeCode) (*domain.RedemptionResult, error) {
	if m.RedeemFunc != nil {
		return m.RedeemFunc(ctx, invite, code)
	}
	// Default behavior: brand new user provisioned for the invite's role
	return &domain.RedemptionResult{
		User: &domain.User{
			ID:     1,
			Phone:  invite.Phone,
			Role:   invite.Role,
			Status: domain.StatusActive,
		},
		UserCreated:       true,
		RoleEntityCreated: true,
		CodeGenerated:     invite.Role == domain.RoleMechanic,
	}, nil
}

// Ensure MockRedemptionStore implements the interface
var _ domain.RedemptionStore = (*MockRedemptionStore)(nil)
