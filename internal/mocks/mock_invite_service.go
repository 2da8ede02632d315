package mocks

import (
	"context"
	"time"

	"github.com/you/invitesvc/domain"
)

// MockInviteService implements domain.InviteService interface for testing
type MockInviteService struct {
	RedeemFunc       func(ctx context.Context, rawToken, rawCode string) (*domain.RedemptionOutcome, error)
	CreateInviteFunc func(ctx context.Context, phone, role string, ttl time.Duration, meta *domain.InviteMeta) (*domain.Invitation, string, error)
}

// NewMockInviteService creates a new MockInviteService with default behaviors
func NewMockInviteService() *MockInviteService {
	return &MockInviteService{}
}

// Redeem runs the redemption pipeline
func (m *MockInviteService) Redeem(ctx context.Context, rawToken, rawCode string) (*domain.RedemptionOutcome, error) {
	if m.RedeemFunc != nil {
		return m.RedeemFunc(ctx, rawToken, rawCode)
	}
	user := &domain.User{
		ID:     1,
		Phone:  "+989121234567",
		Role:   domain.RoleMechanic,
		Status: domain.StatusActive,
	}
	return &domain.RedemptionOutcome{
		Result: &domain.RedemptionResult{
			User:              user,
			UserCreated:       true,
			RoleEntityCreated: true,
			CodeGenerated:     true,
		},
		Auth: &domain.AuthResult{
			User:         user,
			AccessToken:  "mock_access_token",
			RefreshToken: "mock_refresh_token",
			SessionID:    "mock_session_id",
			ExpiresIn:    900,
		},
		Redirect: "/mechanic",
	}, nil
}

// CreateInvite mints a new invitation
func (m *MockInviteService) CreateInvite(ctx context.Context, phone, role string, ttl time.Duration, meta *domain.InviteMeta) (*domain.Invitation, string, error) {
	if m.CreateInviteFunc != nil {
		return m.CreateInviteFunc(ctx, phone, role, ttl, meta)
	}
	return &domain.Invitation{
		ID:        1,
		CodeHash:  "mock_token_digest",
		Phone:     phone,
		Role:      role,
		Meta:      meta,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}, "mock_raw_token", nil
}

// Ensure MockInviteService implements the interface
var _ domain.InviteService = (*MockInviteService)(nil)
