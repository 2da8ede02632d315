package mocks

import (
	"context"
	"time"

	"github.com/you/invitesvc/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	LoginFunc        func(ctx context.Context, phone, password string) (*domain.AuthResult, error)
	RefreshTokenFunc func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc       func(ctx context.Context, sessionID string) error
	GetProfileFunc   func(ctx context.Context, userID uint) (*domain.User, error)
	SetPasswordFunc  func(ctx context.Context, userID uint, password string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Login authenticates a user and returns auth result
func (m *MockAuthService) Login(ctx context.Context, phone, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, phone, password)
	}
	return &domain.AuthResult{
		User: &domain.User{
			ID:     1,
			Phone:  phone,
			Role:   domain.RoleMechanic,
			Status: domain.StatusActive,
		},
		AccessToken:  "mock_access_token",
		RefreshToken: "mock_refresh_token",
		SessionID:    "mock_session_id",
		ExpiresIn:    900,
	}, nil
}

// RefreshToken refreshes an access token using a refresh token
func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	return &domain.AuthResult{
		User: &domain.User{
			ID:     1,
			Phone:  "+989121234567",
			Role:   domain.RoleMechanic,
			Status: domain.StatusActive,
		},
		AccessToken:  "new_mock_access_token",
		RefreshToken: "new_mock_refresh_token",
		SessionID:    "mock_session_id",
		ExpiresIn:    900,
	}, nil
}

// Logout terminates a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// GetProfile returns a user's profile
func (m *MockAuthService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return &domain.User{
		ID:        userID,
		Phone:     "+989121234567",
		FullName:  "Test Mechanic",
		Role:      domain.RoleMechanic,
		Status:    domain.StatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// SetPassword sets the user's initial password
func (m *MockAuthService) SetPassword(ctx context.Context, userID uint, password string) error {
	if m.SetPasswordFunc != nil {
		return m.SetPasswordFunc(ctx, userID, password)
	}
	return nil
}

// Ensure MockAuthService implements the interface
var _ domain.AuthService = (*MockAuthService)(nil)
