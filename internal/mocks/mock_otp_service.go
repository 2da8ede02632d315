package mocks

import (
	"context"
	"time"

	"github.com/you/invitesvc/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	GenerateFunc  func(ctx context.Context, phone string) (*domain.OneTimeCode, string, error)
	CanResendFunc func(ctx context.Context, phone string) (bool, int64, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Generate issues a new one-time code
func (m *MockOTPService) Generate(ctx context.Context, phone string) (*domain.OneTimeCode, string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, phone)
	}
	return &domain.OneTimeCode{
		ID:        1,
		Phone:     phone,
		CodeHash:  "mock_code_digest",
		Purpose:   domain.PurposeLogin,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(3 * time.Minute),
	}, "123456", nil
}

// CanResend reports whether a new code may be issued
func (m *MockOTPService) CanResend(ctx context.Context, phone string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, phone)
	}
	return true, 0, nil
}

// Ensure MockOTPService implements the interface
var _ domain.OTPService = (*MockOTPService)(nil)
