package mocks

import (
	"context"
	"time"

	"github.com/you/invitesvc/domain"
)

// MockCodeRepository implements domain.CodeRepository interface for testing
type MockCodeRepository struct {
	CreateFunc     func(ctx context.Context, code *domain.OneTimeCode) error
	FindActiveFunc func(ctx context.Context, phone, codeHash, purpose string, now time.Time) (*domain.OneTimeCode, error)
}

// NewMockCodeRepository creates a new MockCodeRepository with default behaviors
func NewMockCodeRepository() *MockCodeRepository {
	return &MockCodeRepository{}
}

// Create stores a one-time code
func (m *MockCodeRepository) Create(ctx context.Context, code *domain.OneTimeCode) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, code)
	}
	code.ID = 1
	return nil
}

// FindActive finds the newest unused, unexpired code for phone
func (m *MockCodeRepository) FindActive(ctx context.Context, phone, codeHash, purpose string, now time.Time) (*domain.OneTimeCode, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx, phone, codeHash, purpose, now)
	}
	// Default behavior: return a matching active code
	return &domain.OneTimeCode{
		ID:        1,
		Phone:     phone,
		CodeHash:  codeHash,
		Purpose:   purpose,
		CreatedAt: now.Add(-time.Minute),
		ExpiresAt: now.Add(2 * time.Minute),
	}, nil
}

// Ensure MockCodeRepository implements the interface
var _ domain.CodeRepository = (*MockCodeRepository)(nil)
