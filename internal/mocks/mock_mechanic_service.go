package mocks

import (
	"context"

	"github.com/you/invitesvc/domain"
)

// MockMechanicService implements domain.MechanicService interface for testing
type MockMechanicService struct {
	TransactionsFunc func(ctx context.Context, userID uint, filter domain.TransactionFilter) (*domain.TransactionSummary, error)
}

// NewMockMechanicService creates a new MockMechanicService with default behaviors
func NewMockMechanicService() *MockMechanicService {
	return &MockMechanicService{}
}

// Transactions lists settled transactions for the mechanic owned by userID
func (m *MockMechanicService) Transactions(ctx context.Context, userID uint, filter domain.TransactionFilter) (*domain.TransactionSummary, error) {
	if m.TransactionsFunc != nil {
		return m.TransactionsFunc(ctx, userID, filter)
	}
	return &domain.TransactionSummary{Items: []domain.TransactionRecord{}}, nil
}

// Ensure MockMechanicService implements the interface
var _ domain.MechanicService = (*MockMechanicService)(nil)
