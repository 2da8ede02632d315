package mocks

import (
	"context"

	"github.com/you/invitesvc/domain"
)

// MockTransactionRepository implements domain.TransactionRepository interface for testing
type MockTransactionRepository struct {
	ListByMechanicFunc func(ctx context.Context, mechanicID uint, filter domain.TransactionFilter) ([]domain.TransactionRecord, error)
}

// NewMockTransactionRepository creates a new MockTransactionRepository with default behaviors
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

// ListByMechanic lists settled transactions for a mechanic
func (m *MockTransactionRepository) ListByMechanic(ctx context.Context, mechanicID uint, filter domain.TransactionFilter) ([]domain.TransactionRecord, error) {
	if m.ListByMechanicFunc != nil {
		return m.ListByMechanicFunc(ctx, mechanicID, filter)
	}
	return []domain.TransactionRecord{}, nil
}

// Ensure MockTransactionRepository implements the interface
var _ domain.TransactionRepository = (*MockTransactionRepository)(nil)
