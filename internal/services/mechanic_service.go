package services

import (
	"context"

	"github.com/you/invitesvc/domain"
)

// MechanicServiceImpl implements domain.MechanicService
type MechanicServiceImpl struct {
	mechanicRepo    domain.MechanicRepository
	transactionRepo domain.TransactionRepository
}

// NewMechanicService creates a new mechanic service
func NewMechanicService(mechanicRepo domain.MechanicRepository, transactionRepo domain.TransactionRepository) domain.MechanicService {
	return &MechanicServiceImpl{
		mechanicRepo:    mechanicRepo,
		transactionRepo: transactionRepo,
	}
}

// Transactions implements domain.MechanicService. The listing is scoped to
// the mechanic profile owned by userID; a user without one gets
// ErrMechanicNotFound regardless of the filter.
func (s *MechanicServiceImpl) Transactions(ctx context.Context, userID uint, filter domain.TransactionFilter) (*domain.TransactionSummary, error) {
	profile, err := s.mechanicRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.transactionRepo.ListByMechanic(ctx, profile.ID, filter)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, item := range items {
		total += item.MechanicAmount
	}

	return &domain.TransactionSummary{
		Items:         items,
		Count:         len(items),
		TotalMechanic: total,
	}, nil
}
