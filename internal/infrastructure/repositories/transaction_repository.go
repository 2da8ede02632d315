package repositories

import (
	"context"
	"time"

	"github.com/you/invitesvc/domain"
	"gorm.io/gorm"
)

// TransactionRepositoryImpl implements domain.TransactionRepository using GORM
type TransactionRepositoryImpl struct {
	db *gorm.DB
}

// DBTransaction represents the database model for a settled purchase.
// Amounts are in rials.
type DBTransaction struct {
	ID             uint   `gorm:"primaryKey"`
	MechanicID     uint   `gorm:"index"`
	VendorID       uint   `gorm:"index"`
	Status         string `gorm:"index;size:32"`
	AmountTotal    int64
	AmountEligible int64
	MechanicAmount int64
	CreatedAt      time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBTransaction) TableName() string {
	return "transactions"
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domain.TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

// ListByMechanic implements domain.TransactionRepository. The vendor display
// name comes from the vendor's user row; results are newest first.
func (r *TransactionRepositoryImpl) ListByMechanic(ctx context.Context, mechanicID uint, filter domain.TransactionFilter) ([]domain.TransactionRecord, error) {
	type row struct {
		DBTransaction
		VendorName string
	}

	q := r.db.WithContext(ctx).
		Table("transactions").
		Select("transactions.*, users.full_name AS vendor_name").
		Joins("JOIN vendors ON vendors.id = transactions.vendor_id").
		Joins("JOIN users ON users.id = vendors.user_id").
		Where("transactions.mechanic_id = ?", mechanicID)

	if filter.From != nil {
		q = q.Where("transactions.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("transactions.created_at <= ?", *filter.To)
	}
	if filter.Status != "" {
		q = q.Where("transactions.status = ?", filter.Status)
	}

	var rows []row
	if err := q.Order("transactions.id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]domain.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.TransactionRecord{
			ID:             row.ID,
			MechanicID:     row.MechanicID,
			VendorID:       row.VendorID,
			VendorName:     row.VendorName,
			Status:         row.Status,
			AmountTotal:    row.AmountTotal,
			AmountEligible: row.AmountEligible,
			MechanicAmount: row.MechanicAmount,
			CreatedAt:      row.CreatedAt,
		})
	}
	return records, nil
}
