package repositories

import (
	"context"
	"time"

	"github.com/you/invitesvc/domain"
	"gorm.io/gorm"
)

// CodeRepositoryImpl implements domain.CodeRepository using GORM
type CodeRepositoryImpl struct {
	db *gorm.DB
}

// DBOneTimeCode represents the database model for OneTimeCode
type DBOneTimeCode struct {
	ID        uint      `gorm:"primaryKey"`
	Phone     string    `gorm:"index:idx_otp_lookup;size:32"`
	CodeHash  string    `gorm:"index:idx_otp_lookup;size:64"`
	Purpose   string    `gorm:"index:idx_otp_lookup;size:32"`
	CreatedAt time.Time `gorm:"index"`
	ExpiresAt time.Time
	IsUsed    bool
}

// TableName returns the table name for GORM
func (DBOneTimeCode) TableName() string {
	return "otp_codes"
}

// NewCodeRepository creates a new one-time-code repository
func NewCodeRepository(db *gorm.DB) domain.CodeRepository {
	return &CodeRepositoryImpl{db: db}
}

// Create implements domain.CodeRepository
func (r *CodeRepositoryImpl) Create(ctx context.Context, code *domain.OneTimeCode) error {
	dbCode := codeToDB(code)
	if err := r.db.WithContext(ctx).Create(dbCode).Error; err != nil {
		return err
	}
	code.ID = dbCode.ID
	return nil
}

// FindActive implements domain.CodeRepository. When duplicates coexist, the
// most recently issued row wins.
func (r *CodeRepositoryImpl) FindActive(ctx context.Context, phone, codeHash, purpose string, now time.Time) (*domain.OneTimeCode, error) {
	var dbCode DBOneTimeCode
	err := r.db.WithContext(ctx).
		Where("phone = ? AND code_hash = ? AND purpose = ? AND is_used = ? AND expires_at > ?",
			phone, codeHash, purpose, false, now).
		Order("created_at DESC").
		First(&dbCode).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCodeInvalid
		}
		return nil, err
	}
	return codeToDomain(&dbCode), nil
}

func codeToDB(code *domain.OneTimeCode) *DBOneTimeCode {
	return &DBOneTimeCode{
		ID:        code.ID,
		Phone:     code.Phone,
		CodeHash:  code.CodeHash,
		Purpose:   code.Purpose,
		CreatedAt: code.CreatedAt,
		ExpiresAt: code.ExpiresAt,
		IsUsed:    code.IsUsed,
	}
}

func codeToDomain(dbCode *DBOneTimeCode) *domain.OneTimeCode {
	return &domain.OneTimeCode{
		ID:        dbCode.ID,
		Phone:     dbCode.Phone,
		CodeHash:  dbCode.CodeHash,
		Purpose:   dbCode.Purpose,
		CreatedAt: dbCode.CreatedAt,
		ExpiresAt: dbCode.ExpiresAt,
		IsUsed:    dbCode.IsUsed,
	}
}
