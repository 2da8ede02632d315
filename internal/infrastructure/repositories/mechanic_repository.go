package repositories

import (
	"context"
	"time"

	"github.com/you/invitesvc/domain"
	"gorm.io/gorm"
)

// MechanicRepositoryImpl implements domain.MechanicRepository using GORM
type MechanicRepositoryImpl struct {
	db *gorm.DB
}

// DBMechanic represents the database model for MechanicProfile
type DBMechanic struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"uniqueIndex"`
	Code        string `gorm:"uniqueIndex;size:16"`
	QRActive    bool   `gorm:"column:qr_active"`
	City        string `gorm:"size:128"`
	Specialties string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBMechanic) TableName() string {
	return "mechanics"
}

// NewMechanicRepository creates a new mechanic profile repository
func NewMechanicRepository(db *gorm.DB) domain.MechanicRepository {
	return &MechanicRepositoryImpl{db: db}
}

// Create implements domain.MechanicRepository
func (r *MechanicRepositoryImpl) Create(ctx context.Context, profile *domain.MechanicProfile) error {
	dbMech := mechanicToDB(profile)
	if err := r.db.WithContext(ctx).Create(dbMech).Error; err != nil {
		return err
	}
	profile.ID = dbMech.ID
	return nil
}

// FindByUserID implements domain.MechanicRepository
func (r *MechanicRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*domain.MechanicProfile, error) {
	var dbMech DBMechanic
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbMech).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrMechanicNotFound
		}
		return nil, err
	}
	return mechanicToDomain(&dbMech), nil
}

func mechanicToDB(profile *domain.MechanicProfile) *DBMechanic {
	return &DBMechanic{
		ID:          profile.ID,
		UserID:      profile.UserID,
		Code:        profile.Code,
		QRActive:    profile.QRActive,
		City:        profile.City,
		Specialties: profile.Specialties,
	}
}

func mechanicToDomain(dbMech *DBMechanic) *domain.MechanicProfile {
	return &domain.MechanicProfile{
		ID:          dbMech.ID,
		UserID:      dbMech.UserID,
		Code:        dbMech.Code,
		QRActive:    dbMech.QRActive,
		City:        dbMech.City,
		Specialties: dbMech.Specialties,
		CreatedAt:   dbMech.CreatedAt,
		UpdatedAt:   dbMech.UpdatedAt,
	}
}
