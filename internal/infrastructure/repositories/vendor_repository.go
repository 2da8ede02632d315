package repositories

import (
	"context"
	"time"

	"github.com/you/invitesvc/domain"
	"gorm.io/gorm"
)

// VendorRepositoryImpl implements domain.VendorRepository using GORM
type VendorRepositoryImpl struct {
	db *gorm.DB
}

// DBVendor represents the database model for VendorProfile
type DBVendor struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"uniqueIndex"`
	StoreName   string `gorm:"size:255"`
	City        string `gorm:"size:128"`
	AddressLine string `gorm:"size:255"`
	Province    string `gorm:"size:128"`
	PostalCode  string `gorm:"size:16"`
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBVendor) TableName() string {
	return "vendors"
}

// NewVendorRepository creates a new vendor profile repository
func NewVendorRepository(db *gorm.DB) domain.VendorRepository {
	return &VendorRepositoryImpl{db: db}
}

// Create implements domain.VendorRepository
func (r *VendorRepositoryImpl) Create(ctx context.Context, profile *domain.VendorProfile) error {
	dbVendor := vendorToDB(profile)
	if err := r.db.WithContext(ctx).Create(dbVendor).Error; err != nil {
		return err
	}
	profile.ID = dbVendor.ID
	return nil
}

// FindByUserID implements domain.VendorRepository
func (r *VendorRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*domain.VendorProfile, error) {
	var dbVendor DBVendor
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbVendor).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrVendorNotFound
		}
		return nil, err
	}
	return vendorToDomain(&dbVendor), nil
}

func vendorToDB(profile *domain.VendorProfile) *DBVendor {
	return &DBVendor{
		ID:          profile.ID,
		UserID:      profile.UserID,
		StoreName:   profile.StoreName,
		City:        profile.City,
		AddressLine: profile.AddressLine,
		Province:    profile.Province,
		PostalCode:  profile.PostalCode,
		IsActive:    profile.IsActive,
	}
}

func vendorToDomain(dbVendor *DBVendor) *domain.VendorProfile {
	return &domain.VendorProfile{
		ID:          dbVendor.ID,
		UserID:      dbVendor.UserID,
		StoreName:   dbVendor.StoreName,
		City:        dbVendor.City,
		AddressLine: dbVendor.AddressLine,
		Province:    dbVendor.Province,
		PostalCode:  dbVendor.PostalCode,
		IsActive:    dbVendor.IsActive,
		CreatedAt:   dbVendor.CreatedAt,
		UpdatedAt:   dbVendor.UpdatedAt,
	}
}
