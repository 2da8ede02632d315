package services

import (
	"context"

	"github.com/you/invitesvc/domain"
)

// VendorServiceImpl implements domain.VendorService
type VendorServiceImpl struct {
	vendorRepo domain.VendorRepository
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo domain.VendorRepository) domain.VendorService {
	return &VendorServiceImpl{vendorRepo: vendorRepo}
}

// Profile implements domain.VendorService. A user without a vendor profile
// gets ErrVendorNotFound.
func (s *VendorServiceImpl) Profile(ctx context.Context, userID uint) (*domain.VendorProfile, error) {
	return s.vendorRepo.FindByUserID(ctx, userID)
}
