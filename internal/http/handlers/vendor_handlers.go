package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/invitesvc/domain"
)

// VendorHandlers handles vendor-facing HTTP requests
type VendorHandlers struct {
	vendorSvc domain.VendorService
}

// NewVendorHandlers creates new vendor handlers
func NewVendorHandlers(vendorSvc domain.VendorService) *VendorHandlers {
	return &VendorHandlers{vendorSvc: vendorSvc}
}

// Profile returns the store profile owned by the authenticated vendor.
func (h *VendorHandlers) Profile(c *gin.Context) {
	userID, exists := c.Get("user_id_uint")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	profile, err := h.vendorSvc.Profile(c.Request.Context(), userID.(uint))
	if err != nil {
		if err == domain.ErrVendorNotFound {
			c.JSON(http.StatusForbidden, gin.H{"error": "No vendor profile for this account"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":           profile.ID,
			"store_name":   profile.StoreName,
			"city":         profile.City,
			"address_line": profile.AddressLine,
			"province":     profile.Province,
			"postal_code":  profile.PostalCode,
			"is_active":    profile.IsActive,
		},
	})
}
