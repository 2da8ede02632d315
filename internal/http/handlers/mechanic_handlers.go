package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/invitesvc/domain"
)

// MechanicHandlers handles mechanic-facing HTTP requests
type MechanicHandlers struct {
	mechanicSvc domain.MechanicService
}

// NewMechanicHandlers creates new mechanic handlers
func NewMechanicHandlers(mechanicSvc domain.MechanicService) *MechanicHandlers {
	return &MechanicHandlers{mechanicSvc: mechanicSvc}
}

// Transactions lists the mechanic's settled transactions with totals.
// Optional query params: from, to (YYYY-MM-DD) and status.
func (h *MechanicHandlers) Transactions(c *gin.Context) {
	userID, exists := c.Get("user_id_uint")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.mechanicSvc.Transactions(c.Request.Context(), userID.(uint), filter)
	if err != nil {
		if err == domain.ErrMechanicNotFound {
			c.JSON(http.StatusForbidden, gin.H{"error": "No mechanic profile for this account"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transactions"})
		return
	}

	items := make([]gin.H, 0, len(summary.Items))
	for _, t := range summary.Items {
		items = append(items, gin.H{
			"id":              t.ID,
			"vendor_name":     t.VendorName,
			"status":          t.Status,
			"amount_total":    t.AmountTotal,
			"amount_eligible": t.AmountEligible,
			"mechanic_amount": t.MechanicAmount,
			"created_at":      t.CreatedAt.Unix(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items":          items,
			"count":          summary.Count,
			"total_mechanic": summary.TotalMechanic,
		},
	})
}

func parseTransactionFilter(c *gin.Context) (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filter, errInvalidDate("from")
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filter, errInvalidDate("to")
		}
		// Inclusive upper bound: the whole "to" day counts.
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	filter.Status = c.Query("status")

	return filter, nil
}

type invalidDateError string

func (e invalidDateError) Error() string {
	return "invalid " + string(e) + " date, expected YYYY-MM-DD"
}

func errInvalidDate(field string) error { return invalidDateError(field) }
