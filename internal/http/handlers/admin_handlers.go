package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/invitesvc/domain"
)

// AdminHandlers handles administrative HTTP requests
type AdminHandlers struct {
	inviteSvc domain.InviteService
	inviteTTL time.Duration
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(inviteSvc domain.InviteService, inviteTTL time.Duration) *AdminHandlers {
	return &AdminHandlers{
		inviteSvc: inviteSvc,
		inviteTTL: inviteTTL,
	}
}

// CreateInviteRequest represents an invitation minting request
type CreateInviteRequest struct {
	Phone string             `json:"phone" binding:"required"`
	Role  string             `json:"role" binding:"required,oneof=MECHANIC VENDOR"`
	Meta  *domain.InviteMeta `json:"meta,omitempty"`
}

// CreateInvite mints a single-use invitation. The raw token appears in this
// response and nowhere else; only its digest is persisted.
func (h *AdminHandlers) CreateInvite(c *gin.Context) {
	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invite, rawToken, err := h.inviteSvc.CreateInvite(c.Request.Context(), req.Phone, req.Role, h.inviteTTL, req.Meta)
	if err != nil {
		log.Printf("INVITE_MINT_FAILED: role=%s phone=%s error=%v", req.Role, domain.MaskPhone(req.Phone), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation"})
		return
	}

	log.Printf("INVITE_MINTED: invite_id=%d role=%s phone=%s expires_at=%s",
		invite.ID, invite.Role, domain.MaskPhone(invite.Phone), invite.ExpiresAt.Format(time.RFC3339))

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"id":         invite.ID,
			"token":      rawToken,
			"phone":      invite.Phone,
			"role":       invite.Role,
			"expires_at": invite.ExpiresAt.Unix(),
		},
	})
}
