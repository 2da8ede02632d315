package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/you/invitesvc/domain"
)

// InviteHandlers handles invitation redemption HTTP requests
type InviteHandlers struct {
	inviteSvc domain.InviteService
}

// NewInviteHandlers creates new invite handlers
func NewInviteHandlers(inviteSvc domain.InviteService) *InviteHandlers {
	return &InviteHandlers{inviteSvc: inviteSvc}
}

// AcceptRequest represents an invitation redemption request
type AcceptRequest struct {
	Token   string `json:"token" binding:"required"`
	OTPCode string `json:"otpCode" binding:"required,numeric"`
}

// Accept handles invitation redemption. Validation failures carry enough to
// act on; everything unexpected is masked behind a request ID that pairs the
// response with the server log line.
func (h *InviteHandlers) Accept(c *gin.Context) {
	requestID := uuid.NewString()

	var req AcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token and numeric otpCode are required"})
		return
	}

	outcome, err := h.inviteSvc.Redeem(c.Request.Context(), req.Token, req.OTPCode)
	if err != nil {
		h.acceptError(c, requestID, err)
		return
	}

	user := outcome.Result.User
	log.Printf("INVITE_ACCEPTED: request_id=%s user_id=%d role=%s phone=%s user_created=%t entity_created=%t",
		requestID, user.ID, user.Role, domain.MaskPhone(user.Phone),
		outcome.Result.UserCreated, outcome.Result.RoleEntityCreated)

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"user": gin.H{
			"id":       user.ID,
			"role":     user.Role,
			"fullName": user.FullName,
			"phone":    user.Phone,
		},
		"created": gin.H{
			"user":        outcome.Result.UserCreated,
			"roleEntity":  outcome.Result.RoleEntityCreated,
			"qrGenerated": outcome.Result.CodeGenerated,
		},
		"redirect": outcome.Redirect,
		"tokens": gin.H{
			"access_token":  outcome.Auth.AccessToken,
			"refresh_token": outcome.Auth.RefreshToken,
			"token_type":    "Bearer",
			"expires_in":    outcome.Auth.ExpiresIn,
		},
	})
}

func (h *InviteHandlers) acceptError(c *gin.Context, requestID string, err error) {
	switch err {
	case domain.ErrInviteNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
	case domain.ErrInviteUsed:
		// Used and expired share the status but not the message; the caller's
		// recovery differs between them.
		c.JSON(http.StatusGone, gin.H{"error": "Invitation has already been used"})
	case domain.ErrInviteExpired:
		c.JSON(http.StatusGone, gin.H{"error": "Invitation has expired"})
	case domain.ErrCodeInvalid:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired verification code"})
	case domain.ErrCodeConsumed:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Verification code has already been used"})
	case domain.ErrRoleConflict:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account exists with a different role"})
	default:
		log.Printf("INVITE_ACCEPT_FAILED: request_id=%s error=%v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Redemption failed", "request_id": requestID})
	}
}
