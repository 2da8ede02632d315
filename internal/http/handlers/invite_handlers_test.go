package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/invitesvc/domain"
	"github.com/you/invitesvc/internal/mocks"
)

func performAccept(t *testing.T, inviteSvc domain.InviteService, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := NewInviteHandlers(inviteSvc)
	r.POST("/api/invite/accept", h.Accept)

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/invite/accept", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAcceptSuccess(t *testing.T) {
	svc := mocks.NewMockInviteService()

	w := performAccept(t, svc, AcceptRequest{Token: "raw-token", OTPCode: "123456"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "/mechanic", resp["redirect"])

	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "MECHANIC", user["role"])

	created := resp["created"].(map[string]interface{})
	assert.Equal(t, true, created["user"])
	assert.Equal(t, true, created["roleEntity"])
	assert.Equal(t, true, created["qrGenerated"])

	tokens := resp["tokens"].(map[string]interface{})
	assert.Equal(t, "mock_access_token", tokens["access_token"])
	assert.Equal(t, "Bearer", tokens["token_type"])
}

func TestAcceptValidation(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{"missing token", gin.H{"otpCode": "123456"}},
		{"missing code", gin.H{"token": "raw-token"}},
		{"non-numeric code", gin.H{"token": "raw-token", "otpCode": "12a456"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svc := mocks.NewMockInviteService()
			svc.RedeemFunc = func(ctx context.Context, rawToken, rawCode string) (*domain.RedemptionOutcome, error) {
				called = true
				return nil, nil
			}

			w := performAccept(t, svc, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, called, "validation failures never reach the service")
		})
	}
}

func TestAcceptErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"invite not found", domain.ErrInviteNotFound, http.StatusNotFound},
		{"invite used", domain.ErrInviteUsed, http.StatusGone},
		{"invite expired", domain.ErrInviteExpired, http.StatusGone},
		{"code invalid", domain.ErrCodeInvalid, http.StatusBadRequest},
		{"code consumed", domain.ErrCodeConsumed, http.StatusBadRequest},
		{"role conflict", domain.ErrRoleConflict, http.StatusBadRequest},
		{"unexpected failure", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockInviteService()
			svc.RedeemFunc = func(ctx context.Context, rawToken, rawCode string) (*domain.RedemptionOutcome, error) {
				return nil, tt.err
			}

			w := performAccept(t, svc, AcceptRequest{Token: "raw-token", OTPCode: "123456"})
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAcceptUsedAndExpiredHaveDistinctMessages(t *testing.T) {
	responses := map[string]string{}
	for name, err := range map[string]error{"used": domain.ErrInviteUsed, "expired": domain.ErrInviteExpired} {
		svc := mocks.NewMockInviteService()
		failure := err
		svc.RedeemFunc = func(ctx context.Context, rawToken, rawCode string) (*domain.RedemptionOutcome, error) {
			return nil, failure
		}
		w := performAccept(t, svc, AcceptRequest{Token: "raw-token", OTPCode: "123456"})
		require.Equal(t, http.StatusGone, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		responses[name] = resp["error"].(string)
	}
	assert.NotEqual(t, responses["used"], responses["expired"])
}

func TestAcceptUnexpectedErrorIsMasked(t *testing.T) {
	svc := mocks.NewMockInviteService()
	svc.RedeemFunc = func(ctx context.Context, rawToken, rawCode string) (*domain.RedemptionOutcome, error) {
		return nil, errors.New("pq: connection refused")
	}

	w := performAccept(t, svc, AcceptRequest{Token: "raw-token", OTPCode: "123456"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, resp["error"], "connection refused")
	assert.NotEmpty(t, resp["request_id"], "the response carries a correlation handle instead")
}
