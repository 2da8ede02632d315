package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/invitesvc/domain"
	"github.com/you/invitesvc/internal/mocks"
)

func authTestRouter(authSvc domain.AuthService, otpSvc domain.OTPService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandlers(authSvc, otpSvc)

	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/otp/send", h.SendOTP)
	r.Use(func(c *gin.Context) {
		c.Set("user_id_uint", uint(1))
		c.Set("session_id", "sess_test")
	})
	r.GET("/api/auth/me", h.Me)
	r.POST("/api/auth/logout", h.Logout)
	r.POST("/api/auth/password", h.SetPassword)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginStatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"success", nil, http.StatusOK},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"suspended", domain.ErrUserInactive, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.err != nil {
				failure := tt.err
				authSvc.LoginFunc = func(ctx context.Context, phone, password string) (*domain.AuthResult, error) {
					return nil, failure
				}
			}
			r := authTestRouter(authSvc, mocks.NewMockOTPService())

			w := postJSON(r, "/api/auth/login", LoginRequest{Phone: "09121234567", Password: "secret123"})
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSendOTPThrottled(t *testing.T) {
	otpSvc := mocks.NewMockOTPService()
	otpSvc.CanResendFunc = func(ctx context.Context, phone string) (bool, int64, error) {
		return false, 42, nil
	}
	r := authTestRouter(mocks.NewMockAuthService(), otpSvc)

	w := postJSON(r, "/api/auth/otp/send", SendOTPRequest{Phone: "09121234567"})
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "42", w.Header().Get("Retry-After"))
}

func TestSendOTPNeverEchoesTheCode(t *testing.T) {
	r := authTestRouter(mocks.NewMockAuthService(), mocks.NewMockOTPService())

	w := postJSON(r, "/api/auth/otp/send", SendOTPRequest{Phone: "09121234567"})
	require.Equal(t, http.StatusOK, w.Code)
	// The mock's default raw code must not leak into the response body.
	assert.NotContains(t, w.Body.String(), "123456")
}

func TestMeReturnsProfile(t *testing.T) {
	r := authTestRouter(mocks.NewMockAuthService(), mocks.NewMockOTPService())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "MECHANIC", data["role"])
	assert.Equal(t, false, data["passwordSet"], "default profile has not completed password setup")
}

func TestSetPasswordConflict(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.SetPasswordFunc = func(ctx context.Context, userID uint, password string) error {
		return domain.ErrPasswordAlreadySet
	}
	r := authTestRouter(authSvc, mocks.NewMockOTPService())

	w := postJSON(r, "/api/auth/password", SetPasswordRequest{Password: "secret123"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogout(t *testing.T) {
	var deleted string
	authSvc := mocks.NewMockAuthService()
	authSvc.LogoutFunc = func(ctx context.Context, sessionID string) error {
		deleted = sessionID
		return nil
	}
	r := authTestRouter(authSvc, mocks.NewMockOTPService())

	w := postJSON(r, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sess_test", deleted)
}
