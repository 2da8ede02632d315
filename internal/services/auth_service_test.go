package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/invitesvc/domain"
	"github.com/you/invitesvc/internal/mocks"
)

type authServiceMocks struct {
	userRepo    *mocks.MockUserRepository
	sessionRepo *mocks.MockSessionRepository
	passwordSvc *mocks.MockPasswordService
	tokenSvc    *mocks.MockTokenService
}

func newAuthService(t *testing.T) (domain.AuthService, *authServiceMocks) {
	t.Helper()
	m := &authServiceMocks{
		userRepo:    mocks.NewMockUserRepository(),
		sessionRepo: mocks.NewMockSessionRepository(),
		passwordSvc: mocks.NewMockPasswordService(),
		tokenSvc:    mocks.NewMockTokenService(),
	}
	svc := NewAuthService(m.userRepo, m.sessionRepo, m.passwordSvc, m.tokenSvc,
		15*time.Minute, 7*24*time.Hour)
	return svc, m
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.Login(context.Background(), "09121234567", "password")
	require.NoError(t, err)
	assert.Equal(t, "mock_access_token", result.AccessToken)
	assert.Equal(t, int64(900), result.ExpiresIn)
	assert.Contains(t, result.SessionID, "sess_")
}

func TestLoginFailureModes(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *authServiceMocks)
		wantErr error
	}{
		{
			name: "unknown phone",
			setup: func(m *authServiceMocks) {
				m.userRepo.FindByPhoneFunc = func(ctx context.Context, phone string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "password never set",
			setup: func(m *authServiceMocks) {
				m.userRepo.FindByPhoneFunc = func(ctx context.Context, phone string) (*domain.User, error) {
					return &domain.User{ID: 1, Phone: phone, Role: domain.RoleMechanic, Status: domain.StatusActive}, nil
				}
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(m *authServiceMocks) {
				m.passwordSvc.VerifyFunc = func(hashedPassword, password string) bool { return false }
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "suspended account",
			setup: func(m *authServiceMocks) {
				m.userRepo.FindByPhoneFunc = func(ctx context.Context, phone string) (*domain.User, error) {
					return &domain.User{
						ID: 1, Phone: phone, PasswordHash: "hashed_password",
						Role: domain.RoleMechanic, Status: domain.StatusSuspended,
					}, nil
				}
			},
			wantErr: domain.ErrUserInactive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)
			_, err := svc.Login(context.Background(), "09121234567", "password")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRefreshTokenRequiresLiveSession(t *testing.T) {
	svc, m := newAuthService(t)
	m.sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return nil, domain.ErrSessionNotFound
	}

	_, err := svc.RefreshToken(context.Background(), "refresh-token")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRefreshTokenRotatesTokens(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.RefreshToken(context.Background(), "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "mock_access_token", result.AccessToken)
	assert.Equal(t, "mock_session_id", result.SessionID, "session survives the rotation")
}

func TestSetPasswordOnlyOnce(t *testing.T) {
	t.Run("first time succeeds", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id, Role: domain.RoleMechanic, Status: domain.StatusActive}, nil
		}
		var storedHash string
		m.userRepo.SetPasswordFunc = func(ctx context.Context, userID uint, passwordHash string) error {
			storedHash = passwordHash
			return nil
		}

		require.NoError(t, svc.SetPassword(context.Background(), 1, "secret123"))
		assert.Equal(t, "hashed_secret123", storedHash)
	})

	t.Run("second time refuses", func(t *testing.T) {
		svc, _ := newAuthService(t)
		err := svc.SetPassword(context.Background(), 1, "secret123")
		assert.ErrorIs(t, err, domain.ErrPasswordAlreadySet)
	})
}

func TestLogoutDeletesSession(t *testing.T) {
	svc, m := newAuthService(t)
	var deleted string
	m.sessionRepo.DeleteFunc = func(ctx context.Context, sessionID string) error {
		deleted = sessionID
		return nil
	}

	require.NoError(t, svc.Logout(context.Background(), "sess_xyz"))
	assert.Equal(t, "sess_xyz", deleted)
}
