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

type inviteServiceMocks struct {
	inviteRepo  *mocks.MockInviteRepository
	codeRepo    *mocks.MockCodeRepository
	store       *mocks.MockRedemptionStore
	sessionRepo *mocks.MockSessionRepository
	tokenSvc    *mocks.MockTokenService
	hasher      *mocks.MockCredentialHasher
}

func newInviteService(t *testing.T) (domain.InviteService, *inviteServiceMocks) {
	t.Helper()
	m := &inviteServiceMocks{
		inviteRepo:  mocks.NewMockInviteRepository(),
		codeRepo:    mocks.NewMockCodeRepository(),
		store:       mocks.NewMockRedemptionStore(),
		sessionRepo: mocks.NewMockSessionRepository(),
		tokenSvc:    mocks.NewMockTokenService(),
		hasher:      mocks.NewMockCredentialHasher(),
	}
	svc := NewInviteService(m.inviteRepo, m.codeRepo, m.store, m.sessionRepo, m.tokenSvc, m.hasher,
		15*time.Minute, 7*24*time.Hour)
	return svc, m
}

func TestRedeemHappyPath(t *testing.T) {
	svc, m := newInviteService(t)

	var lookedUpHash string
	m.inviteRepo.FindByCodeHashFunc = func(ctx context.Context, codeHash string) (*domain.Invitation, error) {
		lookedUpHash = codeHash
		return &domain.Invitation{
			ID:        1,
			Phone:     "09121234567",
			Role:      domain.RoleMechanic,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}
	var codeLookupPhone string
	m.codeRepo.FindActiveFunc = func(ctx context.Context, phone, codeHash, purpose string, now time.Time) (*domain.OneTimeCode, error) {
		codeLookupPhone = phone
		return &domain.OneTimeCode{ID: 9, Phone: phone, CodeHash: codeHash, Purpose: purpose,
			ExpiresAt: now.Add(time.Minute)}, nil
	}

	outcome, err := svc.Redeem(context.Background(), "raw-token", "123456")
	require.NoError(t, err)

	assert.Equal(t, "token_digest_raw-token", lookedUpHash, "only the digest is looked up")
	assert.Equal(t, "+989121234567", codeLookupPhone, "phone is normalized before the code lookup")
	assert.Equal(t, "/mechanic", outcome.Redirect)
	assert.True(t, outcome.Result.UserCreated)
	assert.Equal(t, "mock_access_token", outcome.Auth.AccessToken)
	assert.Equal(t, "mock_refresh_token", outcome.Auth.RefreshToken)
	assert.Equal(t, int64(900), outcome.Auth.ExpiresIn)
}

func TestRedeemUsedAndExpiredAreDistinct(t *testing.T) {
	used := time.Now().Add(-time.Hour)

	tests := []struct {
		name    string
		invite  *domain.Invitation
		wantErr error
	}{
		{
			name: "already used",
			invite: &domain.Invitation{
				ID: 1, Role: domain.RoleMechanic,
				ExpiresAt: time.Now().Add(time.Hour),
				UsedAt:    &used,
			},
			wantErr: domain.ErrInviteUsed,
		},
		{
			name: "expired",
			invite: &domain.Invitation{
				ID: 1, Role: domain.RoleMechanic,
				ExpiresAt: time.Now().Add(-time.Minute),
			},
			wantErr: domain.ErrInviteExpired,
		},
		{
			// An invite both used and past its expiry reports used.
			name: "used takes precedence over expired",
			invite: &domain.Invitation{
				ID: 1, Role: domain.RoleMechanic,
				ExpiresAt: time.Now().Add(-time.Minute),
				UsedAt:    &used,
			},
			wantErr: domain.ErrInviteUsed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newInviteService(t)
			m.inviteRepo.FindByCodeHashFunc = func(ctx context.Context, codeHash string) (*domain.Invitation, error) {
				return tt.invite, nil
			}
			storeCalled := false
			m.store.RedeemFunc = func(ctx context.Context, invite *domain.Invitation, code *domain.OneTimeCode) (*domain.RedemptionResult, error) {
				storeCalled = true
				return nil, nil
			}

			_, err := svc.Redeem(context.Background(), "raw-token", "123456")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, storeCalled, "invalid invite must not reach the store")
		})
	}
}

func TestRedeemPropagatesLookupErrors(t *testing.T) {
	t.Run("invite not found", func(t *testing.T) {
		svc, m := newInviteService(t)
		m.inviteRepo.FindByCodeHashFunc = func(ctx context.Context, codeHash string) (*domain.Invitation, error) {
			return nil, domain.ErrInviteNotFound
		}
		_, err := svc.Redeem(context.Background(), "raw-token", "123456")
		assert.ErrorIs(t, err, domain.ErrInviteNotFound)
	})

	t.Run("no active code", func(t *testing.T) {
		svc, m := newInviteService(t)
		m.codeRepo.FindActiveFunc = func(ctx context.Context, phone, codeHash, purpose string, now time.Time) (*domain.OneTimeCode, error) {
			return nil, domain.ErrCodeInvalid
		}
		_, err := svc.Redeem(context.Background(), "raw-token", "123456")
		assert.ErrorIs(t, err, domain.ErrCodeInvalid)
	})

	t.Run("store rejects", func(t *testing.T) {
		svc, m := newInviteService(t)
		m.store.RedeemFunc = func(ctx context.Context, invite *domain.Invitation, code *domain.OneTimeCode) (*domain.RedemptionResult, error) {
			return nil, domain.ErrRoleConflict
		}
		_, err := svc.Redeem(context.Background(), "raw-token", "123456")
		assert.ErrorIs(t, err, domain.ErrRoleConflict)
	})
}

func TestRedeemIssuesSessionForRedeemedUser(t *testing.T) {
	svc, m := newInviteService(t)

	var created *domain.Session
	m.sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
		created = session
		return nil
	}
	m.store.RedeemFunc = func(ctx context.Context, invite *domain.Invitation, code *domain.OneTimeCode) (*domain.RedemptionResult, error) {
		return &domain.RedemptionResult{
			User: &domain.User{ID: 42, Role: domain.RoleVendor, Status: domain.StatusActive},
		}, nil
	}

	outcome, err := svc.Redeem(context.Background(), "raw-token", "123456")
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, uint(42), created.UserID)
	assert.Contains(t, created.ID, "sess_")
	assert.Equal(t, "/vendor", outcome.Redirect)
}

func TestCreateInviteStoresDigestOnly(t *testing.T) {
	svc, m := newInviteService(t)

	var stored *domain.Invitation
	m.inviteRepo.CreateFunc = func(ctx context.Context, invite *domain.Invitation) error {
		stored = invite
		invite.ID = 5
		return nil
	}

	invite, rawToken, err := svc.CreateInvite(context.Background(), "09121234567", domain.RoleVendor,
		48*time.Hour, &domain.InviteMeta{StoreName: "Partsland"})
	require.NoError(t, err)

	assert.Len(t, rawToken, 64, "32 random bytes hex encoded")
	require.NotNil(t, stored)
	assert.Equal(t, "token_digest_"+rawToken, stored.CodeHash)
	assert.NotEqual(t, rawToken, stored.CodeHash)
	assert.Equal(t, "+989121234567", stored.Phone)
	assert.Equal(t, uint(5), invite.ID)
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), invite.ExpiresAt, time.Minute)
}
