package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/you/invitesvc/domain"
)

// InviteServiceImpl implements domain.InviteService
type InviteServiceImpl struct {
	inviteRepo  domain.InviteRepository
	codeRepo    domain.CodeRepository
	store       domain.RedemptionStore
	sessionRepo domain.SessionRepository
	tokenSvc    domain.TokenService
	hasher      domain.CredentialHasher
	accessTTL   time.Duration
	sessionTTL  time.Duration
	now         func() time.Time
}

// NewInviteService creates a new invitation service
func NewInviteService(
	inviteRepo domain.InviteRepository,
	codeRepo domain.CodeRepository,
	store domain.RedemptionStore,
	sessionRepo domain.SessionRepository,
	tokenSvc domain.TokenService,
	hasher domain.CredentialHasher,
	accessTTL time.Duration,
	sessionTTL time.Duration,
) domain.InviteService {
	return &InviteServiceImpl{
		inviteRepo:  inviteRepo,
		codeRepo:    codeRepo,
		store:       store,
		sessionRepo: sessionRepo,
		tokenSvc:    tokenSvc,
		hasher:      hasher,
		accessTTL:   accessTTL,
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

// Redeem implements domain.InviteService. Validation failures are detected
// before the atomic unit and returned directly; anything failing inside the
// unit rolls every write back.
func (s *InviteServiceImpl) Redeem(ctx context.Context, rawToken, rawCode string) (*domain.RedemptionOutcome, error) {
	now := s.now()

	invite, err := s.inviteRepo.FindByCodeHash(ctx, s.hasher.HashToken(rawToken))
	if err != nil {
		return nil, err
	}
	// Used and expired are reported separately; the caller's next step
	// differs between the two.
	if invite.UsedAt != nil {
		return nil, domain.ErrInviteUsed
	}
	if !now.Before(invite.ExpiresAt) {
		return nil, domain.ErrInviteExpired
	}

	phone := domain.NormalizePhone(invite.Phone)
	invite.Phone = phone

	code, err := s.codeRepo.FindActive(ctx, phone, s.hasher.HashCode(rawCode), domain.PurposeLogin, now)
	if err != nil {
		return nil, err
	}

	result, err := s.store.Redeem(ctx, invite, code)
	if err != nil {
		return nil, err
	}

	auth, err := s.issueTokens(ctx, result.User)
	if err != nil {
		return nil, err
	}

	return &domain.RedemptionOutcome{
		Result:   result,
		Auth:     auth,
		Redirect: domain.LandingPath(result.User.Role),
	}, nil
}

// CreateInvite implements domain.InviteService. The raw token is returned
// exactly once; only its digest is stored.
func (s *InviteServiceImpl) CreateInvite(ctx context.Context, phone, role string, ttl time.Duration, meta *domain.InviteMeta) (*domain.Invitation, string, error) {
	rawToken, err := generateInviteToken()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate invite token: %w", err)
	}

	invite := &domain.Invitation{
		CodeHash:  s.hasher.HashToken(rawToken),
		Phone:     domain.NormalizePhone(phone),
		Role:      role,
		Meta:      meta,
		CreatedAt: s.now(),
		ExpiresAt: s.now().Add(ttl),
	}
	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		return nil, "", fmt.Errorf("failed to store invitation: %w", err)
	}
	return invite, rawToken, nil
}

func (s *InviteServiceImpl) issueTokens(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	session := &domain.Session{
		ID:        "sess_" + uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.sessionTTL),
		CreatedAt: s.now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// generateInviteToken draws a 32-byte random token, hex encoded.
func generateInviteToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
