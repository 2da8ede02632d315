package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/invitesvc/domain"
)

// OTPServiceImpl implements domain.OTPService. Resend throttling lives in
// Redis keyed per phone, so every instance of the service shares the window.
type OTPServiceImpl struct {
	codeRepo     domain.CodeRepository
	hasher       domain.CredentialHasher
	notifier     domain.NotificationService
	redis        *redis.Client
	codeTTL      time.Duration
	codeLength   int
	resendWindow time.Duration
	now          func() time.Time
}

// NewOTPService creates a new OTP service
func NewOTPService(
	codeRepo domain.CodeRepository,
	hasher domain.CredentialHasher,
	notifier domain.NotificationService,
	redisClient *redis.Client,
	codeTTL time.Duration,
	codeLength int,
	resendWindow time.Duration,
) domain.OTPService {
	return &OTPServiceImpl{
		codeRepo:     codeRepo,
		hasher:       hasher,
		notifier:     notifier,
		redis:        redisClient,
		codeTTL:      codeTTL,
		codeLength:   codeLength,
		resendWindow: resendWindow,
		now:          time.Now,
	}
}

// Generate implements domain.OTPService. The raw code is returned to the
// caller for delivery and never stored; the row carries only its digest.
func (s *OTPServiceImpl) Generate(ctx context.Context, phone string) (*domain.OneTimeCode, string, error) {
	phone = domain.NormalizePhone(phone)

	ok, retryAfter, err := s.CanResend(ctx, phone)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", fmt.Errorf("%w: retry in %ds", domain.ErrOTPResendLimit, retryAfter)
	}

	rawCode, err := generateNumericCode(s.codeLength)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate code: %w", err)
	}

	code := &domain.OneTimeCode{
		Phone:     phone,
		CodeHash:  s.hasher.HashCode(rawCode),
		Purpose:   domain.PurposeLogin,
		CreatedAt: s.now(),
		ExpiresAt: s.now().Add(s.codeTTL),
	}
	if err := s.codeRepo.Create(ctx, code); err != nil {
		return nil, "", fmt.Errorf("failed to store code: %w", err)
	}

	if err := s.redis.Set(ctx, resendKey(phone), "1", s.resendWindow).Err(); err != nil {
		return nil, "", fmt.Errorf("failed to set resend window: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.SendSMS(phone, fmt.Sprintf("Your verification code is %s", rawCode)); err != nil {
			// Delivery is best effort; the caller still receives the code.
			log.Printf("OTP_DELIVERY_FAILED: phone=%s error=%v", domain.MaskPhone(phone), err)
		}
	}

	return code, rawCode, nil
}

// CanResend implements domain.OTPService. It reports whether a new code may be
// issued for phone right now and, when not, the remaining wait in seconds.
func (s *OTPServiceImpl) CanResend(ctx context.Context, phone string) (bool, int64, error) {
	ttl, err := s.redis.TTL(ctx, resendKey(domain.NormalizePhone(phone))).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend window: %w", err)
	}
	if ttl > 0 {
		secs := int64(ttl.Seconds())
		if secs < 1 {
			secs = 1
		}
		return false, secs, nil
	}
	return true, 0, nil
}

func resendKey(phone string) string {
	return "otp_resend:" + phone
}

// generateNumericCode draws n decimal digits from crypto/rand.
func generateNumericCode(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}
