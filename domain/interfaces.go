package domain

import (
	"context"
	"time"
)

// InviteRepository defines invitation data access operations
type InviteRepository interface {
	Create(ctx context.Context, invite *Invitation) error
	FindByCodeHash(ctx context.Context, codeHash string) (*Invitation, error)
}

// CodeRepository defines one-time-code data access operations
type CodeRepository interface {
	Create(ctx context.Context, code *OneTimeCode) error
	// FindActive returns the most recently issued unused, unexpired code
	// matching phone, digest and purpose. When duplicates exist, the newest
	// row is authoritative.
	FindActive(ctx context.Context, phone, codeHash, purpose string, now time.Time) (*OneTimeCode, error)
}

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	SetPassword(ctx context.Context, userID uint, passwordHash string) error
}

// MechanicRepository defines mechanic profile data access operations
type MechanicRepository interface {
	Create(ctx context.Context, profile *MechanicProfile) error
	FindByUserID(ctx context.Context, userID uint) (*MechanicProfile, error)
}

// VendorRepository defines vendor profile data access operations
type VendorRepository interface {
	Create(ctx context.Context, profile *VendorProfile) error
	FindByUserID(ctx context.Context, userID uint) (*VendorProfile, error)
}

// TransactionRepository defines read access to settled transactions
type TransactionRepository interface {
	ListByMechanic(ctx context.Context, mechanicID uint, filter TransactionFilter) ([]TransactionRecord, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedemptionStore executes the atomic provisioning unit for one redemption:
// consume the one-time code, create or reconcile the user and its role
// entity, retire the invitation. Either every write commits or none do.
type RedemptionStore interface {
	Redeem(ctx context.Context, invite *Invitation, code *OneTimeCode) (*RedemptionResult, error)
}

// InviteService defines the redemption pipeline and invitation minting
type InviteService interface {
	Redeem(ctx context.Context, rawToken, rawCode string) (*RedemptionOutcome, error)
	CreateInvite(ctx context.Context, phone, role string, ttl time.Duration, meta *InviteMeta) (*Invitation, string, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Login(ctx context.Context, phone, password string) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetProfile(ctx context.Context, userID uint) (*User, error)
	SetPassword(ctx context.Context, userID uint, password string) error
}

// OTPService defines one-time-code issuance. Delivery of the raw code is a
// collaborator concern; the service only stores the digest and throttles
// reissue per phone.
type OTPService interface {
	Generate(ctx context.Context, phone string) (*OneTimeCode, string, error)
	CanResend(ctx context.Context, phone string) (bool, int64, error)
}

// MechanicService defines mechanic-facing reporting
type MechanicService interface {
	Transactions(ctx context.Context, userID uint, filter TransactionFilter) (*TransactionSummary, error)
}

// VendorService defines vendor-facing account operations
type VendorService interface {
	Profile(ctx context.Context, userID uint) (*VendorProfile, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// CredentialHasher digests submitted invite tokens and one-time codes before
// they are compared against stored values. Raw credentials are never stored
// or logged.
type CredentialHasher interface {
	HashToken(raw string) string
	HashCode(raw string) string
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint, role string, sessionID string) (string, error)
	GenerateRefreshToken(userID uint, role string, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// NotificationService defines outbound messaging. The core never depends on
// delivery succeeding; implementations may be no-ops.
type NotificationService interface {
	SendSMS(to, message string) error
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
