package domain

import "time"

// User roles. A role is bound by the invitation that onboards the user and is
// immutable afterwards; a redemption for a different role is rejected.
const (
	RoleMechanic = "MECHANIC"
	RoleVendor   = "VENDOR"
	RoleAdmin    = "ADMIN"
)

// User statuses
const (
	StatusActive    = "ACTIVE"
	StatusSuspended = "SUSPENDED"
)

// PurposeLogin is the only one-time-code purpose issued today.
const PurposeLogin = "login"

// User represents an account holder
type User struct {
	ID           uint
	Phone        string
	FullName     string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PasswordSet reports whether the user has completed the set-password step.
func (u *User) PasswordSet() bool { return u.PasswordHash != "" }

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool { return u.Status == StatusActive }

// InviteMeta carries optional profile hints attached to an invitation. Every
// field is independently optional; reconciliation applies only the fields
// that are present.
type InviteMeta struct {
	FullName    string `json:"fullName,omitempty"`
	City        string `json:"city,omitempty"`
	Specialties string `json:"specialties,omitempty"`
	StoreName   string `json:"storeName,omitempty"`
	AddressLine string `json:"addressLine,omitempty"`
	Province    string `json:"province,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
}

// Invitation is a single-use credential binding a phone number to a role.
// It transitions unused -> used exactly once.
type Invitation struct {
	ID        uint
	CodeHash  string
	Phone     string
	Role      string
	Meta      *InviteMeta
	CreatedAt time.Time
	ExpiresAt time.Time
	UsedAt    *time.Time
}

// IsValid reports whether the invitation can still be redeemed at now.
func (i *Invitation) IsValid(now time.Time) bool {
	return i.UsedAt == nil && now.Before(i.ExpiresAt)
}

// OneTimeCode is a short-lived numeric credential proving control of a phone
// number. Only the SHA-256 digest of the code is stored.
type OneTimeCode struct {
	ID        uint
	Phone     string
	CodeHash  string
	Purpose   string
	CreatedAt time.Time
	ExpiresAt time.Time
	IsUsed    bool
}

// IsValid reports whether the code can still be consumed at now.
func (c *OneTimeCode) IsValid(now time.Time) bool {
	return !c.IsUsed && now.Before(c.ExpiresAt)
}

// MechanicProfile is the role entity for RoleMechanic, one-to-one with a user.
type MechanicProfile struct {
	ID          uint
	UserID      uint
	Code        string
	QRActive    bool
	City        string
	Specialties string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VendorProfile is the role entity for RoleVendor, one-to-one with a user.
type VendorProfile struct {
	ID          uint
	UserID      uint
	StoreName   string
	City        string
	AddressLine string
	Province    string
	PostalCode  string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RedemptionResult reports what one successful redemption did. The flags are
// informational only and never change control flow.
type RedemptionResult struct {
	User              *User
	UserCreated       bool
	RoleEntityCreated bool
	CodeGenerated     bool
}

// RedemptionOutcome is the full payload the redemption endpoint returns.
type RedemptionOutcome struct {
	Result   *RedemptionResult
	Auth     *AuthResult
	Redirect string
}

// Session represents a user session
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	SessionID    string
	ExpiresIn    int64
}

// TransactionRecord is one settled purchase as seen by a mechanic.
type TransactionRecord struct {
	ID             uint
	MechanicID     uint
	VendorID       uint
	VendorName     string
	Status         string
	AmountTotal    int64
	AmountEligible int64
	MechanicAmount int64
	CreatedAt      time.Time
}

// TransactionFilter narrows a transaction listing. Nil bounds are open.
type TransactionFilter struct {
	From   *time.Time
	To     *time.Time
	Status string
}

// TransactionSummary is a filtered listing plus its aggregates.
type TransactionSummary struct {
	Items         []TransactionRecord
	Count         int
	TotalMechanic int64
}

// LandingPath returns the role-appropriate landing area after onboarding.
func LandingPath(role string) string {
	switch role {
	case RoleMechanic:
		return "/mechanic"
	case RoleVendor:
		return "/vendor"
	default:
		return "/"
	}
}
