package domain

import "errors"

// Invitation errors
var (
	ErrInviteNotFound = errors.New("invitation not found")
	ErrInviteExpired  = errors.New("invitation has expired")
	ErrInviteUsed     = errors.New("invitation has already been used")
	ErrRoleConflict   = errors.New("existing user role does not match invitation")
)

// One-time code errors
var (
	ErrCodeInvalid    = errors.New("invalid one-time code")
	ErrCodeConsumed   = errors.New("one-time code has already been consumed")
	ErrOTPResendLimit = errors.New("one-time code resend limit exceeded")
)

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordAlreadySet = errors.New("password has already been set")
	ErrMechanicNotFound   = errors.New("mechanic profile not found")
	ErrVendorNotFound     = errors.New("vendor profile not found")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)
