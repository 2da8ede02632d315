package mocks

import "github.com/you/invitesvc/domain"

// MockCredentialHasher implements domain.CredentialHasher interface for testing
type MockCredentialHasher struct {
	HashTokenFunc func(raw string) string
	HashCodeFunc  func(raw string) string
}

// NewMockCredentialHasher creates a new MockCredentialHasher with default behaviors
func NewMockCredentialHasher() *MockCredentialHasher {
	return &MockCredentialHasher{}
}

// HashToken digests an invite token
func (m *MockCredentialHasher) HashToken(raw string) string {
	if m.HashTokenFunc != nil {
		return m.HashTokenFunc(raw)
	}
	return "token_digest_" + raw
}

// HashCode digests a one-time code
func (m *MockCredentialHasher) HashCode(raw string) string {
	if m.HashCodeFunc != nil {
		return m.HashCodeFunc(raw)
	}
	return "code_digest_" + raw
}

// Ensure MockCredentialHasher implements the interface
var _ domain.CredentialHasher = (*MockCredentialHasher)(nil)
