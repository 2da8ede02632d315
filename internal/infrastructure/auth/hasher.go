package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/you/invitesvc/domain"
)

// SHA256Hasher implements domain.CredentialHasher. Tables hold only the
// digest of invite tokens and one-time codes; a submitted value is hashed
// and looked up by digest equality, so the raw secret never reaches storage
// or a plaintext comparison.
type SHA256Hasher struct{}

// NewCredentialHasher creates a new credential hasher
func NewCredentialHasher() domain.CredentialHasher {
	return SHA256Hasher{}
}

// HashToken implements domain.CredentialHasher
func (SHA256Hasher) HashToken(raw string) string { return digest(raw) }

// HashCode implements domain.CredentialHasher
func (SHA256Hasher) HashCode(raw string) string { return digest(raw) }

func digest(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
