package domain

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credential verifies a caller-supplied secret. Callers never see the stored
// form, so a plaintext scheme can be swapped for a hashed one without
// touching the transfer path.
type Credential interface {
	Verify(candidate string) bool
}

// PlainCredential stores the secret as-is. Used by the seeded demo accounts.
type PlainCredential string

func (c PlainCredential) Verify(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(c), []byte(candidate)) == 1
}

// BcryptCredential stores a bcrypt hash of the secret.
type BcryptCredential []byte

func NewBcryptCredential(secret string) (BcryptCredential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return BcryptCredential(hash), nil
}

func (c BcryptCredential) Verify(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c), []byte(candidate)) == nil
}
