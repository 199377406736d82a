// Package cryptox protects account credentials with a salted, adaptive,
// one-way hash. It performs no I/O.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/useraccounts/internal/common"
)

// WorkFactor is the bcrypt cost used for every new hash. Each increment
// doubles the time needed to compute (and to brute-force) a hash.
const WorkFactor = bcrypt.DefaultCost

// PasswordHasher hashes raw passwords and verifies them against stored hashes.
//
// Typical use:
//
//	hashed, err := hasher.Hash(rawPassword)
//	...
//	ok, err := hasher.Verify(candidate, hashed)
//	if err != nil {
//	    // the stored hash is malformed
//	}
type PasswordHasher interface {
	// Hash returns an encoded hash of raw. Two calls with the same input
	// produce different outputs because every call draws a fresh salt.
	Hash(raw string) (string, error)

	// Verify reports whether raw matches hashed. The salt and work factor
	// are read from hashed itself. A malformed hash is an error, not false.
	Verify(raw, hashed string) (bool, error)
}

// BcryptHasher implements PasswordHasher with bcrypt at WorkFactor.
type BcryptHasher struct{}

// NewBcryptHasher returns the bcrypt-backed PasswordHasher.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

// Hash fails with *common.HashingError when bcrypt rejects the input, e.g.
// passwords longer than 72 bytes.
func (h *BcryptHasher) Hash(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), WorkFactor)
	if err != nil {
		return "", common.NewHashingError("hash", err)
	}
	return string(hashed), nil
}

// Verify fails with *common.HashingError when hashed cannot be parsed.
func (h *BcryptHasher) Verify(raw, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, common.NewHashingError("verify", err)
	}
}
