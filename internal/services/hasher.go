package services

import "golang.org/x/crypto/bcrypt"

// Hasher is the one-way credential transform applied before a user record
// is persisted. The service never inspects or reverses the result.
type Hasher interface {
	Hash(plain string) (string, error)
}

// BcryptHasher hashes credentials with bcrypt at the default cost.
type BcryptHasher struct{}

// NewBcryptHasher creates a new BcryptHasher
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{}
}

// Hash returns the bcrypt hash of the plain text credential
func (BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
