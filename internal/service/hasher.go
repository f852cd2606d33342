package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts one-way password hashing
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Matches(plain, digest string) bool
}

// BcryptHasher hashes passwords with bcrypt at the default cost
type BcryptHasher struct{}

// Hash produces a salted bcrypt digest of the plaintext
func (BcryptHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Matches verifies the plaintext against a stored digest
func (BcryptHasher) Matches(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
