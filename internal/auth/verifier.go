package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Verifier decides whether a username/password pair grants admin access.
type Verifier interface {
	Verify(username, password string) bool
}

// VerifierFunc adapts a plain function to the Verifier interface.
type VerifierFunc func(username, password string) bool

// Verify calls f.
func (f VerifierFunc) Verify(username, password string) bool {
	return f(username, password)
}

// StaticVerifier accepts exactly one configured username/password pair.
type StaticVerifier struct {
	Username string
	Password string
}

// NewStaticVerifier builds a verifier for a single literal credential pair.
func NewStaticVerifier(username, password string) StaticVerifier {
	return StaticVerifier{Username: username, Password: password}
}

// Verify compares both values in constant time.
func (v StaticVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.Password)) == 1
	return userOK && passOK && v.Username != ""
}

// BcryptVerifier checks the password against a bcrypt hash.
type BcryptVerifier struct {
	Username     string
	PasswordHash []byte
}

// NewBcryptVerifier builds a verifier for a username and bcrypt hash.
func NewBcryptVerifier(username, passwordHash string) BcryptVerifier {
	return BcryptVerifier{Username: username, PasswordHash: []byte(passwordHash)}
}

// Verify reports whether the username matches and the password hashes to the
// stored value.
func (v BcryptVerifier) Verify(username, password string) bool {
	if v.Username == "" || subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.PasswordHash, []byte(password)) == nil
}
