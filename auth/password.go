// Package auth provides credential hashing and signed session tokens.
package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword returns an opaque bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. bcrypt's comparison
// is safe against timing attacks.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
