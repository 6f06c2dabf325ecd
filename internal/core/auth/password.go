package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost above the library default; logins are rare enough to afford it.
const bcryptCost = 12

// HashPassword hashes a usuario password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error generando hash de contraseña: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against the stored hash.
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
