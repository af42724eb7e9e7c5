package pkg

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// TokenHashCost is the bcrypt cost of admin token hashes.
const TokenHashCost = 14

var ErrEmptyToken = errors.New("token must not be empty")

// HashToken returns the bcrypt hash of an admin token, surrounding whitespace ignored.
func HashToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), TokenHashCost)
	if err != nil {
		return "", err
	}
	return BytesToString(hash), nil
}

// CheckTokenHash reports whether token matches hash. Empty values never match.
func CheckTokenHash(token, hash string) bool {
	token = strings.TrimSpace(token)
	if token == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}
