package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	PasswordSchemeBcrypt = "bcrypt"
	PasswordSchemeSHA256 = "sha256"
)

// HashPassword builds a digest using the given scheme.
// Unknown schemes fall back to bcrypt.
func HashPassword(scheme, password string) (string, error) {
	if scheme == PasswordSchemeSHA256 {
		return legacyDigest(password), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword accepts both bcrypt digests and legacy unsalted SHA-256 hex digests.
func VerifyPassword(digest, password string) bool {
	if digest == "" {
		return false
	}

	if strings.HasPrefix(digest, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
	}

	expected := legacyDigest(password)
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(digest)), []byte(expected)) == 1
}

func legacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
