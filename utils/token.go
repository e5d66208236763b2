package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// ResetTokenTTL bounds how long a password reset token stays valid.
const ResetTokenTTL = 10 * time.Minute

// GenerateResetToken produces a one-time password reset secret: the hex
// plaintext handed to the user exactly once, the sha256 digest that gets
// persisted in its place, and the absolute expiry.
func GenerateResetToken() (plaintext, digest string, expiresAt time.Time, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", time.Time{}, err
	}
	plaintext = hex.EncodeToString(buf)
	digest = HashResetToken(plaintext)
	expiresAt = time.Now().Add(ResetTokenTTL)
	return plaintext, digest, expiresAt, nil
}

// HashResetToken computes the storage digest for a reset token plaintext.
func HashResetToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
