package utils

import "golang.org/x/crypto/bcrypt"

// PasswordHashCost is deliberately expensive to resist offline brute force.
const PasswordHashCost = 12

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordHashCost)
	return string(b), err
}

// CheckPassword returns false on mismatch or a malformed digest, never an error.
func CheckPassword(hashed, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
