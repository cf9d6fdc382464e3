package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest of plaintext. The salt is
// random per call, so hashing the same password twice yields different
// stored values.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext is the password behind hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
