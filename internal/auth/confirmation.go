package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// GenerateConfirmationToken: sha256(salt + userID) в hex, затем ":" и соль.
// Соль - случайный uuid без дефисов.
func GenerateConfirmationToken(userID uint) string {
	salt := strings.ReplaceAll(uuid.NewString(), "-", "")
	return confirmationDigest(salt, userID) + ":" + salt
}

// VerifyConfirmationToken проверяет, что токен выпущен для этого пользователя
func VerifyConfirmationToken(token string, userID uint) bool {
	digest, salt, ok := strings.Cut(token, ":")
	if !ok || salt == "" {
		return false
	}
	expected := confirmationDigest(salt, userID)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(expected)) == 1
}

func confirmationDigest(salt string, userID uint) string {
	sum := sha256.Sum256([]byte(salt + strconv.FormatUint(uint64(userID), 10)))
	return hex.EncodeToString(sum[:])
}
