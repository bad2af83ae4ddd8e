package apikey

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	KeyPrefix = "ck_live_"
	secretLen = 20 // bytes, 40 hex chars
	prefixLen = len(KeyPrefix) + 4
)

// Generate returns a new plaintext key with its display prefix and hash.
func Generate() (plaintext, prefix, hash string, err error) {
	buf := make([]byte, secretLen)
	if _, err = rand.Read(buf); err != nil {
		return "", "", "", fmt.Errorf("generate api key: %w", err)
	}
	plaintext = KeyPrefix + hex.EncodeToString(buf)
	return plaintext, plaintext[:prefixLen], Hash(plaintext), nil
}

func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// WellFormed reports whether s looks like a key this package generated.
func WellFormed(s string) bool {
	if !strings.HasPrefix(s, KeyPrefix) || len(s) != len(KeyPrefix)+secretLen*2 {
		return false
	}
	_, err := hex.DecodeString(s[len(KeyPrefix):])
	return err == nil
}

// Matches compares a plaintext key against a stored hash in constant time.
func Matches(plaintext, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(plaintext)), []byte(hash)) == 1
}
