package cachekey

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// keyLength is the number of hex characters kept from the digest.
const keyLength = 32

// Derive maps a source identifier to a stable cache key.
//
// URLs (http:// or https://, scheme matched case-insensitively) hash to the
// first 32 hex characters of their SHA-256 digest. The URL is hashed exactly
// as given: no case folding, no trailing-slash stripping, query string
// included. Anything else is treated as an already-derived key and returned
// unchanged.
func Derive(identifier string) (string, error) {
	if strings.TrimSpace(identifier) == "" {
		return "", fmt.Errorf("source identifier is empty")
	}

	if !IsURL(identifier) {
		return identifier, nil
	}

	sum := sha256.Sum256([]byte(identifier))
	return hex.EncodeToString(sum[:])[:keyLength], nil
}

// IsURL reports whether the identifier looks like a downloadable source URL.
func IsURL(identifier string) bool {
	lower := strings.ToLower(identifier)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
