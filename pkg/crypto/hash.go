// Package crypto provides the token-hashing, secrets-at-rest, and JWT
// primitives shared by the config service, orchestrator, and credential proxy.
package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashToken computes the peppered HMAC-SHA256 digest of an opaque token
// secret. Only the digest is ever stored; the secret appears once, on the
// wire, at issue time.
func HashToken(secret, pepper string) string {
	mac := hmac.New(sha256.New, []byte(pepper))
	mac.Write([]byte(secret))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyToken reports whether secret hashes to digest under pepper.
// The comparison is constant-time.
func VerifyToken(secret, digest, pepper string) bool {
	computed := HashToken(secret, pepper)
	return hmac.Equal([]byte(computed), []byte(digest))
}
