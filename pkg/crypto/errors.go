package crypto

import "errors"

// Crypto failures are non-retriable: a bad key or signature never heals on retry.
var (
	// ErrMissingKey is returned when an operation requires a key that is not configured.
	ErrMissingKey = errors.New("encryption key is not configured")

	// ErrInvalidKeySize is returned when the configured key is not 32 bytes.
	ErrInvalidKeySize = errors.New("encryption key must be exactly 32 bytes")

	// ErrInvalidCiphertext is returned when a ciphertext cannot be decoded or authenticated.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrBadSignature is returned when JWT signature verification fails.
	ErrBadSignature = errors.New("bad token signature")

	// ErrExpired is returned when a JWT is past its expiry.
	ErrExpired = errors.New("token expired")

	// ErrWrongAudience is returned when a JWT audience does not match the verifier.
	ErrWrongAudience = errors.New("token audience mismatch")

	// ErrJTINotAllowlisted is returned when DB allowlist mode is on and the
	// token's jti has no row.
	ErrJTINotAllowlisted = errors.New("jti not allowlisted")
)
