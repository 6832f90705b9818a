package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

const (
	// nonceSize is the GCM standard nonce size (12 bytes).
	nonceSize = 12
	// keySize is the required key length for AES-256-GCM (32 bytes).
	keySize = 32

	// envelopePrefix marks a value encrypted by this encryptor.
	envelopePrefix = "enc:v1:"
	// legacyPrefix marks a value stored by the old importer as plain base64.
	legacyPrefix = "b64:"
)

// Encryptor encrypts and decrypts credential values with AES-256-GCM.
// Ciphertexts carry the "enc:v1:" envelope prefix over base64(nonce || sealed).
// The zero Encryptor has no key and fails every operation with ErrMissingKey.
type Encryptor struct {
	key []byte
}

// NewEncryptor builds an Encryptor from the ENCRYPTION_KEY material.
// The key may be given raw (32 bytes) or base64-encoded.
func NewEncryptor(key string) (*Encryptor, error) {
	if key == "" {
		return nil, ErrMissingKey
	}
	raw := []byte(key)
	if len(raw) != keySize {
		decoded, err := base64.StdEncoding.DecodeString(key)
		if err != nil || len(decoded) != keySize {
			return nil, ErrInvalidKeySize
		}
		raw = decoded
	}
	return &Encryptor{key: raw}, nil
}

// IsEncrypted reports whether s already carries the encryption envelope.
func IsEncrypted(s string) bool {
	return strings.HasPrefix(s, envelopePrefix)
}

// Encrypt seals plaintext and returns the enveloped ciphertext.
// Already-enveloped values are returned unchanged (idempotent).
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	if e == nil || len(e.key) == 0 {
		return "", ErrMissingKey
	}
	if IsEncrypted(plaintext) {
		return plaintext, nil
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("new gcm: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends the encrypted+authenticated ciphertext to nonce
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return envelopePrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens an enveloped ciphertext. Values with the legacy "b64:" prefix
// are decoded without authentication (compatibility path for old rows);
// unprefixed values are returned as-is (pre-encryption plaintext rows).
func (e *Encryptor) Decrypt(value string) (string, error) {
	switch {
	case strings.HasPrefix(value, legacyPrefix):
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, legacyPrefix))
		if err != nil {
			return "", fmt.Errorf("%w: legacy base64: %v", ErrInvalidCiphertext, err)
		}
		return string(decoded), nil
	case !IsEncrypted(value):
		return value, nil
	}

	if e == nil || len(e.key) == 0 {
		return "", ErrMissingKey
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, envelopePrefix))
	if err != nil {
		return "", fmt.Errorf("%w: base64: %v", ErrInvalidCiphertext, err)
	}
	if len(raw) < nonceSize {
		return "", fmt.Errorf("%w: too short", ErrInvalidCiphertext)
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("new gcm: %w", err)
	}

	nonce, data := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}
	return string(plaintext), nil
}
