// Package webhook verifies and normalizes inbound vendor webhooks, routes
// them to a tenant, and deduplicates redeliveries.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// slackTimestampTolerance is Slack's documented replay window.
const slackTimestampTolerance = 300 * time.Second

// Verification error kinds, surfaced as machine-readable codes on 401.
const (
	ErrKindMissingSigningSecret   = "missing_signing_secret"
	ErrKindMissingSignatureHeader = "missing_signature_header"
	ErrKindMissingTimestampHeader = "missing_timestamp_header"
	ErrKindStaleTimestamp         = "stale_timestamp"
	ErrKindBadSignature           = "bad_signature"
	ErrKindInvalidSignatureFormat = "invalid_signature_format"
)

// VerifyError is a signature verification failure with a stable code.
type VerifyError struct {
	Kind string
}

func (e *VerifyError) Error() string {
	return "webhook signature verification failed: " + e.Kind
}

func verifyErr(kind string) error {
	return &VerifyError{Kind: kind}
}

func hmacHex(secret string, parts ...string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	for _, p := range parts {
		mac.Write([]byte(p))
	}
	return hex.EncodeToString(mac.Sum(nil))
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// VerifySlack checks a Slack request signature: "v0=" + hex HMAC-SHA256 of
// "v0:<timestamp>:<body>", with the timestamp inside the replay window.
func VerifySlack(signingSecret, timestamp, signature string, body []byte, now time.Time) error {
	if signingSecret == "" {
		return verifyErr(ErrKindMissingSigningSecret)
	}
	if timestamp == "" {
		return verifyErr(ErrKindMissingTimestampHeader)
	}
	if signature == "" {
		return verifyErr(ErrKindMissingSignatureHeader)
	}
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return verifyErr(ErrKindMissingTimestampHeader)
	}
	age := now.Sub(time.Unix(ts, 0))
	if age > slackTimestampTolerance || age < -slackTimestampTolerance {
		return verifyErr(ErrKindStaleTimestamp)
	}
	if !strings.HasPrefix(signature, "v0=") {
		return verifyErr(ErrKindInvalidSignatureFormat)
	}
	want := "v0=" + hmacHex(signingSecret, "v0:", timestamp, ":", string(body))
	if !constantTimeEqual(signature, want) {
		return verifyErr(ErrKindBadSignature)
	}
	return nil
}

// VerifyGitHub checks an X-Hub-Signature-256 header ("sha256=" + hex HMAC).
func VerifyGitHub(webhookSecret, signature string, body []byte) error {
	if webhookSecret == "" {
		return verifyErr(ErrKindMissingSigningSecret)
	}
	if signature == "" {
		return verifyErr(ErrKindMissingSignatureHeader)
	}
	if !strings.HasPrefix(signature, "sha256=") {
		return verifyErr(ErrKindInvalidSignatureFormat)
	}
	want := "sha256=" + hmacHex(webhookSecret, string(body))
	if !constantTimeEqual(signature, want) {
		return verifyErr(ErrKindBadSignature)
	}
	return nil
}

// VerifyPagerDuty checks an X-PagerDuty-Signature header. The header may
// carry several comma-separated "v1=" values; any match passes.
func VerifyPagerDuty(webhookSecret, signature string, body []byte) error {
	if webhookSecret == "" {
		return verifyErr(ErrKindMissingSigningSecret)
	}
	if signature == "" {
		return verifyErr(ErrKindMissingSignatureHeader)
	}
	want := "v1=" + hmacHex(webhookSecret, string(body))
	sawV1 := false
	for _, candidate := range strings.Split(signature, ",") {
		candidate = strings.TrimSpace(candidate)
		if !strings.HasPrefix(candidate, "v1=") {
			continue
		}
		sawV1 = true
		if constantTimeEqual(candidate, want) {
			return nil
		}
	}
	if !sawV1 {
		return verifyErr(ErrKindInvalidSignatureFormat)
	}
	return verifyErr(ErrKindBadSignature)
}

// VerifyHMACHex checks a bare hex HMAC-SHA256 signature over the body, as
// used by incident.io and several smaller vendors.
func VerifyHMACHex(secret, signature string, body []byte) error {
	if secret == "" {
		return verifyErr(ErrKindMissingSigningSecret)
	}
	if signature == "" {
		return verifyErr(ErrKindMissingSignatureHeader)
	}
	if _, err := hex.DecodeString(signature); err != nil {
		return verifyErr(ErrKindInvalidSignatureFormat)
	}
	if !constantTimeEqual(strings.ToLower(signature), hmacHex(secret, string(body))) {
		return verifyErr(ErrKindBadSignature)
	}
	return nil
}

// VerifyBearer checks a static bearer token, as used by Google Chat pushes.
func VerifyBearer(expected, authorization string) error {
	if expected == "" {
		return verifyErr(ErrKindMissingSigningSecret)
	}
	got, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || got == "" {
		return verifyErr(ErrKindMissingSignatureHeader)
	}
	if !constantTimeEqual(got, expected) {
		return verifyErr(ErrKindBadSignature)
	}
	return nil
}

// KindOfVerifyError extracts the verification error kind.
func KindOfVerifyError(err error) string {
	if ve, ok := err.(*VerifyError); ok {
		return ve.Kind
	}
	return ErrKindBadSignature
}
