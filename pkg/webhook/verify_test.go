package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret string, parts ...string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	for _, p := range parts {
		mac.Write([]byte(p))
	}
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySlack(t *testing.T) {
	secret := "slack-signing-secret"
	body := []byte(`{"type":"event_callback"}`)
	now := time.Now()
	ts := strconv.FormatInt(now.Unix(), 10)
	good := "v0=" + sign(secret, "v0:", ts, ":", string(body))

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, VerifySlack(secret, ts, good, body, now))
	})

	t.Run("bit flip rejected", func(t *testing.T) {
		tampered := append([]byte(nil), body...)
		tampered[0] ^= 0x01
		err := VerifySlack(secret, ts, good, tampered, now)
		require.Error(t, err)
		assert.Equal(t, ErrKindBadSignature, KindOfVerifyError(err))
	})

	t.Run("stale timestamp", func(t *testing.T) {
		old := strconv.FormatInt(now.Add(-10*time.Minute).Unix(), 10)
		sig := "v0=" + sign(secret, "v0:", old, ":", string(body))
		err := VerifySlack(secret, old, sig, body, now)
		require.Error(t, err)
		assert.Equal(t, ErrKindStaleTimestamp, KindOfVerifyError(err))
	})

	t.Run("missing pieces", func(t *testing.T) {
		assert.Equal(t, ErrKindMissingSigningSecret, KindOfVerifyError(VerifySlack("", ts, good, body, now)))
		assert.Equal(t, ErrKindMissingTimestampHeader, KindOfVerifyError(VerifySlack(secret, "", good, body, now)))
		assert.Equal(t, ErrKindMissingSignatureHeader, KindOfVerifyError(VerifySlack(secret, ts, "", body, now)))
	})

	t.Run("wrong version prefix", func(t *testing.T) {
		err := VerifySlack(secret, ts, "v1=abc", body, now)
		assert.Equal(t, ErrKindInvalidSignatureFormat, KindOfVerifyError(err))
	})
}

func TestVerifyGitHub(t *testing.T) {
	secret := "gh-webhook-secret"
	body := []byte(`{"action":"created"}`)
	good := "sha256=" + sign(secret, string(body))

	assert.NoError(t, VerifyGitHub(secret, good, body))

	err := VerifyGitHub(secret, good, []byte(`{"action":"edited"}`))
	assert.Equal(t, ErrKindBadSignature, KindOfVerifyError(err))

	err = VerifyGitHub(secret, "sha1=deadbeef", body)
	assert.Equal(t, ErrKindInvalidSignatureFormat, KindOfVerifyError(err))

	err = VerifyGitHub("", good, body)
	assert.Equal(t, ErrKindMissingSigningSecret, KindOfVerifyError(err))
}

func TestVerifyPagerDuty(t *testing.T) {
	secret := "pd-secret"
	body := []byte(`{"event":{}}`)
	good := "v1=" + sign(secret, string(body))

	assert.NoError(t, VerifyPagerDuty(secret, good, body))
	assert.NoError(t, VerifyPagerDuty(secret, "v1=wrong,"+good, body), "any matching value passes")

	err := VerifyPagerDuty(secret, "v1=wrong", body)
	assert.Equal(t, ErrKindBadSignature, KindOfVerifyError(err))

	err = VerifyPagerDuty(secret, "v2=something", body)
	assert.Equal(t, ErrKindInvalidSignatureFormat, KindOfVerifyError(err))
}

func TestVerifyHMACHex(t *testing.T) {
	secret := "incidentio-secret"
	body := []byte(`{"incident":{}}`)
	good := sign(secret, string(body))

	assert.NoError(t, VerifyHMACHex(secret, good, body))

	err := VerifyHMACHex(secret, "not-hex!", body)
	assert.Equal(t, ErrKindInvalidSignatureFormat, KindOfVerifyError(err))

	err = VerifyHMACHex(secret, sign("other", string(body)), body)
	assert.Equal(t, ErrKindBadSignature, KindOfVerifyError(err))
}

func TestVerifyBearer(t *testing.T) {
	assert.NoError(t, VerifyBearer("tok", "Bearer tok"))
	assert.Error(t, VerifyBearer("tok", "Bearer other"))
	assert.Error(t, VerifyBearer("tok", "tok"))
	assert.Error(t, VerifyBearer("", "Bearer tok"))
}

func TestParseSlack(t *testing.T) {
	payload := map[string]interface{}{
		"event_id": "Ev123",
		"event": map[string]interface{}{
			"type":    "app_mention",
			"channel": "C42",
			"ts":      "111.222",
			"text":    "<@bot> why is checkout failing?",
		},
	}
	ev := ParseSlack(payload)
	require.NotNil(t, ev)
	assert.Equal(t, "Ev123", ev.EventID)
	assert.Equal(t, "C42", ev.RoutingKey)
	assert.Equal(t, "111.222", ev.Trigger.ThreadTS)

	t.Run("bot messages ignored", func(t *testing.T) {
		p := map[string]interface{}{
			"event": map[string]interface{}{"type": "message", "bot_id": "B1", "channel": "C42"},
		}
		assert.Nil(t, ParseSlack(p))
	})

	t.Run("thread_ts preferred", func(t *testing.T) {
		p := map[string]interface{}{
			"event": map[string]interface{}{
				"type": "message", "channel": "C42", "ts": "222.333", "thread_ts": "111.222", "text": "hi",
			},
		}
		got := ParseSlack(p)
		require.NotNil(t, got)
		assert.Equal(t, "111.222", got.Trigger.ThreadTS)
	})
}

func TestParseGitHub(t *testing.T) {
	payload := map[string]interface{}{
		"action":     "created",
		"repository": map[string]interface{}{"full_name": "acme/api"},
		"issue":      map[string]interface{}{"number": float64(42)},
		"comment":    map[string]interface{}{"body": "/incidentfox investigate"},
	}
	ev := ParseGitHub("d-1", "issue_comment", payload)
	require.NotNil(t, ev)
	assert.Equal(t, "acme/api", ev.RoutingKey)
	assert.Equal(t, 42, ev.Trigger.IssueNumber)

	payload["action"] = "edited"
	assert.Nil(t, ParseGitHub("d-2", "issue_comment", payload))

	assert.Nil(t, ParseGitHub("d-3", "push", map[string]interface{}{
		"repository": map[string]interface{}{"full_name": "acme/api"},
	}))
}

func TestParsePagerDuty(t *testing.T) {
	payload := map[string]interface{}{
		"event": map[string]interface{}{
			"id": "ev-1",
			"data": map[string]interface{}{
				"id":      "PINC1",
				"number":  "1234",
				"title":   "High error rate on checkout",
				"service": map[string]interface{}{"id": "PSVC1"},
			},
		},
	}
	ev := ParsePagerDuty(payload)
	require.NotNil(t, ev)
	assert.Equal(t, "PSVC1", ev.RoutingKey)
	assert.Equal(t, "PINC1", ev.Trigger.IncidentID)
	assert.Equal(t, "PagerDuty incident 1234: High error rate on checkout", ev.Prompt)
}
