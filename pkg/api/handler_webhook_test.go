package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slackSignature(secret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:%s", timestamp, body)
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

func slackTestServer() *Server {
	return &Server{
		cfg: Config{
			SlackApps: map[string]SlackApp{
				"default": {Slug: "default", SigningSecret: "slack-secret"},
				"oncall":  {Slug: "oncall", SigningSecret: "oncall-secret"},
			},
		},
	}
}

func slackRequest(e *echo.Echo, target, secret string, body []byte) (*echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	ts := fmt.Sprintf("%d", time.Now().Unix())
	req.Header.Set("X-Slack-Request-Timestamp", ts)
	req.Header.Set("X-Slack-Signature", slackSignature(secret, ts, body))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSlackWebhookURLVerification(t *testing.T) {
	s := slackTestServer()
	e := echo.New()
	body := []byte(`{"type":"url_verification","challenge":"abc123"}`)
	c, rec := slackRequest(e, "/webhooks/slack", "slack-secret", body)

	require.NoError(t, s.slackWebhookHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc123", resp["challenge"])
}

func TestSlackWebhookBadSignature(t *testing.T) {
	s := slackTestServer()
	e := echo.New()
	body := []byte(`{"type":"event_callback"}`)
	c, _ := slackRequest(e, "/webhooks/slack", "wrong-secret", body)

	err := s.slackWebhookHandler(c)
	require.Error(t, err)
	he := err.(*echo.HTTPError)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Equal(t, "bad_signature", he.Message)
}

func TestSlackWebhookStaleTimestamp(t *testing.T) {
	s := slackTestServer()
	e := echo.New()
	body := []byte(`{"type":"event_callback"}`)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/slack", strings.NewReader(string(body)))
	ts := fmt.Sprintf("%d", time.Now().Add(-10*time.Minute).Unix())
	req.Header.Set("X-Slack-Request-Timestamp", ts)
	req.Header.Set("X-Slack-Signature", slackSignature("slack-secret", ts, body))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.slackWebhookHandler(c)
	require.Error(t, err)
	assert.Equal(t, "stale_timestamp", err.(*echo.HTTPError).Message)
}

func TestSlackWebhookUnknownSlug(t *testing.T) {
	s := NewServer(slackTestServer().cfg, Deps{})
	req := httptest.NewRequest(http.MethodPost, "/webhooks/slack/nonesuch/events", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSlackWebhookNonEventSurfaceAcked(t *testing.T) {
	s := NewServer(slackTestServer().cfg, Deps{})
	body := []byte(`{"payload":"..."}`)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/slack/oncall/commands", strings.NewReader(string(body)))
	ts := fmt.Sprintf("%d", time.Now().Unix())
	req.Header.Set("X-Slack-Request-Timestamp", ts)
	req.Header.Set("X-Slack-Signature", slackSignature("oncall-secret", ts, body))
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestSlackWebhookIgnoresBotMessages(t *testing.T) {
	s := slackTestServer()
	e := echo.New()
	body := []byte(`{"type":"event_callback","event":{"type":"message","bot_id":"B1","channel":"C1","text":"hi"}}`)
	c, rec := slackRequest(e, "/webhooks/slack", "slack-secret", body)

	require.NoError(t, s.slackWebhookHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ignored")
}

func TestGitHubWebhookBadSignature(t *testing.T) {
	s := &Server{cfg: Config{GitHubWebhookSecret: "gh-secret"}}
	e := echo.New()
	body := `{"action":"created"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/github", strings.NewReader(body))
	req.Header.Set("X-Hub-Signature-256", "sha256=deadbeef")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.githubWebhookHandler(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}

func TestGitHubReactionFeedback(t *testing.T) {
	// No audit sink wired: recording is a no-op but the classification paths
	// are still exercised.
	s := &Server{}

	t.Run("thumbs up on run comment", func(t *testing.T) {
		outcome := s.recordReactionFeedback(t.Context(), map[string]interface{}{
			"reaction": map[string]interface{}{"content": "+1"},
			"comment":  map[string]interface{}{"body": "analysis\n\n<!-- incidentfox:run_id=run-3 -->"},
			"sender":   map[string]interface{}{"login": "octocat"},
		})
		assert.Equal(t, "feedback_recorded", outcome)
	})

	t.Run("reaction without marker ignored", func(t *testing.T) {
		outcome := s.recordReactionFeedback(t.Context(), map[string]interface{}{
			"reaction": map[string]interface{}{"content": "+1"},
			"comment":  map[string]interface{}{"body": "unrelated"},
		})
		assert.Equal(t, "ignored", outcome)
	})

	t.Run("non-reaction payload passes through", func(t *testing.T) {
		outcome := s.recordReactionFeedback(t.Context(), map[string]interface{}{
			"action": "opened",
		})
		assert.Empty(t, outcome)
	})

	t.Run("unscored reaction ignored", func(t *testing.T) {
		outcome := s.recordReactionFeedback(t.Context(), map[string]interface{}{
			"reaction": map[string]interface{}{"content": "rocket"},
			"comment":  map[string]interface{}{"body": "<!-- incidentfox:run_id=run-3 -->"},
		})
		assert.Equal(t, "ignored", outcome)
	})
}

func TestGoogleChatWebhookRequiresBearer(t *testing.T) {
	s := &Server{cfg: Config{GoogleChatToken: "gc-token"}}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/google-chat", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.googleChatWebhookHandler(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}
