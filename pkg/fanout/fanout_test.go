package fanout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentfox/incidentfox/pkg/output"
)

func TestRunMarker(t *testing.T) {
	marker := RunMarker("run-42")
	assert.Equal(t, "<!-- incidentfox:run_id=run-42 -->", marker)
	assert.Equal(t, "run-42", RunIDFromMarker("analysis text\n\n"+marker))
	assert.Empty(t, RunIDFromMarker("no marker here"))
	assert.Empty(t, RunIDFromMarker("<!-- incidentfox:run_id=broken"))
}

func TestSplitTables(t *testing.T) {
	text := "Summary line.\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\nMore prose.\n| x |\n| 9 |"
	segments := splitTables(text)

	var tables, prose int
	for _, seg := range segments {
		if seg.isTable {
			tables++
		} else {
			prose++
		}
	}
	assert.Equal(t, 2, tables)
	assert.Equal(t, 2, prose)
}

func TestBuildResultBlocks(t *testing.T) {
	t.Run("prose only", func(t *testing.T) {
		blocks := BuildResultBlocks("the disk filled up", true)
		require.Len(t, blocks, 2)
		header := blocks[0].(*goslack.SectionBlock)
		assert.Contains(t, header.Text.Text, "complete")
	})

	t.Run("failure header", func(t *testing.T) {
		blocks := BuildResultBlocks("it broke", false)
		header := blocks[0].(*goslack.SectionBlock)
		assert.Contains(t, header.Text.Text, "failed")
	})

	t.Run("first table becomes cards, second preformatted", func(t *testing.T) {
		text := strings.Join([]string{
			"| service | p99 |",
			"|---------|-----|",
			"| api     | 900ms |",
			"| worker  | 120ms |",
			"",
			"second table:",
			"| a | b |",
			"|---|---|",
			"| 1 | 2 |",
		}, "\n")
		blocks := BuildResultBlocks(text, true)

		var cards, preformatted int
		for _, b := range blocks[1:] {
			section, ok := b.(*goslack.SectionBlock)
			if !ok {
				continue
			}
			if strings.HasPrefix(section.Text.Text, "```") {
				preformatted++
			} else if strings.Contains(section.Text.Text, "*service:*") {
				cards++
			}
		}
		assert.Equal(t, 2, cards, "one card per data row of the first table")
		assert.Equal(t, 1, preformatted, "second table falls back to preformatted")
	})
}

func TestParseTableRows(t *testing.T) {
	rows := parseTableRows("| h1 | h2 |\n|:---|---:|\n| a | b |")
	require.Len(t, rows, 2, "separator row dropped")
	assert.Equal(t, []string{"h1", "h2"}, rows[0])
	assert.Equal(t, []string{"a", "b"}, rows[1])
}

func TestDeliverSlack(t *testing.T) {
	var gotToken, gotChannel, gotThread string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotToken = r.Header.Get("Authorization")
		gotChannel = r.FormValue("channel")
		gotThread = r.FormValue("thread_ts")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"channel":"C1","ts":"1.2"}`))
	}))
	defer server.Close()

	s := NewService()
	s.slackAPIURL = server.URL + "/"

	outcomes := s.Deliver(context.Background(), []output.Destination{{
		Kind:      output.KindSlack,
		ChannelID: "C1",
		ThreadTS:  "169.42",
		BotToken:  "xoxb-test",
	}}, Artifact{RunID: "run-1", Text: "all good", Success: true}, Credentials{})

	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].OK, outcomes[0].Error)
	assert.Equal(t, "Bearer xoxb-test", gotToken)
	assert.Equal(t, "C1", gotChannel)
	assert.Equal(t, "169.42", gotThread)
}

func TestDeliverGitHubCreatesComment(t *testing.T) {
	var created map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/infra/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"body":"unrelated comment"}]`))
	})
	mux.HandleFunc("POST /repos/acme/infra/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
		w.WriteHeader(http.StatusCreated)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := NewService()
	outcomes := s.Deliver(context.Background(), []output.Destination{{
		Kind:        output.KindGitHub,
		Repo:        "acme/infra",
		IssueNumber: 7,
	}}, Artifact{RunID: "run-9", Text: "root cause: oom", Success: true}, Credentials{
		GitHubToken:   "gh-token",
		GitHubAPIHost: server.URL,
	})

	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].OK, outcomes[0].Error)
	assert.Contains(t, created["body"], "root cause: oom")
	assert.Contains(t, created["body"], RunMarker("run-9"))
}

func TestDeliverGitHubUpdatesExistingComment(t *testing.T) {
	var patched bool
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/infra/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":55,"body":"old text\n\n` + RunMarker("run-9") + `"}]`))
	})
	mux.HandleFunc("PATCH /repos/acme/infra/issues/comments/55", func(w http.ResponseWriter, r *http.Request) {
		patched = true
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := NewService()
	outcomes := s.Deliver(context.Background(), []output.Destination{{
		Kind:        output.KindGitHub,
		Repo:        "acme/infra",
		IssueNumber: 7,
	}}, Artifact{RunID: "run-9", Text: "updated analysis", Success: true}, Credentials{
		GitHubToken:   "gh-token",
		GitHubAPIHost: server.URL,
	})

	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].OK, outcomes[0].Error)
	assert.True(t, patched, "existing run comment updated, not duplicated")
}

func TestDeliverPagerDutyNote(t *testing.T) {
	var gotAuth, gotFrom string
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/incidents/PD123/notes", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.Header.Get("From")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	s := NewService()
	s.pagerDutyBase = server.URL
	outcomes := s.Deliver(context.Background(), []output.Destination{{
		Kind:       output.KindPagerDuty,
		IncidentID: "PD123",
	}}, Artifact{RunID: "run-1", Text: "mitigated", Success: true}, Credentials{
		PagerDutyAPIKey: "pd-key",
		PagerDutyFrom:   "ops@acme.test",
	})

	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].OK, outcomes[0].Error)
	assert.Equal(t, "Token token=pd-key", gotAuth)
	assert.Equal(t, "ops@acme.test", gotFrom)
	note := body["note"].(map[string]interface{})
	assert.Equal(t, "mitigated", note["content"])
}

func TestDeliverOneFailureDoesNotBlockOthers(t *testing.T) {
	var pagerDutyHit bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagerDutyHit = true
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	s := NewService()
	s.pagerDutyBase = server.URL

	outcomes := s.Deliver(context.Background(), []output.Destination{
		{Kind: output.KindSlack, ChannelID: "C1"}, // no bot token: fails
		{Kind: output.KindPagerDuty, IncidentID: "PD1"},
	}, Artifact{RunID: "run-1", Text: "text", Success: true}, Credentials{
		PagerDutyAPIKey: "pd-key",
	})

	require.Len(t, outcomes, 2)
	assert.False(t, outcomes[0].OK)
	assert.Contains(t, outcomes[0].Error, "bot token")
	assert.True(t, outcomes[1].OK, outcomes[1].Error)
	assert.True(t, pagerDutyHit)
}

func TestDeliverUnknownKind(t *testing.T) {
	s := NewService()
	outcomes := s.Deliver(context.Background(),
		[]output.Destination{{Kind: "carrier-pigeon"}},
		Artifact{RunID: "run-1", Text: "text"}, Credentials{})
	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].OK)
	assert.Contains(t, outcomes[0].Error, "unknown destination kind")
}
