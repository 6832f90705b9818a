package dispatch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentfox/incidentfox/pkg/output"
)

func TestReadSSE(t *testing.T) {
	t.Run("typed events", func(t *testing.T) {
		stream := strings.Join([]string{
			`data: {"type":"thought","data":{"text":"checking p99"},"thread_id":"t1"}`,
			"",
			": keep-alive",
			"",
			`data: {"type":"result","data":{"text":"all clear"},"thread_id":"t1"}`,
			"",
		}, "\n")
		var events []SSEEvent
		err := ReadSSE(strings.NewReader(stream), func(ev SSEEvent) bool {
			events = append(events, ev)
			return true
		})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "thought", events[0].Type)
		assert.Equal(t, "result", events[1].Type)
		assert.Equal(t, "all clear", eventPayload(events[1])["text"])
	})

	t.Run("type from data payload", func(t *testing.T) {
		stream := "data: {\"type\":\"tool_call\",\"name\":\"grafana\"}\n\n"
		var got SSEEvent
		err := ReadSSE(strings.NewReader(stream), func(ev SSEEvent) bool {
			got = ev
			return true
		})
		require.NoError(t, err)
		assert.Equal(t, "tool_call", got.Type)
	})

	t.Run("multi-line data", func(t *testing.T) {
		stream := "data: {\"output\":\ndata: \"x\"}\n\n"
		var got SSEEvent
		err := ReadSSE(strings.NewReader(stream), func(ev SSEEvent) bool {
			got = ev
			return true
		})
		require.NoError(t, err)
		assert.Equal(t, "x", got.Data["output"])
	})

	t.Run("handler can stop the stream", func(t *testing.T) {
		stream := "data: {\"type\":\"a\"}\n\ndata: {\"type\":\"b\"}\n\n"
		count := 0
		err := ReadSSE(strings.NewReader(stream), func(ev SSEEvent) bool {
			count++
			return false
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("non-JSON data kept raw", func(t *testing.T) {
		var got SSEEvent
		err := ReadSSE(strings.NewReader("data: plain text\n\n"), func(ev SSEEvent) bool {
			got = ev
			return true
		})
		require.NoError(t, err)
		assert.Equal(t, "message", got.Type)
		assert.Equal(t, "plain text", got.Data["raw"])
	})
}

func testDispatcher(routerURL string) *Dispatcher {
	d := NewDispatcher(nil, nil, nil, nil, Config{RouterURL: routerURL})
	return d
}

func sseHandler(t *testing.T, lines []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sbx-acme-payments", r.Header.Get("X-Sandbox-ID"))
		assert.NotEmpty(t, r.Header.Get("X-Sandbox-JWT"))
		w.Header().Set("Content-Type", "text/event-stream")
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}
}

func runInput() Input {
	return Input{
		OrgID:      "acme",
		TeamNodeID: "payments",
		Agent:      "investigator",
		Prompt:     "why is checkout failing",
		MaxTurns:   5,
		Trigger:    output.Trigger{Source: "slack", ChannelID: "C1"},
	}
}

func TestStreamRunResult(t *testing.T) {
	server := httptest.NewServer(sseHandler(t, []string{
		`data: {"type":"thought","data":{"text":"inspecting recent deploys"},"thread_id":"t1","timestamp":"2026-08-24T10:00:00Z"}`, "",
		`data: {"type":"tool_start","data":{"tool":"kubectl","inputs":"rollout history"},"thread_id":"t1","timestamp":"2026-08-24T10:00:01Z"}`, "",
		`data: {"type":"tool_end","data":{"success":true,"summary":"found bad revision"},"thread_id":"t1","timestamp":"2026-08-24T10:00:02Z"}`, "",
		`data: {"type":"result","data":{"text":"rolled back bad deploy"},"thread_id":"t1","timestamp":"2026-08-24T10:00:03Z"}`, "",
	}))
	defer server.Close()

	d := testDispatcher(server.URL)
	result, err := d.streamRun(context.Background(), "run-1", "jwt", runInput())
	require.NoError(t, err)
	assert.Equal(t, "rolled back bad deploy", result.Output)
	assert.Equal(t, 4, result.EventsCount)
}

func TestStreamRunAgentError(t *testing.T) {
	server := httptest.NewServer(sseHandler(t, []string{
		`data: {"type":"error","data":{"message":"tool crashed"},"thread_id":"t2"}`, "",
	}))
	defer server.Close()

	d := testDispatcher(server.URL)
	_, err := d.streamRun(context.Background(), "run-2", "jwt", runInput())
	require.ErrorIs(t, err, ErrAgentError)
	assert.Contains(t, err.Error(), "tool crashed")
}

func TestStreamRunMaxTurns(t *testing.T) {
	lines := []string{}
	for i := 0; i < 7; i++ {
		lines = append(lines,
			fmt.Sprintf(`data: {"type":"thought","data":{"text":"turn %d"},"thread_id":"t3"}`, i+1), "")
	}
	server := httptest.NewServer(sseHandler(t, lines))
	defer server.Close()

	d := testDispatcher(server.URL)
	_, err := d.streamRun(context.Background(), "run-3", "jwt", runInput())
	require.ErrorIs(t, err, ErrMaxTurnsExceeded)
}

func TestStreamRunTruncatedStream(t *testing.T) {
	server := httptest.NewServer(sseHandler(t, []string{
		`data: {"type":"thought","data":{"text":"checking"},"thread_id":"t4"}`, "",
	}))
	defer server.Close()

	d := testDispatcher(server.URL)
	_, err := d.streamRun(context.Background(), "run-4", "jwt", runInput())
	require.ErrorIs(t, err, ErrAgentError)
	assert.Contains(t, err.Error(), "without result")
}

func TestStreamRunUnavailable(t *testing.T) {
	server := httptest.NewServer(nil)
	server.Close() // refuse connections

	d := testDispatcher(server.URL)
	start := time.Now()
	_, err := d.streamRun(context.Background(), "run-5", "jwt", runInput())
	require.ErrorIs(t, err, ErrSandboxUnavailable)
	assert.Less(t, time.Since(start), 30*time.Second)
}

func TestStreamRunRejectionNotRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
	}))
	defer server.Close()

	d := testDispatcher(server.URL)
	_, err := d.streamRun(context.Background(), "run-6", "jwt", runInput())
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestSandboxID(t *testing.T) {
	assert.Equal(t, "sbx-acme-payments", SandboxID("acme", "payments"))
}
