package scheduler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextFire(t *testing.T) {
	after := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)

	t.Run("every five minutes", func(t *testing.T) {
		next, err := NextFire("*/5 * * * *", after)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 24, 10, 35, 0, 0, time.UTC), next)
	})

	t.Run("daily at midnight", func(t *testing.T) {
		next, err := NextFire("0 0 * * *", after)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), next)
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := NextFire("not-a-cron", after)
		require.Error(t, err)
	})
}

func TestWorkerExecutesDueJobs(t *testing.T) {
	var mu sync.Mutex
	var impersonated, ran, completed bool

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/internal/scheduled-jobs/due", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "scheduler", r.Header.Get(internalServiceHeader))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jobs": []map[string]interface{}{{
				"id":           "job-1",
				"org_id":       "acme",
				"team_node_id": "payments",
				"job_type":     "daily-health-check",
				"config":       map[string]interface{}{"agent": "investigator", "prompt": "check the dashboards"},
			}},
		})
	})
	mux.HandleFunc("POST /api/v1/internal/impersonate-team", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		impersonated = true
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "jwt-for-payments"})
	})
	mux.HandleFunc("POST /api/v1/agents/run", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer jwt-for-payments", r.Header.Get("Authorization"))
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "investigator", body["agent"])
		assert.Equal(t, "schedule", body["trigger_source"])
		mu.Lock()
		ran = true
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{"run_id": "r-1", "status": "complete"})
	})
	mux.HandleFunc("POST /api/v1/internal/scheduled-jobs/job-1/complete", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "succeeded", body["status"])
		assert.NotEmpty(t, body["owner"])
		mu.Lock()
		completed = true
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	w := NewWorker(WorkerConfig{
		BaseURL:      server.URL,
		ServiceName:  "scheduler",
		PollInterval: time.Hour,
		BatchLimit:   10,
	})
	w.poll(context.Background())
	w.wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, impersonated)
	assert.True(t, ran)
	assert.True(t, completed)
}

func TestWorkerReportsFailure(t *testing.T) {
	var mu sync.Mutex
	var status string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/internal/scheduled-jobs/due", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jobs": []map[string]interface{}{{
				"id": "job-2", "org_id": "acme", "team_node_id": "payments", "job_type": "healthcheck",
			}},
		})
	})
	mux.HandleFunc("POST /api/v1/internal/impersonate-team", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "jwt"})
	})
	mux.HandleFunc("POST /api/v1/agents/run", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"sandbox_unavailable"}`, http.StatusBadGateway)
	})
	mux.HandleFunc("POST /api/v1/internal/scheduled-jobs/job-2/complete", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		status = body["status"]
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	w := NewWorker(WorkerConfig{BaseURL: server.URL, ServiceName: "scheduler", PollInterval: time.Hour, BatchLimit: 1})
	w.poll(context.Background())
	w.wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "failed", status)
}

func TestWorkerFinishesJobsAfterShutdown(t *testing.T) {
	release := make(chan struct{})
	done := make(chan string, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/internal/scheduled-jobs/due", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jobs": []map[string]interface{}{{
				"id": "job-3", "org_id": "acme", "team_node_id": "payments", "job_type": "healthcheck",
			}},
		})
	})
	mux.HandleFunc("POST /api/v1/internal/impersonate-team", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "jwt"})
	})
	mux.HandleFunc("POST /api/v1/agents/run", func(w http.ResponseWriter, r *http.Request) {
		// Block until the worker's poll context has been canceled.
		<-release
		_ = json.NewEncoder(w).Encode(map[string]string{"run_id": "r-3", "status": "complete"})
	})
	mux.HandleFunc("POST /api/v1/internal/scheduled-jobs/job-3/complete", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		done <- body["status"]
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	w := NewWorker(WorkerConfig{BaseURL: server.URL, ServiceName: "scheduler", PollInterval: time.Hour, BatchLimit: 1})
	ctx, cancel := context.WithCancel(context.Background())
	w.poll(ctx)
	cancel()
	close(release)
	w.wg.Wait()

	select {
	case status := <-done:
		assert.Equal(t, "succeeded", status)
	default:
		t.Fatal("job completion was never reported")
	}
}

func TestLoadWorkerConfigFromEnv(t *testing.T) {
	t.Setenv("ORCHESTRATOR_BASE_URL", "http://cfg:9090")
	t.Setenv("SCHEDULER_POLL_INTERVAL", "10s")
	t.Setenv("SCHEDULER_BATCH_LIMIT", "25")
	cfg := LoadWorkerConfigFromEnv()
	assert.Equal(t, "http://cfg:9090", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, 25, cfg.BatchLimit)

	t.Run("bare integer interval is seconds", func(t *testing.T) {
		t.Setenv("SCHEDULER_POLL_INTERVAL", "45")
		cfg := LoadWorkerConfigFromEnv()
		assert.Equal(t, 45*time.Second, cfg.PollInterval)
	})

	t.Run("config service url takes precedence", func(t *testing.T) {
		t.Setenv("CONFIG_SERVICE_URL", "http://config:8080")
		t.Setenv("AGENT_API_URL", "http://agents:8080")
		cfg := LoadWorkerConfigFromEnv()
		assert.Equal(t, "http://config:8080", cfg.BaseURL)
		assert.Equal(t, "http://agents:8080", cfg.AgentBaseURL)
	})
}
