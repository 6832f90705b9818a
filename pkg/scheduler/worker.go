package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// internalServiceHeader authenticates scheduler traffic on the internal API.
const internalServiceHeader = "X-Internal-Service"

// WorkerConfig holds the polling worker settings.
type WorkerConfig struct {
	// BaseURL of the config service's internal API (CONFIG_SERVICE_URL,
	// with ORCHESTRATOR_BASE_URL as the legacy fallback).
	BaseURL string
	// AgentBaseURL of the agent run API (AGENT_API_URL). Empty means the
	// same service as BaseURL.
	AgentBaseURL string
	// ServiceName goes out on X-Internal-Service.
	ServiceName string
	// PollInterval between due-job polls (SCHEDULER_POLL_INTERVAL, seconds).
	PollInterval time.Duration
	// BatchLimit caps jobs claimed per poll.
	BatchLimit int
}

// LoadWorkerConfigFromEnv reads the worker settings from the environment.
func LoadWorkerConfigFromEnv() WorkerConfig {
	cfg := WorkerConfig{
		BaseURL:      os.Getenv("CONFIG_SERVICE_URL"),
		AgentBaseURL: os.Getenv("AGENT_API_URL"),
		ServiceName:  "scheduler",
		PollInterval: 30 * time.Second,
		BatchLimit:   10,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("ORCHESTRATOR_BASE_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if raw := os.Getenv("SCHEDULER_POLL_INTERVAL"); raw != "" {
		// A bare integer is seconds; duration strings are accepted too.
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.PollInterval = time.Duration(n) * time.Second
		} else if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.PollInterval = d
		}
	}
	if raw := os.Getenv("SCHEDULER_BATCH_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.BatchLimit = n
		}
	}
	return cfg
}

// dueJob is the wire shape of a claimed job on the internal API.
type dueJob struct {
	ID         string                 `json:"id"`
	OrgID      string                 `json:"org_id"`
	TeamNodeID string                 `json:"team_node_id"`
	JobType    string                 `json:"job_type"`
	Config     map[string]interface{} `json:"config,omitempty"`
}

// Worker polls the internal API for due jobs and executes them.
type Worker struct {
	cfg    WorkerConfig
	owner  string
	http   *http.Client
	logger *slog.Logger

	wg sync.WaitGroup
}

// NewWorker creates a polling worker with a unique claim owner id.
func NewWorker(cfg WorkerConfig) *Worker {
	hostname, _ := os.Hostname()
	return &Worker{
		cfg:    cfg,
		owner:  hostname + "-" + uuid.NewString()[:8],
		http:   &http.Client{Timeout: 5 * time.Minute},
		logger: slog.Default().With("component", "scheduler.worker"),
	}
}

// Run polls until ctx is canceled. In-flight jobs run on their own detached
// contexts, so shutdown stops new claims but does not abort running jobs; a
// job that outlives its owner is bounded by the claim TTL.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Scheduler worker started",
		"owner", w.owner, "poll_interval", w.cfg.PollInterval)
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Scheduler worker stopping")
			done := make(chan struct{})
			go func() { w.wg.Wait(); close(done) }()
			select {
			case <-done:
			case <-time.After(10 * time.Second):
				w.logger.Warn("Detaching in-flight scheduled jobs")
			}
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Worker) poll(ctx context.Context) {
	jobs, err := w.fetchDue(ctx)
	if err != nil {
		w.logger.Error("Failed to fetch due jobs", "error", err)
		return
	}
	for _, job := range jobs {
		job := job
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			jobCtx, cancel := context.WithTimeout(context.Background(), DefaultLockTTL)
			defer cancel()
			w.execute(jobCtx, job)
		}()
	}
}

func (w *Worker) fetchDue(ctx context.Context) ([]dueJob, error) {
	url := fmt.Sprintf("%s/api/v1/internal/scheduled-jobs/due?limit=%d&owner=%s",
		w.cfg.BaseURL, w.cfg.BatchLimit, w.owner)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(internalServiceHeader, w.cfg.ServiceName)
	resp, err := w.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("due-jobs poll returned %d: %s", resp.StatusCode, body)
	}
	var out struct {
		Jobs []dueJob `json:"jobs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

func (w *Worker) execute(ctx context.Context, job dueJob) {
	logger := w.logger.With("job_id", job.ID, "org_id", job.OrgID, "team_node_id", job.TeamNodeID)
	logger.Info("Executing scheduled job", "job_type", job.JobType)

	status := "succeeded"
	if err := w.runJob(ctx, job); err != nil {
		logger.Error("Scheduled job failed", "error", err)
		status = "failed"
	}
	if err := w.complete(ctx, job.ID, status); err != nil {
		logger.Error("Failed to report job completion", "error", err)
	}
}

func (w *Worker) runJob(ctx context.Context, job dueJob) error {
	bearer, err := w.impersonate(ctx, job.OrgID, job.TeamNodeID)
	if err != nil {
		return fmt.Errorf("fetching impersonation token: %w", err)
	}

	agent, _ := job.Config["agent"].(string)
	if agent == "" {
		agent = job.JobType
	}
	prompt, _ := job.Config["prompt"].(string)

	body, err := json.Marshal(map[string]interface{}{
		"agent":          agent,
		"prompt":         prompt,
		"trigger_source": "schedule",
	})
	if err != nil {
		return err
	}
	agentBase := w.cfg.AgentBaseURL
	if agentBase == "" {
		agentBase = w.cfg.BaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		agentBase+"/api/v1/agents/run", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearer)
	resp, err := w.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("agent run returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}

func (w *Worker) impersonate(ctx context.Context, orgID, teamNodeID string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"org_id":       orgID,
		"team_node_id": teamNodeID,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		w.cfg.BaseURL+"/api/v1/internal/impersonate-team", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(internalServiceHeader, w.cfg.ServiceName)
	resp, err := w.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("impersonation returned %d: %s", resp.StatusCode, msg)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (w *Worker) complete(ctx context.Context, jobID, status string) error {
	body, err := json.Marshal(map[string]string{
		"owner":  w.owner,
		"status": status,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/v1/internal/scheduled-jobs/%s/complete", w.cfg.BaseURL, jobID),
		bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(internalServiceHeader, w.cfg.ServiceName)
	resp, err := w.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("completion returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}
