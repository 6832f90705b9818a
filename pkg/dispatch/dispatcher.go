// Package dispatch runs agent investigations: it resolves the tenant's
// effective config, mints a sandbox JWT, streams the sandbox's event feed,
// and persists the run record.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/incidentfox/incidentfox/ent"
	"github.com/incidentfox/incidentfox/ent/agentrun"
	"github.com/incidentfox/incidentfox/pkg/audit"
	"github.com/incidentfox/incidentfox/pkg/crypto"
	"github.com/incidentfox/incidentfox/pkg/effective"
	"github.com/incidentfox/incidentfox/pkg/output"
	"github.com/incidentfox/incidentfox/pkg/token"
)

// Run failure codes.
var (
	ErrSandboxUnavailable = errors.New("sandbox_unavailable")
	ErrSandboxTimeout     = errors.New("sandbox_timeout")
	ErrMaxTurnsExceeded   = errors.New("max_turns_exceeded")
	ErrAgentError         = errors.New("agent_error")
)

const (
	defaultMaxTurns = 30
	// maxConnectAttempts bounds retries of connection failures; an accepted
	// stream is never retried.
	maxConnectAttempts = 3
	connectBackoffCap  = 4 * time.Second
)

// Config holds the sandbox routing settings.
type Config struct {
	// RouterURL is the sandbox router base (SANDBOX_ROUTER_URL).
	RouterURL string
	// Namespace and Port go out on the router headers when set.
	Namespace string
	Port      int
	// RunTimeout bounds one whole run.
	RunTimeout time.Duration
}

// LoadConfigFromEnv reads the dispatcher settings from the environment.
func LoadConfigFromEnv() Config {
	cfg := Config{
		RouterURL:  os.Getenv("SANDBOX_ROUTER_URL"),
		Namespace:  os.Getenv("SANDBOX_NAMESPACE"),
		RunTimeout: 10 * time.Minute,
	}
	if cfg.RouterURL == "" {
		cfg.RouterURL = "http://localhost:8090"
	}
	if raw := os.Getenv("SANDBOX_PORT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			cfg.Port = n
		}
	}
	if raw := os.Getenv("AGENT_RUN_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.RunTimeout = d
		}
	}
	return cfg
}

// Input describes one agent run request.
type Input struct {
	OrgID         string
	TeamNodeID    string
	Agent         string
	Prompt        string
	TriggerSource string
	Trigger       output.Trigger
	MaxTurns      int
	CorrelationID string
	Actor         string
	// Destinations overrides output resolution when set.
	Destinations []output.Destination
}

// Result is a finished run.
type Result struct {
	RunID        string
	Status       string
	Output       string
	EventsCount  int
	Destinations []output.Destination
}

// Dispatcher executes agent runs against the sandbox router.
type Dispatcher struct {
	client   *ent.Client
	resolver *effective.Resolver
	tokens   *token.Service
	audit    *audit.Service
	cfg      Config
	http     *http.Client
	logger   *slog.Logger
}

// NewDispatcher creates the dispatcher.
func NewDispatcher(client *ent.Client, resolver *effective.Resolver, tokens *token.Service, auditSvc *audit.Service, cfg Config) *Dispatcher {
	return &Dispatcher{
		client:   client,
		resolver: resolver,
		tokens:   tokens,
		audit:    auditSvc,
		cfg:      cfg,
		// Per-run deadlines come from the request context; the stream itself
		// is unbounded.
		http:   &http.Client{},
		logger: slog.Default().With("component", "dispatch"),
	}
}

// RunAgent executes one bounded agent run and blocks until it finishes.
func (d *Dispatcher) RunAgent(ctx context.Context, in Input) (*Result, error) {
	if in.MaxTurns <= 0 {
		in.MaxTurns = defaultMaxTurns
	}
	runID := uuid.NewString()
	logger := d.logger.With("run_id", runID, "org_id", in.OrgID, "team_node_id", in.TeamNodeID, "agent", in.Agent)

	eff, err := d.resolver.Resolve(ctx, in.OrgID, in.TeamNodeID)
	if err != nil {
		return nil, fmt.Errorf("resolving effective config: %w", err)
	}

	row, err := d.client.AgentRun.Create().
		SetID(runID).
		SetOrgID(in.OrgID).
		SetTeamNodeID(in.TeamNodeID).
		SetAgentName(in.Agent).
		SetTriggerSource(in.TriggerSource).
		SetCorrelationID(in.CorrelationID).
		SetMaxTurns(in.MaxTurns).
		SetStatus(agentrun.StatusRunning).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("recording agent run: %w", err)
	}

	if d.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.RunTimeout)
		defer cancel()
	}

	sandboxJWT, err := d.tokens.MintSandbox(ctx, in.OrgID, in.TeamNodeID, runID, crypto.MaxSandboxTTL)
	if err != nil {
		d.finishRun(row.ID, agentrun.StatusError, "", 0, err)
		return nil, fmt.Errorf("minting sandbox token: %w", err)
	}

	result, runErr := d.streamRun(ctx, runID, sandboxJWT, in)
	if runErr != nil {
		status := agentrun.StatusError
		if errors.Is(runErr, ErrSandboxTimeout) {
			status = agentrun.StatusInterrupted
		}
		events := 0
		if result != nil {
			events = result.EventsCount
		}
		d.finishRun(row.ID, status, "", events, runErr)
		d.audit.RecordError(ctx, audit.Event{
			Actor:  in.Actor,
			Action: audit.ActionAgentRun,
			Target: in.OrgID + "/" + in.TeamNodeID,
			Detail: map[string]interface{}{"run_id": runID, "agent": in.Agent},
		}, runErr)
		return nil, runErr
	}

	result.RunID = runID
	result.Destinations = output.Resolve(in.Trigger, eff, in.Destinations)
	d.finishRun(row.ID, agentrun.StatusComplete, result.Output, result.EventsCount, nil)
	d.audit.Record(ctx, audit.Event{
		Actor:  in.Actor,
		Action: audit.ActionAgentRun,
		Target: in.OrgID + "/" + in.TeamNodeID,
		Detail: map[string]interface{}{"run_id": runID, "agent": in.Agent, "events": result.EventsCount},
	})
	logger.Info("Agent run complete", "events", result.EventsCount)
	return result, nil
}

// streamRun opens the sandbox SSE stream and consumes it to completion.
// Connection failures retry with exponential backoff; once the stream is
// accepted there are no retries.
func (d *Dispatcher) streamRun(ctx context.Context, runID, sandboxJWT string, in Input) (*Result, error) {
	body, err := json.Marshal(map[string]interface{}{
		"run_id":    runID,
		"agent":     in.Agent,
		"prompt":    in.Prompt,
		"max_turns": in.MaxTurns,
	})
	if err != nil {
		return nil, err
	}

	var resp *http.Response
	connect := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			d.cfg.RouterURL+"/agent/run", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "text/event-stream")
		req.Header.Set("X-Sandbox-ID", SandboxID(in.OrgID, in.TeamNodeID))
		req.Header.Set("X-Sandbox-JWT", sandboxJWT)
		if d.cfg.Namespace != "" {
			req.Header.Set("X-Sandbox-Namespace", d.cfg.Namespace)
		}
		if d.cfg.Port > 0 {
			req.Header.Set("X-Sandbox-Port", strconv.Itoa(d.cfg.Port))
		}
		r, err := d.http.Do(req)
		if err != nil {
			return err
		}
		if r.StatusCode != http.StatusOK {
			r.Body.Close()
			if r.StatusCode >= 500 || r.StatusCode == http.StatusBadGateway {
				return fmt.Errorf("sandbox returned %d", r.StatusCode)
			}
			return backoff.Permanent(fmt.Errorf("sandbox rejected run: %d", r.StatusCode))
		}
		resp = r
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(
		backoff.NewExponentialBackOff(backoff.WithMaxInterval(connectBackoffCap)),
		maxConnectAttempts-1,
	), ctx)
	if err := backoff.Retry(connect, policy); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrSandboxTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrSandboxUnavailable, err)
	}
	defer resp.Body.Close()

	result := &Result{}
	turns := 0
	var agentErr error
	done := false
	err = ReadSSE(resp.Body, func(ev SSEEvent) bool {
		result.EventsCount++
		switch ev.Type {
		case "thought":
			// Each agent turn opens with a thought. The sandbox enforces
			// max_turns itself; this is the dispatcher-side bound for
			// sandboxes that fail to.
			turns++
			if turns > in.MaxTurns {
				agentErr = ErrMaxTurnsExceeded
				return false
			}
		case "result":
			if text, ok := eventPayload(ev)["text"].(string); ok {
				result.Output = text
			}
			done = true
			return false
		case "error":
			msg, _ := eventPayload(ev)["message"].(string)
			agentErr = fmt.Errorf("%w: %s", ErrAgentError, msg)
			return false
		}
		return true
	})
	if agentErr != nil {
		return result, agentErr
	}
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result, ErrSandboxTimeout
		}
		return result, fmt.Errorf("%w: %v", ErrAgentError, err)
	}
	if !done {
		if ctx.Err() == context.DeadlineExceeded {
			return result, ErrSandboxTimeout
		}
		return result, fmt.Errorf("%w: stream ended without result", ErrAgentError)
	}
	return result, nil
}

// finishRun persists the terminal state on a background context so a
// canceled request still records the outcome.
func (d *Dispatcher) finishRun(rowID string, status agentrun.Status, out string, events int, runErr error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	builder := d.client.AgentRun.UpdateOneID(rowID).
		SetStatus(status).
		SetEndedAt(time.Now()).
		SetEventsCount(events)
	if out != "" {
		builder.SetOutputRef(out)
	}
	if runErr != nil {
		builder.SetErrorMessage(runErr.Error())
	}
	if err := builder.Exec(ctx); err != nil {
		d.logger.Error("Failed to persist agent run outcome", "run_id", rowID, "error", err)
	}
}

// eventPayload returns the type-specific payload nested under "data" in the
// stream envelope {type, data, thread_id, timestamp}.
func eventPayload(ev SSEEvent) map[string]interface{} {
	if data, ok := ev.Data["data"].(map[string]interface{}); ok {
		return data
	}
	return nil
}

// SandboxID derives the sandbox identity for a tenant.
func SandboxID(orgID, teamNodeID string) string {
	return "sbx-" + orgID + "-" + teamNodeID
}
