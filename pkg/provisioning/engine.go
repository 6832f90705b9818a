// Package provisioning implements the idempotent multi-step team onboarding
// flow. Each attempt is recorded as a provisioning run with its ordered step
// outcomes; replays with the same idempotency key return the prior run.
package provisioning

import (
	"bytes"
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/incidentfox/incidentfox/ent"
	"github.com/incidentfox/incidentfox/ent/orgnode"
	"github.com/incidentfox/incidentfox/ent/provisioningrun"
	"github.com/incidentfox/incidentfox/pkg/audit"
	"github.com/incidentfox/incidentfox/pkg/nodestore"
	"github.com/incidentfox/incidentfox/pkg/token"
)

// Step names in execution order.
const (
	StepVerifyPermission  = "verify_permission"
	StepMapSlackChannels  = "map_slack_channels"
	StepIssueTeamToken    = "issue_team_token"
	StepBootstrapPipeline = "bootstrap_pipeline"
	StepFinalize          = "finalize"
)

// ConflictError reports a provisioning failure caused by a routing-key
// conflict. RunID goes out on the X-Provisioning-Run-Id response header.
type ConflictError struct {
	RunID string
	Code  string
	Key   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s (run %s)", e.Code, e.Key, e.RunID)
}

// Request is one provisioning attempt.
type Request struct {
	OrgID           string
	TeamNodeID      string
	TeamName        string
	SlackChannelIDs []string
	IdempotencyKey  string
	Actor           string
}

// Result is the outcome of a provisioning run. TeamToken is populated only
// on the run that actually issued it; idempotent replays return it empty.
type Result struct {
	Run       *ent.ProvisioningRun
	TeamToken string
	Replayed  bool
}

// Config controls engine behavior.
type Config struct {
	// DisableAdvisoryLocks skips the pg advisory lock, for single-writer
	// deployments and tests (ORCHESTRATOR_DISABLE_ADVISORY_LOCKS).
	DisableAdvisoryLocks bool
	// PipelineURL is the AI pipeline base the bootstrap step calls
	// (AI_PIPELINE_API_URL). Empty skips the upstream call.
	PipelineURL string
}

// Engine runs provisioning flows.
type Engine struct {
	client *ent.Client
	db     *stdsql.DB
	nodes  *nodestore.Service
	tokens *token.Service
	audit  *audit.Service
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

// NewEngine creates the provisioning engine. db is the raw connection used
// for advisory locks.
func NewEngine(client *ent.Client, db *stdsql.DB, nodes *nodestore.Service, tokens *token.Service, auditSvc *audit.Service, cfg Config) *Engine {
	return &Engine{
		client: client,
		db:     db,
		nodes:  nodes,
		tokens: tokens,
		audit:  auditSvc,
		cfg:    cfg,
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: slog.Default().With("component", "provisioning"),
	}
}

// ProvisionTeam provisions (org, team): maps the Slack channels, issues the
// team token, and bootstraps the default pipeline config. Idempotent on
// (org, team, idempotency_key).
func (e *Engine) ProvisionTeam(ctx context.Context, req Request) (*Result, error) {
	if req.IdempotencyKey != "" {
		prior, err := e.client.ProvisioningRun.Query().
			Where(
				provisioningrun.OrgID(req.OrgID),
				provisioningrun.TeamNodeID(req.TeamNodeID),
				provisioningrun.IdempotencyKey(req.IdempotencyKey),
			).
			Only(ctx)
		if err == nil {
			e.logger.Info("Provisioning replay returned prior run",
				"org_id", req.OrgID, "team_node_id", req.TeamNodeID, "run_id", prior.ID)
			return &Result{Run: prior, Replayed: true}, nil
		}
		if !ent.IsNotFound(err) {
			return nil, err
		}
	}

	unlock, err := e.lock(ctx, req.OrgID+"/"+req.TeamNodeID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	run, err := e.createRun(ctx, req)
	if err != nil {
		// The partial unique index arbitrates concurrent same-key attempts.
		if req.IdempotencyKey != "" && ent.IsConstraintError(err) {
			prior, qerr := e.client.ProvisioningRun.Query().
				Where(
					provisioningrun.OrgID(req.OrgID),
					provisioningrun.TeamNodeID(req.TeamNodeID),
					provisioningrun.IdempotencyKey(req.IdempotencyKey),
				).
				Only(ctx)
			if qerr == nil {
				return &Result{Run: prior, Replayed: true}, nil
			}
		}
		return nil, err
	}

	result, err := e.execute(ctx, run, req)
	if err != nil {
		e.audit.RecordError(ctx, audit.Event{
			Actor:  req.Actor,
			Action: audit.ActionProvision,
			Target: req.OrgID + "/" + req.TeamNodeID,
			Detail: map[string]interface{}{"run_id": run.ID},
		}, err)
		return nil, err
	}
	e.audit.Record(ctx, audit.Event{
		Actor:  req.Actor,
		Action: audit.ActionProvision,
		Target: req.OrgID + "/" + req.TeamNodeID,
		Detail: map[string]interface{}{"run_id": run.ID},
	})
	return result, nil
}

// GetRun returns one provisioning run scoped to its org.
func (e *Engine) GetRun(ctx context.Context, orgID, runID string) (*ent.ProvisioningRun, error) {
	run, err := e.client.ProvisioningRun.Query().
		Where(provisioningrun.ID(runID), provisioningrun.OrgID(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nodestore.ErrNotFound
		}
		return nil, err
	}
	return run, nil
}

// ListRuns returns recent runs for a team, newest first.
func (e *Engine) ListRuns(ctx context.Context, orgID, teamNodeID string, limit int) ([]*ent.ProvisioningRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return e.client.ProvisioningRun.Query().
		Where(provisioningrun.OrgID(orgID), provisioningrun.TeamNodeID(teamNodeID)).
		Order(ent.Desc(provisioningrun.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

func (e *Engine) lock(ctx context.Context, key string) (func(), error) {
	if e.cfg.DisableAdvisoryLocks || e.db == nil {
		return func() {}, nil
	}
	conn, err := e.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring lock connection: %w", err)
	}
	if _, err := conn.ExecContext(ctx,
		"SELECT pg_advisory_lock(hashtextextended($1, 0))", key); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("acquiring advisory lock: %w", err)
	}
	return func() {
		// Release on a background context so cancellation cannot leak the lock.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := conn.ExecContext(releaseCtx,
			"SELECT pg_advisory_unlock(hashtextextended($1, 0))", key); err != nil {
			e.logger.Warn("Failed to release advisory lock", "key", key, "error", err)
		}
		_ = conn.Close()
	}, nil
}

// bootstrapPipeline notifies the AI pipeline that a new team exists so it can
// set up its side of the tenancy.
func (e *Engine) bootstrapPipeline(ctx context.Context, req Request) error {
	body, err := json.Marshal(map[string]string{
		"org_id":       req.OrgID,
		"team_node_id": req.TeamNodeID,
		"team_name":    req.TeamName,
	})
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimSuffix(e.cfg.PipelineURL, "/")+"/api/v1/pipelines/bootstrap",
		bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := e.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("pipeline bootstrap: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("pipeline bootstrap returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}

func (e *Engine) createRun(ctx context.Context, req Request) (*ent.ProvisioningRun, error) {
	builder := e.client.ProvisioningRun.Create().
		SetID(uuid.NewString()).
		SetOrgID(req.OrgID).
		SetTeamNodeID(req.TeamNodeID).
		SetSteps([]map[string]interface{}{})
	if req.IdempotencyKey != "" {
		builder.SetIdempotencyKey(req.IdempotencyKey)
	}
	return builder.Save(ctx)
}

func (e *Engine) execute(ctx context.Context, run *ent.ProvisioningRun, req Request) (*Result, error) {
	var steps []map[string]interface{}
	record := func(name, status string, detail map[string]interface{}) {
		step := map[string]interface{}{"name": name, "status": status}
		if detail != nil {
			step["detail"] = detail
		}
		steps = append(steps, step)
	}
	fail := func(stepName string, stepErr error) error {
		record(stepName, "failed", map[string]interface{}{"error": stepErr.Error()})
		if _, uerr := e.client.ProvisioningRun.UpdateOneID(run.ID).
			SetStatus(provisioningrun.StatusFailed).
			SetSteps(steps).
			SetErrorMessage(stepErr.Error()).
			Save(ctx); uerr != nil {
			e.logger.Error("Failed to persist failed provisioning run", "run_id", run.ID, "error", uerr)
		}
		return stepErr
	}

	// verify_permission: the caller was permission-checked at the API
	// boundary; the step confirms the org exists and records the actor.
	if _, err := e.nodes.GetNode(ctx, req.OrgID, req.OrgID); err != nil {
		if errors.Is(err, nodestore.ErrNotFound) {
			if _, cerr := e.nodes.CreateOrg(ctx, req.OrgID, req.OrgID, req.Actor); cerr != nil && !errors.Is(cerr, nodestore.ErrAlreadyExists) {
				return nil, fail(StepVerifyPermission, cerr)
			}
		} else {
			return nil, fail(StepVerifyPermission, err)
		}
	}
	record(StepVerifyPermission, "succeeded", map[string]interface{}{"actor": req.Actor})

	// map_slack_channels: create the team node if absent, then claim the
	// channels through the config write path so the routing index arbitrates.
	if _, err := e.nodes.GetNode(ctx, req.OrgID, req.TeamNodeID); err != nil {
		if !errors.Is(err, nodestore.ErrNotFound) {
			return nil, fail(StepMapSlackChannels, err)
		}
		name := req.TeamName
		if name == "" {
			name = req.TeamNodeID
		}
		if _, cerr := e.nodes.CreateNode(ctx, req.OrgID, req.TeamNodeID, req.OrgID, orgnode.KindTeam, name, req.Actor); cerr != nil && !errors.Is(cerr, nodestore.ErrAlreadyExists) {
			return nil, fail(StepMapSlackChannels, cerr)
		}
	}
	if len(req.SlackChannelIDs) > 0 {
		channels := make([]interface{}, len(req.SlackChannelIDs))
		for i, id := range req.SlackChannelIDs {
			channels[i] = id
		}
		patch := map[string]interface{}{
			"routing": map[string]interface{}{"slack_channel_ids": channels},
		}
		if _, err := e.nodes.PatchConfig(ctx, req.OrgID, req.TeamNodeID, patch, req.Actor); err != nil {
			var rc *nodestore.RoutingConflictError
			if errors.As(err, &rc) {
				_ = fail(StepMapSlackChannels, err)
				return nil, &ConflictError{RunID: run.ID, Code: rc.Code, Key: rc.Key}
			}
			return nil, fail(StepMapSlackChannels, err)
		}
	}
	record(StepMapSlackChannels, "succeeded", map[string]interface{}{"channels": req.SlackChannelIDs})

	// issue_team_token
	bearer, err := e.tokens.IssueTeamToken(ctx, req.OrgID, req.TeamNodeID, req.Actor)
	if err != nil {
		return nil, fail(StepIssueTeamToken, err)
	}
	tokenID, _, _ := token.SplitOpaque(bearer)
	record(StepIssueTeamToken, "succeeded", map[string]interface{}{"token_id": tokenID})

	// bootstrap_pipeline: seed the team defaults without clobbering anything
	// an earlier run already set, then call the pipeline's bootstrap endpoint
	// when one is configured.
	if req.TeamName != "" {
		current, _, gerr := e.nodes.GetConfig(ctx, req.OrgID, req.TeamNodeID)
		if gerr != nil {
			return nil, fail(StepBootstrapPipeline, gerr)
		}
		if _, set := current["team_name"]; !set {
			if _, perr := e.nodes.PatchConfig(ctx, req.OrgID, req.TeamNodeID,
				map[string]interface{}{"team_name": req.TeamName}, req.Actor); perr != nil {
				return nil, fail(StepBootstrapPipeline, perr)
			}
		}
	}
	bootstrapDetail := map[string]interface{}{"pipeline_called": false}
	if e.cfg.PipelineURL != "" {
		if err := e.bootstrapPipeline(ctx, req); err != nil {
			return nil, fail(StepBootstrapPipeline, err)
		}
		bootstrapDetail["pipeline_called"] = true
		bootstrapDetail["pipeline_url"] = e.cfg.PipelineURL
	}
	record(StepBootstrapPipeline, "succeeded", bootstrapDetail)

	record(StepFinalize, "succeeded", nil)
	updated, err := e.client.ProvisioningRun.UpdateOneID(run.ID).
		SetStatus(provisioningrun.StatusSucceeded).
		SetSteps(steps).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	e.logger.Info("Provisioned team", "org_id", req.OrgID, "team_node_id", req.TeamNodeID, "run_id", run.ID)
	return &Result{Run: updated, TeamToken: bearer}, nil
}
