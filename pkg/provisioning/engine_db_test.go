package provisioning

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentfox/incidentfox/ent/provisioningrun"
	"github.com/incidentfox/incidentfox/pkg/crypto"
	"github.com/incidentfox/incidentfox/pkg/nodestore"
	"github.com/incidentfox/incidentfox/pkg/token"
	"github.com/incidentfox/incidentfox/test/util"
)

func newTestEngine(t *testing.T) (*Engine, *nodestore.Service) {
	client, _ := util.SetupTestDatabase(t)
	enc, err := crypto.NewEncryptor(strings.Repeat("k", 32))
	require.NoError(t, err)
	signer, err := crypto.NewTokenSigner("test-jwt-secret")
	require.NoError(t, err)

	nodes := nodestore.NewService(client, enc, nil)
	tokens := token.NewService(client, signer, "test-pepper", token.Config{}, nil)
	// Advisory locks need a raw *sql.DB; tests run single-writer.
	engine := NewEngine(client, nil, nodes, tokens, nil, Config{DisableAdvisoryLocks: true})
	return engine, nodes
}

func TestProvisionTeam(t *testing.T) {
	engine, nodes := newTestEngine(t)
	ctx := t.Context()

	result, err := engine.ProvisionTeam(ctx, Request{
		OrgID:           "acme",
		TeamNodeID:      "payments",
		TeamName:        "Payments",
		SlackChannelIDs: []string{"C100", "C200"},
		IdempotencyKey:  "key-1",
		Actor:           "admin",
	})
	require.NoError(t, err)
	assert.False(t, result.Replayed)
	assert.Equal(t, provisioningrun.StatusSucceeded, result.Run.Status)
	require.NotEmpty(t, result.TeamToken)
	tokenID, secret, ok := token.SplitOpaque(result.TeamToken)
	require.True(t, ok)
	assert.NotEmpty(t, tokenID)
	assert.NotEmpty(t, secret)

	// All five steps recorded in order, all succeeded.
	require.Len(t, result.Run.Steps, 5)
	wantSteps := []string{
		StepVerifyPermission, StepMapSlackChannels, StepIssueTeamToken,
		StepBootstrapPipeline, StepFinalize,
	}
	for i, step := range result.Run.Steps {
		assert.Equal(t, wantSteps[i], step["name"])
		assert.Equal(t, "succeeded", step["status"])
	}

	// Org root and team node exist, channels routed, team_name seeded.
	_, err = nodes.GetNode(ctx, "acme", "acme")
	require.NoError(t, err)
	_, err = nodes.GetNode(ctx, "acme", "payments")
	require.NoError(t, err)
	orgID, teamNodeID, err := nodes.LookupRouting(ctx, "slack", "C100")
	require.NoError(t, err)
	assert.Equal(t, "acme", orgID)
	assert.Equal(t, "payments", teamNodeID)
	config, _, err := nodes.GetConfig(ctx, "acme", "payments")
	require.NoError(t, err)
	assert.Equal(t, "Payments", config["team_name"])
}

func TestProvisionTeamCallsPipelineBootstrap(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := t.Context()

	var got map[string]string
	pipeline := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/pipelines/bootstrap", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer pipeline.Close()
	engine.cfg.PipelineURL = pipeline.URL

	result, err := engine.ProvisionTeam(ctx, Request{
		OrgID:          "acme",
		TeamNodeID:     "payments",
		TeamName:       "Payments",
		IdempotencyKey: "key-1",
		Actor:          "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "acme", got["org_id"])
	assert.Equal(t, "payments", got["team_node_id"])
	assert.Equal(t, "Payments", got["team_name"])

	var bootstrap map[string]interface{}
	for _, step := range result.Run.Steps {
		if step["name"] == StepBootstrapPipeline {
			bootstrap = step
		}
	}
	require.NotNil(t, bootstrap)
	detail := bootstrap["detail"].(map[string]interface{})
	assert.Equal(t, true, detail["pipeline_called"])
}

func TestProvisionTeamPipelineBootstrapFailureFailsRun(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := t.Context()

	pipeline := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "pipeline down", http.StatusServiceUnavailable)
	}))
	defer pipeline.Close()
	engine.cfg.PipelineURL = pipeline.URL

	_, err := engine.ProvisionTeam(ctx, Request{
		OrgID:          "acme",
		TeamNodeID:     "payments",
		TeamName:       "Payments",
		IdempotencyKey: "key-1",
		Actor:          "admin",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipeline bootstrap returned 503")

	runs, err := engine.ListRuns(ctx, "acme", "payments", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, provisioningrun.StatusFailed, runs[0].Status)
}

func TestProvisionTeamIdempotentReplay(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := t.Context()

	req := Request{
		OrgID:           "acme",
		TeamNodeID:      "payments",
		TeamName:        "Payments",
		SlackChannelIDs: []string{"C100"},
		IdempotencyKey:  "key-1",
		Actor:           "admin",
	}
	first, err := engine.ProvisionTeam(ctx, req)
	require.NoError(t, err)

	replay, err := engine.ProvisionTeam(ctx, req)
	require.NoError(t, err)
	assert.True(t, replay.Replayed)
	assert.Equal(t, first.Run.ID, replay.Run.ID)
	// The token is only handed out by the run that minted it.
	assert.Empty(t, replay.TeamToken)

	// A different key provisions again; the team already exists so the run
	// succeeds and issues a fresh token.
	req.IdempotencyKey = "key-2"
	second, err := engine.ProvisionTeam(ctx, req)
	require.NoError(t, err)
	assert.False(t, second.Replayed)
	assert.NotEqual(t, first.Run.ID, second.Run.ID)
	assert.NotEmpty(t, second.TeamToken)
}

func TestProvisionTeamChannelConflict(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := t.Context()

	_, err := engine.ProvisionTeam(ctx, Request{
		OrgID:           "acme",
		TeamNodeID:      "payments",
		SlackChannelIDs: []string{"C100"},
		IdempotencyKey:  "key-1",
		Actor:           "admin",
	})
	require.NoError(t, err)

	_, err = engine.ProvisionTeam(ctx, Request{
		OrgID:           "acme",
		TeamNodeID:      "search",
		SlackChannelIDs: []string{"C100"},
		IdempotencyKey:  "key-2",
		Actor:           "admin",
	})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "slack_channel_already_mapped", conflict.Code)
	assert.Equal(t, "C100", conflict.Key)
	require.NotEmpty(t, conflict.RunID)

	// The failed run is persisted and inspectable by its id.
	run, err := engine.GetRun(ctx, "acme", conflict.RunID)
	require.NoError(t, err)
	assert.Equal(t, provisioningrun.StatusFailed, run.Status)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, "slack_channel_already_mapped")
}
