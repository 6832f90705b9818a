package nodestore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentfox/incidentfox/ent/orgnode"
	"github.com/incidentfox/incidentfox/pkg/crypto"
	"github.com/incidentfox/incidentfox/test/util"
)

func newTestService(t *testing.T) *Service {
	client, _ := util.SetupTestDatabase(t)
	enc, err := crypto.NewEncryptor(strings.Repeat("k", 32))
	require.NoError(t, err)
	return NewService(client, enc, nil)
}

func TestNodeTreeLifecycle(t *testing.T) {
	s := newTestService(t)
	ctx := t.Context()

	org, err := s.CreateOrg(ctx, "acme", "Acme Corp", "admin")
	require.NoError(t, err)
	assert.Equal(t, orgnode.KindOrg, org.Kind)
	assert.Equal(t, 0, org.Depth)

	team, err := s.CreateNode(ctx, "acme", "payments", "acme", orgnode.KindTeam, "Payments", "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, team.Depth)

	_, err = s.CreateNode(ctx, "acme", "payments", "acme", orgnode.KindTeam, "Payments", "admin")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = s.CreateNode(ctx, "acme", "orphan", "nonesuch", orgnode.KindTeam, "Orphan", "admin")
	assert.ErrorIs(t, err, ErrParentNotFound)

	// The org still has a child and must not be deletable.
	err = s.DeleteNode(ctx, "acme", "acme", "admin")
	assert.ErrorIs(t, err, ErrHasChildren)

	require.NoError(t, s.DeleteNode(ctx, "acme", "payments", "admin"))
	_, err = s.GetNode(ctx, "acme", "payments")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPatchConfigVersionsAndSecrets(t *testing.T) {
	s := newTestService(t)
	ctx := t.Context()

	_, err := s.CreateOrg(ctx, "acme", "Acme Corp", "admin")
	require.NoError(t, err)
	_, err = s.CreateNode(ctx, "acme", "payments", "acme", orgnode.KindTeam, "Payments", "admin")
	require.NoError(t, err)

	row, err := s.PatchConfig(ctx, "acme", "payments", map[string]interface{}{
		"team_name": "Payments",
		"integrations": map[string]interface{}{
			"github": map[string]interface{}{"api_key": "s3cret", "org": "acme"},
		},
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, row.Version)

	// Secret fields are sealed at rest; non-sensitive fields stay readable.
	github := row.Config["integrations"].(map[string]interface{})["github"].(map[string]interface{})
	assert.True(t, crypto.IsEncrypted(github["api_key"].(string)))
	assert.Equal(t, "acme", github["org"])

	// team_name is write-once.
	_, err = s.PatchConfig(ctx, "acme", "payments", map[string]interface{}{"team_name": "Renamed"}, "admin")
	var immutable *ImmutableFieldError
	require.ErrorAs(t, err, &immutable)
	assert.Equal(t, "team_name", immutable.Field)

	row, err = s.PatchConfig(ctx, "acme", "payments", map[string]interface{}{
		"agents": map[string]interface{}{"default": "incident-responder"},
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, row.Version)

	config, version, err := s.GetConfig(ctx, "acme", "payments")
	require.NoError(t, err)
	assert.Equal(t, 2, version)
	assert.Contains(t, config, "agents")
	assert.Contains(t, config, "integrations")
}

func TestRoutingKeyClaims(t *testing.T) {
	s := newTestService(t)
	ctx := t.Context()

	_, err := s.CreateOrg(ctx, "acme", "Acme Corp", "admin")
	require.NoError(t, err)
	_, err = s.CreateNode(ctx, "acme", "payments", "acme", orgnode.KindTeam, "Payments", "admin")
	require.NoError(t, err)
	_, err = s.CreateNode(ctx, "acme", "search", "acme", orgnode.KindTeam, "Search", "admin")
	require.NoError(t, err)

	_, err = s.PatchConfig(ctx, "acme", "payments", map[string]interface{}{
		"routing": map[string]interface{}{"slack_channel_ids": []interface{}{"C100"}},
	}, "admin")
	require.NoError(t, err)

	orgID, teamNodeID, err := s.LookupRouting(ctx, "slack", "C100")
	require.NoError(t, err)
	assert.Equal(t, "acme", orgID)
	assert.Equal(t, "payments", teamNodeID)

	// Another team claiming the same channel conflicts.
	_, err = s.PatchConfig(ctx, "acme", "search", map[string]interface{}{
		"routing": map[string]interface{}{"slack_channel_ids": []interface{}{"C100"}},
	}, "admin")
	var conflict *RoutingConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "slack_channel_already_mapped", conflict.Code)

	// Re-declaring its own key is a no-op for the owner.
	_, err = s.PatchConfig(ctx, "acme", "payments", map[string]interface{}{
		"routing": map[string]interface{}{"slack_channel_ids": []interface{}{"C100", "C200"}},
	}, "admin")
	require.NoError(t, err)

	// Dropping the key releases the claim.
	_, err = s.PatchConfig(ctx, "acme", "payments", map[string]interface{}{
		"routing": map[string]interface{}{"slack_channel_ids": []interface{}{"C200"}},
	}, "admin")
	require.NoError(t, err)
	_, err = s.PatchConfig(ctx, "acme", "search", map[string]interface{}{
		"routing": map[string]interface{}{"slack_channel_ids": []interface{}{"C100"}},
	}, "admin")
	require.NoError(t, err)
}

func TestAncestorConfigsChain(t *testing.T) {
	s := newTestService(t)
	ctx := t.Context()

	_, err := s.CreateOrg(ctx, "acme", "Acme Corp", "admin")
	require.NoError(t, err)
	_, err = s.CreateNode(ctx, "acme", "platform", "acme", orgnode.KindSubTeam, "Platform", "admin")
	require.NoError(t, err)
	_, err = s.CreateNode(ctx, "acme", "payments", "platform", orgnode.KindTeam, "Payments", "admin")
	require.NoError(t, err)

	_, err = s.PatchConfig(ctx, "acme", "acme", map[string]interface{}{"model": "base"}, "admin")
	require.NoError(t, err)
	_, err = s.PatchConfig(ctx, "acme", "payments", map[string]interface{}{"model": "fast"}, "admin")
	require.NoError(t, err)

	configs, err := s.AncestorConfigs(ctx, "acme", "payments")
	require.NoError(t, err)
	require.Len(t, configs, 3)
	// Org root first, team last; the middle node never got a config.
	assert.Equal(t, "base", configs[0]["model"])
	assert.Empty(t, configs[1])
	assert.Equal(t, "fast", configs[2]["model"])
}
