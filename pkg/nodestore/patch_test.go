package nodestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPatch(t *testing.T) {
	t.Run("scalar replace and add", func(t *testing.T) {
		current := map[string]interface{}{"a": 1, "b": "old"}
		patch := map[string]interface{}{"b": "new", "c": true}
		got := ApplyPatch(current, patch)
		assert.Equal(t, map[string]interface{}{"a": 1, "b": "new", "c": true}, got)
	})

	t.Run("null deletes", func(t *testing.T) {
		current := map[string]interface{}{"a": 1, "b": 2}
		patch := map[string]interface{}{"b": nil}
		got := ApplyPatch(current, patch)
		assert.Equal(t, map[string]interface{}{"a": 1}, got)
	})

	t.Run("nested objects recurse", func(t *testing.T) {
		current := map[string]interface{}{
			"integrations": map[string]interface{}{
				"slack":  map[string]interface{}{"bot_token": "enc:v1:abc"},
				"github": map[string]interface{}{"token": "enc:v1:def"},
			},
		}
		patch := map[string]interface{}{
			"integrations": map[string]interface{}{
				"slack": map[string]interface{}{"default_channel": "C1"},
			},
		}
		got := ApplyPatch(current, patch)
		integrations := got["integrations"].(map[string]interface{})
		slack := integrations["slack"].(map[string]interface{})
		assert.Equal(t, "enc:v1:abc", slack["bot_token"])
		assert.Equal(t, "C1", slack["default_channel"])
		assert.Contains(t, integrations, "github")
	})

	t.Run("object over scalar replaces", func(t *testing.T) {
		current := map[string]interface{}{"a": "scalar"}
		patch := map[string]interface{}{"a": map[string]interface{}{"b": 1, "c": nil}}
		got := ApplyPatch(current, patch)
		// Nested nulls inside a fresh object are dropped, not stored.
		assert.Equal(t, map[string]interface{}{"a": map[string]interface{}{"b": 1}}, got)
	})

	t.Run("arrays replace wholesale", func(t *testing.T) {
		current := map[string]interface{}{"ids": []interface{}{"a", "b"}}
		patch := map[string]interface{}{"ids": []interface{}{"c"}}
		got := ApplyPatch(current, patch)
		assert.Equal(t, []interface{}{"c"}, got["ids"])
	})

	t.Run("inputs not mutated", func(t *testing.T) {
		current := map[string]interface{}{"a": map[string]interface{}{"x": 1}}
		patch := map[string]interface{}{"a": map[string]interface{}{"y": 2}, "b": nil}
		_ = ApplyPatch(current, patch)
		assert.Equal(t, map[string]interface{}{"a": map[string]interface{}{"x": 1}}, current)
		assert.Equal(t, map[string]interface{}{"a": map[string]interface{}{"y": 2}, "b": nil}, patch)
	})
}

func TestCheckImmutable(t *testing.T) {
	t.Run("first set allowed", func(t *testing.T) {
		err := CheckImmutable(map[string]interface{}{}, map[string]interface{}{"team_name": "payments"})
		assert.NoError(t, err)
	})

	t.Run("unchanged value allowed", func(t *testing.T) {
		current := map[string]interface{}{"team_name": "payments"}
		err := CheckImmutable(current, map[string]interface{}{"team_name": "payments"})
		assert.NoError(t, err)
	})

	t.Run("change rejected", func(t *testing.T) {
		current := map[string]interface{}{"team_name": "payments"}
		err := CheckImmutable(current, map[string]interface{}{"team_name": "billing"})
		require.Error(t, err)
		var imm *ImmutableFieldError
		require.ErrorAs(t, err, &imm)
		assert.Equal(t, "team_name", imm.Field)
	})

	t.Run("other keys unaffected", func(t *testing.T) {
		current := map[string]interface{}{"team_name": "payments"}
		err := CheckImmutable(current, map[string]interface{}{"escalation_policy": "p1"})
		assert.NoError(t, err)
	})

	t.Run("equal map values allowed", func(t *testing.T) {
		current := map[string]interface{}{"team_name": map[string]interface{}{"x": 1}}
		err := CheckImmutable(current, map[string]interface{}{"team_name": map[string]interface{}{"x": 1}})
		assert.NoError(t, err)
	})

	t.Run("changed map value rejected", func(t *testing.T) {
		current := map[string]interface{}{"team_name": map[string]interface{}{"x": 1}}
		err := CheckImmutable(current, map[string]interface{}{"team_name": map[string]interface{}{"x": 2}})
		var imm *ImmutableFieldError
		require.ErrorAs(t, err, &imm)
		assert.Equal(t, "team_name", imm.Field)
	})
}

func TestExtractRoutingKeys(t *testing.T) {
	config := map[string]interface{}{
		"routing": map[string]interface{}{
			"slack_channel_ids":     []interface{}{"C123", "C456"},
			"github_repos":          []interface{}{"acme/api"},
			"pagerduty_service_ids": []interface{}{},
			"unknown_key":           []interface{}{"ignored"},
		},
	}
	got := ExtractRoutingKeys(config)
	assert.ElementsMatch(t, []string{"C123", "C456"}, got["slack"])
	assert.Equal(t, []string{"acme/api"}, got["github"])
	assert.NotContains(t, got, "pagerduty")
	assert.Len(t, got, 2)
}

func TestExtractRoutingKeysNoRoutingSection(t *testing.T) {
	got := ExtractRoutingKeys(map[string]interface{}{"team_name": "x"})
	assert.Empty(t, got)
}

func TestConflictCode(t *testing.T) {
	assert.Equal(t, "slack_channel_already_mapped", ConflictCode("slack"))
	assert.Equal(t, "gchat_space_already_mapped", ConflictCode("gchat"))
	assert.Equal(t, "routing_key_already_mapped", ConflictCode("carrier-pigeon"))
}
