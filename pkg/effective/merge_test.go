package effective

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDictUnion(t *testing.T) {
	org := map[string]interface{}{
		"knowledge_source": map[string]interface{}{
			"grafana": []interface{}{"org"},
		},
	}
	team := map[string]interface{}{
		"knowledge_source": map[string]interface{}{
			"confluence": []interface{}{"team"},
		},
	}

	out := Merge(org, team)
	ks := out["knowledge_source"].(map[string]interface{})
	assert.Equal(t, []interface{}{"org"}, ks["grafana"])
	assert.Equal(t, []interface{}{"team"}, ks["confluence"])
}

func TestMergeScalarRightWins(t *testing.T) {
	out := Merge(
		map[string]interface{}{"max_turns": float64(30), "model": "sonnet"},
		map[string]interface{}{"max_turns": float64(10)},
	)
	assert.Equal(t, float64(10), out["max_turns"])
	assert.Equal(t, "sonnet", out["model"])
}

func TestMergeListReplaces(t *testing.T) {
	out := Merge(
		map[string]interface{}{"channels": []interface{}{"C1", "C2"}},
		map[string]interface{}{"channels": []interface{}{"C3"}},
	)
	assert.Equal(t, []interface{}{"C3"}, out["channels"])
}

func TestMergeNullDeletes(t *testing.T) {
	out := Merge(
		map[string]interface{}{
			"notifications": map[string]interface{}{"default_slack_channel_id": "C1"},
			"routing":       map[string]interface{}{"a": "b"},
		},
		map[string]interface{}{
			"notifications": nil,
			"routing":       map[string]interface{}{"a": nil},
		},
	)
	_, ok := out["notifications"]
	assert.False(t, ok, "null overlay must delete the key")
	assert.Empty(t, out["routing"].(map[string]interface{}))
}

func TestMergeIntegrationOverride(t *testing.T) {
	// Inherited integrations.<id> merged with a team override yields a union
	// with per-field overrides.
	org := map[string]interface{}{
		"integrations": map[string]interface{}{
			"datadog": map[string]interface{}{
				"site":    "datadoghq.com",
				"api_key": "org-key",
			},
		},
	}
	team := map[string]interface{}{
		"integrations": map[string]interface{}{
			"datadog": map[string]interface{}{
				"api_key": "team-key",
			},
		},
	}

	out := Merge(org, team)
	dd := out["integrations"].(map[string]interface{})["datadog"].(map[string]interface{})
	assert.Equal(t, "team-key", dd["api_key"])
	assert.Equal(t, "datadoghq.com", dd["site"])
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := map[string]interface{}{"a": map[string]interface{}{"x": 1}}
	overlay := map[string]interface{}{"a": map[string]interface{}{"y": 2}}
	_ = Merge(base, overlay)
	assert.NotContains(t, base["a"].(map[string]interface{}), "y")
}

func TestMergeChainAssociative(t *testing.T) {
	a := map[string]interface{}{"k": map[string]interface{}{"x": "a"}}
	b := map[string]interface{}{"k": map[string]interface{}{"y": "b"}}
	c := map[string]interface{}{"k": map[string]interface{}{"x": "c"}}

	left := Merge(Merge(a, b), c)
	right := Merge(a, Merge(b, c))
	assert.Equal(t, left, right)

	folded := MergeChain([]map[string]interface{}{a, b, c})
	assert.Equal(t, left, folded)
}

type staticLoader struct {
	chains map[string][]map[string]interface{}
	calls  int
}

func (l *staticLoader) AncestorConfigs(_ context.Context, orgID, nodeID string) ([]map[string]interface{}, error) {
	l.calls++
	return l.chains[orgID+"/"+nodeID], nil
}

func TestResolverCachesAndInvalidates(t *testing.T) {
	loader := &staticLoader{chains: map[string][]map[string]interface{}{
		"org1/teamA": {
			{"knowledge_source": map[string]interface{}{"grafana": []interface{}{"org"}}},
			{"knowledge_source": map[string]interface{}{"confluence": []interface{}{"team"}}},
		},
	}}
	r := NewResolver(loader)

	first, err := r.Resolve(context.Background(), "org1", "teamA")
	require.NoError(t, err)
	ks := first["knowledge_source"].(map[string]interface{})
	assert.Equal(t, []interface{}{"org"}, ks["grafana"])
	assert.Equal(t, []interface{}{"team"}, ks["confluence"])

	_, err = r.Resolve(context.Background(), "org1", "teamA")
	require.NoError(t, err)
	assert.Equal(t, 1, loader.calls, "second resolve must hit the cache")

	r.InvalidateOrg("org1")
	_, err = r.Resolve(context.Background(), "org1", "teamA")
	require.NoError(t, err)
	assert.Equal(t, 2, loader.calls, "invalidation must force a reload")
}
