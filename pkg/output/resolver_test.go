package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func effectiveWith(outputCfg map[string]interface{}) map[string]interface{} {
	eff := map[string]interface{}{
		"integrations": map[string]interface{}{
			"slack": map[string]interface{}{"bot_token": "xoxb-test"},
		},
	}
	if outputCfg != nil {
		eff["output_config"] = outputCfg
	}
	return eff
}

func TestResolveExplicitOverrideWins(t *testing.T) {
	explicit := []Destination{{Kind: KindSlack, ChannelID: "C-explicit"}}
	got := Resolve(Trigger{Source: "slack", ChannelID: "C-origin"}, effectiveWith(map[string]interface{}{
		"default_destinations": []interface{}{
			map[string]interface{}{"kind": "slack", "channel_id": "C-default"},
		},
	}), explicit)
	require.Len(t, got, 1)
	assert.Equal(t, "C-explicit", got[0].ChannelID)
	assert.Equal(t, "xoxb-test", got[0].BotToken)
}

func TestResolveBuiltinDefaults(t *testing.T) {
	t.Run("slack replies in origin thread", func(t *testing.T) {
		got := Resolve(Trigger{Source: "slack", ChannelID: "C1", ThreadTS: "123.456"}, effectiveWith(nil), nil)
		require.Len(t, got, 1)
		assert.Equal(t, KindSlack, got[0].Kind)
		assert.Equal(t, "C1", got[0].ChannelID)
		assert.Equal(t, "123.456", got[0].ThreadTS)
	})

	t.Run("github comments on origin PR", func(t *testing.T) {
		got := Resolve(Trigger{Source: "github", Repo: "acme/api", IssueNumber: 42}, effectiveWith(nil), nil)
		require.Len(t, got, 1)
		assert.Equal(t, KindGitHub, got[0].Kind)
		assert.Equal(t, "acme/api", got[0].Repo)
		assert.Equal(t, 42, got[0].IssueNumber)
	})

	t.Run("pagerduty notes origin incident", func(t *testing.T) {
		got := Resolve(Trigger{Source: "pagerduty", IncidentID: "P123"}, effectiveWith(nil), nil)
		require.Len(t, got, 1)
		assert.Equal(t, KindPagerDuty, got[0].Kind)
	})
}

func TestResolveTriggerOverrides(t *testing.T) {
	t.Run("use_default skips builtin", func(t *testing.T) {
		eff := effectiveWith(map[string]interface{}{
			"trigger_overrides": map[string]interface{}{"slack": "use_default"},
			"default_destinations": []interface{}{
				map[string]interface{}{"kind": "slack", "channel_id": "C-default"},
			},
		})
		got := Resolve(Trigger{Source: "slack", ChannelID: "C-origin"}, eff, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "C-default", got[0].ChannelID)
	})

	t.Run("comment_on_pr for github", func(t *testing.T) {
		eff := effectiveWith(map[string]interface{}{
			"trigger_overrides": map[string]interface{}{"github": "comment_on_pr"},
		})
		got := Resolve(Trigger{Source: "github", Repo: "acme/api", IssueNumber: 7}, eff, nil)
		require.Len(t, got, 1)
		assert.Equal(t, KindGitHub, got[0].Kind)
	})
}

func TestResolveDefaultDestinations(t *testing.T) {
	eff := effectiveWith(map[string]interface{}{
		"default_destinations": []interface{}{
			map[string]interface{}{"kind": "slack", "channel_id": "C-default"},
			map[string]interface{}{"kind": "github", "repo": "acme/runbooks", "issue_number": float64(1)},
		},
	})
	// Scheduled runs have no reply-to origin.
	got := Resolve(Trigger{Source: "schedule"}, eff, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "C-default", got[0].ChannelID)
	assert.Equal(t, "xoxb-test", got[0].BotToken)
	assert.Equal(t, "acme/runbooks", got[1].Repo)
	assert.Equal(t, 1, got[1].IssueNumber)
}

func TestResolveLegacyNotificationsFallback(t *testing.T) {
	eff := map[string]interface{}{
		"notifications": map[string]interface{}{"default_slack_channel_id": "C-legacy"},
	}
	got := Resolve(Trigger{Source: "schedule"}, eff, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "C-legacy", got[0].ChannelID)
	assert.Empty(t, got[0].BotToken)
}

func TestResolveStructuredBeatsLegacy(t *testing.T) {
	eff := map[string]interface{}{
		"output_config": map[string]interface{}{
			"default_destinations": []interface{}{
				map[string]interface{}{"kind": "slack", "channel_id": "C-structured"},
			},
		},
		"notifications": map[string]interface{}{"default_slack_channel_id": "C-legacy"},
	}
	got := Resolve(Trigger{Source: "schedule"}, eff, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "C-structured", got[0].ChannelID)
}

func TestResolveNothingApplies(t *testing.T) {
	got := Resolve(Trigger{Source: "schedule"}, map[string]interface{}{}, nil)
	assert.Empty(t, got)
}
