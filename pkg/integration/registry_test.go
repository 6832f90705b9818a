package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySeeded(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{
		"slack", "github", "pagerduty", "incidentio", "grafana", "datadog",
		"loki", "elasticsearch", "splunk", "coralogix", "victorialogs",
		"jaeger", "snowflake", "bigquery", "postgresql", "confluence",
		"circleback", "anthropic", "openai", "gemini", "openrouter",
		"bedrock", "azure_ai",
	} {
		_, ok := r.Get(id)
		assert.True(t, ok, "missing schema %s", id)
	}
	assert.GreaterOrEqual(t, len(r.List()), 23)
}

func TestValidateUnknownFieldWarnsButRetains(t *testing.T) {
	r := NewRegistry()
	warnings, err := r.Validate(map[string]interface{}{
		"slack": map[string]interface{}{
			"bot_token":    "xoxb-1",
			"custom_field": "kept",
		},
	})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "slack", warnings[0].Integration)
	assert.Equal(t, "custom_field", warnings[0].Field)
}

func TestValidateUnknownIntegrationWarns(t *testing.T) {
	r := NewRegistry()
	warnings, err := r.Validate(map[string]interface{}{
		"homegrown": map[string]interface{}{"url": "https://x"},
	})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "homegrown", warnings[0].Integration)
}

func TestValidateTypeMismatch(t *testing.T) {
	r := NewRegistry()
	_, err := r.Validate(map[string]interface{}{
		"postgresql": map[string]interface{}{"port": "not-a-number"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidateIntegerAcceptsJSONNumber(t *testing.T) {
	r := NewRegistry()
	// JSON decoding produces float64 for numbers.
	_, err := r.Validate(map[string]interface{}{
		"postgresql": map[string]interface{}{"port": float64(5432)},
	})
	assert.NoError(t, err)
}

func TestMissingRequired(t *testing.T) {
	r := NewRegistry()

	t.Run("all present", func(t *testing.T) {
		effective := map[string]interface{}{
			"integrations": map[string]interface{}{
				"datadog": map[string]interface{}{
					"api_key": "enc:v1:a", "app_key": "enc:v1:b",
				},
			},
		}
		assert.Empty(t, r.MissingRequired(effective, "datadog"))
	})

	t.Run("absent block", func(t *testing.T) {
		missing := r.MissingRequired(map[string]interface{}{}, "datadog")
		assert.ElementsMatch(t, []string{"api_key", "app_key"}, missing)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		effective := map[string]interface{}{
			"integrations": map[string]interface{}{
				"grafana": map[string]interface{}{"api_key": "", "domain": "https://g"},
			},
		}
		assert.Equal(t, []string{"api_key"}, r.MissingRequired(effective, "grafana"))
	})

	t.Run("unconfigured snowflake", func(t *testing.T) {
		missing := r.MissingRequired(map[string]interface{}{}, "snowflake")
		assert.Equal(t, []string{"account", "username", "password", "warehouse"}, missing)
	})

	t.Run("unknown integration", func(t *testing.T) {
		assert.Nil(t, r.MissingRequired(map[string]interface{}{}, "homegrown"))
	})
}

func TestGetIntegrationConfig(t *testing.T) {
	effective := map[string]interface{}{
		"integrations": map[string]interface{}{
			"slack": map[string]interface{}{"bot_token": "x"},
		},
	}
	assert.Equal(t, map[string]interface{}{"bot_token": "x"}, GetIntegrationConfig(effective, "slack"))
	assert.Empty(t, GetIntegrationConfig(effective, "github"))
	assert.Empty(t, GetIntegrationConfig(map[string]interface{}{}, "slack"))
}

func TestSecretFields(t *testing.T) {
	r := NewRegistry()
	assert.ElementsMatch(t, []string{"bot_token", "signing_secret", "app_token"}, r.SecretFields("slack"))
	assert.ElementsMatch(t, []string{"secret_access_key"}, r.SecretFields("bedrock"))
	assert.Nil(t, r.SecretFields("homegrown"))
}
