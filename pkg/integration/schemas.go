package integration

// builtinSchemas is the seeded catalog. Secret-typed fields are encrypted at
// rest by the config write path and decrypted only by the credential proxy.
var builtinSchemas = []Schema{
	{
		ID:   "slack",
		Name: "Slack",
		Fields: []Field{
			{Name: "bot_token", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "signing_secret", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "app_token", Type: TypeSecret, Level: LevelOrg},
			{Name: "default_channel", Type: TypeString, Level: LevelTeam},
		},
	},
	{
		ID:   "github",
		Name: "GitHub",
		Fields: []Field{
			{Name: "token", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "webhook_secret", Type: TypeSecret, Level: LevelOrg},
			{Name: "api_host", Type: TypeString, Level: LevelOrg, Default: "https://api.github.com"},
		},
	},
	{
		ID:   "pagerduty",
		Name: "PagerDuty",
		Fields: []Field{
			{Name: "api_key", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "webhook_secret", Type: TypeSecret, Level: LevelOrg},
			{Name: "from_email", Type: TypeString, Level: LevelTeam},
		},
	},
	{
		ID:   "incidentio",
		Name: "incident.io",
		Fields: []Field{
			{Name: "api_key", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "webhook_secret", Type: TypeSecret, Level: LevelOrg},
		},
	},
	{
		ID:   "grafana",
		Name: "Grafana",
		Fields: []Field{
			{Name: "api_key", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "domain", Type: TypeString, Required: true, Level: LevelOrg},
		},
	},
	{
		ID:   "datadog",
		Name: "Datadog",
		Fields: []Field{
			{Name: "api_key", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "app_key", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "site", Type: TypeString, Level: LevelOrg, Default: "datadoghq.com"},
		},
	},
	{
		ID:   "loki",
		Name: "Grafana Loki",
		Fields: []Field{
			{Name: "domain", Type: TypeString, Required: true, Level: LevelOrg},
			{Name: "username", Type: TypeString, Level: LevelOrg},
			{Name: "password", Type: TypeSecret, Level: LevelOrg},
			{Name: "tenant_id", Type: TypeString, Level: LevelTeam},
		},
	},
	{
		ID:   "elasticsearch",
		Name: "Elasticsearch",
		Fields: []Field{
			{Name: "domain", Type: TypeString, Required: true, Level: LevelOrg},
			{Name: "api_key_id", Type: TypeString, Level: LevelOrg},
			{Name: "api_key", Type: TypeSecret, Required: true, Level: LevelOrg},
		},
	},
	{
		ID:   "splunk",
		Name: "Splunk",
		Fields: []Field{
			{Name: "domain", Type: TypeString, Required: true, Level: LevelOrg},
			{Name: "token", Type: TypeSecret, Required: true, Level: LevelOrg},
		},
	},
	{
		ID:   "coralogix",
		Name: "Coralogix",
		Fields: []Field{
			{Name: "api_key", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "domain", Type: TypeString, Required: true, Level: LevelOrg},
		},
	},
	{
		ID:   "victorialogs",
		Name: "VictoriaLogs",
		Fields: []Field{
			{Name: "domain", Type: TypeString, Required: true, Level: LevelOrg},
			{Name: "username", Type: TypeString, Level: LevelOrg},
			{Name: "password", Type: TypeSecret, Level: LevelOrg},
		},
	},
	{
		ID:   "jaeger",
		Name: "Jaeger",
		Fields: []Field{
			{Name: "domain", Type: TypeString, Required: true, Level: LevelOrg},
		},
	},
	{
		ID:   "snowflake",
		Name: "Snowflake",
		Fields: []Field{
			{Name: "account", Type: TypeString, Required: true, Level: LevelOrg},
			{Name: "username", Type: TypeString, Required: true, Level: LevelOrg},
			{Name: "password", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "warehouse", Type: TypeString, Required: true, Level: LevelTeam},
			{Name: "database", Type: TypeString, Level: LevelTeam},
		},
	},
	{
		ID:   "bigquery",
		Name: "BigQuery",
		Fields: []Field{
			{Name: "project_id", Type: TypeString, Required: true, Level: LevelOrg},
			{Name: "service_account_json", Type: TypeSecret, Required: true, Level: LevelOrg},
		},
	},
	{
		ID:   "postgresql",
		Name: "PostgreSQL",
		Fields: []Field{
			{Name: "host", Type: TypeString, Required: true, Level: LevelTeam},
			{Name: "port", Type: TypeInteger, Level: LevelTeam, Default: 5432},
			{Name: "database", Type: TypeString, Required: true, Level: LevelTeam},
			{Name: "username", Type: TypeString, Required: true, Level: LevelTeam},
			{Name: "password", Type: TypeSecret, Required: true, Level: LevelTeam},
		},
	},
	{
		ID:   "confluence",
		Name: "Confluence",
		Fields: []Field{
			{Name: "domain", Type: TypeString, Required: true, Level: LevelOrg},
			{Name: "email", Type: TypeString, Required: true, Level: LevelOrg},
			{Name: "api_token", Type: TypeSecret, Required: true, Level: LevelOrg},
		},
	},
	{
		ID:   "circleback",
		Name: "Circleback",
		Fields: []Field{
			{Name: "webhook_secret", Type: TypeSecret, Level: LevelOrg},
		},
	},
	{
		ID:   "anthropic",
		Name: "Anthropic",
		Fields: []Field{
			{Name: "api_key", Type: TypeSecret, Required: true, Level: LevelOrg},
		},
	},
	{
		ID:   "openai",
		Name: "OpenAI",
		Fields: []Field{
			{Name: "api_key", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "base_url", Type: TypeString, Level: LevelOrg, Default: "https://api.openai.com/v1"},
		},
	},
	{
		ID:   "gemini",
		Name: "Google Gemini",
		Fields: []Field{
			{Name: "api_key", Type: TypeSecret, Required: true, Level: LevelOrg},
		},
	},
	{
		ID:   "openrouter",
		Name: "OpenRouter",
		Fields: []Field{
			{Name: "api_key", Type: TypeSecret, Required: true, Level: LevelOrg},
		},
	},
	{
		ID:   "bedrock",
		Name: "AWS Bedrock",
		Fields: []Field{
			{Name: "access_key_id", Type: TypeString, Required: true, Level: LevelOrg},
			{Name: "secret_access_key", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "region", Type: TypeString, Required: true, Level: LevelOrg},
		},
	},
	{
		ID:   "azure_ai",
		Name: "Azure AI",
		Fields: []Field{
			{Name: "api_key", Type: TypeSecret, Required: true, Level: LevelOrg},
			{Name: "endpoint", Type: TypeString, Required: true, Level: LevelOrg},
		},
	},
}
