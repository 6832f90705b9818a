package nodestore

// routingConfigKeys maps the recognized routing.* list keys to their source.
var routingConfigKeys = map[string]string{
	"slack_channel_ids":     "slack",
	"github_repos":          "github",
	"pagerduty_service_ids": "pagerduty",
	"incidentio_team_ids":   "incidentio",
	"teams_channel_ids":     "teams",
	"gchat_space_ids":       "gchat",
}

// conflictCodes are the per-source reason codes surfaced on a second claim.
var conflictCodes = map[string]string{
	"slack":      "slack_channel_already_mapped",
	"github":     "github_repo_already_mapped",
	"pagerduty":  "pagerduty_service_already_mapped",
	"incidentio": "incidentio_team_already_mapped",
	"teams":      "teams_channel_already_mapped",
	"gchat":      "gchat_space_already_mapped",
}

// ConflictCode returns the reason code for a routing conflict on source.
func ConflictCode(source string) string {
	if code, ok := conflictCodes[source]; ok {
		return code
	}
	return "routing_key_already_mapped"
}

// ExtractRoutingKeys pulls the declared external routing keys out of a config
// document, keyed by source. Unknown keys under routing are ignored.
func ExtractRoutingKeys(config map[string]interface{}) map[string][]string {
	out := make(map[string][]string)
	routing, ok := config["routing"].(map[string]interface{})
	if !ok {
		return out
	}
	for cfgKey, source := range routingConfigKeys {
		list, ok := routing[cfgKey].([]interface{})
		if !ok {
			continue
		}
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				out[source] = append(out[source], s)
			}
		}
	}
	return out
}
