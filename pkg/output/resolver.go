// Package output decides where agent results are delivered. Resolution is a
// pure function of the trigger, the effective config, and an optional
// explicit override.
package output

// Destination kinds.
const (
	KindSlack      = "slack"
	KindGitHub     = "github"
	KindPagerDuty  = "pagerduty"
	KindIncidentIO = "incidentio"
)

// Destination is one delivery target.
type Destination struct {
	Kind string `json:"kind"`
	// Slack
	ChannelID string `json:"channel_id,omitempty"`
	ThreadTS  string `json:"thread_ts,omitempty"`
	BotToken  string `json:"-"`
	// GitHub
	Repo        string `json:"repo,omitempty"`
	IssueNumber int    `json:"issue_number,omitempty"`
	// PagerDuty / incident.io
	IncidentID string `json:"incident_id,omitempty"`
}

// Trigger carries the origin of a run, used for reply-in-place defaults.
type Trigger struct {
	Source string
	// Slack origin
	ChannelID string
	ThreadTS  string
	// GitHub origin
	Repo        string
	IssueNumber int
	// Incident origin
	IncidentID string
}

// Resolve computes the delivery destinations in priority order: an explicit
// override wins, then per-trigger overrides from config, then built-in
// per-source defaults (reply where the trigger came from), then configured
// default destinations, then the legacy notifications channel. Returns an
// empty slice when nothing applies.
func Resolve(trigger Trigger, effective map[string]interface{}, explicit []Destination) []Destination {
	if len(explicit) > 0 {
		return enrich(explicit, effective)
	}

	outputCfg, _ := effective["output_config"].(map[string]interface{})

	if dests := fromTriggerOverride(trigger, outputCfg); dests != nil {
		return enrich(dests, effective)
	}
	if dests := builtinDefault(trigger); dests != nil {
		return enrich(dests, effective)
	}
	if dests := fromDefaultDestinations(outputCfg); dests != nil {
		return enrich(dests, effective)
	}
	if dests := fromLegacyNotifications(effective); dests != nil {
		return enrich(dests, effective)
	}
	return []Destination{}
}

// fromTriggerOverride applies output_config.trigger_overrides.<source>:
// reply_in_thread (slack), comment_on_pr (github), or use_default to skip
// the built-in and fall through to default destinations.
func fromTriggerOverride(trigger Trigger, outputCfg map[string]interface{}) []Destination {
	overrides, _ := outputCfg["trigger_overrides"].(map[string]interface{})
	mode, _ := overrides[trigger.Source].(string)
	switch mode {
	case "reply_in_thread":
		if trigger.ChannelID != "" {
			return []Destination{{Kind: KindSlack, ChannelID: trigger.ChannelID, ThreadTS: trigger.ThreadTS}}
		}
	case "comment_on_pr":
		if trigger.Repo != "" && trigger.IssueNumber > 0 {
			return []Destination{{Kind: KindGitHub, Repo: trigger.Repo, IssueNumber: trigger.IssueNumber}}
		}
	case "use_default":
		return fromDefaultDestinations(outputCfg)
	}
	return nil
}

// builtinDefault replies where the trigger came from.
func builtinDefault(trigger Trigger) []Destination {
	switch trigger.Source {
	case "slack":
		if trigger.ChannelID != "" {
			return []Destination{{Kind: KindSlack, ChannelID: trigger.ChannelID, ThreadTS: trigger.ThreadTS}}
		}
	case "github":
		if trigger.Repo != "" && trigger.IssueNumber > 0 {
			return []Destination{{Kind: KindGitHub, Repo: trigger.Repo, IssueNumber: trigger.IssueNumber}}
		}
	case "pagerduty":
		if trigger.IncidentID != "" {
			return []Destination{{Kind: KindPagerDuty, IncidentID: trigger.IncidentID}}
		}
	case "incidentio":
		if trigger.IncidentID != "" {
			return []Destination{{Kind: KindIncidentIO, IncidentID: trigger.IncidentID}}
		}
	}
	return nil
}

func fromDefaultDestinations(outputCfg map[string]interface{}) []Destination {
	raw, _ := outputCfg["default_destinations"].([]interface{})
	var dests []Destination
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		d := Destination{}
		d.Kind, _ = m["kind"].(string)
		d.ChannelID, _ = m["channel_id"].(string)
		d.Repo, _ = m["repo"].(string)
		d.IncidentID, _ = m["incident_id"].(string)
		if n, ok := m["issue_number"].(float64); ok {
			d.IssueNumber = int(n)
		}
		if d.Kind != "" {
			dests = append(dests, d)
		}
	}
	return dests
}

// fromLegacyNotifications honors the pre-structured config shape.
func fromLegacyNotifications(effective map[string]interface{}) []Destination {
	notifications, _ := effective["notifications"].(map[string]interface{})
	channel, _ := notifications["default_slack_channel_id"].(string)
	if channel == "" {
		return nil
	}
	return []Destination{{Kind: KindSlack, ChannelID: channel}}
}

// enrich attaches the tenant's Slack bot token to slack destinations so the
// fan-out layer can post without re-resolving config.
func enrich(dests []Destination, effective map[string]interface{}) []Destination {
	integrations, _ := effective["integrations"].(map[string]interface{})
	slackCfg, _ := integrations["slack"].(map[string]interface{})
	botToken, _ := slackCfg["bot_token"].(string)
	if botToken == "" {
		return dests
	}
	out := make([]Destination, len(dests))
	copy(out, dests)
	for i := range out {
		if out[i].Kind == KindSlack && out[i].BotToken == "" {
			out[i].BotToken = botToken
		}
	}
	return out
}
