package webhook

import (
	"fmt"

	"github.com/incidentfox/incidentfox/pkg/output"
)

func str(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func obj(m map[string]interface{}, key string) map[string]interface{} {
	o, _ := m[key].(map[string]interface{})
	return o
}

// ParseSlack normalizes a Slack Events API callback. Returns nil for event
// types that do not trigger a run (edits, bot echoes).
func ParseSlack(payload map[string]interface{}) *Event {
	event := obj(payload, "event")
	if event == nil {
		return nil
	}
	eventType := str(event, "type")
	if eventType != "app_mention" && eventType != "message" {
		return nil
	}
	// Ignore our own messages and edits.
	if str(event, "bot_id") != "" || str(event, "subtype") != "" {
		return nil
	}
	channel := str(event, "channel")
	threadTS := str(event, "thread_ts")
	if threadTS == "" {
		threadTS = str(event, "ts")
	}
	return &Event{
		Vendor:        "slack",
		EventID:       str(payload, "event_id"),
		RoutingSource: "slack",
		RoutingKey:    channel,
		Prompt:        str(event, "text"),
		Trigger: output.Trigger{
			Source:    "slack",
			ChannelID: channel,
			ThreadTS:  threadTS,
		},
		Payload: payload,
	}
}

// ParseGitHub normalizes issue and PR comment events. deliveryID is the
// X-GitHub-Delivery header.
func ParseGitHub(deliveryID, eventName string, payload map[string]interface{}) *Event {
	repo := str(obj(payload, "repository"), "full_name")
	if repo == "" {
		return nil
	}

	var number int
	var body string
	switch eventName {
	case "issue_comment":
		if str(payload, "action") != "created" {
			return nil
		}
		issue := obj(payload, "issue")
		if n, ok := issue["number"].(float64); ok {
			number = int(n)
		}
		body = str(obj(payload, "comment"), "body")
	case "issues":
		if str(payload, "action") != "opened" {
			return nil
		}
		issue := obj(payload, "issue")
		if n, ok := issue["number"].(float64); ok {
			number = int(n)
		}
		body = str(issue, "title") + "\n\n" + str(issue, "body")
	default:
		return nil
	}
	if number == 0 {
		return nil
	}
	return &Event{
		Vendor:        "github",
		EventID:       deliveryID,
		RoutingSource: "github",
		RoutingKey:    repo,
		Prompt:        body,
		Trigger: output.Trigger{
			Source:      "github",
			Repo:        repo,
			IssueNumber: number,
		},
		Payload: payload,
	}
}

// ParsePagerDuty normalizes a V3 webhook event (incident.triggered and kin).
func ParsePagerDuty(payload map[string]interface{}) *Event {
	event := obj(payload, "event")
	if event == nil {
		return nil
	}
	data := obj(event, "data")
	incidentID := str(data, "id")
	serviceID := str(obj(data, "service"), "id")
	if incidentID == "" || serviceID == "" {
		return nil
	}
	return &Event{
		Vendor:        "pagerduty",
		EventID:       str(event, "id"),
		RoutingSource: "pagerduty",
		RoutingKey:    serviceID,
		Prompt: fmt.Sprintf("PagerDuty incident %s: %s",
			str(data, "number"), str(data, "title")),
		Trigger: output.Trigger{
			Source:     "pagerduty",
			IncidentID: incidentID,
		},
		Payload: payload,
	}
}

// ParseIncidentIO normalizes an incident.io webhook.
func ParseIncidentIO(payload map[string]interface{}) *Event {
	incident := obj(payload, "incident")
	if incident == nil {
		return nil
	}
	incidentID := str(incident, "id")
	teamID := str(obj(incident, "team"), "id")
	if incidentID == "" {
		return nil
	}
	return &Event{
		Vendor:        "incidentio",
		EventID:       str(payload, "id"),
		RoutingSource: "incidentio",
		RoutingKey:    teamID,
		Prompt:        fmt.Sprintf("Incident %s: %s", str(incident, "reference"), str(incident, "name")),
		Trigger: output.Trigger{
			Source:     "incidentio",
			IncidentID: incidentID,
		},
		Payload: payload,
	}
}

// ParseGoogleChat normalizes a Chat app event; the space name routes.
func ParseGoogleChat(payload map[string]interface{}) *Event {
	space := str(obj(payload, "space"), "name")
	if space == "" {
		return nil
	}
	message := obj(payload, "message")
	return &Event{
		Vendor:        "google-chat",
		EventID:       str(payload, "eventTime"),
		RoutingSource: "gchat",
		RoutingKey:    space,
		Prompt:        str(message, "text"),
		Trigger:       output.Trigger{Source: "gchat"},
		Payload:       payload,
	}
}

// ParseTeams normalizes a Bot Framework activity; the conversation routes.
func ParseTeams(payload map[string]interface{}) *Event {
	conversation := str(obj(payload, "conversation"), "id")
	if conversation == "" {
		return nil
	}
	return &Event{
		Vendor:        "teams",
		EventID:       str(payload, "id"),
		RoutingSource: "teams",
		RoutingKey:    conversation,
		Prompt:        str(payload, "text"),
		Trigger:       output.Trigger{Source: "teams"},
		Payload:       payload,
	}
}

// ParseGeneric wraps vendors whose payloads are handed to the agent whole
// (blameless, firehydrant, circleback, recall, vercel log drains). They route
// by a caller-supplied key, typically from the URL or a header.
func ParseGeneric(vendor, eventID, routingSource, routingKey, prompt string, payload map[string]interface{}) *Event {
	return &Event{
		Vendor:        vendor,
		EventID:       eventID,
		RoutingSource: routingSource,
		RoutingKey:    routingKey,
		Prompt:        prompt,
		Trigger:       output.Trigger{Source: vendor},
		Payload:       payload,
	}
}
