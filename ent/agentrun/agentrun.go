// Code generated by ent, DO NOT EDIT.

package agentrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentrun type in the database.
	Label = "agent_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldTeamNodeID holds the string denoting the team_node_id field in the database.
	FieldTeamNodeID = "team_node_id"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldTriggerSource holds the string denoting the trigger_source field in the database.
	FieldTriggerSource = "trigger_source"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldMaxTurns holds the string denoting the max_turns field in the database.
	FieldMaxTurns = "max_turns"
	// FieldEventsCount holds the string denoting the events_count field in the database.
	FieldEventsCount = "events_count"
	// FieldOutputRef holds the string denoting the output_ref field in the database.
	FieldOutputRef = "output_ref"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the agentrun in the database.
	Table = "agent_runs"
)

// Columns holds all SQL columns for agentrun fields.
var Columns = []string{
	FieldID,
	FieldCorrelationID,
	FieldOrgID,
	FieldTeamNodeID,
	FieldAgentName,
	FieldTriggerSource,
	FieldStatus,
	FieldStartedAt,
	FieldEndedAt,
	FieldMaxTurns,
	FieldEventsCount,
	FieldOutputRef,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultMaxTurns holds the default value on creation for the "max_turns" field.
	DefaultMaxTurns int
	// DefaultEventsCount holds the default value on creation for the "events_count" field.
	DefaultEventsCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued      Status = "queued"
	StatusRunning     Status = "running"
	StatusComplete    Status = "complete"
	StatusError       Status = "error"
	StatusInterrupted Status = "interrupted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusComplete, StatusError, StatusInterrupted:
		return nil
	default:
		return fmt.Errorf("agentrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByTeamNodeID orders the results by the team_node_id field.
func ByTeamNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamNodeID, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByTriggerSource orders the results by the trigger_source field.
func ByTriggerSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerSource, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByMaxTurns orders the results by the max_turns field.
func ByMaxTurns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTurns, opts...).ToFunc()
}

// ByEventsCount orders the results by the events_count field.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventsCount, opts...).ToFunc()
}

// ByOutputRef orders the results by the output_ref field.
func ByOutputRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputRef, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
