// Code generated by ent, DO NOT EDIT.

package routingkey

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the routingkey type in the database.
	Label = "routing_key"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldTeamNodeID holds the string denoting the team_node_id field in the database.
	FieldTeamNodeID = "team_node_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the routingkey in the database.
	Table = "routing_keys"
)

// Columns holds all SQL columns for routingkey fields.
var Columns = []string{
	FieldID,
	FieldSource,
	FieldKey,
	FieldOrgID,
	FieldTeamNodeID,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourceSlack      Source = "slack"
	SourceGithub     Source = "github"
	SourcePagerduty  Source = "pagerduty"
	SourceIncidentio Source = "incidentio"
	SourceTeams      Source = "teams"
	SourceGchat      Source = "gchat"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceSlack, SourceGithub, SourcePagerduty, SourceIncidentio, SourceTeams, SourceGchat:
		return nil
	default:
		return fmt.Errorf("routingkey: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the RoutingKey queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByTeamNodeID orders the results by the team_node_id field.
func ByTeamNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamNodeID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
