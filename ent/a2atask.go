// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/incidentfox/incidentfox/ent/a2atask"
)

// A2ATask is the model entity for the A2ATask schema.
type A2ATask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status a2atask.Status `json:"status,omitempty"`
	// Message holds the value of the "message" field.
	Message map[string]interface{} `json:"message,omitempty"`
	// ResultMessage holds the value of the "result_message" field.
	ResultMessage map[string]interface{} `json:"result_message,omitempty"`
	// Artifacts holds the value of the "artifacts" field.
	Artifacts []map[string]interface{} `json:"artifacts,omitempty"`
	// History holds the value of the "history" field.
	History []map[string]interface{} `json:"history,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// TeamNodeID holds the value of the "team_node_id" field.
	TeamNodeID string `json:"team_node_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*A2ATask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case a2atask.FieldMessage, a2atask.FieldResultMessage, a2atask.FieldArtifacts, a2atask.FieldHistory:
			values[i] = new([]byte)
		case a2atask.FieldID, a2atask.FieldStatus, a2atask.FieldOrgID, a2atask.FieldTeamNodeID:
			values[i] = new(sql.NullString)
		case a2atask.FieldCreatedAt, a2atask.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the A2ATask fields.
func (_m *A2ATask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case a2atask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case a2atask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = a2atask.Status(value.String)
			}
		case a2atask.FieldMessage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Message); err != nil {
					return fmt.Errorf("unmarshal field message: %w", err)
				}
			}
		case a2atask.FieldResultMessage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_message", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultMessage); err != nil {
					return fmt.Errorf("unmarshal field result_message: %w", err)
				}
			}
		case a2atask.FieldArtifacts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field artifacts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Artifacts); err != nil {
					return fmt.Errorf("unmarshal field artifacts: %w", err)
				}
			}
		case a2atask.FieldHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.History); err != nil {
					return fmt.Errorf("unmarshal field history: %w", err)
				}
			}
		case a2atask.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case a2atask.FieldTeamNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team_node_id", values[i])
			} else if value.Valid {
				_m.TeamNodeID = value.String
			}
		case a2atask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case a2atask.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the A2ATask.
// This includes values selected through modifiers, order, etc.
func (_m *A2ATask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this A2ATask.
// Note that you need to call A2ATask.Unwrap() before calling this method if this A2ATask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *A2ATask) Update() *A2ATaskUpdateOne {
	return NewA2ATaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the A2ATask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *A2ATask) Unwrap() *A2ATask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: A2ATask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *A2ATask) String() string {
	var builder strings.Builder
	builder.WriteString("A2ATask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(fmt.Sprintf("%v", _m.Message))
	builder.WriteString(", ")
	builder.WriteString("result_message=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultMessage))
	builder.WriteString(", ")
	builder.WriteString("artifacts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Artifacts))
	builder.WriteString(", ")
	builder.WriteString("history=")
	builder.WriteString(fmt.Sprintf("%v", _m.History))
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("team_node_id=")
	builder.WriteString(_m.TeamNodeID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// A2ATasks is a parsable slice of A2ATask.
type A2ATasks []*A2ATask
