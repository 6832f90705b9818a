// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/incidentfox/incidentfox/ent/impersonationjti"
)

// ImpersonationJTI is the model entity for the ImpersonationJTI schema.
type ImpersonationJTI struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// TeamNodeID holds the value of the "team_node_id" field.
	TeamNodeID string `json:"team_node_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImpersonationJTI) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case impersonationjti.FieldID, impersonationjti.FieldOrgID, impersonationjti.FieldTeamNodeID:
			values[i] = new(sql.NullString)
		case impersonationjti.FieldCreatedAt, impersonationjti.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImpersonationJTI fields.
func (_m *ImpersonationJTI) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case impersonationjti.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case impersonationjti.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case impersonationjti.FieldTeamNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team_node_id", values[i])
			} else if value.Valid {
				_m.TeamNodeID = value.String
			}
		case impersonationjti.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case impersonationjti.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImpersonationJTI.
// This includes values selected through modifiers, order, etc.
func (_m *ImpersonationJTI) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ImpersonationJTI.
// Note that you need to call ImpersonationJTI.Unwrap() before calling this method if this ImpersonationJTI
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImpersonationJTI) Update() *ImpersonationJTIUpdateOne {
	return NewImpersonationJTIClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImpersonationJTI entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImpersonationJTI) Unwrap() *ImpersonationJTI {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImpersonationJTI is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImpersonationJTI) String() string {
	var builder strings.Builder
	builder.WriteString("ImpersonationJTI(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("team_node_id=")
	builder.WriteString(_m.TeamNodeID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ImpersonationJTIs is a parsable slice of ImpersonationJTI.
type ImpersonationJTIs []*ImpersonationJTI
