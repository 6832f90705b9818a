// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/incidentfox/incidentfox/ent/integrationschema"
)

// IntegrationSchema is the model entity for the IntegrationSchema schema.
type IntegrationSchema struct {
	config `json:"-"`
	// ID of the ent.
	// Integration identifier, e.g. 'snowflake'
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// [{name, type, required, level, default?}]
	Fields       []map[string]interface{} `json:"fields,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IntegrationSchema) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case integrationschema.FieldFields:
			values[i] = new([]byte)
		case integrationschema.FieldID, integrationschema.FieldName, integrationschema.FieldCategory:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IntegrationSchema fields.
func (_m *IntegrationSchema) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case integrationschema.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case integrationschema.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case integrationschema.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case integrationschema.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IntegrationSchema.
// This includes values selected through modifiers, order, etc.
func (_m *IntegrationSchema) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IntegrationSchema.
// Note that you need to call IntegrationSchema.Unwrap() before calling this method if this IntegrationSchema
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IntegrationSchema) Update() *IntegrationSchemaUpdateOne {
	return NewIntegrationSchemaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IntegrationSchema entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IntegrationSchema) Unwrap() *IntegrationSchema {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IntegrationSchema is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IntegrationSchema) String() string {
	var builder strings.Builder
	builder.WriteString("IntegrationSchema(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteByte(')')
	return builder.String()
}

// IntegrationSchemas is a parsable slice of IntegrationSchema.
type IntegrationSchemas []*IntegrationSchema
