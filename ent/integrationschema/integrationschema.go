// Code generated by ent, DO NOT EDIT.

package integrationschema

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the integrationschema type in the database.
	Label = "integration_schema"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// Table holds the table name of the integrationschema in the database.
	Table = "integration_schemas"
)

// Columns holds all SQL columns for integrationschema fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldCategory,
	FieldFields,
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

// OrderOption defines the ordering options for the IntegrationSchema queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}
