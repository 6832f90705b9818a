// Package integration defines the catalog of supported integrations and
// validates per-tenant integration config blocks against their schemas.
package integration

import (
	"fmt"
	"sort"
)

// Field types.
const (
	TypeString   = "string"
	TypeInteger  = "integer"
	TypeSecret   = "secret"
	TypeReadonly = "readonly"
)

// Field levels control where a field may be set in the node tree.
const (
	LevelOrg  = "org"
	LevelTeam = "team"
)

// Field describes one config field of an integration schema.
type Field struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Required bool        `json:"required"`
	Level    string      `json:"level,omitempty"`
	Default  interface{} `json:"default,omitempty"`
}

// Schema describes one integration.
type Schema struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Warning is a non-fatal validation finding; unknown fields are retained in
// the config but reported.
type Warning struct {
	Integration string `json:"integration"`
	Field       string `json:"field"`
	Message     string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s.%s: %s", w.Integration, w.Field, w.Message)
}

// Registry holds the seeded integration schemas.
type Registry struct {
	schemas map[string]Schema
}

// NewRegistry returns a registry seeded with the built-in schemas.
func NewRegistry() *Registry {
	r := &Registry{schemas: make(map[string]Schema)}
	for _, s := range builtinSchemas {
		r.schemas[s.ID] = s
	}
	return r
}

// Get returns the schema for id.
func (r *Registry) Get(id string) (Schema, bool) {
	s, ok := r.schemas[id]
	return s, ok
}

// List returns all schemas sorted by id.
func (r *Registry) List() []Schema {
	out := make([]Schema, 0, len(r.schemas))
	for _, s := range r.schemas {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Validate checks the integrations block of a config document. Unknown
// integrations and unknown fields produce warnings, never errors; the values
// are retained as written. Type mismatches on known fields are errors.
func (r *Registry) Validate(integrations map[string]interface{}) ([]Warning, error) {
	var warnings []Warning
	for id, raw := range integrations {
		schema, known := r.schemas[id]
		if !known {
			warnings = append(warnings, Warning{
				Integration: id,
				Message:     "unknown integration, retained as-is",
			})
			continue
		}
		block, ok := raw.(map[string]interface{})
		if !ok {
			return warnings, fmt.Errorf("integration %q: config must be an object", id)
		}
		fields := make(map[string]Field, len(schema.Fields))
		for _, f := range schema.Fields {
			fields[f.Name] = f
		}
		for name, value := range block {
			f, known := fields[name]
			if !known {
				warnings = append(warnings, Warning{
					Integration: id,
					Field:       name,
					Message:     "unknown field, retained as-is",
				})
				continue
			}
			if err := checkType(id, f, value); err != nil {
				return warnings, err
			}
		}
	}
	return warnings, nil
}

func checkType(integrationID string, f Field, value interface{}) error {
	if value == nil {
		return nil
	}
	switch f.Type {
	case TypeString, TypeSecret, TypeReadonly:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("integration %q field %q: expected string, got %T", integrationID, f.Name, value)
		}
	case TypeInteger:
		switch value.(type) {
		case int, int64, float64:
		default:
			return fmt.Errorf("integration %q field %q: expected integer, got %T", integrationID, f.Name, value)
		}
	}
	return nil
}

// MissingRequired lists required fields of id absent from the effective
// config. An unknown integration id reports no missing fields.
func (r *Registry) MissingRequired(effective map[string]interface{}, id string) []string {
	schema, ok := r.schemas[id]
	if !ok {
		return nil
	}
	block := GetIntegrationConfig(effective, id)
	var missing []string
	for _, f := range schema.Fields {
		if !f.Required {
			continue
		}
		v, present := block[f.Name]
		if !present || v == nil || v == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// GetIntegrationConfig extracts the config block for one integration from an
// effective config document. Returns an empty map when absent.
func GetIntegrationConfig(effective map[string]interface{}, id string) map[string]interface{} {
	integrations, ok := effective["integrations"].(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	block, ok := integrations[id].(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return block
}

// SecretFields returns the names of secret-typed fields for id.
func (r *Registry) SecretFields(id string) []string {
	schema, ok := r.schemas[id]
	if !ok {
		return nil
	}
	var names []string
	for _, f := range schema.Fields {
		if f.Type == TypeSecret {
			names = append(names, f.Name)
		}
	}
	return names
}
