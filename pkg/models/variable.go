// Package models holds the wire/DTO shapes exchanged at the RPC boundary and
// between engine components. Durable entities themselves live in the
// generated ent client (see ent/schema); these types wrap and request them.
package models

import "fmt"

// ValueType is the declared type discriminant for a process Variable.
type ValueType string

const (
	ValueTypeString  ValueType = "string"
	ValueTypeInteger ValueType = "integer"
	ValueTypeFloat   ValueType = "float"
	ValueTypeBoolean ValueType = "boolean"
	ValueTypeJSON    ValueType = "json"
)

// VariableValue is a tagged variant: {type, value}. It round-trips through
// JSON for both the durable store's value_data column and the fast store's
// "{scope}:{name}" hash entries.
type VariableValue struct {
	Type  ValueType `json:"type"`
	Value any       `json:"value"`
}

// Coerce validates that Value is consistent with Type, converting numeric
// JSON decode artifacts (float64 from encoding/json) into the declared type.
// It never performs silent cross-type coercion — a boolean written as true
// must read back as boolean true, never as "true".
func (v VariableValue) Coerce() (VariableValue, error) {
	switch v.Type {
	case ValueTypeString:
		if _, ok := v.Value.(string); !ok {
			return v, fmt.Errorf("variable declared string but got %T", v.Value)
		}
	case ValueTypeBoolean:
		if _, ok := v.Value.(bool); !ok {
			return v, fmt.Errorf("variable declared boolean but got %T", v.Value)
		}
	case ValueTypeInteger:
		switch n := v.Value.(type) {
		case int:
			return v, nil
		case int64:
			return v, nil
		case float64:
			if n != float64(int64(n)) {
				return v, fmt.Errorf("variable declared integer but got non-integral float %v", n)
			}
			v.Value = int64(n)
		default:
			return v, fmt.Errorf("variable declared integer but got %T", v.Value)
		}
	case ValueTypeFloat:
		switch n := v.Value.(type) {
		case float64:
			return v, nil
		case int:
			v.Value = float64(n)
		case int64:
			v.Value = float64(n)
		default:
			return v, fmt.Errorf("variable declared float but got %T", v.Value)
		}
	case ValueTypeJSON:
		// any shape permitted
	default:
		return v, fmt.Errorf("unknown variable type %q", v.Type)
	}
	return v, nil
}

// ScopedName renders the fast-store hash field for a variable: "{scope}:{name}",
// or bare "{name}" when scope is global.
func ScopedName(scopeID, name string) string {
	if scopeID == "" {
		return name
	}
	return scopeID + ":" + name
}
