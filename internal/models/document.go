package models

import "encoding/json"

// Document is an opaque JSON value: an untyped tree of null, bool, number,
// string, array, and object nodes. It is validated only for syntactic
// well-formedness, never for schema.
type Document struct {
	Value any
}

// ParseDocument parses raw JSON text into a Document. Callers that tolerate
// corrupted stored text must apply their default explicitly at the call
// site rather than swallowing the error here.
func ParseDocument(raw string) (Document, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return Document{}, err
	}
	return Document{Value: v}, nil
}

// MarshalJSON serializes the underlying value.
func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value)
}

// UnmarshalJSON parses into the underlying value.
func (d *Document) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &d.Value)
}
