package entity

import (
	"encoding/json"
	"fmt"
)

// Record kind tags stored under the "record_type" key of every document.
const (
	RecordTypeClient  = "Client"
	RecordTypeAirline = "Airline"
	RecordTypeFlight  = "Flight"
)

// KeyRecordType is the document key carrying the record kind tag.
const KeyRecordType = "record_type"

// Document is the external key/value form of a record. It is the shape
// used for persistence (one JSON object per line), for display, and for
// the criteria mappings accepted by the find operations.
type Document map[string]interface{}

// Clone returns a shallow copy of the document.
func (d Document) Clone() Document {
	copied := make(Document, len(d))
	for key, value := range d {
		copied[key] = value
	}
	return copied
}

// String reads a string-valued key. It reports false when the key is
// absent or holds a non-string value.
func (d Document) String(key string) (string, bool) {
	value, ok := d[key].(string)
	return value, ok
}

// Int reads an integer-valued key. JSON decoding produces float64 for
// every number, so integral floats and json.Number values are accepted.
func (d Document) Int(key string) (int, bool) {
	raw, ok := d[key]
	if !ok {
		return 0, false
	}
	return CoerceInt(raw)
}

// CoerceInt converts the numeric representations a decoded JSON value
// may take into an int. Strings are not accepted; a string identifier
// is a validation failure, not a number.
func CoerceInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
		return 0, false
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// ValidationError describes a record field that is missing, empty, or
// of the wrong type. Record construction returns it without mutating
// any manager state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// NewMissingFieldError reports a document missing a required key.
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "missing required field"}
}

// requireString extracts a required non-empty string field.
func requireString(doc Document, field string) (string, error) {
	raw, ok := doc[field]
	if !ok {
		return "", NewMissingFieldError(field)
	}
	value, ok := raw.(string)
	if !ok || value == "" {
		return "", &ValidationError{Field: field, Reason: "must be a non-empty string"}
	}
	return value, nil
}

// optionalString extracts a string field that may be absent or null.
func optionalString(doc Document, field string) string {
	value, _ := doc.String(field)
	return value
}

// identifier extracts an optional integer ID field. Absent and null
// both mean "not yet assigned".
func identifier(doc Document, field string) (int, error) {
	raw, ok := doc[field]
	if !ok || raw == nil {
		return 0, nil
	}
	id, ok := CoerceInt(raw)
	if !ok {
		return 0, &ValidationError{Field: field, Reason: "must be an integer"}
	}
	return id, nil
}

// checkRecordType rejects a document whose kind tag is present but
// names a different record kind. Managers filter on the tag before
// constructing, so in practice this only fires on direct misuse.
func checkRecordType(doc Document, want string) error {
	raw, ok := doc[KeyRecordType]
	if !ok || raw == nil {
		return nil
	}
	tag, ok := raw.(string)
	if !ok || (tag != "" && tag != want) {
		return &ValidationError{Field: KeyRecordType, Reason: fmt.Sprintf("must be %q", want)}
	}
	return nil
}
