package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// FieldError describes a single field that violated its declared contract.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError reports every field of a payload that failed its type,
// nullability or enum-membership rule. Record construction is
// all-or-nothing: if any field is invalid the whole decode fails and
// Fields lists the complete set of violations, not just the first.
type ValidationError struct {
	Record string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("exaroton: invalid %s payload: %s", e.Record, strings.Join(names, ", "))
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// fieldSet walks one decoded JSON object and accumulates per-field
// violations so a single decode pass reports everything that is wrong.
// Wire field names are declared at each accessor call site; they are never
// inferred from the in-memory field name.
type fieldSet struct {
	record string
	obj    map[string]json.RawMessage
	errs   []FieldError
}

func newFieldSet(record string, raw json.RawMessage) (*fieldSet, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, &ValidationError{
			Record: record,
			Fields: []FieldError{{Field: ".", Reason: "payload is not an object"}},
		}
	}
	return &fieldSet{record: record, obj: obj}, nil
}

func (fs *fieldSet) fail(field, reason string) {
	fs.errs = append(fs.errs, FieldError{Field: field, Reason: reason})
}

// raw returns the raw value for a wire key. ok is false when the key is
// missing or explicitly null; the two are treated identically.
func (fs *fieldSet) raw(key string) (json.RawMessage, bool) {
	v, ok := fs.obj[key]
	if !ok || isNull(v) {
		return nil, false
	}
	return v, true
}

func (fs *fieldSet) str(key string) string {
	v, ok := fs.raw(key)
	if !ok {
		fs.fail(key, "required string is missing or null")
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		fs.fail(key, "expected a string")
		return ""
	}
	return s
}

func (fs *fieldSet) boolean(key string) bool {
	v, ok := fs.raw(key)
	if !ok {
		fs.fail(key, "required boolean is missing or null")
		return false
	}
	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		fs.fail(key, "expected a boolean")
		return false
	}
	return b
}

func (fs *fieldSet) integer(key string) int64 {
	v, ok := fs.raw(key)
	if !ok {
		fs.fail(key, "required integer is missing or null")
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		fs.fail(key, "expected an integer")
		return 0
	}
	i, err := n.Int64()
	if err != nil {
		fs.fail(key, "expected an integer")
		return 0
	}
	return i
}

// number accepts both integer-valued and fractional wire numbers and
// preserves the fractional part.
func (fs *fieldSet) number(key string) float64 {
	v, ok := fs.raw(key)
	if !ok {
		fs.fail(key, "required number is missing or null")
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		fs.fail(key, "expected a number")
		return 0
	}
	f, err := n.Float64()
	if err != nil {
		fs.fail(key, "expected a number")
		return 0
	}
	return f
}

func (fs *fieldSet) optStr(key string) *string {
	v, ok := fs.raw(key)
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		fs.fail(key, "expected a string or null")
		return nil
	}
	return &s
}

func (fs *fieldSet) optInt(key string) *int {
	v, ok := fs.raw(key)
	if !ok {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		fs.fail(key, "expected an integer or null")
		return nil
	}
	i, err := n.Int64()
	if err != nil {
		fs.fail(key, "expected an integer or null")
		return nil
	}
	out := int(i)
	return &out
}

func (fs *fieldSet) strSlice(key string) []string {
	v, ok := fs.raw(key)
	if !ok {
		fs.fail(key, "required list is missing or null")
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		fs.fail(key, "expected a list of strings")
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		var s string
		if isNull(item) || json.Unmarshal(item, &s) != nil {
			fs.fail(fmt.Sprintf("%s[%d]", key, i), "expected a string")
			continue
		}
		out[i] = s
	}
	return out
}

// mergeNested folds a nested record's validation failures into this field
// set with the nested field names prefixed, so the top-level error still
// enumerates every violation.
func (fs *fieldSet) mergeNested(prefix string, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		for _, f := range ve.Fields {
			fs.fail(prefix+"."+f.Field, f.Reason)
		}
		return
	}
	if err != nil {
		fs.fail(prefix, err.Error())
	}
}

func asValidation(err error, target **ValidationError) bool {
	return errors.As(err, target)
}

func (fs *fieldSet) err() error {
	if len(fs.errs) == 0 {
		return nil
	}
	return &ValidationError{Record: fs.record, Fields: fs.errs}
}

// DecodeStrings validates a list payload whose elements must all be
// strings (playerlist names and playerlist content).
func DecodeStrings(record string, raw json.RawMessage) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &ValidationError{
			Record: record,
			Fields: []FieldError{{Field: ".", Reason: "payload is not a list"}},
		}
	}
	out := make([]string, len(items))
	var errs []FieldError
	for i, item := range items {
		// null unmarshals into a string as a no-op; catch it explicitly
		// so a null entry is a violation, not an empty string.
		var s string
		if isNull(item) || json.Unmarshal(item, &s) != nil {
			errs = append(errs, FieldError{Field: fmt.Sprintf("[%d]", i), Reason: "expected a string"})
			continue
		}
		out[i] = s
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Record: record, Fields: errs}
	}
	return out, nil
}
