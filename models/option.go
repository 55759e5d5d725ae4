package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// OptionType is the discriminator string accompanying a config option's
// value; it fixes the scalar kind the value (and any permitted-values
// list) must carry.
type OptionType string

const (
	OptionString      OptionType = "string"
	OptionInteger     OptionType = "integer"
	OptionFloat       OptionType = "float"
	OptionBoolean     OptionType = "boolean"
	OptionSelect      OptionType = "select"
	OptionMultiselect OptionType = "multiselect"
)

// Kind returns the scalar kind the discriminator designates. Select and
// multiselect options carry string scalars.
func (t OptionType) Kind() (ValueKind, bool) {
	switch t {
	case OptionString, OptionSelect, OptionMultiselect:
		return KindString, true
	case OptionInteger:
		return KindInt, true
	case OptionFloat:
		return KindFloat, true
	case OptionBoolean:
		return KindBool, true
	default:
		return KindInvalid, false
	}
}

// ValueKind is the concrete scalar kind held by a Value.
type ValueKind int

const (
	// KindInvalid is the zero Value's kind. No accessor reports ok for it,
	// so a Value that was never decoded cannot pass as any scalar.
	KindInvalid ValueKind = iota
	KindString
	KindInt
	KindFloat
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Value is a tagged scalar: exactly one of string, int64, float64 or bool,
// fixed at decode time by the option's type discriminator. The original
// kind survives a marshal round trip; an integer is never widened to a
// float and a boolean is never accepted from a string.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
	b    bool
}

func StringValue(s string) Value { return Value{kind: KindString, s: s} }
func IntValue(i int64) Value     { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }
func BoolValue(b bool) Value     { return Value{kind: KindBool, b: b} }

// Kind returns the scalar kind the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the held string; ok is false for any other kind.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsInt returns the held integer; ok is false for any other kind.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the held float; ok is false for any other kind.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsBool returns the held boolean; ok is false for any other kind.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// String renders the value for display regardless of kind.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// MarshalJSON emits the scalar in its original kind.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.s)
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return nil, fmt.Errorf("value holds no kind")
	}
}

// decodeValue coerces a raw scalar into the kind the discriminator
// designates. It returns a non-empty reason string on kind mismatch; a
// string "true" does not satisfy a boolean option and a fractional number
// does not satisfy an integer one.
func decodeValue(raw json.RawMessage, kind ValueKind) (Value, string) {
	// Unmarshalling null into a non-pointer scalar is a no-op, which would
	// zero-default the value; reject it before the kind switch.
	if isNull(raw) {
		return Value{}, "null is not a " + kind.String()
	}
	switch kind {
	case KindString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, "expected a string"
		}
		return StringValue(s), ""
	case KindInt:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return Value{}, "expected an integer"
		}
		i, err := n.Int64()
		if err != nil {
			return Value{}, "expected an integer"
		}
		return IntValue(i), ""
	case KindFloat:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return Value{}, "expected a number"
		}
		f, err := n.Float64()
		if err != nil {
			return Value{}, "expected a number"
		}
		return FloatValue(f), ""
	case KindBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return Value{}, "expected a boolean"
		}
		return BoolValue(b), ""
	default:
		return Value{}, "unsupported value kind"
	}
}

// ConfigOption is one key of a config file (most commonly
// server.properties). Options is present only for select and multiselect
// options and lists the permitted values in the same kind as Value.
type ConfigOption struct {
	Key     string     `json:"key"`
	Value   Value      `json:"value"`
	Label   string     `json:"label"`
	Type    OptionType `json:"type"`
	Options []Value    `json:"options,omitempty"`
}

// DecodeConfigOption validates a config option payload.
func DecodeConfigOption(raw json.RawMessage) (*ConfigOption, error) {
	fs, err := newFieldSet("config option", raw)
	if err != nil {
		return nil, err
	}
	opt := &ConfigOption{
		Key:   fs.str("key"),
		Label: fs.str("label"),
	}
	opt.Type = OptionType(fs.str("type"))

	kind, known := opt.Type.Kind()
	if !known {
		// A missing or null discriminator was already reported by str;
		// a present one (empty string included) fails here. Without a
		// known discriminator the value kind is undecidable, so the
		// type violation is the root cause.
		if _, present := fs.raw("type"); present {
			fs.fail("type", fmt.Sprintf("unknown option type %q", string(opt.Type)))
		}
	} else {
		if vraw, ok := fs.raw("value"); ok {
			v, reason := decodeValue(vraw, kind)
			if reason != "" {
				fs.fail("value", reason+" for type "+string(opt.Type))
			} else {
				opt.Value = v
			}
		} else {
			fs.fail("value", "required value is missing or null")
		}

		if oraw, ok := fs.raw("options"); ok {
			var items []json.RawMessage
			if err := json.Unmarshal(oraw, &items); err != nil {
				fs.fail("options", "expected a list or null")
			} else {
				values := make([]Value, 0, len(items))
				for i, item := range items {
					v, reason := decodeValue(item, kind)
					if reason != "" {
						fs.fail(fmt.Sprintf("options[%d]", i), reason+" for type "+string(opt.Type))
						continue
					}
					values = append(values, v)
				}
				opt.Options = values
			}
		}
	}

	if err := fs.err(); err != nil {
		return nil, err
	}
	return opt, nil
}

// DecodeConfigOptions validates a list payload of config options.
func DecodeConfigOptions(raw json.RawMessage) ([]*ConfigOption, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &ValidationError{
			Record: "config options",
			Fields: []FieldError{{Field: ".", Reason: "payload is not a list"}},
		}
	}
	out := make([]*ConfigOption, 0, len(items))
	var errs []FieldError
	for i, item := range items {
		opt, err := DecodeConfigOption(item)
		if err != nil {
			var ve *ValidationError
			if asValidation(err, &ve) {
				for _, f := range ve.Fields {
					errs = append(errs, FieldError{
						Field:  fmt.Sprintf("[%d].%s", i, f.Field),
						Reason: f.Reason,
					})
				}
				continue
			}
			return nil, err
		}
		out = append(out, opt)
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Record: "config options", Fields: errs}
	}
	return out, nil
}
