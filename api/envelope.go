// Package api implements the response envelope protocol shared by every
// exaroton endpoint. Responses are wrapped in a uniform {success, error,
// data} envelope regardless of what the operation returns; this package
// unwraps that envelope into either the raw data payload or a typed error,
// without knowing anything about the concrete domain model.
package api

import (
	"bytes"
	"encoding/json"
)

// Shape is the structural category of a data payload: a JSON object, an
// ordered list, a scalar string, or nothing at all.
type Shape int

const (
	// ShapeNone matches absent or null data ("no content" acknowledgements).
	ShapeNone Shape = iota
	// ShapeObject matches a JSON object.
	ShapeObject
	// ShapeList matches a JSON array.
	ShapeList
	// ShapeString matches a scalar string. Acknowledgement endpoints return
	// an opaque string or nothing, so ShapeString also admits absent/null
	// data; callers receive a nil payload in that case.
	ShapeString

	// ShapeUnknown classifies payloads outside the envelope's data domain.
	// Top-level numbers and booleans never appear in well-formed responses.
	ShapeUnknown Shape = -1
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeObject:
		return "object"
	case ShapeList:
		return "list"
	case ShapeString:
		return "string"
	default:
		return "unknown"
	}
}

// Envelope is the wire-level wrapper every response obeys.
//
// Invariant: success == false implies error is non-null and data is
// ignored; success == true implies error is null or absent.
type Envelope struct {
	Success bool            `json:"success"`
	Error   *string         `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// DetectShape classifies a raw payload by its first significant byte.
// Absent, empty and JSON null payloads all classify as ShapeNone.
func DetectShape(raw json.RawMessage) Shape {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return ShapeNone
	}
	switch trimmed[0] {
	case '{':
		return ShapeObject
	case '[':
		return ShapeList
	case '"':
		return ShapeString
	case 'n':
		return ShapeNone
	default:
		return ShapeUnknown
	}
}

// DecodeEnvelope unwraps a raw response body into its data payload.
//
// A body that does not parse as an envelope yields a *ShapeError. A
// success:false envelope yields a *RemoteError carrying the vendor's error
// message verbatim, whatever data contains. A success:true envelope whose
// data does not match the wanted shape yields a *ShapeError; otherwise the
// data payload is returned unaltered. For ShapeString and ShapeNone the
// returned payload is nil when data was absent or null.
//
// DecodeEnvelope is a pure transformation: it never retries and never
// inspects HTTP status codes, which are the transport's responsibility.
func DecodeEnvelope(body []byte, want Shape) (json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ShapeError{Want: want, Got: ShapeUnknown, reason: "response body is not a valid envelope: " + err.Error()}
	}

	if !env.Success {
		// A false envelope with a null error violates the wire invariant,
		// but the service did report failure; surface it as such.
		msg := ""
		if env.Error != nil {
			msg = *env.Error
		}
		return nil, &RemoteError{Message: msg}
	}

	got := DetectShape(env.Data)
	switch {
	case got == want:
	case got == ShapeNone && want == ShapeString:
		// Opaque acknowledgement payloads are string-or-absent.
		return nil, nil
	default:
		return nil, &ShapeError{Want: want, Got: got}
	}

	if got == ShapeNone {
		return nil, nil
	}
	return env.Data, nil
}
