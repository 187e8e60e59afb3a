package adapter

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Payload is a 2xx response body exactly as the server sent it. It is only
// checked to be well-formed JSON; keys and value types are not interpreted.
type Payload []byte

// MarshalJSON returns the body unchanged, so re-encoding a Payload keeps
// every key the server sent.
func (p Payload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

// Map decodes the body as a JSON object.
func (p Payload) Map() (map[string]any, error) {
	var m map[string]any
	if err := p.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

// Decode unmarshals the body into v.
func (p Payload) Decode(v any) error {
	if err := json.Unmarshal(p, v); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedPayload, err)
	}
	return nil
}

// DecodeAs is the typed form of [Payload.Decode], for callers that want one
// of the models types instead of the raw body.
//
//	resp, err := adapter.DecodeAs[models.HealthResponse](payload)
func DecodeAs[T any](p Payload) (T, error) {
	var v T
	err := p.Decode(&v)
	return v, err
}

// newPayload accepts an empty body (e.g. 204) as a nil Payload.
func newPayload(body []byte) (Payload, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("decode response: %w", ErrUnexpectedPayload)
	}
	return Payload(bytes.Clone(body)), nil
}
