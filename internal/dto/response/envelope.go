package response

import "encoding/json"

// Envelope is the backend's uniform response shape. Errors never get
// this far; the transport turns non-success statuses into typed errors
// before the envelope is decoded.
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// DecodeData unmarshals the data field of an enveloped payload into v.
// A missing or null data field leaves v untouched.
func DecodeData(raw json.RawMessage, v any) error {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return err
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	return json.Unmarshal(env.Data, v)
}
