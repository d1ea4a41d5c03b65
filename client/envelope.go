package client

import "encoding/json"

// Envelope is the uniform API response. Data stays raw until a typed service
// decodes it, so a failed call never produces a half-decoded value.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// into decodes the envelope data into T. A failed envelope passes through
// untouched with a zero value.
func into[T any](env Envelope) (T, Envelope) {
	var v T
	if !env.Success {
		return v, env
	}

	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return v, Envelope{
				Success: false,
				Message: "failed to decode response",
				Error:   err.Error(),
			}
		}
	}

	return v, env
}
