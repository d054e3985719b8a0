package dtos

// WebResponse repräsentiert eine standardisierte Webantwort.
type WebResponse[T any] struct {
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Details   []any  `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
