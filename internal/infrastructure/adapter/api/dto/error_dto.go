package dto

// ErrorResponse is the body of every non-2xx API response.
// RequestID echoes X-Request-ID so clients can quote it back.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
