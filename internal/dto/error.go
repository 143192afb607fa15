package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string            `json:"code,omitempty"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Details []ValidationError `json:"details,omitempty"`
}

// ValidationError describes one rejected request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}
