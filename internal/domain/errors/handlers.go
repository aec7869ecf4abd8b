package errors

// ErrorInfo contains the machine-readable part of a failed response
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Details any    `json:"details,omitempty"` // Field errors for validation failures
}

// Envelope is the single response shape shared by every endpoint
type Envelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Data    any        `json:"data,omitempty"`
	Count   *int       `json:"count,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
