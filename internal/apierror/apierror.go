// Package apierror defines the error envelopes returned by the HTTP API.
// Every 4xx/5xx response goes through these types so clients always get the
// same shape and internal details (DB errors, stack traces) never leak out.
package apierror

// APIError is the single-message error envelope.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries per-field validation failures alongside the
// general message. Fields maps the offending field to the failed rule.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validación", Fields: fields}
}
