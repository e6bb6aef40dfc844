package errors

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// APIError is an error with a fixed HTTP status and a machine readable code.
// Handlers return it and ErrorHandler renders it as a problem document.
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// Problem converts e to a problem document for instance. Unknown codes are
// typed as internal errors.
func (e *APIError) Problem(instance string) *ProblemDetails {
	kind, ok := problemKinds[e.ErrorCode]
	if !ok {
		kind = problemKinds[CodeInternalServer]
	}
	pd := NewProblemDetails(e.StatusCode, kind.uri, kind.title, e.Message, instance).
		WithExtension("error_code", e.ErrorCode)
	if e.Details != nil {
		pd.WithExtension("errors", e.Details)
	}
	return pd
}

// ValidationError describes one rejected request field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{StatusCode: statusCode, ErrorCode: errorCode, Message: message}
}

func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	e := New(statusCode, errorCode, message)
	e.Details = details
	return e
}

// Error codes carried in the error_code extension
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeNotFound           = "NOT_FOUND"
	CodeTableNotFound      = "TABLE_NOT_FOUND"
	CodeRowNotFound        = "ROW_NOT_FOUND"
	CodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeRequestTimeout     = "REQUEST_TIMEOUT"
	CodeInternalServer     = "INTERNAL_SERVER_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

var (
	ErrNotFound           = New(http.StatusNotFound, CodeNotFound, "Resource not found")
	ErrRateLimitExceeded  = New(http.StatusTooManyRequests, CodeRateLimitExceeded, "Rate limit exceeded")
	ErrInternalServer     = New(http.StatusInternalServerError, CodeInternalServer, "Internal server error")
	ErrServiceUnavailable = New(http.StatusServiceUnavailable, CodeServiceUnavailable, "Service temporarily unavailable")
)

// NewValidationErrors reports rejected query fields with 422
func NewValidationErrors(errs []ValidationError) *APIError {
	return NewWithDetails(http.StatusUnprocessableEntity, CodeValidationFailed, "Request validation failed", errs)
}

// MissingParameter is the violation for an absent required query parameter
func MissingParameter(name string) ValidationError {
	return ValidationError{Field: name, Message: fmt.Sprintf("query parameter %s is required", name)}
}

func NewInternalError(message string) *APIError {
	return New(http.StatusInternalServerError, CodeInternalServer, message)
}
