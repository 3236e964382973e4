package errors

import (
	"fmt"
	"sort"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption customizes a response built by NewErrorResponse.
type ErrorOption func(*ErrorResponse)

func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse renders code with its catalog message.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	er := &ErrorResponse{Error: ErrorDetail{
		Code:    string(code),
		Message: code.Message(),
		TraceID: traceID,
	}}
	for _, opt := range opts {
		opt(er)
	}
	return er
}

// NewValidationError renders per-field messages as "field: message" details,
// sorted by field so responses are stable.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// Internal hides err behind the generic SYSTEM_001 response. The caller is
// responsible for logging err.
func Internal(traceID string) *ErrorResponse {
	return NewErrorResponse(SystemInternalError, traceID)
}

// Status returns the HTTP status the response is served with.
func (er *ErrorResponse) Status() int {
	return ErrorCode(er.Error.Code).Status()
}
