package dto

// ErrorCode is a machine-readable error identifier returned to clients
type ErrorCode string

const (
	ErrorCodeValidationError ErrorCode = "VALIDATION_ERROR"
	ErrorCodeInvalidRequest  ErrorCode = "INVALID_REQUEST"
	ErrorCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrorCodeForbidden       ErrorCode = "FORBIDDEN"
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeConflict        ErrorCode = "CONFLICT"
	ErrorCodeInternalError   ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail carries a single field-level validation failure
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every error reply
type ErrorResponse struct {
	Code    ErrorCode     `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// NewErrorResponse creates an error envelope without field details
func NewErrorResponse(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// WithDetails attaches field-level details to the error envelope
func (e *ErrorResponse) WithDetails(details ...ErrorDetail) *ErrorResponse {
	e.Details = append(e.Details, details...)
	return e
}

// ValidationErrors accumulates field errors during request validation
type ValidationErrors struct {
	details []ErrorDetail
}

// AddError records a failure for the named field
func (v *ValidationErrors) AddError(field, message string) {
	v.details = append(v.details, ErrorDetail{Field: field, Message: message})
}

// HasErrors reports whether any failure was recorded
func (v *ValidationErrors) HasErrors() bool {
	return len(v.details) > 0
}

// ToResponse converts the accumulated failures into an error envelope
func (v *ValidationErrors) ToResponse() *ErrorResponse {
	return &ErrorResponse{
		Code:    ErrorCodeValidationError,
		Message: "Request validation failed",
		Details: v.details,
	}
}
