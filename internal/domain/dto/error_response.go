package dto

import "time"

// ErrorResponse is the standard JSON error body returned by every endpoint.
//
// Fields:
//   - Message: Human-readable description of what failed.
//   - ErrorDetails: Underlying error text, omitted when there is none.
//   - Timestamp: When the error response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"stock not found"`
	ErrorDetails string    `json:"error,omitempty" example:"unknown stock symbol"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can travel through
// error-returning code paths.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}
