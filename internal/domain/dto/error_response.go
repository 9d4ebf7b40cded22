package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// endpoint. Failed queries always carry this shape so clients can tell a
// failure apart from an empty-but-valid result.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid date format, expected YYYY-MM-DD HH:MM:SS"`
	ErrorDetails string    `json:"error,omitempty" example:"parsing time ..."`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error chain.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
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
