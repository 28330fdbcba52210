package dto

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool        `json:"success" example:"false"`
	Message string      `json:"message" example:"Invalid data"`
	Errors  interface{} `json:"errors,omitempty"`
}

// NewErrorResponse creates an error body without details
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
