// Package types defines the request and response types shared by the API
// server and client
package types

// PaginationResponse represents pagination information for list endpoints
type PaginationResponse struct {
	// Total number of items returned in this page
	Total int `json:"total"`

	// Maximum number of items per page
	Limit int `json:"limit"`

	// Number of items skipped from the beginning of the result set
	Offset int `json:"offset"`
}

// ListResponse defines a generic response structure for listing resources
type ListResponse[T any] struct {
	// Array of resource items
	Rows []T `json:"rows"`

	// Pagination information for the result set
	Pagination PaginationResponse `json:"pagination"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	// Error message describing what went wrong
	Error string `json:"error"`

	// Optional additional details about the error
	Details interface{} `json:"details,omitempty"`
}

// CreatePersonResponse represents the response from the create person endpoint
type CreatePersonResponse struct {
	PersonID uint `json:"id"`
}

// ErrInvalidInput returns an ErrorResponse for a malformed request
func ErrInvalidInput(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ErrNotFound returns an ErrorResponse for a missing resource
func ErrNotFound(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ErrServer returns an ErrorResponse for an internal failure
func ErrServer(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}
