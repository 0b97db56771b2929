// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// EmptyResponse represents an empty-scope result: the request was valid but
// no transactions matched, which is a state to render rather than an error.
type EmptyResponse struct {
	Empty   bool   `json:"empty"`
	Message string `json:"message"`
}
