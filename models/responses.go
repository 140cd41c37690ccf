package models

// ErrorsResponse is the body of a 400 response produced by validation or
// constraint failures.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// MessageResponse is the body used for every other non-2xx response and
// for informational endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
